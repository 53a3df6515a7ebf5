// Command binop evaluates fixed width binary arithmetic from the command line.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/calebcase/binop/datfile"
)

type rootOptions struct {
	configFile string
	logLevel   string
	width      int
	fixedPoint int
	signed     bool
	prefix     bool

	cfg *Config
}

// installFlags registers the value setting flags.
func (o *rootOptions) installFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.configFile, "config", "c", "", "YAML configuration file")
	flags.StringVar(&o.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.IntVarP(&o.width, "width", "w", 0, "Width in bits of decimal operands")
	flags.IntVarP(&o.fixedPoint, "fixed-point", "f", 0, "Index of the 2^0 digit")
	flags.BoolVarP(&o.signed, "signed", "s", false, "Treat values as two's complement")
	flags.BoolVarP(&o.prefix, "prefix", "p", false, "Show width and radix prefixes")
}

// load reads the configuration file and applies any flags that were set.
func (o *rootOptions) load(flags *pflag.FlagSet) (err error) {
	cfg, err := LoadConfig(o.configFile)
	if err != nil {
		return err
	}

	if flags.Changed("width") {
		cfg.Width = o.width
	}
	if flags.Changed("fixed-point") {
		cfg.FixedPoint = o.fixedPoint
	}
	if flags.Changed("signed") {
		cfg.Signed = o.signed
	}
	if flags.Changed("prefix") {
		cfg.Prefix = o.prefix
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return Error.Wrap(err)
	}
	logrus.SetLevel(level)

	logrus.WithFields(logrus.Fields{
		"width":       cfg.Width,
		"fixed_point": cfg.FixedPoint,
		"signed":      cfg.Signed,
		"prefix":      cfg.Prefix,
	}).Debug("configuration loaded")

	o.cfg = cfg

	return nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "binop",
		Short:         "Fixed width binary arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd.Flags())
		},
	}

	opts.installFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newShowCommand(opts),
		newOperatorCommand(opts, "add", "+", "Add two values (wraps on overflow)"),
		newOperatorCommand(opts, "sub", "-", "Subtract two values (wraps on overflow)"),
		newOperatorCommand(opts, "mul", "*", "Multiply two unsigned values"),
		newOperatorCommand(opts, "div", "/", "Divide two unsigned values"),
		newDatCommand(opts),
		newREPLCommand(opts),
	)

	return cmd
}

func newShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show VALUE...",
		Short: "Show values in binary, hexadecimal and decimal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				out, err := eval(arg, opts.cfg)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), out)
			}

			return nil
		},
	}
}

func newOperatorCommand(opts *rootOptions, use, op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " LHS RHS",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := eval(args[0]+" "+op+" "+args[1], opts.cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
}

func newDatCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dat FILE",
		Short: "Decode a file of hexadecimal values, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return datfile.Each(args[0], opts.cfg.Format(), func(r *datfile.Reader) error {
				logrus.WithField("line", r.Line()).Debug("decoded")

				_, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(r.Value(), 'f', -1, 64))

				return err
			})
		},
	}
}

func newREPLCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(opts.cfg)
		},
	}
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
