package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/errs"
)

// runREPL evaluates one expression per line until EOF, "exit" or an
// interrupt on an empty line.
func runREPL(cfg *Config) (err error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.REPL.Prompt,
		HistoryFile: cfg.REPL.HistoryFile,
	})
	if err != nil {
		return Error.Wrap(err)
	}
	defer func() {
		err = errs.Combine(err, rl.Close())
	}()

	logrus.WithField("history", cfg.REPL.HistoryFile).Debug("repl started")

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if len(line) == 0 {
				return nil
			}

			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return Error.Wrap(err)
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		out, err := eval(line, cfg)
		if err != nil {
			fmt.Fprintln(rl.Stderr(), "error:", err)

			continue
		}

		fmt.Fprintln(rl.Stdout(), out)
	}
}
