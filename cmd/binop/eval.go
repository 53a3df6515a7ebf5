package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zeebo/errs"

	"github.com/calebcase/binop/binary"
)

// Error is the class of errors returned by the command.
var Error = errs.Class("binop")

// operand reads a prefixed literal ("8'hFF") or a decimal number. Decimal
// numbers take every setting from cfg; literals take their width from the
// text. Integers are encoded exactly at any width.
func operand(text string, cfg *Config) (*binary.Value, error) {
	if strings.Contains(text, "'") {
		return binary.Parse(text, cfg.Options()...)
	}

	if i, ok := new(big.Int).SetString(text, 10); ok {
		return binary.New(binary.BigInt{Int: i}, cfg.Options()...)
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, Error.New("not a number or literal: %q", text)
	}

	return binary.New(binary.Float(value), cfg.Options()...)
}

// describe renders a value in binary, hexadecimal and decimal.
func describe(v *binary.Value) string {
	return fmt.Sprintf("%s (hex: %s, decimal: %s)", v, v.Hex(), decimal(v))
}

// decimal renders integers exactly and fractions as the shortest float.
func decimal(v *binary.Value) string {
	r := v.Rat()
	if r.IsInt() {
		return r.Num().String()
	}

	return strconv.FormatFloat(v.Decimal(), 'f', -1, 64)
}

// apply runs a single binary operator.
func apply(op string, lhs, rhs *binary.Value) (string, error) {
	logrus.WithFields(logrus.Fields{
		"op":  op,
		"lhs": lhs.String(),
		"rhs": rhs.String(),
	}).Debug("evaluate")

	switch op {
	case "+":
		return describe(lhs.Add(rhs)), nil
	case "-":
		return describe(lhs.Sub(rhs)), nil
	case "*":
		p, err := lhs.Mul(rhs)
		if err != nil {
			return "", err
		}

		return describe(p), nil
	case "/":
		q, r, err := lhs.Div(rhs)
		if err != nil {
			return "", err
		}

		return describe(q) + " remainder " + describe(r), nil
	}

	return "", Error.New("unknown operator %q", op)
}

// eval evaluates "<operand>" or "<operand> <op> <operand>".
func eval(line string, cfg *Config) (out string, err error) {
	fields := strings.Fields(line)

	switch len(fields) {
	case 1:
		v, err := operand(fields[0], cfg)
		if err != nil {
			return "", err
		}

		return describe(v), nil
	case 3:
		lhs, err := operand(fields[0], cfg)
		if err != nil {
			return "", err
		}

		rhs, err := operand(fields[2], cfg)
		if err != nil {
			return "", err
		}

		return apply(fields[1], lhs, rhs)
	}

	return "", Error.New("expected <operand> [<op> <operand>], got %q", line)
}
