// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoInput is returned by EvalTokens for an empty token sequence.
var ErrNoInput = errors.New("nothing to evaluate")

// EvalTokens runs a whitespace-separated token sequence of alternating
// numbers and operators through a fresh calculator, pressing equals at the
// end, and returns the final display string. The semantics are exactly those
// of typing the tokens on the keypad: chained left-to-right evaluation with
// no precedence, and division by zero yields the error text rather than an
// error return.
func EvalTokens(tokens []string) (string, error) {
	if len(tokens) == 0 {
		return "", ErrNoInput
	}
	c := New()
	expectNumber := true
	for _, tok := range tokens {
		if expectNumber {
			if err := enterNumber(c, tok); err != nil {
				return "", err
			}
		} else {
			op, ok := parseOp(tok)
			if !ok {
				return "", fmt.Errorf("unrecognized operator %q", tok)
			}
			c.Operator(op)
			if c.Display() == ErrorText {
				// Chained evaluation already hit an undefined result;
				// feeding more tokens would silently start over.
				return ErrorText, nil
			}
		}
		expectNumber = !expectNumber
	}
	if expectNumber {
		return "", errors.New("expression ends with an operator")
	}
	c.Equals()
	return c.Display(), nil
}

// Eval splits an expression on whitespace and evaluates it with EvalTokens.
func Eval(expression string) (string, error) {
	return EvalTokens(strings.Fields(expression))
}

// enterNumber types a numeric token digit by digit so that the display
// invariants (single dot, no redundant leading zeros) are enforced by the
// same code paths as interactive entry.
func enterNumber(c *Calculator, tok string) error {
	seenDot := false
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			c.Digit(int(r - '0'))
		case r == '.':
			if seenDot {
				return fmt.Errorf("malformed number %q", tok)
			}
			seenDot = true
			c.DecimalPoint()
		default:
			return fmt.Errorf("unrecognized token %q", tok)
		}
	}
	return nil
}

// parseOp maps an operator token to an Op. Both the ASCII forms and the
// keypad glyphs are accepted.
func parseOp(tok string) (Op, bool) {
	switch tok {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSubtract, true
	case "*", "x", "×":
		return OpMultiply, true
	case "/", "÷":
		return OpDivide, true
	}
	return OpNone, false
}
