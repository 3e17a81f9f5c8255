// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package engine implements the calculator state machine. It interprets a
// sequence of digit, operator and control events into a running computation
// and a display string, with the chained left-to-right semantics of a basic
// four-function calculator (no operator precedence).
//
// The engine is purely sequential: every event runs to completion before the
// next one is delivered, and the caller reads Display() after each event.
package engine

import (
	"math"
	"strconv"
	"strings"
)

// ErrorText is what the display shows after an undefined result
// (division by zero). It is a literal and is never localized.
const ErrorText = "Error"

// Op identifies one of the four arithmetic operations.
type Op int

const (
	// OpNone means no operator has been chosen.
	OpNone Op = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the conventional symbol for the operator.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return ""
}

// Calculator holds the full state of one calculation in progress. The zero
// value is not usable; construct with New.
//
// The display always holds a syntactically valid partial number (digits and
// at most one decimal point) or the error text. The three remaining fields
// jointly encode the effective mode: idle, entering the left operand,
// operator chosen, or entering the right operand.
type Calculator struct {
	display  string
	left     float64
	hasLeft  bool
	pending  Op
	newEntry bool
	failed   bool
}

// New returns a calculator in its initial state: display "0", no pending
// operation, next digit starts a fresh entry.
func New() *Calculator {
	c := &Calculator{}
	c.Clear()
	return c
}

// Display returns the string the host should render.
func (c *Calculator) Display() string {
	if c.failed {
		return ErrorText
	}
	return c.display
}

// Pending returns the operator awaiting its right-hand operand, or OpNone.
func (c *Calculator) Pending() Op {
	return c.pending
}

// Digit enters a single digit 0-9. Values outside that range are ignored.
func (c *Calculator) Digit(d int) {
	if d < 0 || d > 9 {
		return
	}
	ch := string(rune('0' + d))
	if c.failed {
		// Typing after an error starts a fresh number.
		c.failed = false
		c.newEntry = true
	}
	if c.newEntry {
		c.display = ch
		c.newEntry = false
		return
	}
	// Suppress redundant leading zeros: "0" then "0" stays "0", and "0"
	// then a nonzero digit replaces the zero rather than producing "05".
	if c.display == "0" && d == 0 {
		return
	}
	if c.display == "0" {
		c.display = ch
		return
	}
	c.display += ch
}

// DecimalPoint enters the decimal separator. A second press is a no-op.
func (c *Calculator) DecimalPoint() {
	if c.failed {
		c.failed = false
		c.newEntry = true
	}
	if c.newEntry {
		c.display = "0."
		c.newEntry = false
		return
	}
	if !strings.Contains(c.display, ".") {
		c.display += "."
	}
}

// Operator selects the operation to apply between the accumulated value and
// the next number. Pressing a second operator before typing any digits
// replaces the pending one without evaluating (operator-key override).
// Evaluation is strictly left to right: 2 + 3 * 4 yields 20.
func (c *Calculator) Operator(op Op) {
	if op == OpNone {
		return
	}
	if c.failed {
		// An error display poisons the computation; treat the press as
		// a clear rather than silently using 0 as an operand.
		c.Clear()
		return
	}
	cur := c.currentValue()
	if !c.hasLeft {
		c.left = cur
		c.hasLeft = true
	} else if c.pending != OpNone && !c.newEntry {
		result, ok := apply(c.left, cur, c.pending)
		if !ok {
			c.fail()
			return
		}
		c.left = result
		c.display = Format(result)
	}
	c.pending = op
	c.newEntry = true
}

// Equals applies the pending operation and shows the result. The result can
// seed further chaining: the next operator press uses it as the new left
// operand. Without a pending operation this is a no-op.
func (c *Calculator) Equals() {
	if c.failed {
		c.Clear()
		return
	}
	if c.pending == OpNone {
		return
	}
	left := 0.0
	if c.hasLeft {
		left = c.left
	}
	result, ok := apply(left, c.currentValue(), c.pending)
	if !ok {
		c.fail()
		return
	}
	c.display = Format(result)
	c.left = 0
	c.hasLeft = false
	c.pending = OpNone
	c.newEntry = true
}

// Clear resets the calculator to its initial state.
func (c *Calculator) Clear() {
	c.display = "0"
	c.left = 0
	c.hasLeft = false
	c.pending = OpNone
	c.newEntry = true
	c.failed = false
}

// Backspace removes the last typed character of the current entry. While
// awaiting a new entry there is nothing to erase and the display stays "0".
func (c *Calculator) Backspace() {
	if c.failed {
		c.Clear()
		return
	}
	if c.newEntry {
		c.display = "0"
		return
	}
	if len(c.display) <= 1 {
		c.display = "0"
		c.newEntry = true
		return
	}
	c.display = c.display[:len(c.display)-1]
}

// currentValue parses the display as a float. The display invariants make a
// parse failure unreachable; 0 is substituted defensively.
func (c *Calculator) currentValue() float64 {
	v, err := strconv.ParseFloat(c.display, 64)
	if err != nil {
		return 0
	}
	return v
}

// fail puts the machine into the error state. Pending work is discarded so
// that recovery (clear, or typing a new number) starts from a clean slate.
func (c *Calculator) fail() {
	c.Clear()
	c.failed = true
}

// apply computes a op b. ok is false when the result is undefined
// (division by zero); the caller decides how to surface that.
func apply(a, b float64, op Op) (result float64, ok bool) {
	switch op {
	case OpAdd:
		return a + b, true
	case OpSubtract:
		return a - b, true
	case OpMultiply:
		return a * b, true
	case OpDivide:
		if b == 0.0 {
			return 0, false
		}
		return a / b, true
	}
	return 0, true
}

// Format renders a value with fixed-point precision (10 fractional digits),
// then strips trailing zeros and a dangling decimal point. It deliberately
// never falls back to scientific notation, so very large magnitudes render
// as long fixed-point strings.
func Format(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return ErrorText
	}
	text := strconv.FormatFloat(v, 'f', 10, 64)
	text = strings.TrimRight(text, "0")
	text = strings.TrimSuffix(text, ".")
	if text == "" {
		text = "0"
	}
	return text
}
