package core

import (
	"fmt"
	"strconv"

	"github.com/chriso345/argyle/errors"
)

// Enum for classifying option kinds. A 'flag' is a boolean option that is
// either present (true) or absent (false). Every other kind requires an
// argument.
type optionKind int

const (
	flagKind optionKind = iota
	strKind
	intKind
	floatKind
)

// Option is a typed value cell. Every alias an option was registered
// under resolves to the same Option instance, so setting a value through
// one alias is visible through all of them.
//
// A single-valued option is constructed with its default value already
// stored; parsing appends new values and the most recently appended value
// is the current one, so the last occurrence on the command line wins. A
// list option starts empty and accumulates values in encounter order.
type Option struct {
	kind   optionKind
	list   bool
	greedy bool
	found  bool

	bools  []bool
	strs   []string
	ints   []int
	floats []float64
}

func newFlag() *Option {
	return &Option{kind: flagKind, bools: []bool{false}}
}

func newStr(def string) *Option {
	return &Option{kind: strKind, strs: []string{def}}
}

func newInt(def int) *Option {
	return &Option{kind: intKind, ints: []int{def}}
}

func newFloat(def float64) *Option {
	return &Option{kind: floatKind, floats: []float64{def}}
}

func newList(kind optionKind, greedy bool) *Option {
	return &Option{kind: kind, list: true, greedy: greedy}
}

// appendArg converts a raw token to the option's kind and appends the
// result. Flags ignore the token and store the literal true: presence is
// the only thing a flag records. Integers parse with base auto-detection,
// so hex and octal literals are accepted.
func (opt *Option) appendArg(arg string) error {
	switch opt.kind {
	case flagKind:
		opt.bools = append(opt.bools, true)
	case strKind:
		opt.strs = append(opt.strs, arg)
	case intKind:
		val, err := strconv.ParseInt(arg, 0, strconv.IntSize)
		if err != nil {
			return errors.NewConversion(arg, "an integer")
		}
		opt.ints = append(opt.ints, int(val))
	case floatKind:
		val, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.NewConversion(arg, "a float")
		}
		opt.floats = append(opt.floats, val)
	}
	return nil
}

func (opt *Option) appendBool(val bool) { opt.bools = append(opt.bools, val) }

func (opt *Option) appendStr(val string) { opt.strs = append(opt.strs, val) }

func (opt *Option) appendInt(val int) { opt.ints = append(opt.ints, val) }

func (opt *Option) appendFloat(val float64) { opt.floats = append(opt.floats, val) }

// Found reports whether any of the option's aliases appeared while
// parsing.
func (opt *Option) Found() bool { return opt.found }

// Count returns the number of stored values.
func (opt *Option) Count() int { return opt.length() }

// length returns the number of stored values.
func (opt *Option) length() int {
	switch opt.kind {
	case flagKind:
		return len(opt.bools)
	case strKind:
		return len(opt.strs)
	case intKind:
		return len(opt.ints)
	case floatKind:
		return len(opt.floats)
	}
	return 0
}

// clear empties the option's value sequence.
func (opt *Option) clear() {
	opt.bools = nil
	opt.strs = nil
	opt.ints = nil
	opt.floats = nil
}

// The current* accessors return the most recently appended value. Reading
// an empty cell is a contract violation: callers must check length() or
// found first.

func (opt *Option) currentBool() bool {
	if len(opt.bools) == 0 {
		panic("argyle: reading the value of an empty option cell")
	}
	return opt.bools[len(opt.bools)-1]
}

func (opt *Option) currentStr() string {
	if len(opt.strs) == 0 {
		panic("argyle: reading the value of an empty option cell")
	}
	return opt.strs[len(opt.strs)-1]
}

func (opt *Option) currentInt() int {
	if len(opt.ints) == 0 {
		panic("argyle: reading the value of an empty option cell")
	}
	return opt.ints[len(opt.ints)-1]
}

func (opt *Option) currentFloat() float64 {
	if len(opt.floats) == 0 {
		panic("argyle: reading the value of an empty option cell")
	}
	return opt.floats[len(opt.floats)-1]
}

// String returns the option's current value, or its accumulated values
// for a list option, for the parser's debug dump.
func (opt *Option) String() string {
	if opt.list {
		switch opt.kind {
		case flagKind:
			return fmt.Sprint(opt.bools)
		case strKind:
			return fmt.Sprint(opt.strs)
		case intKind:
			return fmt.Sprint(opt.ints)
		case floatKind:
			return fmt.Sprint(opt.floats)
		}
	}
	if opt.length() == 0 {
		return "[none]"
	}
	switch opt.kind {
	case flagKind:
		return fmt.Sprintf("%v", opt.currentBool())
	case strKind:
		return opt.currentStr()
	case intKind:
		return fmt.Sprintf("%v", opt.currentInt())
	case floatKind:
		return fmt.Sprintf("%v", opt.currentFloat())
	}
	return ""
}
