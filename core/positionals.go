package core

import (
	"strconv"

	"github.com/chriso345/argyle/errors"
)

// positionalList is an append-only ordered collection of the tokens that
// were not consumed as options or commands.
type positionalList struct {
	args []string
}

func (list *positionalList) append(arg string) {
	list.args = append(list.args, arg)
}

func (list *positionalList) all() []string {
	return list.args
}

func (list *positionalList) clear() {
	list.args = nil
}

// asInts converts every positional to an integer, failing on the first
// element that does not convert and reporting its position.
func (list *positionalList) asInts() ([]int, error) {
	ints := make([]int, 0, len(list.args))
	for i, arg := range list.args {
		val, err := strconv.ParseInt(arg, 0, strconv.IntSize)
		if err != nil {
			return nil, errors.NewConversionAt(arg, "an integer", i)
		}
		ints = append(ints, int(val))
	}
	return ints, nil
}

// asFloats converts every positional to a float, failing on the first
// element that does not convert and reporting its position.
func (list *positionalList) asFloats() ([]float64, error) {
	floats := make([]float64, 0, len(list.args))
	for i, arg := range list.args {
		val, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.NewConversionAt(arg, "a float", i)
		}
		floats = append(floats, val)
	}
	return floats, nil
}
