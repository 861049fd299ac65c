package core

import (
	stderrs "errors"
	"testing"

	argerr "github.com/chriso345/argyle/errors"
	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"
)

func TestParse_EmptyArgsLeaveDefaults(t *testing.T) {
	parser := NewParser("", "")
	parser.AddFlag("bool b")
	parser.AddStr("string s", "default")
	parser.AddInt("int i", 101)
	parser.AddFloat("float f", 1.1)

	vital.Nil(t, parser.ParseArgs([]string{}))
	assert.Equal(t, parser.GetFlag("bool"), false)
	assert.Equal(t, parser.GetStr("string"), "default")
	assert.Equal(t, parser.GetInt("int"), 101)
	assert.Equal(t, parser.GetFloat("float"), 1.1)
	assert.Equal(t, parser.Found("bool"), false)
	assert.Equal(t, parser.HasArgs(), false)
}

func TestParse_LongFormOptions(t *testing.T) {
	parser := NewParser("", "")
	parser.AddFlag("bool")
	parser.AddStr("string", "default")
	parser.AddInt("int", 101)
	parser.AddFloat("float", 1.1)

	err := parser.ParseArgs([]string{"--bool", "--string", "value", "--int", "202", "--float", "2.2"})
	vital.Nil(t, err)
	assert.Equal(t, parser.GetFlag("bool"), true)
	assert.Equal(t, parser.GetStr("string"), "value")
	assert.Equal(t, parser.GetInt("int"), 202)
	assert.Equal(t, parser.GetFloat("float"), 2.2)
	assert.True(t, parser.Found("string"))
}

func TestParse_ShortFormOptions(t *testing.T) {
	parser := NewParser("", "")
	parser.AddFlag("bool b")
	parser.AddStr("string s", "default")
	parser.AddInt("int i", 101)
	parser.AddFloat("float f", 1.1)

	err := parser.ParseArgs([]string{"-b", "-s", "value", "-i", "202", "-f", "2.2"})
	vital.Nil(t, err)
	assert.Equal(t, parser.GetFlag("bool"), true)
	assert.Equal(t, parser.GetStr("string"), "value")
	assert.Equal(t, parser.GetInt("int"), 202)
	assert.Equal(t, parser.GetFloat("float"), 2.2)
}

func TestParse_CondensedShortCluster(t *testing.T) {
	parser := NewParser("", "")
	parser.AddFlag("bool b")
	parser.AddStr("string s", "default")
	parser.AddInt("int i", 101)
	parser.AddFloat("float f", 1.1)

	err := parser.ParseArgs([]string{"-bsif", "value", "202", "2.2"})
	vital.Nil(t, err)
	assert.Equal(t, parser.GetFlag("bool"), true)
	assert.Equal(t, parser.GetStr("string"), "value")
	assert.Equal(t, parser.GetInt("int"), 202)
	assert.Equal(t, parser.GetFloat("float"), 2.2)
	assert.Equal(t, parser.HasArgs(), false)
}

func TestParse_EqualsForms(t *testing.T) {
	parser := NewParser("", "")
	parser.AddStr("string s", "default")
	parser.AddInt("int i", 101)

	err := parser.ParseArgs([]string{"--string=value", "-i=202"})
	vital.Nil(t, err)
	assert.Equal(t, parser.GetStr("string"), "value")
	assert.Equal(t, parser.GetInt("int"), 202)
}

func TestParse_EqualsValueMayContainEquals(t *testing.T) {
	parser := NewParser("", "")
	parser.AddStr("string", "default")

	vital.Nil(t, parser.ParseArgs([]string{"--string=a=b"}))
	assert.Equal(t, parser.GetStr("string"), "a=b")
}

func TestParse_LastOccurrenceWins(t *testing.T) {
	parser := NewParser("", "")
	parser.AddStr("string s", "default")

	// Mixed aliases and forms resolve to the same cell; the final value
	// in token order is the current one.
	err := parser.ParseArgs([]string{"--string", "one", "-s", "two", "--string=three"})
	vital.Nil(t, err)
	assert.Equal(t, parser.GetStr("string"), "three")
	assert.Equal(t, parser.GetStr("s"), "three")
}

func TestParse_AliasesShareOneCell(t *testing.T) {
	parser := NewParser("", "")
	parser.AddFlag("bool2 b")

	vital.Nil(t, parser.ParseArgs([]string{"-b"}))
	assert.Equal(t, parser.GetFlag("bool2"), true)
	assert.Equal(t, parser.GetFlag("b"), true)
	assert.True(t, parser.Found("bool2"))
	assert.True(t, parser.Found("b"))
}

func TestParse_NegativeNumberAsOptionValue(t *testing.T) {
	parser := NewParser("", "")
	parser.AddInt("int", 101)

	vital.Nil(t, parser.ParseArgs([]string{"--int", "-5"}))
	assert.Equal(t, parser.GetInt("int"), -5)
}

func TestParse_NegativeNumberAsPositional(t *testing.T) {
	parser := NewParser("", "")

	vital.Nil(t, parser.ParseArgs([]string{"-5"}))
	assert.Equal(t, parser.NumArgs(), 1)
	assert.Equal(t, parser.GetArg(0), "-5")
}

func TestParse_BareDashIsPositional(t *testing.T) {
	parser := NewParser("", "")

	vital.Nil(t, parser.ParseArgs([]string{"-"}))
	assert.Equal(t, parser.NumArgs(), 1)
	assert.Equal(t, parser.GetArg(0), "-")
}

func TestParse_DoubleDashSentinel(t *testing.T) {
	parser := NewParser("", "")
	parser.AddFlag("bar")

	err := parser.ParseArgs([]string{"foo", "--", "--bar", "--baz"})
	vital.Nil(t, err)
	assert.Equal(t, parser.NumArgs(), 3)
	assert.Equal(t, parser.GetArg(0), "foo")
	assert.Equal(t, parser.GetArg(1), "--bar")
	assert.Equal(t, parser.GetArg(2), "--baz")
	assert.Equal(t, parser.GetFlag("bar"), false)
}

func TestParse_UnrecognizedLongOption(t *testing.T) {
	parser := NewParser("", "")
	parser.AddFlag("verbose")

	err := parser.ParseArgs([]string{"--verbsoe"})
	assert.NotNil(t, err)

	var ue argerr.UnrecognizedOptionError
	ok := stderrs.As(err, &ue)
	assert.True(t, ok)
	assert.Equal(t, ue.Prefix, "--")
	assert.Equal(t, ue.Name, "verbsoe")
	assert.StringContains(t, err.Error(), "did you mean --verbose?")
}

func TestParse_UnrecognizedShortOption(t *testing.T) {
	parser := NewParser("", "")
	parser.AddFlag("bool b")

	err := parser.ParseArgs([]string{"-x"})
	assert.NotNil(t, err)

	var ue argerr.UnrecognizedOptionError
	ok := stderrs.As(err, &ue)
	assert.True(t, ok)
	assert.Equal(t, ue.Prefix, "-")
	assert.Equal(t, ue.Name, "x")
}

func TestParse_MissingOptionValueAtEndOfStream(t *testing.T) {
	parser := NewParser("", "")
	parser.AddStr("string", "default")

	err := parser.ParseArgs([]string{"--string"})
	assert.NotNil(t, err)

	var me argerr.MissingOptionValueError
	ok := stderrs.As(err, &me)
	assert.True(t, ok)
	assert.StringContains(t, err.Error(), "missing argument for the --string option")
}

func TestParse_MissingOptionValueBeforeAnotherOption(t *testing.T) {
	parser := NewParser("", "")
	parser.AddStr("string", "default")
	parser.AddFlag("bool")

	// '--bool' classifies as a new option, not a value.
	err := parser.ParseArgs([]string{"--string", "--bool"})
	assert.NotNil(t, err)

	var me argerr.MissingOptionValueError
	ok := stderrs.As(err, &me)
	assert.True(t, ok)
}

func TestParse_FlagWithEqualsIsMalformed(t *testing.T) {
	parser := NewParser("", "")
	parser.AddFlag("bool b")

	err := parser.ParseArgs([]string{"--bool=true"})
	assert.NotNil(t, err)

	var fe argerr.MalformedFlagAssignmentError
	ok := stderrs.As(err, &fe)
	assert.True(t, ok)
	assert.StringContains(t, err.Error(), "invalid format for boolean flag --bool")

	err = parser.ParseArgs([]string{"-b=true"})
	ok = stderrs.As(err, &fe)
	assert.True(t, ok)
	assert.StringContains(t, err.Error(), "invalid format for boolean flag -b")
}

func TestParse_EmptyEqualsValue(t *testing.T) {
	parser := NewParser("", "")
	parser.AddStr("string", "default")

	err := parser.ParseArgs([]string{"--string="})
	assert.NotNil(t, err)

	var ee argerr.MissingEqualsValueError
	ok := stderrs.As(err, &ee)
	assert.True(t, ok)
	assert.StringContains(t, err.Error(), "missing argument for the --string option")
}

func TestParse_ConversionFailureIsFatal(t *testing.T) {
	parser := NewParser("", "")
	parser.AddInt("int", 101)

	err := parser.ParseArgs([]string{"--int", "notanumber"})
	assert.NotNil(t, err)

	var ce argerr.ConversionError
	ok := stderrs.As(err, &ce)
	assert.True(t, ok)
	assert.Equal(t, ce.Value, "notanumber")
}

func TestParse_PositionalConversions(t *testing.T) {
	parser := NewParser("", "")

	vital.Nil(t, parser.ParseArgs([]string{"1", "2", "3"}))
	ints, err := parser.ArgsAsInts()
	vital.Nil(t, err)
	assert.Equal(t, len(ints), 3)
	assert.Equal(t, ints[0], 1)
	assert.Equal(t, ints[2], 3)

	floats, err := parser.ArgsAsFloats()
	vital.Nil(t, err)
	assert.Equal(t, floats[1], 2.0)
}

func TestParse_PositionalConversionFailureReportsPosition(t *testing.T) {
	parser := NewParser("", "")

	vital.Nil(t, parser.ParseArgs([]string{"1", "two", "3"}))
	_, err := parser.ArgsAsInts()
	assert.NotNil(t, err)

	var ce argerr.ConversionError
	ok := stderrs.As(err, &ce)
	assert.True(t, ok)
	assert.Equal(t, ce.Value, "two")
	assert.Equal(t, ce.Index, 1)
}

func TestParse_ClearArgs(t *testing.T) {
	parser := NewParser("", "")

	vital.Nil(t, parser.ParseArgs([]string{"foo", "bar"}))
	assert.Equal(t, parser.NumArgs(), 2)
	parser.ClearArgs()
	assert.Equal(t, parser.HasArgs(), false)
}

func TestParse_SettersAppend(t *testing.T) {
	parser := NewParser("", "")
	parser.AddStr("string", "default")
	parser.AddFlag("bool")
	parser.AddStrList("list", false)

	parser.SetStr("string", "manual")
	assert.Equal(t, parser.GetStr("string"), "manual")

	parser.SetFlag("bool")
	assert.Equal(t, parser.GetFlag("bool"), true)
	parser.UnsetFlag("bool")
	assert.Equal(t, parser.GetFlag("bool"), false)

	parser.SetStr("list", "a")
	parser.SetStr("list", "b")
	assert.Equal(t, parser.LenList("list"), 2)
}

func TestParse_UnregisteredGetterPanics(t *testing.T) {
	parser := NewParser("", "")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected a panic from an unregistered option lookup")
		}
	}()
	parser.GetFlag("nope")
}
