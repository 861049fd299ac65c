package errors

import "fmt"

// UnrecognizedOptionError indicates a token that looks like an option but
// matches no registered alias. Prefix is "-" or "--" depending on the form
// the user typed. Suggestion, if present, is a close match the user may
// have intended.
type UnrecognizedOptionError struct{ Prefix, Name, Suggestion string }

func (e UnrecognizedOptionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s%s is not a recognised option (did you mean %s%s?)",
			e.Prefix, e.Name, e.Prefix, e.Suggestion)
	}
	return fmt.Sprintf("%s%s is not a recognised option", e.Prefix, e.Name)
}

// UnrecognizedCommandError indicates the argument to the automatic help
// command matched no registered command.
type UnrecognizedCommandError struct{ Name, Suggestion string }

func (e UnrecognizedCommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("'%s' is not a recognised command (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("'%s' is not a recognised command", e.Name)
}

// MissingOptionValueError indicates a non-flag option reached the end of
// the stream, or a token classified as a new option, before its required
// value could be consumed.
type MissingOptionValueError struct{ Prefix, Name string }

func (e MissingOptionValueError) Error() string {
	return fmt.Sprintf("missing argument for the %s%s option", e.Prefix, e.Name)
}

// MalformedFlagAssignmentError indicates a boolean flag was written in the
// name=value form.
type MalformedFlagAssignmentError struct{ Prefix, Name string }

func (e MalformedFlagAssignmentError) Error() string {
	return fmt.Sprintf("invalid format for boolean flag %s%s", e.Prefix, e.Name)
}

// MissingEqualsValueError indicates a name=value form with an empty value
// half.
type MissingEqualsValueError struct{ Prefix, Name string }

func (e MissingEqualsValueError) Error() string {
	return fmt.Sprintf("missing argument for the %s%s option", e.Prefix, e.Name)
}

// ConversionError indicates a token could not be parsed as the declared
// type. Kind is a human-readable type name, e.g. "an integer". Index is
// the token's position within the positional argument list, or -1 when
// the token was supplied as an option value.
type ConversionError struct {
	Value string
	Kind  string
	Index int
}

func (e ConversionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("cannot parse '%s' as %s (argument %d)", e.Value, e.Kind, e.Index)
	}
	return fmt.Sprintf("cannot parse '%s' as %s", e.Value, e.Kind)
}

// MissingHelpArgumentError indicates the help command was the final token.
type MissingHelpArgumentError struct{}

func (e MissingHelpArgumentError) Error() string {
	return "the help command requires an argument"
}

// Helper constructors
func NewUnrecognizedOption(prefix, name, suggestion string) error {
	return UnrecognizedOptionError{Prefix: prefix, Name: name, Suggestion: suggestion}
}
func NewUnrecognizedCommand(name, suggestion string) error {
	return UnrecognizedCommandError{Name: name, Suggestion: suggestion}
}
func NewMissingOptionValue(prefix, name string) error {
	return MissingOptionValueError{Prefix: prefix, Name: name}
}
func NewMalformedFlagAssignment(prefix, name string) error {
	return MalformedFlagAssignmentError{Prefix: prefix, Name: name}
}
func NewMissingEqualsValue(prefix, name string) error {
	return MissingEqualsValueError{Prefix: prefix, Name: name}
}
func NewConversion(value, kind string) error {
	return ConversionError{Value: value, Kind: kind, Index: -1}
}
func NewConversionAt(value, kind string, index int) error {
	return ConversionError{Value: value, Kind: kind, Index: index}
}
func NewMissingHelpArgument() error {
	return MissingHelpArgumentError{}
}
