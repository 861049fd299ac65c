package core

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chriso345/argyle/internal/common"
)

// Mockable for testing.
var (
	osExit           = os.Exit
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Callback is invoked when its registered command has been matched and
// the command's own parser has consumed the remaining arguments.
type Callback func(*Parser)

// Parser registers options and commands and parses a slice of raw
// arguments against them. Every registered command receives a full Parser
// instance of its own, so commands can nest to any depth, although in
// practice even two levels is confusing for users and best avoided.
type Parser struct {
	// Help text for the application or command. Non-empty help text
	// activates the automatic --help flag and the help pseudo-command.
	helptext string

	// Application version string. Non-empty activates --version.
	version string

	// Options indexed by every registered alias. Long names and
	// single-character shortcuts live in one map: "-f" looks up "f" and
	// "--foo" looks up "foo". Aliases of one option share one *Option.
	options map[string]*Option

	// Command sub-parsers indexed by every registered alias.
	commands map[string]*Parser

	// Command callbacks indexed by every registered alias.
	callbacks map[string]Callback

	// Positional arguments parsed from the input stream.
	arguments positionalList

	// Name of the matched command, if a command was found while parsing.
	cmdName string

	// The matched command's parser instance, if a command was found.
	cmdParser *Parser
}

// NewParser initializes a parser instance. Supplying help text activates
// the automatic --help flag, supplying a version string activates the
// automatic --version flag; empty strings leave both inactive.
func NewParser(helptext string, version string) *Parser {
	return &Parser{
		helptext:  strings.TrimSpace(helptext),
		version:   strings.TrimSpace(version),
		options:   make(map[string]*Option),
		commands:  make(map[string]*Parser),
		callbacks: make(map[string]Callback),
	}
}

// register inserts the same option instance under every alias in name.
func (parser *Parser) register(name string, opt *Option) *Option {
	for _, alias := range common.SplitAliases(name) {
		parser.options[alias] = opt
	}
	return opt
}

// AddFlag registers a boolean flag. name is a space-separated list of
// aliases; single-character aliases double as shortcuts in condensed
// clusters, so "verbose v" answers to --verbose and -v.
func (parser *Parser) AddFlag(name string) *Option {
	return parser.register(name, newFlag())
}

// AddStr registers a string option with a default value.
func (parser *Parser) AddStr(name string, def string) *Option {
	return parser.register(name, newStr(def))
}

// AddInt registers an integer option with a default value.
func (parser *Parser) AddInt(name string, def int) *Option {
	return parser.register(name, newInt(def))
}

// AddFloat registers a float option with a default value.
func (parser *Parser) AddFloat(name string, def float64) *Option {
	return parser.register(name, newFloat(def))
}

// AddFlagList registers a flag whose value count accumulates across
// occurrences.
func (parser *Parser) AddFlagList(name string) *Option {
	return parser.register(name, newList(flagKind, false))
}

// AddStrList registers a string list option. A greedy list consumes every
// value-shaped token following a single occurrence; a non-greedy list
// consumes exactly one value per occurrence.
func (parser *Parser) AddStrList(name string, greedy bool) *Option {
	return parser.register(name, newList(strKind, greedy))
}

// AddIntList registers an integer list option.
func (parser *Parser) AddIntList(name string, greedy bool) *Option {
	return parser.register(name, newList(intKind, greedy))
}

// AddFloatList registers a float list option.
func (parser *Parser) AddFloatList(name string, greedy bool) *Option {
	return parser.register(name, newList(floatKind, greedy))
}

// AddCmd registers a command and its associated callback. name is a
// space-separated list of aliases sharing one child parser. The child
// parser is returned so the caller can register the command's own options
// and sub-commands on it.
func (parser *Parser) AddCmd(name string, callback Callback, helptext string) *Parser {
	cmdParser := NewParser(helptext, "")
	for _, alias := range common.SplitAliases(name) {
		parser.commands[alias] = cmdParser
		parser.callbacks[alias] = callback
	}
	return cmdParser
}

// lookup returns the option registered under name. Accessing an
// unregistered alias is a contract violation.
func (parser *Parser) lookup(name string) *Option {
	opt, ok := parser.options[name]
	if !ok {
		panic(fmt.Sprintf("argyle: '%s' is not a registered option", name))
	}
	return opt
}

// Found reports whether any alias of the option appeared while parsing.
func (parser *Parser) Found(name string) bool {
	return parser.lookup(name).found
}

// GetFlag returns the named flag's current value.
func (parser *Parser) GetFlag(name string) bool {
	return parser.lookup(name).currentBool()
}

// GetStr returns the named string option's current value.
func (parser *Parser) GetStr(name string) string {
	return parser.lookup(name).currentStr()
}

// GetInt returns the named integer option's current value.
func (parser *Parser) GetInt(name string) int {
	return parser.lookup(name).currentInt()
}

// GetFloat returns the named float option's current value.
func (parser *Parser) GetFloat(name string) float64 {
	return parser.lookup(name).currentFloat()
}

// GetFlagList returns the named flag list's accumulated values.
func (parser *Parser) GetFlagList(name string) []bool {
	return parser.lookup(name).bools
}

// GetStrList returns the named list option's accumulated values.
func (parser *Parser) GetStrList(name string) []string {
	return parser.lookup(name).strs
}

// GetIntList returns the named list option's accumulated values.
func (parser *Parser) GetIntList(name string) []int {
	return parser.lookup(name).ints
}

// GetFloatList returns the named list option's accumulated values.
func (parser *Parser) GetFloatList(name string) []float64 {
	return parser.lookup(name).floats
}

// LenList returns the number of values stored for the named option.
func (parser *Parser) LenList(name string) int {
	return parser.lookup(name).length()
}

// ClearList empties the named option's stored values.
func (parser *Parser) ClearList(name string) {
	parser.lookup(name).clear()
}

// SetFlag sets the named flag to true. (Appends to list flags.)
func (parser *Parser) SetFlag(name string) {
	parser.lookup(name).appendBool(true)
}

// UnsetFlag sets the named flag to false. (Clears list flags.)
func (parser *Parser) UnsetFlag(name string) {
	opt := parser.lookup(name)
	if opt.list {
		opt.clear()
		return
	}
	opt.appendBool(false)
}

// SetStr sets the named option's value. (Appends to list options.)
func (parser *Parser) SetStr(name string, value string) {
	parser.lookup(name).appendStr(value)
}

// SetInt sets the named option's value. (Appends to list options.)
func (parser *Parser) SetInt(name string, value int) {
	parser.lookup(name).appendInt(value)
}

// SetFloat sets the named option's value. (Appends to list options.)
func (parser *Parser) SetFloat(name string, value float64) {
	parser.lookup(name).appendFloat(value)
}

// HasArgs returns true if the parser has identified one or more
// positional arguments.
func (parser *Parser) HasArgs() bool {
	return len(parser.arguments.all()) > 0
}

// NumArgs returns the number of positional arguments.
func (parser *Parser) NumArgs() int {
	return len(parser.arguments.all())
}

// GetArg returns the positional argument at the specified index.
func (parser *Parser) GetArg(index int) string {
	return parser.arguments.all()[index]
}

// GetArgs returns the positional arguments as a slice of strings.
func (parser *Parser) GetArgs() []string {
	return parser.arguments.all()
}

// ClearArgs empties the positional argument list.
func (parser *Parser) ClearArgs() {
	parser.arguments.clear()
}

// ArgsAsInts attempts to convert every positional argument to an integer,
// failing on the first element that does not convert.
func (parser *Parser) ArgsAsInts() ([]int, error) {
	return parser.arguments.asInts()
}

// ArgsAsFloats attempts to convert every positional argument to a float,
// failing on the first element that does not convert.
func (parser *Parser) ArgsAsFloats() ([]float64, error) {
	return parser.arguments.asFloats()
}

// HasCmd returns true if the parser has identified a registered command.
func (parser *Parser) HasCmd() bool {
	return parser.cmdName != ""
}

// GetCmd returns the matched command's name, if a command was found.
func (parser *Parser) GetCmd() string {
	return parser.cmdName
}

// GetCmdParser returns the matched command's parser instance, if a
// command was found.
func (parser *Parser) GetCmdParser() *Parser {
	return parser.cmdParser
}

// optionNames returns every registered option alias, sorted.
func (parser *Parser) optionNames() []string {
	names := make([]string, 0, len(parser.options))
	for name := range parser.options {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// commandNames returns every registered command alias, sorted.
func (parser *Parser) commandNames() []string {
	names := make([]string, 0, len(parser.commands))
	for name := range parser.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String lists all options, positional arguments and the matched command
// for debugging.
func (parser *Parser) String() string {
	lines := make([]string, 0, 10)

	lines = append(lines, "Options:")
	if len(parser.options) > 0 {
		for _, name := range parser.optionNames() {
			lines = append(lines, fmt.Sprintf("  %v: %v", name, parser.options[name]))
		}
	} else {
		lines = append(lines, "  [none]")
	}

	lines = append(lines, "\nArguments:")
	if parser.HasArgs() {
		for _, arg := range parser.GetArgs() {
			lines = append(lines, fmt.Sprintf("  %v", arg))
		}
	} else {
		lines = append(lines, "  [none]")
	}

	lines = append(lines, "\nCommand:")
	if parser.HasCmd() {
		lines = append(lines, fmt.Sprintf("  %v", parser.GetCmd()))
	} else {
		lines = append(lines, "  [none]")
	}

	return strings.Join(lines, "\n")
}
