package argyle

import "github.com/chriso345/argyle/core"

// Parser registers options and commands and parses raw argument lists
// against them. Every registered command receives a full Parser instance
// of its own, so commands can nest to any depth.
type Parser = core.Parser

// Option is the typed value cell shared by every alias of a registered
// option. Registration methods return it so applications can hold a
// direct handle instead of querying the parser by name.
type Option = core.Option

// Callback is invoked when its registered command has been matched and
// the command's own parser has consumed the remaining arguments.
type Callback = core.Callback

// New initializes a parser instance. Supplying non-empty help text
// activates the automatic --help flag and the 'help <command>'
// pseudo-command; supplying a non-empty version string activates the
// automatic --version flag.
//
// Usage:
//
//	parser := argyle.New("Usage: mytool...", "1.0.0")
//
//	// Aliases are space-separated; single-character aliases double as
//	// shortcuts in condensed clusters (-vq).
//	parser.AddFlag("verbose v")
//	parser.AddStr("out o", "a.out")
//	parser.AddIntList("port p", false)
//
//	parser.AddCmd("build", buildCallback, "Usage: mytool build...")
//
//	parser.Parse()
func New(helptext string, version string) *Parser {
	return core.NewParser(helptext, version)
}
