package core

import (
	"os"
	"strings"
	"unicode"

	"github.com/chriso345/argyle/display"
	"github.com/chriso345/argyle/errors"
	"github.com/chriso345/argyle/internal/common"
)

// Parse parses the application's command line arguments, skipping the
// program name. On the first parse error it prints a diagnostic to the
// error stream and exits with a non-zero status. Only the root parser's
// Parse method should be called - command arguments are parsed
// automatically.
func (parser *Parser) Parse() {
	if err := parser.ParseArgs(os.Args[1:]); err != nil {
		display.Error(stderr, err)
		osExit(1)
	}
}

// ParseArgs parses a slice of raw arguments, excluding the program name.
// It returns a typed error from the errors package on the first parse
// failure, leaving the parser partially populated; it never prints or
// exits on failure, so a bad argument list can be recovered from. The
// automatic --help, --version and 'help <command>' paths print to the
// output stream and terminate with a success status.
func (parser *Parser) ParseArgs(args []string) error {
	return parser.parseStream(newArgStream(args))
}

// Help prints the parser's help text and exits.
func (parser *Parser) Help() {
	display.Help(stdout, parser.helptext)
	osExit(0)
}

// parseStream is the engine's main loop: it consumes and classifies one
// token per iteration until the stream is exhausted or an error occurs.
// A matched command's parser takes over the same stream, so the parent
// never resumes scanning after a match.
func (parser *Parser) parseStream(stream *argStream) error {

	// Switch to turn off option parsing if we encounter a '--' token.
	// Everything following the '--' is treated as a positional argument.
	parsing := true

	for stream.hasNext() {
		arg := stream.next()

		// Option parsing has been turned off.
		if !parsing {
			parser.arguments.append(arg)
			continue
		}

		switch {

		// Turn off option parsing. The sentinel itself is not stored.
		case arg == "--":
			parsing = false

		// Long-form option.
		case strings.HasPrefix(arg, "--"):
			if err := parser.parseLongOption(arg[2:], stream); err != nil {
				return err
			}

		// Short-form option. A bare dash, or a dash followed by a digit,
		// is a positional argument rather than an option cluster.
		case strings.HasPrefix(arg, "-"):
			if arg == "-" || unicode.IsDigit([]rune(arg)[1]) {
				parser.arguments.append(arg)
				continue
			}
			if err := parser.parseShortOption(arg[1:], stream); err != nil {
				return err
			}

		default:
			// Is the argument a registered command? The command's parser
			// consumes the rest of the stream, then the callback runs
			// with the fully-parsed child. No further tokens are examined
			// at this level.
			if cmdParser, ok := parser.commands[arg]; ok {
				parser.cmdName = arg
				parser.cmdParser = cmdParser
				if err := cmdParser.parseStream(stream); err != nil {
					return err
				}
				if callback := parser.callbacks[arg]; callback != nil {
					callback(cmdParser)
				}
				return nil
			}

			// Is the argument the automatic 'help' command?
			if arg == "help" {
				if !stream.hasNext() {
					return errors.NewMissingHelpArgument()
				}
				name := stream.next()
				cmdParser, ok := parser.commands[name]
				if !ok {
					suggestion := common.ClosestMatch(name, parser.commandNames())
					return errors.NewUnrecognizedCommand(name, suggestion)
				}
				display.Help(stdout, cmdParser.helptext)
				osExit(0)
				return nil
			}

			// Otherwise, we have a positional argument.
			parser.arguments.append(arg)
		}
	}
	return nil
}

// parseLongOption parses a long-form option with its '--' prefix already
// stripped.
func (parser *Parser) parseLongOption(arg string, stream *argStream) error {

	// Do we have an option of the form --name=value?
	if strings.Contains(arg, "=") {
		return parser.parseEqualsOption("--", arg)
	}

	// Is the argument a registered option name?
	if opt, ok := parser.options[arg]; ok {
		return parser.consumeOptionValues(opt, "--", arg, stream)
	}

	// Is the argument the automatic --help flag?
	if arg == "help" && parser.helptext != "" {
		display.Help(stdout, parser.helptext)
		osExit(0)
		return nil
	}

	// Is the argument the automatic --version flag?
	if arg == "version" && parser.version != "" {
		display.Version(stdout, parser.version)
		osExit(0)
		return nil
	}

	suggestion := common.ClosestMatch(arg, parser.optionNames())
	return errors.NewUnrecognizedOption("--", arg, suggestion)
}

// parseShortOption parses a short-form option cluster with its leading
// dash stripped. Each character is a shortcut of its own, so
//
//	-bsif value 202 2.2
//
// reads as the flag b followed by s, i and f consuming one value each.
func (parser *Parser) parseShortOption(arg string, stream *argStream) error {

	// Do we have an option of the form -n=value?
	if strings.Contains(arg, "=") {
		return parser.parseEqualsOption("-", arg)
	}

	for _, c := range arg {
		name := string(c)
		opt, ok := parser.options[name]
		if !ok {
			suggestion := common.ClosestMatch(name, parser.optionNames())
			return errors.NewUnrecognizedOption("-", name, suggestion)
		}
		if err := parser.consumeOptionValues(opt, "-", name, stream); err != nil {
			return err
		}
	}
	return nil
}

// parseEqualsOption parses an option written in the name=value form.
// prefix is the dash prefix the user typed, for error reporting. The
// split is on the first '=', so values may themselves contain '='.
func (parser *Parser) parseEqualsOption(prefix string, arg string) error {
	split := strings.SplitN(arg, "=", 2)
	name, value := split[0], split[1]

	opt, ok := parser.options[name]
	if !ok {
		suggestion := common.ClosestMatch(name, parser.optionNames())
		return errors.NewUnrecognizedOption(prefix, name, suggestion)
	}
	if opt.kind == flagKind {
		return errors.NewMalformedFlagAssignment(prefix, name)
	}
	if value == "" {
		return errors.NewMissingEqualsValue(prefix, name)
	}

	opt.found = true
	return opt.appendArg(value)
}

// consumeOptionValues marks the option as found and consumes its value
// tokens from the stream: none for a flag, one for a single-valued or
// non-greedy list option, and as many tokens as classify as values for a
// greedy list.
func (parser *Parser) consumeOptionValues(opt *Option, prefix string, name string, stream *argStream) error {
	opt.found = true

	// A flag takes no argument. Presence sets it true.
	if opt.kind == flagKind {
		opt.appendBool(true)
		return nil
	}

	if !stream.hasNextValue() {
		return errors.NewMissingOptionValue(prefix, name)
	}
	if err := opt.appendArg(stream.next()); err != nil {
		return err
	}

	// A greedy list swallows every following value-shaped token.
	if opt.greedy {
		for stream.hasNextValue() {
			if err := opt.appendArg(stream.next()); err != nil {
				return err
			}
		}
	}
	return nil
}
