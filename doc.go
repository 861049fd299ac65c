// Package argyle is a minimalist argument-parsing library for building
// command-line interfaces.
//
// Where its sibling library clifford derives a CLI from struct tags,
// argyle is imperative and registry-based: applications register typed
// options (flags, strings, integers, floats - single-valued or list,
// greedy or not) and sub-commands on a Parser, call Parse, and read
// typed values back. Long options, condensed short-option clusters,
// name=value forms, the '--' sentinel and recursive sub-command dispatch
// are all supported.
package argyle

//go:generate gomarkdoc ./ -o docs/argyle.md
