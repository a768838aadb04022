// Package col resolves command-line arguments against a declarative tree of
// named options and nested subcommands. A parse either produces a single,
// fully-populated result value assembled by the caller's build functions, or
// a structured error describing exactly what went wrong and where.
//
// The command tree is built once, up front, with plain struct literals and
// option constructors; it is immutable during parsing and safe to share
// between goroutines. Every call to [Parse] walks the tree with its own
// ephemeral state, so repeated parses of the same tree are independent and
// deterministic.
package col
