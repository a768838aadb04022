package col

import (
	"fmt"
	"strings"
)

// Command is one node of a command tree: a name, the options it accepts,
// its subcommands, and a build function that turns the resolved values
// into the node's result. Commands form an immutable tree that may be
// shared across goroutines; all per-parse state lives inside [Parse].
type Command struct {
	// Name is the command's name, matched exactly against input tokens.
	// Required on every node, including the root.
	Name string

	// Help is shown in the generated usage text. Optional.
	Help string

	// Options this command accepts. Order is preserved for matching and
	// for default filling; usage output sorts alphabetically.
	Options []*Option

	// SubCommands are the node's children, tried in declaration order.
	SubCommands []*Command

	// Build produces the node's result from the subcommand selection and
	// the fully populated option values. Required on every node.
	Build BuildFunc
}

// BuildFunc assembles a command's result. sel reports which subcommand, if
// any, was selected and carries that subcommand's own result; vs holds a
// value for every option the command declares.
type BuildFunc func(sel Selection, vs Values) (any, error)

// Selection reports the subcommand chosen during a parse. The zero
// Selection means no subcommand token appeared.
type Selection struct {
	// Command is the selected subcommand's name, or "" when none.
	Command string

	// Value is the selected subcommand's build result, or nil when none.
	Value any
}

// None reports whether no subcommand was selected.
func (s Selection) None() bool { return s.Command == "" }

// Values holds the resolved option values of one command. Every declared
// option is present, filled from the input or from its default source.
type Values struct {
	values map[string]any
}

// Get returns the value of the named option. It panics if the option was
// not declared on the command or if the stored value is not of type T;
// both are programmer errors in the command tree, not input errors.
func Get[T any](vs Values, name string) T {
	v, ok := vs.values[name]
	if !ok {
		panic(fmt.Sprintf("internal error: option not found: %q", name))
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for option %q: stored %T, requested %T", name, v, t))
	}
	return t
}

// findSubCommand returns the child whose name equals tok, in declaration
// order, or nil.
func (c *Command) findSubCommand(tok string) *Command {
	for _, sub := range c.SubCommands {
		if sub.Name == tok {
			return sub
		}
	}
	return nil
}

// findOption returns the index of the option whose spelling equals tok, in
// declaration order, or -1.
func (c *Command) findOption(tok string) int {
	for i, o := range c.Options {
		if o.token() == tok {
			return i
		}
	}
	return -1
}

func validateTree(c *Command, path string) error {
	if c.Name == "" {
		if path == "" {
			return fmt.Errorf("root command has no name")
		}
		return fmt.Errorf("subcommand under %q has no name", path)
	}
	if strings.Contains(c.Name, " ") {
		return fmt.Errorf("command name %q contains spaces", c.Name)
	}
	if strings.HasPrefix(c.Name, "-") {
		return fmt.Errorf("command name %q starts with a dash", c.Name)
	}
	full := c.Name
	if path != "" {
		full = path + " " + c.Name
	}
	if c.Build == nil {
		return fmt.Errorf("command %q has no build function", full)
	}
	seenOpts := make(map[string]bool, len(c.Options))
	for _, o := range c.Options {
		if o == nil {
			return fmt.Errorf("command %q has a nil option", full)
		}
		if o.name == "" {
			return fmt.Errorf("command %q has an option with no name", full)
		}
		if strings.HasPrefix(o.name, "-") {
			return fmt.Errorf("option name %q in command %q starts with a dash", o.name, full)
		}
		// --help is reserved and checked before option matching, so an
		// option with that name could never be reached.
		if o.name == "help" {
			return fmt.Errorf("option name %q in command %q is reserved", o.name, full)
		}
		if seenOpts[o.name] {
			return fmt.Errorf("duplicate option name %q in command %q", o.name, full)
		}
		seenOpts[o.name] = true
	}
	seenSubs := make(map[string]bool, len(c.SubCommands))
	for _, sub := range c.SubCommands {
		if sub == nil {
			return fmt.Errorf("command %q has a nil subcommand", full)
		}
		if seenSubs[sub.Name] {
			return fmt.Errorf("duplicate subcommand name %q in command %q", sub.Name, full)
		}
		seenSubs[sub.Name] = true
		if err := validateTree(sub, full); err != nil {
			return err
		}
	}
	return nil
}
