package col

import (
	"errors"
	"fmt"

	"github.com/colkit/col/pkg/suggest"
)

const helpToken = "--help"

// cursor walks the argument list. Tokens are consumed strictly left to
// right and never revisited.
type cursor struct {
	args []string
	pos  int
}

func (c *cursor) done() bool   { return c.pos >= len(c.args) }
func (c *cursor) peek() string { return c.args[c.pos] }
func (c *cursor) next() string { tok := c.args[c.pos]; c.pos++; return tok }

// slot tracks one option's state during a single parse.
type slotState int

const (
	// slotUnset means the option has not been named yet.
	slotUnset slotState = iota
	// slotOutstanding means the option was named but its value token was
	// withheld because the next token spelled another declared option.
	slotOutstanding
	// slotSet means the option holds a converted value.
	slotSet
)

type slot struct {
	state slotState
	value any
}

// Parse resolves args against the command tree rooted at root and returns
// the root's build result, asserted to T. The tree is validated first;
// tree defects are reported as plain errors before any token is consumed.
//
// Input errors are returned as *ParseError values. A --help token anywhere
// short-circuits the parse with an error satisfying errors.Is(err, ErrHelp)
// whose Help field carries the rendered usage text for the command being
// resolved at that point.
func Parse[T any](root *Command, args []string) (T, error) {
	var zero T
	if root == nil {
		return zero, fmt.Errorf("failed to parse: root command is nil")
	}
	if err := validateTree(root, ""); err != nil {
		return zero, fmt.Errorf("failed to parse: %w", err)
	}
	cur := &cursor{args: args}
	result, err := root.resolve(cur, []*Command{root})
	if err != nil {
		return zero, err
	}
	out, ok := result.(T)
	if !ok {
		return zero, &ParseError{
			Kind:   KindInternal,
			Name:   root.Name,
			Detail: fmt.Sprintf("build produced %T, caller requested %T", result, zero),
		}
	}
	return out, nil
}

// resolve runs the match loop for one command: each remaining token is
// tried as --help, then as a subcommand name (at most once per node), then
// as one of the node's option spellings. The first token matching none of
// these ends the parse with an unknown-option error. When the loop ends,
// absent options are filled from their default sources and Build is
// invoked.
func (c *Command) resolve(cur *cursor, path []*Command) (any, error) {
	slots := make([]slot, len(c.Options))
	var sel Selection

	for !cur.done() {
		tok := cur.peek()
		if tok == helpToken {
			return nil, &ParseError{Kind: KindShowHelp, Help: renderUsage(path)}
		}
		if sel.None() {
			if sub := c.findSubCommand(tok); sub != nil {
				cur.next()
				value, err := sub.resolve(cur, append(path, sub))
				if err != nil {
					return nil, err
				}
				sel = Selection{Command: sub.Name, Value: value}
				continue
			}
		}
		i := c.findOption(tok)
		if i < 0 {
			return nil, c.unknownTokenError(tok, sel.None())
		}
		opt := c.Options[i]
		if slots[i].state != slotUnset {
			return nil, &ParseError{Kind: KindDuplicateOption, Name: opt.name}
		}
		cur.next()
		if opt.kind == kindFlag {
			slots[i] = slot{state: slotSet, value: opt.flagValue()}
			continue
		}
		if cur.done() {
			return nil, &ParseError{Kind: KindMissingValue, Name: opt.name}
		}
		// A value token spelled like one of this command's own options is
		// withheld: it is matched as an option on the next iteration, and
		// the slot stays open so the missing value is reported once the
		// loop ends.
		if c.findOption(cur.peek()) >= 0 {
			slots[i].state = slotOutstanding
			continue
		}
		raw := cur.next()
		value, err := opt.convert(raw)
		if err != nil {
			return nil, err
		}
		slots[i] = slot{state: slotSet, value: value}
	}

	values, err := c.fillDefaults(slots)
	if err != nil {
		return nil, err
	}
	return c.Build(sel, Values{values: values})
}

// fillDefaults populates a value for every declared option, in declaration
// order: input value, then DefaultFunc, then Default, then the type's zero
// value. Required options with no default source and no input fail, as do
// options whose type admits no implicit zero.
func (c *Command) fillDefaults(slots []slot) (map[string]any, error) {
	values := make(map[string]any, len(c.Options))
	for i, opt := range c.Options {
		switch slots[i].state {
		case slotSet:
			values[opt.name] = slots[i].value
			continue
		case slotOutstanding:
			return nil, &ParseError{Kind: KindMissingValue, Name: opt.name}
		}
		switch {
		case opt.defaultFunc != nil:
			v, err := opt.defaultFunc()
			if err != nil {
				var pe *ParseError
				if errors.As(err, &pe) {
					return nil, err
				}
				return nil, &ParseError{Kind: KindDefaultGeneration, Name: opt.name, Err: err}
			}
			// A generator yielding no value and no error still leaves the
			// slot unfilled, which the Values contract does not allow.
			if v == nil {
				return nil, &ParseError{Kind: KindDefaultGeneration, Name: opt.name}
			}
			values[opt.name] = v
		case opt.hasDefault:
			values[opt.name] = opt.defaultValue
		case opt.required:
			return nil, &ParseError{Kind: KindRequired, Name: opt.name}
		case opt.zero != nil:
			values[opt.name] = opt.zero
		default:
			return nil, &ParseError{Kind: KindInvalidConfig, Name: opt.name, Defect: EmptyDefault}
		}
	}
	return values, nil
}

// unknownTokenError builds the unknown-option error for tok, ranking the
// command's option spellings, and its subcommand names when a subcommand
// could still be selected, as suggestion candidates.
func (c *Command) unknownTokenError(tok string, includeSubs bool) *ParseError {
	candidates := make([]string, 0, len(c.Options)+len(c.SubCommands))
	for _, o := range c.Options {
		candidates = append(candidates, o.token())
	}
	if includeSubs {
		for _, sub := range c.SubCommands {
			candidates = append(candidates, sub.Name)
		}
	}
	return &ParseError{
		Kind:        KindUnknownOption,
		Token:       tok,
		Suggestions: suggest.Rank(tok, candidates, 3),
	}
}
