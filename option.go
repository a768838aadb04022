package col

import (
	"errors"
	"fmt"
	"strconv"
)

type optionKind int

const (
	kindFlag optionKind = iota
	kindString
	kindInt
	kindFloat
	kindCustom
)

// Option describes one named option of a [Command]: its name, help text,
// whether it is required, how its raw token converts to a value, and what
// happens when it is absent. Options are created with the constructors
// ([Flag], [String], [Int], [Float], [Custom], [CustomMaybe]) and refined
// with the chainable modifiers; the zero Option is not usable.
//
// An option never consumes more than one value token, and a flag option
// never consumes any.
type Option struct {
	name     string
	help     string
	required bool
	kind     optionKind

	// flagDefault is the declared default of a flag option; naming the flag
	// toggles away from it.
	flagDefault *bool

	hasDefault   bool
	defaultValue any
	defaultFunc  func() (any, error)

	// parser converts the raw value token. nil on flag options; nil on a
	// value option is an EmptyParser configuration defect.
	parser func(raw string) (any, error)

	// zero is the canonical empty value used when the option is absent with
	// no default. nil means the type has no such value.
	zero any
}

// Flag declares a boolean option that consumes no value token. Naming the
// flag on the command line yields true, unless a default was declared with
// [Option.Default], in which case naming it yields the default's negation.
func Flag(name, help string) *Option {
	return &Option{name: name, help: help, kind: kindFlag, zero: false}
}

// String declares an option whose single value token is taken verbatim.
func String(name, help string) *Option {
	return &Option{
		name: name, help: help, kind: kindString, zero: "",
		parser: func(raw string) (any, error) { return raw, nil },
	}
}

// Int declares an option converted with the built-in integer parser.
// Decimal, 0x/0X hexadecimal and 0b/0B binary spellings are accepted; the
// stored value is an int64.
func Int(name, help string) *Option {
	return &Option{
		name: name, help: help, kind: kindInt, zero: int64(0),
		parser: func(raw string) (any, error) {
			n, err := strconv.ParseInt(raw, 0, 64)
			if err != nil {
				return nil, numberError(name, raw, err)
			}
			return n, nil
		},
	}
}

// Float declares an option converted with the built-in float64 parser.
func Float(name, help string) *Option {
	return &Option{
		name: name, help: help, kind: kindFloat, zero: float64(0),
		parser: func(raw string) (any, error) {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, numberError(name, raw, err)
			}
			return f, nil
		},
	}
}

func numberError(name, raw string, err error) *ParseError {
	reason := NumberSyntax
	if errors.Is(err, strconv.ErrRange) {
		reason = NumberRange
	}
	return &ParseError{Kind: KindInvalidNumber, Name: name, Value: raw, Reason: reason}
}

// Custom declares an option converted by the given function. A non-nil
// error aborts the parse and is returned to the caller unchanged, so
// parsers may fail with their own error payloads, including hand-built
// [ParseError] values.
func Custom[T any](name, help string, parse func(raw string) (T, error)) *Option {
	o := &Option{name: name, help: help, kind: kindCustom}
	var zero T
	o.zero = zero
	if parse != nil {
		o.parser = func(raw string) (any, error) {
			v, err := parse(raw)
			if err != nil {
				return nil, err
			}
			return v, nil
		}
	}
	return o
}

// CustomMaybe declares an option converted by a function that signals
// failure by returning false; the resolver then reports a conversion error
// naming the option and the raw text.
func CustomMaybe[T any](name, help string, parse func(raw string) (T, bool)) *Option {
	o := &Option{name: name, help: help, kind: kindCustom}
	var zero T
	o.zero = zero
	if parse != nil {
		o.parser = func(raw string) (any, error) {
			v, ok := parse(raw)
			if !ok {
				return nil, &ParseError{Kind: KindConversion, Name: name, Value: raw}
			}
			return v, nil
		}
	}
	return o
}

// Required marks the option as mandatory. A declared default satisfies the
// requirement: Required only causes a parse failure when the option is
// absent and no default exists.
func (o *Option) Required() *Option {
	o.required = true
	return o
}

// Default declares a constant default value, used when the option is absent
// from the input. On a flag option the default additionally becomes the
// toggle origin: naming the flag yields the default's negation.
//
// The value must match the option's value type; for the built-in kinds a
// mismatch panics immediately, since it is a defect in the command tree,
// not in any input.
func (o *Option) Default(v any) *Option {
	switch o.kind {
	case kindFlag:
		b, ok := v.(bool)
		if !ok {
			panic(fmt.Sprintf("col: default for flag --%s must be bool, got %T", o.name, v))
		}
		o.flagDefault = &b
		o.defaultValue = b
	case kindInt:
		switch n := v.(type) {
		case int:
			o.defaultValue = int64(n)
		case int64:
			o.defaultValue = n
		default:
			panic(fmt.Sprintf("col: default for int option --%s must be int or int64, got %T", o.name, v))
		}
	case kindFloat:
		switch f := v.(type) {
		case float64:
			o.defaultValue = f
		case int:
			o.defaultValue = float64(f)
		default:
			panic(fmt.Sprintf("col: default for float option --%s must be float64, got %T", o.name, v))
		}
	case kindString:
		s, ok := v.(string)
		if !ok {
			panic(fmt.Sprintf("col: default for string option --%s must be string, got %T", o.name, v))
		}
		o.defaultValue = s
	default:
		o.defaultValue = v
	}
	o.hasDefault = true
	o.defaultFunc = nil
	return o
}

// DefaultFunc declares a default-value generator, invoked only when the
// option is absent. A generator error surfaces as a default-generation
// failure unless it already is a *ParseError, which passes through as-is.
// A nil generator panics immediately, like a mistyped [Option.Default].
func (o *Option) DefaultFunc(fn func() (any, error)) *Option {
	if fn == nil {
		panic(fmt.Sprintf("col: nil default generator for option --%s", o.name))
	}
	o.defaultFunc = fn
	o.hasDefault = true
	return o
}

// NoImplicitDefault declares that the option's value type has no canonical
// empty value. If such an option is absent, not required, and has no
// declared default, the parse fails with an EmptyDefault configuration
// error instead of silently filling in the type's zero value.
func (o *Option) NoImplicitDefault() *Option {
	o.zero = nil
	return o
}

// Name returns the option name, without the leading dashes.
func (o *Option) Name() string { return o.name }

// Help returns the option's help text.
func (o *Option) Help() string { return o.help }

// token is the command-line spelling the option matches against.
func (o *Option) token() string { return "--" + o.name }

// flagValue is the value produced by naming a flag option: the negation of
// its declared default, or true when no default was declared.
func (o *Option) flagValue() bool {
	if o.flagDefault != nil {
		return !*o.flagDefault
	}
	return true
}

// convert runs the option's parser on one raw value token.
func (o *Option) convert(raw string) (any, error) {
	if o.parser == nil {
		return nil, &ParseError{Kind: KindInvalidConfig, Name: o.name, Defect: EmptyParser}
	}
	return o.parser(raw)
}
