package col

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelp is the sentinel target for detecting a help request. It never
// appears as a returned error itself; use errors.Is against the error
// returned by [Parse]:
//
//	if errors.Is(err, col.ErrHelp) { ... }
var ErrHelp = errors.New("help requested")

// ErrorKind identifies one variant of the closed [ParseError] set.
type ErrorKind int

const (
	// KindUnknown is the zero kind, reserved for errors that carry no
	// further classification.
	KindUnknown ErrorKind = iota

	// KindInternal reports a state the resolver considers impossible, such
	// as a build function producing a value of the wrong type.
	KindInternal

	// KindUnknownOption reports a token matching neither a declared option
	// nor a declared subcommand.
	KindUnknownOption

	// KindShowHelp reports that the reserved --help token was seen. It is
	// carried on the error channel but is an expected outcome, not a fault;
	// the rendered usage text is in [ParseError.Help].
	KindShowHelp

	// KindDuplicateOption reports an option named more than once.
	KindDuplicateOption

	// KindMissingValue reports a value option whose value token never
	// arrived.
	KindMissingValue

	// KindConversion reports a parser that declined the raw value.
	KindConversion

	// KindInvalidNumber reports a built-in numeric conversion failure.
	KindInvalidNumber

	// KindRequired reports a required option that was not given.
	KindRequired

	// KindInvalidConfig reports a defect in the option declaration itself,
	// discovered while resolving. See [ConfigDefect].
	KindInvalidConfig

	// KindDefaultGeneration reports a default-value generator that failed.
	KindDefaultGeneration
)

// ConfigDefect narrows a KindInvalidConfig error.
type ConfigDefect int

const (
	// EmptyDefault means the option was absent, not required, had no
	// declared default, and its value type has no canonical empty value.
	EmptyDefault ConfigDefect = iota

	// EmptyParser means a value option has no conversion function wired.
	EmptyParser
)

func (d ConfigDefect) String() string {
	switch d {
	case EmptyDefault:
		return "no default value source"
	case EmptyParser:
		return "no value parser"
	default:
		return "unknown defect"
	}
}

// NumberReason narrows a KindInvalidNumber error.
type NumberReason int

const (
	// NumberSyntax means the raw text is not a number at all.
	NumberSyntax NumberReason = iota

	// NumberRange means the number does not fit the target type.
	NumberRange
)

func (r NumberReason) String() string {
	switch r {
	case NumberSyntax:
		return "invalid syntax"
	case NumberRange:
		return "value out of range"
	default:
		return "unknown reason"
	}
}

// ParseError is the structured failure produced by [Parse]. The Kind field
// selects the variant; the remaining fields are populated per kind as
// documented on the [ErrorKind] constants.
//
// Parsers supplied by the caller may return their own *ParseError values
// (or any other error), which pass through [Parse] unchanged.
type ParseError struct {
	Kind ErrorKind

	// Name is the option name, without the leading dashes.
	Name string

	// Token is the offending raw token for KindUnknownOption.
	Token string

	// Value is the raw value text for KindConversion and KindInvalidNumber.
	Value string

	// Reason narrows KindInvalidNumber.
	Reason NumberReason

	// Defect narrows KindInvalidConfig.
	Defect ConfigDefect

	// Detail carries free-form context for KindInternal.
	Detail string

	// Help holds the rendered usage text for KindShowHelp.
	Help string

	// Suggestions holds similarly named candidates for KindUnknownOption.
	Suggestions []string

	// Err is the generator's failure for KindDefaultGeneration.
	Err error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindInternal:
		return fmt.Sprintf("internal error in %q: %s", e.Name, e.Detail)
	case KindUnknownOption:
		msg := fmt.Sprintf("unknown option %q", e.Token)
		if len(e.Suggestions) > 0 {
			msg += ". Did you mean one of these?\n\t" + strings.Join(e.Suggestions, "\n\t")
		}
		return msg
	case KindShowHelp:
		return "help requested"
	case KindDuplicateOption:
		return fmt.Sprintf("duplicate option --%s", e.Name)
	case KindMissingValue:
		return fmt.Sprintf("no value given for option --%s", e.Name)
	case KindConversion:
		return fmt.Sprintf("invalid value %q for option --%s", e.Value, e.Name)
	case KindInvalidNumber:
		return fmt.Sprintf("invalid number %q for option --%s: %s", e.Value, e.Name, e.Reason)
	case KindRequired:
		return fmt.Sprintf("required option --%s was not given", e.Name)
	case KindInvalidConfig:
		return fmt.Sprintf("invalid configuration for option --%s: %s", e.Name, e.Defect)
	case KindDefaultGeneration:
		if e.Err == nil {
			return fmt.Sprintf("could not generate default value for option --%s", e.Name)
		}
		return fmt.Sprintf("could not generate default value for option --%s: %v", e.Name, e.Err)
	default:
		return "unknown error"
	}
}

// Unwrap exposes the carried cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrHelp) match a help request.
func (e *ParseError) Is(target error) bool {
	return target == ErrHelp && e.Kind == KindShowHelp
}

// UserError reports whether the error was caused by the input tokens rather
// than by the command tree's configuration. Help requests are neither.
func (e *ParseError) UserError() bool {
	switch e.Kind {
	case KindUnknownOption, KindDuplicateOption, KindMissingValue,
		KindConversion, KindInvalidNumber, KindRequired:
		return true
	default:
		return false
	}
}

// ExitCode maps a parse outcome to a conventional process exit code: 0 for
// success or a help request, 2 for bad input, 1 for everything else.
// Intended for main functions:
//
//	res, err := col.Parse[App](root, os.Args[1:])
//	if err != nil {
//	    ...
//	    os.Exit(col.ExitCode(err))
//	}
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrHelp) {
		return 0
	}
	var pe *ParseError
	if errors.As(err, &pe) && pe.UserError() {
		return 2
	}
	return 1
}
