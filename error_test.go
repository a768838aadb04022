package col

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "internal",
			err:  &ParseError{Kind: KindInternal, Name: "app", Detail: "build produced int, caller requested string"},
			want: `internal error in "app": build produced int, caller requested string`,
		},
		{
			name: "unknown option",
			err:  &ParseError{Kind: KindUnknownOption, Token: "--cont"},
			want: `unknown option "--cont"`,
		},
		{
			name: "unknown option with suggestions",
			err:  &ParseError{Kind: KindUnknownOption, Token: "--cont", Suggestions: []string{"--count", "--color"}},
			want: "unknown option \"--cont\". Did you mean one of these?\n\t--count\n\t--color",
		},
		{
			name: "show help",
			err:  &ParseError{Kind: KindShowHelp, Help: "Usage:\n  app"},
			want: "help requested",
		},
		{
			name: "duplicate option",
			err:  &ParseError{Kind: KindDuplicateOption, Name: "count"},
			want: "duplicate option --count",
		},
		{
			name: "missing value",
			err:  &ParseError{Kind: KindMissingValue, Name: "count"},
			want: "no value given for option --count",
		},
		{
			name: "conversion",
			err:  &ParseError{Kind: KindConversion, Name: "mode", Value: "slow"},
			want: `invalid value "slow" for option --mode`,
		},
		{
			name: "invalid number syntax",
			err:  &ParseError{Kind: KindInvalidNumber, Name: "count", Value: "seven", Reason: NumberSyntax},
			want: `invalid number "seven" for option --count: invalid syntax`,
		},
		{
			name: "invalid number range",
			err:  &ParseError{Kind: KindInvalidNumber, Name: "count", Value: "1e99", Reason: NumberRange},
			want: `invalid number "1e99" for option --count: value out of range`,
		},
		{
			name: "required",
			err:  &ParseError{Kind: KindRequired, Name: "name"},
			want: "required option --name was not given",
		},
		{
			name: "invalid config empty default",
			err:  &ParseError{Kind: KindInvalidConfig, Name: "when", Defect: EmptyDefault},
			want: "invalid configuration for option --when: no default value source",
		},
		{
			name: "invalid config empty parser",
			err:  &ParseError{Kind: KindInvalidConfig, Name: "when", Defect: EmptyParser},
			want: "invalid configuration for option --when: no value parser",
		},
		{
			name: "default generation",
			err:  &ParseError{Kind: KindDefaultGeneration, Name: "dir", Err: errors.New("no home directory")},
			want: "could not generate default value for option --dir: no home directory",
		},
		{
			name: "default generation without a cause",
			err:  &ParseError{Kind: KindDefaultGeneration, Name: "dir"},
			want: "could not generate default value for option --dir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestParseErrorHelpSentinel(t *testing.T) {
	t.Parallel()

	help := &ParseError{Kind: KindShowHelp, Help: "Usage:\n  app"}
	assert.ErrorIs(t, help, ErrHelp)

	var other error = &ParseError{Kind: KindRequired, Name: "name"}
	assert.NotErrorIs(t, other, ErrHelp)
}

func TestParseErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &ParseError{Kind: KindDefaultGeneration, Name: "dir", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestUserError(t *testing.T) {
	t.Parallel()

	user := []ErrorKind{
		KindUnknownOption, KindDuplicateOption, KindMissingValue,
		KindConversion, KindInvalidNumber, KindRequired,
	}
	for _, kind := range user {
		assert.True(t, (&ParseError{Kind: kind}).UserError(), "kind %d", kind)
	}
	notUser := []ErrorKind{
		KindUnknown, KindInternal, KindShowHelp,
		KindInvalidConfig, KindDefaultGeneration,
	}
	for _, kind := range notUser {
		assert.False(t, (&ParseError{Kind: kind}).UserError(), "kind %d", kind)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 0, ExitCode(&ParseError{Kind: KindShowHelp}))
	assert.Equal(t, 2, ExitCode(&ParseError{Kind: KindRequired, Name: "name"}))
	assert.Equal(t, 2, ExitCode(&ParseError{Kind: KindUnknownOption, Token: "--x"}))
	assert.Equal(t, 1, ExitCode(&ParseError{Kind: KindInvalidConfig, Name: "x"}))
	assert.Equal(t, 1, ExitCode(errors.New("some other failure")))
}
