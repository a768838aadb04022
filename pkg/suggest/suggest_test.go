package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		candidates []string
		max        int
		expected   []string
	}{
		{
			name:       "exact match first",
			target:     "status",
			candidates: []string{"start", "status", "stash"},
			max:        2,
			expected:   []string{"status", "stash"},
		},
		{
			name:       "prefix match",
			target:     "sta",
			candidates: []string{"start", "status", "remove"},
			max:        3,
			expected:   []string{"start", "status"},
		},
		{
			name:       "ties break alphabetically",
			target:     "ad",
			candidates: []string{"add", "adz"},
			max:        2,
			expected:   []string{"add", "adz"},
		},
		{
			name:       "max caps the result",
			target:     "sta",
			candidates: []string{"start", "status", "stash"},
			max:        1,
			expected:   []string{"start"},
		},
		{
			name:       "dashed option spellings",
			target:     "--cont",
			candidates: []string{"--count", "--color", "--name"},
			max:        3,
			expected:   []string{"--count", "--color"},
		},
		{
			name:       "below threshold",
			target:     "xyz",
			candidates: []string{"add", "remove"},
			max:        3,
			expected:   nil,
		},
		{
			name:       "empty target",
			target:     "",
			candidates: []string{"add"},
			max:        3,
			expected:   nil,
		},
		{
			name:       "non-positive max",
			target:     "add",
			candidates: []string{"add"},
			max:        0,
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Rank(tt.target, tt.candidates, tt.max))
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{name: "identical", a: "start", b: "start", expected: 1.0},
		{name: "case insensitive", a: "Start", b: "start", expected: 1.0},
		{name: "prefix", a: "sta", b: "start", expected: 0.9},
		{name: "one edit", a: "stert", b: "start", expected: 0.8},
		{name: "unrelated", a: "hello", b: "world", expected: 0.2},
		{name: "one empty", a: "hello", b: "", expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, similarity(tt.a, tt.b), 0.001)
		})
	}
}

func TestEditDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{name: "identical", a: "remove", b: "remove", expected: 0},
		{name: "substitution", a: "remove", b: "remold", expected: 2},
		{name: "insertion", a: "add", b: "adds", expected: 1},
		{name: "deletion", a: "adds", b: "add", expected: 1},
		{name: "empty first", a: "", b: "add", expected: 3},
		{name: "empty second", a: "add", b: "", expected: 3},
		{name: "both empty", a: "", b: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, editDistance(tt.a, tt.b))
		})
	}
}
