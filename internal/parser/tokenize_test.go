package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "spaces and commas",
			input: "1, 2  3,4",
			want:  []string{"1", "2", "3", "4"},
		},
		{
			name:  "quoted run kept whole",
			input: `"hello world" 42`,
			want:  []string{"hello world", "42"},
		},
		{
			name:  "escaped quote inside quotes",
			input: `"say \"hi\"" x`,
			want:  []string{`say "hi"`, "x"},
		},
		{
			name:  "parenthesized group strips outer parens",
			input: "(1 2 3) foo",
			want:  []string{"1 2 3", "foo"},
		},
		{
			name:  "nested groups keep inner parens",
			input: "((1 2) (3 4))",
			want:  []string{"(1 2) (3 4)"},
		},
		{
			name:  "commas inside group are preserved",
			input: "(1,2),(3,4)",
			want:  []string{"1,2", "3,4"},
		},
		{
			name:  "quotes inside group are preserved verbatim",
			input: `("a b" c)`,
			want:  []string{`"a b" c`},
		},
		{
			name:  "closing paren inside quoted text does not close group",
			input: `(")" x) y`,
			want:  []string{`")" x`, "y"},
		},
		{
			name:  "paren inside a word is literal",
			input: "f(1,2) z",
			want:  []string{"f(1,2)", "z"},
		},
		{
			name:  "empty tokens dropped",
			input: " , ,, a ,",
			want:  []string{"a"},
		},
		{
			name:  "unterminated quote takes the rest",
			input: `a "b c`,
			want:  []string{"a", "b c"},
		},
		{
			name:  "stored reference is a plain token",
			input: "$player 3",
			want:  []string{"$player", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestTokenize_RecursiveGroups(t *testing.T) {
	outer := Tokenize("((1 2) (3 4))")
	require.Len(t, outer, 1)

	inner := Tokenize(outer[0])
	require.Equal(t, []string{"1 2", "3 4"}, inner)

	require.Equal(t, []string{"1", "2"}, Tokenize(inner[0]))
}

func TestTokenize_RejoinKeepsCount(t *testing.T) {
	inputs := []string{
		"a b c",
		"1,2,3",
		"  spaced   out , words ",
		"single",
		"",
	}

	for _, input := range inputs {
		first := Tokenize(input)
		second := Tokenize(strings.Join(first, " "))
		require.Len(t, second, len(first), "input %q", input)
	}
}

func TestIsReference(t *testing.T) {
	require.True(t, IsReference("$a"))
	require.True(t, IsReference("$_"))
	require.False(t, IsReference("$"))
	require.False(t, IsReference("a$"))
	require.False(t, IsReference(""))
}
