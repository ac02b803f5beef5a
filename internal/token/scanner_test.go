package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Line
	}{
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name: "whitespace only",
			line: "   \t ",
			want: Line{{KindPlain, "   \t "}},
		},
		{
			name: "key value pair",
			line: `"a": 1`,
			want: Line{
				{KindKey, `"a"`},
				{KindPunct, ":"},
				{KindPlain, " "},
				{KindNumber, "1"},
			},
		},
		{
			name: "string value is not a key",
			line: `"a": "b"`,
			want: Line{
				{KindKey, `"a"`},
				{KindPunct, ":"},
				{KindPlain, " "},
				{KindString, `"b"`},
			},
		},
		{
			name: "key with whitespace before colon",
			line: `"a"  : true`,
			want: Line{
				{KindKey, `"a"`},
				{KindPlain, "  "},
				{KindPunct, ":"},
				{KindPlain, " "},
				{KindBoolean, "true"},
			},
		},
		{
			name: "string at end of line stays a string",
			line: `  "pending"`,
			want: Line{
				{KindPlain, "  "},
				{KindString, `"pending"`},
			},
		},
		{
			name: "string with escaped quote",
			line: `"say \"hi\""`,
			want: Line{{KindString, `"say \"hi\""`}},
		},
		{
			name: "unterminated quote falls through as plain",
			line: `"oops: 1`,
			want: Line{
				{KindPlain, `"oops`},
				{KindPunct, ":"},
				{KindPlain, " "},
				{KindNumber, "1"},
			},
		},
		{
			name: "trailing backslash never closes",
			line: `"oops\`,
			want: Line{{KindPlain, `"oops\`}},
		},
		{
			name: "object line",
			line: `{"n": -1.5e3, "ok": false}`,
			want: Line{
				{KindPunct, "{"},
				{KindKey, `"n"`},
				{KindPunct, ":"},
				{KindPlain, " "},
				{KindNumber, "-1.5e3"},
				{KindPunct, ","},
				{KindPlain, " "},
				{KindKey, `"ok"`},
				{KindPunct, ":"},
				{KindPlain, " "},
				{KindBoolean, "false"},
				{KindPunct, "}"},
			},
		},
		{
			name: "array of literals",
			line: `[null, true, 0.25]`,
			want: Line{
				{KindPunct, "["},
				{KindNull, "null"},
				{KindPunct, ","},
				{KindPlain, " "},
				{KindBoolean, "true"},
				{KindPunct, ","},
				{KindPlain, " "},
				{KindNumber, "0.25"},
				{KindPunct, "]"},
			},
		},
		{
			name: "word boundaries keep identifiers plain",
			line: "truely nulled x1",
			want: Line{{KindPlain, "truely nulled x1"}},
		},
		{
			name: "digits inside identifier stay plain",
			line: "abc123",
			want: Line{{KindPlain, "abc123"}},
		},
		{
			name: "number with incomplete exponent",
			line: "12e",
			want: Line{{KindPlain, "12e"}},
		},
		{
			name: "bare minus is plain",
			line: "- 3",
			want: Line{
				{KindPlain, "- "},
				{KindNumber, "3"},
			},
		},
		{
			name: "unrecognized bytes collect into plain runs",
			line: "@#$ true &*",
			want: Line{
				{KindPlain, "@#$ "},
				{KindBoolean, "true"},
				{KindPlain, " &*"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line)
			if !got.Equal(tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	lines := []string{
		"",
		" ",
		`{"a": [1, 2, 3], "b": {"c": null}}`,
		`"unterminated`,
		"\ttabs\tand spaces",
		"-42.5e-10,true,false,null",
		"héllo wörld ☃",
		`\\\"`,
	}

	for _, line := range lines {
		if got := Tokenize(line).Text(); got != line {
			t.Errorf("round trip of %q produced %q", line, got)
		}
	}
}

// Property: for any line, concatenating token texts reproduces the line
// exactly, and no token text embeds a newline or is empty.
func TestTokenizeRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.String().Draw(t, "line")
		line := strings.ReplaceAll(raw, "\n", "")

		toks := Tokenize(line)
		require.Equal(t, line, toks.Text(), "token texts must reassemble the line")
		for _, tok := range toks {
			require.NotEmpty(t, tok.Text, "tokens must not be empty")
		}
	})
}

// Property: tokenization is deterministic and stateless across calls.
func TestTokenizeStateless(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := strings.ReplaceAll(rapid.String().Draw(t, "line"), "\n", "")
		first := Tokenize(line)
		// Interleave unrelated calls to shake out any shared scanner state.
		Tokenize(`"x": [1]`)
		Tokenize("")
		second := Tokenize(line)
		require.True(t, first.Equal(second), "repeat tokenization must match")
	})
}
