package document

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty text is one empty line", "", []string{""}},
		{"single line", "hello", []string{"hello"}},
		{"trailing newline keeps empty line", "a\n", []string{"a", ""}},
		{"multiple lines", "a\nb\nc", []string{"a", "b", "c"}},
		{"blank interior line", "a\n\nb", []string{"a", "", "b"}},
		{"only newlines", "\n\n", []string{"", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNewDocument(t *testing.T) {
	d := New("a\nb")

	if d.Text() != "a\nb" {
		t.Errorf("Text() = %q, want %q", d.Text(), "a\nb")
	}
	if d.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", d.LineCount())
	}
	if c := d.Caret(); c.Start != 0 || c.End != 0 {
		t.Errorf("initial caret = %+v, want zero", c)
	}
	if d.Revision() == 0 {
		t.Error("revision should be assigned on creation")
	}
}

func TestDocumentReplace(t *testing.T) {
	d := New("a")
	rev := d.Revision()

	d.Replace("ab\nc", 2, 2)

	if d.Text() != "ab\nc" {
		t.Errorf("Text() = %q, want %q", d.Text(), "ab\nc")
	}
	if got := d.Lines(); !reflect.DeepEqual(got, []string{"ab", "c"}) {
		t.Errorf("Lines() = %q", got)
	}
	if c := d.Caret(); c.Start != 2 || c.End != 2 {
		t.Errorf("caret = %+v, want {2 2}", c)
	}
	if d.Revision() == rev {
		t.Error("replace must produce a new revision")
	}
}

func TestDocumentReplaceCaretClamping(t *testing.T) {
	d := New("")

	// Offsets beyond the text clamp to the text length.
	d.Replace("abc", 10, 99)
	if c := d.Caret(); c.Start != 3 || c.End != 3 {
		t.Errorf("caret = %+v, want {3 3}", c)
	}

	// Reversed ranges are normalized.
	d.Replace("abc", 2, 1)
	if c := d.Caret(); c.Start != 1 || c.End != 2 {
		t.Errorf("caret = %+v, want {1 2}", c)
	}

	// Negative offsets clamp to zero.
	d.Replace("abc", -5, 1)
	if c := d.Caret(); c.Start != 0 || c.End != 1 {
		t.Errorf("caret = %+v, want {0 1}", c)
	}
}

func TestDocumentLine(t *testing.T) {
	d := New("a\nb")

	if got, ok := d.Line(1); !ok || got != "b" {
		t.Errorf("Line(1) = %q, %v", got, ok)
	}
	if _, ok := d.Line(-1); ok {
		t.Error("Line(-1) should be out of range")
	}
	if _, ok := d.Line(2); ok {
		t.Error("Line(2) should be out of range")
	}
}
