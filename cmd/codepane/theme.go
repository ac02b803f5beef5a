package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/codepane/codepane/internal/token"
)

// theme maps token kinds to screen styles.
type theme struct {
	name   string
	styles map[token.Kind]tcell.Style
	base   tcell.Style
}

func (t theme) styleFor(kind token.Kind) tcell.Style {
	if s, ok := t.styles[kind]; ok {
		return s
	}
	return t.base
}

// themeByName returns the named theme, falling back to the default
// palette for unknown names.
func themeByName(name string) theme {
	switch name {
	case "mono":
		return theme{
			name: "mono",
			base: tcell.StyleDefault,
			styles: map[token.Kind]tcell.Style{
				token.KindKey:    tcell.StyleDefault.Bold(true),
				token.KindString: tcell.StyleDefault.Italic(true),
				token.KindPunct:  tcell.StyleDefault.Dim(true),
			},
		}
	default:
		return theme{
			name: "default",
			base: tcell.StyleDefault,
			styles: map[token.Kind]tcell.Style{
				token.KindString:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
				token.KindKey:     tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
				token.KindNumber:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
				token.KindBoolean: tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
				token.KindNull:    tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Dim(true),
				token.KindPunct:   tcell.StyleDefault.Foreground(tcell.ColorGray),
			},
		}
	}
}
