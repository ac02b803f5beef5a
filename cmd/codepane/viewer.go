package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/codepane/codepane/internal/config"
	"github.com/codepane/codepane/internal/session"
)

// cellWidthPx is the assumed pixel width of one terminal cell. The
// session works in pixel space; the terminal only needs a consistent
// mapping, not a truthful one.
const cellWidthPx = 8

// configEvent carries a reloaded configuration onto the tcell event
// queue so it is applied on the event loop goroutine.
type configEvent struct {
	tcell.EventTime
	cfg config.Config
}

// viewer drives a tcell screen from a session. All session access
// happens on the Run goroutine.
type viewer struct {
	screen tcell.Screen
	sess   *session.Session
	cfg    config.Config
	theme  theme
	logger *log.Logger

	scrollRow int
	scrollCol int
}

func newViewer(sess *session.Session, cfg config.Config, logger *log.Logger) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &viewer{
		screen: screen,
		sess:   sess,
		cfg:    cfg,
		theme:  themeByName(cfg.Theme),
		logger: logger,
	}, nil
}

func (v *viewer) Close() {
	v.screen.Fini()
}

// postConfig hands a reloaded configuration to the event loop. Safe to
// call from any goroutine.
func (v *viewer) postConfig(cfg config.Config, err error) {
	if err != nil {
		v.logger.Warn("config reload failed", "err", err)
		return
	}
	ev := &configEvent{cfg: cfg}
	ev.SetEventNow()
	if err := v.screen.PostEvent(ev); err != nil {
		v.logger.Warn("dropping config reload, event queue full", "err", err)
	}
}

func (v *viewer) Run() error {
	v.syncSize()
	if err := v.draw(); err != nil {
		return err
	}

	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.syncSize()
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		case *configEvent:
			v.applyConfig(ev.cfg)
		case nil:
			return nil
		default:
			continue
		}
		if err := v.draw(); err != nil {
			return err
		}
	}
}

// handleKey returns true when the viewer should exit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	_, rows := v.screen.Size()
	page := rows - 1
	if page < 1 {
		page = 1
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.scrollBy(-1, 0)
	case tcell.KeyDown:
		v.scrollBy(1, 0)
	case tcell.KeyLeft:
		v.scrollBy(0, -1)
	case tcell.KeyRight:
		v.scrollBy(0, 1)
	case tcell.KeyPgUp:
		v.scrollBy(-page, 0)
	case tcell.KeyPgDn:
		v.scrollBy(page, 0)
	case tcell.KeyHome:
		v.scrollRow = 0
		v.scrollCol = 0
		v.applyScroll()
	case tcell.KeyEnd:
		v.scrollRow = v.sess.LineCount() - 1
		v.applyScroll()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'g':
			v.scrollRow = 0
			v.applyScroll()
		case 'G':
			v.scrollRow = v.sess.LineCount() - 1
			v.applyScroll()
		}
	}
	return false
}

func (v *viewer) scrollBy(rows, cols int) {
	v.scrollRow += rows
	v.scrollCol += cols
	if max := v.sess.LineCount() - 1; v.scrollRow > max {
		v.scrollRow = max
	}
	if v.scrollRow < 0 {
		v.scrollRow = 0
	}
	if v.scrollCol < 0 {
		v.scrollCol = 0
	}
	v.applyScroll()
}

func (v *viewer) applyScroll() {
	v.sess.Scroll(v.scrollRow*v.cfg.LineHeightPx, v.scrollCol*cellWidthPx)
}

func (v *viewer) syncSize() {
	cols, rows := v.screen.Size()
	v.sess.Resize(cols*cellWidthPx, rows*v.cfg.LineHeightPx)
}

func (v *viewer) applyConfig(cfg config.Config) {
	v.cfg = cfg
	v.theme = themeByName(cfg.Theme)
	v.sess.Configure(cfg.LineHeightPx, cfg.BufferLines)
	v.syncSize()
	v.applyScroll()
	v.logger.Info("configuration reloaded",
		"line_height_px", cfg.LineHeightPx,
		"buffer_lines", cfg.BufferLines,
		"theme", cfg.Theme)
}

func (v *viewer) draw() error {
	frame, err := v.sess.RenderFrame()
	if err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	v.sess.ClearDirty()

	v.screen.Clear()
	cols, rows := v.screen.Size()

	for row := 0; row < rows; row++ {
		lineIdx := v.scrollRow + row
		if lineIdx < frame.Plan.FirstLine || lineIdx > frame.Plan.LastLine {
			continue
		}
		toks := frame.Lines[lineIdx-frame.Plan.FirstLine]

		col := -v.scrollCol
		for _, tok := range toks {
			style := v.theme.styleFor(tok.Kind)
			for _, r := range expandTabs(tok.Text, v.cfg.TabWidth) {
				if col >= cols {
					break
				}
				if col >= 0 {
					v.screen.SetContent(col, row, r, nil, style)
				}
				col++
			}
		}
	}

	v.screen.Show()
	return nil
}

// expandTabs replaces tabs with spaces. Token boundaries never split a
// tab, so a fixed expansion per tab is good enough for display.
func expandTabs(s string, width int) []rune {
	if !strings.ContainsRune(s, '\t') {
		return []rune(s)
	}
	if width < 1 {
		width = 1
	}
	return []rune(strings.ReplaceAll(s, "\t", strings.Repeat(" ", width)))
}
