package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// errRecovered marks a panic caught in Update or View.
var errRecovered = errors.New("recovered panic")

// safeModel keeps the program alive when the form or result screen panics.
// The entered values survive; the result is dropped and the form shown again.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) recovered(where string, r any) error {
	err := fmt.Errorf("%w in %s: %v", errRecovered, where, r)
	s.log.Error("tui.panic.recovered",
		"where", where,
		"screen", int(s.m.scr),
		"locale", string(s.m.locale),
		"input", s.m.gainInput(),
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
	return err
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			err := s.recovered("update", r)

			s.m.scr = screenForm
			s.m.busy = false
			s.m.est = nil
			s.m.showDetails = false
			s.m = s.m.setToast(userMessage(s.m.ts, err), true)
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(model); ok {
		s.m = mm
	} else if sm, ok := inner.(safeModel); ok {
		s = sm
	}

	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			err := s.recovered("view", r)
			out = userMessage(s.m.ts, err) + "\n\n" + s.m.theme.Help.Render("esc back • ctrl+c quit")
		}
	}()
	return s.m.View()
}

var _ tea.Model = (*safeModel)(nil)
