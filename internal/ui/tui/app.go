package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/healthgain/internal/app/report"
	"github.com/aalvaropc/healthgain/internal/domain"
	"github.com/aalvaropc/healthgain/internal/usecase"
)

type screen int

const (
	screenForm screen = iota
	screenResult
)

type field int

const (
	fieldAge field = iota
	fieldSex
	fieldYears
	fieldDaysNow
	fieldDrinks
	fieldTarget
	fieldCount
)

type bounds struct{ min, max int }

var fieldBounds = map[field]bounds{
	fieldAge:     {domain.MinAge, domain.MaxAge},
	fieldYears:   {0, domain.MaxYearsDrinking},
	fieldDaysNow: {0, domain.MaxDaysPerWeek},
	fieldDrinks:  {0, domain.MaxDrinksPerOccasion},
	fieldTarget:  {0, domain.MaxDaysPerWeek},
}

const barWidth = 40

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	locale domain.Locale
	ts     domain.TemplateSet

	input  domain.GainInput
	female bool
	focus  field
	typed  string

	est         *usecase.Estimate
	bar         progress.Model
	showDetails bool
	busy        bool

	toast    string
	toastErr bool

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m, err := newModel(deps)
	if err != nil {
		return err
	}
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newModel(deps Deps) (model, error) {
	locale := deps.Locale
	if locale == "" {
		locale = domain.LocaleEN
	}
	if deps.Catalog == nil {
		return model{}, fmt.Errorf("tui: locale catalog is nil")
	}
	ts, err := deps.Catalog.Lookup(locale)
	if err != nil {
		return model{}, err
	}

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = barWidth

	m := model{
		theme:          DefaultTheme(),
		deps:           deps,
		scr:            screenForm,
		locale:         locale,
		ts:             ts,
		input:          domain.DefaultGainInput(),
		bar:            bar,
		workspaceFound: deps.WorkspaceFound,
		workspaceRoot:  deps.WorkspaceRoot,
	}
	return m, nil
}

func (m model) Init() tea.Cmd { return nil }

// gainInput returns the form values with the sex label of the active locale.
func (m model) gainInput() domain.GainInput {
	in := m.input
	in.Sex = m.ts.Male
	if m.female {
		in.Sex = m.ts.Female
	}
	return in
}

func (m *model) value(f field) *int {
	switch f {
	case fieldAge:
		return &m.input.Age
	case fieldYears:
		return &m.input.YearsDrinking
	case fieldDaysNow:
		return &m.input.DrinkingDaysNow
	case fieldDrinks:
		return &m.input.DrinksPerOccasion
	case fieldTarget:
		return &m.input.TargetDays
	default:
		return nil
	}
}

func (m model) step(delta int) model {
	if m.focus == fieldSex {
		m.female = !m.female
		return m
	}
	b := fieldBounds[m.focus]
	p := m.value(m.focus)
	*p = max(b.min, min(b.max, *p+delta))
	m.typed = ""
	return m
}

// typeDigit appends to the focused number; a value beyond the field maximum restarts from the digit.
func (m model) typeDigit(d rune) model {
	if m.focus == fieldSex {
		return m
	}
	b := fieldBounds[m.focus]
	next := m.typed + string(d)
	n, err := strconv.Atoi(next)
	if err != nil || n > b.max {
		next = string(d)
		n = int(d - '0')
		if n > b.max {
			return m
		}
	}
	m.typed = next
	*m.value(m.focus) = n
	return m
}

func (m model) backspace() model {
	if m.focus == fieldSex || m.typed == "" {
		return m
	}
	m.typed = m.typed[:len(m.typed)-1]
	n := 0
	if m.typed != "" {
		n, _ = strconv.Atoi(m.typed)
	}
	*m.value(m.focus) = n
	return m
}

func (m model) setLocale(l domain.Locale) (model, error) {
	ts, err := m.deps.Catalog.Lookup(l)
	if err != nil {
		return m, err
	}
	m.locale = l
	m.ts = ts
	return m, nil
}

func (m model) setToast(msg string, isErr bool) model {
	m.toast = msg
	m.toastErr = isErr
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(barWidth, msg.Width-12))
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			return m.setToast(userMessage(m.ts, msg.err), true), nil
		}
		m = m.setToast("Workspace ready: "+clampString(msg.root, 60), false)
		return m, cmdRefreshWorkspace(m.deps)

	case estimateDoneMsg:
		m.busy = false
		if msg.err != nil && msg.est.Headline == "" {
			return m.setToast(userMessage(m.ts, msg.err), true), nil
		}
		est := msg.est
		m.est = &est
		m.scr = screenResult
		switch {
		case msg.err != nil:
			m = m.setToast(userMessage(m.ts, msg.err), true)
		case msg.saved:
			m = m.setToast(m.ts.SaveResult+": "+m.savedPath(est.SavedID), false)
		default:
			m = m.setToast("", false)
		}
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenResult {
			return m.updateResult(msg)
		}
		return m.updateForm(msg)
	}

	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k", "shift+tab":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		m.typed = ""

	case "down", "j", "tab":
		m.focus = (m.focus + 1) % fieldCount
		m.typed = ""

	case "left", "-":
		m = m.step(-1)

	case "right", "+":
		m = m.step(1)

	case " ":
		if m.focus == fieldSex {
			m.female = !m.female
		}

	case "backspace":
		m = m.backspace()

	case "l":
		next, err := m.setLocale(m.locale.Toggle())
		if err != nil {
			return m.setToast(userMessage(m.ts, err), true), nil
		}
		return next, nil

	case "i":
		if !m.workspaceFound {
			root := m.workspaceRoot
			if root == "" {
				root, _ = os.Getwd()
			}
			return m, cmdInitWorkspaceHere(m.deps, root)
		}

	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m = m.setToast("", false)
		return m, cmdEstimate(m.deps, m.gainInput(), m.locale, false)

	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			m = m.typeDigit(rune(key[0]))
		}
	}
	return m, nil
}

func (m model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q", "esc", "b":
		m.scr = screenForm
		m = m.setToast("", false)
		return m, nil

	case "d":
		m.showDetails = !m.showDetails
		return m, nil

	case "l":
		next, err := m.setLocale(m.locale.Toggle())
		if err != nil {
			return m.setToast(userMessage(m.ts, err), true), nil
		}
		next.busy = true
		return next, cmdEstimate(next.deps, next.gainInput(), next.locale, false)

	case "s":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, cmdEstimate(m.deps, m.gainInput(), m.locale, true)
	}
	return m, nil
}

func (m model) savedPath(id string) string {
	if m.deps.ExportsDir == "" {
		return id
	}
	return filepath.Join(m.deps.ExportsDir, id) + ".{json,txt,csv}"
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render(m.ts.Title) + "  " +
		m.theme.Help.Render("["+m.locale.Label()+"]") + "\n" +
		m.theme.Subtitle.Render(m.ts.Subtitle) + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", clampString(m.workspaceRoot, 70)))
	} else {
		workspaceBanner = m.theme.Help.Render("No workspace found • press i to create one here")
	}

	var toast string
	if m.toast != "" {
		style := m.theme.Success
		if m.toastErr {
			style = m.theme.Error
		}
		toast = "\n" + style.Render(m.toast) + "\n"
	}

	footer := "\n" + m.theme.Help.Render(m.ts.Disclaimer)

	switch m.scr {
	case screenForm:
		help := m.theme.Help.Render("↑/↓ move • ←/→ adjust • 0-9 type • l language • enter " + strings.ToLower(m.ts.Calculate) + " • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.viewForm()) + toast + "\n" + help + footer)

	case screenResult:
		help := m.theme.Help.Render("d details • s save • l language • esc back • ctrl+c quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.viewResult()) + toast + "\n" + help + footer)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) viewForm() string {
	type row struct {
		f     field
		label string
		value string
	}

	sex := m.ts.Male
	if m.female {
		sex = m.ts.Female
	}

	rows := []row{
		{fieldAge, m.ts.Age, strconv.Itoa(m.input.Age)},
		{fieldSex, m.ts.Sex, sex},
		{fieldYears, m.ts.YearsDrinking, strconv.Itoa(m.input.YearsDrinking)},
		{fieldDaysNow, m.ts.DaysNow, strconv.Itoa(m.input.DrinkingDaysNow)},
		{fieldDrinks, m.ts.DrinksPerOccasion, strconv.Itoa(m.input.DrinksPerOccasion)},
		{fieldTarget, m.ts.DaysGoal, strconv.Itoa(m.input.TargetDays)},
	}

	var b strings.Builder
	for _, r := range rows {
		cursor := "  "
		label := m.theme.Label.Render(r.label)
		value := "‹ " + r.value + " ›"
		if r.f == m.focus {
			cursor = m.theme.Focus.Render("› ")
			value = m.theme.Focus.Render(value)
		}
		b.WriteString(cursor + label + " " + value + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m model) viewResult() string {
	if m.est == nil {
		return ""
	}
	est := *m.est
	months := min(est.Result.GainMonths, report.ProgressCapMonths)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.ts.YourGain))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Headline.Render(est.Headline))
	b.WriteString("\n\n")
	b.WriteString(m.ts.LifespanBar)
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(est.Progress))
	b.WriteString(fmt.Sprintf("  %d/%d", months, report.ProgressCapMonths))
	b.WriteString("\n\n")
	b.WriteString(renderTips(est))

	if m.showDetails {
		b.WriteString("\n")
		b.WriteString(m.theme.Title.Render(m.ts.SeeDetails))
		b.WriteString("\n")
		b.WriteString(renderDetails(est))
	}

	return strings.TrimRight(b.String(), "\n")
}
