package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/advisor"
	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// adviceDoneMsg carries the outcome of request seq back to the model.
type adviceDoneMsg struct {
	seq    uint64
	advice string
	err    error
}

type adviseKeyMap struct {
	Retry key.Binding
	Quit  key.Binding
}

func (k adviseKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Retry, k.Quit} }

func (k adviseKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func newAdviseKeyMap() adviseKeyMap {
	return adviseKeyMap{
		Retry: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "ask again")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// adviseModel shows a spinner while advice loads, then the advice or the
// error. The tracker owns request state so stale replies are dropped.
type adviseModel struct {
	ctx     context.Context
	svc     advisor.AdviceService
	req     advisor.Request
	tracker *advisor.Tracker
	spinner spinner.Model
	keys    adviseKeyMap
	help    help.Model
}

func newAdviseModel(ctx context.Context, svc advisor.AdviceService, req advisor.Request) adviseModel {
	return adviseModel{
		ctx:     ctx,
		svc:     svc,
		req:     req,
		tracker: &advisor.Tracker{},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(formatter.StylePurple)),
		keys:    newAdviseKeyMap(),
		help:    help.New(),
	}
}

func (m adviseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.request())
}

// request starts a new advice call. Any call still in flight is cancelled.
func (m adviseModel) request() tea.Cmd {
	ctx, seq := m.tracker.Begin(m.ctx)
	svc, req := m.svc, m.req
	return func() tea.Msg {
		advice, err := svc.Advise(ctx, req)
		return adviceDoneMsg{seq: seq, advice: advice, err: err}
	}
}

func (m adviseModel) state() advisor.State {
	return m.tracker.Snapshot()
}

func (m adviseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case adviceDoneMsg:
		m.tracker.Complete(msg.seq, msg.advice, msg.err)
		return m, nil

	case spinner.TickMsg:
		if m.state().Phase != advisor.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.state().Phase == advisor.PhaseLoading {
				m.tracker.Reset()
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Retry):
			if m.state().Phase == advisor.PhaseLoading {
				return m, nil
			}
			return m, tea.Batch(m.spinner.Tick, m.request())
		}
	}
	return m, nil
}

func (m adviseModel) View() string {
	var b strings.Builder
	b.WriteString("\n")

	state := m.state()
	switch state.Phase {
	case advisor.PhaseLoading:
		fmt.Fprintf(&b, "  %s %s\n", m.spinner.View(), formatter.Dim("Asking for advice on "+m.projectName()+"..."))
	case advisor.PhaseSuccess:
		b.WriteString(formatter.RenderAdvice(advisor.PlainText(state.Advice)))
		b.WriteString("\n")
	case advisor.PhaseError:
		b.WriteString("  " + formatter.RenderAdviceError(state.Message) + "\n")
	default:
		return ""
	}

	b.WriteString("\n  " + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m adviseModel) projectName() string {
	if m.req.Project == nil || m.req.Project.Name == "" {
		return "this collection"
	}
	return m.req.Project.Name
}
