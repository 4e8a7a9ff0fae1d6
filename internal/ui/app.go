package ui

import (
	"context"
	"strings"
	"sync/atomic"

	"kickview/internal/format"
	"kickview/internal/loader"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// PageTitle is the heading shown above the table.
const PageTitle = "Kickstarter Projects"

// sessionSeq hands out a distinct session id to every AppModel.
var sessionSeq atomic.Uint64

// AppModel is the root model. It owns the view state for one load session:
// the Phase, the ProjectsView and, after a failure, the ErrorPanel.
type AppModel struct {
	Phase      Phase
	Projects   *ProjectsView
	ErrorPanel *ErrorPanel
	KeyHandler *KeyHandler
	Source     ProjectSource
	Logger     *zap.Logger

	// Reload is called when the user retries after a failure. The default
	// requests a reload and quits; tests may replace it.
	Reload func() tea.Cmd

	spinner spinner.Model
	session uint64
	ctx     context.Context
	cancel  context.CancelFunc

	started         bool
	closed          bool
	reloadRequested bool
}

// Option configures an AppModel.
type Option func(*AppModel)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *AppModel) {
		if l != nil {
			a.Logger = l
		}
	}
}

// WithFormatter sets the number formatter used by the table.
func WithFormatter(f *format.Formatter) Option {
	return func(a *AppModel) {
		if f != nil {
			a.Projects = NewProjectsView(f)
		}
	}
}

// NewAppModel creates a model in the Loading phase that fetches from src
// when initialized.
func NewAppModel(src ProjectSource, opts ...Option) *AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	ctx, cancel := context.WithCancel(context.Background())
	a := &AppModel{
		Phase:      PhaseLoading,
		Projects:   NewProjectsView(format.Default()),
		KeyHandler: NewKeyHandler(DefaultKeybinds()),
		Source:     src,
		Logger:     zap.NewNop(),
		spinner:    s,
		session:    sessionSeq.Add(1),
		ctx:        ctx,
		cancel:     cancel,
	}
	a.Reload = a.requestReload
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Session returns the id attached to this model's load messages.
func (a *AppModel) Session() uint64 {
	return a.session
}

// Close tears the model down: the in-flight fetch is cancelled and any
// result that still arrives is ignored. Safe to call more than once.
func (a *AppModel) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.cancel()
}

// Closed reports whether Close has been called.
func (a *AppModel) Closed() bool {
	return a.closed
}

// ReloadRequested reports whether the program ended because the user
// asked for a reload.
func (a *AppModel) ReloadRequested() bool {
	return a.reloadRequested
}

func (a *AppModel) requestReload() tea.Cmd {
	a.reloadRequested = true
	a.Logger.Info("reload requested", zap.Uint64("session", a.session))
	a.Close()
	return tea.Quit
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model. The fetch is issued on the first call only.
func (a *appModelAdapter) Init() tea.Cmd {
	if a.started || a.closed {
		return nil
	}
	a.started = true
	if a.Source == nil {
		return msgCmd(ProjectsFailedMsg{Session: a.session, Err: nil})
	}
	a.Logger.Debug("loading projects", zap.Uint64("session", a.session))
	return tea.Batch(a.spinner.Tick, loadProjectsCmd(a.ctx, a.session, a.Source))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProjectsLoadedMsg:
		if !a.acceptsLoadResult(msg.Session) {
			return a, nil
		}
		a.Projects.SetProjects(msg.Projects)
		a.ErrorPanel = nil
		a.Phase = PhaseReady
		a.Logger.Info("projects loaded",
			zap.Int("count", len(msg.Projects)),
			zap.Int("pages", a.Projects.TotalPages()))
		return a, nil
	case ProjectsFailedMsg:
		if !a.acceptsLoadResult(msg.Session) {
			return a, nil
		}
		text := loader.Message(msg.Err)
		a.Projects.Clear()
		a.ErrorPanel = NewErrorPanel(text)
		a.Phase = PhaseFailed
		a.Logger.Warn("projects failed to load", zap.String("message", text), zap.Error(msg.Err))
		return a, nil
	case RetryMsg:
		if a.Phase != PhaseFailed || a.Reload == nil {
			return a, nil
		}
		return a, a.Reload()
	case spinner.TickMsg:
		if a.Phase != PhaseLoading || a.closed {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Phase); consumed {
			return a, keyCmd
		}
		return a, nil
	}

	if a.closed {
		return a, nil
	}
	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// acceptsLoadResult reports whether a load result may change state: the
// model must be open, still loading, and the issuer of the fetch.
func (a *AppModel) acceptsLoadResult(session uint64) bool {
	switch {
	case a.closed:
		a.Logger.Debug("dropping load result after close", zap.Uint64("session", session))
		return false
	case session != a.session:
		a.Logger.Debug("dropping load result from another session",
			zap.Uint64("session", session), zap.Uint64("current", a.session))
		return false
	case a.Phase != PhaseLoading:
		a.Logger.Debug("dropping duplicate load result", zap.Stringer("phase", a.Phase))
		return false
	}
	return true
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(PageTitle))
	b.WriteString("\n")
	if a.Phase == PhaseLoading {
		b.WriteString(a.spinner.View() + " " + Styles.Status.Render("Loading projects…") + "\n")
	}
	b.WriteString(a.currentView().View())
	if a.KeyHandler != nil {
		if footer := RenderKeybindHelp(a.KeyHandler.Registry, a.Phase); footer != "" {
			b.WriteString("\n\n" + footer)
		}
	}
	return lipgloss.NewStyle().Margin(1, 2).Render(b.String())
}

func (a *AppModel) currentView() View {
	if a.Phase == PhaseFailed && a.ErrorPanel != nil {
		return a.ErrorPanel
	}
	return a.Projects
}

func (a *AppModel) setCurrentView(v View) {
	switch v := v.(type) {
	case *ErrorPanel:
		a.ErrorPanel = v
	case *ProjectsView:
		a.Projects = v
	}
}
