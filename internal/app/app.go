package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprouts/internal/catalog"
	"github.com/abhisek/sprouts/internal/router"
	"github.com/abhisek/sprouts/internal/screen"
	"github.com/abhisek/sprouts/internal/screens/dashboard"
	"github.com/abhisek/sprouts/internal/screens/gameover"
	"github.com/abhisek/sprouts/internal/screens/leaderboard"
	"github.com/abhisek/sprouts/internal/screens/loading"
	"github.com/abhisek/sprouts/internal/screens/modes"
	"github.com/abhisek/sprouts/internal/screens/play"
	"github.com/abhisek/sprouts/internal/screens/settings"
	"github.com/abhisek/sprouts/internal/screens/welcome"
	"github.com/abhisek/sprouts/internal/session"
	"github.com/abhisek/sprouts/internal/ui/layout"
)

// Options are the services the UI drives.
type Options struct {
	Controller *session.Controller
	Catalog    *catalog.Catalog
	Settings   settings.Deps

	// Splash shows the welcome animation before the dashboard.
	Splash bool
}

// AppModel is the root Bubble Tea model. The active screen follows the
// controller's state.
type AppModel struct {
	ctx    context.Context
	opts   Options
	router *router.Router
	shown  session.State
	width  int
	height int
}

// newAppModel creates a new AppModel showing the dashboard.
func newAppModel(ctx context.Context, opts Options) AppModel {
	opts.Controller.LoadLastPlayer(ctx)
	m := AppModel{ctx: ctx, opts: opts, shown: opts.Controller.State()}
	first := m.screenFor(m.shown)
	if opts.Splash && m.shown == session.StateDashboard {
		home := first
		first = welcome.New(func() screen.Screen { return home })
	}
	m.router = router.New(first)
	return m
}

// group folds states that share a screen.
func group(s session.State) session.State {
	if s == session.StateCorrectGuess {
		return session.StatePlaying
	}
	return s
}

func (m AppModel) screenFor(state session.State) screen.Screen {
	ctl := m.opts.Controller
	switch group(state) {
	case session.StateModeSelection:
		return modes.New(m.ctx, ctl)
	case session.StateLoadingContent:
		return loading.New(ctl)
	case session.StatePlaying:
		return play.New(m.ctx, ctl)
	case session.StateGameOver:
		return gameover.New(ctl)
	case session.StateLeaderboardSelection:
		return leaderboard.NewSelect(m.ctx, ctl)
	case session.StateLeaderboardView:
		return leaderboard.NewView(ctl)
	case session.StateSettings:
		return settings.New(m.ctx, m.opts.Settings)
	}
	return dashboard.New(m.ctx, ctl)
}

// sync swaps the screen when the controller moved to another state.
func (m *AppModel) sync() tea.Cmd {
	state := group(m.opts.Controller.State())
	if state == group(m.shown) {
		return nil
	}
	m.shown = state
	return m.router.Reset(m.screenFor(state))
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			cmd := m.back()
			return m, cmd
		}
	}

	cmd := m.router.Update(msg)
	syncCmd := m.sync()
	return m, tea.Batch(cmd, syncCmd)
}

// back closes an overlay, lets the screen handle Esc, or moves the
// controller one level up.
func (m *AppModel) back() tea.Cmd {
	if m.router.Depth() > 1 {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	if h, ok := m.router.Active().(screen.BackHandler); ok && h.HandleBack() {
		return nil
	}
	if m.opts.Controller.State() == session.StateDashboard {
		return nil
	}
	m.opts.Controller.Back()
	return m.sync()
}

func (m AppModel) status() layout.Status {
	ctl := m.opts.Controller
	switch ctl.State() {
	case session.StatePlaying, session.StateCorrectGuess:
		p := ctl.Progress()
		return layout.Status{Player: ctl.Player(), Score: p.Score, Lives: p.Lives, InGame: true}
	}
	return layout.Status{Player: ctl.Player()}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the whole terminal: header, active screen and footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.opts.Controller.Warning(), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program. Catalog changes reach the
// controller and the settings screen while it runs.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))

	if opts.Catalog != nil {
		unsubscribe := opts.Catalog.Subscribe(func(ch catalog.Change) {
			opts.Controller.ContentChanged(ch)
			// Subscribers run inside Put; sending here could block the
			// event loop that issued it.
			go p.Send(settings.ContentChangedMsg{Kind: ch.Kind})
		})
		defer unsubscribe()
	}

	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
