package settings

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/contentgen"
	"github.com/abhisek/sprouts/internal/router"
	"github.com/abhisek/sprouts/internal/screen"
	"github.com/abhisek/sprouts/internal/store"
	"github.com/abhisek/sprouts/internal/ui/components"
	"github.com/abhisek/sprouts/internal/ui/layout"
	"github.com/abhisek/sprouts/internal/ui/theme"
)

// checkedMsg carries the result of checking a typed key.
type checkedMsg struct {
	secret string
	status contentgen.CredentialStatus
}

// credentialScreen asks for an API key, checks it and stores it.
type credentialScreen struct {
	ctx      context.Context
	checker  Checker
	settings store.SettingsRepo

	input    components.TextInput
	checking bool
	err      string
}

var _ screen.Screen = (*credentialScreen)(nil)
var _ screen.KeyHintProvider = (*credentialScreen)(nil)

func newCredentialScreen(ctx context.Context, checker Checker, settings store.SettingsRepo) *credentialScreen {
	return &credentialScreen{
		ctx:      ctx,
		checker:  checker,
		settings: settings,
		input:    components.NewSecretInput("API key", "paste your key here"),
	}
}

func (c *credentialScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *credentialScreen) Title() string {
	return "API Key"
}

func (c *credentialScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check & save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (c *credentialScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case checkedMsg:
		c.checking = false
		if !msg.status.OK {
			c.err = msg.status.Message
			return c, nil
		}
		if c.settings != nil {
			if err := c.settings.Set(c.ctx, store.KeyAPICredential, msg.secret); err != nil {
				c.err = content.Message(err)
				return c, nil
			}
		}
		saved := credentialMsg{
			status: contentgen.CredentialStatus{OK: true, Message: "API key saved. New pictures will use it."},
			stored: true,
		}
		return c, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return saved },
		)

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return c, c.submit()
		}
		if c.checking {
			return c, nil
		}
		c.err = ""
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *credentialScreen) submit() tea.Cmd {
	if c.checking || c.checker == nil {
		return nil
	}
	secret := strings.TrimSpace(c.input.Value())
	if secret == "" {
		c.err = "Please paste an API key."
		return nil
	}
	c.checking = true
	ctx, checker := c.ctx, c.checker
	return func() tea.Msg {
		return checkedMsg{secret: secret, status: checker.ValidateCredential(ctx, secret)}
	}
}

func (c *credentialScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var msg string
	switch {
	case c.checking:
		msg = theme.Hint.Render("Checking the key with the picture service...")
	case c.err != "":
		msg = theme.Incorrect.Render(c.err)
	default:
		msg = theme.Hint.Render("The key is checked before it is saved.")
	}

	return components.GardenFrame(components.Stack(
		components.Heading("🔑 API KEY", cw),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Inherit(theme.Body).
			Render("Paste the key for the picture service."),
		components.Card(c.input.View(), cw),
		msg,
	), width, height)
}
