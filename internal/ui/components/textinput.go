package components

import (
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Sprouts styling.
type TextInput struct {
	Model    textinput.Model
	Label    string
	MaxWidth int

	// Secret masks the typed text.
	Secret bool
}

// NewTextInput creates a new focused text input.
func NewTextInput(label, placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		Label:    label,
		MaxWidth: maxWidth,
	}
}

// NewSecretInput creates a masked input for credentials.
func NewSecretInput(label, placeholder string) TextInput {
	t := NewTextInput(label, placeholder, 0)
	t.Model.EchoMode = textinput.EchoPassword
	t.Secret = true
	return t
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Control characters other than editing keys
// are passed to the model unchanged.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && !t.Secret {
		for _, r := range kmsg.Text {
			if !unicode.IsPrint(r) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// View renders the label and the input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.Label == "" {
		return view
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	if t.Model.Focused() {
		label = label.Foreground(theme.Sunny).Bold(true)
	}
	return label.Render(t.Label+": ") + view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.Reset()
}
