package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprouts/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Hint is an optional dim line shown
// under the selected entry.
type MenuItem struct {
	Label    string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu. Number keys jump to and activate
// an entry.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		return m, m.activate()
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Items) {
			if m.Items[n-1].Disabled {
				return m, nil
			}
			m.Selected = n - 1
			return m, m.activate()
		}
	}

	return m, nil
}

func (m Menu) activate() tea.Cmd {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nil
	}
	item := m.Items[m.Selected]
	if item.Action == nil || item.Disabled {
		return nil
	}
	return item.Action()
}

// View renders the menu as a column of buttons of width w.
func (m Menu) View(w int) string {
	rows := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		label := strconv.Itoa(i+1) + "  " + item.Label
		if item.Disabled {
			rows = append(rows, lipgloss.NewStyle().
				Width(w).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(label))
			continue
		}
		rows = append(rows, Button(label, i == m.Selected, w))
		if i == m.Selected && item.Hint != "" {
			rows = append(rows, lipgloss.NewStyle().
				Width(w).
				Align(lipgloss.Center).
				Inherit(theme.Hint).
				Render(item.Hint))
		}
	}
	return strings.Join(rows, "\n")
}
