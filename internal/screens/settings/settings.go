// Package settings is the grown-ups' area: generating, reviewing and
// removing game content, and managing the API key.
package settings

import (
	"context"
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/contentgen"
	"github.com/abhisek/sprouts/internal/review"
	"github.com/abhisek/sprouts/internal/router"
	"github.com/abhisek/sprouts/internal/screen"
	"github.com/abhisek/sprouts/internal/store"
	"github.com/abhisek/sprouts/internal/ui/components"
)

// Catalog lists a collection. *catalog.Catalog satisfies it.
type Catalog interface {
	All(ctx context.Context, kind content.Kind) ([]content.Item, error)
}

// Checker validates credentials. *contentgen.Generator satisfies it.
type Checker interface {
	ValidateCredential(ctx context.Context, secret string) contentgen.CredentialStatus
}

// Deps are the services the settings screen works with.
type Deps struct {
	Review   *review.Workflow
	Catalog  Catalog
	Checker  Checker
	Settings store.SettingsRepo
}

// keyTab follows the content tabs.
var keyTab = len(content.Kinds)

// Screen is the settings area.
type Screen struct {
	ctx  context.Context
	deps Deps

	tab    int
	items  map[content.Kind][]content.Item
	cursor map[content.Kind]int

	typing bool
	field  int // 0 name, 1 color
	name   components.TextInput
	color  components.TextInput

	confirmDelete bool
	status        string
	statusErr     bool

	hasKey   bool
	checking bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.BackHandler = (*Screen)(nil)

// New creates the settings screen.
func New(ctx context.Context, deps Deps) *Screen {
	s := &Screen{
		ctx:    ctx,
		deps:   deps,
		items:  make(map[content.Kind][]content.Item),
		cursor: make(map[content.Kind]int),
		name:   components.NewTextInput("Name", "e.g. apple", 30),
		color:  components.NewTextInput("Color", "e.g. red", 20),
	}
	s.name.Blur()
	s.color.Blur()
	return s
}

func (s *Screen) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(content.Kinds)+1)
	for _, kind := range content.Kinds {
		cmds = append(cmds, s.load(kind))
	}
	cmds = append(cmds, s.loadKey())
	return tea.Batch(cmds...)
}

func (s *Screen) Title() string {
	return "Settings"
}

// kind returns the collection of the active tab; ok is false on the key tab.
func (s *Screen) kind() (content.Kind, bool) {
	if s.tab < len(content.Kinds) {
		return content.Kinds[s.tab], true
	}
	return "", false
}

func (s *Screen) setStatus(msg string, isErr bool) {
	s.status, s.statusErr = msg, isErr
}

func (s *Screen) load(kind content.Kind) tea.Cmd {
	ctx, cat := s.ctx, s.deps.Catalog
	return func() tea.Msg {
		items, err := cat.All(ctx, kind)
		return itemsMsg{kind: kind, items: items, err: err}
	}
}

func (s *Screen) loadKey() tea.Cmd {
	ctx, repo := s.ctx, s.deps.Settings
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok, err := repo.Get(ctx, store.KeyAPICredential)
		return keyStateMsg{stored: ok && v != "", err: err}
	}
}

// HandleBack leaves the text fields or a pending delete before the
// screen itself is left.
func (s *Screen) HandleBack() bool {
	switch {
	case s.typing:
		s.stopTyping()
		return true
	case s.confirmDelete:
		s.confirmDelete = false
		return true
	}
	return false
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ContentChangedMsg:
		return s, s.load(msg.Kind)

	case itemsMsg:
		if msg.err != nil {
			s.setStatus(content.Message(msg.err), true)
			return s, nil
		}
		s.items[msg.kind] = msg.items
		s.cursor[msg.kind] = min(s.cursor[msg.kind], max(len(msg.items)-1, 0))
		return s, nil

	case generatedMsg:
		switch {
		case content.Is(msg.err, content.Stale):
		case msg.err != nil:
			s.setStatus(content.Message(msg.err), true)
		default:
			s.setStatus(fmt.Sprintf("New %s ready. Approve it with a or reject it with r.", msg.candidate.Label()), false)
		}
		return s, nil

	case approvedMsg:
		if msg.err != nil {
			s.setStatus(content.Message(msg.err), true)
			return s, nil
		}
		s.setStatus(fmt.Sprintf("Added %q to the game!", msg.candidate.Label()), false)
		return s, s.load(msg.kind)

	case deletedMsg:
		if msg.err != nil {
			s.setStatus(content.Message(msg.err), true)
			return s, nil
		}
		s.setStatus(fmt.Sprintf("Removed %q.", msg.key), false)
		return s, s.load(msg.kind)

	case keyStateMsg:
		if msg.err != nil {
			s.setStatus(content.Message(msg.err), true)
		}
		s.hasKey = msg.stored
		return s, nil

	case credentialMsg:
		s.checking = false
		s.setStatus(msg.status.Message, !msg.status.OK)
		if msg.stored {
			s.hasKey = true
		}
		return s, nil

	case tea.KeyPressMsg:
		if s.typing {
			return s, s.updateTyping(msg)
		}
		return s, s.updateKeys(msg)
	}

	if s.typing {
		return s, s.updateTyping(msg)
	}
	return s, nil
}

func (s *Screen) updateKeys(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	if s.confirmDelete {
		s.confirmDelete = false
		if key == "y" {
			return s.deleteSelected()
		}
		s.setStatus("", false)
		return nil
	}

	switch key {
	case "left", "h":
		s.tab = (s.tab + keyTab) % (keyTab + 1)
		return nil
	case "right", "l":
		s.tab = (s.tab + 1) % (keyTab + 1)
		return nil
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= keyTab+1 {
		s.tab = n - 1
		return nil
	}

	kind, ok := s.kind()
	if !ok {
		return s.updateKeyTab(key)
	}

	switch key {
	case "up", "k":
		if s.cursor[kind] > 0 {
			s.cursor[kind]--
		}
	case "down", "j":
		if s.cursor[kind] < len(s.items[kind])-1 {
			s.cursor[kind]++
		}
	case "g":
		return s.generate(review.Request{Kind: kind})
	case "c":
		return s.startTyping()
	case "a":
		return s.approve(kind)
	case "r":
		if err := s.deps.Review.Reject(kind); err != nil {
			s.setStatus(content.Message(err), true)
		} else {
			s.setStatus("Thrown away. Press g to try another.", false)
		}
	case "d":
		if item := s.selected(kind); item != nil {
			s.confirmDelete = true
			s.setStatus(fmt.Sprintf("Delete %q? Press y to confirm.", item.Key()), false)
		}
	}
	return nil
}

func (s *Screen) updateKeyTab(key string) tea.Cmd {
	switch key {
	case "e":
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: newCredentialScreen(s.ctx, s.deps.Checker, s.deps.Settings)}
		}
	case "c":
		if s.checking || s.deps.Checker == nil {
			return nil
		}
		s.checking = true
		s.setStatus("Checking the API key...", false)
		ctx, checker := s.ctx, s.deps.Checker
		return func() tea.Msg {
			return credentialMsg{status: checker.ValidateCredential(ctx, "")}
		}
	case "x":
		if s.deps.Settings == nil {
			return nil
		}
		if err := s.deps.Settings.Delete(s.ctx, store.KeyAPICredential); err != nil {
			s.setStatus(content.Message(err), true)
			return nil
		}
		s.hasKey = false
		s.setStatus("Stored API key removed.", false)
	}
	return nil
}

func (s *Screen) selected(kind content.Kind) content.Item {
	items := s.items[kind]
	i := s.cursor[kind]
	if i < 0 || i >= len(items) {
		return nil
	}
	return items[i]
}

func (s *Screen) generate(req review.Request) tea.Cmd {
	if s.deps.Review.Busy(req.Kind) {
		s.setStatus(content.Message(content.Errorf(content.Busy, "busy")), true)
		return nil
	}
	s.setStatus("Creating a new picture...", false)
	ctx, wf := s.ctx, s.deps.Review
	return func() tea.Msg {
		c, err := wf.Generate(ctx, req)
		return generatedMsg{kind: req.Kind, candidate: c, err: err}
	}
}

func (s *Screen) approve(kind content.Kind) tea.Cmd {
	if s.deps.Review.Pending(kind) == nil {
		s.setStatus(content.Message(content.Errorf(content.NoPendingCandidate, "none")), true)
		return nil
	}
	ctx, wf := s.ctx, s.deps.Review
	return func() tea.Msg {
		c, err := wf.Approve(ctx, kind)
		return approvedMsg{kind: kind, candidate: c, err: err}
	}
}

func (s *Screen) deleteSelected() tea.Cmd {
	kind, ok := s.kind()
	if !ok {
		return nil
	}
	item := s.selected(kind)
	if item == nil {
		return nil
	}
	ctx, wf, key := s.ctx, s.deps.Review, item.Key()
	return func() tea.Msg {
		return deletedMsg{kind: kind, key: key, err: wf.Delete(ctx, kind, key)}
	}
}

func (s *Screen) startTyping() tea.Cmd {
	s.typing = true
	s.field = 0
	s.name.Reset()
	s.color.Reset()
	s.color.Blur()
	return s.name.Focus()
}

func (s *Screen) stopTyping() {
	s.typing = false
	s.name.Blur()
	s.color.Blur()
}

func (s *Screen) updateTyping(msg tea.Msg) tea.Cmd {
	kind, _ := s.kind()
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab":
			if kind != content.ColorItems {
				return nil
			}
			s.field = 1 - s.field
			if s.field == 0 {
				s.color.Blur()
				return s.name.Focus()
			}
			s.name.Blur()
			return s.color.Focus()
		case "enter":
			req := review.Request{Kind: kind, Name: s.name.Value()}
			if kind == content.ColorItems {
				req.Color = s.color.Value()
			}
			if req.Name == "" && req.Color == "" {
				s.setStatus(content.Message(content.Errorf(content.InvalidInput, "Please type a name first.")), true)
				return nil
			}
			s.stopTyping()
			return s.generate(req)
		}
	}

	var cmd tea.Cmd
	if s.field == 0 {
		s.name, cmd = s.name.Update(msg)
	} else {
		s.color, cmd = s.color.Update(msg)
	}
	return cmd
}
