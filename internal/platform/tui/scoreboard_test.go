package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mathdrop/internal/registry"
	"github.com/vovakirdan/mathdrop/internal/storage"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, score := range []int{120, 450, 300} {
		if _, err := store.SaveRun(storage.Run{Mode: "stub", Score: score, Level: 2, Solved: 4, Duration: 95 * time.Second}); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}
	return store
}

func TestScoreboardLoadsRuns(t *testing.T) {
	store := seededStore(t)

	for _, width := range []int{120, 60} {
		m := NewScoreboardModel(store, width, 30)
		if len(m.runs) != 3 || m.runs[0].Score != 450 {
			t.Fatalf("runs = %+v", m.runs)
		}
		if m.bests["stub"] != 450 {
			t.Errorf("best = %d, want 450", m.bests["stub"])
		}

		view := m.View()
		for _, want := range []string{"HIGH SCORES - Stub", "3 runs", "best 450", "1:35"} {
			if !strings.Contains(view, want) {
				t.Errorf("width %d: view missing %q", width, want)
			}
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("expected empty message")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	next, _ := m.Update(runes("b"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("ctrl+c should quit")
	}
}

func TestMenuListsModesWithBest(t *testing.T) {
	store := seededStore(t)
	m := NewMenuModel(store, testConfig())

	var found bool
	for _, item := range m.items {
		if item.ModeID == "stub" {
			found = true
			if item.Best != 450 {
				t.Errorf("best = %d, want 450", item.Best)
			}
		}
	}
	if !found {
		t.Fatal("stub mode not listed")
	}
	if !strings.Contains(m.View(), "best 450") {
		t.Error("menu should show the high score")
	}
}

func TestMenuSelectAndScoreboard(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)
	if menu.Selected() == nil || cmd == nil {
		t.Fatal("enter should select and quit the menu program")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestSessionFlow(t *testing.T) {
	store := seededStore(t)
	s := NewSessionModel(store, testConfig(), nil)

	update := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	update(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatalf("screen = %v, want scores", s.screen)
	}
	update(runes("b"))
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", s.screen)
	}
}
