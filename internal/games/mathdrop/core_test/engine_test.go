package core_test

import (
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/vovakirdan/mathdrop/internal/config"
	"github.com/vovakirdan/mathdrop/internal/games/mathdrop/core"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultMathDropConfig()
	cfg.Grid.Columns = 0
	if _, err := core.New(cfg, 1); err == nil {
		t.Fatal("expected error for zero columns")
	}
}

func TestFirstStepSpawns(t *testing.T) {
	e := newEngine(t, 1, nil)
	report := e.Step(refTick)
	if !report.Spawned {
		t.Fatal("expected an item on the first step")
	}
	snap := e.Snapshot()
	if len(snap.Items) != 1 {
		t.Fatalf("expected 1 falling item, got %d", len(snap.Items))
	}
	it := snap.Items[0]
	if it.Column < 0 || it.Column >= snap.Columns {
		t.Errorf("column %d out of range", it.Column)
	}
	if it.Y >= 0 {
		t.Errorf("item should start above the board, Y = %v", it.Y)
	}
	base := config.DefaultMathDropConfig().Physics.BaseSpeed
	if it.FallSpeed < base*0.9-1e-9 || it.FallSpeed > base*1.1+1e-9 {
		t.Errorf("FallSpeed %v outside jitter range", it.FallSpeed)
	}
	if it.Expression == "" {
		t.Error("item has no expression")
	}
}

func TestSpawnCadence(t *testing.T) {
	e := newEngine(t, 3, nil)
	interval := e.Difficulty().SpawnInterval

	e.Step(refTick) // Immediate spawn
	spawned := 1
	for elapsed := time.Duration(0); elapsed < 3*interval; elapsed += refTick {
		if e.Step(refTick).Spawned {
			spawned++
		}
	}
	if spawned < 3 || spawned > 4 {
		t.Errorf("spawned %d items over three intervals", spawned)
	}
}

func TestSumAllRule(t *testing.T) {
	e := newEngine(t, 1, quiet)
	s := e.Store()

	// Grid: col0 S B, col1 L G, col2 S. Items: 3(S) 4(B) 5(L).
	s.StackBlock(0, core.ColorStrawberry, 0)
	s.StackBlock(0, core.ColorBlueberry, 0)
	s.StackBlock(1, core.ColorLemon, 0)
	s.StackBlock(1, core.ColorGrape, 0)
	s.StackBlock(2, core.ColorStrawberry, 0)
	s.AddItem(core.FallingItem{Column: 0, Y: 10, Answer: 3, FallSpeed: 0.1, Color: core.ColorStrawberry})
	s.AddItem(core.FallingItem{Column: 3, Y: 20, Answer: 4, FallSpeed: 0.1, Color: core.ColorBlueberry})
	s.AddItem(core.FallingItem{Column: 4, Y: 30, Answer: 5, FallSpeed: 0.1, Color: core.ColorLemon})

	out := e.SubmitInput("12")
	if out.Kind != core.MatchSum {
		t.Fatalf("Kind = %v, want sum", out.Kind)
	}
	if !out.ResetInput() {
		t.Error("sum match should reset input")
	}
	if len(out.Items) != 3 {
		t.Errorf("cleared %d items, want 3", len(out.Items))
	}
	if out.Flagged != 4 {
		t.Errorf("flagged %d blocks, want 4", out.Flagged)
	}
	if want := 100 + 150 + 20*4; out.Points != want || e.Score() != want {
		t.Errorf("points = %d, score = %d, want %d", out.Points, e.Score(), want)
	}

	snap := e.Snapshot()
	if len(snap.Items) != 0 {
		t.Errorf("%d items still falling", len(snap.Items))
	}
	if !snap.Flashing {
		t.Error("expected flash after sum match")
	}
	if snap.PendingClears != 1 {
		t.Errorf("PendingClears = %d, want 1", snap.PendingClears)
	}
	if snap.Solved != 0 {
		t.Errorf("sum match counted as solve: %d", snap.Solved)
	}

	report := e.Step(500 * time.Millisecond)
	snap = e.Snapshot()
	if len(snap.Blocks) != 1 {
		t.Fatalf("expected only the grape block left, got %d blocks", len(snap.Blocks))
	}
	if b := snap.Blocks[0]; b.Color != core.ColorGrape || b.Column != 1 || b.Row != 0 {
		t.Errorf("unexpected remaining block %+v", b)
	}
	ev, ok := findEvent(report.Events, core.EventComboCleared)
	if !ok || !ev.Sum || ev.Size != 4 {
		t.Errorf("expected sum combo-cleared event of size 4, got %+v (found=%v)", ev, ok)
	}
	if countEvents(report.Events, core.EventMatched) != 1 {
		t.Error("expected the matched event to be delivered with the step")
	}
	if e.Score() != 330 {
		t.Errorf("score changed on removal: %d", e.Score())
	}
}

func TestSumAllCountsPendingClear(t *testing.T) {
	e := newEngine(t, 1, quiet)
	s := e.Store()
	s.StackBlock(0, core.ColorLemon, 0)
	s.StackBlock(0, core.ColorLemon, 0)
	s.StackBlock(1, core.ColorLemon, 0)
	s.AddItem(core.FallingItem{Column: 3, Y: 10, Answer: 4, Color: core.ColorLemon})

	if out := e.SubmitInput("4"); out.Flagged != 3 {
		t.Fatalf("single match flagged %d, want 3", out.Flagged)
	}

	s.AddItem(core.FallingItem{Column: 3, Y: 10, Answer: 2, Color: core.ColorLemon})
	s.AddItem(core.FallingItem{Column: 4, Y: 10, Answer: 3, Color: core.ColorGrape})
	out := e.SubmitInput("5")
	if out.Kind != core.MatchSum {
		t.Fatalf("Kind = %v, want sum", out.Kind)
	}
	if out.Flagged != 3 {
		t.Errorf("sum match counted %d blocks, want the 3 already clearing", out.Flagged)
	}
	if want := 100 + 2*50 + 3*20; out.Points != want {
		t.Errorf("points = %d, want %d", out.Points, want)
	}

	e.Step(500 * time.Millisecond)
	if n := len(e.Snapshot().Blocks); n != 0 {
		t.Errorf("%d blocks left after both clears", n)
	}
	if want := 11 + 260 + 90; e.Score() != want {
		t.Errorf("Score = %d, want %d", e.Score(), want)
	}
}

func TestSumAllNeedsTwoItems(t *testing.T) {
	e := newEngine(t, 1, quiet)
	e.Store().AddItem(core.FallingItem{Column: 0, Y: 10, Answer: 7})

	out := e.SubmitInput("7")
	if out.Kind != core.MatchSingle {
		t.Fatalf("Kind = %v, want single", out.Kind)
	}
}

func TestSumAllBeatsSingle(t *testing.T) {
	e := newEngine(t, 1, quiet)
	s := e.Store()
	s.AddItem(core.FallingItem{Column: 0, Y: 10, Answer: 0})
	s.AddItem(core.FallingItem{Column: 1, Y: 10, Answer: 6})

	if out := e.SubmitInput("6"); out.Kind != core.MatchSum {
		t.Errorf("Kind = %v, want sum", out.Kind)
	}
}

func TestSingleMatchTieBreak(t *testing.T) {
	e := newEngine(t, 1, quiet)
	s := e.Store()
	high := s.AddItem(core.FallingItem{Column: 0, Y: 20, Answer: 7, Color: core.ColorApple})
	low := s.AddItem(core.FallingItem{Column: 1, Y: 40, Answer: 7, Color: core.ColorGrape})
	s.AddItem(core.FallingItem{Column: 2, Y: 60, Answer: 9, Color: core.ColorLemon})

	out := e.SubmitInput("7")
	if out.Kind != core.MatchSingle {
		t.Fatalf("Kind = %v, want single", out.Kind)
	}
	if out.Items[0].ID != low.ID {
		t.Errorf("matched item %d, want the lower item %d", out.Items[0].ID, low.ID)
	}
	if want := 10 + 1; out.Points != want {
		t.Errorf("Points = %d, want %d", out.Points, want)
	}

	items := e.Snapshot().Items
	if len(items) != 2 || items[0].ID != high.ID {
		t.Errorf("expected the higher item to remain, got %+v", items)
	}
}

func TestSingleMatchDeferredClusterClear(t *testing.T) {
	e := newEngine(t, 1, quiet)
	s := e.Store()
	s.StackBlock(0, core.ColorApple, 0)
	s.StackBlock(0, core.ColorApple, 0)
	s.StackBlock(0, core.ColorLemon, 0)
	s.StackBlock(1, core.ColorApple, 0)
	s.AddItem(core.FallingItem{Column: 3, Y: 10, Answer: 4, Color: core.ColorApple})

	out := e.SubmitInput("4")
	if out.Flagged != 3 {
		t.Fatalf("Flagged = %d, want 3", out.Flagged)
	}
	snap := e.Snapshot()
	if !snap.Shaking {
		t.Error("expected shake for a cluster of 3")
	}
	for _, b := range snap.Blocks {
		if b.Clearing != (b.Color == core.ColorApple) {
			t.Errorf("block %+v has wrong clearing flag", b)
		}
	}

	e.Step(499 * time.Millisecond)
	if n := len(e.Snapshot().Blocks); n != 4 {
		t.Fatalf("blocks removed before the clear delay: %d left", n)
	}

	report := e.Step(time.Millisecond)
	snap = e.Snapshot()
	if len(snap.Blocks) != 1 {
		t.Fatalf("expected 1 block after clear, got %d", len(snap.Blocks))
	}
	if b := snap.Blocks[0]; b.Color != core.ColorLemon || b.Row != 0 {
		t.Errorf("lemon block not compacted: %+v", b)
	}
	if b := snap.Blocks[0]; b.LastSettledAt != 500*time.Millisecond {
		t.Errorf("fallen block LastSettledAt = %v, want 500ms", b.LastSettledAt)
	}

	ev, ok := findEvent(report.Events, core.EventClusterCleared)
	if !ok || ev.Size != 3 || ev.Points != 90 {
		t.Errorf("cluster event = %+v (found=%v), want size 3 and 90 points", ev, ok)
	}
	if want := 11 + 90; e.Score() != want {
		t.Errorf("Score = %d, want %d", e.Score(), want)
	}
}

func TestSingleMatchCombo(t *testing.T) {
	e := newEngine(t, 1, func(cfg *config.MathDropConfig) {
		quiet(cfg)
		cfg.Effects.ClearDelay = 0
	})
	s := e.Store()
	for i := 0; i < 5; i++ {
		s.StackBlock(2, core.ColorGrape, 0)
	}
	s.AddItem(core.FallingItem{Column: 0, Y: 10, Answer: 8, Color: core.ColorGrape})

	e.SubmitInput("8")
	if n := len(e.Snapshot().Blocks); n != 0 {
		t.Fatalf("immediate clear left %d blocks", n)
	}
	events := e.DrainEvents()
	ev, ok := findEvent(events, core.EventComboCleared)
	if !ok || ev.Sum || ev.Size != 5 {
		t.Fatalf("expected combo event of size 5, got %+v (found=%v)", ev, ok)
	}
	if want := 5*30 + 100; ev.Points != want {
		t.Errorf("combo points = %d, want %d", ev.Points, want)
	}
	if !e.Snapshot().Flashing {
		t.Error("expected flash after combo")
	}
}

func TestLoneBlockDoesNotDetonate(t *testing.T) {
	e := newEngine(t, 1, quiet)
	s := e.Store()
	s.StackBlock(0, core.ColorLemon, 0)
	s.StackBlock(1, core.ColorApple, 0)
	s.AddItem(core.FallingItem{Column: 3, Y: 10, Answer: 2, Color: core.ColorLemon})

	out := e.SubmitInput("2")
	if out.Kind != core.MatchSingle || out.Flagged != 0 {
		t.Errorf("outcome = %+v, want single match without flagged blocks", out)
	}
	if e.Snapshot().PendingClears != 0 {
		t.Error("no clear should be pending")
	}
}

func TestLevelUpThroughEngine(t *testing.T) {
	e := newEngine(t, 1, quiet)
	threshold := config.DefaultMathDropConfig().Difficulty.LevelThreshold

	var leveled int
	for i := 0; i < threshold; i++ {
		e.Store().AddItem(core.FallingItem{Column: 0, Y: 10, Answer: 3})
		if e.SubmitInput("3").LevelUp {
			leveled++
		}
	}
	if leveled != 1 {
		t.Fatalf("leveled up %d times, want 1", leveled)
	}
	snap := e.Snapshot()
	if snap.Level != 2 || snap.Solved != threshold {
		t.Errorf("level %d solved %d, want 2 and %d", snap.Level, snap.Solved, threshold)
	}
	// Points use the level before the solve that leveled up.
	if want := threshold * 11; snap.Score != want {
		t.Errorf("Score = %d, want %d", snap.Score, want)
	}
	if countEvents(e.DrainEvents(), core.EventLevelUp) != 1 {
		t.Error("expected one level-up event")
	}
}

func TestSubmitInputOutcomes(t *testing.T) {
	tests := []struct {
		input string
		want  core.MatchKind
		wrong bool
	}{
		{"", core.MatchIgnored, false},
		{"abc", core.MatchIgnored, false},
		{"-3", core.MatchIgnored, false},
		{"1 2", core.MatchIgnored, false},
		{"1", core.MatchPending, false},
		{"123", core.MatchPending, false},
		{"1234", core.MatchRejected, true},
		{"99999999999999999999999", core.MatchRejected, true},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.input), func(t *testing.T) {
			e := newEngine(t, 1, quiet)
			e.Store().AddItem(core.FallingItem{Column: 0, Y: 10, Answer: 5})

			out := e.SubmitInput(tt.input)
			if out.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", out.Kind, tt.want)
			}
			events := e.DrainEvents()
			if got := countEvents(events, core.EventWrongInput) == 1; got != tt.wrong {
				t.Errorf("wrong-input event = %v, want %v", got, tt.wrong)
			}
			if tt.want == core.MatchIgnored && len(events) != 0 {
				t.Errorf("ignored input emitted %d events", len(events))
			}
			if e.Store().ItemCount() != 1 {
				t.Error("unmatched input removed an item")
			}
		})
	}
}

func TestStopCancelsPendingClear(t *testing.T) {
	e := newEngine(t, 1, quiet)
	s := e.Store()
	s.StackBlock(0, core.ColorBlueberry, 0)
	s.StackBlock(0, core.ColorBlueberry, 0)
	s.AddItem(core.FallingItem{Column: 2, Y: 10, Answer: 4, Color: core.ColorBlueberry})
	e.SubmitInput("4")

	e.Stop()
	before := e.Snapshot()
	report := e.Step(time.Second)

	if report.Status != core.StatusStopped || len(report.Events) != 0 {
		t.Errorf("stopped step report = %+v", report)
	}
	after := e.Snapshot()
	if len(after.Blocks) != 2 {
		t.Errorf("pending clear ran after Stop: %d blocks left", len(after.Blocks))
	}
	if after.PendingClears != 0 {
		t.Errorf("PendingClears = %d after Stop", after.PendingClears)
	}
	if after.Now != before.Now {
		t.Error("clock advanced after Stop")
	}
	if out := e.SubmitInput("1"); out.Kind != core.MatchIgnored {
		t.Errorf("input accepted after Stop: %v", out.Kind)
	}
}

func TestPauseFreezesEngine(t *testing.T) {
	e := newEngine(t, 1, quiet)
	e.Step(refTick)
	e.TogglePause()
	if e.Status() != core.StatusPaused {
		t.Fatalf("Status = %v, want paused", e.Status())
	}

	before := e.Snapshot()
	e.Step(time.Second)
	if after := e.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Error("state changed while paused")
	}
	if out := e.SubmitInput(strconv.Itoa(before.Items[0].Answer)); out.Kind != core.MatchIgnored {
		t.Errorf("input accepted while paused: %v", out.Kind)
	}

	e.TogglePause()
	if e.Status() != core.StatusPlaying {
		t.Errorf("Status = %v after resume", e.Status())
	}
}

func TestGameOverFiresOnce(t *testing.T) {
	e := newEngine(t, 1, func(cfg *config.MathDropConfig) {
		quiet(cfg)
		cfg.Grid.Columns = 1
		cfg.Grid.MaxRows = 2
	})
	s := e.Store()
	s.StackBlock(0, core.ColorApple, 0)
	s.AddItem(core.FallingItem{Column: 0, Y: 99, FallSpeed: 1, Color: core.ColorGrape})

	report := e.Step(refTick)
	if !report.GameOver || report.Status != core.StatusGameOver {
		t.Fatalf("expected game over, got %+v", report)
	}
	if n := countEvents(report.Events, core.EventGameOver); n != 1 {
		t.Fatalf("game over events = %d, want 1", n)
	}
	if h := e.Snapshot().Heights()[0]; h != 2 {
		t.Errorf("column height = %d, want 2", h)
	}

	frozen := e.Snapshot()
	for i := 0; i < 100; i++ {
		r := e.Step(refTick)
		if r.GameOver || len(r.Events) != 0 {
			t.Fatalf("step %d after game over reported %+v", i, r)
		}
	}
	if after := e.Snapshot(); !reflect.DeepEqual(frozen, after) {
		t.Error("state changed after game over")
	}
}

func TestGameOverCancelsPendingClear(t *testing.T) {
	e := newEngine(t, 1, func(cfg *config.MathDropConfig) {
		quiet(cfg)
		cfg.Grid.Columns = 2
		cfg.Grid.MaxRows = 3
	})
	s := e.Store()
	s.StackBlock(0, core.ColorLemon, 0)
	s.StackBlock(0, core.ColorLemon, 0)
	s.StackBlock(1, core.ColorApple, 0)
	s.StackBlock(1, core.ColorGrape, 0)
	s.AddItem(core.FallingItem{Column: 1, Y: 99, Answer: 50, FallSpeed: 1})
	s.AddItem(core.FallingItem{Column: 0, Y: -50, Answer: 6, Color: core.ColorLemon})

	e.SubmitInput("6")
	if e.Snapshot().PendingClears != 1 {
		t.Fatal("expected a pending clear")
	}
	e.Step(refTick)
	if e.Status() != core.StatusGameOver {
		t.Fatalf("Status = %v, want game over", e.Status())
	}
	if e.Snapshot().PendingClears != 0 {
		t.Error("pending clear survived game over")
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() (string, int) {
		e := newEngine(t, 12345, nil)
		for i := 0; i < 3000; i++ {
			e.Step(refTick)
			if i%45 == 0 {
				if items := e.Snapshot().Items; len(items) > 0 {
					e.SubmitInput(strconv.Itoa(items[len(items)-1].Answer))
				}
			}
		}
		return core.RenderASCII(e.Snapshot()), e.Score()
	}

	a, scoreA := run()
	b, scoreB := run()
	if a != b || scoreA != scoreB {
		t.Errorf("same seed produced different runs:\n%s\n---\n%s", a, b)
	}
	if scoreA == 0 {
		t.Error("expected some points in the scripted run")
	}
}

func TestBlocksStayContiguousDuringPlay(t *testing.T) {
	e := newEngine(t, 99, func(cfg *config.MathDropConfig) {
		cfg.Spawn.Interval = 300 * time.Millisecond
	})
	for i := 0; i < 5000 && e.Status() == core.StatusPlaying; i++ {
		e.Step(refTick)
		snap := e.Snapshot()
		if !core.Contiguous(snap.Blocks, snap.Columns) {
			t.Fatalf("step %d: rows not contiguous\n%s", i, core.RenderASCII(snap))
		}
		for _, h := range snap.Heights() {
			if h > snap.MaxRows {
				t.Fatalf("step %d: column exceeds max rows", i)
			}
		}
		if i%20 == 0 && len(snap.Items) > 0 {
			e.SubmitInput(strconv.Itoa(snap.Items[0].Answer))
		}
	}
}
