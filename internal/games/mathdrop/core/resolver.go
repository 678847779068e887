package core

import (
	"cmp"
	"slices"
	"strconv"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// MatchKind is the typed result of SubmitInput.
type MatchKind int

const (
	MatchIgnored  MatchKind = iota // Not a number, or the engine is not playing
	MatchPending                   // No match yet; keep typing
	MatchSum                       // Input equals the sum of every falling item
	MatchSingle                    // Input solved one item
	MatchRejected                  // Too long without a match; input is discarded
)

// String returns the match kind name.
func (k MatchKind) String() string {
	switch k {
	case MatchIgnored:
		return "ignored"
	case MatchPending:
		return "pending"
	case MatchSum:
		return "sum"
	case MatchSingle:
		return "single"
	case MatchRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// MatchOutcome describes what an input did.
type MatchOutcome struct {
	Kind    MatchKind
	Items   []FallingItem // Items removed by the match
	Flagged int           // Blocks targeted by the deferred clear
	Points  int           // Points awarded immediately
	LevelUp bool
}

// ResetInput reports whether the caller should empty its input buffer.
func (o MatchOutcome) ResetInput() bool {
	switch o.Kind {
	case MatchSum, MatchSingle, MatchRejected:
		return true
	default:
		return false
	}
}

// SubmitInput checks the player's current input against the falling items.
// The sum-all rule is tried before the single-item rule. Effects are applied
// before SubmitInput returns.
func (e *Engine) SubmitInput(input string) MatchOutcome {
	if e.status != StatusPlaying || !isDigits(input) {
		return MatchOutcome{Kind: MatchIgnored}
	}

	value, err := strconv.Atoi(input)
	if err != nil {
		value = -1 // Out of range, cannot match any answer
	}

	if out, ok := e.matchSum(value); ok {
		return out
	}
	if out, ok := e.matchSingle(value); ok {
		return out
	}
	if len(input) > e.cfg.Scoring.InputGuard {
		e.emit(Event{Kind: EventWrongInput})
		return MatchOutcome{Kind: MatchRejected}
	}
	return MatchOutcome{Kind: MatchPending}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// matchSum applies the sum-all rule: every falling item is cleared and every
// block sharing a color with one of them is detonated, adjacent or not.
func (e *Engine) matchSum(value int) (MatchOutcome, bool) {
	if e.store.ItemCount() < 2 {
		return MatchOutcome{}, false
	}
	sum := 0
	for _, it := range e.store.items {
		sum += it.Answer
	}
	if sum != value {
		return MatchOutcome{}, false
	}

	items := e.store.TakeItems()
	colors := mapset.New[Color]()
	for _, it := range items {
		colors.Put(it.Color)
	}
	targets := ColorTargets(e.store.blocks, colors)
	e.store.MarkClearing(targets)
	detonated := targets.Size()

	sc := e.cfg.Scoring
	points := sc.SumBase + sc.SumPerItem*len(items) + sc.SumPerBlock*detonated
	e.score += points
	e.flash.start(e.now, e.cfg.Effects.SumFlash)
	e.emit(Event{Kind: EventMatched, Sum: true, Size: len(items), Points: points})

	if detonated > 0 {
		e.scheduleClear(targets, true)
	}
	return MatchOutcome{Kind: MatchSum, Items: items, Flagged: detonated, Points: points}, true
}

// matchSingle applies the single-item rule. Items closest to landing are
// checked first; equal heights keep spawn order.
func (e *Engine) matchSingle(value int) (MatchOutcome, bool) {
	order := slices.Clone(e.store.items)
	slices.SortStableFunc(order, func(a, b FallingItem) int {
		return cmp.Compare(b.Y, a.Y)
	})
	idx := slices.IndexFunc(order, func(it FallingItem) bool {
		return it.Answer == value
	})
	if idx < 0 {
		return MatchOutcome{}, false
	}
	item, _ := e.store.RemoveItem(order[idx].ID)

	points := e.cfg.Scoring.MatchBase + e.diff.Level
	e.score += points

	targets := FindCluster(e.store.blocks, item.Color)
	flagged := e.store.MarkClearing(targets)
	if flagged >= e.cfg.Effects.ShakeThreshold {
		e.shake.start(e.now, e.cfg.Effects.Shake)
	}

	e.emit(Event{Kind: EventMatched, Column: item.Column, Color: item.Color, Size: 1, Points: points})
	if flagged > 0 {
		e.scheduleClear(targets, false)
	}

	levelUp := e.diff.RecordSolve()
	if levelUp {
		e.emit(Event{Kind: EventLevelUp, Level: e.diff.Level})
	}
	return MatchOutcome{
		Kind:    MatchSingle,
		Items:   []FallingItem{item},
		Flagged: flagged,
		Points:  points,
		LevelUp: levelUp,
	}, true
}

// scheduleClear removes ids and compacts the grid after the clear delay.
// Single-item clears are scored when the blocks are removed; sum-all clears
// were scored when flagged.
func (e *Engine) scheduleClear(ids mapset.Set[EntityID], sum bool) {
	run := func(now time.Duration) {
		blocks, removed := RemoveAndSettle(e.store.blocks, ids, e.store.columns, now)
		e.store.SetBlocks(blocks)
		if removed == 0 {
			return
		}

		sc := e.cfg.Scoring
		ev := Event{Kind: EventClusterCleared, Size: removed, Sum: sum}
		if sum {
			ev.Kind = EventComboCleared
		} else {
			ev.Points = removed * sc.BlockPoints
			if removed > sc.ComboThreshold {
				ev.Points += sc.ComboBonus
				ev.Kind = EventComboCleared
				e.flash.start(now, e.cfg.Effects.ComboFlash)
			}
			e.score += ev.Points
		}
		e.emit(ev)
	}

	if e.cfg.Effects.ClearDelay <= 0 {
		run(e.now)
		return
	}
	e.queue.Schedule(e.now+e.cfg.Effects.ClearDelay, run)
}
