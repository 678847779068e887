package core

import "time"

// PhysicsResult describes what one physics step changed.
type PhysicsResult struct {
	Landed         []Block // New blocks in landing order
	Overflow       bool    // A column reached the row cap
	OverflowColumn int     // First column that overflowed, -1 if none
}

// RowHeight returns the height of one grid row in percent of the board.
func RowHeight(maxRows int) float64 {
	return 100 / float64(maxRows)
}

// FloorLine returns the landing height for a column holding occupied blocks.
func FloorLine(occupied, maxRows int) float64 {
	return 100 - float64(occupied+1)*RowHeight(maxRows)
}

// StepPhysics advances every falling item by elapsed and converts items that
// reach their column's floor line into blocks. Speeds are expressed per
// reference tick and scaled by speedScale.
//
// Items are processed in spawn order and column heights are updated as items
// land, so two items landing in the same column in one step stack on
// different rows.
func StepPhysics(s *Store, elapsed, referenceTick time.Duration, speedScale float64, maxRows int, now time.Duration) PhysicsResult {
	res := PhysicsResult{OverflowColumn: -1}
	if len(s.items) == 0 || referenceTick <= 0 {
		return res
	}

	ticks := float64(elapsed) / float64(referenceTick)
	heights := s.Heights()
	touched := make([]bool, s.columns)
	survivors := s.items[:0]

	for _, item := range s.items {
		item.Y += item.FallSpeed * speedScale * ticks

		col := item.Column
		if heights[col] >= maxRows {
			// Column already full; the run is over, the item stays airborne.
			survivors = append(survivors, item)
			continue
		}
		if item.Y < FloorLine(heights[col], maxRows) {
			survivors = append(survivors, item)
			continue
		}

		res.Landed = append(res.Landed, s.addBlock(col, heights[col], item.Color, now))
		heights[col]++
		touched[col] = true
		if heights[col] >= maxRows && !res.Overflow {
			res.Overflow = true
			res.OverflowColumn = col
		}
	}
	s.items = survivors

	for col, t := range touched {
		if t {
			s.touchColumn(col, now)
		}
	}
	return res
}
