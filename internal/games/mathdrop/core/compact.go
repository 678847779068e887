package core

import (
	"slices"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// RemoveAndSettle drops the blocks in ids and closes the gaps left in each
// column. Remaining blocks keep their relative order; a block whose row
// changes gets LastSettledAt = now. The result is ordered by column, then row.
func RemoveAndSettle(blocks []Block, ids mapset.Set[EntityID], columns int, now time.Duration) (settled []Block, removed int) {
	byColumn := make([][]Block, columns)
	for _, b := range blocks {
		if ids.Has(b.ID) {
			removed++
			continue
		}
		if b.Column < 0 || b.Column >= columns {
			continue
		}
		byColumn[b.Column] = append(byColumn[b.Column], b)
	}

	settled = make([]Block, 0, len(blocks)-removed)
	for _, col := range byColumn {
		slices.SortStableFunc(col, func(a, b Block) int {
			return a.Row - b.Row
		})
		for i, b := range col {
			if b.Row != i {
				b.Row = i
				b.LastSettledAt = now
			}
			settled = append(settled, b)
		}
	}
	return settled, removed
}

// Contiguous reports whether every column's rows form 0..n-1 without gaps
// or duplicates.
func Contiguous(blocks []Block, columns int) bool {
	rows := make([]mapset.Set[int], columns)
	for i := range rows {
		rows[i] = mapset.New[int]()
	}
	for _, b := range blocks {
		if b.Column < 0 || b.Column >= columns || rows[b.Column].Has(b.Row) {
			return false
		}
		rows[b.Column].Put(b.Row)
	}
	for _, set := range rows {
		for r := 0; r < set.Size(); r++ {
			if !set.Has(r) {
				return false
			}
		}
	}
	return true
}
