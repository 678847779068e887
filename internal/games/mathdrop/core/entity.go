package core

import (
	"time"

	"github.com/zyedidia/generic/mapset"
)

// EntityID identifies a falling item or a block. IDs come from a
// per-engine monotonic counter and are never reused.
type EntityID uint64

// FallingItem is an airborne expression descending toward the stack.
// Its column never changes.
type FallingItem struct {
	ID         EntityID
	Column     int
	Y          float64 // Percent of board height; negative above the visible area
	Expression string
	Answer     int
	FallSpeed  float64 // Percent per 16ms reference tick
	Color      Color
}

// Block is a settled item resident in the grid.
// Row 0 is the floor; rows within a column are always 0..n-1.
type Block struct {
	ID            EntityID
	Column        int
	Row           int
	Color         Color
	LastSettledAt time.Duration // Engine clock time of the last landing/fall
	Clearing      bool          // Flagged for removal, waiting for the clear delay
}

// Store holds the falling items and settled blocks of one engine.
// It is plain data; the physics, cluster and compaction code mutate it.
type Store struct {
	columns int
	nextID  EntityID
	items   []FallingItem // Spawn order
	blocks  []Block
}

// NewStore creates an empty store for a grid of the given width.
func NewStore(columns int) *Store {
	return &Store{columns: columns}
}

// Columns returns the grid width.
func (s *Store) Columns() int {
	return s.columns
}

// Reset removes every entity. The ID counter keeps counting.
func (s *Store) Reset() {
	s.items = nil
	s.blocks = nil
}

func (s *Store) newID() EntityID {
	s.nextID++
	return s.nextID
}

// AddItem registers a new falling item and assigns its ID.
func (s *Store) AddItem(item FallingItem) FallingItem {
	item.ID = s.newID()
	s.items = append(s.items, item)
	return item
}

// Items returns a copy of the falling items in spawn order.
func (s *Store) Items() []FallingItem {
	return append([]FallingItem(nil), s.items...)
}

// ItemCount returns the number of falling items.
func (s *Store) ItemCount() int {
	return len(s.items)
}

// RemoveItem deletes a falling item by ID.
func (s *Store) RemoveItem(id EntityID) (FallingItem, bool) {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return it, true
		}
	}
	return FallingItem{}, false
}

// TakeItems removes and returns all falling items.
func (s *Store) TakeItems() []FallingItem {
	items := s.items
	s.items = nil
	return items
}

// addBlock creates a block at the given position.
func (s *Store) addBlock(col, row int, color Color, now time.Duration) Block {
	b := Block{
		ID:            s.newID(),
		Column:        col,
		Row:           row,
		Color:         color,
		LastSettledAt: now,
	}
	s.blocks = append(s.blocks, b)
	return b
}

// StackBlock places a block on top of a column.
func (s *Store) StackBlock(col int, color Color, now time.Duration) Block {
	return s.addBlock(col, s.ColumnHeight(col), color, now)
}

// Blocks returns a copy of the settled blocks.
func (s *Store) Blocks() []Block {
	return append([]Block(nil), s.blocks...)
}

// SetBlocks replaces the settled blocks.
func (s *Store) SetBlocks(blocks []Block) {
	s.blocks = blocks
}

// BlockCount returns the number of settled blocks.
func (s *Store) BlockCount() int {
	return len(s.blocks)
}

// ColumnHeight returns the number of blocks in a column, clearing ones included.
func (s *Store) ColumnHeight(col int) int {
	n := 0
	for _, b := range s.blocks {
		if b.Column == col {
			n++
		}
	}
	return n
}

// Heights returns the block count of every column.
func (s *Store) Heights() []int {
	heights := make([]int, s.columns)
	for _, b := range s.blocks {
		if b.Column >= 0 && b.Column < s.columns {
			heights[b.Column]++
		}
	}
	return heights
}

// MarkClearing flags the given blocks as clearing and returns how many were flagged.
func (s *Store) MarkClearing(ids mapset.Set[EntityID]) int {
	n := 0
	for i := range s.blocks {
		if ids.Has(s.blocks[i].ID) && !s.blocks[i].Clearing {
			s.blocks[i].Clearing = true
			n++
		}
	}
	return n
}

// touchColumn refreshes LastSettledAt of every block in a column.
func (s *Store) touchColumn(col int, now time.Duration) {
	for i := range s.blocks {
		if s.blocks[i].Column == col {
			s.blocks[i].LastSettledAt = now
		}
	}
}
