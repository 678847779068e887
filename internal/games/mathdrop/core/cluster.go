package core

import "github.com/zyedidia/generic/mapset"

// cell is a grid coordinate.
type cell struct {
	col, row int
}

// neighbors lists the 4-directional offsets.
var neighbors = [4]cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// FindCluster returns the IDs of every block that belongs to a connected
// group of at least two non-clearing blocks of the given color.
// Adjacency is a shared edge. The result depends only on the grid contents,
// not on the order of blocks.
func FindCluster(blocks []Block, seed Color) mapset.Set[EntityID] {
	grid := make(map[cell]Block, len(blocks))
	for _, b := range blocks {
		if b.Color == seed && !b.Clearing {
			grid[cell{b.Column, b.Row}] = b
		}
	}

	result := mapset.New[EntityID]()
	visited := mapset.New[EntityID]()
	for _, start := range blocks {
		if start.Color != seed || start.Clearing || visited.Has(start.ID) {
			continue
		}

		component := []EntityID{start.ID}
		visited.Put(start.ID)
		queue := []cell{{start.Column, start.Row}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, d := range neighbors {
				next := cell{cur.col + d.col, cur.row + d.row}
				b, ok := grid[next]
				if !ok || visited.Has(b.ID) {
					continue
				}
				visited.Put(b.ID)
				component = append(component, b.ID)
				queue = append(queue, next)
			}
		}

		if len(component) >= 2 {
			for _, id := range component {
				result.Put(id)
			}
		}
	}
	return result
}

// ColorTargets returns the IDs of every block whose color is in colors,
// regardless of adjacency. Blocks already flagged by a pending clear are included.
func ColorTargets(blocks []Block, colors mapset.Set[Color]) mapset.Set[EntityID] {
	result := mapset.New[EntityID]()
	for _, b := range blocks {
		if colors.Has(b.Color) {
			result.Put(b.ID)
		}
	}
	return result
}
