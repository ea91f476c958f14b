package game

// slideWalk carries the bookkeeping for a bounded slide search across
// recursive calls, in place of a closure capturing these as free variables.
type slideWalk struct {
	board    *Board
	start    Position
	maxSteps int
	visited  map[Position]bool
	path     []Position
	out      map[Position]struct{}
}

// GenerateValidSlides returns every ground position reachable from tile's
// current position by sliding exactly maxSteps steps (spider, maxSteps==3,
// no cell revisited) or at most maxSteps steps (queen and pillbug's own
// move, maxSteps==1; ant, maxSteps==-1 for "unbounded"). Every intermediate
// and final cell must obey the gate rule and keep the hive connected with
// the moving tile's start cell excluded from the check.
func (b *Board) GenerateValidSlides(tile Tile, maxSteps int) []Position {
	start := b.positionOf[tile].Grounded()
	w := &slideWalk{
		board:    b,
		start:    start,
		maxSteps: maxSteps,
		visited:  map[Position]bool{start: true},
		out:      make(map[Position]struct{}),
	}
	w.walk(start, 0)

	out := make([]Position, 0, len(w.out))
	for p := range w.out {
		out = append(out, p)
	}
	return out
}

func (w *slideWalk) walk(pos Position, steps int) {
	exact := w.maxSteps > 0 && w.maxSteps != -1
	if w.maxSteps > 0 && steps == w.maxSteps {
		w.out[pos] = struct{}{}
		return
	}
	if !exact && steps > 0 {
		w.out[pos] = struct{}{}
	}

	for d := Direction(0); d < NumCardinalDirections; d++ {
		next := pos.NeighbourAt(d)
		if w.visited[next] {
			continue
		}
		if w.board.TopTileAt(next).HasValue() {
			continue
		}
		if w.board.IsGated(pos, d, w.start) {
			continue
		}
		if !w.board.IsConnected(next, w.start) {
			continue
		}

		w.visited[next] = true
		w.walk(next, steps+1)
		w.visited[next] = false
	}
}
