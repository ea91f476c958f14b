package game

// GenerateValidClimbs returns every destination reachable from tile's
// current position (which may itself be elevated) by moving exactly one
// step into a cardinal neighbour, landing either on the ground (if that
// neighbour's stack is empty) or on top of whatever stack is there. This is
// the Beetle's move, and the single step a Mosquito copies from an
// adjacent Beetle.
func (b *Board) GenerateValidClimbs(tile Tile) []Position {
	start := b.positionOf[tile]

	var out []Position
	for d := Direction(0); d < NumCardinalDirections; d++ {
		ground := start.NeighbourAt(d).Grounded()
		landing := ground
		if top := b.TopTileAt(ground); top.HasValue() {
			landing = Position{ground.Q, ground.R, b.positionOf[top].H + 1}
		}
		if landing == start {
			continue
		}
		gate := Position{start.Q, start.R, climbGateHeight(start.H, landing.H)}
		if b.IsGated(gate, d, start) {
			continue
		}
		if landing.H == 0 && !b.IsConnected(landing, start) {
			continue
		}
		out = append(out, landing)
	}
	return out
}
