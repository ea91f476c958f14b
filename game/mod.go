package game

// State mirrors the generic game-framework boundary.
// It should be treated as immutable: every mutating operation returns a new
// value rather than editing the receiver in place.
type State interface {
	CurrentPlayer() int
	LegalActions() []int
	Apply(action int) State
	IsTerminal() bool
	Returns() (float64, float64)
	Clone() State
	ObservationString(player int) string
	InformationStateString(player int) string
	ObservationTensor(player int) []float32
}
