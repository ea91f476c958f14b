package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGeneratePlacementMoves_QueenRule checks both halves of the Queen-Bee
// placement rule: it may not be a colour's first placement, and it must be
// forced by their fourth once three other tiles are down.
func TestGeneratePlacementMoves_QueenRule(t *testing.T) {
	b := NewBoard(NewGameParams())

	first := b.GeneratePlacementMoves(White)
	require.NotEmpty(t, first, "White should have placement options on the opening move")
	for _, m := range first {
		require.NotEqual(t, Queen, m.From.GetBugType(), "Queen must not be placeable as the first tile")
	}

	require.True(t, b.ApplyMove(Move{From: wA1, To: NoneTile, Direction: Above}))
	require.True(t, b.ApplyMove(Move{From: wA2, To: wA1, Direction: E}))
	require.True(t, b.ApplyMove(Move{From: wA3, To: wA2, Direction: E}))

	fourth := b.GeneratePlacementMoves(White)
	require.NotEmpty(t, fourth, "White should still have placement options on the fourth move")
	for _, m := range fourth {
		require.Equal(t, Queen, m.From.GetBugType(), "Queen must be forced on the fourth placement")
	}
}

// TestArticulationPoints_PinsTheMiddleOfAStraightLine builds a three-tile
// chain where the middle tile is a cut vertex, and checks that only it is
// reported pinned.
func TestArticulationPoints_PinsTheMiddleOfAStraightLine(t *testing.T) {
	b := NewBoard(NewGameParams())
	require.True(t, b.ApplyMove(Move{From: wA1, To: NoneTile, Direction: Above}))
	require.True(t, b.ApplyMove(Move{From: wA2, To: wA1, Direction: E}))
	require.True(t, b.ApplyMove(Move{From: wA3, To: wA2, Direction: E}))

	require.False(t, b.IsPinnedTile(wA1), "an end of the chain is never a cut vertex")
	require.True(t, b.IsPinnedTile(wA2), "the middle of a straight chain is a cut vertex")
	require.False(t, b.IsPinnedTile(wA3), "the other end of the chain is never a cut vertex")
}

// TestArticulationPoints_TriangleHasNoPins checks that a triangle of three
// mutually-adjacent tiles has no cut vertices: every tile has two
// independent paths to the others.
func TestArticulationPoints_TriangleHasNoPins(t *testing.T) {
	b := NewBoard(NewGameParams())
	require.True(t, b.ApplyMove(Move{From: wA1, To: NoneTile, Direction: Above}))
	require.True(t, b.ApplyMove(Move{From: wA2, To: wA1, Direction: E}))
	require.True(t, b.ApplyMove(Move{From: wA3, To: wA1, Direction: SE}))

	require.False(t, b.IsPinnedTile(wA1))
	require.False(t, b.IsPinnedTile(wA2))
	require.False(t, b.IsPinnedTile(wA3))
}

// TestIsGated_BlocksOnlyWhenBothOrNeitherFlankIsOccupied exercises the
// freedom-to-move gate rule directly: a slide needs exactly one of the two
// flanking cells occupied to pivot around.
func TestIsGated_BlocksOnlyWhenBothOrNeitherFlankIsOccupied(t *testing.T) {
	b := NewBoard(NewGameParams())
	require.True(t, b.ApplyMove(Move{From: wQ, To: NoneTile, Direction: Above}))

	require.True(t, b.IsGated(OriginPosition, E, NullPosition),
		"no flanking tile on either side should block the slide")

	require.True(t, b.ApplyMove(Move{From: wA1, To: wQ, Direction: SE}))
	require.False(t, b.IsGated(OriginPosition, E, NullPosition),
		"exactly one flanking tile should open the slide")

	require.True(t, b.ApplyMove(Move{From: wA2, To: wQ, Direction: NE}))
	require.True(t, b.IsGated(OriginPosition, E, NullPosition),
		"both flanking tiles occupied should squeeze-block the slide")
}

// TestOwnStartCellExcludedFromConnectivity checks that a tile sliding away
// from a two-tile hive can still see the hive as connected at every step,
// because its own vacated start cell is never counted as a neighbour.
func TestOwnStartCellExcludedFromConnectivity(t *testing.T) {
	b := NewBoard(NewGameParams())
	require.True(t, b.ApplyMove(Move{From: wQ, To: NoneTile, Direction: Above}))
	require.True(t, b.ApplyMove(Move{From: wA1, To: wQ, Direction: E}))

	dests := b.GenerateValidSlides(wA1, 1)
	require.NotEmpty(t, dests, "the Ant should have somewhere to slide around the Queen")
}

// TestBeetleClimb checks that a Beetle can climb onto an adjacent tile with
// neither flanking cell occupied - the climb gate is tested at the landing
// height, not the Beetle's own ground height, so an isolated neighbour
// never blocks it.
func TestBeetleClimb(t *testing.T) {
	b := NewBoard(NewGameParams())
	require.True(t, b.ApplyMove(Move{From: wQ, To: NoneTile, Direction: Above}))
	require.True(t, b.ApplyMove(Move{From: wB1, To: wQ, Direction: E}))

	dests := b.GenerateValidClimbs(wB1)
	queenPos := b.PositionOf(wQ)
	want := Position{Q: queenPos.Q, R: queenPos.R, H: queenPos.H + 1}
	require.Contains(t, dests, want, "the Beetle should be able to climb onto the Queen")
}

// TestBeetleClimb_BlockedBySqueeze checks that a climb is still gated when
// both cells flanking the destination are themselves covered up to the
// landing height - the squeeze case the ground-level rule also blocks.
func TestBeetleClimb_BlockedBySqueeze(t *testing.T) {
	b := NewBoard(NewGameParams())
	require.True(t, b.ApplyMove(Move{From: wQ, To: NoneTile, Direction: Above}))
	require.True(t, b.ApplyMove(Move{From: wB1, To: wQ, Direction: E}))
	require.True(t, b.ApplyMove(Move{From: wB2, To: wQ, Direction: NE}))
	require.True(t, b.ApplyMove(Move{From: wA1, To: wQ, Direction: SE}))
	require.True(t, b.ApplyMove(Move{From: bB1, To: wB2, Direction: Above}))
	require.True(t, b.ApplyMove(Move{From: bB2, To: wA1, Direction: Above}))

	dests := b.GenerateValidClimbs(wB1)
	queenPos := b.PositionOf(wQ)
	blocked := Position{Q: queenPos.Q, R: queenPos.R, H: queenPos.H + 1}
	require.NotContains(t, dests, blocked, "both flanks covered up to the landing height should squeeze-block the climb")
}

// TestApplyMove_Overflow checks that a move landing outside the board's
// fixed radius is rejected without mutating the board, and that the
// largest-radius high-water mark is still recorded.
func TestApplyMove_Overflow(t *testing.T) {
	params := GameParams{BoardRadius: 1, UseMosquito: true, UseLadybug: true, UsePillbug: true}
	b := NewBoard(params)
	require.True(t, b.ApplyMove(Move{From: wQ, To: NoneTile, Direction: Above}))
	require.True(t, b.ApplyMove(Move{From: wA1, To: wQ, Direction: E}))

	ok := b.ApplyMove(Move{From: wA2, To: wA1, Direction: E})
	require.False(t, ok, "a move two cells east of the origin should overflow a radius-1 board")
	require.False(t, b.IsInPlay(wA2), "the overflowing tile should not have been placed")
	require.Equal(t, 2, b.LargestRadius())
}

// TestIsQueenSurrounded checks both the negative and positive cases.
func TestIsQueenSurrounded(t *testing.T) {
	b := NewBoard(NewGameParams())
	require.False(t, b.IsQueenSurrounded(White), "an unplayed Queen is never surrounded")

	require.True(t, b.ApplyMove(Move{From: wQ, To: NoneTile, Direction: Above}))
	require.False(t, b.IsQueenSurrounded(White))

	require.True(t, b.ApplyMove(Move{From: bA1, To: wQ, Direction: NE}))
	require.True(t, b.ApplyMove(Move{From: bA2, To: wQ, Direction: E}))
	require.True(t, b.ApplyMove(Move{From: bA3, To: wQ, Direction: SE}))
	require.True(t, b.ApplyMove(Move{From: bG1, To: wQ, Direction: SW}))
	require.True(t, b.ApplyMove(Move{From: bG2, To: wQ, Direction: W}))
	require.False(t, b.IsQueenSurrounded(White), "five of six neighbours is not yet surrounded")

	require.True(t, b.ApplyMove(Move{From: bG3, To: wQ, Direction: NW}))
	require.True(t, b.IsQueenSurrounded(White), "all six neighbours occupied should surround the Queen")
}
