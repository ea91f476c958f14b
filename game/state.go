package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// TerminalPlayerID is the sentinel CurrentPlayer returns once the game has
// ended - there is no player left to move.
const TerminalPlayerID = -1

// GameState is a mutable wrapper around a Board plus turn order, move
// numbering, and the force-terminal latch. GameState satisfies the State
// interface in mod.go. Treat every value returned by Clone/Apply as an
// independent copy: in-place mutation is confined to a single GameState
// instance's own lifetime.
type GameState struct {
	board         *Board
	params        GameParams
	currentPlayer Colour
	moveNumber    int
	forceTerminal bool
	history       []Move
}

// NewGameState creates a fresh GameState with no tiles placed, White to
// move.
func NewGameState(params GameParams) *GameState {
	return &GameState{
		board:         NewBoard(params),
		params:        params.normalized(),
		currentPlayer: White,
	}
}

// Board exposes the underlying board store for read-only inspection.
func (g *GameState) Board() *Board { return g.board }

// CurrentPlayer returns 0 for White, 1 for Black, or TerminalPlayerID once
// the game has ended.
func (g *GameState) CurrentPlayer() int {
	if g.IsTerminal() {
		return TerminalPlayerID
	}
	return int(g.currentPlayer)
}

// MoveNumber is the count of plies already applied.
func (g *GameState) MoveNumber() int { return g.moveNumber }

// LegalMoves returns every Move available to the player to move, or a
// single pass if none is.
func (g *GameState) LegalMoves() []Move {
	moves := g.board.GenerateAllMoves(g.currentPlayer)
	if len(moves) == 0 {
		return []Move{{From: NoneTile, To: NoneTile}}
	}
	return moves
}

// LegalActions satisfies the State interface: the encoded action id for
// every Move LegalMoves returns.
func (g *GameState) LegalActions() []int {
	moves := g.LegalMoves()
	actions := make([]int, len(moves))
	for i, m := range moves {
		actions[i] = MoveToAction(m)
	}
	return actions
}

// Play commits move to g in place: turn order, move numbering and the
// force-terminal latch are all GameState's responsibility, not the
// Board's.
func (g *GameState) Play(move Move) {
	if !move.IsPass() && !g.board.ApplyMove(move) {
		g.forceTerminal = true
		log.Warn().
			Int("move_number", g.moveNumber).
			Str("move", MoveUHP(move)).
			Msg("move would carry the hive outside the board radius; game drawn")
	} else if move.IsPass() {
		g.board.Pass()
	}
	g.history = append(g.history, move)
	g.moveNumber++
	g.currentPlayer = OtherColour(g.currentPlayer)
}

// Apply decodes action, plays it against a clone of g, and returns that
// clone - g itself is left untouched.
func (g *GameState) Apply(action int) State {
	next := g.Clone().(*GameState)
	next.Play(ActionToMove(action))
	return next
}

// Clone returns a deep, independent copy of g.
func (g *GameState) Clone() State {
	return &GameState{
		board:         g.board.Clone(),
		params:        g.params,
		currentPlayer: g.currentPlayer,
		moveNumber:    g.moveNumber,
		forceTerminal: g.forceTerminal,
		history:       append([]Move(nil), g.history...),
	}
}

// IsTerminal reports whether either Queen is surrounded, the game has been
// latched to a draw by a fixed-radius overflow, or the move-number ceiling
// has been reached.
func (g *GameState) IsTerminal() bool {
	return g.forceTerminal || g.moveNumber >= MaxGameLength ||
		g.board.IsQueenSurrounded(White) || g.board.IsQueenSurrounded(Black)
}

// Winner returns the colour that won, or (NoneBugType-style) false if the
// game is a draw or still in progress.
func (g *GameState) Winner() (Colour, bool) {
	wSurrounded := g.board.IsQueenSurrounded(White)
	bSurrounded := g.board.IsQueenSurrounded(Black)
	switch {
	case wSurrounded && bSurrounded:
		return White, false
	case wSurrounded:
		return Black, true
	case bSurrounded:
		return White, true
	default:
		return White, false
	}
}

// Returns reports (White's return, Black's return): +1/-1 for a decisive
// game, 0/0 for a draw or a game still in progress.
func (g *GameState) Returns() (float64, float64) {
	if g.forceTerminal {
		return 0, 0
	}
	winner, decisive := g.Winner()
	if !decisive {
		return 0, 0
	}
	if winner == White {
		return 1, -1
	}
	return -1, 1
}

// StateString renders the UHP state-status token.
func (g *GameState) StateString() string {
	switch {
	case g.moveNumber == 0:
		return "NotStarted"
	case !g.IsTerminal():
		return "InProgress"
	}
	winner, decisive := g.Winner()
	if !decisive {
		return "Draw"
	}
	if winner == White {
		return "WhiteWins"
	}
	return "BlackWins"
}

// TurnString renders the UHP turn token, e.g. "White[1]", "Black[3]".
func (g *GameState) TurnString() string {
	round := (g.moveNumber + 2) / 2
	name := "White"
	if g.currentPlayer == Black {
		name = "Black"
	}
	return fmt.Sprintf("%s[%d]", name, round)
}

// MovesString renders the UHP move-history token: every move played so
// far, semicolon-separated.
func (g *GameState) MovesString() string {
	parts := make([]string, len(g.history))
	for i, m := range g.history {
		parts[i] = MoveUHP(m)
	}
	return strings.Join(parts, ";")
}

// Serialize renders the full UHP session string:
// GameTypeString;StateString;TurnString;MovesString.
func (g *GameState) Serialize() string {
	return strings.Join([]string{
		g.params.GameTypeString(),
		g.StateString(),
		g.TurnString(),
		g.MovesString(),
	}, ";")
}

// ObservationString and InformationStateString are identical for Hive:
// the game is one of perfect information, so there is nothing a player
// observes that is not already implied by the full move history.
func (g *GameState) ObservationString(player int) string {
	return g.Serialize()
}

func (g *GameState) InformationStateString(player int) string {
	return g.Serialize()
}
