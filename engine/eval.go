package engine

import (
	"math"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
)

// Decay rates for the doctor-proximity term of the heuristic (spec.md §4.6).
const (
	DecayNormal   = 0.9
	DecayStranger = 0.5
)

// pairAggregate sums the four scoring fields across a normal player and its
// stranger ally, the "allied_pair" / "opposing_pair" unit the heuristic
// scores as a whole.
type pairAggregate struct {
	strength, moveCards, weapons, failures float64
}

func aggregate(s *board.GameState, player, ally board.PieceId) pairAggregate {
	return pairAggregate{
		strength:  s.Strength(player) + s.Strength(ally),
		moveCards: s.MoveCardsOf(player) + s.MoveCardsOf(ally),
		weapons:   s.WeaponsOf(player) + s.WeaponsOf(ally),
		failures:  s.FailuresOf(player) + s.FailuresOf(ally),
	}
}

// misc scores one side's aggregate per spec.md §4.6.
func misc(agg pairAggregate, isItsTurn bool, doctorAdvantage float64) float64 {
	turnBonus := 0.0
	if isItsTurn {
		turnBonus = 0.95
	}
	return agg.strength +
		0.5*agg.strength*(agg.moveCards+turnBonus+0.9*doctorAdvantage) +
		0.5*agg.weapons +
		0.125*agg.failures
}

// doctorAdvantage returns the signed, decay-weighted proximity-to-doctor
// sum over all four movable pieces: positive contributions from p's
// alliance, negative from the opposing alliance. Distances are measured
// from each piece's current room to the doctor's current room; this
// implementation does not attempt to project the doctor's room forward to
// account for activation timing (see DESIGN.md).
func doctorAdvantage(b *board.Board, s *board.GameState, p board.PieceId) float64 {
	ally := p.Ally()
	opponent := p.Opponent()
	opponentAlly := opponent.Ally()

	type contribution struct {
		piece board.PieceId
		sign  float64
	}
	contributions := []contribution{
		{p, 1},
		{ally, 1},
		{opponent, -1},
		{opponentAlly, -1},
	}

	var total float64
	for _, c := range contributions {
		decay := DecayNormal
		if c.piece.IsStranger() {
			decay = DecayStranger
		}
		dist := b.Distance(s.RoomOf(c.piece), s.DoctorRoom)
		total += c.sign * math.Pow(decay, float64(dist))
	}
	return total
}

// Heuristic evaluates s from p's perspective (spec.md §4.6). p must be a
// normal player (board.Player1 or board.Player2). A decided game returns
// +Inf if p's alliance won, -Inf otherwise; a non-terminal state returns a
// bounded, deterministic, approximately side-symmetric score.
func Heuristic(b *board.Board, s *board.GameState, p board.PieceId) float64 {
	if s.HasWinner() {
		if *s.Winner == p {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}

	ally := p.Ally()
	opponent := p.Opponent()
	opponentAlly := opponent.Ally()

	adv := doctorAdvantage(b, s, p)
	isMyTurn := s.Current == p || s.Current == ally

	alliedScore := misc(aggregate(s, p, ally), isMyTurn, adv)
	opposingScore := misc(aggregate(s, opponent, opponentAlly), !isMyTurn, -adv)

	return alliedScore - opposingScore
}
