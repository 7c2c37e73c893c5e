// Package generator enumerates every legal turn for the current player
// given a board and game state.
package generator

import (
	"math"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/rules"
)

// LegalTurns enumerates every legal SimpleTurn available to s.Current.
// Movable subsets considered are {current}, {stranger1}, {stranger2}, and,
// only when the current player has move cards banked, the three two-mover
// pairings {current,stranger1}, {current,stranger2}, {stranger1,stranger2}.
// A subset's combined travel distance may not exceed dist_allowed =
// floor(current player's move cards) + FreeMovementPoints. Ordering is
// unspecified; callers that care about move ordering (the search engine)
// sort the result themselves.
func LegalTurns(b *board.Board, s *board.GameState) []board.SimpleTurn {
	current := s.Current
	stranger1, stranger2 := board.Stranger1, board.Stranger2

	distAllowed := math.Floor(s.MoveCardsOf(current)) + rules.FreeMovementPoints

	var turns []board.SimpleTurn
	turns = append(turns, singleMoverTurns(b, s, current, distAllowed)...)
	turns = append(turns, singleMoverTurns(b, s, stranger1, distAllowed)...)
	turns = append(turns, singleMoverTurns(b, s, stranger2, distAllowed)...)

	if s.MoveCardsOf(current) > board.EqTolerance {
		turns = append(turns, twoMoverTurns(b, s, current, stranger1, distAllowed)...)
		turns = append(turns, twoMoverTurns(b, s, current, stranger2, distAllowed)...)
		turns = append(turns, twoMoverTurns(b, s, stranger1, stranger2, distAllowed)...)
	}

	return turns
}

// singleMoverTurns enumerates every destination reachable by piece within
// distAllowed, including the zero-distance "stay put" destination, which
// is the generator's representation of a pass turn (spec.md §4.5).
func singleMoverTurns(b *board.Board, s *board.GameState, piece board.PieceId, distAllowed float64) []board.SimpleTurn {
	src := s.RoomOf(piece)
	var turns []board.SimpleTurn
	for _, dest := range b.RoomOrder() {
		if float64(b.Distance(src, dest)) <= distAllowed+board.EqTolerance {
			turns = append(turns, board.SimpleTurn{Moves: []board.PlayerMove{{Piece: piece, Dest: dest}}})
		}
	}
	return turns
}

// twoMoverTurns enumerates every (destA, destB) pair with combined distance
// within distAllowed where neither mover stays in place.
func twoMoverTurns(b *board.Board, s *board.GameState, a, bPiece board.PieceId, distAllowed float64) []board.SimpleTurn {
	srcA, srcB := s.RoomOf(a), s.RoomOf(bPiece)
	rooms := b.RoomOrder()
	var turns []board.SimpleTurn
	for _, destA := range rooms {
		if destA == srcA {
			continue
		}
		distA := b.Distance(srcA, destA)
		if float64(distA) > distAllowed+board.EqTolerance {
			continue
		}
		for _, destB := range rooms {
			if destB == srcB {
				continue
			}
			total := distA + b.Distance(srcB, destB)
			if float64(total) <= distAllowed+board.EqTolerance {
				turns = append(turns, board.SimpleTurn{Moves: []board.PlayerMove{
					{Piece: a, Dest: destA},
					{Piece: bPiece, Dest: destB},
				}})
			}
		}
	}
	return turns
}
