package rules

import "github.com/jmegner/KillDoctorLuckyWeb-sub000/board"

// ResolveAttack resolves attacker's attack against the opposing alliance's
// normal player (spec.md §4.3). It always increments the attacker's
// strength and appends to AttackerHistory, regardless of outcome; it
// returns whether the attack succeeded.
//
// Open question resolution (recorded in DESIGN.md): spec.md says a normal
// attacker "optionally" consumes a weapon card "if still needs help". The
// action-resolution phase has no human decision point, so this always
// spends an available weapon card rather than leaving it banked -- an
// attacker that can bring more force to bear does.
func ResolveAttack(s *board.GameState, attacker board.PieceId) bool {
	strength := s.Strength(attacker) + 1
	s.SetStrength(attacker, strength)
	s.AttackerHistory = append(s.AttackerHistory, attacker)

	if attacker.IsStranger() {
		strength -= StrangerAttackPenalty
	}

	if attacker.IsNormalPlayer() && s.WeaponsOf(attacker) > board.EqTolerance {
		s.SetWeaponsOf(attacker, s.WeaponsOf(attacker)-1)
		strength += StrengthPerWeapon
	}

	defender := attacker.Opponent()
	remaining := strength

	remaining = spendDefense(s, defender, remaining)

	return remaining > board.EqTolerance
}

// spendDefense has the defender consume failure cards, then weapon cards,
// then move cards (each worth a fixed number of clovers) to reduce the
// attacker's remaining strength, stopping as soon as remaining reaches
// zero or the defender runs out of cards to spend.
func spendDefense(s *board.GameState, defender board.PieceId, remaining float64) float64 {
	remaining = consumeCards(remaining, FailureCloverValue, s.FailuresOf(defender), func(v float64) { s.SetFailuresOf(defender, v) })
	remaining = consumeCards(remaining, WeaponCloverValue, s.WeaponsOf(defender), func(v float64) { s.SetWeaponsOf(defender, v) })
	remaining = consumeCards(remaining, MoveCardCloverValue, s.MoveCardsOf(defender), func(v float64) { s.SetMoveCardsOf(defender, v) })
	return remaining
}

// consumeCards spends up to `available` cards worth cloverValue each against
// remaining strength, writes the new card count back via set, and returns
// the strength left after spending.
func consumeCards(remaining, cloverValue, available float64, set func(float64)) float64 {
	if remaining <= board.EqTolerance || available <= board.EqTolerance {
		return remaining
	}
	needed := remaining / cloverValue
	used := needed
	if available < used {
		used = available
	}
	set(available - used)
	return remaining - used*cloverValue
}
