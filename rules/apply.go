package rules

import "github.com/jmegner/KillDoctorLuckyWeb-sub000/board"

// numAllPlayers is the four movable (non-doctor) piece slots; doctor
// activation only overrides turn order once at least one full cycle has
// elapsed (spec.md §4.2: "starting from turn index >= num_all_players").
const numAllPlayers = 4

// Outcome summarizes what one ApplyTurn call did, for previews and
// animation (spec.md §6's preview_turn_plan / animation_frames).
type Outcome struct {
	// Attackers lists every piece that attempted an attack during this
	// call (human turn plus any cascading stranger turns), in order.
	Attackers []board.PieceId
	// CurrentPlayerLoots reports whether the human mover's action phase
	// resolved to Loot.
	CurrentPlayerLoots bool
	// MovedStrangers lists strangers the human's plan itself relocated
	// (not strangers moved later by their own automatic turn).
	MovedStrangers []board.PieceId
	// StrangerSawDoctorBeforeMove is the inert "nosy stranger" observation
	// hook of spec.md §4.2: computed, never acted on in this variant.
	StrangerSawDoctorBeforeMove bool
}

// ApplyTurn validates and applies turn to s, returning the resulting state
// (with s linked as its PrevState) and an Outcome describing what happened.
// On validation failure, s is untouched and the returned state is nil.
func ApplyTurn(b *board.Board, s *board.GameState, turn board.SimpleTurn) (*board.GameState, Outcome, *Error) {
	if s.HasWinner() {
		return nil, Outcome{}, invalidPlan("game already has a winner")
	}
	if err := ValidateTurn(b, s, turn); err != nil {
		return nil, Outcome{}, err
	}

	next := s.Clone()
	turnCopy := turn
	turnCopy.Moves = append([]board.PlayerMove(nil), turn.Moves...)
	next.PrevTurn = &turnCopy
	next.PrevState = s

	outcome := Outcome{}
	mover := next.Current

	outcome.StrangerSawDoctorBeforeMove = movePhase(b, next, turn, &outcome)

	historyBefore := len(next.AttackerHistory)
	action := bestActionAllowed(b, next, mover)
	switch action {
	case ActionAttack:
		if ResolveAttack(next, mover) {
			winner := mover.NormalPlayer()
			next.Winner = &winner
			outcome.Attackers = append(outcome.Attackers, next.AttackerHistory[historyBefore:]...)
			return next, outcome, nil
		}
	case ActionLoot:
		applyLoot(next, mover)
		outcome.CurrentPlayerLoots = true
	}
	outcome.Attackers = append(outcome.Attackers, next.AttackerHistory[historyBefore:]...)

	doctorPhase(b, next)
	next.TurnID++

	for !next.HasWinner() && next.Current.IsStranger() {
		before := len(next.AttackerHistory)
		runStrangerTurn(b, next)
		outcome.Attackers = append(outcome.Attackers, next.AttackerHistory[before:]...)
	}

	return next, outcome, nil
}

// movePhase applies the move phase of spec.md §4.2: subtracts consumed move
// cards from the mover, relocates every moved piece, and records the
// inert nosy-stranger observation plus which strangers the human's own plan
// relocated.
func movePhase(b *board.Board, s *board.GameState, turn board.SimpleTurn, outcome *Outcome) bool {
	totalDist := 0
	sawDoctor := false
	for _, m := range turn.Moves {
		src := s.RoomOf(m.Piece)
		totalDist += b.Distance(src, m.Dest)
		if m.Piece.IsStranger() {
			outcome.MovedStrangers = append(outcome.MovedStrangers, m.Piece)
			if b.Sight(src, s.DoctorRoom) {
				sawDoctor = true
			}
		}
	}

	spent := totalDist - FreeMovementPoints
	if spent > 0 {
		mover := s.Current
		s.SetMoveCardsOf(mover, s.MoveCardsOf(mover)-float64(spent))
	}

	for _, m := range turn.Moves {
		s.SetRoom(m.Piece, m.Dest)
	}

	return sawDoctor
}

// doctorPhase advances the doctor one step and resolves doctor activation:
// if a piece now shares the doctor's room and enough turns have elapsed,
// that piece (searched forward from the natural next player) takes the
// next turn; otherwise the natural next player does.
func doctorPhase(b *board.Board, s *board.GameState) {
	s.DoctorRoom = b.NextRoom(s.DoctorRoom, 1)

	natural := board.NextSlot(s.Current)
	next := natural

	if s.TurnID >= numAllPlayers {
		candidate := natural
		for i := 0; i < numAllPlayers; i++ {
			if s.RoomOf(candidate) == s.DoctorRoom {
				next = candidate
				break
			}
			candidate = board.NextSlot(candidate)
		}
	}

	s.Current = next
}
