package rules

// Card-value constants inherited as part of the engine's identity
// (spec.md §9: "magic numbers inherited without derivation; treat as part
// of the engine's identity and cover them in a constants table rather than
// rediscovering").
const (
	// LootGain is added to the looting player's move-card, weapon, and
	// failure counts (each) when best_action_allowed() resolves to Loot.
	LootGain = 11.0 / 32.0

	// StrengthPerWeapon is the attack-strength bonus from consuming one
	// weapon card as an attacker.
	StrengthPerWeapon = 53.0 / 24.0

	// FailureCloverValue is the defensive contribution of one failure
	// (clover) card.
	FailureCloverValue = 50.0 / 24.0

	// WeaponCloverValue and MoveCardCloverValue are the defensive
	// contribution of one weapon / move card respectively, each worth a
	// single clover.
	WeaponCloverValue   = 1.0
	MoveCardCloverValue = 1.0

	// StrangerAttackPenalty is subtracted from a stranger attacker's
	// effective strength (spec.md §4.3's "asymmetric rule").
	StrangerAttackPenalty = 1.0

	// FreeMovementPoints is the "+1" every turn's move budget carries
	// before any move cards are consumed.
	FreeMovementPoints = 1
)
