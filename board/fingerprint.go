package board

import (
	"encoding/binary"
	"math"
	"math/bits"
	"math/rand"
)

// Fingerprint is the deterministic byte encoding of a GameState used as the
// search results cache's key (spec.md §3). It excludes PrevState, PrevTurn,
// and any UI-only field; equality on fingerprints implies game-semantic
// equality of the reachable successor set.
type Fingerprint [32]byte

// zobrist-style incremental keys, used only to fold the fingerprint's bytes
// down to a single uint64 for fast map/cache-bucket lookups; the 32-byte
// Fingerprint itself remains the authoritative cache key.
var fingerprintSeed uint64

func init() {
	fingerprintSeed = rand.New(rand.NewSource(0x4B444C5F4B444C)).Uint64()
}

// Fingerprint computes s's cache key.
func (s *GameState) Fingerprint() Fingerprint {
	h := newFpHasher()
	h.writeInt(s.TurnID)
	h.writeInt(int(s.Current))
	h.writeInt(int(s.DoctorRoom))
	for _, r := range s.PlayerRooms {
		h.writeInt(int(r))
	}
	for _, v := range s.Strengths {
		h.writeFloat(v)
	}
	for _, v := range s.MoveCards {
		h.writeFloat(v)
	}
	for _, v := range s.Weapons {
		h.writeFloat(v)
	}
	for _, v := range s.Failures {
		h.writeFloat(v)
	}
	if s.Winner != nil {
		h.writeInt(1)
		h.writeInt(int(*s.Winner))
	} else {
		h.writeInt(0)
	}
	return h.sum()
}

// Hash64 folds the fingerprint into a single uint64, for callers (like the
// transposition-style cache bucket index) that want a cheap approximate key
// before confirming equality against the full Fingerprint.
func (f Fingerprint) Hash64() uint64 {
	var h uint64 = fingerprintSeed
	for i := 0; i < len(f); i += 8 {
		h ^= binary.LittleEndian.Uint64(f[i : i+8])
		h = bits.RotateLeft64(h, 13) * 0x9E3779B97F4A7C15
	}
	return h
}

type fpHasher struct {
	buf [32]byte
	n   int
}

func newFpHasher() *fpHasher {
	return &fpHasher{}
}

func (h *fpHasher) mix(b []byte) {
	// Fold the incoming bytes into the 32-byte accumulator with a simple
	// xor-rotate schedule; deterministic and collision-resistant enough for
	// a cache key over a state space this small (a handful of rooms/pieces).
	for i, c := range b {
		idx := (h.n + i) % len(h.buf)
		h.buf[idx] ^= c
		h.buf[idx] = bits.RotateLeft8(h.buf[idx], 3)
	}
	h.n += len(b)
}

func (h *fpHasher) writeInt(v int) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(int64(v)))
	h.mix(b[:])
}

func (h *fpHasher) writeFloat(v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	h.mix(b[:])
}

func (h *fpHasher) sum() Fingerprint {
	return h.buf
}
