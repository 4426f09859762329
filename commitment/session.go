// Package commitment implements the elliptic-curve commitment/decommitment
// state machine, its homomorphic aggregation, the ElGamal opening check,
// and base-(N+1) positional tally decoding.
package commitment

import (
	"math/big"
	"sync"

	"github.com/vocdoni/commitment-core/curve"
)

// sessionState tracks one session's position in the IDLE -> INIT -> ACC* ->
// FINAL -> IDLE state machine. INIT and ACC are collapsed into one
// "accumulating" state: once initialized, a session accepts any number of
// adds before finalize.
type sessionState int

const (
	stateIdle sessionState = iota
	stateAccumulating
)

// Session holds one active commitment aggregation and one active
// decommitment aggregation at a time. The internal mutex only protects
// against torn reads of the running sums — callers must still observe the
// state machine (init before add, add before finalize) in program order.
type Session struct {
	mu sync.Mutex

	commitState sessionState
	commitCurve *curve.Curve
	c1, c2      *curve.Point
	commitAdded bool

	decomState sessionState
	decomCurve *curve.Curve
	d1, d2     *big.Int
	decomAdded bool
}

// NewSession constructs an idle Session with no active commitment or
// decommitment aggregation.
func NewSession() *Session {
	return &Session{}
}
