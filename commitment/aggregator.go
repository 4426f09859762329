package commitment

import (
	"errors"
	"math/big"

	"github.com/vocdoni/commitment-core/curve"
	"github.com/vocdoni/commitment-core/wire"
)

// InitCommitment parses the curve index out of key and starts a new
// commitment aggregation with both running sums at the group identity. It
// discards any in-progress, unfinalized commitment session.
func (s *Session) InitCommitment(key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k, err := wire.ParseKey(key)
	if err != nil {
		return wrapParseOrCurve(err)
	}
	c, err := curve.New(k.CurveIdx)
	if err != nil {
		return wrapParseOrCurve(err)
	}

	s.commitCurve = c
	s.c1 = c.Identity()
	s.c2 = c.Identity()
	s.commitAdded = false
	s.commitState = stateAccumulating
	return nil
}

// AddCommitment parses one commitment contribution and adds it into the
// running sums: C1 += c1, C2 += c2. Because the identity element is the
// additive unit, this is correct from the very first contribution with no
// special-cased "first add" branch.
func (s *Session) AddCommitment(contribution []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.commitState != stateAccumulating {
		return ErrState
	}

	t1, t2, err := wire.ParseCommitmentContribution(contribution)
	if err != nil {
		return wrapParseOrCurve(err)
	}
	c1, err := curve.PointFromX(s.commitCurve, t1.X, t1.Parity)
	if err != nil {
		return wrapParseOrCurve(err)
	}
	c2, err := curve.PointFromX(s.commitCurve, t2.X, t2.Parity)
	if err != nil {
		return wrapParseOrCurve(err)
	}

	s.c1 = s.c1.Add(c1)
	s.c2 = s.c2.Add(c2)
	s.commitAdded = true
	return nil
}

// FinalizeCommitment emits the aggregated commitment bundle and returns the
// session to IDLE. Finalizing a session that never received an
// AddCommitment call returns ErrState rather than emitting an
// indistinguishable all-identity bundle (see DESIGN.md).
func (s *Session) FinalizeCommitment() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.commitState != stateAccumulating || !s.commitAdded {
		return nil, ErrState
	}

	out := wire.FormatCommitmentBundle(s.c1, s.c2)
	s.commitState = stateIdle
	s.commitCurve = nil
	s.c1, s.c2 = nil, nil
	return out, nil
}

// InitDecommitment parses the curve index out of key, loads its order q,
// and starts a new decommitment aggregation with both running sums at zero.
func (s *Session) InitDecommitment(key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k, err := wire.ParseKey(key)
	if err != nil {
		return wrapParseOrCurve(err)
	}
	c, err := curve.New(k.CurveIdx)
	if err != nil {
		return wrapParseOrCurve(err)
	}

	s.decomCurve = c
	s.d1 = big.NewInt(0)
	s.d2 = big.NewInt(0)
	s.decomAdded = false
	s.decomState = stateAccumulating
	return nil
}

// AddDecommitment parses one decommitment contribution and adds it into
// the running sums with ordinary integer addition; reduction mod q happens
// only at finalization.
func (s *Session) AddDecommitment(contribution []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.decomState != stateAccumulating {
		return ErrState
	}

	x, y, err := wire.ParseDecommitmentContribution(contribution)
	if err != nil {
		return wrapParseOrCurve(err)
	}

	s.d1.Add(s.d1, x)
	s.d2.Add(s.d2, y)
	s.decomAdded = true
	return nil
}

// FinalizeDecommitment reduces both running sums mod q, emits the
// aggregated decommitment bundle, and returns the session to IDLE.
// Finalizing a session that never received an AddDecommitment call returns
// ErrState rather than emitting an all-zero bundle.
func (s *Session) FinalizeDecommitment() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.decomState != stateAccumulating || !s.decomAdded {
		return nil, ErrState
	}

	s.d1.Mod(s.d1, s.decomCurve.N)
	s.d2.Mod(s.d2, s.decomCurve.N)
	out := wire.FormatDecommitmentBundle(s.d1, s.d2)

	s.decomState = stateIdle
	s.decomCurve = nil
	s.d1, s.d2 = nil, nil
	return out, nil
}

// wrapParseOrCurve maps a curve/wire-layer error onto the package's public
// error taxonomy: an unknown curve index stays UnknownCurve, a point that
// fails reconstruction is NotOnCurve, everything else (missing/malformed
// tokens) is ParseError.
func wrapParseOrCurve(err error) error {
	switch {
	case errors.Is(err, curve.ErrUnknownCurve):
		return ErrUnknownCurve
	case errors.Is(err, curve.ErrNotOnCurve):
		return ErrNotOnCurve
	default:
		return ErrParse
	}
}
