package commitment

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/commitment-core/curve"
	"github.com/vocdoni/commitment-core/wire"
)

func TestAddCommitmentBeforeInitIsStateError(t *testing.T) {
	c := qt.New(t)
	sess := NewSession()
	cv, err := curve.New(curve.P256)
	c.Assert(err, qt.IsNil)
	h := cv.Generator().ScalarMult(big.NewInt(5))

	err = sess.AddCommitment(commit(cv, h, big.NewInt(1), big.NewInt(1)))
	c.Assert(err, qt.Equals, ErrState)
}

func TestAddDecommitmentBeforeInitIsStateError(t *testing.T) {
	c := qt.New(t)
	sess := NewSession()
	err := sess.AddDecommitment(wire.FormatDecommitmentBundle(big.NewInt(1), big.NewInt(1)))
	c.Assert(err, qt.Equals, ErrState)
}

func TestReInitDiscardsInProgressSession(t *testing.T) {
	c := qt.New(t)
	cv, err := curve.New(curve.P256)
	c.Assert(err, qt.IsNil)
	h := cv.Generator().ScalarMult(big.NewInt(5))
	key := testKeyBlob(curve.P256, h)

	sess := NewSession()
	c.Assert(sess.InitCommitment(key), qt.IsNil)
	c.Assert(sess.AddCommitment(commit(cv, h, big.NewInt(9), big.NewInt(9))), qt.IsNil)

	// re-init wipes the pending contribution above
	c.Assert(sess.InitCommitment(key), qt.IsNil)
	c.Assert(sess.AddCommitment(commit(cv, h, big.NewInt(1), big.NewInt(1))), qt.IsNil)

	bundle, err := sess.FinalizeCommitment()
	c.Assert(err, qt.IsNil)
	decom := wire.FormatDecommitmentBundle(big.NewInt(1), big.NewInt(1))

	ok, err := Verify(bundle, decom, key)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)
}

func TestFinalizeTwiceWithoutReinitIsStateError(t *testing.T) {
	c := qt.New(t)
	cv, err := curve.New(curve.P256)
	c.Assert(err, qt.IsNil)
	h := cv.Generator().ScalarMult(big.NewInt(5))
	key := testKeyBlob(curve.P256, h)

	sess := NewSession()
	c.Assert(sess.InitCommitment(key), qt.IsNil)
	c.Assert(sess.AddCommitment(commit(cv, h, big.NewInt(1), big.NewInt(1))), qt.IsNil)
	_, err = sess.FinalizeCommitment()
	c.Assert(err, qt.IsNil)

	_, err = sess.FinalizeCommitment()
	c.Assert(err, qt.Equals, ErrState)
}

func TestCommitmentAndDecommitmentSessionsAreIndependent(t *testing.T) {
	c := qt.New(t)
	cv, err := curve.New(curve.P256)
	c.Assert(err, qt.IsNil)
	h := cv.Generator().ScalarMult(big.NewInt(5))
	key := testKeyBlob(curve.P256, h)

	sess := NewSession()
	c.Assert(sess.InitCommitment(key), qt.IsNil)
	c.Assert(sess.AddCommitment(commit(cv, h, big.NewInt(1), big.NewInt(1))), qt.IsNil)

	// no InitDecommitment call yet: decommitment side must still be idle
	err = sess.AddDecommitment(wire.FormatDecommitmentBundle(big.NewInt(1), big.NewInt(1)))
	c.Assert(err, qt.Equals, ErrState)

	_, err = sess.FinalizeCommitment()
	c.Assert(err, qt.IsNil)
}
