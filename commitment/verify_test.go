package commitment

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/commitment-core/curve"
	"github.com/vocdoni/commitment-core/wire"
)

func TestVerifyAcceptsGenuineOpening(t *testing.T) {
	c := qt.New(t)
	cv, err := curve.New(curve.P384)
	c.Assert(err, qt.IsNil)

	h := cv.Generator().ScalarMult(big.NewInt(42))
	key := testKeyBlob(curve.P384, h)

	m, r := big.NewInt(5), big.NewInt(99)
	bundle := commit(cv, h, m, r)
	decom := wire.FormatDecommitmentBundle(m, r)

	ok, err := Verify(bundle, decom, key)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)
}

func TestVerifyRejectsWrongDecommitment(t *testing.T) {
	c := qt.New(t)
	cv, err := curve.New(curve.P384)
	c.Assert(err, qt.IsNil)

	h := cv.Generator().ScalarMult(big.NewInt(42))
	key := testKeyBlob(curve.P384, h)

	bundle := commit(cv, h, big.NewInt(5), big.NewInt(99))
	wrongDecom := wire.FormatDecommitmentBundle(big.NewInt(6), big.NewInt(99))

	ok, err := Verify(bundle, wrongDecom, key)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	c := qt.New(t)
	cv, err := curve.New(curve.P384)
	c.Assert(err, qt.IsNil)

	h := cv.Generator().ScalarMult(big.NewInt(42))

	m, r := big.NewInt(5), big.NewInt(99)
	bundle := commit(cv, h, m, r)
	decom := wire.FormatDecommitmentBundle(m, r)

	wrongH := cv.Generator().ScalarMult(big.NewInt(43))
	wrongKey := testKeyBlob(curve.P384, wrongH)

	ok, err := Verify(bundle, decom, wrongKey)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)
}

func TestVerifyMalformedInputsAreErrorsNotFalse(t *testing.T) {
	c := qt.New(t)
	cv, err := curve.New(curve.P384)
	c.Assert(err, qt.IsNil)
	h := cv.Generator().ScalarMult(big.NewInt(42))
	key := testKeyBlob(curve.P384, h)
	bundle := commit(cv, h, big.NewInt(1), big.NewInt(1))
	decom := wire.FormatDecommitmentBundle(big.NewInt(1), big.NewInt(1))

	_, err = Verify([]byte("garbage"), decom, key)
	c.Assert(err, qt.Equals, ErrParse)

	_, err = Verify(bundle, []byte("garbage"), key)
	c.Assert(err, qt.Equals, ErrParse)

	_, err = Verify(bundle, decom, []byte("garbage"))
	c.Assert(err, qt.Equals, ErrParse)
}

func TestVerifyAggregatedBundles(t *testing.T) {
	c := qt.New(t)
	cv, err := curve.New(curve.P521)
	c.Assert(err, qt.IsNil)
	h := cv.Generator().ScalarMult(big.NewInt(1001))
	key := testKeyBlob(curve.P521, h)

	sess := NewSession()
	c.Assert(sess.InitCommitment(key), qt.IsNil)
	decomSess := NewSession()
	c.Assert(decomSess.InitDecommitment(key), qt.IsNil)

	for _, pair := range [][2]int64{{1, 2}, {3, 4}, {5, 6}} {
		m, r := big.NewInt(pair[0]), big.NewInt(pair[1])
		c.Assert(sess.AddCommitment(commit(cv, h, m, r)), qt.IsNil)
		c.Assert(decomSess.AddDecommitment(wire.FormatDecommitmentBundle(m, r)), qt.IsNil)
	}

	bundle, err := sess.FinalizeCommitment()
	c.Assert(err, qt.IsNil)
	decom, err := decomSess.FinalizeDecommitment()
	c.Assert(err, qt.IsNil)

	ok, err := Verify(bundle, decom, key)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)
}
