package wire

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRadix64RoundTrip(t *testing.T) {
	c := qt.New(t)
	values := []int64{0, 1, 63, 64, 4095, 123456789}
	for _, v := range values {
		n := big.NewInt(v)
		enc := EncodeRadix64(n)
		dec, err := DecodeRadix64([]byte(enc))
		c.Assert(err, qt.IsNil)
		c.Assert(dec.Cmp(n), qt.Equals, 0)
	}
}

func TestRadix64LargeValue(t *testing.T) {
	c := qt.New(t)
	n, ok := new(big.Int).SetString("115792089210356248762697446949407573530086143415290314195533631308867097853951", 10)
	c.Assert(ok, qt.IsTrue)
	dec, err := DecodeRadix64([]byte(EncodeRadix64(n)))
	c.Assert(err, qt.IsNil)
	c.Assert(dec.Cmp(n), qt.Equals, 0)
}

func TestDecodeRadix64Malformed(t *testing.T) {
	c := qt.New(t)
	_, err := DecodeRadix64([]byte(""))
	c.Assert(err, qt.Equals, ErrMalformedScalar)

	_, err = DecodeRadix64([]byte("!!"))
	c.Assert(err, qt.Equals, ErrMalformedScalar)
}

func TestDecodeParity(t *testing.T) {
	c := qt.New(t)
	p, err := DecodeParity([]byte("1"))
	c.Assert(err, qt.IsNil)
	c.Assert(p, qt.Equals, 1)

	_, err = DecodeParity([]byte("2"))
	c.Assert(err, qt.Equals, ErrMalformedScalar)
}
