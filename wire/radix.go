package wire

import (
	"fmt"
	"math/big"
)

// radix64Alphabet is this package's own digit alphabet for the "radix 64"
// wire encoding of scalars and x-coordinates. A peer implementation's
// underlying big-integer library may define its own base-64 digit mapping
// that would need to match bit-for-bit for interop; since no such mapping
// ships as a dependency here, this alphabet is a self-contained convention
// (see DESIGN.md), not a claim of compatibility with any specific external
// peer. It is NOT the standard Base64 alphabet (RFC 4648 uses "+/" but with
// a different digit-value assignment order).
const radix64Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz+/"

var radix64Value [256]int8

func init() {
	for i := range radix64Value {
		radix64Value[i] = -1
	}
	for v, c := range []byte(radix64Alphabet) {
		radix64Value[c] = int8(v)
	}
}

// ErrMalformedScalar is returned when a token is not a valid unsigned
// integer in the requested radix.
var ErrMalformedScalar = fmt.Errorf("wire: malformed scalar token")

// EncodeRadix64 renders a non-negative integer using this module's base-64
// digit alphabet, most-significant digit first.
func EncodeRadix64(n *big.Int) string {
	if n.Sign() == 0 {
		return string(radix64Alphabet[0])
	}
	v := new(big.Int).Set(n)
	base := big.NewInt(64)
	rem := new(big.Int)
	var digits []byte
	for v.Sign() > 0 {
		v.QuoRem(v, base, rem)
		digits = append(digits, radix64Alphabet[rem.Int64()])
	}
	// digits were accumulated least-significant first
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// DecodeRadix64 parses a token encoded with EncodeRadix64.
func DecodeRadix64(tok []byte) (*big.Int, error) {
	if len(tok) == 0 {
		return nil, ErrMalformedScalar
	}
	n := new(big.Int)
	base := big.NewInt(64)
	for _, b := range tok {
		d := radix64Value[b]
		if d < 0 {
			return nil, ErrMalformedScalar
		}
		n.Mul(n, base)
		n.Add(n, big.NewInt(int64(d)))
	}
	return n, nil
}

// DecodeRadix16 parses a hex token, the radix used only by the compile-time
// Curve Parameter Table.
func DecodeRadix16(tok []byte) (*big.Int, error) {
	n, ok := new(big.Int).SetString(string(tok), 16)
	if !ok {
		return nil, ErrMalformedScalar
	}
	return n, nil
}

// DecodeRadix10 parses a decimal token.
func DecodeRadix10(tok []byte) (*big.Int, error) {
	n, ok := new(big.Int).SetString(string(tok), 10)
	if !ok {
		return nil, ErrMalformedScalar
	}
	return n, nil
}

// DecodeParity parses a single parity token ("0" or "1").
func DecodeParity(tok []byte) (int, error) {
	if len(tok) != 1 || (tok[0] != '0' && tok[0] != '1') {
		return 0, ErrMalformedScalar
	}
	return int(tok[0] - '0'), nil
}
