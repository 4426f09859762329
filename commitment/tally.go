package commitment

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/vocdoni/commitment-core/wire"
)

// Tally decodes the first scalar of decommitmentBundle as a base-(N+1)
// integer of m digits, one digit per candidate, comma-separated.
//
// N is the maximum vote count per candidate, m the number of candidates.
// If the value does not fully reduce to zero after m digit extractions, the
// encoded value exceeded the declared capacity and ErrOverflowTally is
// returned instead of silently truncating the leftover high-order digits.
func Tally(decommitmentBundle []byte, n, m int) (string, error) {
	if n < 1 || m < 1 {
		return "", ErrInvalidTallyParameters
	}

	x, _, err := wire.ParseDecommitmentBundle(decommitmentBundle)
	if err != nil {
		return "", wrapParseOrCurve(err)
	}

	base := big.NewInt(int64(n) + 1)
	rem := new(big.Int)
	v := new(big.Int).Set(x)

	// Digits are appended in extraction order (least-significant digit of
	// the running value first) and joined in that same order.
	digits := make([]string, m)
	for i := 0; i < m; i++ {
		v.QuoRem(v, base, rem)
		digits[i] = strconv.FormatInt(rem.Int64(), 10)
	}

	if v.Sign() != 0 {
		return "", ErrOverflowTally
	}

	return strings.Join(digits, ","), nil
}
