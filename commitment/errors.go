package commitment

import "fmt"

// Error kinds returned by this package. An out-of-memory condition is not
// modeled: Go surfaces allocation failure as a runtime panic, not a
// recoverable error, so a sentinel for it would never actually be returned
// (see DESIGN.md).
var (
	ErrUnknownCurve           = fmt.Errorf("commitment: unknown curve index")
	ErrParse                  = fmt.Errorf("commitment: parse error")
	ErrNotOnCurve             = fmt.Errorf("commitment: point is not on the curve")
	ErrState                  = fmt.Errorf("commitment: invalid session state for this operation")
	ErrInvalidTallyParameters = fmt.Errorf("commitment: invalid tally parameters")
	ErrOverflowTally          = fmt.Errorf("commitment: tally value exceeds declared capacity")
)
