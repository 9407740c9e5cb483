package jsonish

import "github.com/K-Mistele/jsonish-sub001/coerce"

// The sentinels below re-export coerce's error taxonomy at the package
// root, so a caller who only imports jsonish for Parse can still
// errors.Is against a specific failure mode without reaching into the
// coerce subpackage directly.
var (
	ErrDepthExceeded        = coerce.ErrDepthExceeded
	ErrNoUnionMatch         = coerce.ErrNoUnionMatch
	ErrRequiredFieldMissing = coerce.ErrRequiredFieldMissing
	ErrAmbiguousBoolean     = coerce.ErrAmbiguousBoolean
	ErrAmbiguousLiteral     = coerce.ErrAmbiguousLiteral
	ErrRecursionDetected    = coerce.ErrRecursionDetected
	ErrInvalidNumber        = coerce.ErrInvalidNumber
	ErrCoercionFailed       = coerce.ErrCoercionFailed
)
