package rawparser

import "errors"

// errNoMatch signals that a single cascade strategy found nothing to work
// with (not a parse failure, just "this strategy doesn't apply"), so the
// orchestrator should fall through to the next one in §4.1.1's order.
var errNoMatch = errors.New("rawparser: strategy found no candidate")
