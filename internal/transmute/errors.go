package transmute

import "errors"

// The transform is all-or-nothing per match: any of these aborts it and no
// partial game is returned. Callers check with errors.Is and may skip the
// offending match when processing batches.
var (
	// ErrMalformedSourceData means the raw record is structurally invalid or
	// contradictory (unresolvable side, disagreeing win flags, bad version string)
	ErrMalformedSourceData = errors.New("malformed source data")

	// ErrUnknownEventType means the timeline carried an event or enum value
	// outside the known vocabulary. Unknown values are never dropped silently.
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrIncompleteGame means the input does not describe a complete
	// two-team match
	ErrIncompleteGame = errors.New("incomplete game")
)
