package locator

// OutcomeKind classifies the terminal result of one server fetch.
type OutcomeKind int

const (
	// OutcomeFound means the server listed the queried player.
	OutcomeFound OutcomeKind = iota

	// OutcomeNotFound means the server exposed its player list and the
	// queried player was not on it.
	OutcomeNotFound

	// OutcomeUnreachable means the server's status could not be
	// determined: offline, timed out, or the request or payload failed.
	OutcomeUnreachable

	// OutcomeHidden means the server is online but does not expose
	// individual player names, so the lookup is inconclusive.
	OutcomeHidden
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not-found"
	case OutcomeUnreachable:
		return "unreachable"
	case OutcomeHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Reasons attached to OutcomeUnreachable. A closed set so that report
// output stays deterministic.
const (
	ReasonTimeout         = "timeout"
	ReasonOffline         = "offline"
	ReasonInvalidResponse = "invalid-response"
	ReasonRequestFailed   = "request-failed"
	ReasonCancelled       = "cancelled"
)

// Outcome is the result of one server fetch. Exactly one Outcome is
// produced per configured server per lookup; outcomes are owned by their
// producing task until handed to the aggregator.
type Outcome struct {
	Kind OutcomeKind

	// Reason is set for OutcomeUnreachable.
	Reason string

	// Players is a snapshot of the listed player names at fetch time.
	// Nil unless the server exposed its player list.
	Players []string
}
