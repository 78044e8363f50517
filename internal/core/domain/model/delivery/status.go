package delivery

// Status is the completion filter applied when listing a deliveryman's deliveries.
type Status int

const (
	// Pending selects deliveries without an end date.
	Pending Status = iota
	// Done selects deliveries with an end date.
	Done
)

// DefaultStatus is used when the client does not send a status filter.
const DefaultStatus = Done

// ParseStatus maps a client supplied filter to a Status.
// Only "done" selects finished deliveries; every other value, including an
// empty or misspelled one, falls back to Pending.
func ParseStatus(s string) Status {
	if s == "done" {
		return Done
	}
	return Pending
}

// String returns "done" or "pending".
func (s Status) String() string {
	if s == Done {
		return "done"
	}
	return "pending"
}

// IsDone reports whether s selects finished deliveries.
func (s Status) IsDone() bool {
	return s == Done
}
