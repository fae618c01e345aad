package booking

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCancelled  Status = "CANCELLED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
)

// transitions is the explicit state machine: state -> allowed next states.
// CANCELLED -> PENDING/CONFIRMED is reactivation; CHECKED_OUT is terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCancelled, StatusCheckedIn},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCancelled:  {StatusPending, StatusConfirmed},
	StatusCheckedOut: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// HoldsRoom reports whether a booking in this status occupies the room's
// busy-period ledger.
func (s Status) HoldsRoom() bool {
	return s == StatusPending || s == StatusConfirmed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
