package drop

// Status is derived from the drop's time window against the current time,
// never read back from storage.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusLive      Status = "live"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusEnded, StatusCancelled:
		return true
	default:
		return false
	}
}
