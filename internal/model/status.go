package model

// CategoryStatus summarizes how much of a category budget has been used.
type CategoryStatus int

const (
	// StatusGood means spending is below the warning threshold.
	StatusGood CategoryStatus = iota
	// StatusWarning means spending is close to the budget.
	StatusWarning
	// StatusOver means the budget is used up.
	StatusOver
)

func (s CategoryStatus) String() string {
	switch s {
	case StatusWarning:
		return "warning"
	case StatusOver:
		return "over"
	default:
		return "good"
	}
}

// MarshalText lets the status render as its name in JSON output.
func (s CategoryStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
