package pushover

import "fmt"

// Priority is the delivery priority of a message, from silent badge updates
// to emergency messages that repeat until acknowledged.
type Priority int

const (
	// PriorityLowest generates no notification; on iOS only the application
	// badge number is increased.
	PriorityLowest Priority = -2

	// PriorityLow generates a popup notification but no sound or vibration.
	PriorityLow Priority = -1

	// PriorityNormal respects the user's device settings and quiet hours.
	PriorityNormal Priority = 0

	// PriorityHigh bypasses the user's quiet hours and is highlighted in red
	// in the device clients.
	PriorityHigh Priority = 1

	// PriorityEmergency repeats the notification until it is acknowledged.
	// Emergency messages require the Retry and Expire fields and return a
	// receipt that can be polled with Client.GetReceipt.
	PriorityEmergency Priority = 2
)

// priorityNames maps the accepted spellings onto priority values. Numeric
// strings are accepted alongside the names.
var priorityNames = map[string]Priority{
	"lowest":    PriorityLowest,
	"low":       PriorityLow,
	"normal":    PriorityNormal,
	"high":      PriorityHigh,
	"emergency": PriorityEmergency,
	"-2":        PriorityLowest,
	"-1":        PriorityLow,
	"0":         PriorityNormal,
	"1":         PriorityHigh,
	"2":         PriorityEmergency,
}

// ParsePriority converts a priority name or numeric string into a Priority.
func ParsePriority(s string) (Priority, error) {
	if p, ok := priorityNames[s]; ok {
		return p, nil
	}
	return PriorityNormal, fmt.Errorf("invalid priority %q (expected lowest, low, normal, high, emergency, or -2..2)", s)
}

// String returns the priority name.
func (p Priority) String() string {
	switch p {
	case PriorityLowest:
		return "lowest"
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityEmergency:
		return "emergency"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Valid reports whether the priority is one of the values the API accepts.
func (p Priority) Valid() bool {
	return p >= PriorityLowest && p <= PriorityEmergency
}
