package result

import "fmt"

// Status is the tri-state classification of a Result.
type Status uint8

const (
	// StatusUndefined is reported only by a Result that skipped construction,
	// i.e. the zero value.
	StatusUndefined Status = iota
	StatusOk
	StatusErr
)

func (s Status) String() string {
	switch s {
	case StatusUndefined:
		return "Undefined"
	case StatusOk:
		return "Ok"
	case StatusErr:
		return "Err"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}
