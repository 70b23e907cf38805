// Package conflict carries the rejection type the booking validators return
// when a proposed slot is already taken, and the result shape the pre-check
// endpoints expose to forms.
package conflict

import (
	"fmt"
	"strings"
)

// Error reports that a candidate booking overlaps at least one existing,
// non-cancelled booking. ResourceNames holds the display names of every
// contested resource so the form layer can tell the user exactly what is
// taken. Callers must not retry; the user has to pick a different slot.
type Error struct {
	ResourceNames []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("booking conflict: already reserved during the selected time: %s",
		strings.Join(e.ResourceNames, ", "))
}

// Result is the outcome of a pre-submission conflict check. It is advisory:
// the authoritative check runs again at submit time.
type Result struct {
	OK                       bool     `json:"ok"`
	ConflictingResourceNames []string `json:"conflicting_resource_names,omitempty"`
}

// ResultOK is the empty, accepting result.
func ResultOK() Result {
	return Result{OK: true}
}

// ResultOf converts a validator outcome into a Result.
func ResultOf(names []string) Result {
	if len(names) == 0 {
		return ResultOK()
	}
	return Result{OK: false, ConflictingResourceNames: names}
}
