// Package colors assigns a background color to every box date by advancing
// through a palette as milestone events are crossed.
package colors

import "fmt"

// Error represents an error that occurs during color assignment.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
