package application

import (
	"fmt"

	"workify/internal/pkg/errs"
)

// Status represents the decision state of an application.
//
//	Pending ──> Accepted
//	   │
//	   └──────> Rejected
//
// Accepted and Rejected are final.
type Status int

const (
	Unknown Status = iota
	Pending
	Accepted
	Rejected
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pending",
		Accepted: "accepted",
		Rejected: "rejected",
	}
}

// ParseStatus converts a stored status name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("application status", fmt.Errorf("%q is not a known status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("application status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
