package errs

import "fmt"

// PermissionDeniedError reports that an actor lacks the role or ownership
// required for an action.
type PermissionDeniedError struct {
	ActorID any
	Action  string
	Cause   error
}

func NewPermissionDeniedError(actorID any, action string) *PermissionDeniedError {
	return &PermissionDeniedError{ActorID: actorID, Action: action}
}

func NewPermissionDeniedErrorWithCause(actorID any, action string, cause error) *PermissionDeniedError {
	return &PermissionDeniedError{ActorID: actorID, Action: action, Cause: cause}
}

func (e *PermissionDeniedError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s may not %s", ErrPermissionDenied, sanitize(e.ActorID), e.Action),
		e.Cause,
	)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

func (e *PermissionDeniedError) Is(target error) bool {
	return causeIs(e.Cause, target)
}
