package kernel

import (
	"fmt"

	"workify/internal/pkg/errs"
)

// Role is the marketplace capability of an authenticated user.
type Role string

const (
	RoleEmployer Role = "employer"
	RoleWorker   Role = "worker"
)

// ParseRole converts a raw role claim into a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleEmployer, RoleWorker:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// Actor is the authenticated user performing an operation. It is supplied by
// the identity provider and never by request bodies.
type Actor struct {
	id   UUID
	role Role
}

// NewActor builds an Actor from a verified identity.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if _, err := ParseRole(string(role)); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// Validate rejects zero-value actors.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	_, err := ParseRole(string(a.role))
	return err
}

func (a Actor) IsEmployer() bool {
	return a.role == RoleEmployer
}

func (a Actor) IsWorker() bool {
	return a.role == RoleWorker
}

// Is reports whether the actor is the user identified by id.
func (a Actor) Is(id UUID) bool {
	return a.id.IsEqual(id)
}

// EnsureEmployer fails with a permission error unless the actor is an employer.
func (a Actor) EnsureEmployer(action string) error {
	if !a.IsEmployer() {
		return errs.NewPermissionDeniedError(a.id.String(), action)
	}
	return nil
}

// EnsureWorker fails with a permission error unless the actor is a worker.
func (a Actor) EnsureWorker(action string) error {
	if !a.IsWorker() {
		return errs.NewPermissionDeniedError(a.id.String(), action)
	}
	return nil
}

// EnsureIs fails with a permission error unless the actor is the user identified by owner.
func (a Actor) EnsureIs(owner UUID, action string) error {
	if !a.Is(owner) {
		return errs.NewPermissionDeniedError(a.id.String(), action)
	}
	return nil
}
