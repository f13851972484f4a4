package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrNoAccountForRole       = errors.New("no account for role")
	ErrPersistenceWrite       = errors.New("persistence write failed")
	ErrChatUnavailable        = errors.New("chat collaborator unavailable")
	ErrNotAuthenticated       = errors.New("not authenticated")
	ErrStaleSession           = errors.New("session changed before the result arrived")
	ErrInvalidInput           = errors.New("invalid input")
	ErrSlotEmpty              = errors.New("storage slot is empty")
	ErrDoctorNotFound         = errors.New("doctor not found")
)

// RoleLookupError reports that a demo sign-in found no account of Role.
type RoleLookupError struct {
	Role Role
}

func (e *RoleLookupError) Error() string {
	return fmt.Sprintf("no %s account found", strings.ToLower(string(e.Role)))
}

func (e *RoleLookupError) Is(target error) bool {
	return target == ErrNoAccountForRole
}
