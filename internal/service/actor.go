package service

import (
	"github.com/google/uuid"
)

// Actor is the identity an operation runs on behalf of
type Actor struct {
	UserID uuid.UUID
	System bool
}

// SystemActor is used for out-of-band operations such as scheduled trip completion.
// It bypasses permission checks.
var SystemActor = Actor{System: true}

// UserActor creates the actor of an authenticated user
func UserActor(userID uuid.UUID) Actor {
	return Actor{UserID: userID}
}

// changedBy returns the user to record in change logs, nil for the system actor
func (a Actor) changedBy() *uuid.UUID {
	if a.System {
		return nil
	}
	id := a.UserID
	return &id
}

// audit returns the value stored in created_by / updated_by columns
func (a Actor) audit() string {
	if a.System {
		return "system"
	}
	return a.UserID.String()
}
