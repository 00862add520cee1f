package service

import (
	"context"

	"github.com/google/uuid"
)

// Contact holds the delivery addresses on file for a user.
type Contact struct {
	Email string
	Phone string
}

// ContactDirectory resolves a user ID to their delivery addresses. Account
// management lives in the surrounding system; the senders only read.
type ContactDirectory interface {
	// LookupContact returns the contact record for a user.
	LookupContact(ctx context.Context, userID uuid.UUID) (*Contact, error)
}
