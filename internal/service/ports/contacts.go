package ports

import (
	"context"

	"github.com/vgrishin/CourtBooker/internal/domain"
)

// ContactDirectory resolves users to their notification profiles. Users
// without a record are simply absent from the result; an error means the
// whole batch could not be resolved.
type ContactDirectory interface {
	ResolveContacts(ctx context.Context, userIDs []string) (map[string]*domain.ContactProfile, error)
}
