package service

import (
	"yatube-api/internal/apperr"
	"yatube-api/internal/models"
)

// OwnershipGuard decides whether an authenticated identity may mutate an
// owned resource. Posts and comments share this single implementation.
type OwnershipGuard struct {
	users UserDirectory
}

func NewOwnershipGuard(users UserDirectory) *OwnershipGuard {
	return &OwnershipGuard{users: users}
}

// AuthorizeMutation runs the authorship check in a fixed order. The order
// determines which error a caller observes and must not be rearranged:
//  1. a missing resource is NotFound;
//  2. a token subject with no matching identity is NotFound (a
//     data-consistency problem, not a permission one);
//  3. an author mismatch is Forbidden.
// On success it returns the resolved requesting identity.
func (g *OwnershipGuard) AuthorizeMutation(found bool, authorID uint, subject string) (*models.User, error) {
	if !found {
		return nil, apperr.ErrNotFound
	}

	user, err := g.users.FindByEmail(subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}

	if authorID != user.ID {
		return nil, apperr.ErrForbidden
	}

	return user, nil
}
