// Package authz centralizes the ownership check every mutating use case
// performs after session authentication.
package authz

import "homekeep/organizer-api/internal/domain"

// RequireOwner compares the authenticated requester against a resource's
// owning user ID. Self-service endpoints pass the target user ID here.
func RequireOwner(requesterID, ownerID string) error {
	if requesterID != ownerID {
		return domain.NewForbiddenError("You don't have permission to access this resource")
	}

	return nil
}
