package rosters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockrosters -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/army-builder/internal/domain/roster"
)

// Repository stores the roster of each builder session. Entries live for
// the session only; the Redis implementation expires them.
type Repository interface {
	// Create stores a new roster
	Create(ctx context.Context, r *roster.Roster) error

	// Get retrieves a roster by ID
	Get(ctx context.Context, id string) (*roster.Roster, error)

	// Update replaces an existing roster
	Update(ctx context.Context, r *roster.Roster) error

	// Delete removes a roster
	Delete(ctx context.Context, id string) error

	// ListByOwner retrieves every live roster of an owner
	ListByOwner(ctx context.Context, ownerID string) ([]*roster.Roster, error)
}
