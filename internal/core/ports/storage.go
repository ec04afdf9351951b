package ports

import (
	"context"

	"github.com/Ajayhariharan/activax/internal/core/domain"
)

// CollectionStore is the persistent store adapter contract: it reads and
// writes the two durable collections as whole serialized records, with no
// business logic of its own.
//
// Load degrades to an empty collection when the entry is absent or the
// payload is corrupt; Save overwrites the prior value and is idempotent.
type CollectionStore interface {
	LoadUsers(ctx context.Context) ([]domain.User, error)
	SaveUsers(ctx context.Context, users []domain.User) error
	LoadActivities(ctx context.Context) ([]domain.Activity, error)
	SaveActivities(ctx context.Context, activities []domain.Activity) error
}
