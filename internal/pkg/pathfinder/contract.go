package pathfinder

import (
	"context"

	"tracking/internal/entities"
)

type VoyageLister interface {
	List(ctx context.Context) ([]entities.Voyage, error)
}
