package voyage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tracking/internal/entities"
	"tracking/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Find(ctx context.Context, number entities.VoyageNumber) (entities.Voyage, error) {
	voyages, err := r.list(ctx, sq.Eq{"v.number": number.String()})
	if err != nil {
		return entities.Voyage{}, fmt.Errorf("unexpected voyage repository find error: %w", err)
	}
	if len(voyages) == 0 {
		return entities.Voyage{}, entities.ErrVoyageNotFound
	}

	return voyages[0], nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Voyage, error) {
	voyages, err := r.list(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("unexpected voyage repository list error: %w", err)
	}

	return voyages, nil
}

func (r *Repository) list(ctx context.Context, where sq.Sqlizer) ([]entities.Voyage, error) {
	builder := qb.
		Select("v.number", "m.seq", "m.departure_location", "m.arrival_location", "m.departure_time", "m.arrival_time").
		From("voyages v").
		Join("carrier_movements m ON m.voyage_number = v.number").
		OrderBy("v.number", "m.seq")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	movements, err := pgx.CollectRows(rows, pgx.RowToStructByPos[CarrierMovementDB])
	if err != nil {
		return nil, err
	}

	return ToDomain(movements), nil
}
