package location

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tracking/internal/entities"
	"tracking/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository читает справочник локаций. Справочник заполняется миграциями.
type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Find(ctx context.Context, code entities.UnLocode) (entities.Location, error) {
	query, args, err := qb.
		Select("code", "name").
		From("locations").
		Where(sq.Eq{"code": code.String()}).
		ToSql()
	if err != nil {
		return entities.Location{}, fmt.Errorf("unexpected location repository find error: %w", err)
	}

	var locationDB LocationDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(&locationDB.Code, &locationDB.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Location{}, entities.ErrLocationNotFound
		}
		return entities.Location{}, fmt.Errorf("unexpected location repository find error: %w", err)
	}

	return ToDomain(&locationDB), nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Location, error) {
	rows, err := r.querier.Query(ctx, `SELECT code, name FROM locations ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository list error: %w", err)
	}

	locationsDB, err := pgx.CollectRows(rows, pgx.RowToStructByPos[LocationDB])
	if err != nil {
		return nil, fmt.Errorf("unexpected location repository list error: %w", err)
	}

	locations := make([]entities.Location, 0, len(locationsDB))
	for i := range locationsDB {
		locations = append(locations, ToDomain(&locationsDB[i]))
	}

	return locations, nil
}
