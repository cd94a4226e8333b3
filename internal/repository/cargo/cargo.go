package cargo

import (
	"context"
	"errors"
	"fmt"
	"time"

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

func (r *Repository) Create(ctx context.Context, cargo entities.Cargo) error {
	cargoDB, legsDB := FromDomain(cargo)

	query := `INSERT INTO cargoes (tracking_id, origin, destination, arrival_deadline, booked_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(
		ctx,
		query,
		cargoDB.TrackingID,
		cargoDB.Origin,
		cargoDB.Destination,
		cargoDB.ArrivalDeadline,
		cargoDB.BookedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return entities.ErrCargoAlreadyExists
		}
		return fmt.Errorf("unexpected cargo repository create error: %w", err)
	}

	if err := r.insertLegs(ctx, legsDB); err != nil {
		return fmt.Errorf("unexpected cargo repository create error: %w", err)
	}

	return nil
}

func (r *Repository) Get(ctx context.Context, id entities.TrackingID) (entities.Cargo, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate блокирует строку груза до конца транзакции: запись событий и
// смена маршрута одного груза сериализуются и между экземплярами сервиса.
func (r *Repository) GetForUpdate(ctx context.Context, id entities.TrackingID) (entities.Cargo, error) {
	return r.get(ctx, id, true)
}

func (r *Repository) Update(ctx context.Context, cargo entities.Cargo) error {
	cargoDB, legsDB := FromDomain(cargo)

	query, args, err := qb.
		Update("cargoes").
		Set("origin", cargoDB.Origin).
		Set("destination", cargoDB.Destination).
		Set("arrival_deadline", cargoDB.ArrivalDeadline).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"tracking_id": cargoDB.TrackingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected cargo repository update error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected cargo repository update error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrCargoNotFound
	}

	// маршрут заменяется целиком
	_, err = r.querier.Exec(ctx, `DELETE FROM legs WHERE tracking_id = $1`, cargoDB.TrackingID)
	if err != nil {
		return fmt.Errorf("unexpected cargo repository update error: %w", err)
	}

	if err := r.insertLegs(ctx, legsDB); err != nil {
		return fmt.Errorf("unexpected cargo repository update error: %w", err)
	}

	return nil
}

func (r *Repository) ListTrackingIDs(ctx context.Context) ([]entities.TrackingID, error) {
	rows, err := r.querier.Query(ctx, `SELECT tracking_id FROM cargoes ORDER BY tracking_id`)
	if err != nil {
		return nil, fmt.Errorf("unexpected cargo repository list error: %w", err)
	}
	defer rows.Close()

	ids := make([]entities.TrackingID, 0, 8)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected cargo repository list error: %w", err)
		}
		ids = append(ids, entities.TrackingID(id))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected cargo repository list error: %w", err)
	}

	return ids, nil
}

func (r *Repository) ListDeadlineBefore(ctx context.Context, deadline time.Time) ([]entities.Cargo, error) {
	query, args, err := qb.
		Select("tracking_id").
		From("cargoes").
		Where(sq.Lt{"arrival_deadline": deadline}).
		OrderBy("tracking_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected cargo repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected cargo repository list error: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("unexpected cargo repository list error: %w", err)
	}

	cargoes := make([]entities.Cargo, 0, len(ids))
	for _, id := range ids {
		cargo, err := r.Get(ctx, entities.TrackingID(id))
		if err != nil {
			return nil, err
		}
		cargoes = append(cargoes, cargo)
	}

	return cargoes, nil
}

func (r *Repository) get(ctx context.Context, id entities.TrackingID, forUpdate bool) (entities.Cargo, error) {
	builder := qb.
		Select("tracking_id", "origin", "destination", "arrival_deadline", "booked_at").
		From("cargoes").
		Where(sq.Eq{"tracking_id": id.String()})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return entities.Cargo{}, fmt.Errorf("unexpected cargo repository get error: %w", err)
	}

	var cargoDB CargoDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&cargoDB.TrackingID,
			&cargoDB.Origin,
			&cargoDB.Destination,
			&cargoDB.ArrivalDeadline,
			&cargoDB.BookedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Cargo{}, entities.ErrCargoNotFound
		}
		return entities.Cargo{}, fmt.Errorf("unexpected cargo repository get error: %w", err)
	}

	legs, err := r.legs(ctx, cargoDB.TrackingID)
	if err != nil {
		return entities.Cargo{}, err
	}

	return ToDomain(&cargoDB, legs)
}

func (r *Repository) legs(ctx context.Context, trackingID string) ([]LegDB, error) {
	query := `SELECT tracking_id, seq, voyage_number, load_location, unload_location, load_time, unload_time
		FROM legs
		WHERE tracking_id = $1
		ORDER BY seq`

	rows, err := r.querier.Query(ctx, query, trackingID)
	if err != nil {
		return nil, fmt.Errorf("unexpected cargo repository legs error: %w", err)
	}
	defer rows.Close()

	legs := make([]LegDB, 0, 4)
	for rows.Next() {
		var l LegDB
		err := rows.Scan(
			&l.TrackingID,
			&l.Seq,
			&l.VoyageNumber,
			&l.LoadLocation,
			&l.UnloadLocation,
			&l.LoadTime,
			&l.UnloadTime,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected cargo repository legs error: %w", err)
		}
		legs = append(legs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected cargo repository legs error: %w", err)
	}

	return legs, nil
}

// insertLegs пишет все ноги одним батчем.
func (r *Repository) insertLegs(ctx context.Context, legs []LegDB) error {
	if len(legs) == 0 {
		return nil
	}

	query := `INSERT INTO legs (tracking_id, seq, voyage_number, load_location, unload_location, load_time, unload_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	batch := &pgx.Batch{}
	for _, l := range legs {
		batch.Queue(query, l.TrackingID, l.Seq, l.VoyageNumber, l.LoadLocation, l.UnloadLocation, l.LoadTime, l.UnloadTime)
	}

	results := r.querier.SendBatch(ctx, batch)
	for range legs {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("insert leg: %w", err)
		}
	}

	return results.Close()
}
