package handling

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
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

func (r *Repository) History(ctx context.Context, id entities.TrackingID) (entities.HandlingHistory, error) {
	query, args, err := qb.
		Select("id", "tracking_id", "type", "location", "voyage_number", "completion_time", "registration_time").
		From("handling_events").
		Where(sq.Eq{"tracking_id": id.String()}).
		OrderBy("completion_time", "id").
		ToSql()
	if err != nil {
		return entities.HandlingHistory{}, fmt.Errorf("unexpected handling repository history error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return entities.HandlingHistory{}, fmt.Errorf("unexpected handling repository history error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.HandlingEvent, 0, 8)
	for rows.Next() {
		var e HandlingEventDB
		err := rows.Scan(
			&e.ID,
			&e.TrackingID,
			&e.Type,
			&e.Location,
			&e.VoyageNumber,
			&e.CompletionTime,
			&e.RegistrationTime,
		)
		if err != nil {
			return entities.HandlingHistory{}, fmt.Errorf("unexpected handling repository history error: %w", err)
		}
		events = append(events, ToDomain(&e))
	}

	if err := rows.Err(); err != nil {
		return entities.HandlingHistory{}, fmt.Errorf("unexpected handling repository history error: %w", err)
	}

	return entities.NewHandlingHistory(events...), nil
}

// Append возвращает false, если такое событие уже записано. Дубли отсекает
// уникальный индекс (tracking_id, type, location, voyage_number, completion_time).
func (r *Repository) Append(ctx context.Context, event entities.HandlingEvent) (bool, error) {
	eventDB := FromDomain(event)

	query := `INSERT INTO handling_events (tracking_id, type, location, voyage_number, completion_time, registration_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ON CONSTRAINT handling_events_unique DO NOTHING`

	result, err := r.querier.Exec(
		ctx,
		query,
		eventDB.TrackingID,
		eventDB.Type,
		eventDB.Location,
		eventDB.VoyageNumber,
		eventDB.CompletionTime,
		eventDB.RegistrationTime,
	)
	if err != nil {
		// сервис проверяет ссылки до вставки, ключи ловят гонку с удалением
		if constraint, ok := repository.ViolatedConstraint(err, repository.PgErrForeignKeyViolation); ok {
			switch constraint {
			case "handling_events_tracking_id_fkey":
				return false, fmt.Errorf("%w: %s", entities.ErrUnknownCargo, event.TrackingID)
			case "handling_events_location_fkey":
				return false, fmt.Errorf("%w: %s", entities.ErrUnknownLocation, event.Location)
			}
		}
		return false, fmt.Errorf("unexpected handling repository append error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
