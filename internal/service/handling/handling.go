package handling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type Handling struct {
	log        serviceLogger
	repository Repository
	cargoes    CargoRepository
	locations  LocationRepository
	voyages    VoyageRepository
	trigger    InspectionTrigger
	txManager  TxManager
	locker     Locker
}

func New(
	log serviceLogger,
	repository Repository,
	cargoes CargoRepository,
	locations LocationRepository,
	voyages VoyageRepository,
	trigger InspectionTrigger,
	txManager TxManager,
	locker Locker,
) *Handling {
	return &Handling{
		log:        log,
		repository: repository,
		cargoes:    cargoes,
		locations:  locations,
		voyages:    voyages,
		trigger:    trigger,
		txManager:  txManager,
		locker:     locker,
	}
}

// RecordEvent проверяет отчёт и дописывает событие в историю груза.
// Повторный отчёт о том же событии - успех без изменений.
// Соответствие маршруту не проверяется: расхождение делает груз misdirected.
func (h *Handling) RecordEvent(ctx context.Context, report entities.HandlingReport) (entities.HandlingEvent, error) {
	event, err := entities.NewHandlingEvent(report, time.Now().UTC())
	if err != nil {
		return entities.HandlingEvent{}, err
	}

	if err := h.checkReferences(ctx, event); err != nil {
		return entities.HandlingEvent{}, err
	}

	stored, appended, err := h.append(ctx, event)
	if err != nil {
		return entities.HandlingEvent{}, err
	}

	if !appended {
		h.log.Info("duplicate handling event ignored",
			logger.NewField("tracking_id", event.TrackingID.String()),
			logger.NewField("type", event.Type.String()),
			logger.NewField("location", event.Location.String()),
		)
		return stored, nil
	}

	recordedEvents.WithLabelValues(stored.Type.String()).Inc()

	// событие уже записано, ошибка инспекции его не откатывает
	if err := h.trigger.CargoHandled(ctx, stored); err != nil {
		h.log.Error("cargo inspection failed",
			logger.NewField("tracking_id", stored.TrackingID.String()),
			logger.NewField("type", stored.Type.String()),
			logger.NewField("error", err),
		)
	}

	return stored, nil
}

// GetHistory возвращает историю обработки груза в хронологическом порядке.
func (h *Handling) GetHistory(ctx context.Context, id entities.TrackingID) (entities.HandlingHistory, error) {
	if _, err := h.cargoes.Get(ctx, id); err != nil {
		return entities.HandlingHistory{}, unknownCargo(err, id)
	}

	history, err := h.repository.History(ctx, id)
	if err != nil {
		return entities.HandlingHistory{}, fmt.Errorf("get handling history: %w", err)
	}
	return history, nil
}

func (h *Handling) checkReferences(ctx context.Context, event entities.HandlingEvent) error {
	if _, err := h.locations.Find(ctx, event.Location); err != nil {
		if errors.Is(err, entities.ErrLocationNotFound) {
			return fmt.Errorf("%w: %w: %s", entities.ErrInvalidEvent, entities.ErrUnknownLocation, event.Location)
		}
		return fmt.Errorf("find location: %w", err)
	}

	if event.VoyageNumber.IsEmpty() {
		return nil
	}

	voyage, err := h.voyages.Find(ctx, event.VoyageNumber)
	if err != nil {
		if errors.Is(err, entities.ErrVoyageNotFound) {
			return fmt.Errorf("%w: %w: %s", entities.ErrInvalidEvent, entities.ErrUnknownVoyage, event.VoyageNumber)
		}
		return fmt.Errorf("find voyage: %w", err)
	}

	if !voyage.CallsAt(event.Location) {
		return fmt.Errorf("%w: voyage %s does not call at %s", entities.ErrInvalidEvent, event.VoyageNumber, event.Location)
	}

	return nil
}

// append сравнивает с историей и дописывает под блокировкой груза,
// чтобы проверка на повтор и запись не перемежались с другими записями.
func (h *Handling) append(ctx context.Context, event entities.HandlingEvent) (entities.HandlingEvent, bool, error) {
	unlock := h.locker.Lock(event.TrackingID.String())
	defer unlock()

	// время регистрации берётся под блокировкой: его порядок совпадает с
	// порядком записи, инспекция по нему восстанавливает историю на момент события.
	// Точность как у timestamptz в postgres.
	event.RegistrationTime = time.Now().UTC().Truncate(time.Microsecond)

	stored := event
	appended := false

	err := h.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := h.cargoes.GetForUpdate(ctx, event.TrackingID); err != nil {
			return unknownCargo(err, event.TrackingID)
		}

		history, err := h.repository.History(ctx, event.TrackingID)
		if err != nil {
			return fmt.Errorf("get handling history: %w", err)
		}

		if existing, ok := history.Find(event); ok {
			stored = existing
			return nil
		}

		appended, err = h.repository.Append(ctx, event)
		if err != nil {
			return fmt.Errorf("append handling event: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.HandlingEvent{}, false, err
	}

	return stored, appended, nil
}

func unknownCargo(err error, id entities.TrackingID) error {
	if errors.Is(err, entities.ErrCargoNotFound) {
		return fmt.Errorf("%w: %s", entities.ErrUnknownCargo, id)
	}
	return fmt.Errorf("get cargo: %w", err)
}
