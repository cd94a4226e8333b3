// Package memory - хранилище в памяти процесса для локального запуска и сквозных тестов.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"tracking/internal/entities"
)

// Store хранит всё под одним RWMutex: чтение истории никогда не увидит
// наполовину дописанное событие.
type Store struct {
	mu        sync.RWMutex
	cargoes   map[entities.TrackingID]entities.Cargo
	histories map[entities.TrackingID]entities.HandlingHistory
	locations map[entities.UnLocode]entities.Location
	voyages   map[entities.VoyageNumber]entities.Voyage
}

func NewStore() *Store {
	return &Store{
		cargoes:   make(map[entities.TrackingID]entities.Cargo),
		histories: make(map[entities.TrackingID]entities.HandlingHistory),
		locations: make(map[entities.UnLocode]entities.Location),
		voyages:   make(map[entities.VoyageNumber]entities.Voyage),
	}
}

// NewSeededStore - хранилище с образцом справочных данных.
func NewSeededStore() *Store {
	s := NewStore()
	for _, l := range SampleLocations() {
		s.locations[l.Code] = l
	}
	for _, v := range SampleVoyages() {
		s.voyages[v.Number] = v
	}
	return s
}

type CargoRepository struct {
	store *Store
}

func NewCargoRepository(store *Store) *CargoRepository {
	return &CargoRepository{store: store}
}

func (r *CargoRepository) Create(_ context.Context, cargo entities.Cargo) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cargoes[cargo.TrackingID]; ok {
		return entities.ErrCargoAlreadyExists
	}
	r.store.cargoes[cargo.TrackingID] = cargo
	return nil
}

func (r *CargoRepository) Get(_ context.Context, id entities.TrackingID) (entities.Cargo, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cargo, ok := r.store.cargoes[id]
	if !ok {
		return entities.Cargo{}, entities.ErrCargoNotFound
	}
	return cargo, nil
}

// GetForUpdate в памяти не отличается от Get: запись сериализует блокировка по грузу.
func (r *CargoRepository) GetForUpdate(ctx context.Context, id entities.TrackingID) (entities.Cargo, error) {
	return r.Get(ctx, id)
}

func (r *CargoRepository) Update(_ context.Context, cargo entities.Cargo) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cargoes[cargo.TrackingID]; !ok {
		return entities.ErrCargoNotFound
	}
	r.store.cargoes[cargo.TrackingID] = cargo
	return nil
}

func (r *CargoRepository) ListTrackingIDs(_ context.Context) ([]entities.TrackingID, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := make([]entities.TrackingID, 0, len(r.store.cargoes))
	for id := range r.store.cargoes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *CargoRepository) ListDeadlineBefore(_ context.Context, deadline time.Time) ([]entities.Cargo, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cargoes := make([]entities.Cargo, 0)
	for _, cargo := range r.store.cargoes {
		if cargo.RouteSpecification.ArrivalDeadline.Before(deadline) {
			cargoes = append(cargoes, cargo)
		}
	}
	sort.Slice(cargoes, func(i, j int) bool { return cargoes[i].TrackingID < cargoes[j].TrackingID })
	return cargoes, nil
}

type HandlingRepository struct {
	store *Store
}

func NewHandlingRepository(store *Store) *HandlingRepository {
	return &HandlingRepository{store: store}
}

func (r *HandlingRepository) History(_ context.Context, id entities.TrackingID) (entities.HandlingHistory, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.histories[id], nil
}

func (r *HandlingRepository) Append(_ context.Context, event entities.HandlingEvent) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	history, added := r.store.histories[event.TrackingID].Append(event)
	if added {
		r.store.histories[event.TrackingID] = history
	}
	return added, nil
}

type LocationRepository struct {
	store *Store
}

func NewLocationRepository(store *Store) *LocationRepository {
	return &LocationRepository{store: store}
}

func (r *LocationRepository) Find(_ context.Context, code entities.UnLocode) (entities.Location, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	l, ok := r.store.locations[code]
	if !ok {
		return entities.Location{}, entities.ErrLocationNotFound
	}
	return l, nil
}

func (r *LocationRepository) List(_ context.Context) ([]entities.Location, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	locations := make([]entities.Location, 0, len(r.store.locations))
	for _, l := range r.store.locations {
		locations = append(locations, l)
	}
	sort.Slice(locations, func(i, j int) bool { return locations[i].Code < locations[j].Code })
	return locations, nil
}

type VoyageRepository struct {
	store *Store
}

func NewVoyageRepository(store *Store) *VoyageRepository {
	return &VoyageRepository{store: store}
}

func (r *VoyageRepository) Find(_ context.Context, number entities.VoyageNumber) (entities.Voyage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	v, ok := r.store.voyages[number]
	if !ok {
		return entities.Voyage{}, entities.ErrVoyageNotFound
	}
	return v, nil
}

func (r *VoyageRepository) List(_ context.Context) ([]entities.Voyage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	voyages := make([]entities.Voyage, 0, len(r.store.voyages))
	for _, v := range r.store.voyages {
		voyages = append(voyages, v)
	}
	sort.Slice(voyages, func(i, j int) bool { return voyages[i].Number < voyages[j].Number })
	return voyages, nil
}

// TxManager для хранилища в памяти: каждая операция Store атомарна сама по себе.
type TxManager struct{}

func NewTxManager() TxManager {
	return TxManager{}
}

func (TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (TxManager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
