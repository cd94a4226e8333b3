//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"tracking/internal/entities"
	routingGateway "tracking/internal/gateway/grpc/routing"
	cargoHandledGateway "tracking/internal/gateway/kafka/cargo_handled"
	kafkaNotification "tracking/internal/gateway/kafka/notification"
	logNotification "tracking/internal/gateway/log/notification"
	"tracking/internal/handlers/rest/cargo_get"
	"tracking/internal/handlers/rest/cargo_itinerary_put"
	"tracking/internal/handlers/rest/cargo_post"
	"tracking/internal/handlers/rest/cargo_route_put"
	"tracking/internal/handlers/rest/cargo_routes_get"
	"tracking/internal/handlers/rest/cargos_get"
	"tracking/internal/handlers/rest/handling_event_post"
	"tracking/internal/handlers/rest/handling_events_get"
	"tracking/internal/handlers/tasks/overdue_cargo"
	"tracking/internal/pkg/config"
	"tracking/internal/pkg/pathfinder"

	cargoRepo "tracking/internal/repository/cargo"
	handlingRepo "tracking/internal/repository/handling"
	locationRepo "tracking/internal/repository/location"
	"tracking/internal/repository/memory"
	voyageRepo "tracking/internal/repository/voyage"
	bookingService "tracking/internal/service/booking"
	handlingService "tracking/internal/service/handling"
	inspectionService "tracking/internal/service/inspection"

	"tracking/pkg/background"
	"tracking/pkg/keymutex"
	"tracking/pkg/logger"
	"tracking/pkg/querier"
	"tracking/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

type (
	OverdueScanInterval time.Duration
)

type Application struct {
	ServiceBooking    ServiceBooking
	ServiceHandling   ServiceHandling
	BackgroundWorkers *background.Worker
}

type ServiceBooking interface {
	cargo_post.Service
	cargos_get.Service
	cargo_get.Service
	cargo_routes_get.Service
	cargo_itinerary_put.Service
	cargo_route_put.Service
	overdue_cargo.Service
	GetDelivery(ctx context.Context, id entities.TrackingID) (entities.Delivery, error)
}

type ServiceHandling interface {
	handling_event_post.Service
	handling_events_get.Service
}

var commonSet = wire.NewSet(
	keymutex.New,
	bookingService.NewUUIDGenerator,
	provideServiceBooking,
	provideServiceHandling,
	provideServiceInspection,
	provideRoutingService,
	provideInspectionTrigger,
	provideNotifier,

	wire.Bind(new(ServiceBooking), new(*bookingService.Booking)),
	wire.Bind(new(ServiceHandling), new(*handlingService.Handling)),
	wire.Bind(new(bookingService.IDGenerator), new(bookingService.UUIDGenerator)),
	wire.Bind(new(bookingService.Locker), new(*keymutex.KeyMutex)),
	wire.Bind(new(handlingService.Locker), new(*keymutex.KeyMutex)),
)

var postgresSet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideCargoRepository,
	provideHandlingRepository,
	provideLocationRepository,
	provideVoyageRepository,

	wire.Bind(new(bookingService.Repository), new(*cargoRepo.Repository)),
	wire.Bind(new(bookingService.HandlingRepository), new(*handlingRepo.Repository)),
	wire.Bind(new(bookingService.LocationRepository), new(*locationRepo.Repository)),
	wire.Bind(new(bookingService.VoyageRepository), new(*voyageRepo.Repository)),
	wire.Bind(new(handlingService.Repository), new(*handlingRepo.Repository)),
	wire.Bind(new(handlingService.CargoRepository), new(*cargoRepo.Repository)),
	wire.Bind(new(handlingService.LocationRepository), new(*locationRepo.Repository)),
	wire.Bind(new(handlingService.VoyageRepository), new(*voyageRepo.Repository)),
	wire.Bind(new(inspectionService.CargoRepository), new(*cargoRepo.Repository)),
	wire.Bind(new(inspectionService.HandlingRepository), new(*handlingRepo.Repository)),
	wire.Bind(new(pathfinder.VoyageLister), new(*voyageRepo.Repository)),

	wire.Bind(new(bookingService.TxManager), new(*tx.Manager)),
	wire.Bind(new(handlingService.TxManager), new(*tx.Manager)),
	wire.Bind(new(inspectionService.TxManager), new(*tx.Manager)),
)

var memorySet = wire.NewSet(
	memory.NewSeededStore,
	memory.NewTxManager,
	memory.NewCargoRepository,
	memory.NewHandlingRepository,
	memory.NewLocationRepository,
	memory.NewVoyageRepository,

	wire.Bind(new(bookingService.Repository), new(*memory.CargoRepository)),
	wire.Bind(new(bookingService.HandlingRepository), new(*memory.HandlingRepository)),
	wire.Bind(new(bookingService.LocationRepository), new(*memory.LocationRepository)),
	wire.Bind(new(bookingService.VoyageRepository), new(*memory.VoyageRepository)),
	wire.Bind(new(handlingService.Repository), new(*memory.HandlingRepository)),
	wire.Bind(new(handlingService.CargoRepository), new(*memory.CargoRepository)),
	wire.Bind(new(handlingService.LocationRepository), new(*memory.LocationRepository)),
	wire.Bind(new(handlingService.VoyageRepository), new(*memory.VoyageRepository)),
	wire.Bind(new(inspectionService.CargoRepository), new(*memory.CargoRepository)),
	wire.Bind(new(inspectionService.HandlingRepository), new(*memory.HandlingRepository)),
	wire.Bind(new(pathfinder.VoyageLister), new(*memory.VoyageRepository)),

	wire.Bind(new(bookingService.TxManager), new(memory.TxManager)),
	wire.Bind(new(handlingService.TxManager), new(memory.TxManager)),
	wire.Bind(new(inspectionService.TxManager), new(memory.TxManager)),
)

var tasksSet = wire.NewSet(
	provideOverdueScanInterval,
	provideOverdueCargoTask,
	provideTaskList,
	provideBackgroundWorkers,

	wire.Bind(new(overdue_cargo.Service), new(*bookingService.Booking)),
)

// InitializeApplication для HTTP сервиса на postgres (cmd/service).
// conn == nil - маршруты ищет локальный pathfinder, producer == nil - Kafka не используется.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		postgresSet,
		commonSet,
		tasksSet,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}

// InitializeInMemoryApplication для HTTP сервиса без базы (STORAGE_DRIVER=memory).
// Справочные данные берутся из memory.NewSeededStore.
func InitializeInMemoryApplication(
	ctx context.Context,
	log logger.Logger,
	conn *grpc.ClientConn,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		memorySet,
		commonSet,
		tasksSet,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}

type HandlingWorkerApp struct {
	HandlingService *handlingService.Handling
}

// InitializeHandlingWorkerApp для Kafka воркера отчётов об обработке (cmd/worker-handling-report)
func InitializeHandlingWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*HandlingWorkerApp, error) {
	wire.Build(
		postgresSet,
		keymutex.New,
		provideServiceHandling,
		provideServiceInspection,
		provideInspectionTrigger,
		provideNotifier,

		wire.Bind(new(handlingService.Locker), new(*keymutex.KeyMutex)),

		wire.Struct(new(HandlingWorkerApp), "*"),
	)
	return nil, nil
}

type InspectionWorkerApp struct {
	InspectionService *inspectionService.Inspection
}

// InitializeInspectionWorkerApp для Kafka воркера инспекции (cmd/worker-cargo-inspection)
func InitializeInspectionWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*InspectionWorkerApp, error) {
	wire.Build(
		postgresSet,
		provideServiceInspection,
		provideNotifier,

		wire.Struct(new(InspectionWorkerApp), "*"),
	)
	return nil, nil
}

type RoutingApp struct {
	Pathfinder *pathfinder.Pathfinder
}

// InitializeRoutingApp для сервиса маршрутов на postgres (cmd/routing-service)
func InitializeRoutingApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*RoutingApp, error) {
	wire.Build(
		provideQuerier,
		provideVoyageRepository,
		pathfinder.New,

		wire.Bind(new(pathfinder.VoyageLister), new(*voyageRepo.Repository)),

		wire.Struct(new(RoutingApp), "*"),
	)
	return nil, nil
}

// InitializeInMemoryRoutingApp для сервиса маршрутов на расписаниях из memory.NewSeededStore.
func InitializeInMemoryRoutingApp(
	ctx context.Context,
	log logger.Logger,
) (*RoutingApp, error) {
	wire.Build(
		memory.NewSeededStore,
		memory.NewVoyageRepository,
		pathfinder.New,

		wire.Bind(new(pathfinder.VoyageLister), new(*memory.VoyageRepository)),

		wire.Struct(new(RoutingApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCargoRepository(querier *querier.Querier) *cargoRepo.Repository {
	return cargoRepo.New(querier)
}

func provideHandlingRepository(querier *querier.Querier) *handlingRepo.Repository {
	return handlingRepo.New(querier)
}

func provideLocationRepository(querier *querier.Querier) *locationRepo.Repository {
	return locationRepo.New(querier)
}

func provideVoyageRepository(querier *querier.Querier) *voyageRepo.Repository {
	return voyageRepo.New(querier)
}

// provideRoutingService выбирает внешний сервис маршрутов, если к нему есть
// соединение, иначе локальный поиск по расписаниям рейсов.
func provideRoutingService(
	log logger.Logger,
	conn *grpc.ClientConn,
	voyages pathfinder.VoyageLister,
) bookingService.RoutingService {
	if conn != nil {
		return routingGateway.New(conn)
	}
	log.Info("routing service is not configured, using local pathfinder")
	return pathfinder.New(voyages)
}

func provideServiceBooking(
	repository bookingService.Repository,
	handlingRepository bookingService.HandlingRepository,
	locations bookingService.LocationRepository,
	voyages bookingService.VoyageRepository,
	routing bookingService.RoutingService,
	txManager bookingService.TxManager,
	locker bookingService.Locker,
	ids bookingService.IDGenerator,
) *bookingService.Booking {
	return bookingService.New(
		repository,
		handlingRepository,
		locations,
		voyages,
		routing,
		txManager,
		locker,
		ids,
	)
}

func provideServiceInspection(
	cargoes inspectionService.CargoRepository,
	handling inspectionService.HandlingRepository,
	notifier inspectionService.Notifier,
	txManager inspectionService.TxManager,
) *inspectionService.Inspection {
	return inspectionService.New(cargoes, handling, notifier, txManager)
}

// provideInspectionTrigger: sync - инспекция в том же запросе,
// kafka - событие уходит в топик и его разбирает cmd/worker-cargo-inspection.
func provideInspectionTrigger(
	cfg *config.Config,
	inspection *inspectionService.Inspection,
	producer sarama.SyncProducer,
) handlingService.InspectionTrigger {
	if cfg.Inspection.Mode == config.InspectionModeKafka {
		return cargoHandledGateway.New(producer, cfg.Kafka.Topics.CargoHandled)
	}
	return inspection
}

func provideNotifier(
	log logger.Logger,
	cfg *config.Config,
	producer sarama.SyncProducer,
) inspectionService.Notifier {
	if cfg.Notification.Mode == config.NotificationModeKafka {
		return kafkaNotification.New(producer, cfg.Kafka.Topics.Notifications)
	}
	return logNotification.New(log.With(logger.NewField("component", "notifier")))
}

func provideServiceHandling(
	log logger.Logger,
	repository handlingService.Repository,
	cargoes handlingService.CargoRepository,
	locations handlingService.LocationRepository,
	voyages handlingService.VoyageRepository,
	trigger handlingService.InspectionTrigger,
	txManager handlingService.TxManager,
	locker handlingService.Locker,
) *handlingService.Handling {
	return handlingService.New(
		log,
		repository,
		cargoes,
		locations,
		voyages,
		trigger,
		txManager,
		locker,
	)
}

func provideOverdueScanInterval(cfg *config.Config) OverdueScanInterval {
	return OverdueScanInterval(cfg.Tasks.OverdueCargoScanInterval)
}

func provideOverdueCargoTask(
	log logger.Logger,
	bookingService overdue_cargo.Service,
	interval OverdueScanInterval,
) *overdue_cargo.OverdueCargo {
	return overdue_cargo.NewOverdueCargo(log, bookingService, time.Duration(interval))
}

func provideTaskList(
	overdueCargoTask *overdue_cargo.OverdueCargo,
) []background.Task {
	return []background.Task{
		overdueCargoTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
