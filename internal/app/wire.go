//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"donations/internal/gateway/kafka/statusevents"
	assign_post "donations/internal/handlers/rest/assign_post"
	courier_get "donations/internal/handlers/rest/courier_get"
	courier_location_put "donations/internal/handlers/rest/courier_location_put"
	couriers_get "donations/internal/handlers/rest/couriers_get"
	donation_get "donations/internal/handlers/rest/donation_get"
	donation_post "donations/internal/handlers/rest/donation_post"
	donation_put "donations/internal/handlers/rest/donation_put"
	donation_transition_post "donations/internal/handlers/rest/donation_transition_post"
	suggest_get "donations/internal/handlers/rest/suggest_get"
	"donations/internal/handlers/tasks/status_metrics"
	"donations/internal/pkg/config"
	"donations/internal/pkg/factory/drop_point"
	"donations/internal/pkg/kafka"

	courierRepo "donations/internal/repository/courier"
	donationRepo "donations/internal/repository/donation"
	courierService "donations/internal/service/courier"
	dispatchService "donations/internal/service/dispatch"
	donationService "donations/internal/service/donation"

	"donations/pkg/background"
	"donations/pkg/logger"
	"donations/pkg/querier"
	"donations/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StatusMetricsInterval time.Duration
)

type Application struct {
	ServiceDonation   ServiceDonation
	ServiceDispatch   ServiceDispatch
	ServiceCourier    ServiceCourier
	BackgroundWorkers *background.Worker
}

type ServiceDonation interface {
	donation_post.Service
	donation_get.Service
	donation_put.Service
	donation_transition_post.Service
}

type ServiceDispatch interface {
	assign_post.Service
	suggest_get.Service
}

type ServiceCourier interface {
	courier_get.Service
	couriers_get.Service
	courier_location_put.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatusMetricsInterval,

		provideDonationRepository,
		provideCourierRepository,

		provideDropPointPicker,
		provideStatusEventGateway,

		provideServiceDonation,
		provideServiceDispatch,
		provideServiceCourier,

		provideStatusMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDonation), new(*donationService.Donation)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),

		wire.Bind(new(donationService.Repository), new(*donationRepo.Repository)),
		wire.Bind(new(donationService.CourierDirectory), new(*courierService.Courier)),
		wire.Bind(new(donationService.DropPointPicker), new(*drop_point.RandomPicker)),
		wire.Bind(new(donationService.EventSink), new(*statusevents.StatusEventGateway)),
		wire.Bind(new(donationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatchService.DonationProvider), new(*donationService.Donation)),
		wire.Bind(new(dispatchService.StateMachine), new(*donationService.Donation)),
		wire.Bind(new(dispatchService.CourierDirectory), new(*courierService.Courier)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),

		wire.Bind(new(status_metrics.Service), new(*donationService.Donation)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDonationRepository(querier *querier.Querier) *donationRepo.Repository {
	return donationRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideDropPointPicker(cfg *config.Config) *drop_point.RandomPicker {
	return drop_point.New(cfg.Dispatch.DropPoints)
}

func provideStatusEventGateway(
	log logger.Logger,
	producer *kafka.Producer,
	cfg *config.Config,
) *statusevents.StatusEventGateway {
	return statusevents.New(log, producer, cfg.Kafka.StatusTopic)
}

func provideServiceDonation(
	repository donationService.Repository,
	couriers donationService.CourierDirectory,
	dropPicker donationService.DropPointPicker,
	events donationService.EventSink,
	txManager donationService.TxManager,
) *donationService.Donation {
	return donationService.New(repository, couriers, dropPicker, events, txManager)
}

func provideServiceDispatch(
	donations dispatchService.DonationProvider,
	stateMachine dispatchService.StateMachine,
	couriers dispatchService.CourierDirectory,
	cfg *config.Config,
) *dispatchService.Dispatch {
	return dispatchService.New(donations, stateMachine, couriers, cfg.Dispatch.SuggestLimit)
}

func provideServiceCourier(repository courierService.Repository) *courierService.Courier {
	return courierService.New(repository)
}

func provideStatusMetricsInterval(cfg *config.Config) StatusMetricsInterval {
	return StatusMetricsInterval(cfg.Tasks.StatusMetricsInterval)
}

func provideStatusMetricsTask(
	service status_metrics.Service,
	interval StatusMetricsInterval,
) *status_metrics.StatusMetrics {
	return status_metrics.NewStatusMetrics(service, time.Duration(interval))
}

func provideTaskList(
	statusMetricsTask *status_metrics.StatusMetrics,
) []background.Task {
	return []background.Task{
		statusMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
