// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"donations/internal/gateway/kafka/statusevents"
	"donations/internal/handlers/rest/assign_post"
	"donations/internal/handlers/rest/courier_get"
	"donations/internal/handlers/rest/courier_location_put"
	"donations/internal/handlers/rest/couriers_get"
	"donations/internal/handlers/rest/donation_get"
	"donations/internal/handlers/rest/donation_post"
	"donations/internal/handlers/rest/donation_put"
	"donations/internal/handlers/rest/donation_transition_post"
	"donations/internal/handlers/rest/suggest_get"
	"donations/internal/handlers/tasks/status_metrics"
	"donations/internal/pkg/config"
	"donations/internal/pkg/factory/drop_point"
	"donations/internal/pkg/kafka"
	"donations/internal/repository/courier"
	"donations/internal/repository/donation"
	courier2 "donations/internal/service/courier"
	"donations/internal/service/dispatch"
	donation2 "donations/internal/service/donation"
	"donations/pkg/background"
	"donations/pkg/logger"
	"donations/pkg/querier"
	"donations/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, producer *kafka.Producer, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideDonationRepository(querier)
	courierRepository := provideCourierRepository(querier)
	courier := provideServiceCourier(courierRepository)
	randomPicker := provideDropPointPicker(cfg)
	statusEventGateway := provideStatusEventGateway(log, producer, cfg)
	manager := provideTxManager(pool)
	donation := provideServiceDonation(repository, courier, randomPicker, statusEventGateway, manager)
	dispatch := provideServiceDispatch(donation, donation, courier, cfg)
	statusMetricsInterval := provideStatusMetricsInterval(cfg)
	statusMetrics := provideStatusMetricsTask(donation, statusMetricsInterval)
	v := provideTaskList(statusMetrics)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceDonation:   donation,
		ServiceDispatch:   dispatch,
		ServiceCourier:    courier,
		BackgroundWorkers: worker,
	}
	return application, nil
}

// wire.go:

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

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDonationRepository(querier2 *querier.Querier) *donation.Repository {
	return donation.New(querier2)
}

func provideCourierRepository(querier2 *querier.Querier) *courier.Repository {
	return courier.New(querier2)
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
	repository donation2.Repository,
	couriers donation2.CourierDirectory,
	dropPicker donation2.DropPointPicker,
	events donation2.EventSink,
	txManager donation2.TxManager,
) *donation2.Donation {
	return donation2.New(repository, couriers, dropPicker, events, txManager)
}

func provideServiceDispatch(
	donations dispatch.DonationProvider,
	stateMachine dispatch.StateMachine,
	couriers dispatch.CourierDirectory,
	cfg *config.Config,
) *dispatch.Dispatch {
	return dispatch.New(donations, stateMachine, couriers, cfg.Dispatch.SuggestLimit)
}

func provideServiceCourier(repository courier2.Repository) *courier2.Courier {
	return courier2.New(repository)
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
