package app

import (
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/qs-lzh/hotel-booking/config"
	"github.com/qs-lzh/hotel-booking/internal/cache"
	"github.com/qs-lzh/hotel-booking/internal/mq"
	"github.com/qs-lzh/hotel-booking/internal/repository"
	"github.com/qs-lzh/hotel-booking/internal/service/domain"
	"github.com/qs-lzh/hotel-booking/internal/service/workflow"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Cache  *cache.RedisCache
	Logger *zap.Logger
	MQConn *amqp.Connection

	BookingService domain.BookingService
	AuditService   domain.AuditService
	UserService    domain.UserService

	BookingWorkflow *workflow.BookingWorkflow
	AuditWorkflow   *workflow.AuditWorkflow
}

// New wires repositories, services and workflows. mqConn may be nil when the
// caller never calls Init, as the handler tests do.
func New(config *config.Config, db *gorm.DB, cache *cache.RedisCache, mqConn *amqp.Connection, publisher workflow.EventPublisher, logger *zap.Logger) *App {
	bookingRepo := repository.NewBookingRepoGorm(db)
	roomRepo := repository.NewRoomRepoGorm(db)
	enrollmentRepo := repository.NewEnrollmentRepoGorm(db)
	ticketRepo := repository.NewTicketRepoGorm(db)
	userRepo := repository.NewUserRepoGorm(db)
	sessionRepo := repository.NewSessionRepoGorm(db)
	bookingEventRepo := repository.NewBookingEventRepoGorm(db)

	bookingService := domain.NewBookingService(db, bookingRepo, roomRepo, enrollmentRepo, ticketRepo)
	auditService := domain.NewAuditService(bookingEventRepo)
	userService := domain.NewUserService(userRepo, sessionRepo, domain.UserServiceConfig{
		JWTSecret: config.JWTSecret,
		TokenTTL:  config.TokenTTL,
	})

	bookingWorkflow := workflow.NewBookingWorkflow(bookingService, cache, publisher, logger)
	auditWorkflow := workflow.NewAuditWorkflow(auditService, logger)

	return &App{
		Config:          config,
		DB:              db,
		Cache:           cache,
		Logger:          logger,
		MQConn:          mqConn,
		BookingService:  bookingService,
		AuditService:    auditService,
		UserService:     userService,
		BookingWorkflow: bookingWorkflow,
		AuditWorkflow:   auditWorkflow,
	}
}

func (app *App) Init() error {
	// init rabbit mq
	if err := mq.InitQueues(app.MQConn); err != nil {
		return err
	}

	if err := app.AuditWorkflow.Start(app.MQConn); err != nil {
		return err
	}

	app.Logger.Info("app initialized", zap.Duration("booking_cache_ttl", app.Config.BookingCacheTTL))
	return nil
}

func (app *App) Close() error {
	var errs []error
	if app.MQConn != nil {
		errs = append(errs, app.MQConn.Close())
	}
	if app.Cache != nil {
		errs = append(errs, app.Cache.Close())
	}
	sqlDB, err := app.DB.DB()
	if err != nil {
		errs = append(errs, err)
	} else {
		errs = append(errs, sqlDB.Close())
	}
	_ = app.Logger.Sync()
	return errors.Join(errs...)
}
