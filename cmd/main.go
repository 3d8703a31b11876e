package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	closeReservationHandler "github.com/mobisfm/FM-BookingService/internal/api/handlers/close_reservation"
	createBookingHandler "github.com/mobisfm/FM-BookingService/internal/api/handlers/create_booking"
	createHolidayHandler "github.com/mobisfm/FM-BookingService/internal/api/handlers/create_holiday"
	deleteHolidayHandler "github.com/mobisfm/FM-BookingService/internal/api/handlers/delete_holiday"
	getAvailableSlotsHandler "github.com/mobisfm/FM-BookingService/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/mobisfm/FM-BookingService/internal/api/handlers/get_reservation"
	getScheduleConfigHandler "github.com/mobisfm/FM-BookingService/internal/api/handlers/get_schedule_config"
	getUserReservationsHandler "github.com/mobisfm/FM-BookingService/internal/api/handlers/get_user_reservations"
	transitionReservationHandler "github.com/mobisfm/FM-BookingService/internal/api/handlers/transition_reservation"
	updateBookingHandler "github.com/mobisfm/FM-BookingService/internal/api/handlers/update_booking"
	updateScheduleConfigHandler "github.com/mobisfm/FM-BookingService/internal/api/handlers/update_schedule_config"
	"github.com/mobisfm/FM-BookingService/internal/api/middleware"
	"github.com/mobisfm/FM-BookingService/internal/config"
	reservationRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/reservation"
	resourceRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/resource"
	scheduleRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/schedule"
	reservationsService "github.com/mobisfm/FM-BookingService/internal/service/reservations"
	scheduleService "github.com/mobisfm/FM-BookingService/internal/service/schedule"
	closeReservationUC "github.com/mobisfm/FM-BookingService/internal/usecase/close_reservation"
	createBookingUC "github.com/mobisfm/FM-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/mobisfm/FM-BookingService/internal/usecase/get_available_slots"
	updateBookingUC "github.com/mobisfm/FM-BookingService/internal/usecase/update_booking"
	"github.com/mobisfm/FM-BookingService/pkg/dbmetrics"
	"github.com/mobisfm/FM-BookingService/pkg/logger"
	"github.com/mobisfm/FM-BookingService/pkg/metrics"
	"github.com/mobisfm/FM-BookingService/pkg/simpletxmanager"
	"github.com/mobisfm/FM-BookingService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting FM-BookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Transaction manager surface shared by the use cases and services
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		reservationRepository *reservationRepo.Repository
		resourceRepository    *resourceRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		resourceRepository,
		txMgr,
		log,
	)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		scheduleRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		scheduleRepository,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		scheduleRepository,
		txMgr,
		log,
	)
	closeReservationUseCase := closeReservationUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		txMgr,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	closeReservation := closeReservationHandler.NewHandler(closeReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	transitionReservation := transitionReservationHandler.NewHandler(reservationsSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(scheduleSvc, log)
	createHoliday := createHolidayHandler.NewHandler(scheduleSvc, log)
	deleteHoliday := deleteHolidayHandler.NewHandler(scheduleSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/resources/{resourceType}/{resourceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/{resourceType}", getScheduleConfig.Handle).Methods(http.MethodGet)

	// Protected routes, require the X-User-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/reservations", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{reservationId}/status", transitionReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/close", closeReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Schedule administration
	protected.HandleFunc("/schedule/{resourceType}", updateScheduleConfig.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/holidays", createHoliday.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/holidays/{holidayId}", deleteHoliday.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
