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

	createAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointments"
	getCalendarSummaryHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_calendar_summary"
	getConfigHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_config"
	getDayScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_day_schedule"
	getStylistsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_stylists"
	updateAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	salonService "github.com/m04kA/SMC-SalonService/internal/service/salon"
	createAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	getCalendarSummaryUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_calendar_summary"
	getDayScheduleUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_day_schedule"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Конфигурация салона: состав мастеров и сетка слотов
	salonSvc, err := salonService.NewService(cfg.Salon)
	if err != nil {
		log.Fatal("Failed to initialize salon config: %v", err)
	}
	log.Info("Salon config loaded: %d stylists, slots %s-%s every %d min",
		len(cfg.Salon.Stylists), cfg.Salon.OpenTime, cfg.Salon.CloseTime, cfg.Salon.SlotIntervalMinutes)

	// Интерфейс transaction manager для booking gate
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		salonSvc,
		txMgr,
		log,
	)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		appointmentRepository,
		salonSvc,
		log,
	)
	getCalendarSummaryUseCase := getCalendarSummaryUC.NewUseCase(
		appointmentRepository,
		salonSvc,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getCalendarSummary := getCalendarSummaryHandler.NewHandler(getCalendarSummaryUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	getStylists := getStylistsHandler.NewHandler(salonSvc, log)
	getConfig := getConfigHandler.NewHandler(salonSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Салон ---
	api.HandleFunc("/stylists", getStylists.Handle).Methods(http.MethodGet)
	api.HandleFunc("/config", getConfig.Handle).Methods(http.MethodGet)

	// --- Записи клиентов ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", updateAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Производные представления для календаря ---
	api.HandleFunc("/schedule", getDaySchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar-summary", getCalendarSummary.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
