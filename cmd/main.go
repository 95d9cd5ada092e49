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

	blockDayHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/block_day"
	cancelAppointmentHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/get_availability"
	getBusinessAppointmentsHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/get_business_appointments"
	getMeHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/get_me"
	getOccupiedDatesHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/get_occupied_dates"
	getScheduleConfigHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/get_schedule_config"
	getUserAppointmentsHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/get_user_appointments"
	loginUserHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/login_user"
	registerUserHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/register_user"
	unblockDayHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/unblock_day"
	updateScheduleConfigHandler "github.com/alexisrr11/turnos-service/internal/api/handlers/update_schedule_config"
	"github.com/alexisrr11/turnos-service/internal/api/middleware"
	"github.com/alexisrr11/turnos-service/internal/config"
	appointmentRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/appointment"
	businessRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/business"
	dayoverrideRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/dayoverride"
	scheduleRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/schedule"
	userRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/user"
	holidayClient "github.com/alexisrr11/turnos-service/internal/integrations/holidayapi"
	cleanupJob "github.com/alexisrr11/turnos-service/internal/jobs/cleanup"
	appointmentsService "github.com/alexisrr11/turnos-service/internal/service/appointments"
	scheduleService "github.com/alexisrr11/turnos-service/internal/service/schedule"
	usersService "github.com/alexisrr11/turnos-service/internal/service/users"
	createAppointmentUC "github.com/alexisrr11/turnos-service/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/alexisrr11/turnos-service/internal/usecase/get_availability"
	getOccupiedDatesUC "github.com/alexisrr11/turnos-service/internal/usecase/get_occupied_dates"
	"github.com/alexisrr11/turnos-service/pkg/authtoken"
	"github.com/alexisrr11/turnos-service/pkg/dbmetrics"
	"github.com/alexisrr11/turnos-service/pkg/logger"
	"github.com/alexisrr11/turnos-service/pkg/metrics"
	"github.com/alexisrr11/turnos-service/pkg/simpletxmanager"
	"github.com/alexisrr11/turnos-service/pkg/txmanager"
)

// realTime провайдер времени для сервисов
type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }

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

	log.Info("Starting turnos-service...")
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

	// Клиент календаря праздников
	holidays := holidayClient.NewClient(
		cfg.Holidays.BaseURL,
		cfg.Holidays.CountryCode,
		time.Duration(cfg.Holidays.Timeout)*time.Second,
		log,
	)
	log.Info("Holiday calendar client initialized (url=%s, country=%s, timeout=%ds)",
		cfg.Holidays.BaseURL, cfg.Holidays.CountryCode, cfg.Holidays.Timeout)

	// Менеджер токенов
	tokenManager := authtoken.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	// Репозитории и транзакционный менеджер (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		businessRepository    *businessRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		dayoverrideRepository *dayoverrideRepo.Repository
		userRepository        *userRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		businessRepository = businessRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		dayoverrideRepository = dayoverrideRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		businessRepository = businessRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		dayoverrideRepository = dayoverrideRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Сервисы
	scheduleSvc := scheduleService.New(scheduleRepository, dayoverrideRepository, log)
	appointmentsSvc := appointmentsService.New(appointmentRepository, realTime{}, log)
	usersSvc := usersService.New(userRepository, businessRepository, txMgr, tokenManager, realTime{}, log)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		businessRepository,
		userRepository,
		scheduleSvc,
		holidays,
		txMgr,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		appointmentRepository,
		scheduleSvc,
		holidays,
		log,
	)
	getOccupiedDatesUseCase := getOccupiedDatesUC.NewUseCase(
		appointmentRepository,
		scheduleSvc,
		dayoverrideRepository,
		holidays,
		log,
	)

	// Handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getOccupiedDates := getOccupiedDatesHandler.NewHandler(getOccupiedDatesUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getBusinessAppointments := getBusinessAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(scheduleSvc, log)
	blockDay := blockDayHandler.NewHandler(scheduleSvc, log)
	unblockDay := unblockDayHandler.NewHandler(scheduleSvc, log)
	registerUser := registerUserHandler.NewHandler(usersSvc, log)
	loginUser := loginUserHandler.NewHandler(usersSvc, log)
	getMe := getMeHandler.NewHandler(usersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	api.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)

	// Слоты бизнеса на дату
	api.HandleFunc("/businesses/{businessId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Календарь занятости бизнеса
	api.HandleFunc("/businesses/{businessId}/occupied-dates", getOccupiedDates.Handle).Methods(http.MethodGet)

	// Конфигурация расписания бизнеса
	api.HandleFunc("/businesses/{businessId}/config", getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	// --- Текущий пользователь ---
	protected.HandleFunc("/auth/me", getMe.Handle).Methods(http.MethodGet)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Завершение записи (администратор)
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// История записей пользователя
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Управление бизнесом (для администраторов) ---
	// Список записей бизнеса
	protected.HandleFunc("/businesses/{businessId}/appointments", getBusinessAppointments.Handle).Methods(http.MethodGet)

	// Обновление конфигурации расписания
	protected.HandleFunc("/businesses/{businessId}/config", updateScheduleConfig.Handle).Methods(http.MethodPut)

	// Блокировка и разблокировка дат
	protected.HandleFunc("/businesses/{businessId}/blocked-days", blockDay.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/unblocked-days", unblockDay.Handle).Methods(http.MethodPost)

	// Фоновая очистка финализированных записей
	jobCtx, cancelJobs := context.WithCancel(context.Background())
	defer cancelJobs()
	if cfg.Cleanup.Enabled {
		job := cleanupJob.New(
			appointmentRepository,
			cfg.Cleanup.RetentionYears,
			time.Duration(cfg.Cleanup.IntervalHours)*time.Hour,
			log,
		)
		go job.Run(jobCtx)
	}

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

	cancelJobs()

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
