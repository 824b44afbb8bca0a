package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/zenya-app/Zenya-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/zenya-app/Zenya-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/zenya-app/Zenya-BookingService/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/zenya-app/Zenya-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/zenya-app/Zenya-BookingService/internal/api/handlers/get_booking"
	getCurrentUserHandler "github.com/zenya-app/Zenya-BookingService/internal/api/handlers/get_current_user"
	getServiceHandler "github.com/zenya-app/Zenya-BookingService/internal/api/handlers/get_service"
	listBookingsHandler "github.com/zenya-app/Zenya-BookingService/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/zenya-app/Zenya-BookingService/internal/api/handlers/list_services"
	loginHandler "github.com/zenya-app/Zenya-BookingService/internal/api/handlers/login"
	registerHandler "github.com/zenya-app/Zenya-BookingService/internal/api/handlers/register"
	rescheduleBookingHandler "github.com/zenya-app/Zenya-BookingService/internal/api/handlers/reschedule_booking"
	updateBookingStatusHandler "github.com/zenya-app/Zenya-BookingService/internal/api/handlers/update_booking_status"
	"github.com/zenya-app/Zenya-BookingService/internal/api/middleware"
	"github.com/zenya-app/Zenya-BookingService/internal/config"
	"github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore"
	memoryStore "github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore/memory"
	postgresStore "github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore/postgres"
	redisStore "github.com/zenya-app/Zenya-BookingService/internal/infra/kvstore/redis"
	bookingRepo "github.com/zenya-app/Zenya-BookingService/internal/infra/storage/bookings"
	"github.com/zenya-app/Zenya-BookingService/internal/infra/storage/seed"
	servicesRepo "github.com/zenya-app/Zenya-BookingService/internal/infra/storage/services"
	usersRepo "github.com/zenya-app/Zenya-BookingService/internal/infra/storage/users"
	authService "github.com/zenya-app/Zenya-BookingService/internal/service/auth"
	bookingsService "github.com/zenya-app/Zenya-BookingService/internal/service/bookings"
	catalogService "github.com/zenya-app/Zenya-BookingService/internal/service/catalog"
	createBookingUC "github.com/zenya-app/Zenya-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/zenya-app/Zenya-BookingService/internal/usecase/get_available_slots"
	"github.com/zenya-app/Zenya-BookingService/pkg/logger"
	"github.com/zenya-app/Zenya-BookingService/pkg/metrics"
	"github.com/zenya-app/Zenya-BookingService/pkg/storemetrics"
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

	log.Info("Starting Zenya-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем key-value хранилище по выбранному бэкенду
	var store kvstore.Store

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		store = memoryStore.NewStore()
		log.Info("Storage backend: in-memory (data is lost on restart)")

	case config.BackendRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		store = redisStore.NewStore(client)
		log.Info("Storage backend: redis (addr=%s, db=%d)", cfg.Storage.Redis.Addr, cfg.Storage.Redis.DB)

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Storage.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}

		pgStore := postgresStore.NewStore(db)
		if err := pgStore.EnsureSchema(context.Background()); err != nil {
			log.Fatal("Failed to ensure database schema: %v", err)
		}
		store = pgStore
		log.Info("Storage backend: postgres (host=%s, port=%d, db=%s)",
			cfg.Storage.Postgres.Host, cfg.Storage.Postgres.Port, cfg.Storage.Postgres.DBName)
	}

	// Оборачиваем хранилище метриками операций (если метрики включены)
	if cfg.Metrics.Enabled {
		store = storemetrics.Wrap(store, cfg.Metrics.ServiceName)
		log.Info("Store metrics collection started")
	}

	// Наполняем хранилище демо-данными (только отсутствующие ключи)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := seed.Bootstrap(context.Background(), store, time.Now(), rng, log); err != nil {
		log.Fatal("Failed to bootstrap seed data: %v", err)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(store)
	serviceRepository := servicesRepo.NewRepository(store)
	userRepository := usersRepo.NewRepository(store)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	authSvc := authService.NewService(
		userRepository,
		log,
		cfg.Auth.Secret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		time.Duration(cfg.Auth.SimulatedDelayMs)*time.Millisecond,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	register := registerHandler.NewHandler(authSvc, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// Получение доступных слотов для бронирования
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Демо-аутентификация
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	// Текущий пользователь демо-окружения
	protected.HandleFunc("/auth/me", getCurrentUser.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрами
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Обновление статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Перенос бронирования
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Физическое удаление бронирования
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

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
