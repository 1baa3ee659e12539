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

	bannedSlotsHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/banned_slots"
	cancelLessonHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/cancel_lesson"
	createLessonHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/create_lesson"
	getAvailabilityHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/get_availability"
	getAvailabilityGridHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/get_availability_grid"
	getCoverageHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/get_coverage"
	getLessonHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/get_lesson"
	getLessonHistoryHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/get_lesson_history"
	getStudentLessonsHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/get_student_lessons"
	getTeacherLessonsHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/get_teacher_lessons"
	openHoursHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/open_hours"
	rescheduleLessonHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/reschedule_lesson"
	updateLessonHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/update_lesson"
	weeklyAvailabilityHandler "github.com/m04kA/SMC-LessonService/internal/api/handlers/weekly_availability"
	"github.com/m04kA/SMC-LessonService/internal/api/middleware"
	"github.com/m04kA/SMC-LessonService/internal/config"
	availabilityRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/availability"
	bannedSlotRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/bannedslot"
	historyRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/history"
	lessonRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/lesson"
	openHoursRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/openhours"
	paymentRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/payment"
	userServiceClient "github.com/m04kA/SMC-LessonService/internal/integrations/userservice"
	availabilityService "github.com/m04kA/SMC-LessonService/internal/service/availability"
	bookingService "github.com/m04kA/SMC-LessonService/internal/service/booking"
	coverageService "github.com/m04kA/SMC-LessonService/internal/service/coverage"
	historyService "github.com/m04kA/SMC-LessonService/internal/service/history"
	lessonsService "github.com/m04kA/SMC-LessonService/internal/service/lessons"
	scheduleService "github.com/m04kA/SMC-LessonService/internal/service/schedule"
	cancelLessonUC "github.com/m04kA/SMC-LessonService/internal/usecase/cancel_lesson"
	createLessonUC "github.com/m04kA/SMC-LessonService/internal/usecase/create_lesson"
	getAvailabilityGridUC "github.com/m04kA/SMC-LessonService/internal/usecase/get_availability_grid"
	rescheduleLessonUC "github.com/m04kA/SMC-LessonService/internal/usecase/reschedule_lesson"
	updateLessonUC "github.com/m04kA/SMC-LessonService/internal/usecase/update_lesson"
	"github.com/m04kA/SMC-LessonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LessonService/pkg/logger"
	"github.com/m04kA/SMC-LessonService/pkg/metrics"
	"github.com/m04kA/SMC-LessonService/pkg/slotlock"
	"github.com/m04kA/SMC-LessonService/pkg/txmanager"
)

// MetricsRecorder учёт исходов бронирования для use cases
type MetricsRecorder interface {
	RecordBookingDecision(operation, outcome string)
}

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

	log.Info("Starting SMC-LessonService...")

	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid timezone: %v", err)
	}
	log.Info("Booking timezone: %s", location)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		bookingMetrics   MetricsRecorder = metrics.Nop{}
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		bookingMetrics = metricsCollector
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

	// Обёртка над БД: с метриками замеряет запросы и пул, без них прозрачный прокси
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Блокировка слотов: Redis для нескольких инстансов, иначе в памяти процесса
	var locker slotlock.Locker
	lockTTL := time.Duration(cfg.Lock.TTL) * time.Millisecond
	lockWait := time.Duration(cfg.Lock.WaitTimeout) * time.Millisecond

	if cfg.Redis.Enabled {
		redisLocker, err := slotlock.NewRedisLocker(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, lockTTL, lockWait)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisLocker.Close()
		locker = redisLocker
		log.Info("Slot locks: redis at %s", cfg.Redis.Addr)
	} else {
		locker = slotlock.NewLocalLocker(lockWait)
		log.Warn("Slot locks: in-process only, run a single instance or enable redis")
	}

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)", cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории
	lessonRepository := lessonRepo.NewRepository(wrappedDB)
	historyRepository := historyRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	bannedSlotRepository := bannedSlotRepo.NewRepository(wrappedDB)
	openHoursRepository := openHoursRepo.NewRepository(wrappedDB)
	paymentRepository := paymentRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(availabilityRepository, bannedSlotRepository, openHoursRepository, log)
	coverageSvc := coverageService.NewService(paymentRepository, location, log)
	historySvc := historyService.NewService(historyRepository, log)
	lessonsSvc := lessonsService.NewService(lessonRepository, log)
	scheduleSvc := scheduleService.NewService(availabilityRepository, bannedSlotRepository, openHoursRepository, userClient, log)
	validator := bookingService.NewValidator(availabilitySvc, coverageSvc, lessonRepository, log)

	// Инициализируем use cases
	createLessonUseCase := createLessonUC.NewUseCase(
		lessonRepository,
		validator,
		historySvc,
		userClient,
		txMgr,
		locker,
		bookingMetrics,
		location,
		log,
	)
	updateLessonUseCase := updateLessonUC.NewUseCase(lessonRepository, validator, txMgr, log)
	cancelLessonUseCase := cancelLessonUC.NewUseCase(
		lessonRepository,
		validator,
		historySvc,
		txMgr,
		locker,
		bookingMetrics,
		log,
	)
	rescheduleLessonUseCase := rescheduleLessonUC.NewUseCase(
		lessonRepository,
		validator,
		historySvc,
		txMgr,
		locker,
		bookingMetrics,
		location,
		log,
	)
	getAvailabilityGridUseCase := getAvailabilityGridUC.NewUseCase(availabilitySvc, userClient, location, log)

	// Инициализируем handlers
	createLesson := createLessonHandler.NewHandler(createLessonUseCase, log)
	getLesson := getLessonHandler.NewHandler(lessonsSvc, log)
	updateLesson := updateLessonHandler.NewHandler(updateLessonUseCase, log)
	cancelLesson := cancelLessonHandler.NewHandler(cancelLessonUseCase, log)
	rescheduleLesson := rescheduleLessonHandler.NewHandler(rescheduleLessonUseCase, log)
	getStudentLessons := getStudentLessonsHandler.NewHandler(lessonsSvc, location, log)
	getTeacherLessons := getTeacherLessonsHandler.NewHandler(lessonsSvc, location, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailabilityGrid := getAvailabilityGridHandler.NewHandler(getAvailabilityGridUseCase, log)
	weeklyAvailability := weeklyAvailabilityHandler.NewHandler(scheduleSvc, log)
	bannedSlots := bannedSlotsHandler.NewHandler(scheduleSvc, log)
	openHours := openHoursHandler.NewHandler(scheduleSvc, log)
	getLessonHistory := getLessonHistoryHandler.NewHandler(historySvc, log)
	getCoverage := getCoverageHandler.NewHandler(coverageSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix, заголовки идентификации разбираются для всех маршрутов
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Identity)

	// ============================================================
	// PUBLIC ROUTES (без идентификации)
	// ============================================================

	// Доступность слота и недельная сетка
	api.HandleFunc("/teachers/{teacherId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/teachers/{teacherId}/availability-grid", getAvailabilityGrid.Handle).Methods(http.MethodGet)

	// Настройки расписания (чтение)
	api.HandleFunc("/teachers/{teacherId}/weekly-availability", weeklyAvailability.Get).Methods(http.MethodGet)
	api.HandleFunc("/teachers/{teacherId}/banned-slots", bannedSlots.List).Methods(http.MethodGet)
	api.HandleFunc("/open-hours", openHours.Get).Methods(http.MethodGet)

	// Покрытие оплатой (для проверки входа)
	api.HandleFunc("/students/{studentId}/coverage", getCoverage.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Student-ID или X-Teacher-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireActor)

	// --- Уроки ---
	protected.HandleFunc("/lessons", createLesson.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/lessons/{lessonId}", getLesson.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/lessons/{lessonId}", updateLesson.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/lessons/{lessonId}/cancel", cancelLesson.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/lessons/{lessonId}/reschedule", rescheduleLesson.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/students/{studentId}/lessons", getStudentLessons.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/teachers/{teacherId}/lessons", getTeacherLessons.Handle).Methods(http.MethodGet)

	// --- Журнал изменений ---
	protected.HandleFunc("/lesson-history", getLessonHistory.Handle).Methods(http.MethodGet)

	// --- Администрирование расписания (права проверяет сервис) ---
	protected.HandleFunc("/teachers/{teacherId}/weekly-availability", weeklyAvailability.Update).Methods(http.MethodPut)
	protected.HandleFunc("/teachers/{teacherId}/banned-slots", bannedSlots.Ban).Methods(http.MethodPost)
	protected.HandleFunc("/teachers/{teacherId}/banned-slots", bannedSlots.Unban).Methods(http.MethodDelete)
	protected.HandleFunc("/open-hours", openHours.Update).Methods(http.MethodPut)

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
	close(stopMetricsCh)

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
