package main

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/delivery/http/routers"
	"arogya-service/internal/app/drivers/database"
	"arogya-service/internal/app/drivers/logger"
	"arogya-service/internal/app/drivers/messaging"
	miniodriver "arogya-service/internal/app/drivers/storage"
	"arogya-service/internal/app/services/core/appointments"
	"arogya-service/internal/app/services/core/auth"
	"arogya-service/internal/app/services/core/labreports"
	"arogya-service/internal/app/services/core/patients"
	"arogya-service/internal/app/services/core/session"
	"arogya-service/internal/app/services/core/slots"
	"arogya-service/internal/app/services/core/users"
	"arogya-service/internal/app/services/core/vaccinations"
	"arogya-service/internal/app/services/shared/locker"
	"arogya-service/internal/app/services/shared/redis"
	"arogya-service/internal/app/services/shared/reminderqueue"
	"arogya-service/internal/app/services/shared/storage"
	"arogya-service/internal/pkg/timeconv"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := miniodriver.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapTheApp(&bootstrap); err != nil {
		bootLog.Fatalf("Failed to bootstrap application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()
	bootLog.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	bootLog.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Printf("Error during dependency shutdown: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) error {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)
	storageService := storage.NewMinioStorageService(bootstrap.Minio, bootstrap.DriverConfig)
	reminderQueueService, err := reminderqueue.NewReminderQueueService(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		return err
	}

	converter := timeconv.NewConverter(bootstrap.InternalConfig.App.TimezoneOffsetMinutes)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Auth
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Patients
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Slots
	slotMongoRepository := slots.NewSlotMongoRepository(bootstrap.MongoDB, dbName)
	scheduleMongoRepository := slots.NewScheduleMongoRepository(bootstrap.MongoDB, dbName)
	slotUsecase := slots.NewSlotUsecase(slotMongoRepository, scheduleMongoRepository, converter, bootstrap.InternalConfig, bootstrap.Logger)
	slotController := slots.NewSlotController(bootstrap.Logger, slotUsecase, sessionService)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		slotMongoRepository,
		sessionService,
		lockerService,
		reminderQueueService,
		converter,
		bootstrap.Logger,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Vaccinations
	vaccinationMongoRepository := vaccinations.NewVaccinationMongoRepository(bootstrap.MongoDB, dbName)
	vaccinationUsecase := vaccinations.NewVaccinationUsecase(vaccinationMongoRepository, patientMongoRepository, bootstrap.Logger)
	vaccinationController := vaccinations.NewVaccinationController(bootstrap.Logger, vaccinationUsecase)

	// Lab reports
	labReportMongoRepository := labreports.NewLabReportMongoRepository(bootstrap.MongoDB, dbName)
	labReportUsecase := labreports.NewLabReportUsecase(labReportMongoRepository, patientMongoRepository, storageService, bootstrap.InternalConfig, bootstrap.Logger)
	labReportController := labreports.NewLabReportController(bootstrap.Logger, labReportUsecase, bootstrap.InternalConfig)

	// Slot worker
	slotWorker := slots.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, scheduleMongoRepository, slotUsecase)
	slotWorker.Start(context.Background())
	bootstrap.SlotWorkerStop = slotWorker.Stop

	// Reminder drain worker
	reminderSender := reminderqueue.NewLogReminderSender(bootstrap.Logger)
	reminderWorker := reminderqueue.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, reminderQueueService, reminderSender)
	reminderWorker.Start(context.Background())
	bootstrap.ReminderWorkerStop = reminderWorker.Stop

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		patientController,
		slotController,
		appointmentController,
		vaccinationController,
		labReportController,
	)
	return nil
}
