package main

import (
	"context"
	"intake-service/internal/app/config"
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/delivery/http/routers"
	"intake-service/internal/app/drivers/database"
	"intake-service/internal/app/drivers/logger"
	"intake-service/internal/app/drivers/mailer"
	"intake-service/internal/app/drivers/messaging"
	"intake-service/internal/app/drivers/storage"
	"intake-service/internal/app/services/core/applications"
	"intake-service/internal/app/services/core/auth"
	"intake-service/internal/app/services/core/books"
	"intake-service/internal/app/services/core/invoices"
	"intake-service/internal/app/services/core/session"
	"intake-service/internal/app/services/core/surveys"
	"intake-service/internal/app/services/core/users"
	"intake-service/internal/app/services/recordsapi"
	"intake-service/internal/app/services/shared/audit"
	"intake-service/internal/app/services/shared/capture"
	sharedMailer "intake-service/internal/app/services/shared/mailer"
	sharedRedis "intake-service/internal/app/services/shared/redis"
	sharedStorage "intake-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitProcessLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoDB,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	auditRepository := audit.NewAuditMongoRepository(bootstrap.MongoDB)
	captureDevice := capture.NewHTTPDevice(bootstrap.InternalConfig.Survey.CameraSnapshotURL)

	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig)
	mailerService, err := sharedMailer.NewMailerService(smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.Mailer.Queue)
	if err != nil {
		logrus.Fatalf("Failed to initialize mailer service: %v", err)
	}

	// Upstream clients
	recordsBaseURL := bootstrap.InternalConfig.Records.BaseURL
	libraryBaseURL := bootstrap.InternalConfig.Records.LibraryBaseURL
	authClient := recordsapi.NewAuthClient(recordsBaseURL, bootstrap.Logger)
	surveyClient := recordsapi.NewSurveyClient(recordsBaseURL, bootstrap.Logger)
	applicationClient := recordsapi.NewApplicationClient(recordsBaseURL, bootstrap.Logger)
	userClient := recordsapi.NewUserClient(recordsBaseURL, bootstrap.Logger)
	invoiceClient := recordsapi.NewInvoiceClient(recordsBaseURL, bootstrap.Logger)
	bookClient := recordsapi.NewBookClient(libraryBaseURL, bootstrap.Logger)

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(authClient, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Survey
	surveyUsecase := surveys.NewSurveyUsecase(
		surveyClient,
		userClient,
		redisRepository,
		minioStorage,
		mailerService,
		auditRepository,
		captureDevice,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
		bootstrap.Logger,
	)
	surveyController := surveys.NewSurveyController(bootstrap.Logger, surveyUsecase, bootstrap.InternalConfig)

	// Applications
	applicationUsecase := applications.NewApplicationUsecase(applicationClient, auditRepository, bootstrap.InternalConfig, bootstrap.Logger)
	applicationController := applications.NewApplicationController(bootstrap.Logger, applicationUsecase, bootstrap.InternalConfig)

	// Users
	userUsecase := users.NewUserUsecase(userClient, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase, bootstrap.InternalConfig)

	// Invoices
	invoiceUsecase := invoices.NewInvoiceUsecase(invoiceClient, bootstrap.Logger)
	invoiceController := invoices.NewInvoiceController(bootstrap.Logger, invoiceUsecase, bootstrap.InternalConfig)

	// Books
	bookUsecase := books.NewBookUsecase(bookClient, bootstrap.Logger)
	bookController := books.NewBookController(bootstrap.Logger, bookUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		surveyController,
		applicationController,
		userController,
		invoiceController,
		bookController,
	)
}
