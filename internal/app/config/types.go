package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		MongoDB        *mongo.Database
		Minio          *minio.Client
		RabbitMQ       *amqp091.Connection
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		Redis    Redis
		MongoDB  MongoDB
		Minio    Minio
		RabbitMQ RabbitMQ
		SMTP     SMTP
		Logger   Logger
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App     App
		Records Records
		JWT     JWT
		Session Session
		Survey  Survey
		Mailer  Mailer
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		MaxTimeRequestsPerSeconds int
		ShutdownTimeoutInSeconds  int
		DefaultPageSize           int
		OpsAPIKeyHash             string
	}

	// Records points at the two upstream collaborators: the medical
	// records backend and the library catalogue.
	Records struct {
		BaseURL        string
		LibraryBaseURL string
		UploadPath     string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Session struct {
		TTLInHours int
	}

	Survey struct {
		ImageQuestionID        int
		QuestionsPerStep       int
		DraftTTLInHours        int
		ImageMaxUploadSizeInMB int64
		CameraSnapshotURL      string
	}

	Mailer struct {
		Queue            string
		NotifyRoleNames  []string
		SubjectSubmitted string
	}
)
