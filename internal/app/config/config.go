package config

import (
	"intake-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "intake"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "intake-images"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "smtp_host"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Karachi"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			DefaultPageSize:           utils.GetEnvInt("APP_DEFAULT_PAGE_SIZE", 10),
			OpsAPIKeyHash:             utils.GetEnvString("APP_OPS_API_KEY_HASH", ""),
		},
		Records: Records{
			BaseURL:        utils.GetEnvString("RECORDS_BASE_URL", "https://localhost:5001/api"),
			LibraryBaseURL: utils.GetEnvString("LIBRARY_BASE_URL", "https://localhost:5002/api"),
			UploadPath:     utils.GetEnvString("RECORDS_UPLOAD_PATH", "PatientImages"),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Session: Session{
			TTLInHours: utils.GetEnvInt("SESSION_TTL_IN_HOURS", 1),
		},
		Survey: Survey{
			ImageQuestionID:        utils.GetEnvInt("SURVEY_IMAGE_QUESTION_ID", 13),
			QuestionsPerStep:       utils.GetEnvInt("SURVEY_QUESTIONS_PER_STEP", 5),
			DraftTTLInHours:        utils.GetEnvInt("SURVEY_DRAFT_TTL_IN_HOURS", 72),
			ImageMaxUploadSizeInMB: utils.GetEnvInt64("SURVEY_IMAGE_MAX_UPLOAD_SIZE_IN_MB", 5),
			CameraSnapshotURL:      utils.GetEnvString("SURVEY_CAMERA_SNAPSHOT_URL", "http://localhost:8081/snapshot.jpg"),
		},
		Mailer: Mailer{
			Queue:            utils.GetEnvString("MAILER_QUEUE", "intake-mailer"),
			NotifyRoleNames:  strings.Split(utils.GetEnvString("MAILER_NOTIFY_ROLES", "Doctor,Admin"), ","),
			SubjectSubmitted: utils.GetEnvString("MAILER_SUBJECT_SUBMITTED", "A new intake application has been submitted"),
		},
	}
}
