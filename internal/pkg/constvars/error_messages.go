package constvars

// Validation messages for request DTOs, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"numeric":  "must be a number",
	"datetime": "must match the format %s",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientBackendUnreachable            = "the medical records service cannot be reached, please try again"
	ErrClientMissingRequiredAnswer         = "please answer all required questions before continuing"
	ErrClientMissingSpecifyText            = "please fill in the text for the option you selected"
	ErrClientMissingImages                 = "all three photos must be provided before continuing"
	ErrClientConsentNotGiven               = "all consent statements must be accepted before submitting"
	ErrClientFeedbackRequired              = "feedback is required when rejecting an application"
	ErrClientAttachmentRequired            = "an attachment is required when approving an application"
	ErrClientActionNotAllowed              = "this action is not available for the application's current status"
	ErrClientInvalidImageFormat            = "the uploaded image format is not supported"
	ErrClientImageTooLarge                 = "the uploaded image exceeds the maximum allowed size"
	ErrClientCaptureFailed                 = "could not capture a photo from the camera, please retry"
	ErrClientUploadFailed                  = "could not upload the photo, please retry"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevValidationFailed         = "validation failed"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevReadResponseBody         = "failed to read response body"
	ErrDevDecodeEnvelope           = "failed to decode response envelope"
	ErrDevBackendRejected          = "records backend rejected the request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevAuthTokenMissing         = "authorization token missing"
	ErrDevAuthTokenInvalid         = "authorization token invalid"
	ErrDevAuthSigningMethod        = "unexpected token signing method"
	ErrDevAuthGenerateToken        = "failed to generate token"
	ErrDevAuthInvalidSession       = "session not found or expired"
	ErrDevInvalidAPIKey            = "invalid operations api key"
	ErrDevRedisStoreSession        = "failed to store session in redis"
	ErrDevRedisGet                 = "failed to get value from redis, key: %s"
	ErrDevRedisSet                 = "failed to set value in redis"
	ErrDevRedisDelete              = "failed to delete value from redis"
	ErrDevMongoInsert              = "failed to insert document, collection: %s"
	ErrDevMinioCreateObject        = "failed to create object in bucket: %s"
	ErrDevSMTPSendEmail            = "failed to send email via host: %s"
	ErrDevQueuePublish             = "failed to publish message to queue: %s"
	ErrDevImageValidationFailed    = "image validation failed"
	ErrDevCaptureFailed            = "frame capture failed"
	ErrDevUnknownQuestion          = "question not present in survey: %d"
	ErrDevMissingRequiredAnswer    = "required question %d has no answer"
	ErrDevURLParamValidationFailed = "url parameter validation failed: %s"
)
