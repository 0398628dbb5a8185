package constvars

type contextKey string

const (
	CONTEXT_SESSION_DATA_KEY contextKey = "sessionData"
	CONTEXT_SESSION_ID_KEY   contextKey = "sessionID"
	CONTEXT_REQUEST_ID_KEY   contextKey = "requestID"
)

const (
	LoggingRequestIDKey = "request_id"

	ResponseUnknown = "unknown"

	AppPaginationUrlFormat = "%s?page=%d&pageSize=%d"
)

// Success messages
const (
	LoginSuccessMessage             = "login success"
	LogoutSuccessMessage            = "logout success"
	RegisterSuccessMessage          = "registration success"
	GetQuestionsSuccessMessage      = "questions fetched successfully"
	SaveDraftSuccessMessage         = "draft saved successfully"
	GetDraftSuccessMessage          = "draft fetched successfully"
	SubmitSurveySuccessMessage      = "survey submitted successfully"
	UploadImageSuccessMessage       = "image uploaded successfully"
	CaptureImageSuccessMessage      = "image captured successfully"
	GetApplicationsSuccessMessage   = "applications fetched successfully"
	UpdateApplicationSuccessMessage = "application updated successfully"
	GetUsersSuccessMessage          = "users fetched successfully"
	UpdateUserSuccessMessage        = "user updated successfully"
	GetInvoicesSuccessMessage       = "invoices fetched successfully"
	PayInvoiceSuccessMessage        = "invoice paid successfully"
	GetBooksSuccessMessage          = "books fetched successfully"
	GetFavoritesSuccessMessage      = "favorites fetched successfully"
	AddFavoriteSuccessMessage       = "favorite added successfully"
	RemoveFavoriteSuccessMessage    = "favorite removed successfully"
)

// Redis key prefixes
const (
	RedisSessionKeyFormat     = "intake:session:%s"
	RedisSurveyDraftKeyFormat = "intake:survey:draft:%s"
)

// Mongo collections
const (
	MongoCollectionWorkflowAudit      = "workflow_audit"
	MongoCollectionSubmissionReceipts = "submission_receipts"
)
