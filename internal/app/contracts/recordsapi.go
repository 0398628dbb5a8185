package contracts

import (
	"context"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

// The records backend and the library catalogue are external
// collaborators; these clients are the only way the portal talks to them.

type AuthClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.LoginRecord, error)
	Register(ctx context.Context, request *requests.Register) (*responses.Register, error)
}

type SurveyClient interface {
	FetchQuestionRows(ctx context.Context, token string) ([]models.OptionRow, error)
	SubmitSurvey(ctx context.Context, token string, submission *requests.SurveySubmission) error
	UploadImages(ctx context.Context, token string, request *requests.UploadRequest) ([]string, error)
}

type ApplicationClient interface {
	List(ctx context.Context, token string, query *requests.ListApplications) ([]models.PatientApplication, error)
	Get(ctx context.Context, token string, applicationID int) (*models.PatientApplication, error)
	Update(ctx context.Context, token string, request *requests.UpdateApplication) error
}

type UserClient interface {
	List(ctx context.Context, token string) ([]models.User, error)
	Update(ctx context.Context, token string, userID int, request *requests.UpdateUser) error
	UpdateAccountStatus(ctx context.Context, token string, userID int, status models.AccountStatus) error
}

type InvoiceClient interface {
	List(ctx context.Context, token string, query *requests.ListApplications) ([]models.Invoice, error)
	Pay(ctx context.Context, token string, invoiceID int) error
}

type BookClient interface {
	Search(ctx context.Context, token, query string) ([]models.Book, error)
	Get(ctx context.Context, token string, bookID int) (*models.Book, error)
	Favorites(ctx context.Context, token string, userID int) ([]models.Book, error)
	AddFavorite(ctx context.Context, token string, userID, bookID int) error
	RemoveFavorite(ctx context.Context, token string, userID, bookID int) error
}
