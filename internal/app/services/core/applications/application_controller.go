package applications

import (
	"context"
	"intake-service/internal/app/config"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ApplicationController struct {
	Log                *zap.Logger
	ApplicationUsecase ApplicationUsecase
	InternalConfig     *config.InternalConfig
}

func NewApplicationController(logger *zap.Logger, applicationUsecase ApplicationUsecase, internalConfig *config.InternalConfig) *ApplicationController {
	return &ApplicationController{
		Log:                logger,
		ApplicationUsecase: applicationUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *ApplicationController) List(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	search := r.URL.Query().Get("search")
	page, pageSize := utils.PageParams(
		r.URL.Query().Get("page"),
		r.URL.Query().Get("pageSize"),
		ctrl.InternalConfig.App.DefaultPageSize,
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rows, total, err := ctrl.ApplicationUsecase.List(ctx, session, search, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetApplicationsSuccessMessage, pagination, rows)
}

func (ctrl *ApplicationController) Get(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	applicationID, err := utils.ParseIntParam(chi.URLParam(r, "applicationID"), "applicationID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	row, err := ctrl.ApplicationUsecase.Get(ctx, session, applicationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetApplicationsSuccessMessage, row)
}

func (ctrl *ApplicationController) Act(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateApplication)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ctrl.ApplicationUsecase.Act(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateApplicationSuccessMessage, result)
}

// AuditTrail is an operations endpoint, guarded by the API key
// middleware rather than a user session.
func (ctrl *ApplicationController) AuditTrail(w http.ResponseWriter, r *http.Request) {
	applicationID, err := utils.ParseIntParam(chi.URLParam(r, "applicationID"), "applicationID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	entries, err := ctrl.ApplicationUsecase.AuditTrail(ctx, applicationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetApplicationsSuccessMessage, entries)
}
