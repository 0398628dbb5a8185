package surveys

import (
	"context"
	"intake-service/internal/app/config"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SurveyController struct {
	Log            *zap.Logger
	SurveyUsecase  SurveyUsecase
	InternalConfig *config.InternalConfig
}

func NewSurveyController(logger *zap.Logger, surveyUsecase SurveyUsecase, internalConfig *config.InternalConfig) *SurveyController {
	return &SurveyController{
		Log:            logger,
		SurveyUsecase:  surveyUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *SurveyController) GetQuestions(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.GetQuestions(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionsSuccessMessage, result)
}

func (ctrl *SurveyController) GetDraft(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.GetDraft(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDraftSuccessMessage, result)
}

func (ctrl *SurveyController) ApplyAnswer(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AnswerEvent)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.ApplyAnswer(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveDraftSuccessMessage, result)
}

func (ctrl *SurveyController) AdvanceStep(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.AdvanceStep(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveDraftSuccessMessage, result)
}

// UploadImage accepts an image for one of the three fixed slots, either
// as a multipart file or as a base64 JSON body.
func (ctrl *SurveyController) UploadImage(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	slot := chi.URLParam(r, "slot")

	imageData, ext, err := ctrl.readImage(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateImageFormat(ext, constvars.ImageAllowedFormats); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	if err := utils.ValidateImageSize(imageData, ctrl.InternalConfig.Survey.ImageMaxUploadSizeInMB); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	serverPath, err := ctrl.SurveyUsecase.UploadImage(ctx, session, slot, imageData, ext)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadImageSuccessMessage, responses.UploadedImage{Slot: slot, ServerPath: serverPath})
}

func (ctrl *SurveyController) readImage(r *http.Request) ([]byte, string, error) {
	if strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEApplicationJSON) {
		request := new(requests.UploadSlotImage)
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			return nil, "", exceptions.ErrCannotParseJSON(err)
		}
		if err := utils.ValidateStruct(request); err != nil {
			return nil, "", exceptions.ErrInputValidation(err)
		}
		imageData, ext, err := utils.DecodeBase64Image(request.Image)
		if err != nil {
			return nil, "", exceptions.ErrImageValidation(err)
		}
		return imageData, ext, nil
	}

	maxBytes := ctrl.InternalConfig.Survey.ImageMaxUploadSizeInMB * 1024 * 1024
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, "", exceptions.ErrCannotParseMultipartForm(err)
	}
	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		return nil, "", exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return nil, "", exceptions.ErrCannotParseMultipartForm(err)
	}
	return imageData, filepath.Ext(fileHeader.Filename), nil
}

// CaptureImage snapshots the kiosk camera for one of the three slots.
func (ctrl *SurveyController) CaptureImage(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	slot := chi.URLParam(r, "slot")

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	serverPath, err := ctrl.SurveyUsecase.CaptureImage(ctx, session, slot)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CaptureImageSuccessMessage, responses.UploadedImage{Slot: slot, ServerPath: serverPath})
}

func (ctrl *SurveyController) Submit(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := ctrl.SurveyUsecase.Submit(ctx, session); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitSurveySuccessMessage, nil)
}
