package responses

import (
	"context"
	"net/http"
	"time"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type FormResponseController struct {
	Log                 *zap.Logger
	FormResponseUsecase contracts.FormResponseUsecase
}

func NewFormResponseController(logger *zap.Logger, formResponseUsecase contracts.FormResponseUsecase) *FormResponseController {
	return &FormResponseController{
		Log:                 logger,
		FormResponseUsecase: formResponseUsecase,
	}
}

func (ctrl *FormResponseController) RenderForm(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := &requests.RenderForm{
		TemplateSlug: chi.URLParam(r, constvars.URLParamTemplateSlug),
		PatientID:    session.UserID,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FormResponseUsecase.RenderForm(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RenderFormSuccess, response)
}

func (ctrl *FormResponseController) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.SubmitFormResponse)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.TemplateSlug = chi.URLParam(r, constvars.URLParamTemplateSlug)
	request.PatientID = session.UserID
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FormResponseUsecase.SubmitResponse(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitFormSuccess, response)
}

func (ctrl *FormResponseController) FindResponse(w http.ResponseWriter, r *http.Request) {
	request := &requests.FindResponse{
		TemplateID: chi.URLParam(r, constvars.URLParamTemplateID),
		PatientID:  chi.URLParam(r, constvars.URLParamPatientID),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FormResponseUsecase.FindResponse(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindResponseSuccess, response)
}

func (ctrl *FormResponseController) TemplateCompletion(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, constvars.URLParamTemplateID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FormResponseUsecase.TemplateCompletion(ctx, templateID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListResponsesSuccess, response)
}
