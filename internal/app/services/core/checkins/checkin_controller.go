package checkins

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

type CheckinController struct {
	Log            *zap.Logger
	CheckinUsecase contracts.CheckinUsecase
}

func NewCheckinController(logger *zap.Logger, checkinUsecase contracts.CheckinUsecase) *CheckinController {
	return &CheckinController{
		Log:            logger,
		CheckinUsecase: checkinUsecase,
	}
}

func (ctrl *CheckinController) SubmitCheckin(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CreateCheckin)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PatientID = session.UserID
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CheckinUsecase.SubmitCheckin(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitCheckinSuccess, response)
}

func (ctrl *CheckinController) FindOwnCheckins(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CheckinUsecase.FindCheckinsByPatientID(ctx, session.UserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListCheckinsSuccess, response)
}

func (ctrl *CheckinController) FindPatientCheckins(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CheckinUsecase.FindCheckinsByPatientID(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListCheckinsSuccess, response)
}
