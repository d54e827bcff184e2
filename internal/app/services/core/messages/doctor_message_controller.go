package messages

import (
	"context"
	"net/http"
	"time"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorMessageController struct {
	Log                  *zap.Logger
	DoctorMessageUsecase contracts.DoctorMessageUsecase
}

func NewDoctorMessageController(logger *zap.Logger, doctorMessageUsecase contracts.DoctorMessageUsecase) *DoctorMessageController {
	return &DoctorMessageController{
		Log:                  logger,
		DoctorMessageUsecase: doctorMessageUsecase,
	}
}

func (ctrl *DoctorMessageController) CreateMessage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateDoctorMessage)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorMessageUsecase.CreateMessage(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMessageSuccess, response)
}

func (ctrl *DoctorMessageController) FindMessages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorMessageUsecase.FindMessages(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListMessagesSuccess, response)
}

func (ctrl *DoctorMessageController) FindLatestActiveMessage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorMessageUsecase.FindLatestActiveMessage(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ActiveMessageSuccess, response)
}

func (ctrl *DoctorMessageController) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateDoctorMessage)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.MessageID = chi.URLParam(r, constvars.URLParamMessageID)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorMessageUsecase.UpdateMessage(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMessageSuccess, response)
}

func (ctrl *DoctorMessageController) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, constvars.URLParamMessageID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.DoctorMessageUsecase.DeleteMessage(ctx, messageID); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteMessageSuccess, nil)
}
