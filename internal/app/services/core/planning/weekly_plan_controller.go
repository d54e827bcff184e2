package planning

import (
	"context"
	"net/http"
	"time"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type WeeklyPlanController struct {
	Log               *zap.Logger
	WeeklyPlanUsecase contracts.WeeklyPlanUsecase
}

func NewWeeklyPlanController(logger *zap.Logger, weeklyPlanUsecase contracts.WeeklyPlanUsecase) *WeeklyPlanController {
	return &WeeklyPlanController{
		Log:               logger,
		WeeklyPlanUsecase: weeklyPlanUsecase,
	}
}

func (ctrl *WeeklyPlanController) UpsertPlanning(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpsertWeeklyPlanning)
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

	response, err := ctrl.WeeklyPlanUsecase.UpsertPlanning(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SavePlanningSuccess, response)
}

func (ctrl *WeeklyPlanController) FindPlanning(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WeeklyPlanUsecase.FindPlanning(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListPlanningSuccess, response)
}
