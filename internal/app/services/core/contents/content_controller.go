package contents

import (
	"context"
	"net/http"
	"time"

	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ContentController struct {
	Log            *zap.Logger
	ContentUsecase contracts.ContentUsecase
	InternalConfig *config.InternalConfig
}

func NewContentController(logger *zap.Logger, contentUsecase contracts.ContentUsecase, internalConfig *config.InternalConfig) *ContentController {
	return &ContentController{
		Log:            logger,
		ContentUsecase: contentUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ContentController) UpsertScreenText(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpsertScreenText)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ScreenKey = chi.URLParam(r, constvars.URLParamScreenKey)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ContentUsecase.UpsertScreenText(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveScreenTextSuccess, response)
}

func (ctrl *ContentController) FindScreenTexts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ContentUsecase.FindScreenTexts(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListScreenTextsSuccess, response)
}

func (ctrl *ContentController) UploadFile(w http.ResponseWriter, r *http.Request) {
	maxBytes := ctrl.InternalConfig.App.ContentMaxUploadSizeInMB * 1024 * 1024
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileTooLarge(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	defer file.Close()

	request := &requests.UploadContentFile{
		Name:        fileHeader.Filename,
		Description: r.FormValue("description"),
		FileType:    fileHeader.Header.Get(constvars.HeaderContentType),
		SizeInBytes: fileHeader.Size,
		Reader:      file,
	}
	if request.FileType == "" {
		request.FileType = constvars.MIMEOctetStream
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ContentUsecase.UploadFile(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadContentSuccess, response)
}

func (ctrl *ContentController) FindFiles(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ContentUsecase.FindFiles(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListContentFilesSuccess, response)
}

func (ctrl *ContentController) FileDownloadURL(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, constvars.URLParamFileID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ContentUsecase.FileDownloadURL(ctx, fileID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DownloadContentSuccess, response)
}

func (ctrl *ContentController) DeleteFile(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, constvars.URLParamFileID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.ContentUsecase.DeleteFile(ctx, fileID); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteContentSuccess, nil)
}
