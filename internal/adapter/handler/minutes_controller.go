package handler

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/errors"
	dto "github.com/johnquangdev/meeting-actions/internal/adapter/dto/minutes"
	"github.com/johnquangdev/meeting-actions/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-actions/internal/usecase/minutes"
)

//go:embed templates/index.html
var indexHTML string

// MinutesController handles transcript uploads and runs the minutes pipeline
type MinutesController struct {
	svc    minutes.Service
	store  storage.TranscriptStore
	logger *zap.Logger
}

// NewMinutesController creates a new minutes controller
func NewMinutesController(svc minutes.Service, store storage.TranscriptStore, logger *zap.Logger) *MinutesController {
	return &MinutesController{svc: svc, store: store, logger: logger}
}

// Index serves the upload form
func (mc *MinutesController) Index(c echo.Context) error {
	return c.HTML(http.StatusOK, indexHTML)
}

// ProcessTranscript turns an uploaded transcript into Jira issues
// @Summary      Process meeting transcript
// @Description  Generates minutes from the uploaded transcript and creates one Jira task per action item
// @Tags         Minutes
// @Accept       multipart/form-data
// @Produce      json
// @Param        meeting_file       formData  file    true  "Transcript text file"
// @Param        jira_email         formData  string  true  "Jira account email"
// @Param        jira_api_token     formData  string  true  "Jira API token"
// @Param        jira_api_instance  formData  string  true  "Jira instance URL"
// @Param        project_name       formData  string  true  "Jira project name"
// @Success      200  {object}  common.SuccessResponse{data=dto.ProcessTranscriptResponse}
// @Failure      400  {object}  common.ErrorResponse  "Missing file or invalid form fields"
// @Failure      404  {object}  common.ErrorResponse  "Project or user not found"
// @Failure      500  {object}  common.ErrorResponse  "Completion service not configured"
// @Failure      502  {object}  common.ErrorResponse  "Completion service or Jira rejected the call"
// @Router       /process [post]
func (mc *MinutesController) ProcessTranscript(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ProcessTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(mc.logger, c, err)
	}

	file, err := c.FormFile("meeting_file")
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrMissingTranscriptFile())
	}
	src, err := file.Open()
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrStorageFailed("open upload", err))
	}
	defer src.Close()

	ref, err := mc.store.Save(ctx, file.Filename, src, file.Size)
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrStorageFailed("save transcript", err))
	}
	transcript, err := mc.store.Read(ctx, ref)
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrStorageFailed("read transcript", err))
	}

	if mc.logger != nil {
		mc.logger.Info("📥 Transcript stored",
			zap.String("ref", ref),
			zap.Int64("size", file.Size),
			zap.String("project_name", req.ProjectName),
		)
	}

	result, err := mc.svc.Process(ctx, transcript, req.TrackerConfig())
	if err != nil {
		return HandleError(mc.logger, c, err)
	}

	return HandleSuccess(mc.logger, c, dto.NewProcessTranscriptResponse(result))
}
