package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/errors"
	"github.com/johnquangdev/meeting-actions/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-actions/internal/usecase/minutes"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := common.SuccessResponse{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger.
// The response message is err.Error() verbatim; AppError picks the status and code.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	status := http.StatusInternalServerError
	body := common.ErrorResponse{
		Code:    errors.ErrorCode_INTERNAL.String(),
		Message: err.Error(),
	}

	var appErr errors.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPCode
		body.Code = appErr.Code.String()
		body.Details = make(map[string]string, len(appErr.Details)+2)
		for k, v := range appErr.Details {
			body.Details[k] = v
		}
	}

	var stageErr *minutes.StageError
	if errors.As(err, &stageErr) {
		if body.Details == nil {
			body.Details = make(map[string]string, 2)
		}
		body.Details["stage"] = stageErr.Stage
		if stageErr.Item > 0 {
			body.Details["item"] = strconv.Itoa(stageErr.Item)
		}
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", body.Code),
			zap.Int("status", status),
			zap.Error(err),
		)
	}

	return c.JSON(status, body)
}
