package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/turtacn/opportunity-canvas/pkg/errors"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	resp := ErrorResponse{
		Code:    string(apperrors.GetCode(err)),
		Message: err.Error(),
	}
	if appErr, ok := err.(*apperrors.AppError); ok {
		resp.Message = appErr.Message
		resp.Detail = appErr.Detail
	}
	c.AbortWithStatusJSON(status, resp)
}

// floatQuery parses an optional float query parameter, falling back to
// def when the parameter is absent.
func floatQuery(c *gin.Context, name string, def float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperrors.Newf(apperrors.CodeInvalidParam, "invalid query parameter %q: %s", name, raw)
	}
	return v, nil
}

func respondJSON(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
