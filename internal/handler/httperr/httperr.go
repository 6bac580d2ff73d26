package httperr

import (
	"net/http"

	"order-followup/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps the use case sentinels to HTTP statuses.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrAlreadyResolved),
		errs.Is(err, errs.ErrAmbiguousPriority),
		errs.Is(err, errs.ErrInconsistentRule):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithUsecaseError picks the status from err. Client errors carry the cause as detail;
// server errors never expose it.
func AbortWithUsecaseError(c *gin.Context, err error, msg string) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		AbortWithError(c, status, err, msg, nil)
		return
	}
	AbortWithError(c, status, err, msg, err.Error())
}
