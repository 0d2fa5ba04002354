package httperr

import (
	"net/http"

	"venue-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Kind    string `json:"kind,omitempty"`
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

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// ConflictDetail lists what blocked the request.
type ConflictDetail struct {
	Conflicts []errs.ConflictItem `json:"conflicts"`
}

// AbortWithKind maps a use case error to its status by kind. Messages of
// unclassified errors are not exposed.
func AbortWithKind(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status := StatusOf(kind)

	msg := err.Error()
	var detail any
	switch kind {
	case errs.KindConflict:
		var ce *errs.ConflictError
		if errs.As(err, &ce) {
			msg = ce.Error()
			detail = ConflictDetail{Conflicts: ce.Items}
		}
	case errs.KindReconciliationInvariant, errs.KindInternal:
		msg = "Internal server error"
	}

	resp := Response{Status: status, Detail: detail}
	resp.Error.Kind = string(kind)
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindPermission:
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
