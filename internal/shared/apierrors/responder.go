package apierrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond writes the envelope with its mapped status code.
func Respond(c *gin.Context, apiErr Error) {
	if apiErr.Status == 0 {
		apiErr.Status = http.StatusInternalServerError
	}
	c.JSON(apiErr.Status, apiErr)
}

// RespondError converts err to an envelope and responds. Errors that are not
// already an Error become a 500 with the error text as detail.
func RespondError(c *gin.Context, err error) {
	var apiErr Error
	if errors.As(err, &apiErr) {
		Respond(c, apiErr)
		return
	}
	Respond(c, Internal("Internal error").WithDetail(err.Error()))
}

// HTTPStatus extracts the status code an error would map to.
func HTTPStatus(err error) int {
	var apiErr Error
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
