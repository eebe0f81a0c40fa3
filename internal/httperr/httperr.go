package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	TitleBadRequest  = "Bad Request"
	TitleNotFound    = "Not Found"
	TitleInternal    = "Internal Server Error"
	TitleAddFailed   = "Failed to add new location"
	TitleRateLimited = "Too Many Requests"
)

// HTTPError renders as {"error": {"<title>": "<message>"}}.
type HTTPError struct {
	Error map[string]string `json:"error"`
}

func Write(c *gin.Context, status int, title, message string) {
	c.JSON(status, HTTPError{
		Error: map[string]string{title: message},
	})
}

func Abort(c *gin.Context, status int, title, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Error: map[string]string{title: message},
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, TitleBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, TitleNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, TitleInternal, message)
}
