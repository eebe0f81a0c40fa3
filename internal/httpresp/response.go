package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CafesResponse[T any] struct {
	Cafes []T `json:"cafes"`
}

type ResultResponse struct {
	Result map[string]string `json:"result"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Cafes writes {"cafes": [...]}, never null.
func Cafes[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, CafesResponse[T]{Cafes: data})
}

func Success(c *gin.Context, status int, message string) {
	c.JSON(status, ResultResponse{
		Result: map[string]string{"Success": message},
	})
}
