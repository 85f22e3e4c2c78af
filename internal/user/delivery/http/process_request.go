package http

import (
	pkgErrors "tastoria/pkg/errors"

	"github.com/gin-gonic/gin"
)

// bind decodes the JSON body into req and runs its binding rules.
func bind[T any](c *gin.Context) (T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError(err)
	}
	return req, nil
}
