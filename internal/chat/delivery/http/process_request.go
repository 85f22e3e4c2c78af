package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// processRespondReq binds the body. A message that is valid JSON but not a
// string is an internal error, not a malformed body.
func (h *handler) processRespondReq(c *gin.Context) (respondReq, error) {
	var req respondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return req, fmt.Errorf("%w: %v", errMessageType, err)
		}
		return req, errMalformedBody
	}
	return req, req.validate()
}
