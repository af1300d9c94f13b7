package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sustainhire/internship-intake/internal/utils"
)

const errSavingApplication = "Error saving application"

// APIError keeps the {error, details} body clients already parse and adds a
// machine-readable code plus the failing fields on validation errors.
type APIError struct {
	Error   string             `json:"error"`
	Details string             `json:"details"`
	Code    utils.Code         `json:"code"`
	Fields  []utils.FieldError `json:"fields,omitempty"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	_ = c.Error(err)

	body := APIError{
		Error:   errSavingApplication,
		Details: err.Error(),
		Code:    utils.CodeInternal,
	}

	var ae *utils.AppError
	if errors.As(err, &ae) {
		body.Code = ae.Code
		body.Details = ae.Details()
	}

	var ve *utils.ValidationError
	if errors.As(err, &ve) {
		body.Code = utils.CodeInvalidArgument
		body.Details = ve.Error()
		body.Fields = ve.Fields
	}

	c.JSON(status, body)
}
