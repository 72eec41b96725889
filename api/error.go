package api

import (
	"errors"
	"net/http"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/momo-gateway/internal/momo"
)

var (
	ErrInvalidAmount = errors.New("amount must be a valid number")
	ErrMissingPayURL = errors.New("momo did not return a payment url")
)

type FailedValidationResponse struct {
	Message         string            `json:"message"`
	FieldViolations []*FieldViolation `json:"field_violations"`
}

type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func fieldViolation(field string, err error) *FieldViolation {
	return &FieldViolation{
		Field:       field,
		Description: err.Error(),
	}
}

func failedValidationError(violations []*FieldViolation) *FailedValidationResponse {
	return &FailedValidationResponse{
		Message:         "Invalid request parameters",
		FieldViolations: violations,
	}
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// momoErrorStatus maps errors coming out of the momo package to HTTP status codes.
func momoErrorStatus(err error) int {
	switch {
	case errors.Is(err, momo.ErrInvalidInput),
		errors.Is(err, momo.ErrMissingSignature),
		errors.Is(err, momo.ErrInvalidSignature):
		return http.StatusBadRequest
	default:
		// GatewayError, ParseError và lỗi kết nối đều do phía MoMo
		return http.StatusBadGateway
	}
}
