package utils

import (
	"net/http"
	"strings"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
)

func GetErrorCode(err error) string {
	if customErr, ok := err.(*models.CustomError); ok {
		return customErr.ErrorCode()
	}
	return "LENDY_INTERNAL_ERROR"
}

// HTTPStatusForError maps an error code onto a response status by its kind
// prefix. Validation and policy failures are the caller's to fix, transition
// failures are conflicts, transient failures ask for a retry.
func HTTPStatusForError(err error) int {
	code := GetErrorCode(err)
	switch {
	case strings.HasPrefix(code, "LENDY_VALIDATION_"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "LENDY_POLICY_"):
		return http.StatusUnprocessableEntity
	case strings.HasPrefix(code, "LENDY_TRANSITION_"):
		return http.StatusConflict
	case strings.HasPrefix(code, "LENDY_TRANSIENT_"):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
