package apierror

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the MIME type for RFC 9457 Problem Details.
const ContentTypeProblemJSON = "application/problem+json"

// WriteProblem writes a ProblemDetails response to the gin context with the
// correct Content-Type header.
func WriteProblem(c *gin.Context, problem *ProblemDetails) {
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// GetRequestID extracts the request ID from the gin context.
// Returns empty string if not found.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return c.GetHeader("X-Request-ID")
}

// NewValidationError creates a 400 Bad Request response for validation failures.
// Multiple field errors can be included to report all validation issues at once.
func NewValidationError(requestID string, errors []FieldError) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeValidation,
		Title:       TitleValidation,
		Status:      http.StatusBadRequest,
		Detail:      "One or more fields failed validation",
		RequestID:   requestID,
		UserMessage: "Please check your input and try again",
		Errors:      errors,
	}
}

// NewNotFoundError creates a 404 Not Found response.
func NewNotFoundError(requestID, resource, id string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeNotFound,
		Title:       TitleNotFound,
		Status:      http.StatusNotFound,
		Detail:      fmt.Sprintf("%s with ID '%s' was not found", resource, id),
		RequestID:   requestID,
		UserMessage: fmt.Sprintf("The requested %s could not be found", resource),
	}
}

// NewInternalError creates a 500 Internal Server Error response.
// This intentionally hides internal error details from the client; the actual
// error should be logged server-side.
func NewInternalError(requestID string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInternal,
		Title:       TitleInternal,
		Status:      http.StatusInternalServerError,
		Detail:      "An unexpected error occurred",
		RequestID:   requestID,
		UserMessage: "Something went wrong. Please try again later.",
	}
}

// NewBadRequestError creates a 400 Bad Request response for malformed requests.
func NewBadRequestError(requestID, detail, userMessage string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeBadRequest,
		Title:       TitleBadRequest,
		Status:      http.StatusBadRequest,
		Detail:      detail,
		RequestID:   requestID,
		UserMessage: userMessage,
	}
}

// NewUnauthorizedError creates a 401 Unauthorized response.
func NewUnauthorizedError(requestID string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeUnauthorized,
		Title:       TitleUnauthorized,
		Status:      http.StatusUnauthorized,
		Detail:      "Authentication is required to access this resource",
		RequestID:   requestID,
		UserMessage: "Please sign in to continue",
	}
}

// NewInvalidUUIDError creates a 400 Bad Request response for invalid UUID format.
func NewInvalidUUIDError(requestID, field, value string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInvalidUUID,
		Title:       TitleInvalidUUID,
		Status:      http.StatusBadRequest,
		Detail:      fmt.Sprintf("Invalid UUID format for field '%s': '%s'", field, value),
		RequestID:   requestID,
		UserMessage: "Invalid identifier format",
		Errors: []FieldError{
			{Field: field, Message: "must be a valid UUID", Code: "invalid_uuid"},
		},
	}
}
