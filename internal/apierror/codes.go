package apierror

// Error type URIs following the urn:moodlog:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:moodlog:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:moodlog:error:not_found"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:moodlog:error:unauthorized"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:moodlog:error:internal"

	// TypeInvalidUUID indicates an invalid UUID format in request (400)
	TypeInvalidUUID = "urn:moodlog:error:invalid_uuid"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:moodlog:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleUnauthorized = "Authentication Required"
	TitleInternal     = "Internal Server Error"
	TitleInvalidUUID  = "Invalid UUID Format"
	TitleBadRequest   = "Bad Request"
)
