package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
	// ErrCodeValidationRange is used when a value is out of range
	ErrCodeValidationRange = "ERR_VALIDATION_RANGE"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Catalog rule error codes
const (
	// ErrCodeInvalidContainment is used when an item kind is not allowed in a context
	ErrCodeInvalidContainment = "ERR_INVALID_CONTAINMENT"
	// ErrCodeDuplicateItem is used when an item appears twice in a target order
	ErrCodeDuplicateItem = "ERR_DUPLICATE_ITEM"
	// ErrCodeInvalidItemKind is used for unrecognized item kinds
	ErrCodeInvalidItemKind = "ERR_INVALID_ITEM_KIND"
	// ErrCodeCapacityExceeded is used when a placement exceeds its item cap
	ErrCodeCapacityExceeded = "ERR_CAPACITY_EXCEEDED"
	// ErrCodeSelfIncompatibility is used when a config is marked incompatible with itself
	ErrCodeSelfIncompatibility = "ERR_SELF_INCOMPATIBILITY"
	// ErrCodeZoneCollision is used when both endpoints share a zone
	ErrCodeZoneCollision = "ERR_ZONE_COLLISION"
	// ErrCodeCategoryMismatch is used when endpoints belong to different categories
	ErrCodeCategoryMismatch = "ERR_CATEGORY_MISMATCH"
	// ErrCodePositionDisjoint is used when endpoint body positions cannot overlap
	ErrCodePositionDisjoint = "ERR_POSITION_DISJOINT"
	// ErrCodeForeignGalleryEntry is used when an order references another owner's image
	ErrCodeForeignGalleryEntry = "ERR_FOREIGN_GALLERY_ENTRY"
	// ErrCodeMissingUploadForKey is used when an order names an upload that was not sent
	ErrCodeMissingUploadForKey = "ERR_MISSING_UPLOAD_FOR_KEY"
	// ErrCodeUnsupportedSort is used for sort keys the listing cannot serve
	ErrCodeUnsupportedSort = "ERR_UNSUPPORTED_SORT"
	// ErrCodeInvalidGalleryEntry is used for malformed gallery order entries
	ErrCodeInvalidGalleryEntry = "ERR_INVALID_GALLERY_ENTRY"
	// ErrCodeInvalidContextKind is used for unrecognized ordering contexts
	ErrCodeInvalidContextKind = "ERR_INVALID_CONTEXT_KIND"
	// ErrCodeInvalidFilterKind is used for unrecognized filter taxonomies
	ErrCodeInvalidFilterKind = "ERR_INVALID_FILTER_KIND"
	// ErrCodeInvalidDuration is used when a duration bucket has no positive minutes
	ErrCodeInvalidDuration = "ERR_INVALID_DURATION"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeValidationRange:    http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Catalog rule violations -> 422 Unprocessable Entity
	ErrCodeInvalidContainment:  http.StatusUnprocessableEntity,
	ErrCodeDuplicateItem:       http.StatusUnprocessableEntity,
	ErrCodeCapacityExceeded:    http.StatusUnprocessableEntity,
	ErrCodeSelfIncompatibility: http.StatusUnprocessableEntity,
	ErrCodeZoneCollision:       http.StatusUnprocessableEntity,
	ErrCodeCategoryMismatch:    http.StatusUnprocessableEntity,
	ErrCodePositionDisjoint:    http.StatusUnprocessableEntity,
	ErrCodeForeignGalleryEntry: http.StatusUnprocessableEntity,
	ErrCodeMissingUploadForKey: http.StatusUnprocessableEntity,
	ErrCodeInvalidDuration:     http.StatusUnprocessableEntity,

	// Malformed references -> 400 Bad Request
	ErrCodeInvalidItemKind:     http.StatusBadRequest,
	ErrCodeInvalidContextKind:  http.StatusBadRequest,
	ErrCodeInvalidFilterKind:   http.StatusBadRequest,
	ErrCodeUnsupportedSort:     http.StatusBadRequest,
	ErrCodeInvalidGalleryEntry: http.StatusBadRequest,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeBusinessRule: http.StatusUnprocessableEntity,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain-layer error codes to the API format
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":              ErrCodeNotFound,
	"ALREADY_EXISTS":         ErrCodeAlreadyExists,
	"INVALID_INPUT":          ErrCodeInvalidInput,
	"INVALID_STATE":          ErrCodeInvalidState,
	"UNAUTHORIZED":           ErrCodeUnauthorized,
	"FORBIDDEN":              ErrCodeForbidden,
	"CONCURRENCY_CONFLICT":   ErrCodeConcurrencyConflict,
	"VALIDATION_ERROR":       ErrCodeValidation,
	"BAD_REQUEST":            ErrCodeBadRequest,
	"INTERNAL_ERROR":         ErrCodeInternal,
	"INVALID_CONTAINMENT":    ErrCodeInvalidContainment,
	"DUPLICATE_ITEM":         ErrCodeDuplicateItem,
	"INVALID_ITEM_KIND":      ErrCodeInvalidItemKind,
	"CAPACITY_EXCEEDED":      ErrCodeCapacityExceeded,
	"SELF_INCOMPATIBILITY":   ErrCodeSelfIncompatibility,
	"ZONE_COLLISION":         ErrCodeZoneCollision,
	"CATEGORY_MISMATCH":      ErrCodeCategoryMismatch,
	"POSITION_DISJOINT":      ErrCodePositionDisjoint,
	"FOREIGN_GALLERY_ENTRY":  ErrCodeForeignGalleryEntry,
	"MISSING_UPLOAD_FOR_KEY": ErrCodeMissingUploadForKey,
	"UNSUPPORTED_SORT":       ErrCodeUnsupportedSort,
	"INVALID_GALLERY_ENTRY":  ErrCodeInvalidGalleryEntry,
	"INVALID_CONTEXT_KIND":   ErrCodeInvalidContextKind,
	"INVALID_FILTER_KIND":    ErrCodeInvalidFilterKind,
	"INVALID_DURATION":       ErrCodeInvalidDuration,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
