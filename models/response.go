package models

import "math"

// Machine-readable error codes carried in the response envelope.
const (
	CodeValidationError      = "VALIDATION_ERROR"
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeInvalidEmailFormat   = "INVALID_EMAIL_FORMAT"
	CodeDuplicateEmail       = "DUPLICATE_EMAIL"
	CodeNotFound             = "NOT_FOUND"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeServiceUnavailable   = "SERVICE_UNAVAILABLE"
)

// APIResponse is the uniform envelope returned by every endpoint.
type APIResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Code       string      `json:"code,omitempty"`
	Field      string      `json:"field,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the window returned by the list operation.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewPagination computes the metadata block for a list response.
func NewPagination(page, perPage int, total int64) *Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	return &Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func SuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ListResponse(data interface{}, count int, pagination *Pagination) APIResponse {
	return APIResponse{
		Success:    true,
		Data:       data,
		Count:      &count,
		Pagination: pagination,
	}
}

func ErrorResponse(code, message, field string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   message,
		Code:    code,
		Field:   field,
	}
}
