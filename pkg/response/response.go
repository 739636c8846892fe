package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Machine readable error codes carried in Body.Code.
const (
	CodeBadRequest       = "bad_request"
	CodeValidationFailed = "validation_failed"
	CodeNotFound         = "not_found"
	CodeConflict         = "conflict"
	CodeSubmissionFailed = "submission_failed"
	CodeInternal         = "internal_error"
)

// Body is the standard API response envelope.
type Body struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Code      string      `json:"code,omitempty"`
	Retryable bool        `json:"retryable,omitempty"`
}

// OK sends a 200 JSON response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

// Created sends a 201 JSON response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Body{Success: true, Data: data})
}

// Fail sends an error envelope with an explicit status and code.
func Fail(c *gin.Context, status int, code, err string) {
	c.JSON(status, Body{Success: false, Error: err, Code: code})
}

// BadRequest sends 400 with error message.
func BadRequest(c *gin.Context, err string) {
	Fail(c, http.StatusBadRequest, CodeBadRequest, err)
}

// ValidationFailed sends 400 for a request body or query that failed validation.
func ValidationFailed(c *gin.Context, err string) {
	Fail(c, http.StatusBadRequest, CodeValidationFailed, err)
}

// NotFound sends 404.
func NotFound(c *gin.Context, err string) {
	Fail(c, http.StatusNotFound, CodeNotFound, err)
}

// Conflict sends 409.
func Conflict(c *gin.Context, code, err string) {
	Fail(c, http.StatusConflict, code, err)
}

// ServiceUnavailable sends 503 for a failure the client may retry.
func ServiceUnavailable(c *gin.Context, code, err string) {
	c.JSON(http.StatusServiceUnavailable, Body{Success: false, Error: err, Code: code, Retryable: true})
}

// Internal sends 500.
func Internal(c *gin.Context, err string) {
	Fail(c, http.StatusInternalServerError, CodeInternal, err)
}
