package response

import (
	"errors"
	"net/http"

	"imagehost/service"

	"github.com/gin-gonic/gin"
)

// Used by swagger to generate documentation
type Response[T any] struct {
	Code ErrorCode `json:"code"`
	Data T         `json:"data"`
	Msg  string    `json:"msg"`
}

// wrapResponse wraps the response data and sends it back to the client.
// It takes in a Gin context, a message string, data any, and an ErrorCode.
// The function sets the appropriate HTTP status code based on the ErrorCode.
func wrapResponse(c *gin.Context, msg string, data any, code ErrorCode) {
	httpCode := http.StatusOK
	if code != OK {
		httpCode = http.StatusInternalServerError
	}
	c.JSON(httpCode, gin.H{
		"code": code,
		"data": data,
		"msg":  msg,
	})
}

// Success sends a successful response to the client with the provided data.
func Success(c *gin.Context, data any) {
	wrapResponse(c, "", data, OK)
}

// Created sends a 201 response with a Location header pointing at the
// Find endpoint of the created entity.
func Created(c *gin.Context, location string, data any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, gin.H{
		"code": OK,
		"data": data,
		"msg":  "",
	})
}

// NoContent reports a successful update or delete.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response to the client with the specified message and error code.
func Error(c *gin.Context, msg string, errorCode ErrorCode) {
	wrapResponse(c, msg, nil, errorCode)
}

// HTTPError sends an HTTP error response with the specified HTTP code, error message, and error code.
func HTTPError(c *gin.Context, httpCode int, msg string, errorCode ErrorCode) {
	c.JSON(httpCode, gin.H{
		"code": errorCode,
		"data": nil,
		"msg":  msg,
	})
}

// BadRequestError reports failed parameter binding or a route/body id mismatch.
func BadRequestError(c *gin.Context, msg string) {
	HTTPError(c, http.StatusBadRequest, msg, InvalidRequest)
}

// FromError maps a service error onto the wire envelope: NotFoundError
// becomes 404, validation and storage failures become 500 with the service
// message, anything else is a generic 500.
func FromError(c *gin.Context, err error) {
	var (
		notFoundErr   *service.NotFoundError
		validationErr *service.ValidationError
		storageErr    *service.StorageError
	)
	switch {
	case errors.As(err, &notFoundErr):
		HTTPError(c, http.StatusNotFound, notFoundErr.Msg, NotFound)
	case errors.As(err, &validationErr):
		HTTPError(c, http.StatusInternalServerError, validationErr.Msg, ValidationFailed)
	case errors.As(err, &storageErr):
		HTTPError(c, http.StatusInternalServerError, storageErr.Op, StorageFailure)
	default:
		HTTPError(c, http.StatusInternalServerError, err.Error(), NotSpecified)
	}
}
