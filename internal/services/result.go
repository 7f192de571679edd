// Package services contains the business logic for categories and expenses.
//
// Every operation returns a Result: data on success, a status
// classification, and a structured error message on failure. Errors are
// propagated explicitly, never thrown through layers.
package services

import (
	"errors"
	"net/http"

	"github.com/expense-tracker/backend/internal/apierror"
	"github.com/expense-tracker/backend/internal/models"
	"gorm.io/gorm"
)

// Result is the uniform outcome of a service operation.
//
// Status holds the HTTP status classification that the API layer maps the
// result to. Error is nil on success.
type Result[T any] struct {
	Data   T
	Status int
	Error  *apierror.ErrorMessage
}

// Success reports whether the operation succeeded.
func (r Result[T]) Success() bool {
	return r.Error == nil
}

func ok[T any](data T) Result[T] {
	return Result[T]{Data: data, Status: http.StatusOK}
}

func created[T any](data T) Result[T] {
	return Result[T]{Data: data, Status: http.StatusCreated}
}

func noContent[T any]() Result[T] {
	return Result[T]{Status: http.StatusNoContent}
}

func badRequest[T any](msg apierror.ErrorMessage) Result[T] {
	return Result[T]{Status: http.StatusBadRequest, Error: &msg}
}

func notFound[T any](msg apierror.ErrorMessage) Result[T] {
	return Result[T]{Status: http.StatusNotFound, Error: &msg}
}

func serverError[T any]() Result[T] {
	msg := apierror.General()
	return Result[T]{Status: http.StatusInternalServerError, Error: &msg}
}

// notFoundErr reports whether err means that the queried record is absent.
func notFoundErr(err error) bool {
	return errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
