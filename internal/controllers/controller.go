// Package controllers maps HTTP requests to service calls and service
// results to HTTP responses.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/expense-tracker/backend/internal/apierror"
	"github.com/expense-tracker/backend/internal/repositories"
	"github.com/expense-tracker/backend/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controller holds the services the handlers dispatch to.
type Controller struct {
	Categories *services.CategoryService
	Expenses   *services.ExpenseService
}

// New wires the repositories and services for the database passed in.
func New(db *gorm.DB) Controller {
	categories := repositories.NewCategoryRepository(db)
	expenses := repositories.NewExpenseRepository(db)

	return Controller{
		Categories: services.NewCategoryService(categories),
		Expenses:   services.NewExpenseService(expenses, categories),
	}
}

// respond writes a service result. The result's status classification maps
// directly to the HTTP status, the error payload is the body on failure.
func respond[T any](c *gin.Context, r services.Result[T]) {
	if !r.Success() {
		c.JSON(r.Status, r.Error)
		return
	}

	if r.Status == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(r.Status, r.Data)
}

func invalidID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, apierror.InvalidID())
}

func invalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, apierror.InvalidBody())
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
