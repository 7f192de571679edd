package controllers

import (
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/services"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PUT("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/api/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	apierror.ErrorMessage
// @Failure		404	{object}	apierror.ErrorMessage
// @Param			id	path		uint	true	"ID of the expense"
// @Router			/api/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		invalidID(c)
		return
	}

	if r := co.Expenses.GetExpenseByID(c.Request.Context(), id); !r.Success() {
		c.JSON(r.Status, r.Error)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List expenses
// @Description	Returns all expenses, each referencing its category by id
// @Tags			Expenses
// @Produce		json
// @Success		200	{array}	services.ExpenseDTO
// @Router			/api/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	respond(c, co.Expenses.GetAllExpenses(c.Request.Context()))
}

// @Summary		Get expense
// @Description	Returns a specific expense with its category embedded
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	services.ExpenseDetailsDTO
// @Failure		400	{object}	apierror.ErrorMessage
// @Failure		404	{object}	apierror.ErrorMessage
// @Param			id	path		uint	true	"ID of the expense"
// @Router			/api/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		invalidID(c)
		return
	}

	respond(c, co.Expenses.GetExpenseByID(c.Request.Context(), id))
}

// @Summary		Create expense
// @Description	Creates a new expense. The id in the body is ignored.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	services.ExpenseDetailsDTO
// @Failure		400		{object}	apierror.ErrorMessage
// @Param			expense	body		services.ExpenseDTO	true	"Expense"
// @Router			/api/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var dto services.ExpenseDTO
	if err := httputil.BindData(c, &dto); err != nil {
		invalidBody(c)
		return
	}

	r := co.Expenses.AddExpense(c.Request.Context(), dto)
	if r.Success() {
		c.Header("Location", c.Request.URL.Path+"/"+itoa(r.Data.ID))
	}
	respond(c, r)
}

// @Summary		Update expense
// @Description	Updates the description, amount and category of an existing expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	services.ExpenseDetailsDTO
// @Failure		400		{object}	apierror.ErrorMessage
// @Failure		404		{object}	apierror.ErrorMessage
// @Param			id		path		uint				true	"ID of the expense"
// @Param			expense	body		services.ExpenseDTO	true	"Expense"
// @Router			/api/expenses/{id} [put]
func (co Controller) UpdateExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		invalidID(c)
		return
	}

	var dto services.ExpenseDTO
	if err := httputil.BindData(c, &dto); err != nil {
		invalidBody(c)
		return
	}

	// The id always comes from the path, not the body
	dto.ID = id
	respond(c, co.Expenses.UpdateExpense(c.Request.Context(), dto))
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	apierror.ErrorMessage
// @Failure		404	{object}	apierror.ErrorMessage
// @Param			id	path		uint	true	"ID of the expense"
// @Router			/api/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		invalidID(c)
		return
	}

	respond(c, co.Expenses.DeleteExpense(c.Request.Context(), id))
}
