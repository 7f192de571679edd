package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/expense-tracker/backend/internal/apierror"
	"github.com/expense-tracker/backend/internal/services"
	"github.com/expense-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsExpenseList() {
	r := test.Request(suite.T(), http.MethodOptions, "/api/expenses", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsExpenseDetail() {
	category := suite.createTestCategory("Household", 1500)
	expense := suite.createTestExpense("Detergent", 8, category.ID)

	r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/api/expenses/%d", expense.ID), "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "GET, PUT, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsExpenseDetailNotFound() {
	r := test.Request(suite.T(), http.MethodOptions, "/api/expenses/14", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	category := suite.createTestCategory("Household", 1500)

	r := test.Request(suite.T(), http.MethodPost, "/api/expenses", services.ExpenseDTO{
		Description: "Cleaning supplies",
		Amount:      decimal.NewFromInt(35),
		CategoryID:  category.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var expense services.ExpenseDetailsDTO
	test.DecodeResponse(suite.T(), &r, &expense)
	assert.NotZero(suite.T(), expense.ID)
	assert.Equal(suite.T(), "Cleaning supplies", expense.Description)
	assert.Equal(suite.T(), category.ID, expense.Category.ID)
	assert.Equal(suite.T(), "Household", expense.Category.Name)
	assert.Equal(suite.T(), fmt.Sprintf("/api/expenses/%d", expense.ID), r.Header().Get("Location"))
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "/api/expenses", `{ "description": `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var msg apierror.ErrorMessage
	test.DecodeResponse(suite.T(), &r, &msg)
	assert.Equal(suite.T(), "REQUEST_BODY_INVALID", msg.Code)
}

func (suite *TestSuiteStandard) TestCreateExpenseCategoryMissing() {
	r := test.Request(suite.T(), http.MethodPost, "/api/expenses", services.ExpenseDTO{
		Description: "Orphaned",
		Amount:      decimal.NewFromInt(10),
		CategoryID:  77,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var msg apierror.ErrorMessage
	test.DecodeResponse(suite.T(), &r, &msg)
	assert.Equal(suite.T(), "CATEGORY_NOT_FOUND", msg.Code)
}

func (suite *TestSuiteStandard) TestCreateExpenseExceedsBudget() {
	category := suite.createTestCategory("Home", 1000)
	suite.createTestExpense("Chairs", 400, category.ID)

	r := test.Request(suite.T(), http.MethodPost, "/api/expenses", services.ExpenseDTO{
		Description: "Sofa",
		Amount:      decimal.NewFromInt(700),
		CategoryID:  category.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var msg apierror.ErrorMessage
	test.DecodeResponse(suite.T(), &r, &msg)
	assert.Equal(suite.T(), "EXPENSE_AMOUNT_EXCEEDS_BUDGET", msg.Code)
	assert.Equal(suite.T(), "700", msg.Parameters["Amount"])
	assert.Equal(suite.T(), "1000", msg.Parameters["Budget"])
	assert.Equal(suite.T(), "1100", msg.Parameters["TotalExpenses"])
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	category := suite.createTestCategory("Travel", 1000)
	suite.createTestExpense("Hotel", 300, category.ID)
	suite.createTestExpense("Fuel", 90, category.ID)

	r := test.Request(suite.T(), http.MethodGet, "/api/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses []services.ExpenseDTO
	test.DecodeResponse(suite.T(), &r, &expenses)
	assert.Len(suite.T(), expenses, 2)
	assert.Equal(suite.T(), category.ID, expenses[0].CategoryID)
}

func (suite *TestSuiteStandard) TestGetExpense() {
	category := suite.createTestCategory("Travel", 1000)
	expense := suite.createTestExpense("Train tickets", 120, category.ID)

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/api/expenses/%d", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var fetched services.ExpenseDetailsDTO
	test.DecodeResponse(suite.T(), &r, &fetched)
	assert.Equal(suite.T(), "Train tickets", fetched.Description)
	assert.Equal(suite.T(), "Travel", fetched.Category.Name)
	assert.True(suite.T(), fetched.Category.Budget.Equal(decimal.NewFromInt(1000)))
}

func (suite *TestSuiteStandard) TestGetExpenseNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "/api/expenses/913", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var msg apierror.ErrorMessage
	test.DecodeResponse(suite.T(), &r, &msg)
	assert.Equal(suite.T(), "EXPENSE_NOT_FOUND", msg.Code)
}

func (suite *TestSuiteStandard) TestGetExpenseInvalidID() {
	r := test.Request(suite.T(), http.MethodGet, "/api/expenses/-17", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var msg apierror.ErrorMessage
	test.DecodeResponse(suite.T(), &r, &msg)
	assert.Equal(suite.T(), "REQUEST_ID_INVALID", msg.Code)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	category := suite.createTestCategory("Home", 1000)
	expense := suite.createTestExpense("Chairs", 400, category.ID)

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("/api/expenses/%d", expense.ID), services.ExpenseDTO{
		Description: "Chairs and cushions",
		Amount:      decimal.NewFromInt(600),
		CategoryID:  category.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated services.ExpenseDetailsDTO
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Chairs and cushions", updated.Description)
	assert.True(suite.T(), updated.Amount.Equal(decimal.NewFromInt(600)))
}

func (suite *TestSuiteStandard) TestUpdateExpenseNotFound() {
	category := suite.createTestCategory("Home", 1000)

	r := test.Request(suite.T(), http.MethodPut, "/api/expenses/3944", services.ExpenseDTO{
		Description: "Ghost",
		Amount:      decimal.NewFromInt(10),
		CategoryID:  category.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateExpenseInvalidBody() {
	category := suite.createTestCategory("Home", 1000)
	expense := suite.createTestExpense("Chairs", 400, category.ID)

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("/api/expenses/%d", expense.ID), `definitely not json`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var msg apierror.ErrorMessage
	test.DecodeResponse(suite.T(), &r, &msg)
	assert.Equal(suite.T(), "REQUEST_BODY_INVALID", msg.Code)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	category := suite.createTestCategory("Home", 1000)
	expense := suite.createTestExpense("Chairs", 400, category.ID)

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/api/expenses/%d", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/api/expenses/%d", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteExpenseNotFound() {
	r := test.Request(suite.T(), http.MethodDelete, "/api/expenses/22", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "/api/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var msg apierror.ErrorMessage
	test.DecodeResponse(suite.T(), &r, &msg)
	assert.Equal(suite.T(), "GENERAL_ERROR", msg.Code)
}
