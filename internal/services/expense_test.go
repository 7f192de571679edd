package services_test

import (
	"context"
	"net/http"
	"strings"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAddExpense() {
	category := suite.createTestCategory("Household", 1500)

	r := suite.expenses.AddExpense(context.Background(), services.ExpenseDTO{
		Description: "Cleaning supplies",
		Amount:      decimal.NewFromInt(35),
		CategoryID:  category.ID,
	})

	assert.Equal(suite.T(), http.StatusCreated, r.Status)
	assert.NotZero(suite.T(), r.Data.ID)
	assert.Equal(suite.T(), "Cleaning supplies", r.Data.Description)
	assert.Equal(suite.T(), category.ID, r.Data.Category.ID)
	assert.Equal(suite.T(), "Household", r.Data.Category.Name)
}

func (suite *TestSuiteStandard) TestAddExpenseAmountNotPositive() {
	category := suite.createTestCategory("Household", 1500)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		r := suite.expenses.AddExpense(context.Background(), services.ExpenseDTO{
			Description: "Free stuff",
			Amount:      amount,
			CategoryID:  category.ID,
		})

		assert.Equal(suite.T(), http.StatusBadRequest, r.Status)
		assert.Equal(suite.T(), "EXPENSE_AMOUNT_GREATER_THAN_ZERO", r.Error.Code)
	}
}

func (suite *TestSuiteStandard) TestAddExpenseEmptyDescription() {
	category := suite.createTestCategory("Household", 1500)

	r := suite.expenses.AddExpense(context.Background(), services.ExpenseDTO{
		Description: "  ",
		Amount:      decimal.NewFromInt(10),
		CategoryID:  category.ID,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, r.Status)
	assert.Equal(suite.T(), "EXPENSE_DESCRIPTION_CANNOT_BE_EMPTY", r.Error.Code)
}

func (suite *TestSuiteStandard) TestAddExpenseDescriptionTooLong() {
	category := suite.createTestCategory("Household", 1500)

	r := suite.expenses.AddExpense(context.Background(), services.ExpenseDTO{
		Description: strings.Repeat("x", models.ExpenseDescriptionMaxLength+1),
		Amount:      decimal.NewFromInt(10),
		CategoryID:  category.ID,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, r.Status)
	assert.Equal(suite.T(), "EXPENSE_DESCRIPTION_TOO_LONG", r.Error.Code)
	assert.Equal(suite.T(), models.ExpenseDescriptionMaxLength, r.Error.Parameters["MaxCharactersLength"])
}

func (suite *TestSuiteStandard) TestAddExpenseValidationOrder() {
	// The amount is checked before the description, the first violation wins.
	r := suite.expenses.AddExpense(context.Background(), services.ExpenseDTO{
		Description: "",
		Amount:      decimal.Zero,
		CategoryID:  1,
	})

	assert.Equal(suite.T(), "EXPENSE_AMOUNT_GREATER_THAN_ZERO", r.Error.Code)
}

func (suite *TestSuiteStandard) TestAddExpenseCategoryMissing() {
	// A missing referenced category is a client error, not a 404.
	r := suite.expenses.AddExpense(context.Background(), services.ExpenseDTO{
		Description: "Orphaned",
		Amount:      decimal.NewFromInt(10),
		CategoryID:  77,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, r.Status)
	assert.Equal(suite.T(), "CATEGORY_NOT_FOUND", r.Error.Code)
	assert.Equal(suite.T(), uint(77), r.Error.Parameters["Id"])
}

func (suite *TestSuiteStandard) TestAddExpenseExceedsBudget() {
	category := suite.createTestCategory("Home", 1000)
	suite.createTestExpense("Chairs", 400, category.ID)

	r := suite.expenses.AddExpense(context.Background(), services.ExpenseDTO{
		Description: "Sofa",
		Amount:      decimal.NewFromInt(700),
		CategoryID:  category.ID,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, r.Status)
	assert.Equal(suite.T(), "EXPENSE_AMOUNT_EXCEEDS_BUDGET", r.Error.Code)
	assert.True(suite.T(), r.Error.Parameters["Amount"].(decimal.Decimal).Equal(decimal.NewFromInt(700)))
	assert.True(suite.T(), r.Error.Parameters["Budget"].(decimal.Decimal).Equal(decimal.NewFromInt(1000)))
	assert.True(suite.T(), r.Error.Parameters["TotalExpenses"].(decimal.Decimal).Equal(decimal.NewFromInt(1100)))

	// The rejected expense is not persisted.
	all := suite.expenses.GetAllExpenses(context.Background())
	assert.Len(suite.T(), all.Data, 1)
}

func (suite *TestSuiteStandard) TestAddExpenseEqualToBudget() {
	category := suite.createTestCategory("Home", 1000)
	suite.createTestExpense("Chairs", 400, category.ID)

	r := suite.expenses.AddExpense(context.Background(), services.ExpenseDTO{
		Description: "Sofa",
		Amount:      decimal.NewFromInt(600),
		CategoryID:  category.ID,
	})

	assert.True(suite.T(), r.Success(), "spending exactly up to the budget is allowed")
}

func (suite *TestSuiteStandard) TestGetExpenseByID() {
	category := suite.createTestCategory("Travel", 1000)
	expense := suite.createTestExpense("Train tickets", 120, category.ID)

	r := suite.expenses.GetExpenseByID(context.Background(), expense.ID)

	assert.Equal(suite.T(), http.StatusOK, r.Status)
	assert.Equal(suite.T(), "Train tickets", r.Data.Description)
	assert.Equal(suite.T(), category.ID, r.Data.Category.ID)
	assert.Equal(suite.T(), "Travel", r.Data.Category.Name)
	assert.True(suite.T(), r.Data.Category.Budget.Equal(decimal.NewFromInt(1000)))
}

func (suite *TestSuiteStandard) TestGetExpenseByIDNotFound() {
	r := suite.expenses.GetExpenseByID(context.Background(), 913)

	assert.Equal(suite.T(), http.StatusNotFound, r.Status)
	assert.Equal(suite.T(), "EXPENSE_NOT_FOUND", r.Error.Code)
	assert.Equal(suite.T(), uint(913), r.Error.Parameters["Id"])
}

func (suite *TestSuiteStandard) TestGetAllExpenses() {
	category := suite.createTestCategory("Travel", 1000)
	suite.createTestExpense("Hotel", 300, category.ID)
	suite.createTestExpense("Fuel", 90, category.ID)

	r := suite.expenses.GetAllExpenses(context.Background())

	assert.Equal(suite.T(), http.StatusOK, r.Status)
	assert.Len(suite.T(), r.Data, 2)
	assert.Equal(suite.T(), category.ID, r.Data[0].CategoryID)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	category := suite.createTestCategory("Home", 1000)
	expense := suite.createTestExpense("Chairs", 400, category.ID)

	// Raising the amount must exclude the expense's own prior amount from
	// the budget check: 400 -> 600 leaves the total at 600 <= 1000.
	r := suite.expenses.UpdateExpense(context.Background(), services.ExpenseDTO{
		ID:          expense.ID,
		Description: "Chairs and cushions",
		Amount:      decimal.NewFromInt(600),
		CategoryID:  category.ID,
	})

	assert.Equal(suite.T(), http.StatusOK, r.Status)
	assert.Equal(suite.T(), "Chairs and cushions", r.Data.Description)
	assert.True(suite.T(), r.Data.Amount.Equal(decimal.NewFromInt(600)))
}

func (suite *TestSuiteStandard) TestUpdateExpenseExceedsBudget() {
	category := suite.createTestCategory("Home", 1000)
	suite.createTestExpense("Chairs", 400, category.ID)
	expense := suite.createTestExpense("Table", 300, category.ID)

	r := suite.expenses.UpdateExpense(context.Background(), services.ExpenseDTO{
		ID:          expense.ID,
		Description: "Table",
		Amount:      decimal.NewFromInt(700),
		CategoryID:  category.ID,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, r.Status)
	assert.Equal(suite.T(), "EXPENSE_AMOUNT_EXCEEDS_BUDGET", r.Error.Code)
	assert.True(suite.T(), r.Error.Parameters["TotalExpenses"].(decimal.Decimal).Equal(decimal.NewFromInt(1100)))

	// The stored amount is untouched.
	stored := suite.expenses.GetExpenseByID(context.Background(), expense.ID)
	assert.True(suite.T(), stored.Data.Amount.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestUpdateExpenseNotFound() {
	category := suite.createTestCategory("Home", 1000)

	r := suite.expenses.UpdateExpense(context.Background(), services.ExpenseDTO{
		ID:          3944,
		Description: "Ghost",
		Amount:      decimal.NewFromInt(10),
		CategoryID:  category.ID,
	})

	assert.Equal(suite.T(), http.StatusNotFound, r.Status)
	assert.Equal(suite.T(), "EXPENSE_NOT_FOUND", r.Error.Code)
}

func (suite *TestSuiteStandard) TestUpdateExpenseCategoryMissing() {
	category := suite.createTestCategory("Home", 1000)
	expense := suite.createTestExpense("Chairs", 400, category.ID)

	r := suite.expenses.UpdateExpense(context.Background(), services.ExpenseDTO{
		ID:          expense.ID,
		Description: "Chairs",
		Amount:      decimal.NewFromInt(400),
		CategoryID:  6160,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, r.Status)
	assert.Equal(suite.T(), "CATEGORY_NOT_FOUND", r.Error.Code)
}

func (suite *TestSuiteStandard) TestUpdateExpenseMoveToOtherCategory() {
	source := suite.createTestCategory("Home", 1000)
	target := suite.createTestCategory("Office", 500)
	expense := suite.createTestExpense("Desk", 450, source.ID)

	r := suite.expenses.UpdateExpense(context.Background(), services.ExpenseDTO{
		ID:          expense.ID,
		Description: "Desk",
		Amount:      decimal.NewFromInt(450),
		CategoryID:  target.ID,
	})

	assert.Equal(suite.T(), http.StatusOK, r.Status)
	assert.Equal(suite.T(), target.ID, r.Data.Category.ID)
}

func (suite *TestSuiteStandard) TestUpdateExpenseMoveExceedsTargetBudget() {
	source := suite.createTestCategory("Home", 1000)
	target := suite.createTestCategory("Snacks", 100)
	expense := suite.createTestExpense("Desk", 450, source.ID)

	// The prior amount only counts against the source category, so the
	// full amount is checked against the target's budget.
	r := suite.expenses.UpdateExpense(context.Background(), services.ExpenseDTO{
		ID:          expense.ID,
		Description: "Desk",
		Amount:      decimal.NewFromInt(450),
		CategoryID:  target.ID,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, r.Status)
	assert.Equal(suite.T(), "EXPENSE_AMOUNT_EXCEEDS_BUDGET", r.Error.Code)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	category := suite.createTestCategory("Home", 1000)
	expense := suite.createTestExpense("Chairs", 400, category.ID)

	r := suite.expenses.DeleteExpense(context.Background(), expense.ID)
	assert.Equal(suite.T(), http.StatusNoContent, r.Status)

	lookup := suite.expenses.GetExpenseByID(context.Background(), expense.ID)
	assert.Equal(suite.T(), http.StatusNotFound, lookup.Status)
}

func (suite *TestSuiteStandard) TestDeleteExpenseNotFound() {
	r := suite.expenses.DeleteExpense(context.Background(), 22)

	assert.Equal(suite.T(), http.StatusNotFound, r.Status)
	assert.Equal(suite.T(), "EXPENSE_NOT_FOUND", r.Error.Code)
}

func (suite *TestSuiteStandard) TestExpenseDBClosed() {
	sqlDB, _ := models.DB.DB()
	sqlDB.Close()

	r := suite.expenses.GetAllExpenses(context.Background())

	assert.Equal(suite.T(), http.StatusInternalServerError, r.Status)
	assert.Equal(suite.T(), "GENERAL_ERROR", r.Error.Code)
}
