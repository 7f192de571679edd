package services

import (
	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ExpenseDTO is the flat expense shape, referencing its category by id.
type ExpenseDTO struct {
	ID          uint            `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  uint            `json:"categoryId"`
}

// ExpenseDetailsDTO embeds the owning category's data instead of its id.
type ExpenseDetailsDTO struct {
	ID          uint            `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    CategoryDTO     `json:"category"`
}

func newExpenseDTO(expense models.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          expense.ID,
		Description: expense.Description,
		Amount:      expense.Amount,
		CategoryID:  expense.CategoryID,
	}
}

func newExpenseDetailsDTO(expense models.Expense) ExpenseDetailsDTO {
	// When the relation is not loaded, embed a placeholder category that
	// only carries the id.
	category := CategoryDTO{ID: expense.CategoryID, Budget: decimal.Zero}
	if expense.Category.ID != 0 {
		category = newCategoryDTO(expense.Category)
	}

	return ExpenseDetailsDTO{
		ID:          expense.ID,
		Description: expense.Description,
		Amount:      expense.Amount,
		Category:    category,
	}
}
