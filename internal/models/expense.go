package models

import (
	"github.com/shopspring/decimal"
)

// Expense is a monetary charge attributed to exactly one category.
type Expense struct {
	Model
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	CategoryID  uint            `json:"categoryId"`
	Category    Category        `json:"-"`
}

// Maximum length for the expense description.
const ExpenseDescriptionMaxLength = 250
