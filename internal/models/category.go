package models

import (
	"github.com/shopspring/decimal"
)

// Category is a named budget bucket with a maximum spend limit.
// The sum of the amounts of its expenses must never exceed the budget,
// which is enforced by the service layer.
type Category struct {
	Model
	Name     string          `json:"name"`
	Budget   decimal.Decimal `json:"budget" gorm:"type:DECIMAL(20,8)"`
	Expenses []Expense       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Maximum length for the category name.
const CategoryNameMaxLength = 100
