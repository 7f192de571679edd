package repositories

import (
	"context"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseRepository is the data access contract for expenses.
type ExpenseRepository interface {
	// GetByID loads the expense with its category preloaded.
	GetByID(ctx context.Context, id uint) (models.Expense, error)
	GetAll(ctx context.Context) ([]models.Expense, error)
	Add(ctx context.Context, expense *models.Expense) error
	Update(ctx context.Context, expense *models.Expense) error

	// Delete removes the expense. It reports whether a row was affected.
	Delete(ctx context.Context, id uint) (bool, error)

	// TotalAmount returns the sum of all expense amounts for a category.
	TotalAmount(ctx context.Context, categoryID uint) (decimal.Decimal, error)
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository returns an ExpenseRepository backed by db.
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) GetByID(ctx context.Context, id uint) (models.Expense, error) {
	var expense models.Expense
	err := r.db.WithContext(ctx).Preload("Category").First(&expense, id).Error
	return expense, err
}

func (r *expenseRepository) GetAll(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) Add(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Expense{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *expenseRepository) TotalAmount(ctx context.Context, categoryID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("category_id = ?", categoryID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
