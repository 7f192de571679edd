// Package repositories contains the data access layer.
//
// Each repository exposes CRUD primitives plus the aggregate queries the
// service layer needs for its business rules. Any relational store behind
// gorm satisfies the contracts.
package repositories

import (
	"context"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryRepository is the data access contract for categories.
type CategoryRepository interface {
	GetByID(ctx context.Context, id uint) (models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Add(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error

	// Delete removes the category. It reports whether a row was affected.
	Delete(ctx context.Context, id uint) (bool, error)

	// TotalExpenses returns the sum of all expense amounts for the category.
	TotalExpenses(ctx context.Context, id uint) (decimal.Decimal, error)

	// ContainsExpenses reports whether any expense references the category.
	ContainsExpenses(ctx context.Context, id uint) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a CategoryRepository backed by db.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	return category, err
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Add(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *categoryRepository) TotalExpenses(ctx context.Context, id uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("category_id = ?", id).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *categoryRepository) ContainsExpenses(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("category_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
