package services

import (
	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

// CategoryDTO is the externally exposed shape of a category.
type CategoryDTO struct {
	ID     uint            `json:"id"`
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
}

func (dto CategoryDTO) model() models.Category {
	return models.Category{
		Name:   dto.Name,
		Budget: dto.Budget,
	}
}

func newCategoryDTO(category models.Category) CategoryDTO {
	return CategoryDTO{
		ID:     category.ID,
		Name:   category.Name,
		Budget: category.Budget,
	}
}
