package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/expense-tracker/backend/internal/apierror"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/repositories"
	"github.com/shopspring/decimal"
)

// CategoryService implements the business rules for categories.
type CategoryService struct {
	categories repositories.CategoryRepository
}

func NewCategoryService(categories repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// AddCategory validates the input and persists a new category.
func (s *CategoryService) AddCategory(ctx context.Context, dto CategoryDTO) Result[CategoryDTO] {
	if msg, ok := validateCategory(dto); !ok {
		return badRequest[CategoryDTO](msg)
	}

	category := dto.model()
	if err := s.categories.Add(ctx, &category); err != nil {
		return serverError[CategoryDTO]()
	}

	return created(newCategoryDTO(category))
}

// UpdateCategory validates the input, then applies name and budget to the
// existing category. Lowering the budget below the current total of the
// category's expenses is rejected.
func (s *CategoryService) UpdateCategory(ctx context.Context, dto CategoryDTO) Result[CategoryDTO] {
	if msg, ok := validateCategory(dto); !ok {
		return badRequest[CategoryDTO](msg)
	}

	category, err := s.categories.GetByID(ctx, dto.ID)
	if err != nil {
		if notFoundErr(err) {
			return notFound[CategoryDTO](apierror.CategoryNotFound(dto.ID))
		}
		return serverError[CategoryDTO]()
	}

	totalExpenses, err := s.categories.TotalExpenses(ctx, dto.ID)
	if err != nil {
		return serverError[CategoryDTO]()
	}

	if totalExpenses.GreaterThan(dto.Budget) {
		return badRequest[CategoryDTO](apierror.CategoryLowerBudgetThanTotalExpenses(dto.Budget, totalExpenses))
	}

	category.Name = dto.Name
	category.Budget = dto.Budget
	if err := s.categories.Update(ctx, &category); err != nil {
		return serverError[CategoryDTO]()
	}

	return ok(newCategoryDTO(category))
}

// DeleteCategory removes a category. Categories that still own expenses
// cannot be deleted, even though the store would cascade.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) Result[struct{}] {
	_, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if notFoundErr(err) {
			return notFound[struct{}](apierror.CategoryNotFound(id))
		}
		return serverError[struct{}]()
	}

	hasExpenses, err := s.categories.ContainsExpenses(ctx, id)
	if err != nil {
		return serverError[struct{}]()
	}
	if hasExpenses {
		return badRequest[struct{}](apierror.CategoryCannotDeleteWithExpenses())
	}

	deleted, err := s.categories.Delete(ctx, id)
	if err != nil {
		return serverError[struct{}]()
	}
	if !deleted {
		return notFound[struct{}](apierror.CategoryNotFound(id))
	}

	return noContent[struct{}]()
}

// GetCategoryByID returns a single category.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) Result[CategoryDTO] {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if notFoundErr(err) {
			return notFound[CategoryDTO](apierror.CategoryNotFound(id))
		}
		return serverError[CategoryDTO]()
	}

	return ok(newCategoryDTO(category))
}

// GetAllCategories returns all categories.
func (s *CategoryService) GetAllCategories(ctx context.Context) Result[[]CategoryDTO] {
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return serverError[[]CategoryDTO]()
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, newCategoryDTO(category))
	}

	return ok(dtos)
}

// validateCategory checks the field-level rules. The first violated rule
// wins, errors are not accumulated.
func validateCategory(dto CategoryDTO) (apierror.ErrorMessage, bool) {
	if strings.TrimSpace(dto.Name) == "" {
		return apierror.CategoryNameCannotBeEmpty(), false
	}

	if length := utf8.RuneCountInString(dto.Name); length > models.CategoryNameMaxLength {
		return apierror.CategoryNameTooLong(models.CategoryNameMaxLength, length), false
	}

	if dto.Budget.LessThanOrEqual(decimal.Zero) {
		return apierror.CategoryBudgetMustBeGreaterThanZero(), false
	}

	return apierror.ErrorMessage{}, true
}
