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

// ExpenseService implements the business rules for expenses.
type ExpenseService struct {
	expenses   repositories.ExpenseRepository
	categories repositories.CategoryRepository
}

func NewExpenseService(expenses repositories.ExpenseRepository, categories repositories.CategoryRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses, categories: categories}
}

// AddExpense validates the input, resolves the referenced category and
// checks that the category's budget is not exceeded before persisting.
func (s *ExpenseService) AddExpense(ctx context.Context, dto ExpenseDTO) Result[ExpenseDetailsDTO] {
	if msg, ok := validateExpense(dto); !ok {
		return badRequest[ExpenseDetailsDTO](msg)
	}

	category, err := s.categories.GetByID(ctx, dto.CategoryID)
	if err != nil {
		if notFoundErr(err) {
			// The category is a referenced foreign entity here, not the
			// primary target, so this is a bad request and not a 404.
			return badRequest[ExpenseDetailsDTO](apierror.CategoryNotFound(dto.CategoryID))
		}
		return serverError[ExpenseDetailsDTO]()
	}

	if r := s.checkBudget(ctx, category, dto, nil); r != nil {
		return *r
	}

	expense := models.Expense{
		Description: dto.Description,
		Amount:      dto.Amount,
		CategoryID:  dto.CategoryID,
		Category:    category,
	}
	if err := s.expenses.Add(ctx, &expense); err != nil {
		return serverError[ExpenseDetailsDTO]()
	}

	return created(newExpenseDetailsDTO(expense))
}

// UpdateExpense validates the input, resolves the target category and
// recomputes the budget check with the expense's own prior amount excluded.
func (s *ExpenseService) UpdateExpense(ctx context.Context, dto ExpenseDTO) Result[ExpenseDetailsDTO] {
	if msg, ok := validateExpense(dto); !ok {
		return badRequest[ExpenseDetailsDTO](msg)
	}

	expense, err := s.expenses.GetByID(ctx, dto.ID)
	if err != nil {
		if notFoundErr(err) {
			return notFound[ExpenseDetailsDTO](apierror.ExpenseNotFound(dto.ID))
		}
		return serverError[ExpenseDetailsDTO]()
	}

	category, err := s.categories.GetByID(ctx, dto.CategoryID)
	if err != nil {
		if notFoundErr(err) {
			return badRequest[ExpenseDetailsDTO](apierror.CategoryNotFound(dto.CategoryID))
		}
		return serverError[ExpenseDetailsDTO]()
	}

	if r := s.checkBudget(ctx, category, dto, &expense); r != nil {
		return *r
	}

	expense.Description = dto.Description
	expense.Amount = dto.Amount
	expense.CategoryID = dto.CategoryID
	expense.Category = category
	if err := s.expenses.Update(ctx, &expense); err != nil {
		return serverError[ExpenseDetailsDTO]()
	}

	return ok(newExpenseDetailsDTO(expense))
}

// DeleteExpense removes an expense. Expenses have no dependents, so
// deletion is unconditional.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uint) Result[struct{}] {
	deleted, err := s.expenses.Delete(ctx, id)
	if err != nil {
		return serverError[struct{}]()
	}
	if !deleted {
		return notFound[struct{}](apierror.ExpenseNotFound(id))
	}

	return noContent[struct{}]()
}

// GetExpenseByID returns a single expense with its category embedded.
func (s *ExpenseService) GetExpenseByID(ctx context.Context, id uint) Result[ExpenseDetailsDTO] {
	expense, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		if notFoundErr(err) {
			return notFound[ExpenseDetailsDTO](apierror.ExpenseNotFound(id))
		}
		return serverError[ExpenseDetailsDTO]()
	}

	return ok(newExpenseDetailsDTO(expense))
}

// GetAllExpenses returns all expenses as flat DTOs.
func (s *ExpenseService) GetAllExpenses(ctx context.Context) Result[[]ExpenseDTO] {
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return serverError[[]ExpenseDTO]()
	}

	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		dtos = append(dtos, newExpenseDTO(expense))
	}

	return ok(dtos)
}

// checkBudget verifies that the category's total expenses stay within its
// budget when the new amount is applied. On update within the same
// category, the expense's prior amount is excluded from the total. A total exactly equal to the budget
// is allowed. It returns nil when the check passes.
func (s *ExpenseService) checkBudget(ctx context.Context, category models.Category, dto ExpenseDTO, existing *models.Expense) *Result[ExpenseDetailsDTO] {
	totalExpenses, err := s.expenses.TotalAmount(ctx, dto.CategoryID)
	if err != nil {
		r := serverError[ExpenseDetailsDTO]()
		return &r
	}

	newTotal := totalExpenses.Add(dto.Amount)
	if existing != nil && existing.CategoryID == dto.CategoryID {
		newTotal = newTotal.Sub(existing.Amount)
	}

	if newTotal.GreaterThan(category.Budget) {
		r := badRequest[ExpenseDetailsDTO](apierror.ExpenseAmountExceedsBudget(dto.Amount, category.Budget, newTotal))
		return &r
	}

	return nil
}

// validateExpense checks the field-level rules. The first violated rule
// wins, errors are not accumulated.
func validateExpense(dto ExpenseDTO) (apierror.ErrorMessage, bool) {
	if dto.Amount.LessThanOrEqual(decimal.Zero) {
		return apierror.ExpenseAmountMustBeGreaterThanZero(), false
	}

	if strings.TrimSpace(dto.Description) == "" {
		return apierror.ExpenseDescriptionCannotBeEmpty(), false
	}

	if length := utf8.RuneCountInString(dto.Description); length > models.ExpenseDescriptionMaxLength {
		return apierror.ExpenseDescriptionTooLong(models.ExpenseDescriptionMaxLength, length), false
	}

	return apierror.ErrorMessage{}, true
}
