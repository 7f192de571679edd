package apierror

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func CategoryNotFound(id uint) ErrorMessage {
	return ErrorMessage{
		Code:    "CATEGORY_NOT_FOUND",
		Message: fmt.Sprintf("Category with id '%d' not found", id),
		Parameters: map[string]any{
			"Id": id,
		},
	}
}

func CategoryNameCannotBeEmpty() ErrorMessage {
	return ErrorMessage{
		Code:    "CATEGORY_NAME_CANNOT_BE_EMPTY",
		Message: "The category name cannot be empty.",
	}
}

func CategoryNameTooLong(maxLength, currentLength int) ErrorMessage {
	return ErrorMessage{
		Code:    "CATEGORY_NAME_TOO_LONG",
		Message: fmt.Sprintf("The category name is too long (%d characters). The maximum allowed length is %d.", currentLength, maxLength),
		Parameters: map[string]any{
			"MaxCharactersLength":     maxLength,
			"CurrentCharactersLength": currentLength,
		},
	}
}

func CategoryBudgetMustBeGreaterThanZero() ErrorMessage {
	return ErrorMessage{
		Code:    "CATEGORY_BUDGET_GREATER_THAN_ZERO",
		Message: "The budget must be greater than zero.",
	}
}

func CategoryLowerBudgetThanTotalExpenses(budget, totalExpenses decimal.Decimal) ErrorMessage {
	return ErrorMessage{
		Code:    "CATEGORY_LOWER_BUDGET_THAN_TOTAL_EXPENSES",
		Message: fmt.Sprintf("New budget '%s' is lower than the current total expenses '%s'. Reduce expenses first.", budget, totalExpenses),
		Parameters: map[string]any{
			"Budget":        budget,
			"TotalExpenses": totalExpenses,
		},
	}
}

func CategoryCannotDeleteWithExpenses() ErrorMessage {
	return ErrorMessage{
		Code:    "CATEGORY_CANNOT_DELETE_WITH_EXPENSES",
		Message: "Cannot delete category assigned to expenses",
	}
}
