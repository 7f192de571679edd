package apierror

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func ExpenseNotFound(id uint) ErrorMessage {
	return ErrorMessage{
		Code:    "EXPENSE_NOT_FOUND",
		Message: fmt.Sprintf("Expense with id '%d' was not found", id),
		Parameters: map[string]any{
			"Id": id,
		},
	}
}

func ExpenseDescriptionCannotBeEmpty() ErrorMessage {
	return ErrorMessage{
		Code:    "EXPENSE_DESCRIPTION_CANNOT_BE_EMPTY",
		Message: "Description cannot be empty.",
	}
}

func ExpenseDescriptionTooLong(maxLength, currentLength int) ErrorMessage {
	return ErrorMessage{
		Code:    "EXPENSE_DESCRIPTION_TOO_LONG",
		Message: fmt.Sprintf("The description is too long (%d characters). The maximum allowed length is %d.", currentLength, maxLength),
		Parameters: map[string]any{
			"MaxCharactersLength":     maxLength,
			"CurrentCharactersLength": currentLength,
		},
	}
}

func ExpenseAmountMustBeGreaterThanZero() ErrorMessage {
	return ErrorMessage{
		Code:    "EXPENSE_AMOUNT_GREATER_THAN_ZERO",
		Message: "Amount must be greater than zero.",
	}
}

func ExpenseAmountExceedsBudget(amount, budget, totalExpenses decimal.Decimal) ErrorMessage {
	return ErrorMessage{
		Code:    "EXPENSE_AMOUNT_EXCEEDS_BUDGET",
		Message: fmt.Sprintf("Amount '%s' exceeds the budget '%s', total expenses '%s'", amount, budget, totalExpenses),
		Parameters: map[string]any{
			"Amount":        amount,
			"Budget":        budget,
			"TotalExpenses": totalExpenses,
		},
	}
}
