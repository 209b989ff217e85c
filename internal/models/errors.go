package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrUsernameNotUnique = errors.New("this username is already taken")

	ErrCategoryNotUnique      = errors.New("a category with this name and type already exists")
	ErrCategoryTypeInvalid    = errors.New("the category type must be one of 'income' or 'expense'")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be one of 'income' or 'expense'")
	ErrAmountNegative         = errors.New("the amount must not be negative")

	ErrBudgetNotUnique        = errors.New("a budget for this category and date range already exists")
	ErrBudgetCategoryRequired = errors.New("the categoryId must be set for a budget")
)
