package repositories

import "errors"

// Store-level signals. Anything else returned by a repository is a raw
// driver error the caller must treat as a storage failure.
var (
	ErrIngredientExists   = errors.New("ingredient with this name already exists")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrMealNotFound       = errors.New("meal not found")
	ErrUserExists         = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
)
