package domain

import "errors"

var (
	// ErrNoBaseWeight is returned when a food's serving label has no gram/ml amount
	ErrNoBaseWeight = errors.New("ingredient has no determinable base weight")

	// ErrInvalidQuantity is returned for a non-positive ingredient quantity
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrNoTargetMacros is returned when a plan is adjusted before the calculator ran
	ErrNoTargetMacros = errors.New("no target macros available")

	// ErrPlanIncomplete is returned when a plan with unassigned slots is adjusted
	ErrPlanIncomplete = errors.New("every meal slot must have a recipe before adjusting")

	// ErrZeroCaloriePlan is returned when the assigned recipes carry no calories
	ErrZeroCaloriePlan = errors.New("plan has zero calories and cannot be scaled")

	// ErrSlotNotFound is returned for an unknown meal slot id
	ErrSlotNotFound = errors.New("meal slot not found")

	// ErrRecipeNotFound is returned for an unknown or foreign recipe id
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrFoodNotFound is returned for an unknown food item id
	ErrFoodNotFound = errors.New("food item not found")

	// ErrEntryNotFound is returned for an unknown progress entry id
	ErrEntryNotFound = errors.New("progress entry not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidMealCount is returned when the number of meals is outside the configured bounds
	ErrInvalidMealCount = errors.New("number of meals out of range")

	// ErrNotFound is returned by a Store when the key does not exist
	ErrNotFound = errors.New("key not found")

	// ErrUserExists is returned when registering an email that is already taken
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned for an unknown email or a wrong password
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrGoogleAccount is returned when a password login targets a Google account
	ErrGoogleAccount = errors.New("account uses Google sign-in")

	// ErrPasswordAccount is returned when a Google login targets an email/password account
	ErrPasswordAccount = errors.New("account uses email and password")

	// ErrUnauthenticated is returned when no user session is present
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUSDAAPIFailure is returned when USDA API request fails
	ErrUSDAAPIFailure = errors.New("USDA API request failed")

	// ErrProductNotFound is returned when a product cannot be found in USDA database
	ErrProductNotFound = errors.New("product not found in USDA database")

	// ErrLowConfidence is returned when the match confidence is below the threshold
	ErrLowConfidence = errors.New("match confidence below threshold")

	// ErrImportDisabled is returned when no USDA API key is configured
	ErrImportDisabled = errors.New("USDA import is not configured")
)
