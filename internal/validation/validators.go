package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/benvon/task-rules/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate

	// dueDatePattern is the only due-date shape the description marker can carry
	dueDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func init() {
	Validate = validator.New()

	// Register custom validators for enums
	if err := Validate.RegisterValidation("task_category", validateTaskCategory); err != nil {
		panic(fmt.Sprintf("failed to register task_category validator: %v", err))
	}
	if err := Validate.RegisterValidation("backend_category", validateBackendCategory); err != nil {
		panic(fmt.Sprintf("failed to register backend_category validator: %v", err))
	}
	if err := Validate.RegisterValidation("due_date", validateDueDate); err != nil {
		panic(fmt.Sprintf("failed to register due_date validator: %v", err))
	}
}

// validateTaskCategory accepts any category a form may submit, including specific
func validateTaskCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsValid()
}

// validateBackendCategory accepts only the categories the backend stores
func validateBackendCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsBackend()
}

// validateDueDate accepts YYYY-MM-DD strings. The calendar is not checked:
// any date a stored marker carries must survive an edit unchanged.
func validateDueDate(fl validator.FieldLevel) bool {
	return dueDatePattern.MatchString(fl.Field().String())
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	// Trim whitespace
	text = strings.TrimSpace(text)

	// Remove control characters except newline and tab
	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}

// ValidateCategory validates a Category string value
func ValidateCategory(value string) error {
	if models.Category(value).IsValid() {
		return nil
	}
	return fmt.Errorf("invalid category: %s (must be 'daily', 'weekly', 'monthly', or 'specific')", value)
}
