package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benvon/task-rules/internal/models"
	"github.com/benvon/task-rules/internal/validation"
	"github.com/go-playground/validator/v10"
)

// ValidateTaskInput checks form input and builds the payload sent to the
// backend. Every create and edit path goes through it.
//
// A daily task given a due date is treated as specific. Specific tasks are
// stored as daily with the due date encoded into the description. When
// input.DueDate is empty the first marker already in the description is used.
// Any markers in the description are replaced, so the payload carries at most
// one. Due dates are checked against YYYY-MM-DD only, not the calendar, so a
// record loaded with InputFromTask always validates again. The value is
// derived with ComputePoints unless input.Value overrides it.
//
// Rejected input returns a *ValidationError; when several checks fail the
// title error wins, then priority, category, missing due date, due date
// format and value.
func ValidateTaskInput(input models.TaskInput) (*models.TaskPayload, error) {
	decoded := DecodeDueDate(validation.SanitizeText(input.Description))

	dueDate := strings.TrimSpace(input.DueDate)
	if dueDate == "" {
		dueDate = decoded.DueDate
	}

	normalized := input
	normalized.Title = validation.SanitizeText(input.Title)
	normalized.DueDate = dueDate

	failed := make(map[ErrorKind]bool)
	if err := validation.Validate.Struct(normalized); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("failed to validate task input: %w", err)
		}
		for _, fe := range fieldErrs {
			if sentinel, ok := errorsByField[fe.StructField()]; ok {
				failed[sentinel.Kind] = true
			}
		}
	}

	category := normalized.Category
	if category == models.CategoryDaily && dueDate != "" {
		category = models.CategorySpecific
	}
	if category == models.CategorySpecific && dueDate == "" {
		failed[ErrorKindMissingDueDate] = true
	}

	for _, sentinel := range errorPrecedence {
		if failed[sentinel.Kind] {
			return nil, newValidationError(sentinel)
		}
	}

	if category == models.CategorySpecific {
		category = models.CategoryDaily
	}

	payload := &models.TaskPayload{
		Title:    normalized.Title,
		Category: category,
		Priority: normalized.Priority,
		Value:    ComputePoints(normalized.Priority, category),
	}
	if input.Value != nil {
		payload.Value = *input.Value
	}

	description := decoded.CleanDescription
	if dueDate != "" {
		description = EncodeDueDate(description, dueDate)
	}
	if description != "" {
		payload.Description = &description
	}

	// Should never fail once the checks above pass
	if err := validation.Validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("built invalid task payload: %w", err)
	}

	return payload, nil
}
