package rules

import (
	"github.com/benvon/task-rules/internal/models"
)

// ClassifyCategory returns the display category of a backend task.
// A task whose description carries a due-date marker is specific no matter
// what category is stored. The result must not be written back.
func ClassifyCategory(task models.Task) models.Category {
	if DecodeDueDate(task.Description).HasDueDate() {
		return models.CategorySpecific
	}
	return task.Category
}

// DisplayCategories lists the task tabs in display order
var DisplayCategories = []models.Category{
	models.CategoryDaily,
	models.CategoryWeekly,
	models.CategoryMonthly,
	models.CategorySpecific,
}

// GroupForDisplay groups incomplete tasks by their display category,
// preserving input order. Every entry of DisplayCategories is present in
// the result, even when empty.
func GroupForDisplay(tasks []models.Task) map[models.Category][]models.Task {
	groups := make(map[models.Category][]models.Task, len(DisplayCategories))
	for _, c := range DisplayCategories {
		groups[c] = []models.Task{}
	}

	for _, task := range tasks {
		if task.IsCompleted() {
			continue
		}
		c := ClassifyCategory(task)
		groups[c] = append(groups[c], task)
	}

	return groups
}

// InputFromTask turns a stored task back into form input for editing.
// The due-date marker is lifted out of the description, and a daily task
// that carried one is reported as specific.
func InputFromTask(task models.Task) models.TaskInput {
	decoded := DecodeDueDate(task.Description)

	input := models.TaskInput{
		Title:       task.Title,
		Description: decoded.CleanDescription,
		Category:    task.Category,
		Priority:    task.Priority,
		DueDate:     decoded.DueDate,
	}
	if decoded.HasDueDate() && task.Category == models.CategoryDaily {
		input.Category = models.CategorySpecific
	}

	return input
}
