// Package rules holds the task point and due-date rules shared by every
// task create, edit and listing path. All functions are pure.
package rules

import (
	"fmt"

	"github.com/benvon/task-rules/internal/models"
)

// PointsPerPriority is the base number of points awarded per priority level
const PointsPerPriority = 5

// CategoryMultiplier returns the point multiplier for a category.
// Unknown and client-only categories score like daily tasks.
func CategoryMultiplier(category models.Category) int {
	switch category {
	case models.CategoryWeekly:
		return 2
	case models.CategoryMonthly:
		return 3
	default:
		return 1
	}
}

// ComputePoints derives a task's point value from its priority and category.
// The priority is not range checked; callers validate input first.
func ComputePoints(priority int, category models.Category) int {
	return priority * PointsPerPriority * CategoryMultiplier(category)
}

// PointsBreakdown explains how ComputePoints arrived at its value,
// e.g. "Priority (4) × 5 × 3 (Monthly)".
func PointsBreakdown(priority int, category models.Category) string {
	breakdown := fmt.Sprintf("Priority (%d) × %d", priority, PointsPerPriority)
	if m := CategoryMultiplier(category); m > 1 {
		breakdown += fmt.Sprintf(" × %d (%s)", m, category.Label())
	}
	return breakdown
}
