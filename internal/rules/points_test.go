package rules

import (
	"testing"

	"github.com/benvon/task-rules/internal/models"
	"pgregory.net/rapid"
)

func TestComputePoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		priority int
		category models.Category
		want     int
	}{
		{"monthly priority 4", 4, models.CategoryMonthly, 60},
		{"daily priority 3", 3, models.CategoryDaily, 15},
		{"weekly priority 10", 10, models.CategoryWeekly, 100},
		{"zero priority", 0, models.CategoryMonthly, 0},
		{"specific scores as daily", 2, models.CategorySpecific, 10},
		{"unknown category scores as daily", 2, models.Category("weekend"), 10},
		{"out of range priority is not clamped", 12, models.CategoryDaily, 60},
		{"negative priority is multiplied", -1, models.CategoryWeekly, -10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ComputePoints(tt.priority, tt.category); got != tt.want {
				t.Errorf("ComputePoints(%d, %q) = %d, want %d", tt.priority, tt.category, got, tt.want)
			}
		})
	}
}

func TestComputePoints_Property(t *testing.T) {
	multipliers := map[models.Category]int{
		models.CategoryDaily:   5,
		models.CategoryWeekly:  10,
		models.CategoryMonthly: 15,
	}

	rapid.Check(t, func(rt *rapid.T) {
		priority := rapid.IntRange(0, 10).Draw(rt, "priority")
		category := rapid.SampledFrom([]models.Category{
			models.CategoryDaily, models.CategoryWeekly, models.CategoryMonthly,
		}).Draw(rt, "category")

		got := ComputePoints(priority, category)
		if want := priority * multipliers[category]; got != want {
			rt.Fatalf("ComputePoints(%d, %q) = %d, want %d", priority, category, got, want)
		}
		if got < 0 {
			rt.Fatalf("ComputePoints(%d, %q) = %d, want non-negative", priority, category, got)
		}
	})
}

func TestPointsBreakdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		priority int
		category models.Category
		want     string
	}{
		{4, models.CategoryMonthly, "Priority (4) × 5 × 3 (Monthly)"},
		{2, models.CategoryWeekly, "Priority (2) × 5 × 2 (Weekly)"},
		{7, models.CategoryDaily, "Priority (7) × 5"},
		{7, models.CategorySpecific, "Priority (7) × 5"},
	}

	for _, tt := range tests {
		if got := PointsBreakdown(tt.priority, tt.category); got != tt.want {
			t.Errorf("PointsBreakdown(%d, %q) = %q, want %q", tt.priority, tt.category, got, tt.want)
		}
	}
}
