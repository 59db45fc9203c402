package rules

import (
	"testing"

	"github.com/benvon/task-rules/internal/models"
	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestClassifyCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		task models.Task
		want models.Category
	}{
		{"plain daily", models.Task{Category: models.CategoryDaily, Description: "water plants"}, models.CategoryDaily},
		{"plain weekly", models.Task{Category: models.CategoryWeekly}, models.CategoryWeekly},
		{"plain monthly", models.Task{Category: models.CategoryMonthly}, models.CategoryMonthly},
		{"daily with marker", models.Task{Category: models.CategoryDaily, Description: "Due: 2025-01-10"}, models.CategorySpecific},
		{"weekly with marker", models.Task{Category: models.CategoryWeekly, Description: "x (Due: 2025-01-10)"}, models.CategorySpecific},
		{"invalid marker", models.Task{Category: models.CategoryDaily, Description: "Due: soon"}, models.CategoryDaily},
		{"unknown category kept verbatim", models.Task{Category: models.Category("weekend")}, models.Category("weekend")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyCategory(tt.task); got != tt.want {
				t.Errorf("ClassifyCategory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyCategory_SpecificProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		task := models.Task{
			Title: "task",
			Category: rapid.SampledFrom([]models.Category{
				models.CategoryDaily, models.CategoryWeekly, models.CategoryMonthly,
			}).Draw(rt, "category"),
			Description: EncodeDueDate(
				rapid.StringMatching(`[a-z ]{0,20}`).Draw(rt, "description"),
				rapid.StringMatching(`20[0-9]{2}-(0[1-9]|1[0-2])-(0[1-9]|1[0-9]|2[0-8])`).Draw(rt, "due_date"),
			),
		}
		if got := ClassifyCategory(task); got != models.CategorySpecific {
			rt.Fatalf("ClassifyCategory(%+v) = %q, want specific", task, got)
		}
	})
}

func TestGroupForDisplay(t *testing.T) {
	t.Parallel()

	daily := models.Task{ID: "1", Category: models.CategoryDaily, Status: models.TaskStatusIncomplete}
	weekly := models.Task{ID: "2", Category: models.CategoryWeekly, Status: models.TaskStatusIncomplete}
	specific := models.Task{ID: "3", Category: models.CategoryDaily, Description: "Due: 2025-01-10", Status: models.TaskStatusIncomplete}
	done := models.Task{ID: "4", Category: models.CategoryDaily, Status: models.TaskStatusCompleted}
	doneSpecific := models.Task{ID: "5", Category: models.CategoryDaily, Description: "Due: 2025-01-11", Status: models.TaskStatusCompleted}
	daily2 := models.Task{ID: "6", Category: models.CategoryDaily}

	got := GroupForDisplay([]models.Task{daily, weekly, specific, done, doneSpecific, daily2})
	want := map[models.Category][]models.Task{
		models.CategoryDaily:    {daily, daily2},
		models.CategoryWeekly:   {weekly},
		models.CategoryMonthly:  {},
		models.CategorySpecific: {specific},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupForDisplay mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupForDisplay_Empty(t *testing.T) {
	t.Parallel()

	got := GroupForDisplay(nil)
	for _, c := range DisplayCategories {
		tasks, ok := got[c]
		if !ok {
			t.Errorf("Expected %q tab to be present", c)
		}
		if len(tasks) != 0 {
			t.Errorf("Expected %q tab to be empty, got %d tasks", c, len(tasks))
		}
	}
}

func TestInputFromTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		task models.Task
		want models.TaskInput
	}{
		{
			name: "daily with marker becomes specific",
			task: models.Task{Title: "Call mom", Description: "about dinner (Due: 2025-01-10)", Category: models.CategoryDaily, Priority: 3, Value: 15},
			want: models.TaskInput{Title: "Call mom", Description: "about dinner", Category: models.CategorySpecific, Priority: 3, DueDate: "2025-01-10"},
		},
		{
			name: "weekly with marker keeps its category",
			task: models.Task{Title: "Review", Description: "Due: 2025-01-10", Category: models.CategoryWeekly, Priority: 2},
			want: models.TaskInput{Title: "Review", Category: models.CategoryWeekly, Priority: 2, DueDate: "2025-01-10"},
		},
		{
			name: "plain monthly",
			task: models.Task{Title: "Budget", Description: " plan ", Category: models.CategoryMonthly, Priority: 4},
			want: models.TaskInput{Title: "Budget", Description: "plan", Category: models.CategoryMonthly, Priority: 4},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := InputFromTask(tt.task)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("InputFromTask mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInputFromTask_EditRoundTrip(t *testing.T) {
	t.Parallel()

	value := 15
	created, err := ValidateTaskInput(models.TaskInput{
		Title:       "Call mom",
		Description: "about dinner",
		Category:    models.CategorySpecific,
		Priority:    3,
		DueDate:     "2025-01-10",
	})
	if err != nil {
		t.Fatalf("ValidateTaskInput() error = %v", err)
	}

	stored := models.Task{
		ID:          "abc",
		Title:       created.Title,
		Description: *created.Description,
		Category:    created.Category,
		Priority:    created.Priority,
		Value:       created.Value,
		Status:      models.TaskStatusIncomplete,
	}

	edited, err := ValidateTaskInput(InputFromTask(stored))
	if err != nil {
		t.Fatalf("ValidateTaskInput() on edit error = %v", err)
	}
	if diff := cmp.Diff(created, edited); diff != "" {
		t.Errorf("edit round trip mismatch (-want +got):\n%s", diff)
	}
	if edited.Value != value {
		t.Errorf("Expected value %d, got %d", value, edited.Value)
	}
}
