package models

import (
	"testing"
)

func TestCategory_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   Category
		backend bool
		valid   bool
	}{
		{"daily", CategoryDaily, true, true},
		{"weekly", CategoryWeekly, true, true},
		{"monthly", CategoryMonthly, true, true},
		{"specific", CategorySpecific, false, true},
		{"invalid", Category("weekend"), false, false},
		{"empty", Category(""), false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.value.IsBackend(); got != tt.backend {
				t.Errorf("Expected IsBackend(%q) to be %v, got %v", tt.value, tt.backend, got)
			}
			if got := tt.value.IsValid(); got != tt.valid {
				t.Errorf("Expected IsValid(%q) to be %v, got %v", tt.value, tt.valid, got)
			}
		})
	}
}

func TestCategory_Label(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value Category
		want  string
	}{
		{CategoryDaily, "Daily"},
		{CategoryWeekly, "Weekly"},
		{CategoryMonthly, "Monthly"},
		{CategorySpecific, "Specific Day"},
		{Category("other"), "other"},
	}

	for _, tt := range tests {
		if got := tt.value.Label(); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestTask_IsCompleted(t *testing.T) {
	t.Parallel()

	if (Task{Status: TaskStatusIncomplete}).IsCompleted() {
		t.Error("Expected incomplete task to report not completed")
	}
	if !(Task{Status: TaskStatusCompleted}).IsCompleted() {
		t.Error("Expected completed task to report completed")
	}
}
