package models

// Category represents how often a task recurs
type Category string

const (
	CategoryDaily   Category = "daily"
	CategoryWeekly  Category = "weekly"
	CategoryMonthly Category = "monthly"
	// CategorySpecific is a client-only category. The backend stores it as
	// daily with a due-date marker in the description.
	CategorySpecific Category = "specific"
)

// IsBackend reports whether the backend recognizes the category
func (c Category) IsBackend() bool {
	switch c {
	case CategoryDaily, CategoryWeekly, CategoryMonthly:
		return true
	default:
		return false
	}
}

// IsValid reports whether the category is accepted as form input
func (c Category) IsValid() bool {
	return c.IsBackend() || c == CategorySpecific
}

// Label returns the display label for the category
func (c Category) Label() string {
	switch c {
	case CategoryDaily:
		return "Daily"
	case CategoryWeekly:
		return "Weekly"
	case CategoryMonthly:
		return "Monthly"
	case CategorySpecific:
		return "Specific Day"
	default:
		return string(c)
	}
}

// TaskStatus represents the completion status of a task
type TaskStatus string

const (
	TaskStatusIncomplete TaskStatus = "incomplete"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Task is a task record as returned by the backend
type Task struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Category    Category   `json:"category" yaml:"category"`
	Priority    int        `json:"priority" yaml:"priority"`
	Value       int        `json:"value" yaml:"value"`
	Status      TaskStatus `json:"status" yaml:"status"`
}

// IsCompleted reports whether the backend marked the task completed
func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// TaskInput is raw task input from a create or edit form
type TaskInput struct {
	Title       string   `json:"title" yaml:"title" validate:"min=2"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Category    Category `json:"category" yaml:"category" validate:"task_category"`
	Priority    int      `json:"priority" yaml:"priority" validate:"min=0,max=10"`
	DueDate     string   `json:"due_date,omitempty" yaml:"due_date,omitempty" validate:"omitempty,due_date"`
	Value       *int     `json:"value,omitempty" yaml:"value,omitempty" validate:"omitempty,min=0"`
}

// TaskPayload is a validated task ready to be sent to the backend
type TaskPayload struct {
	Title       string   `json:"title" yaml:"title"`
	Description *string  `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category" validate:"backend_category"`
	Priority    int      `json:"priority" yaml:"priority"`
	Value       int      `json:"value" yaml:"value"`
}
