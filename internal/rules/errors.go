package rules

// ErrorKind identifies why task input was rejected
type ErrorKind string

const (
	ErrorKindInvalidTitle    ErrorKind = "invalid_title"
	ErrorKindInvalidPriority ErrorKind = "invalid_priority"
	ErrorKindInvalidCategory ErrorKind = "invalid_category"
	ErrorKindMissingDueDate  ErrorKind = "missing_due_date"
	ErrorKindInvalidDueDate  ErrorKind = "invalid_due_date"
	ErrorKindInvalidValue    ErrorKind = "invalid_value"
)

// ValidationError is a recoverable input error. Message is safe to show to
// the user as-is.
type ValidationError struct {
	Kind    ErrorKind `json:"kind" yaml:"kind"`
	Field   string    `json:"field" yaml:"field"`
	Message string    `json:"message" yaml:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError of the same kind, so callers can use
// errors.Is(err, rules.ErrMissingDueDate).
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidTitle = &ValidationError{
		Kind:    ErrorKindInvalidTitle,
		Field:   "title",
		Message: "Task title must be at least 2 characters.",
	}
	ErrInvalidPriority = &ValidationError{
		Kind:    ErrorKindInvalidPriority,
		Field:   "priority",
		Message: "Priority must be a number between 0 and 10.",
	}
	ErrInvalidCategory = &ValidationError{
		Kind:    ErrorKindInvalidCategory,
		Field:   "category",
		Message: "Category must be daily, weekly, monthly, or specific.",
	}
	ErrMissingDueDate = &ValidationError{
		Kind:    ErrorKindMissingDueDate,
		Field:   "due_date",
		Message: "Please select a due date for specific-day tasks.",
	}
	ErrInvalidDueDate = &ValidationError{
		Kind:    ErrorKindInvalidDueDate,
		Field:   "due_date",
		Message: "Due date must be in YYYY-MM-DD format.",
	}
	ErrInvalidValue = &ValidationError{
		Kind:    ErrorKindInvalidValue,
		Field:   "value",
		Message: "Points value must not be negative.",
	}
)

// errorsByField maps validator struct field names to the error they raise
var errorsByField = map[string]*ValidationError{
	"Title":    ErrInvalidTitle,
	"Priority": ErrInvalidPriority,
	"Category": ErrInvalidCategory,
	"DueDate":  ErrInvalidDueDate,
	"Value":    ErrInvalidValue,
}

// errorPrecedence orders errors when input fails several checks at once
var errorPrecedence = []*ValidationError{
	ErrInvalidTitle,
	ErrInvalidPriority,
	ErrInvalidCategory,
	ErrMissingDueDate,
	ErrInvalidDueDate,
	ErrInvalidValue,
}

// newValidationError returns a copy of a sentinel so callers cannot mutate it
func newValidationError(sentinel *ValidationError) *ValidationError {
	err := *sentinel
	return &err
}
