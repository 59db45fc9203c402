package commands

import (
	"github.com/benvon/task-rules/internal/models"
	"github.com/benvon/task-rules/internal/rules"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type classifiedTask struct {
	ID              string          `json:"id" yaml:"id"`
	Title           string          `json:"title" yaml:"title"`
	StoredCategory  models.Category `json:"stored_category" yaml:"stored_category"`
	DisplayCategory models.Category `json:"display_category" yaml:"display_category"`
}

type displayTab struct {
	Category models.Category `json:"category" yaml:"category"`
	Label    string          `json:"label" yaml:"label"`
	Tasks    []models.Task   `json:"tasks" yaml:"tasks"`
}

// NewClassifyCmd creates the classify command
func NewClassifyCmd(flags *globalFlags) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Report the display category of backend tasks",
		Long:  "Read a list of backend task records and report the display category of each. Tasks carrying a due date are specific",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.close()

			var tasks []models.Task
			if err := rt.read(file, &tasks); err != nil {
				return err
			}

			results := make([]classifiedTask, 0, len(tasks))
			for _, task := range tasks {
				results = append(results, classifiedTask{
					ID:              task.ID,
					Title:           task.Title,
					StoredCategory:  task.Category,
					DisplayCategory: rules.ClassifyCategory(task),
				})
			}

			rt.log.Debug("tasks_classified", zap.Int("count", len(results)))

			return rt.write(results)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON or YAML file with a list of tasks (- for stdin)")

	return cmd
}

// NewGroupCmd creates the group command
func NewGroupCmd(flags *globalFlags) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "group",
		Short: "Group incomplete tasks into display tabs",
		Long:  "Read a list of backend task records and group the incomplete ones into daily, weekly, monthly, and specific-day tabs",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.close()

			var tasks []models.Task
			if err := rt.read(file, &tasks); err != nil {
				return err
			}

			groups := rules.GroupForDisplay(tasks)

			tabs := make([]displayTab, 0, len(rules.DisplayCategories))
			for _, c := range rules.DisplayCategories {
				tabs = append(tabs, displayTab{Category: c, Label: c.Label(), Tasks: groups[c]})
			}
			// Tasks with an unknown category have no tab
			for c, grouped := range groups {
				if !c.IsValid() {
					rt.log.Warn("unknown_task_category",
						zap.String("category", string(c)),
						zap.Int("count", len(grouped)),
					)
				}
			}

			rt.log.Debug("tasks_grouped", zap.Int("count", len(tasks)))

			return rt.write(tabs)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON or YAML file with a list of tasks (- for stdin)")

	return cmd
}

// NewEditCmd creates the edit command
func NewEditCmd(flags *globalFlags) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Turn a backend task back into form input",
		Long:  "Read one backend task record and print the form input used to edit it, with any due date lifted out of the description",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.close()

			var task models.Task
			if err := rt.read(file, &task); err != nil {
				return err
			}

			input := rules.InputFromTask(task)
			rt.log.Debug("task_loaded_for_edit",
				zap.String("task_id", task.ID),
				zap.String("category", string(input.Category)),
			)

			return rt.write(input)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON or YAML file with one task (- for stdin)")

	return cmd
}
