package commands

import (
	"github.com/benvon/task-rules/internal/models"
	"github.com/benvon/task-rules/internal/rules"
	"github.com/benvon/task-rules/internal/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type pointsResult struct {
	Priority  int             `json:"priority" yaml:"priority"`
	Category  models.Category `json:"category" yaml:"category"`
	Points    int             `json:"points" yaml:"points"`
	Breakdown string          `json:"breakdown" yaml:"breakdown"`
}

// NewPointsCmd creates the points command
func NewPointsCmd(flags *globalFlags) *cobra.Command {
	var (
		priority int
		category string
	)

	cmd := &cobra.Command{
		Use:   "points",
		Short: "Compute the point value of a task",
		Long:  "Compute a task's point value from its priority and category (priority × 5, doubled for weekly, tripled for monthly)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.close()

			c := rt.cfg.DefaultCategory
			if category != "" {
				if err := validation.ValidateCategory(category); err != nil {
					return err
				}
				c = models.Category(category)
			}

			if priority < 0 || priority > 10 {
				rt.log.Warn("priority_out_of_range", zap.Int("priority", priority))
			}

			result := pointsResult{
				Priority:  priority,
				Category:  c,
				Points:    rules.ComputePoints(priority, c),
				Breakdown: rules.PointsBreakdown(priority, c),
			}

			rt.log.Debug("points_computed",
				zap.Int("priority", priority),
				zap.String("category", string(c)),
				zap.Int("points", result.Points),
			)

			return rt.write(result)
		},
	}

	cmd.Flags().IntVarP(&priority, "priority", "p", 0, "Task priority (0-10)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Task category: daily, weekly, monthly, or specific")

	return cmd
}
