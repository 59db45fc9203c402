package commands

import (
	"errors"

	"github.com/benvon/task-rules/internal/logger"
	"github.com/benvon/task-rules/internal/models"
	"github.com/benvon/task-rules/internal/rules"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewValidateCmd creates the validate command
func NewValidateCmd(flags *globalFlags) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate task input and print the backend payload",
		Long:  "Read task form input, validate it, and print the payload to send to the backend. Input without a category uses the configured default",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.close()

			var input models.TaskInput
			if err := rt.read(file, &input); err != nil {
				return err
			}
			if input.Category == "" {
				input.Category = rt.cfg.DefaultCategory
			}

			payload, err := rules.ValidateTaskInput(input)
			if err != nil {
				var verr *rules.ValidationError
				if errors.As(err, &verr) {
					rt.log.Info("task_input_rejected",
						zap.String("kind", string(verr.Kind)),
						zap.String("field", verr.Field),
						zap.String("title", logger.SanitizeTitle(input.Title)),
					)
				}
				return err
			}

			rt.log.Info("task_input_validated",
				zap.String("title", logger.SanitizeTitle(payload.Title)),
				zap.String("category", string(payload.Category)),
				zap.Int("priority", payload.Priority),
				zap.Int("value", payload.Value),
			)

			return rt.write(payload)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON or YAML file with task input (- for stdin)")

	return cmd
}
