package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/benvon/task-rules/internal/logger"
	"github.com/benvon/task-rules/internal/rules"
	"github.com/benvon/task-rules/internal/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type encodeResult struct {
	Description string `json:"description" yaml:"description"`
}

// NewEncodeCmd creates the encode command
func NewEncodeCmd(flags *globalFlags) *cobra.Command {
	var (
		description string
		dueDate     string
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Embed a due date into a task description",
		Long:  "Append a \"Due: YYYY-MM-DD\" marker to a description the way specific-day tasks are stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("due-date", dueDate); err != nil {
				return err
			}

			rt, err := newRuntime(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.close()

			if err := validation.Validate.Var(dueDate, "due_date"); err != nil {
				return fmt.Errorf("invalid due date %q: %w", dueDate, rules.ErrInvalidDueDate)
			}

			encoded := rules.EncodeDueDate(description, dueDate)
			rt.log.Debug("due_date_encoded",
				zap.String("due_date", dueDate),
				zap.String("description", logger.SanitizeDescription(encoded)),
			)

			return rt.write(encodeResult{Description: encoded})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVar(&dueDate, "due-date", "", "Due date in YYYY-MM-DD format")

	return cmd
}

// NewDecodeCmd creates the decode command
func NewDecodeCmd(flags *globalFlags) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Extract a due date from a task description",
		Long:  "Split a description into its free text and due date. Reads the description from stdin when --description is not set",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd, flags)
			if err != nil {
				return err
			}
			defer rt.close()

			if !cmd.Flags().Changed("description") {
				data, err := io.ReadAll(rt.in)
				if err != nil {
					return fmt.Errorf("failed to read description: %w", err)
				}
				description = strings.TrimSuffix(string(data), "\n")
			}

			decoded := rules.DecodeDueDate(description)
			rt.log.Debug("due_date_decoded",
				zap.Bool("has_due_date", decoded.HasDueDate()),
				zap.String("due_date", decoded.DueDate),
			)

			return rt.write(decoded)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")

	return cmd
}
