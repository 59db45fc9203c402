package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/benvon/task-rules/internal/config"
	"github.com/benvon/task-rules/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	configPath string
	debug      bool
	output     string
}

// NewRootCmd creates the taskrules root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "taskrules",
		Short:         "Task point and due-date rules",
		Long:          "Compute task points, encode and decode due dates, and validate task input before it is sent to the backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML config file (defaults to $TASKRULES_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "Output format: json or yaml (defaults to config)")

	rootCmd.AddCommand(NewPointsCmd(flags))
	rootCmd.AddCommand(NewEncodeCmd(flags))
	rootCmd.AddCommand(NewDecodeCmd(flags))
	rootCmd.AddCommand(NewClassifyCmd(flags))
	rootCmd.AddCommand(NewValidateCmd(flags))
	rootCmd.AddCommand(NewEditCmd(flags))
	rootCmd.AddCommand(NewGroupCmd(flags))

	return rootCmd
}

// runtime is the per-invocation state built from config and flags
type runtime struct {
	cfg    *config.Config
	log    *zap.Logger
	out    io.Writer
	in     io.Reader
	format string
}

func newRuntime(cmd *cobra.Command, flags *globalFlags) (*runtime, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.LoadFile(flags.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	debugMode := cfg.DebugMode || flags.debug

	zapLogger, err := logger.New(cfg.LogFormat, debugMode)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	format := cfg.OutputFormat
	if flags.output != "" {
		format = flags.output
	}
	if format != config.OutputJSON && format != config.OutputYAML {
		return nil, fmt.Errorf("invalid output format: %s (must be 'json' or 'yaml')", format)
	}

	zapLogger.Debug("command_started",
		zap.String("command", cmd.Name()),
		zap.Bool("debug_mode", debugMode),
		zap.String("output_format", format),
	)

	return &runtime{
		cfg:    cfg,
		log:    zapLogger,
		out:    cmd.OutOrStdout(),
		in:     cmd.InOrStdin(),
		format: format,
	}, nil
}

func (r *runtime) close() {
	_ = logger.Sync(r.log)
}

// write encodes v to the command output in the configured format
func (r *runtime) write(v any) error {
	switch r.format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return nil
	}
}

// read decodes a JSON or YAML document from path, or from stdin when path
// is empty or "-".
func (r *runtime) read(path string, v any) error {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(r.in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if err := json.Unmarshal(trimmed, v); err != nil {
			return fmt.Errorf("failed to parse JSON input: %w", err)
		}
		return nil
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse YAML input: %w", err)
	}
	return nil
}

// requireFlag returns an error when a required string flag is empty
func requireFlag(name, value string) error {
	if value == "" {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}
