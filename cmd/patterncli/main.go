// Package main provides the patterncli application entry point.
// patterncli is an interactive shell whose commands and tab completion are driven
// by textual command patterns.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"patterncli/internal/commands"
	"patterncli/internal/commands/builtin"
	"patterncli/internal/completion"
	"patterncli/internal/config"
	"patterncli/internal/logger"
	"patterncli/internal/shell"
	"patterncli/internal/version"
	"patterncli/pkg/cli"
	"patterncli/pkg/clitypes"
)

var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "patterncli",
	Short: "Pattern CLI - pattern-driven interactive shell",
	Long: `patterncli is an interactive shell whose commands are declared as patterns
such as "greet <name> [with <greeting>]". Patterns drive both argument binding and
tab completion.`,
	RunE:          runShell, // Default behavior is to run the interactive shell
	SilenceUsage:  true,
	SilenceErrors: true,
}

// execCmd runs a single command line and exits
var execCmd = &cobra.Command{
	Use:   "exec <command...>",
	Short: "Execute a single command without entering interactive mode",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExec,
}

// batchCmd runs every line of a script file
var batchCmd = &cobra.Command{
	Use:   "batch <script>",
	Short: "Execute a script file in batch mode",
	Long: `Execute every line of a script file as a command. Blank lines and lines
starting with '#' are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetFormattedVersion())
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for input that matches no command and 1 for any other failure.
func exitCode(err error) int {
	var invalid *commands.InvalidCommandError
	if errors.As(err, &invalid) {
		return 2
	}
	return 1
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.String(config.KeyConfig, "", "Path to a YAML config file")
	flags.String(config.KeyPrompt, config.DefaultPrompt, "Interactive prompt")
	flags.String(config.KeyHistoryFile, "", "Persist interactive history to this file")
	flags.String(config.KeyCompletionsFile, "", "YAML file mapping argument names to completion values")

	// Bind flags to viper
	for _, key := range []string{
		config.KeyLogLevel,
		config.KeyLogFile,
		config.KeyConfig,
		config.KeyPrompt,
		config.KeyHistoryFile,
		config.KeyCompletionsFile,
	} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", key, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure logger before any command execution
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if _, err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// newCLI assembles the builtin commands with their default completion values,
// overridden per argument by the configured completion values file.
func newCLI(cfg *config.Config) (*cli.CLI, error) {
	var app *cli.CLI
	cmds := builtin.Commands(func() []clitypes.Command { return app.Commands() })

	app, err := cli.New(cmds, nil,
		cli.WithPrompt(shell.ColorPrompt(os.Stdout, cfg.Prompt)),
		cli.WithHistoryFile(cfg.HistoryFile),
		cli.WithExceptionHandler(shell.NewStyledExceptionHandler()),
	)
	if err != nil {
		return nil, err
	}

	values := builtin.CompletionValues()
	if cfg.CompletionsFile != "" {
		fileValues, err := completion.LoadValuesFile(cfg.CompletionsFile)
		if err != nil {
			return nil, err
		}
		for name, list := range fileValues {
			values[name] = list
		}
		logger.Debug("Loaded completion values", "file", cfg.CompletionsFile, "arguments", len(fileValues))
	}
	if err := app.RegisterValues(values); err != nil {
		return nil, err
	}
	return app, nil
}

func runShell(cmd *cobra.Command, _ []string) error {
	logger.Info("Starting patterncli", "version", version.Version)

	app, err := newCLI(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "patterncli v%s - type 'help' for commands, Ctrl+D to quit.\n", version.Version)
	return app.StartInteractiveMode(cmd.Context(), out)
}

func runExec(cmd *cobra.Command, args []string) error {
	app, err := newCLI(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	return app.Execute(shellquote.Join(args...), cmd.OutOrStdout())
}

func runBatch(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]
	logger.Info("Starting patterncli batch mode", "version", version.Version, "script", scriptPath)

	app, err := newCLI(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}

	script, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer func() {
		if err := script.Close(); err != nil {
			logger.Warn("Failed to close script", "script", scriptPath, "error", err)
		}
	}()

	if err := app.ExecuteScript(cmd.Context(), script, cmd.OutOrStdout()); err != nil {
		logger.Error("Script execution failed", "script", scriptPath, "error", err)
		return fmt.Errorf("script %s: %w", scriptPath, err)
	}

	logger.Info("Script executed successfully", "script", scriptPath)
	return nil
}
