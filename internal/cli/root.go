// Package cli implements the proctor command line: offline scoring of a
// single test, roster files, and load simulation against proctord.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	service "github.com/okian/proctor/internal/app"
	"github.com/okian/proctor/pkg/logger"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// configName is looked up as .proctorrc.yaml in the working directory and
// then the home directory.
const configName = ".proctorrc"

var errFormat = errors.New("unknown output format")

type app struct {
	v      *viper.Viper
	out    io.Writer
	format string
	svc    *service.Service
}

// NewRootCommand builds the proctor command tree. Each call returns an
// independent tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), out: os.Stdout}

	root := &cobra.Command{
		Use:   "proctor",
		Short: "Score Marine Corps PFT, CFT and body composition",
		Long: `proctor scores Physical Fitness Tests, Combat Fitness Tests and
height/weight/body-fat checks from the command line, scores whole roster
files, and drives load simulations against a running proctord.

Defaults for any flag may be set in .proctorrc.yaml.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringP("format", "f", FormatText, "Output format (text|json|yaml)")
	root.PersistentFlags().String("config", "", "Config file (default .proctorrc.yaml)")
	root.PersistentFlags().String("log-level", "warn", "Log level (debug|info|warn|error)")

	root.AddCommand(
		a.pftCommand(),
		a.cftCommand(),
		a.bodyCommand(),
		a.bracketsCommand(),
		a.instructionsCommand(),
		a.rosterCommand(),
		a.simulateCommand(),
	)
	return root
}

// Execute runs the command tree. Cobra has already printed any error.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// setup binds the running command's flags, reads the config file and
// prepares logging and the scoring service.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if err := a.readConfig(); err != nil {
		return err
	}

	a.out = cmd.OutOrStdout()
	a.format = a.v.GetString("format")
	switch a.format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", errFormat, a.format)
	}

	logger.SetOutput(cmd.ErrOrStderr())
	if err := logger.SetLevelString(a.v.GetString("log-level")); err != nil {
		return err
	}
	a.svc = service.New(service.WithLogger(logger.Named("cli")))
	return nil
}

func (a *app) readConfig() error {
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	a.v.SetConfigName(configName)
	a.v.SetConfigType("yaml")
	a.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Clean(home))
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}
