package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bjaus/figconv"
	"github.com/bjaus/figconv/internal/config"
	"github.com/bjaus/figconv/internal/logger"
)

// app is the state shared by subcommands once the root command has loaded
// configuration.
type app struct {
	viewer figconv.Viewer
	log    *slog.Logger
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var cfgFile string

	cmd := &cobra.Command{
		Use:          "figconv",
		Short:        "Read, show and rewrite figures stored as text, JSON or XML",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, cfgFile)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default .figconv.yaml in the working or home directory)")
	flags.String("view", "", `how figures are shown: plain, table, yaml or "go-template=<tmpl>"`)
	flags.String("border", "", "table border: rounded, none, ascii, heavy or double")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")

	cmd.AddCommand(
		newShowCmd(a),
		newSaveCmd(a),
		newConvertCmd(a),
		newFormatsCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, cfgFile string) error {
	opts := config.Options{File: cfgFile, Flags: cmd.Flags()}
	if cfgFile == "" {
		opts.SearchPaths = searchPaths()
	}
	cfg, used, err := config.Load(opts)
	if err != nil {
		return err
	}

	if _, err := logger.Initialize(cmd.ErrOrStderr(), logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		return err
	}
	a.log = logger.Named("cli")
	if used != "" {
		a.log.Debug("config.loaded", "file", used)
	}

	viewer, err := cfg.Viewer()
	if err != nil {
		return err
	}
	a.viewer = viewer
	return nil
}

func searchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Clean(home))
	}
	return paths
}

func (a *app) show(cmd *cobra.Command, fig figconv.Figure) error {
	if err := a.viewer.Show(cmd.OutOrStdout(), fig); err != nil {
		return fmt.Errorf("show figure: %w", err)
	}
	return nil
}
