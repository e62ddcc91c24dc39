package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/rentsplit/internal/config"
	"github.com/mmynk/rentsplit/internal/metrics"
	"github.com/mmynk/rentsplit/internal/report"
	"github.com/mmynk/rentsplit/internal/service"
	"github.com/mmynk/rentsplit/internal/storage"
	"github.com/mmynk/rentsplit/internal/storage/jsonfile"
	"github.com/mmynk/rentsplit/internal/storage/sqlite"
	"github.com/mmynk/rentsplit/pkg/logging"
)

func run(cmd *cobra.Command, level report.Level) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	source, err := openSource(cfg.Input)
	if err != nil {
		return err
	}
	defer source.Close()
	slog.Debug("Source opened", "source", cfg.Input.Source, "path", cfg.Input.Path)

	recorder := metrics.New()
	rep, err := service.NewSettlementService(source, recorder).Run(cmd.Context(), level)
	if err != nil {
		return err
	}

	if err := report.WriteFile(cfg.Output.Path, rep); err != nil {
		return err
	}
	slog.Info("Report written", "path", cfg.Output.Path)

	if cfg.Output.Stdout {
		if err := report.Write(cmd.OutOrStdout(), rep); err != nil {
			return err
		}
	}

	if cfg.Metrics.Textfile != "" {
		if err := recorder.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	strFlags := map[string]*string{
		"source":       &cfg.Input.Source,
		"input":        &cfg.Input.Path,
		"output":       &cfg.Output.Path,
		"log-level":    &cfg.Log.Level,
		"log-format":   &cfg.Log.Format,
		"metrics-file": &cfg.Metrics.Textfile,
	}
	for name, dst := range strFlags {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	if flags.Changed("stdout") {
		cfg.Output.Stdout, _ = flags.GetBool("stdout")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func openSource(in config.InputConfig) (storage.Source, error) {
	switch in.Source {
	case config.SourceSQLite:
		return sqlite.Open(in.Path)
	default:
		return jsonfile.New(in.Path), nil
	}
}
