package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/kurswerk/foundation/core/config"
	kwerror "github.com/msto63/kurswerk/foundation/core/error"
	"github.com/msto63/kurswerk/foundation/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kurswerk",
	Short: "Kurswerk - Interaktiver Währungsrechner",
	Long: `Kurswerk ist ein Währungsrechner für das Terminal.

Vier Rechnungen laufen parallel und aktualisieren sich live:
  - Umrechnung Basiswährung -> Zielwährung
  - Umrechnung Zielwährung -> Basiswährung
  - Direktkurs aus zwei Beträgen
  - Kreuzkurs über eine Referenzwährung

Konfiguration über ~/.kurswerk/config.toml oder KURSWERK_* Umgebungsvariablen.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ~/.kurswerk/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func configDefaults() map[string]interface{} {
	return map[string]interface{}{
		"currency.base":           "PKR",
		"currency.quote":          "PHP",
		"currency.reference":      "USD",
		"display.amount_decimals": 0,
		"display.rate_decimals":   2,
		"ui.theme":                "dark",
		"log.level":               "info",
		"log.file":                "",
	}
}

func configRules() config.ValidationRules {
	return config.ValidationRules{
		"display.amount_decimals": {Type: "int", Min: config.FloatPtr(0), Max: config.FloatPtr(8)},
		"display.rate_decimals":   {Type: "int", Min: config.FloatPtr(0), Max: config.FloatPtr(8)},
		"ui.theme":                {Type: "string", OneOf: []string{"dark", "light"}},
		"log.level":               {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "fatal"}},
	}
}

// loadAppConfig reads the config file if one exists and falls back to
// defaults otherwise. Environment variables with the KURSWERK prefix
// override file values either way.
func loadAppConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".kurswerk", "config.toml")
		}
	}

	var cfg *config.Config
	if path != "" {
		loaded, err := config.LoadWithOptions(path, config.LoadOptions{
			EnvPrefix: "KURSWERK",
			Defaults:  configDefaults(),
		})
		switch {
		case err == nil:
			cfg = loaded
		case kwerror.HasCode(err, kwerror.CodeNotFound) && cfgFile == "":
			// Missing default config is fine, an explicit --config is not
			cfg = config.NewFromDefaults(configDefaults(), "KURSWERK")
		default:
			return nil, err
		}
	} else {
		cfg = config.NewFromDefaults(configDefaults(), "KURSWERK")
	}

	if result := cfg.Validate(configRules()); !result.Valid() {
		return nil, kwerror.New(result.Error()).WithCode(kwerror.CodeInvalidConfig)
	}

	return cfg, nil
}

// newLogger builds the session logger. Logs go to the configured file
// or are discarded so they never bleed into the TUI; with --verbose
// and no file they go to stderr.
func newLogger(cfg *config.Config, toStderr bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		level = log.DefaultLevel()
	}
	if verbose && level > log.LevelDebug {
		level = log.LevelDebug
	}

	logCfg := log.Config{
		Level:  level,
		Format: log.FormatText,
		Name:   "kurswerk",
	}

	cleanup := func() {}
	if file := cfg.GetString("log.file"); file != "" {
		f, err := log.OpenLogFile(file)
		if err != nil {
			return nil, nil, err
		}
		logCfg.Output = f
		cleanup = func() { f.Close() }
	} else if toStderr && verbose {
		logCfg.Output = os.Stderr
	} else {
		logCfg.Output = io.Discard
	}

	logger := log.NewWithConfig(logCfg).WithSessionID(uuid.NewString())
	return logger, cleanup, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
