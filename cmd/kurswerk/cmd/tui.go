package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/kurswerk/foundation/core/log"
	"github.com/msto63/kurswerk/internal/tui/converter"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet den interaktiven Währungsrechner",
	Long: `Startet die Terminal-Oberfläche von Kurswerk.

Vier Panels rechnen live während der Eingabe:
  - Umrechnung in beide Richtungen
  - Direktkurs aus zwei Beträgen
  - Kreuzkurs über die Referenzwährung

Navigation:
  Tab / Shift+Tab - Feld wechseln
  Ctrl+T          - Theme umschalten (dunkel/hell)
  Ctrl+L          - Alle Felder leeren
  Ctrl+C / Esc    - Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Running kurswerk without a subcommand starts the converter
	rootCmd.RunE = runTUI
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		printError("Konfiguration konnte nicht geladen werden", err)
		return err
	}

	logger, cleanup, err := newLogger(cfg, false)
	if err != nil {
		printError("Logger konnte nicht initialisiert werden", err)
		return err
	}
	defer cleanup()

	// Persisted theme preference wins over the config file
	theme := cfg.GetString("ui.theme")
	if saved := converter.LoadTheme(); saved != "" {
		theme = saved
	}

	model := converter.NewModel(converter.Config{
		BaseCurrency:      cfg.GetString("currency.base"),
		QuoteCurrency:     cfg.GetString("currency.quote"),
		ReferenceCurrency: cfg.GetString("currency.reference"),
		AmountDecimals:    cfg.GetInt("display.amount_decimals"),
		RateDecimals:      cfg.GetInt("display.rate_decimals"),
		Theme:             theme,
		Logger:            logger,
	})

	logger.Info("Kurswerk gestartet",
		log.String("base", cfg.GetString("currency.base")),
		log.String("quote", cfg.GetString("currency.quote")),
		log.String("theme", theme))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logger.ErrorWithErr("TUI abgebrochen", err)
		printError("TUI Fehler", err)
		return err
	}

	return nil
}
