package cmd

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	kwerror "github.com/msto63/kurswerk/foundation/core/error"
	"github.com/msto63/kurswerk/internal/tui/converter"
)

func TestDefaultConfigResolution(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfgFile = ""

	cfg, err := loadAppConfig()
	if err != nil {
		t.Fatalf("loadAppConfig() error = %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"currency.base", "PKR"},
		{"currency.quote", "PHP"},
		{"currency.reference", "USD"},
		{"ui.theme", "dark"},
	}
	for _, tt := range tests {
		if got := cfg.GetString(tt.key); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
		if !cfg.Has(tt.key) {
			t.Errorf("Has(%s) = false, want true", tt.key)
		}
	}

	if got := cfg.GetInt("display.amount_decimals"); got != 0 {
		t.Errorf("display.amount_decimals = %d, want 0", got)
	}
	if got := cfg.GetInt("display.rate_decimals"); got != 2 {
		t.Errorf("display.rate_decimals = %d, want 2", got)
	}
}

func TestDefaultConfigEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("KURSWERK_CURRENCY_BASE", "EUR")
	cfgFile = ""

	cfg, err := loadAppConfig()
	if err != nil {
		t.Fatalf("loadAppConfig() error = %v", err)
	}

	if got := cfg.GetString("currency.base"); got != "EUR" {
		t.Errorf("currency.base = %q, want EUR (env override)", got)
	}
}

func TestEvaluateConvert(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		rate     string
		op       string
		decimals int
		want     string
	}{
		{"divide", "50000", "4.80", "divide", 0, "10,417"},
		{"divide two decimals", "50000", "4.80", "divide", 2, "10,416.67"},
		{"multiply", "1000", "4.80", "multiply", 0, "4,800"},
		{"ratio", "279.50", "58.75", "ratio", 2, "4.76"},
		{"grouped input tolerated", "50,000", "4.80", "divide", 0, "10,417"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluateConvert(tt.amount, tt.rate, tt.op, tt.decimals)
			if err != nil {
				t.Fatalf("evaluateConvert() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("evaluateConvert() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvaluateConvertRejectsBadInput(t *testing.T) {
	if _, err := evaluateConvert("50000", "4.80", "modulo", 0); !kwerror.HasCode(err, kwerror.CodeInvalidInput) {
		t.Errorf("unknown op error = %v, want INVALID_INPUT", err)
	}
	if _, err := evaluateConvert("", "4.80", "divide", 0); !kwerror.HasCode(err, kwerror.CodeInvalidInput) {
		t.Errorf("empty operand error = %v, want INVALID_INPUT", err)
	}
	if _, err := evaluateConvert("abc", "4.80", "divide", 0); !kwerror.HasCode(err, kwerror.CodeInvalidInput) {
		t.Errorf("garbage operand error = %v, want INVALID_INPUT", err)
	}
}

// The one-shot command and the TUI must print the same string for the
// same inputs.
func TestConvertMatchesTUIRendering(t *testing.T) {
	m := converter.NewModel(converter.Config{
		BaseCurrency:      "PKR",
		QuoteCurrency:     "PHP",
		ReferenceCurrency: "USD",
		AmountDecimals:    0,
		RateDecimals:      2,
		Theme:             "dark",
	})

	var model tea.Model = m
	typeInto := func(text string) {
		for _, r := range text {
			model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
	typeInto("50000")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeInto("4.80")

	tui := model.(converter.Model).PanelResult(0)

	cli, err := evaluateConvert("50000", "4.80", "divide", 0)
	if err != nil {
		t.Fatalf("evaluateConvert() error = %v", err)
	}

	if cli != tui {
		t.Errorf("convert output %q differs from TUI result %q", cli, tui)
	}
}
