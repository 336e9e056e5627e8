package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	kwerror "github.com/msto63/kurswerk/foundation/core/error"
	"github.com/msto63/kurswerk/internal/exchange"
)

var (
	convertAmount   string
	convertRate     string
	convertOp       string
	convertDecimals int
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Einmalige Umrechnung ohne TUI",
	Long: `Führt eine einzelne Umrechnung aus und gibt das Ergebnis aus.

Operationen:
  divide    - Betrag / Kurs  (Basis -> Ziel)
  multiply  - Betrag * Kurs  (Ziel -> Basis)
  ratio     - Betrag / Betrag (Kursermittlung)

Beispiele:
  kurswerk convert --amount 50000 --rate 4.80
  kurswerk convert --amount 1000 --rate 4.80 --op multiply
  kurswerk convert --amount 279.50 --rate 58.75 --op ratio --decimals 2`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertAmount, "amount", "a", "", "Erster Operand")
	convertCmd.Flags().StringVarP(&convertRate, "rate", "r", "", "Zweiter Operand")
	convertCmd.Flags().StringVarP(&convertOp, "op", "o", "divide", "Operation (divide, multiply, ratio)")
	convertCmd.Flags().IntVarP(&convertDecimals, "decimals", "d", 0, "Nachkommastellen im Ergebnis")
	convertCmd.MarkFlagRequired("amount")
	convertCmd.MarkFlagRequired("rate")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	result, err := evaluateConvert(convertAmount, convertRate, convertOp, convertDecimals)
	if err != nil {
		printError("Umrechnung fehlgeschlagen", err)
		return err
	}

	fmt.Println(result)
	return nil
}

// evaluateConvert runs one formula over flag-style operands. The inputs
// pass through the same sanitization pipeline the TUI fields use, so
// grouping commas in the input are tolerated.
func evaluateConvert(amount, rate, opName string, decimals int) (string, error) {
	op, ok := exchange.ParseOp(opName)
	if !ok {
		return "", kwerror.Newf("unbekannte Operation %q", opName).
			WithCode(kwerror.CodeInvalidInput)
	}

	rawAmount := exchange.Sanitize(exchange.StripDisplay(amount))
	rawRate := exchange.Sanitize(exchange.StripDisplay(rate))

	if !exchange.ParseAmount(rawAmount).IsValid() || !exchange.ParseAmount(rawRate).IsValid() {
		return "", kwerror.New("beide Operanden müssen gültige Zahlen sein").
			WithCode(kwerror.CodeInvalidInput)
	}

	formula := exchange.Formula{Op: op, Decimals: decimals}
	return formula.Evaluate(rawAmount, rawRate), nil
}
