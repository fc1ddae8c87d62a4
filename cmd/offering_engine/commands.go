package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"frizo/offering_engine/internal/offering"
	"frizo/offering_engine/internal/version"
)

var (
	calcAmount     string
	calcAccredited bool
	calcJSON       bool

	tiersAccredited bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate shares for an investment amount",
	Long: `Prints the base, bonus and total shares an amount buys, with the
effective price per share.

Example:
  offering_engine calc --amount 25000
  offering_engine calc --amount 200000 --accredited --json`,
	RunE: runCalc,
}

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the bonus tier table",
	RunE:  runTiers,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

func init() {
	calcCmd.Flags().StringVar(&calcAmount, "amount", offering.DefaultAmount.String(), "Investment amount in dollars")
	calcCmd.Flags().BoolVar(&calcAccredited, "accredited", false, "Use the accredited investor tier table")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Print the calculation as JSON")

	tiersCmd.Flags().BoolVar(&tiersAccredited, "accredited", false, "Show the accredited investor tier table")
}

func runCalc(cmd *cobra.Command, _ []string) error {
	amount, err := decimal.NewFromString(calcAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", calcAmount, err)
	}

	calc, err := offering.Calculate(amount, calcAccredited)
	if err != nil {
		return err
	}
	tier, err := offering.ResolveTier(amount, calcAccredited)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if calcJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(calc)
	}

	display := calc.GetDisplayInfo()
	fmt.Fprintf(out, "Investment:      %s\n", display["total_investment"])
	fmt.Fprintf(out, "Tier:            %s (%d%% bonus)\n", tier.Label, calc.BonusPercentage)
	fmt.Fprintf(out, "Base shares:     %s\n", display["base_shares"])
	fmt.Fprintf(out, "Bonus shares:    %s\n", display["bonus_shares"])
	fmt.Fprintf(out, "Total shares:    %s\n", display["total_shares"])
	fmt.Fprintf(out, "Effective price: %s (list %s)\n", display["effective_price"], display["share_price"])
	if amount.LessThan(offering.MinimumInvestment) {
		fmt.Fprintf(out, "Note: below the %s minimum investment\n", offering.FormatCurrency(offering.MinimumInvestment))
	}
	return nil
}

func runTiers(cmd *cobra.Command, _ []string) error {
	printTiers(cmd.OutOrStdout(), tiersAccredited)
	return nil
}

func printTiers(out io.Writer, accredited bool) {
	kind := "Non-accredited"
	if accredited {
		kind = "Accredited"
	}
	fmt.Fprintf(out, "%s tiers (share price %s)\n", kind, offering.FormatCurrency(offering.SharePrice))
	fmt.Fprintf(out, "%-14s %14s %7s %14s\n", "TIER", "THRESHOLD", "BONUS", "TOTAL SHARES")

	for _, t := range offering.Tiers(accredited) {
		calc, err := offering.Calculate(t.Threshold, accredited)
		if err != nil {
			continue
		}
		fmt.Fprintf(out, "%-14s %14s %6d%% %14s\n",
			t.Label,
			offering.FormatCurrency(t.Threshold),
			t.BonusPercentage,
			offering.FormatNumber(calc.TotalShares),
		)
	}
}
