package main

import (
	"fmt"
	"io"
	"os"

	"github.com/diegoclair/slack-break-bot/internal/auth"
	"github.com/diegoclair/slack-break-bot/internal/config"
	"github.com/diegoclair/slack-break-bot/internal/domain/shift"
	"github.com/diegoclair/slack-break-bot/internal/domain/timemath"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var catalogPath, locale string

	root := &cobra.Command{
		Use:          "breakctl",
		Short:        "Inspect the break scheduler configuration",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			if !cmd.Flags().Changed("catalog") {
				catalogPath = os.Getenv("SHIFT_CATALOG_PATH")
			}
			if !cmd.Flags().Changed("locale") {
				if v := os.Getenv("DISPLAY_LOCALE"); v != "" {
					locale = v
				}
			}
		},
	}
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Shift catalog YAML (default: built-in shifts)")
	root.PersistentFlags().StringVar(&locale, "locale", "ar", "Display locale for times (ar|en)")

	root.AddCommand(&cobra.Command{
		Use:   "shifts",
		Short: "List the work shifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := shift.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}
			printShifts(cmd.OutOrStdout(), catalog, timemath.LocaleByName(locale))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "slots SHIFT",
		Short: "List the break slots a shift offers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := shift.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}
			return printSlots(cmd.OutOrStdout(), catalog, args[0], timemath.LocaleByName(locale))
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "token",
		Short: "Mint an admin API token from JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cfg.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}
			token, expires, err := auth.NewIssuer(cfg.JWTSecret, cfg.AdminTokenTTL).GenerateToken()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expires.Format("2006-01-02 15:04:05"))
			return nil
		},
	})

	return root
}

func printShifts(w io.Writer, catalog *shift.Catalog, l timemath.Locale) {
	for _, s := range catalog.List() {
		fmt.Fprintf(w, "%-10s %-24s %s - %s\n", s.ID, s.Label(), l.To12Hour(s.StartTime), l.To12Hour(s.EndTime))
	}
}

func printSlots(w io.Writer, catalog *shift.Catalog, shiftID string, l timemath.Locale) error {
	s, err := catalog.Find(shiftID)
	if err != nil {
		return err
	}

	slots := shift.GenerateSlots(s)
	fmt.Fprintf(w, "%s: %d slots\n", s.Label(), len(slots))
	for _, slot := range slots {
		fmt.Fprintf(w, "  %s  %s  %2d min\n", slot.StartTime, l.To12Hour(slot.StartTime), slot.DurationMinutes)
	}
	if len(slots) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	return nil
}
