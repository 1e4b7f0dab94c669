package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncDate string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Ingest fixtures and link broadcasts for one day, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(syncDate)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := newApp(ctx, true)
		if err != nil {
			return err
		}
		defer a.Close()

		var failed int
		for _, sport := range a.registry.GetAll() {
			summary, err := a.scheduler.RunOnce(ctx, sport, date)
			if err != nil {
				failed++
				logger.WithError(err).WithField("sport", sport.GetSportKey()).Error("sync failed")
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d records, %d matched, %d unmatched, %d invalid, %d rows, %d written\n",
				summary.Sport, summary.Date, summary.Stats.Records, summary.Stats.Matched,
				summary.Stats.Unmatched, summary.Stats.Invalid, summary.Stats.Rows, summary.Write.Written)
		}

		if failed > 0 {
			return fmt.Errorf("%d sport(s) failed to sync", failed)
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVarP(&syncDate, "date", "d", "", "day to sync, YYYY-MM-DD (default today UTC)")
}
