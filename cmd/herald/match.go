package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/XavierBriggs/Herald/internal/linker"
	"github.com/XavierBriggs/Herald/internal/scheduler"
	"github.com/spf13/cobra"
)

var (
	matchDate   string
	matchOutput string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Dry run: fetch one day's listings and fixtures from the provider and print the links",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(matchDate)
		if err != nil {
			return err
		}
		if cfg.Provider.APIKey == "" {
			return fmt.Errorf("provider.api_key is required (set HERALD_PROVIDER_API_KEY)")
		}

		sportRegistry, err := buildRegistry(cfg.Sports.Enabled, sportFlag)
		if err != nil {
			return err
		}

		adapter := newAdapter(cfg.Provider)
		sched := scheduler.NewScheduler(adapter, nil, newLinker(adapter), nil, nil, sportRegistry,
			scheduler.Options{RunTimeout: cfg.Scheduler.RunTimeout}, logger)

		for _, sport := range sportRegistry.GetAll() {
			result, err := sched.Preview(cmd.Context(), sport, date)
			if err != nil {
				return fmt.Errorf("%s: %w", sport.GetSportKey(), err)
			}
			if err := printResult(cmd.OutOrStdout(), sport.GetSportKey(), result); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().StringVarP(&matchDate, "date", "d", "", "day to match, YYYY-MM-DD (default today UTC)")
	matchCmd.Flags().StringVarP(&matchOutput, "output", "o", "table", "output format: table, json")
}

func printResult(out io.Writer, sportKey string, result *linker.Result) error {
	if matchOutput == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Sport string      `json:"sport"`
			Rows  interface{} `json:"rows"`
			Stats interface{} `json:"stats"`
		}{sportKey, result.Rows, result.Stats})
	}

	fmt.Fprintf(out, "%s: %d records, %d matched, %d unmatched, %d invalid\n",
		sportKey, result.Stats.Records, result.Stats.Matched, result.Stats.Unmatched, result.Stats.Invalid)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EVENT\tFIXTURE\tSCORE\tHOME\tAWAY\tDATE\tTIME\tLEAGUE")
	for _, m := range result.Matches {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			m.Record.EventName, m.Candidate.Fixture.ID, m.Candidate.Total,
			m.Candidate.SubScores.Home, m.Candidate.SubScores.Away, m.Candidate.SubScores.Date,
			m.Candidate.SubScores.Time, m.Candidate.SubScores.League)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "FIXTURE\tCHANNEL\tCOUNTRY\tCONFIDENCE")
	for _, row := range result.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", row.FixtureID, row.Channel, row.Country, row.ConfidenceScore)
	}
	return tw.Flush()
}
