package cmd

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent runs",
	Long:  "List recent assessment runs stored in the local database, newest first.",
	RunE:  runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().Int("limit", 10, "maximum runs to list")
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	st := openStore(ctx, cfg, cliLogger)
	if st == nil {
		return errors.New("no local store available")
	}
	defer st.Close() // nolint:errcheck // best-effort cleanup on store

	records, err := st.RecentRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Started", "Names", ".com Available", "Top Opportunity"})

	for _, record := range records {
		top := ""
		if record.Summary != nil && len(record.Summary.Opportunities) > 0 {
			top = record.Summary.Opportunities[0].BestCom
		}
		t.AppendRow(table.Row{
			record.ID,
			record.StartedAt.Format("2006-01-02 15:04"),
			record.NamesChecked,
			record.ComAvailable,
			top,
		})
	}

	fmt.Println(t.Render())
	return nil
}
