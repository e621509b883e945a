package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/domainscout/domainscout/internal/core"
	"github.com/domainscout/domainscout/internal/core/store"
	"github.com/domainscout/domainscout/internal/output"
)

var runCmd = &cobra.Command{
	Use:   "run [names...]",
	Short: "Assess domain availability for candidate names",
	Long: `Assess domain availability for one or more candidate business names.

Each name expands into its domain variations, every variation is probed
over DNS, WHOIS, and HTTP, and the run ends with a ranked list of the
best opportunities across all names.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("names-file", "", "file with one name per line ('-' for stdin)")
	runCmd.Flags().String("output", "", "output format: table, json, markdown, text")
	runCmd.Flags().String("output-dir", "", "directory for result files")
	runCmd.Flags().Bool("no-store", false, "skip the local store (no cache, no history)")
	runCmd.Flags().Bool("no-files", false, "do not write result files")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	namesFile, err := cmd.Flags().GetString("names-file")
	if err != nil {
		return err
	}
	names, err := resolveNames(args, namesFile)
	if err != nil {
		return err
	}

	formatFlag, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if formatFlag == "" {
		formatFlag = cfg.Output.Format
	}
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	outputDir, err := cmd.Flags().GetString("output-dir")
	if err != nil {
		return err
	}
	if outputDir == "" {
		outputDir = cfg.Output.Directory
	}

	noStore, err := cmd.Flags().GetBool("no-store")
	if err != nil {
		return err
	}
	noFiles, err := cmd.Flags().GetBool("no-files")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := cliLogger

	var st *store.Store
	if !noStore {
		st = openStore(ctx, cfg, logger)
		if st != nil {
			defer st.Close() // nolint:errcheck // best-effort cleanup on store
		}
	}
	orchestrator := buildOrchestrator(cfg, st, logger)

	suffixes := orchestrator.Suffixes
	if len(suffixes) == 0 {
		suffixes = core.DefaultSuffixes
	}
	extensions := orchestrator.Extensions
	if len(extensions) == 0 {
		extensions = core.DefaultExtensions
	}
	total := len(names) * len(suffixes) * len(extensions)

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("checking domains"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	orchestrator.OnAssessment = func(*core.Assessment) {
		// nolint:errcheck // progress display only
		bar.Add(1)
	}

	summary := orchestrator.Run(ctx, names)
	// nolint:errcheck // progress display only
	bar.Finish()

	if st != nil {
		if _, err := st.SaveRun(ctx, summary); err != nil {
			logger.Warn("could not persist run", zap.Error(err))
		}
	}

	formatter := output.NewFormatter(format)
	if format == output.FormatJSON || format == output.FormatText {
		rendered, err := formatter.FormatSummary(summary)
		if err != nil {
			return err
		}
		fmt.Println(rendered)
	} else {
		sections := make([]string, 0, len(summary.Names)+1)
		for _, report := range summary.Names {
			rendered, err := formatter.FormatReport(report)
			if err != nil {
				return err
			}
			sections = append(sections, rendered)
		}
		rendered, err := formatter.FormatSummary(summary)
		if err != nil {
			return err
		}
		sections = append(sections, rendered)
		fmt.Println(strings.Join(sections, "\n\n"))
	}

	if !noFiles {
		files, err := output.WriteRunFiles(outputDir, summary)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Results: %s\nReport:  %s\n", files.ResultsPath, files.ReportPath)
	}

	return nil
}
