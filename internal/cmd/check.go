package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/domainscout/domainscout/internal/core"
	"github.com/domainscout/domainscout/internal/core/store"
	"github.com/domainscout/domainscout/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check <domain>",
	Short: "Check a single domain",
	Long:  "Probe one fully qualified domain over DNS, WHOIS, and HTTP and print the combined verdict.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("output", "", "output format: table, json, markdown")
	checkCmd.Flags().Bool("no-cache", false, "skip cached signals")
}

func runCheck(cmd *cobra.Command, args []string) error {
	domain := strings.ToLower(strings.TrimSpace(args[0]))
	if !strings.Contains(domain, ".") {
		return errors.New("a fully qualified domain is required, e.g. example.com")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	if noCache {
		cfg.Cache.Enabled = false
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

	ctx := cmd.Context()
	logger := cliLogger

	var st *store.Store
	if cfg.Cache.Enabled {
		st = openStore(ctx, cfg, logger)
		if st != nil {
			defer st.Close() // nolint:errcheck // best-effort cleanup on store
		}
	}

	orchestrator := buildOrchestrator(cfg, st, logger)
	assessment := orchestrator.AssessDomain(ctx, domain, 0)

	report := core.BuildNameReport(domain, []*core.Assessment{assessment}, assessment.CompletedAt)
	report.Name = domain

	formatter := output.NewFormatter(format)
	rendered, err := formatter.FormatReport(report)
	if err != nil {
		return err
	}
	fmt.Println(rendered)

	if assessment.Failed {
		return fmt.Errorf("check failed: %s", assessment.FailureReason)
	}
	return nil
}
