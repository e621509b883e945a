package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/domainscout/domainscout/internal/core"
	"github.com/domainscout/domainscout/internal/core/probe"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest alternative business names",
	Long: `Generate short, tech-sounding alternative business names.

With --check, each suggestion's bare .com is given a quick DNS-only
availability check.`,
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().Bool("check", false, "DNS-check each suggestion's .com")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}

	names := core.SuggestNames()

	if !check {
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	dns := probe.NewDNSProber(cfg.Probes.DNSTimeout)

	for _, name := range names {
		if ctx.Err() != nil {
			break
		}
		domain := name + ".com"
		result := dns.Probe(ctx, domain)
		var note string
		switch result.Signal {
		case core.SignalDoesNotExist:
			note = "possibly available"
		case core.SignalExists:
			note = "taken"
		default:
			note = "unknown"
		}
		fmt.Printf("%-15s %s (%s)\n", name, note, domain)
	}

	return nil
}
