package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/domainscout/domainscout/internal/core/verify"
	"github.com/domainscout/domainscout/internal/output"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <domain> [domain...]",
	Short: "Verify promising domains against RDAP",
	Long: `Verify domains against the authoritative RDAP registry service.

Registered domains are further classified as parked or actively serving
a site, so a pass of cheap probes can be double-checked before anyone
commits to a name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().String("output", "", "output format: table, json")
	verifyCmd.Flags().Duration("delay", time.Second, "delay between RDAP queries")
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	domains := make([]string, 0, len(args))
	for _, raw := range args {
		domain := strings.ToLower(strings.TrimSpace(raw))
		if domain == "" {
			continue
		}
		if !strings.Contains(domain, ".") {
			return fmt.Errorf("not a fully qualified domain: %s", raw)
		}
		domains = append(domains, domain)
	}
	if len(domains) == 0 {
		return errors.New("at least one domain is required")
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

	delay, err := cmd.Flags().GetDuration("delay")
	if err != nil {
		return err
	}

	verifier := verify.NewVerifier(cfg.Probes.HTTPTimeout)
	verifications := verifier.VerifyAll(cmd.Context(), domains, delay)

	if format == output.FormatJSON {
		data, err := json.MarshalIndent(verifications, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Domain", "Status", "Detail"})
	confirmed := 0
	for _, v := range verifications {
		if v.Confirmed() {
			confirmed++
		}
		t.AppendRow(table.Row{v.Domain, string(v.Status), v.Detail})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d/%d available", confirmed, len(verifications)), ""})
	fmt.Println(t.Render())

	return nil
}
