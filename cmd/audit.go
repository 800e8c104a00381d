package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/config"
	"github.com/pmcconville-hub/seofactory-sub014/pkg/eav"
)

// crossSourcePayload is the file shape for a map-vs-briefs audit.
type crossSourcePayload struct {
	MapTriples []eav.Triple          `json:"map_triples"`
	Documents  []eav.DocumentTriples `json:"documents"`
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run the standalone EAV consistency audit",
	Long: `Audits an EAV triple file for value conflicts, category mismatches,
and type mismatches. The input is either a JSON array of triples or an
object with "map_triples" and "documents" for a cross-source audit.`,
	Run: func(cmd *cobra.Command, args []string) {
		input, _ := cmd.Flags().GetString("input")
		if input == "" {
			fmt.Println("Error: --input is required")
			return
		}

		data, err := os.ReadFile(input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}
		auditor := eav.NewAuditor(cfg.AuditScoring)

		var report eav.Report
		var cross crossSourcePayload
		if err := json.Unmarshal(data, &cross); err == nil && (len(cross.MapTriples) > 0 || len(cross.Documents) > 0) {
			report = auditor.AuditCrossSource(cross.MapTriples, cross.Documents)
		} else {
			var triples []eav.Triple
			if err := json.Unmarshal(data, &triples); err != nil {
				fmt.Printf("Error parsing %s: %v\n", input, err)
				return
			}
			report = auditor.Audit(triples)
		}

		printAuditReport(report, cfg.GradeThresholds)
	},
}

func printAuditReport(report eav.Report, thresholds []eav.GradeThreshold) {
	grade, label := eav.GradeFor(report.Score, thresholds)
	fmt.Printf("EAV audit: %d triple(s), %d subject(s), %d attribute(s)\n",
		report.TotalEavs, report.UniqueSubjects, report.UniqueAttributes)
	fmt.Printf("Score: %d (%s - %s)\n", report.Score, grade, label)

	if len(report.Inconsistencies) == 0 {
		fmt.Println("No inconsistencies.")
		return
	}

	fmt.Printf("\n%d inconsistency(ies):\n", len(report.Inconsistencies))
	for _, inc := range report.Inconsistencies {
		fmt.Printf("[%s] %s (%s)\n", inc.Severity, inc.Description, inc.Type)
		for _, loc := range inc.Locations {
			fmt.Printf("  %s: %q\n", loc.Source, loc.Value)
		}
		fmt.Printf("  Suggestion: %s\n", inc.Suggestion)
	}
}

func init() {
	auditCmd.Flags().StringP("input", "i", "", "Path to the EAV triples JSON file")
	rootCmd.AddCommand(auditCmd)
}
