package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/advisory"
	"github.com/pmcconville-hub/seofactory-sub014/pkg/config"
	"github.com/pmcconville-hub/seofactory-sub014/pkg/eav"
	"github.com/pmcconville-hub/seofactory-sub014/pkg/engine"
	"github.com/pmcconville-hub/seofactory-sub014/pkg/validators"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the pre-analysis audit on a step-output file",
	Run: func(cmd *cobra.Command, args []string) {
		step, _ := cmd.Flags().GetString("step")
		input, _ := cmd.Flags().GetString("input")
		asJSON, _ := cmd.Flags().GetBool("json")

		result, _, err := runAnalysis(cmd, step, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if asJSON {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				fmt.Printf("Error encoding result: %v\n", err)
				return
			}
			fmt.Println(string(data))
			return
		}

		printResult(result)
	},
}

// runAnalysis is shared by analyze and questions: it loads the payload,
// wires the analyzer, and runs the audit.
func runAnalysis(cmd *cobra.Command, step, input string) (engine.PreAnalysisResult, engine.BusinessInfo, error) {
	locale, _ := cmd.Flags().GetString("locale")
	industry, _ := cmd.Flags().GetString("industry")
	centralEntity, _ := cmd.Flags().GetString("central-entity")

	business := engine.BusinessInfo{Locale: locale, Industry: industry}

	payload, err := readStepOutput(input)
	if err != nil {
		return engine.PreAnalysisResult{}, business, err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return engine.PreAnalysisResult{}, business, fmt.Errorf("loading config: %w", err)
	}

	analyzer := engine.NewAnalyzer(
		validators.Defaults(),
		eav.NewAuditor(cfg.AuditScoring),
		newLogger(),
	)

	var dialogue *engine.DialogueContext
	if centralEntity != "" {
		dialogue = &engine.DialogueContext{ConfirmedCentralEntity: centralEntity}
	}

	return analyzer.RunPreAnalysis(engine.Step(step), payload, business, dialogue), business, nil
}

func readStepOutput(path string) (any, error) {
	if path == "" {
		return nil, fmt.Errorf("--input is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return payload, nil
}

func printResult(result engine.PreAnalysisResult) {
	fmt.Printf("Health score: %d/100 (%d finding(s), %dms)\n",
		result.HealthScore, len(result.Findings), result.DurationMS)
	if len(result.ValidatorsRun) > 0 {
		fmt.Printf("Validators run: %v\n", result.ValidatorsRun)
	}
	if len(result.ValidatorsSkipped) > 0 {
		fmt.Printf("Validators skipped: %v\n", result.ValidatorsSkipped)
	}

	section := advisory.FormatFindingsSection(result)
	if section == "" {
		fmt.Println("No findings.")
		return
	}
	fmt.Println()
	fmt.Println(section)

	needsInput, fixable := advisory.PartitionByFixability(result.Findings)
	fmt.Printf("%d finding(s) need a human answer, %d can be auto-applied.\n",
		len(needsInput), len(fixable))
}

func init() {
	analyzeCmd.Flags().StringP("step", "s", "", "Pipeline step (strategy, eav, map_planning)")
	analyzeCmd.Flags().StringP("input", "i", "", "Path to the step-output JSON file")
	analyzeCmd.Flags().String("locale", "", "Business locale")
	analyzeCmd.Flags().String("industry", "", "Business industry")
	analyzeCmd.Flags().String("central-entity", "", "Previously confirmed central entity")
	analyzeCmd.Flags().Bool("json", false, "Emit the result as JSON")
	rootCmd.AddCommand(analyzeCmd)
}
