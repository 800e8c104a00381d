package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/advisory"
	"github.com/pmcconville-hub/seofactory-sub014/pkg/config"
	"github.com/pmcconville-hub/seofactory-sub014/pkg/llm"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate clarification questions from the audit findings",
	Long: `Runs the pre-analysis audit, then asks the configured AI provider to
turn the findings that need a human answer into clarification questions.`,
	Run: func(cmd *cobra.Command, args []string) {
		step, _ := cmd.Flags().GetString("step")
		input, _ := cmd.Flags().GetString("input")

		result, business, err := runAnalysis(cmd, step, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		needsInput, _ := advisory.PartitionByFixability(result.Findings)
		if len(needsInput) == 0 {
			fmt.Println("No findings need a human answer; nothing to ask.")
			return
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		providerName := cfg.SelectedProvider
		if providerName == "" {
			providerName = "gemini"
		}
		apiKey := cfg.GetAPIKey(providerName)
		if apiKey == "" && providerName == "gemini" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}
		if apiKey == "" {
			fmt.Println("Error: API key not found.")
			fmt.Println("Run 'seofactory config set-key' to configure your keys.")
			return
		}

		ctx := context.Background()
		provider, err := llm.NewProvider(ctx, providerName, apiKey, cfg.SelectedModel)
		if err != nil {
			fmt.Printf("Error creating AI provider: %v\n", err)
			return
		}
		if closer, ok := provider.(interface{ Close() }); ok {
			defer closer.Close()
		}

		prompt := llm.BuildQuestionPrompt(result, business)
		response, err := provider.GenerateText(ctx, llm.QuestionSystemPrompt(), prompt)
		if err != nil {
			fmt.Printf("Error generating questions: %v\n", err)
			return
		}

		fmt.Println(response)
	},
}

func init() {
	questionsCmd.Flags().StringP("step", "s", "", "Pipeline step (strategy, eav, map_planning)")
	questionsCmd.Flags().StringP("input", "i", "", "Path to the step-output JSON file")
	questionsCmd.Flags().String("locale", "", "Business locale")
	questionsCmd.Flags().String("industry", "", "Business industry")
	questionsCmd.Flags().String("central-entity", "", "Previously confirmed central entity")
	rootCmd.AddCommand(questionsCmd)
}
