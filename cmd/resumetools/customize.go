package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wmutahi/ai-resume-tools/internal/pipeline"
)

var (
	customizeResume      string
	customizeJob         string
	customizeOutput      string
	customizeSuggestOnly bool
)

var customizeCmd = &cobra.Command{
	Use:   "customize",
	Short: "Tailor a resume to a job description",
	Long: "Analyzes the resume and the job description, derives a customization\n" +
		"plan, and rewrites the resume to emphasize relevant experience.\n" +
		"With --suggest, prints the plan instead of rewriting.",
	RunE: runCustomize,
}

func init() {
	customizeCmd.Flags().StringVarP(&customizeResume, "resume", "r", "", "resume file (.docx or plain text)")
	customizeCmd.Flags().StringVarP(&customizeJob, "job", "j", "", "job description file")
	customizeCmd.Flags().StringVarP(&customizeOutput, "output", "o", "customized_resume.txt", "output file for the rewritten resume")
	customizeCmd.Flags().BoolVar(&customizeSuggestOnly, "suggest", false, "print customization suggestions without rewriting")
	customizeCmd.MarkFlagRequired("resume")
	customizeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(customizeCmd)
}

func runCustomize(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	agent, err := buildAgent(ctx)
	if err != nil {
		return err
	}
	defer agent.Close()

	if customizeSuggestOnly {
		suggestions, err := agent.SuggestCustomizations(ctx, customizeResume, customizeJob)
		if err != nil {
			return err
		}
		fmt.Println(pipeline.FormatCustomization(suggestions))
		return nil
	}

	customized, err := agent.CustomizeResume(ctx, customizeResume, customizeJob)
	if err != nil {
		return err
	}

	return emitResult(agent, customized, customizeOutput)
}
