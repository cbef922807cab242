package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wmutahi/ai-resume-tools/internal/pipeline"
)

var (
	analyzeFile   string
	analyzeType   string
	analyzeOutput string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume or job description",
	Long: "Extracts a structured profile from a single document: skills,\n" +
		"experience, and education from a resume, or requirements and\n" +
		"keywords from a job description. Prints JSON.",
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "document to analyze (.docx or plain text)")
	analyzeCmd.Flags().StringVarP(&analyzeType, "type", "t", "resume", "document type: resume or job")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write the result to a file instead of stdout")
	analyzeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	agent, err := buildAgent(ctx)
	if err != nil {
		return err
	}
	defer agent.Close()

	result, err := agent.AnalyzeDocument(ctx, analyzeFile, analyzeType)
	if err != nil {
		return err
	}

	return emitResult(agent, result, analyzeOutput)
}

// emitResult writes result to path when set, otherwise to stdout.
func emitResult(agent *pipeline.Agent, result, path string) error {
	if path == "" {
		fmt.Println(result)
		return nil
	}

	status, err := agent.SaveResult(result, path)
	if err != nil {
		return err
	}
	fmt.Println(status)
	return nil
}
