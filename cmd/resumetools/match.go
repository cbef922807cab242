package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wmutahi/ai-resume-tools/internal/export"
	"github.com/wmutahi/ai-resume-tools/internal/pipeline"
)

var (
	matchResume string
	matchJob    string
	matchXLSX   string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score how well a resume matches a job description",
	Long: "Compares a resume against a job description and reports a 0-100\n" +
		"match score with matching skills, gaps, and recommendations.",
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "resume file (.docx or plain text)")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "job description file")
	matchCmd.Flags().StringVar(&matchXLSX, "xlsx", "", "also write a spreadsheet report to this path")
	matchCmd.MarkFlagRequired("resume")
	matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	agent, err := buildAgent(ctx)
	if err != nil {
		return err
	}
	defer agent.Close()

	match, err := agent.CompareResumeToJob(ctx, matchResume, matchJob)
	if err != nil {
		return err
	}

	fmt.Println(pipeline.FormatJobMatch(match))

	if matchXLSX != "" {
		if err := export.MatchReport(match, matchXLSX); err != nil {
			return err
		}
		fmt.Printf("Spreadsheet report saved to %s\n", matchXLSX)
	}
	return nil
}
