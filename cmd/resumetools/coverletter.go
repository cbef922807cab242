package main

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	coverResume  string
	coverJob     string
	coverName    string
	coverCompany string
	coverOutput  string
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Generate a cover letter for a job application",
	Long: "Analyzes the resume and job description and writes a tailored cover\n" +
		"letter. Omitted names fall back to generic placeholders.",
	RunE: runCoverLetter,
}

func init() {
	coverLetterCmd.Flags().StringVarP(&coverResume, "resume", "r", "", "resume file (.docx or plain text)")
	coverLetterCmd.Flags().StringVarP(&coverJob, "job", "j", "", "job description file")
	coverLetterCmd.Flags().StringVarP(&coverName, "name", "n", "", "candidate name")
	coverLetterCmd.Flags().StringVarP(&coverCompany, "company", "c", "", "company name")
	coverLetterCmd.Flags().StringVarP(&coverOutput, "output", "o", "", "write the letter to a file instead of stdout")
	coverLetterCmd.MarkFlagRequired("resume")
	coverLetterCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	agent, err := buildAgent(ctx)
	if err != nil {
		return err
	}
	defer agent.Close()

	letter, err := agent.GenerateCoverLetter(ctx, coverResume, coverJob, coverName, coverCompany)
	if err != nil {
		return err
	}

	return emitResult(agent, letter, coverOutput)
}
