package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/wmutahi/ai-resume-tools/internal/config"
	"github.com/wmutahi/ai-resume-tools/internal/llm"
	"github.com/wmutahi/ai-resume-tools/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "resumetools",
	Short: "AI-powered resume and job description tools",
	Long: "Resume Tools analyzes resumes and job descriptions, tailors a resume\n" +
		"to a specific job, generates cover letters, and scores how well a\n" +
		"resume matches a posting.",
	SilenceUsage: true,
}

// loadAppConfig loads the config file and pushes its values into the
// environment so every component sees one source of truth.
func loadAppConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		cfg = config.DefaultConfig()
	}
	cfg.ApplyToEnv()
	return cfg
}

// buildAgent constructs the pipeline agent for one command invocation.
// Missing credentials are an error here: CLI commands cannot recover.
func buildAgent(ctx context.Context) (*pipeline.Agent, error) {
	cfg := loadAppConfig()

	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured: set %s or run `resumetools gui` and use the Settings tab", config.EnvAPIKey)
	}

	client, err := llm.NewGeminiClient(ctx, apiKey, cfg.ResolveModel())
	if err != nil {
		return nil, err
	}

	agent := pipeline.NewAgent(client)
	agent.SetProgressCallback(func(message string) {
		log.Printf("%s", message)
	})
	return agent, nil
}
