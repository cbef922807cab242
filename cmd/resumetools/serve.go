package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/wmutahi/ai-resume-tools/internal/api"
	"github.com/wmutahi/ai-resume-tools/internal/document"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web API server",
	Long:  "Serves the analysis pipeline over HTTP for browser form clients.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	agent, err := buildAgent(ctx)
	if err != nil {
		return err
	}
	defer agent.Close()

	cfg := loadAppConfig()
	uploads := document.NewUploadStore(cfg.UploadsDir)

	server := api.NewServer(agent, uploads)

	httpServer := &http.Server{
		Addr:         serveAddr,
		Handler:      server.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // LLM calls are slow
	}

	log.Printf("Starting server on %s", serveAddr)
	return httpServer.ListenAndServe()
}
