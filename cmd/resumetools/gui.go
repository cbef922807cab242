package main

import (
	"github.com/spf13/cobra"

	"github.com/wmutahi/ai-resume-tools/internal/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Launch the desktop application",
	Long: "Opens the desktop window. A missing API key is not fatal here;\n" +
		"it can be entered in the Settings tab.",
	Run: func(cmd *cobra.Command, args []string) {
		gui.NewApp().Run()
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
