package gui

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/wmutahi/ai-resume-tools/internal/config"
	"github.com/wmutahi/ai-resume-tools/internal/document"
	"github.com/wmutahi/ai-resume-tools/internal/export"
	"github.com/wmutahi/ai-resume-tools/internal/llm"
	"github.com/wmutahi/ai-resume-tools/internal/models"
	"github.com/wmutahi/ai-resume-tools/internal/pipeline"
)

// App represents the main GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	config     *config.Config
	agent      *pipeline.Agent
	uploads    *document.UploadStore

	// UI Components
	resumePathLabel *widget.Label
	jobPathLabel    *widget.Label
	jobDescText     *widget.Entry
	candidateEntry  *widget.Entry
	companyEntry    *widget.Entry
	operationSelect *widget.Select
	runBtn          *widget.Button
	exportBtn       *widget.Button
	statusLabel     *widget.Label
	resultText      *widget.Entry

	resumePath string
	jobPath    string
	lastMatch  *models.JobMatch
}

// Operation names shown in the dropdown.
const (
	opAnalyzeResume = "Analyze Resume"
	opAnalyzeJob    = "Analyze Job Description"
	opCustomize     = "Customize Resume"
	opCoverLetter   = "Generate Cover Letter"
	opMatch         = "Compare Resume to Job"
)

// NewApp creates a new GUI application
func NewApp() *App {
	a := app.New()
	w := a.NewWindow("AI Resume Tools")
	w.Resize(fyne.NewSize(900, 700))

	guiApp := &App{
		fyneApp:    a,
		mainWindow: w,
		uploads:    document.NewUploadStore(""),
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		cfg = config.DefaultConfig()
	}
	guiApp.config = cfg

	// Apply config to environment
	cfg.ApplyToEnv()

	// Setup UI
	guiApp.setupUI()

	return guiApp
}

// Run starts the GUI application. A missing API key is reported but does
// not prevent the window from opening; the user can set it in Settings.
func (a *App) Run() {
	if a.config.ResolveAPIKey() == "" {
		log.Printf("Warning: no API key configured")
		dialog.ShowInformation("API Key Missing",
			"No API key configured. Set "+config.EnvAPIKey+" or enter a key in the Settings tab before running an operation.",
			a.mainWindow)
	}
	a.mainWindow.ShowAndRun()
}

// setupUI initializes all UI components
func (a *App) setupUI() {
	tabs := container.NewAppTabs(
		container.NewTabItem("Resume Tools", a.createToolsTab()),
		container.NewTabItem("Settings", a.createSettingsTab()),
	)

	a.mainWindow.SetContent(tabs)
}

// createToolsTab creates the main processing tab
func (a *App) createToolsTab() fyne.CanvasObject {
	// Input files section
	a.resumePathLabel = widget.NewLabel("No file selected")
	resumeBtn := widget.NewButton("Browse...", func() {
		a.pickFile(func(path string) {
			a.resumePath = path
			a.resumePathLabel.SetText(filepath.Base(path))
		})
	})

	a.jobPathLabel = widget.NewLabel("No file selected")
	jobBtn := widget.NewButton("Browse...", func() {
		a.pickFile(func(path string) {
			a.jobPath = path
			a.jobPathLabel.SetText(filepath.Base(path))
		})
	})

	a.jobDescText = widget.NewMultiLineEntry()
	a.jobDescText.SetPlaceHolder("Or paste the job description here (takes priority over the file)")
	a.jobDescText.SetMinRowsVisible(4)

	a.candidateEntry = widget.NewEntry()
	a.candidateEntry.SetPlaceHolder("Used for cover letters")

	a.companyEntry = widget.NewEntry()
	a.companyEntry.SetPlaceHolder("Used for cover letters")

	inputSection := widget.NewForm(
		widget.NewFormItem("Resume File", container.NewBorder(nil, nil, nil, resumeBtn, a.resumePathLabel)),
		widget.NewFormItem("Job File", container.NewBorder(nil, nil, nil, jobBtn, a.jobPathLabel)),
		widget.NewFormItem("Job Description", a.jobDescText),
		widget.NewFormItem("Candidate Name", a.candidateEntry),
		widget.NewFormItem("Company Name", a.companyEntry),
	)

	// Operation section
	a.operationSelect = widget.NewSelect([]string{
		opAnalyzeResume,
		opAnalyzeJob,
		opCustomize,
		opCoverLetter,
		opMatch,
	}, nil)
	a.operationSelect.SetSelected(opAnalyzeResume)

	a.runBtn = widget.NewButton("Run", a.handleRun)
	a.statusLabel = widget.NewLabel("Ready")

	operationSection := container.NewVBox(
		widget.NewForm(widget.NewFormItem("Operation", a.operationSelect)),
		container.NewHBox(a.runBtn),
		a.statusLabel,
	)

	// Results section
	a.resultText = widget.NewMultiLineEntry()
	a.resultText.Wrapping = fyne.TextWrapWord

	saveBtn := widget.NewButton("Save Result...", a.handleSaveResult)

	a.exportBtn = widget.NewButton("Export Match to Excel", a.handleExport)
	a.exportBtn.Disable()

	resultsSection := container.NewBorder(
		widget.NewLabel("Result"),
		container.NewHBox(saveBtn, a.exportBtn),
		nil, nil,
		container.NewScroll(a.resultText),
	)

	return container.NewBorder(
		container.NewVBox(inputSection, widget.NewSeparator(), operationSection, widget.NewSeparator()),
		nil, nil, nil,
		resultsSection,
	)
}

// createSettingsTab creates the settings tab
func (a *App) createSettingsTab() fyne.CanvasObject {
	apiKeyEntry := widget.NewPasswordEntry()
	apiKeyEntry.SetText(a.config.APIKey)

	modelEntry := widget.NewEntry()
	modelEntry.SetText(a.config.Model)
	modelEntry.SetPlaceHolder(llm.DefaultModel)

	form := widget.NewForm(
		widget.NewFormItem("API Key", apiKeyEntry),
		widget.NewFormItem("Model", modelEntry),
	)

	saveBtn := widget.NewButton("Save Settings", func() {
		a.config.APIKey = apiKeyEntry.Text
		a.config.Model = modelEntry.Text

		if err := a.config.Save(); err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}

		// Apply to environment
		a.config.ApplyToEnv()

		dialog.ShowInformation("Success", "Settings saved successfully", a.mainWindow)
	})

	testBtn := widget.NewButton("Test Connection", func() {
		if a.config.ResolveAPIKey() == "" {
			dialog.ShowError(fmt.Errorf("no API key configured"), a.mainWindow)
			return
		}
		dialog.ShowInformation("Success", "API key is configured", a.mainWindow)
	})

	return container.NewVBox(
		form,
		container.NewHBox(saveBtn, testBtn),
	)
}

// pickFile shows a file-open dialog and passes the chosen path to onPick.
func (a *App) pickFile(onPick func(path string)) {
	dialog.ShowFileOpen(func(uc fyne.URIReadCloser, err error) {
		if err == nil && uc != nil {
			onPick(uc.URI().Path())
			uc.Close()
		}
	}, a.mainWindow)
}

// jobInputPath returns the path holding the job description. Pasted text
// takes priority over a selected file and is written to a temp file so the
// pipeline sees a uniform input.
func (a *App) jobInputPath() (path string, temp bool, err error) {
	if text := a.jobDescText.Text; text != "" {
		path, err = a.uploads.SaveText("job_description", text)
		return path, true, err
	}
	if a.jobPath != "" {
		return a.jobPath, false, nil
	}
	return "", false, fmt.Errorf("please select a job description file or paste the job description")
}

// handleRun dispatches the selected operation to a background goroutine.
func (a *App) handleRun() {
	op := a.operationSelect.Selected

	needsResume := op != opAnalyzeJob
	if needsResume && a.resumePath == "" {
		dialog.ShowError(fmt.Errorf("please select a resume file"), a.mainWindow)
		return
	}

	var jobPath string
	var jobIsTemp bool
	if op != opAnalyzeResume {
		var err error
		jobPath, jobIsTemp, err = a.jobInputPath()
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
	}

	agent, err := a.ensureAgent()
	if err != nil {
		if jobIsTemp {
			a.uploads.Remove(jobPath)
		}
		dialog.ShowError(err, a.mainWindow)
		return
	}

	a.runBtn.Disable()
	a.exportBtn.Disable()
	a.statusLabel.SetText("Working...")
	a.lastMatch = nil

	resumePath := a.resumePath
	candidate := a.candidateEntry.Text
	company := a.companyEntry.Text

	go func() {
		ctx := context.Background()

		var result string
		var match *models.JobMatch
		var runErr error

		switch op {
		case opAnalyzeResume:
			result, runErr = agent.AnalyzeDocument(ctx, resumePath, pipeline.DocumentResume)
		case opAnalyzeJob:
			result, runErr = agent.AnalyzeDocument(ctx, jobPath, pipeline.DocumentJob)
		case opCustomize:
			result, runErr = agent.CustomizeResume(ctx, resumePath, jobPath)
		case opCoverLetter:
			result, runErr = agent.GenerateCoverLetter(ctx, resumePath, jobPath, candidate, company)
		case opMatch:
			match, runErr = agent.CompareResumeToJob(ctx, resumePath, jobPath)
			if runErr == nil {
				result = pipeline.FormatJobMatch(match)
			}
		default:
			runErr = fmt.Errorf("unknown operation: %s", op)
		}

		if jobIsTemp {
			a.uploads.Remove(jobPath)
		}

		// Wrap ALL UI updates in fyne.Do()
		fyne.Do(func() {
			a.runBtn.Enable()

			if runErr != nil {
				a.statusLabel.SetText("Error: " + runErr.Error())
				dialog.ShowError(runErr, a.mainWindow)
				return
			}

			a.resultText.SetText(result)
			a.statusLabel.SetText(op + " complete")

			if match != nil {
				a.lastMatch = match
				a.exportBtn.Enable()
			}

			fyne.CurrentApp().SendNotification(&fyne.Notification{
				Title:   "Operation Complete",
				Content: op + " finished",
			})
		})
	}()
}

// handleSaveResult writes the current result text to a user-chosen file.
// Canceling the dialog leaves the result untouched on screen.
func (a *App) handleSaveResult() {
	if a.resultText.Text == "" {
		dialog.ShowError(fmt.Errorf("no result to save"), a.mainWindow)
		return
	}

	dialog.ShowFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if uc == nil {
			return // User canceled
		}
		defer uc.Close()

		outputPath := uc.URI().Path()

		if err := document.Save(a.resultText.Text, outputPath); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save: %w", err), a.mainWindow)
			return
		}

		a.statusLabel.SetText("Result saved")
		dialog.ShowInformation("Success", "Result saved to "+filepath.Base(outputPath), a.mainWindow)
	}, a.mainWindow)
}

// handleExport writes the most recent match result to a spreadsheet.
func (a *App) handleExport() {
	if a.lastMatch == nil {
		dialog.ShowError(fmt.Errorf("run a comparison first"), a.mainWindow)
		return
	}

	timestamp := time.Now().Format("2006-01-02_150405")
	defaultName := fmt.Sprintf("Job_Match_Report_%s.xlsx", timestamp)

	saveDialog := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if uc == nil {
			return // User canceled
		}
		defer uc.Close()

		outputPath := uc.URI().Path()

		if err := export.MatchReport(a.lastMatch, outputPath); err != nil {
			dialog.ShowError(fmt.Errorf("failed to export: %w", err), a.mainWindow)
			return
		}

		dialog.ShowInformation("Success", "Report exported to "+filepath.Base(outputPath), a.mainWindow)
	}, a.mainWindow)
	saveDialog.SetFileName(defaultName)
	saveDialog.Show()
}

// ensureAgent lazily constructs the pipeline agent so the window can open
// before an API key exists.
func (a *App) ensureAgent() (*pipeline.Agent, error) {
	if a.agent != nil {
		return a.agent, nil
	}

	apiKey := a.config.ResolveAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured; set %s or use the Settings tab", config.EnvAPIKey)
	}

	client, err := llm.NewGeminiClient(context.Background(), apiKey, a.config.ResolveModel())
	if err != nil {
		return nil, err
	}

	a.agent = pipeline.NewAgent(client)
	a.agent.SetProgressCallback(func(message string) {
		fyne.Do(func() {
			a.statusLabel.SetText(message)
		})
	})
	return a.agent, nil
}
