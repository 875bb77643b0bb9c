package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/iaso/internal/cli"
	"github.com/alexanderramin/iaso/internal/db"
	"github.com/alexanderramin/iaso/internal/engine"
	"github.com/alexanderramin/iaso/internal/llm"
	"github.com/alexanderramin/iaso/internal/narrative"
	"github.com/alexanderramin/iaso/internal/questionbank"
	"github.com/alexanderramin/iaso/internal/repository"
	"github.com/alexanderramin/iaso/internal/scoring"
	"github.com/alexanderramin/iaso/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.iaso/iaso.db
	dbPath := os.Getenv("IASO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".iaso", "iaso.db")
	}

	// Question bank: env var points at a JSON document, otherwise the
	// built-in screening bank is used.
	var bank *questionbank.Bank
	if bankPath := os.Getenv("IASO_QUESTIONS"); bankPath != "" {
		loaded, err := questionbank.LoadFile(bankPath)
		if err != nil {
			return fmt.Errorf("loading question bank: %w", err)
		}
		bank = loaded
	} else {
		bank = questionbank.DefaultBank()
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and unit of work
	assessmentRepo := repository.NewSQLiteAssessmentRepo(database)
	resultRepo := repository.NewSQLiteResultRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the narrative collaborator (only when LLM is enabled)
	var llmClient llm.Client
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOllamaClient(llmCfg, observer)
	}
	narrator := narrative.NewService(llmClient)

	var svcObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("IASO_LOG_USE_CASES") == "true" {
		svcObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	machine := engine.NewMachine(bank)
	bands := scoring.BandsFromConfig(bank.Bands())
	if err := bands.Validate(); err != nil {
		return fmt.Errorf("invalid tier bands: %w", err)
	}

	app := &cli.App{
		Assessments: service.NewAssessmentService(machine, bands, assessmentRepo, resultRepo, narrator, uow, svcObserver),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
