package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/abcpharmacy/backoffice-golang/internal/api"
	"github.com/abcpharmacy/backoffice-golang/internal/config"
	"github.com/abcpharmacy/backoffice-golang/internal/tui"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg := config.Load()
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)

	// The terminal owns stdout, so diagnostics go to a log file instead.
	logFile, err := os.OpenFile("dashboard.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	log.Printf("Starting ABC Pharmacy back-office dashboard against %s", cfg.APIBaseURL)

	program := tea.NewProgram(tui.New(client), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("Failed to run dashboard: %v", err)
	}
}
