package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/hmillward/taxfolio/internal/config"
	"github.com/hmillward/taxfolio/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: taxfolio-tui <books-file>")
		os.Exit(1)
	}

	_ = godotenv.Load()

	opts, err := config.LoadOptions()
	if err != nil {
		fmt.Printf("Error reading options: %v\n", err)
		os.Exit(1)
	}

	books, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error loading books file: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		tui.NewModel(books, opts),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
