package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubble Tea program.
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application.
func New(model Model) *App {
	return &App{model: model}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// The filter bar's OnChange fires during Update; route its proposals
	// back through the program's message loop.
	a.model.emitter.send = a.program.Send

	// Graceful shutdown on termination signals.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()
	return err
}
