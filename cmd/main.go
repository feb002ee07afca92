package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/config"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/daemon"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/debugger"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/monitor"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/proc"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/ui"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {

	case "tui":
		runTUI()

	case "daemon":
		runDaemon()

	case "help":
		usage()

	default:
		fmt.Println("unknown command:", os.Args[1])
		usage()
	}
}

func usage() {
	fmt.Println(`
        procdebug commands:
        procdebug tui       → start the interactive process dashboard
        procdebug daemon    → start the background alert daemon
        procdebug help      → show help
    `)
}

func runTUI() {
	logger := log.New(os.Stderr, "[procdebug] ", log.LstdFlags)

	cfg, _ := config.LoadConfig()
	engine := monitor.NewEngine(proc.NewCollector(), logger)
	engine.SetOptions(daemon.EngineOptions(cfg))

	gateway := debugger.New(proc.NewSysController())

	program := tea.NewProgram(ui.NewModel(engine, gateway), tea.WithAltScreen())
	engine.SetNotify(func(u monitor.Update) {
		ui.SendUpdate(program, u)
	})

	ctx, cancel := context.WithCancel(context.Background())
	go engine.Run(ctx)

	if _, err := program.Run(); err != nil {
		logger.Printf("tui error: %v", err)
	}
	cancel()
}

func runDaemon() {
	logger := log.New(os.Stderr, "[procdebug-daemon] ", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := daemon.New(logger)
	if err := d.Run(ctx); err != nil && err != context.Canceled {
		logger.Printf("daemon stopped: %v", err)
	}
}
