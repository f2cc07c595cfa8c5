package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"radiorove/internal/config"
	"radiorove/internal/eventbus"
	"radiorove/internal/ui"
)

func main() {
	// Set up logging
	logFile, err := os.OpenFile("radiorove.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}

	// Create UI model
	uiModel := ui.NewModel(bus, cfg)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventValueChanged, forward)
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventConfigSaved, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: true})

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Persist UI settings on exit
	if cfg.UISettings.AutosaveOnExit {
		uiModel.UpdateConfig()
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Error saving config: %v", err)
		}
	}

	// Cleanup
	close(eventChan)
}
