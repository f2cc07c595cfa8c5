package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFocusMoved    EventType = "FocusMoved"
	EventValueChanged  EventType = "ValueChanged"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventConfigChanged EventType = "ConfigChanged"
	EventAppReady      EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FocusMovedEvent is emitted when the roving tab stop of a group moves
type FocusMovedEvent struct {
	Group    string
	OldIndex int
	NewIndex int
}

func (e FocusMovedEvent) Type() EventType { return EventFocusMoved }

// ValueChangedEvent is emitted when a group's selected value changes
type ValueChangedEvent struct {
	Group    string
	OldValue string
	NewValue string
	Index    int // index of the newly selected option
}

func (e ValueChangedEvent) Type() EventType { return EventValueChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Orientation   Orientation
	TextDirection TextDirection
	Groups        int // number of configured groups
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	Orientation   Orientation
	TextDirection TextDirection
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
