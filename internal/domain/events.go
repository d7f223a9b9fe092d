package domain

// EventType names a channel on the dispatcher's event bus
type EventType string

const (
	EventQR            EventType = "qr"
	EventReady         EventType = "ready"
	EventAuthenticated EventType = "authenticated"
	EventAuthFailure   EventType = "auth_failure"
	EventInitError     EventType = "init_error"
	EventMessageSent   EventType = "message_sent"
	EventMessageError  EventType = "message_error"
)
