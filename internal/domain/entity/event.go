package entity

import "github.com/diegoclair/class-schedule-bot/internal/domain"

// Event is published by the dispatcher. Trigger and Recipient are set for
// message events, Data for pairing challenges, Err for failures.
type Event struct {
	Type      domain.EventType
	Trigger   *Trigger
	Recipient string
	Data      string
	Err       error
}
