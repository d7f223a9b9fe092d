package domain

import "errors"

// EventKind identifies which message a trigger produces when it fires
type EventKind string

const (
	KindMorning  EventKind = "morning"
	KindReminder EventKind = "reminder"
	KindEnd      EventKind = "end"
)

// NeedsQuote reports whether messages of this kind embed a motivational quote
func (k EventKind) NeedsQuote() bool {
	return k == KindMorning || k == KindReminder
}

// Trigger timing rules
const (
	FirstLessonHour   = 7
	FirstLessonMinute = 0
	MorningHour       = 5
	MorningMinute     = 0
	ReminderLead      = 10 // minutes before the lesson starts
)

// DefaultQuote is sent whenever the quote service cannot produce one
const DefaultQuote = "Aja rumangsa bisa, nanging bisaa rumangsa - Jangan merasa bisa, tetapi bisalah merasa"

// DefaultClassName is used in the morning greeting header when none is configured
const DefaultClassName = "XI RPL"

// ErrAuthFailure is returned by a transport whose credentials were rejected
var ErrAuthFailure = errors.New("transport authentication failed")
