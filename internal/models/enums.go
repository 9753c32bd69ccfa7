package models

import "strings"

// EventType discriminates the kinds of events in a member history
type EventType string

const (
	EventTypePurchase   EventType = "purchase"
	EventTypeShift      EventType = "shift"
	EventTypeCounter    EventType = "counter"
	EventTypeLeaveStart EventType = "leave_start"
	EventTypeLeaveEnd   EventType = "leave_end"
)

// ShiftState defines the attendance states of a shift registration
type ShiftState string

const (
	ShiftStateDone     ShiftState = "done"
	ShiftStateAbsent   ShiftState = "absent"
	ShiftStateExcused  ShiftState = "excused"
	ShiftStateWaiting  ShiftState = "waiting"
	ShiftStateReplaced ShiftState = "replaced"
)

// ShiftType defines the participation regimes of a shift
type ShiftType string

const (
	ShiftTypeStandard ShiftType = "standard"
	ShiftTypeFTOP     ShiftType = "ftop"
	ShiftTypeUnknown  ShiftType = "unknown"
)

// CounterType defines the two point counters a member holds
type CounterType string

const (
	CounterTypeFTOP     CounterType = "ftop"
	CounterTypeStandard CounterType = "standard"
)

// IsValid checks if the EventType is valid
func (e EventType) IsValid() bool {
	switch e {
	case EventTypePurchase, EventTypeShift, EventTypeCounter, EventTypeLeaveStart, EventTypeLeaveEnd:
		return true
	}
	return false
}

// IsValid checks if the ShiftState is valid
func (s ShiftState) IsValid() bool {
	switch s {
	case ShiftStateDone, ShiftStateAbsent, ShiftStateExcused, ShiftStateWaiting, ShiftStateReplaced:
		return true
	}
	return false
}

// IsValid checks if the ShiftType is valid
func (s ShiftType) IsValid() bool {
	switch s {
	case ShiftTypeStandard, ShiftTypeFTOP, ShiftTypeUnknown:
		return true
	}
	return false
}

// IsValid checks if the CounterType is valid
func (c CounterType) IsValid() bool {
	switch c {
	case CounterTypeFTOP, CounterTypeStandard:
		return true
	}
	return false
}

// ResolveShiftType maps a shift template type name, as stored upstream, to a
// ShiftType. Names mentioning "ftop" or "volant" are flying shifts.
func ResolveShiftType(name string) ShiftType {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "":
		return ShiftTypeUnknown
	case strings.Contains(name, "ftop"), strings.Contains(name, "volant"):
		return ShiftTypeFTOP
	default:
		return ShiftTypeStandard
	}
}
