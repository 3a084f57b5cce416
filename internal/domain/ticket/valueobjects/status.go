package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen                TicketStatus = "open"
	StatusAwaitingResponsible TicketStatus = "awaiting_responsible"
	StatusInProgress          TicketStatus = "in_progress"
	StatusDone                TicketStatus = "done"
	StatusCompleted           TicketStatus = "completed"
	StatusCancelled           TicketStatus = "cancelled"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:                true,
	StatusAwaitingResponsible: true,
	StatusInProgress:          true,
	StatusDone:                true,
	StatusCompleted:           true,
	StatusCancelled:           true,
}

// AllStatuses returns the closed set of ticket statuses in display order.
func AllStatuses() []TicketStatus {
	return []TicketStatus{
		StatusOpen,
		StatusAwaitingResponsible,
		StatusInProgress,
		StatusDone,
		StatusCompleted,
		StatusCancelled,
	}
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsAwaitingResponsible() bool {
	return ts == StatusAwaitingResponsible
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsDone() bool {
	return ts == StatusDone
}

func (ts TicketStatus) IsCompleted() bool {
	return ts == StatusCompleted
}

func (ts TicketStatus) IsCancelled() bool {
	return ts == StatusCancelled
}

// IsActionable reports whether the ticket still needs work. Together with a
// critical or high urgency this is what feeds the dashboard's critical-open
// figures.
func (ts TicketStatus) IsActionable() bool {
	return ts == StatusOpen || ts == StatusInProgress || ts == StatusAwaitingResponsible
}

// NewTicketStatus parses a status string. There is deliberately no
// transition graph here: any valid status may follow any other.
func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
