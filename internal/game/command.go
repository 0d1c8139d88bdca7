package game

import "errors"

// CommandType names an input the session understands.
type CommandType string

const (
	CommandLetter CommandType = "letter"
	CommandDelete CommandType = "delete"
	CommandSubmit CommandType = "submit"
)

// Command is one input event from a rendering layer.
type Command struct {
	Type   CommandType `json:"type"`
	Letter string      `json:"letter,omitempty"`
}

// EventKind tells the rendering layer what happened.
type EventKind string

const (
	EventUpdated  EventKind = "updated"  // active attempt changed
	EventIgnored  EventKind = "ignored"  // nothing to do (full row, finished game, unknown key)
	EventRejected EventKind = "rejected" // submission refused; see Err
	EventScored   EventKind = "scored"   // attempt scored, game continues
	EventWon      EventKind = "won"
	EventLost     EventKind = "lost"
)

// Event is the outcome of applying a Command.
type Event struct {
	Kind   EventKind
	Err    error   // set for EventRejected
	Result *Result // set for scored/won/lost
}

// Terminal reports whether the event ended the session.
func (e Event) Terminal() bool { return e.Kind == EventWon || e.Kind == EventLost }

// Letter builds a letter command.
func Letter(r rune) Command { return Command{Type: CommandLetter, Letter: string(r)} }

// Apply runs cmd against the session and describes the outcome.
func (s *Session) Apply(cmd Command, dict Dictionary) Event {
	switch cmd.Type {
	case CommandLetter:
		r := []rune(cmd.Letter)
		if len(r) != 1 || !s.AppendLetter(r[0]) {
			return Event{Kind: EventIgnored}
		}
		return Event{Kind: EventUpdated}

	case CommandDelete:
		if !s.DeleteLetter() {
			return Event{Kind: EventIgnored}
		}
		return Event{Kind: EventUpdated}

	case CommandSubmit:
		res, err := s.Submit(dict)
		switch {
		case errors.Is(err, ErrGameOver):
			return Event{Kind: EventIgnored}
		case err != nil:
			return Event{Kind: EventRejected, Err: err}
		}
		ev := Event{Kind: EventScored, Result: &res}
		switch res.Status {
		case StatusWon:
			ev.Kind = EventWon
		case StatusLost:
			ev.Kind = EventLost
		}
		return ev
	}
	return Event{Kind: EventIgnored}
}
