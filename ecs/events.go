package ecs

// EventKind identifies what a system is reporting to the owner of the world.
type EventKind string

const (
	// EventSound asks for a sound cue; Data is the cue name.
	EventSound EventKind = "sound"
	// EventStageCleared fires when the player touches a stage exit.
	EventStageCleared EventKind = "stage_cleared"
	// EventGameWon fires when the player touches the final marker.
	EventGameWon EventKind = "game_won"
	// EventPlayerDied fires when the last life is lost.
	EventPlayerDied EventKind = "player_died"
	// EventPlayerHurt fires when a life is lost and the player respawns.
	EventPlayerHurt EventKind = "player_hurt"
	// EventCoinCollected fires once per coin picked up.
	EventCoinCollected EventKind = "coin_collected"
)

// Event is a generic ECS event payload.
type Event struct {
	Kind EventKind
	Data any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
