package game

import (
	"time"

	"github.com/lox/houseedge/internal/deck"
	"github.com/lox/houseedge/internal/strategy"
)

// EventType represents a round event type with type safety
type EventType string

// EventType constants for round domain events
const (
	EventTypeRoundStart    EventType = "round_start"
	EventTypeCardDealt     EventType = "card_dealt"
	EventTypeActionChosen  EventType = "action_chosen"
	EventTypeHandSplit     EventType = "hand_split"
	EventTypeHandBust      EventType = "hand_bust"
	EventTypeSurrender     EventType = "surrender"
	EventTypeDealerStand   EventType = "dealer_stand"
	EventTypeRoundSettled  EventType = "round_settled"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event represents anything that happens during a round that an observer may
// care about. The engine publishes events at its decision points and never
// depends on whether anything is listening.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published when a round begins, after any shoe reset.
type RoundStartEvent struct {
	Wager     float64
	Remaining int // cards left in the shoe
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// CardDealtEvent is published for every card leaving the shoe.
type CardDealtEvent struct {
	To        string // "player", "dealer", "split"
	Card      deck.Card
	timestamp time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// ActionChosenEvent is published after a strategy decision is resolved,
// before the engine applies it.
type ActionChosenEvent struct {
	Hand      string // rendered hand at decision time
	HandValue int
	Upcard    deck.Card
	Raw       strategy.RawAction
	Resolved  strategy.Action
	timestamp time.Time
}

func (e ActionChosenEvent) EventType() EventType { return EventTypeActionChosen }
func (e ActionChosenEvent) Timestamp() time.Time { return e.timestamp }

// HandSplitEvent is published when a pair is split into two hands.
type HandSplitEvent struct {
	Rank      deck.Rank
	SplitAces bool
	Splits    int // splits performed this round, including this one
	timestamp time.Time
}

func (e HandSplitEvent) EventType() EventType { return EventTypeHandSplit }
func (e HandSplitEvent) Timestamp() time.Time { return e.timestamp }

// HandBustEvent is published when a player hand busts and leaves settlement.
type HandBustEvent struct {
	Hand      string
	Wager     float64
	timestamp time.Time
}

func (e HandBustEvent) EventType() EventType { return EventTypeHandBust }
func (e HandBustEvent) Timestamp() time.Time { return e.timestamp }

// SurrenderEvent is published when a surrender ends the round.
type SurrenderEvent struct {
	Hand      string
	Loss      float64 // half the surrendering hand's wager
	timestamp time.Time
}

func (e SurrenderEvent) EventType() EventType { return EventTypeSurrender }
func (e SurrenderEvent) Timestamp() time.Time { return e.timestamp }

// DealerStandEvent is published when the dealer finishes drawing.
type DealerStandEvent struct {
	Hand      string
	Value     int
	Busted    bool
	timestamp time.Time
}

func (e DealerStandEvent) EventType() EventType { return EventTypeDealerStand }
func (e DealerStandEvent) Timestamp() time.Time { return e.timestamp }

// RoundSettledEvent is published once per round with the final outcome.
type RoundSettledEvent struct {
	Net       float64
	Blackjack bool
	Surrender bool
	Bust      bool
	Push      bool
	timestamp time.Time
}

func (e RoundSettledEvent) EventType() EventType { return EventTypeRoundSettled }
func (e RoundSettledEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to round events
type EventSubscriber interface {
	OnEvent(event Event)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event Event)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
