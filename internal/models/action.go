package models

// Actor is a party taking part in the money split of a rental.
type Actor string

const (
	ActorDriver     Actor = "driver"
	ActorOwner      Actor = "owner"
	ActorInsurance  Actor = "insurance"
	ActorAssistance Actor = "assistance"
	ActorPlatform   Actor = "drivy"
)

// Actors lists every actor in report order.
var Actors = []Actor{ActorDriver, ActorOwner, ActorInsurance, ActorAssistance, ActorPlatform}

// ActionType tells whether an actor pays or receives money.
type ActionType string

const (
	// Debit means the actor pays out.
	Debit ActionType = "debit"
	// Credit means the actor receives.
	Credit ActionType = "credit"
)

// Action is one money movement for one actor. Amount is never negative.
type Action struct {
	Who    Actor
	Type   ActionType
	Amount int64
}

// Signed returns the amount as a signed value: positive for credits,
// negative for debits.
func (a Action) Signed() int64 {
	if a.Type == Debit {
		return -a.Amount
	}
	return a.Amount
}
