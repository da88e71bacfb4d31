package order

import (
	"chefbook/internal/domain/user"
)

type Status string

const (
	StatusUnpaid     Status = "unpaid"
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusCooking    Status = "cooking"
	StatusDelivering Status = "delivering"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnpaid, StatusPending, StatusAccepted, StatusCooking,
		StatusDelivering, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Trigger identifies who may drive a transition. Payment reconciliation
// acts as TriggerSystem; it is not a user-facing role.
type Trigger string

const (
	TriggerFoodie Trigger = "foodie"
	TriggerChef   Trigger = "chef"
	TriggerSystem Trigger = "system"
)

func TriggerFor(role user.Role) Trigger {
	if role == user.RoleChef {
		return TriggerChef
	}
	return TriggerFoodie
}

// transitions is the single source of truth for the order state machine.
// Every status change in the system goes through CanTransition; callers
// never hand-roll their own legality checks.
var transitions = map[Status]map[Status][]Trigger{
	StatusUnpaid: {
		StatusPending:   {TriggerSystem},
		StatusCancelled: {TriggerFoodie, TriggerSystem},
	},
	StatusPending: {
		StatusAccepted:  {TriggerChef},
		StatusCancelled: {TriggerFoodie, TriggerChef},
	},
	StatusAccepted: {
		StatusCooking:   {TriggerChef},
		StatusCancelled: {TriggerFoodie},
	},
	StatusCooking: {
		StatusDelivering: {TriggerChef},
	},
	StatusDelivering: {
		StatusCompleted: {TriggerFoodie},
	},
}

// CanTransition reports whether the edge from→to exists and may be driven
// by the given trigger. A missing edge yields ErrInvalidStatusTransition;
// an existing edge driven by the wrong party yields ErrForbiddenTransition,
// so callers can distinguish "wrong state" from "wrong actor".
func CanTransition(from, to Status, by Trigger) error {
	targets, ok := transitions[from]
	if !ok {
		return ErrInvalidStatusTransition
	}
	allowed, ok := targets[to]
	if !ok {
		return ErrInvalidStatusTransition
	}
	for _, t := range allowed {
		if t == by {
			return nil
		}
	}
	return ErrForbiddenTransition
}

// Cancellable statuses are the only ones a foodie-initiated cancel may
// leave from.
func Cancellable(s Status) bool {
	switch s {
	case StatusUnpaid, StatusPending, StatusAccepted:
		return true
	default:
		return false
	}
}
