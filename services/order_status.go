package services

import (
	"github.com/Animeshkhedkar0523/campus-smart-eats/entity"
)

var validStatuses = map[string]bool{
	entity.StatusPending:   true,
	entity.StatusPreparing: true,
	entity.StatusReady:     true,
	entity.StatusDelivered: true,
	entity.StatusCancelled: true,
}

// statusTransitions is the strict-mode adjacency table:
// pending -> preparing -> ready -> delivered, any non-terminal -> cancelled.
// Delivered and cancelled are terminal.
var statusTransitions = map[string][]string{
	entity.StatusPending:   {entity.StatusPreparing, entity.StatusCancelled},
	entity.StatusPreparing: {entity.StatusReady, entity.StatusCancelled},
	entity.StatusReady:     {entity.StatusDelivered, entity.StatusCancelled},
	entity.StatusDelivered: {},
	entity.StatusCancelled: {},
}

func IsValidStatus(s string) bool {
	return validStatuses[s]
}

func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
