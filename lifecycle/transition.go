package lifecycle

import "github.com/bitmark-inc/relief-api/schema"

// edges of the request status graph, closed has none
var edges = map[schema.RequestStatus][]schema.RequestStatus{
	schema.StatusOpen:       {schema.StatusInProgress, schema.StatusClosed},
	schema.StatusInProgress: {schema.StatusFulfilled, schema.StatusClosed},
	schema.StatusFulfilled:  {schema.StatusClosed},
}

// Reachable reports whether to can be reached from from by following one or
// more edges of the status graph.
func Reachable(from, to schema.RequestStatus) bool {
	seen := map[schema.RequestStatus]bool{}
	queue := append([]schema.RequestStatus{}, edges[from]...)

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if s == to {
			return true
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		queue = append(queue, edges[s]...)
	}
	return false
}

// ownerMove lists the moves a requester may make on their own request
func ownerMove(from, to schema.RequestStatus) bool {
	return from == schema.StatusOpen && (to == schema.StatusInProgress || to == schema.StatusClosed)
}
