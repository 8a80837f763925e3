package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/schema"
)

func TestReachable(t *testing.T) {
	reachable := map[schema.RequestStatus][]schema.RequestStatus{
		schema.StatusOpen:       {schema.StatusInProgress, schema.StatusFulfilled, schema.StatusClosed},
		schema.StatusInProgress: {schema.StatusFulfilled, schema.StatusClosed},
		schema.StatusFulfilled:  {schema.StatusClosed},
		schema.StatusClosed:     {},
	}

	for _, from := range schema.RequestStatuses {
		for _, to := range schema.RequestStatuses {
			want := false
			for _, s := range reachable[from] {
				if s == to {
					want = true
				}
			}
			assert.Equal(t, want, Reachable(from, to), "%s -> %s", from, to)
		}
	}
}

func TestOwnerMove(t *testing.T) {
	assert.True(t, ownerMove(schema.StatusOpen, schema.StatusInProgress))
	assert.True(t, ownerMove(schema.StatusOpen, schema.StatusClosed))
	assert.False(t, ownerMove(schema.StatusOpen, schema.StatusFulfilled))
	assert.False(t, ownerMove(schema.StatusInProgress, schema.StatusClosed))
}
