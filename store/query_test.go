package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "created_at DESC, id", order("", false, requestOrderColumns))
	assert.Equal(t, "created_at ASC, id", order("created_at", true, requestOrderColumns))
	assert.Equal(t, "action_taken_at DESC NULLS LAST, created_at DESC, id", order("action_taken_at", false, requestOrderColumns))
	assert.Equal(t, "created_at DESC, id", order("title; DROP TABLE areas", false, requestOrderColumns))
}
