package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	e := NewBaseEvent("soil.report.created", "report-1", "SoilReport")

	assert.Equal(t, "soil.report.created", e.EventType())
	assert.Equal(t, "report-1", e.AggregateID())
	assert.Equal(t, "SoilReport", e.AggregateType())

	_, err := uuid.Parse(e.EventID())
	require.NoError(t, err)

	assert.False(t, e.OccurredAt().Before(before))
}

func TestBaseEventIDsAreUnique(t *testing.T) {
	a := NewBaseEvent("x", "agg", "T")
	b := NewBaseEvent("x", "agg", "T")
	assert.NotEqual(t, a.EventID(), b.EventID())
}
