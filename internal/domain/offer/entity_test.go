package offer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOffer_IsActiveAt(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	o := Offer{Active: true, ValidFrom: from, ValidTo: to}

	assert.False(t, o.IsActiveAt(from.Add(-time.Second)))
	assert.True(t, o.IsActiveAt(from))
	assert.True(t, o.IsActiveAt(to.Add(-time.Nanosecond)))
	assert.False(t, o.IsActiveAt(to), "window end is exclusive")

	o.Active = false
	assert.False(t, o.IsActiveAt(from.Add(time.Hour)))
}
