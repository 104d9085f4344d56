package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		ok   bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, ok: true},
		{name: "pending to declined", from: StatusPending, to: StatusDeclined, ok: true},
		{name: "confirmed to shipped", from: StatusConfirmed, to: StatusShipped, ok: true},
		{name: "shipped to delivered", from: StatusShipped, to: StatusDelivered, ok: true},
		{name: "no skipping", from: StatusPending, to: StatusShipped, ok: false},
		{name: "no reversal", from: StatusShipped, to: StatusConfirmed, ok: false},
		{name: "delivered is terminal", from: StatusDelivered, to: StatusPending, ok: false},
		{name: "delivered to confirmed", from: StatusDelivered, to: StatusConfirmed, ok: false},
		{name: "declined is terminal", from: StatusDeclined, to: StatusConfirmed, ok: false},
		{name: "declined only from pending", from: StatusConfirmed, to: StatusDeclined, ok: false},
		{name: "no self transition", from: StatusPending, to: StatusPending, ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"pending", "confirmed", "shipped", "delivered", "declined"} {
		status, ok := ParseOrderStatus(s)
		require.True(t, ok, s)
		require.Equal(t, OrderStatus(s), status)
	}

	_, ok := ParseOrderStatus("cancelled")
	assert.False(t, ok)

	_, ok = ParseOrderStatus("")
	assert.False(t, ok)
}

func TestOrderStatus_Terminal(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusDeclined.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.False(t, StatusShipped.Terminal())
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	role, ok := ParseRole("farmer")
	require.True(t, ok)
	assert.Equal(t, RoleFarmer, role)

	role, ok = ParseRole("vendor")
	require.True(t, ok)
	assert.Equal(t, RoleVendor, role)

	_, ok = ParseRole("admin")
	assert.False(t, ok)
}
