package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func latte() MenuItem {
	return MenuItem{ID: "item1", Name: "Signature Latte", Price: 5.50, Category: "coffee"}
}

func croissant() MenuItem {
	return MenuItem{ID: "item6", Name: "Almond Croissant", Price: 4.75, Category: "pastry"}
}

func TestCart_Add_MergesSameItem(t *testing.T) {
	var cart Cart

	cart.Add(latte(), 1)
	cart.Add(croissant(), 2)
	cart.Add(latte(), 3)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, "item1", cart.Items[0].ID)
	assert.Equal(t, 2, cart.Items[1].Quantity)
}

func TestCart_Add_AccumulatesQuantityAcrossSequences(t *testing.T) {
	var cart Cart
	adds := []int{1, 2, 1, 5}

	want := 0
	for _, q := range adds {
		cart.Add(latte(), q)
		want += q
	}

	require.Len(t, cart.Items, 1)
	assert.Equal(t, want, cart.Items[0].Quantity)
	assert.Equal(t, want, cart.Count())
}

func TestCart_SetQuantityZeroEqualsRemove(t *testing.T) {
	var viaSet, viaRemove Cart
	for _, c := range []*Cart{&viaSet, &viaRemove} {
		c.Add(latte(), 2)
		c.Add(croissant(), 1)
	}

	viaSet.SetQuantity("item1", 0)
	viaRemove.Remove("item1")

	assert.Equal(t, viaRemove.Items, viaSet.Items)
}

func TestCart_SetQuantity(t *testing.T) {
	var cart Cart
	cart.Add(latte(), 2)

	cart.SetQuantity("item1", 7)
	assert.Equal(t, 7, cart.Items[0].Quantity)

	// Absent ids are a no-op, not an append.
	cart.SetQuantity("nope", 3)
	assert.Len(t, cart.Items, 1)

	cart.SetQuantity("item1", -1)
	assert.True(t, cart.IsEmpty())
}

func TestCart_RemoveAbsentIsNoop(t *testing.T) {
	var cart Cart
	cart.Add(latte(), 1)

	cart.Remove("missing")

	assert.Len(t, cart.Items, 1)
}

func TestCart_TotalAndCountRecomputed(t *testing.T) {
	var cart Cart
	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.Count())

	cart.Add(latte(), 2)
	cart.Add(croissant(), 1)
	assert.InDelta(t, 5.50*2+4.75, cart.Total(), 1e-9)
	assert.Equal(t, 3, cart.Count())

	cart.SetQuantity("item1", 1)
	assert.InDelta(t, 5.50+4.75, cart.Total(), 1e-9)
	assert.Equal(t, 2, cart.Count())

	cart.Clear()
	assert.Zero(t, cart.Total())
	assert.True(t, cart.IsEmpty())
}

func TestCartItem_JSONRoundTripPreservesOrder(t *testing.T) {
	var cart Cart
	cart.Add(croissant(), 3)
	cart.Add(latte(), 1)

	data, err := json.Marshal(cart.Items)
	require.NoError(t, err)

	var restored []CartItem
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, cart.Items, restored)
}

func TestOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"processing to completed", OrderStatusProcessing, OrderStatusCompleted, true},
		{"processing to cancelled", OrderStatusProcessing, OrderStatusCancelled, true},
		{"completed is final", OrderStatusCompleted, OrderStatusCancelled, false},
		{"cancelled is final", OrderStatusCancelled, OrderStatusCompleted, false},
		{"same status", OrderStatusProcessing, OrderStatusProcessing, false},
		{"unknown status", OrderStatusProcessing, OrderStatus("shipped"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleCustomer.IsValid())
	assert.False(t, Role("merchant").IsValid())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{ID: "admin", Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{ID: "user1", Role: RoleCustomer}).IsAdmin())

	var nobody *User
	assert.False(t, nobody.IsAdmin())
}
