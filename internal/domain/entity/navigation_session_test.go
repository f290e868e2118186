package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNavigationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from NavigationStatus
		to   NavigationStatus
		want bool
	}{
		{NavigationStatusActive, NavigationStatusPaused, true},
		{NavigationStatusActive, NavigationStatusActive, true},
		{NavigationStatusActive, NavigationStatusCompleted, true},
		{NavigationStatusPaused, NavigationStatusActive, true},
		{NavigationStatusPaused, NavigationStatusCancelled, true},
		{NavigationStatusCompleted, NavigationStatusActive, false},
		{NavigationStatusCancelled, NavigationStatusPaused, false},
		{NavigationStatusActive, NavigationStatus("lost"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNavigationRoute_IsGeneric(t *testing.T) {
	shopID := uuid.New()
	lat := 25.0

	assert.True(t, (&NavigationRoute{EndShopID: &shopID}).IsGeneric())
	assert.False(t, (&NavigationRoute{EndShopID: &shopID, StartLatitude: &lat}).IsGeneric())
	assert.False(t, (&NavigationRoute{}).IsGeneric())
}
