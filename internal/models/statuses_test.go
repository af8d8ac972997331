package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRescueStatusTransitions(t *testing.T) {
	cases := []struct {
		from    RescueStatus
		to      RescueStatus
		allowed bool
	}{
		{RescueStatusOpen, RescueStatusInProgress, true},
		{RescueStatusOpen, RescueStatusRescued, true},
		{RescueStatusOpen, RescueStatusNotFound, true},
		{RescueStatusInProgress, RescueStatusRescued, true},
		{RescueStatusInProgress, RescueStatusNotFound, true},

		{RescueStatusOpen, RescueStatusOpen, false},
		{RescueStatusInProgress, RescueStatusOpen, false},
		{RescueStatusRescued, RescueStatusInProgress, false},
		{RescueStatusRescued, RescueStatusOpen, false},
		{RescueStatusNotFound, RescueStatusRescued, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestRescueStatusValidity(t *testing.T) {
	for _, s := range []RescueStatus{
		RescueStatusOpen, RescueStatusInProgress, RescueStatusRescued, RescueStatusNotFound,
	} {
		assert.True(t, s.IsValid(), string(s))
	}

	// Adoption vocabulary never leaks into rescue reports.
	assert.False(t, RescueStatus("approved").IsValid())
	assert.False(t, RescueStatus("pending").IsValid())
	assert.False(t, RescueStatus("").IsValid())
}

func TestRescueStatusTerminal(t *testing.T) {
	assert.True(t, RescueStatusRescued.IsTerminal())
	assert.True(t, RescueStatusNotFound.IsTerminal())
	assert.False(t, RescueStatusOpen.IsTerminal())
	assert.False(t, RescueStatusInProgress.IsTerminal())
}

func TestAdoptionStatusTransitions(t *testing.T) {
	assert.True(t, AdoptionStatusPending.CanTransitionTo(AdoptionStatusApproved))
	assert.True(t, AdoptionStatusPending.CanTransitionTo(AdoptionStatusRejected))

	// Decisions are final.
	assert.False(t, AdoptionStatusApproved.CanTransitionTo(AdoptionStatusRejected))
	assert.False(t, AdoptionStatusRejected.CanTransitionTo(AdoptionStatusApproved))
	assert.False(t, AdoptionStatusApproved.CanTransitionTo(AdoptionStatusPending))
	assert.False(t, AdoptionStatusPending.CanTransitionTo(AdoptionStatusPending))
}

func TestAdoptionStatusValidity(t *testing.T) {
	for _, s := range []AdoptionStatus{
		AdoptionStatusPending, AdoptionStatusApproved, AdoptionStatusRejected,
	} {
		assert.True(t, s.IsValid(), string(s))
	}

	// Rescue vocabulary never leaks into adoption requests.
	assert.False(t, AdoptionStatus("rescued").IsValid())
	assert.False(t, AdoptionStatus("open").IsValid())
}

func TestAdoptionStatusTerminal(t *testing.T) {
	assert.False(t, AdoptionStatusPending.IsTerminal())
	assert.True(t, AdoptionStatusApproved.IsTerminal())
	assert.True(t, AdoptionStatusRejected.IsTerminal())
}
