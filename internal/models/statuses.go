package models

type UserRole string
type ShelterStatus string

// RescueStatus is the vocabulary for lost/found pet reports.
// AdoptionStatus is the vocabulary for adoption requests. They are distinct
// types on purpose: an adoption value must never reach a rescue report.
type RescueStatus string
type AdoptionStatus string

const (
	UserRoleUser         UserRole = "user"
	UserRoleShelterAdmin UserRole = "shelter_admin"
	UserRoleAdmin        UserRole = "admin"

	ShelterStatusPending  ShelterStatus = "pending"
	ShelterStatusApproved ShelterStatus = "approved"
	ShelterStatusRejected ShelterStatus = "rejected"

	RescueStatusOpen       RescueStatus = "open"
	RescueStatusInProgress RescueStatus = "in_progress"
	RescueStatusRescued    RescueStatus = "rescued"
	RescueStatusNotFound   RescueStatus = "not_found"

	AdoptionStatusPending  AdoptionStatus = "pending"
	AdoptionStatusApproved AdoptionStatus = "approved"
	AdoptionStatusRejected AdoptionStatus = "rejected"
)

// rescueTransitions is the closed transition table. Terminal states have no
// entry; setting the current status again is not a transition.
var rescueTransitions = map[RescueStatus][]RescueStatus{
	RescueStatusOpen:       {RescueStatusInProgress, RescueStatusRescued, RescueStatusNotFound},
	RescueStatusInProgress: {RescueStatusRescued, RescueStatusNotFound},
}

var adoptionTransitions = map[AdoptionStatus][]AdoptionStatus{
	AdoptionStatusPending: {AdoptionStatusApproved, AdoptionStatusRejected},
}

func (s RescueStatus) IsValid() bool {
	switch s {
	case RescueStatusOpen, RescueStatusInProgress, RescueStatusRescued, RescueStatusNotFound:
		return true
	}
	return false
}

func (s RescueStatus) IsTerminal() bool {
	return s == RescueStatusRescued || s == RescueStatusNotFound
}

// CanTransitionTo reports whether the table allows s -> next.
func (s RescueStatus) CanTransitionTo(next RescueStatus) bool {
	for _, allowed := range rescueTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s AdoptionStatus) IsValid() bool {
	switch s {
	case AdoptionStatusPending, AdoptionStatusApproved, AdoptionStatusRejected:
		return true
	}
	return false
}

func (s AdoptionStatus) IsTerminal() bool {
	return s == AdoptionStatusApproved || s == AdoptionStatusRejected
}

func (s AdoptionStatus) CanTransitionTo(next AdoptionStatus) bool {
	for _, allowed := range adoptionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ShelterStatus) IsValid() bool {
	switch s {
	case ShelterStatusPending, ShelterStatusApproved, ShelterStatusRejected:
		return true
	}
	return false
}
