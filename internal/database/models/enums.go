package models

// SystemRole is the application-wide role of a user
type SystemRole string

const (
	SystemRoleAdmin  SystemRole = "admin"
	SystemRoleUser   SystemRole = "user"
	SystemRoleDriver SystemRole = "driver"
)

// MemberType is the role a user holds inside one organization
type MemberType string

const (
	MemberTypeCreator MemberType = "creator"
	MemberTypeAdmin   MemberType = "admin"
	MemberTypeMember  MemberType = "member"
)

// AllMemberTypes lists every member type, creator first
var AllMemberTypes = []MemberType{MemberTypeCreator, MemberTypeAdmin, MemberTypeMember}

// TripStatus is the lifecycle state of a trip
type TripStatus string

const (
	TripStatusDraft     TripStatus = "draft"
	TripStatusQuoted    TripStatus = "quoted"
	TripStatusApproved  TripStatus = "approved"
	TripStatusRejected  TripStatus = "rejected"
	TripStatusLive      TripStatus = "live"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCanceled  TripStatus = "canceled"
)

// NonTerminalTripStatuses lists the states a trip can still leave
var NonTerminalTripStatuses = []TripStatus{TripStatusDraft, TripStatusQuoted, TripStatusApproved, TripStatusLive}

// InvitationStatus is the state of an organization invitation
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRevoked  InvitationStatus = "revoked"
	InvitationStatusExpired  InvitationStatus = "expired"
)

// TargetKind selects how a notification is addressed
type TargetKind string

const (
	TargetKindUser      TargetKind = "user"
	TargetKindRole      TargetKind = "role"
	TargetKindBroadcast TargetKind = "broadcast"
)

// IsValid checks if the SystemRole is valid
func (r SystemRole) IsValid() bool {
	switch r {
	case SystemRoleAdmin, SystemRoleUser, SystemRoleDriver:
		return true
	}
	return false
}

// IsValid checks if the MemberType is valid
func (m MemberType) IsValid() bool {
	switch m {
	case MemberTypeCreator, MemberTypeAdmin, MemberTypeMember:
		return true
	}
	return false
}

// IsValid checks if the TripStatus is valid
func (s TripStatus) IsValid() bool {
	switch s {
	case TripStatusDraft, TripStatusQuoted, TripStatusApproved, TripStatusRejected,
		TripStatusLive, TripStatusCompleted, TripStatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves the status
func (s TripStatus) IsTerminal() bool {
	switch s {
	case TripStatusRejected, TripStatusCompleted, TripStatusCanceled:
		return true
	}
	return false
}

// IsValid checks if the TargetKind is valid
func (k TargetKind) IsValid() bool {
	switch k {
	case TargetKindUser, TargetKindRole, TargetKindBroadcast:
		return true
	}
	return false
}
