package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error. Fields carries per-field messages
// when more than one field failed.
type ValidationError struct {
	Field   string
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	if len(e.Fields) > 0 && e.Message == "" {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Sprintf("validation error: missing or invalid %s", strings.Join(names, ", "))
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// FieldErrors returns the field-level messages of the error
func (e *ValidationError) FieldErrors() map[string]string {
	if len(e.Fields) > 0 {
		return e.Fields
	}
	if e.Field != "" {
		return map[string]string{e.Field: e.Message}
	}
	return nil
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents a failed permission check (Forbidden)
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// InvalidTransitionError is returned when a trip is asked to move to a state
// that is not reachable from its current state
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: trip cannot move from %s to %s", e.From, e.To)
}

// PreconditionFailedError is returned when an operation requires state that is not met yet
type PreconditionFailedError struct {
	Message string
}

func (e *PreconditionFailedError) Error() string {
	return fmt.Sprintf("precondition failed: %s", e.Message)
}

// ReferencedEntityError is returned when a removal is blocked because another
// entity still references the target
type ReferencedEntityError struct {
	Entity       string
	ReferencedBy string
}

func (e *ReferencedEntityError) Error() string {
	return fmt.Sprintf("%s is still referenced by %s", e.Entity, e.ReferencedBy)
}

// ConflictError is returned when a concurrent write changed the row first
type ConflictError struct {
	Entity string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s was modified concurrently, reload and retry", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return t.Entity == "" || e.Entity == t.Entity
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrGroupNotFound        = &NotFoundError{Entity: "group"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "membership"}
	ErrInvitationNotFound   = &NotFoundError{Entity: "invitation"}
	ErrTripNotFound         = &NotFoundError{Entity: "trip"}
	ErrAssignmentNotFound   = &NotFoundError{Entity: "trip assignment"}
	ErrEquipmentNotFound    = &NotFoundError{Entity: "equipment"}
	ErrDriverNotFound       = &NotFoundError{Entity: "driver"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrGroupExists        = &AlreadyExistsError{Entity: "group", Context: "with this name in the organization"}
	ErrMembershipExists   = &AlreadyExistsError{Entity: "membership", Context: "for this user in the organization"}
	ErrInvitationExists   = &AlreadyExistsError{Entity: "invitation", Context: "pending for this email"}
	ErrAssignmentExists   = &AlreadyExistsError{Entity: "trip assignment", Context: "for this equipment and driver"}
	ErrEquipmentExists    = &AlreadyExistsError{Entity: "equipment", Context: "with this bus number"}
	ErrDriverExists       = &AlreadyExistsError{Entity: "driver", Context: "for this user"}
)

// Conflict Errors
var (
	ErrTripConflict       = &ConflictError{Entity: "trip"}
	ErrMembershipConflict = &ConflictError{Entity: "membership"}
)

// Business Logic Errors
var (
	ErrCreatorCannotLeave      = errors.New("the organization creator cannot leave or be removed; transfer ownership first")
	ErrCreatorDemotion         = &PreconditionFailedError{Message: "the creator role can only change by promoting another member to creator"}
	ErrCreatorInvite           = &ValidationError{Field: "member_type", Message: "creator cannot be granted by invitation"}
	ErrTripNotApproved         = &PreconditionFailedError{Message: "trip must be approved before buses and drivers can be assigned"}
	ErrTripNotAssigned         = &PreconditionFailedError{Message: "trip has no bus assignment"}
	ErrTripNotEditable         = &PreconditionFailedError{Message: "only draft trips can be edited"}
	ErrInvitationExpired       = &PreconditionFailedError{Message: "invitation has expired"}
	ErrInvitationNotPending    = &PreconditionFailedError{Message: "invitation is no longer pending"}
	ErrInvitationEmailMismatch = &AuthorizationError{Message: "invitation was issued to a different email"}
	ErrOrganizationInactive    = &PreconditionFailedError{Message: "organization is deactivated"}
	ErrGroupInactive           = &PreconditionFailedError{Message: "group is deactivated"}
	ErrEquipmentInactive       = &PreconditionFailedError{Message: "equipment is not in service"}
	ErrDriverInactive          = &PreconditionFailedError{Message: "driver is not active"}
	ErrInvalidPaginationParams = &ValidationError{Field: "page", Message: "page and page_size must be integers"}
)

// Authentication / Authorization Errors
var (
	ErrMissingActor  = &AuthenticationError{Message: "acting user not found in context"}
	ErrInvalidToken  = &AuthenticationError{Message: "invalid token"}
	ErrNotAMember    = &AuthorizationError{Message: "user is not a member of this organization"}
	ErrNotPermitted  = &AuthorizationError{Message: "operation not permitted for this member type"}
	ErrSchedulerAuth = &AuthenticationError{Message: "invalid scheduler secret"}
)

// Configuration Errors
var (
	ErrPolicyFileInvalid = &ConfigurationError{Message: "permission policy file could not be parsed"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError (Forbidden)
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsPreconditionFailed checks if an error is a PreconditionFailedError
func IsPreconditionFailed(err error) bool {
	var preconditionErr *PreconditionFailedError
	return errors.As(err, &preconditionErr)
}

// IsReferencedEntity checks if an error is a ReferencedEntityError
func IsReferencedEntity(err error) bool {
	var refErr *ReferencedEntityError
	return errors.As(err, &refErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// Code returns a stable machine-readable code for the error family
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCreatorCannotLeave):
		return "creator_cannot_leave"
	case IsNotFound(err):
		return "not_found"
	case IsAlreadyExists(err):
		return "already_exists"
	case IsValidation(err):
		return "validation_failed"
	case IsAuthentication(err):
		return "unauthenticated"
	case IsAuthorization(err):
		return "forbidden"
	case IsInvalidTransition(err):
		return "invalid_transition"
	case IsPreconditionFailed(err):
		return "precondition_failed"
	case IsReferencedEntity(err):
		return "referenced_entity"
	case IsConflict(err):
		return "conflict"
	}
	return "internal_error"
}

// HTTPStatus maps an error family to the HTTP status the API answers with
func HTTPStatus(err error) int {
	switch Code(err) {
	case "":
		return http.StatusOK
	case "not_found":
		return http.StatusNotFound
	case "already_exists", "invalid_transition", "referenced_entity", "conflict", "creator_cannot_leave":
		return http.StatusConflict
	case "validation_failed":
		return http.StatusBadRequest
	case "unauthenticated":
		return http.StatusUnauthorized
	case "forbidden":
		return http.StatusForbidden
	case "precondition_failed":
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// IsDomain reports whether err belongs to the known taxonomy rather than an infrastructure failure
func IsDomain(err error) bool {
	return Code(err) != "internal_error"
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewFieldValidationError creates a ValidationError carrying several field messages
func NewFieldValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

// NewReferencedEntityError creates a new ReferencedEntityError
func NewReferencedEntityError(entity, referencedBy string) error {
	return &ReferencedEntityError{Entity: entity, ReferencedBy: referencedBy}
}
