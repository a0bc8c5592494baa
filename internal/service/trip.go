package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bustrip-backend/internal/database/models"
	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/logger"
	"bustrip-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// tripTransitions lists the allowed moves out of every non-terminal status
var tripTransitions = map[models.TripStatus][]models.TripStatus{
	models.TripStatusDraft:    {models.TripStatusQuoted, models.TripStatusCanceled},
	models.TripStatusQuoted:   {models.TripStatusApproved, models.TripStatusRejected, models.TripStatusCanceled},
	models.TripStatusApproved: {models.TripStatusLive, models.TripStatusCanceled},
	models.TripStatusLive:     {models.TripStatusCompleted, models.TripStatusCanceled},
}

// CanTransition reports whether a trip may move from one status to another
func CanTransition(from, to models.TripStatus) bool {
	for _, next := range tripTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Trip decisions
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// CreateTripRequest represents the request to create a trip
type CreateTripRequest struct {
	OrganizationID   uuid.UUID  `json:"organization_id" validate:"required"`
	GroupID          *uuid.UUID `json:"group_id,omitempty"`
	CreatedForUserID *uuid.UUID `json:"created_for_user_id,omitempty"`
	Title            string     `json:"title" validate:"required,max=200"`
	Origin           string     `json:"origin,omitempty" validate:"max=255"`
	Destination      string     `json:"destination,omitempty" validate:"max=255"`
	DepartureAt      *time.Time `json:"departure_at,omitempty"`
	ReturnAt         *time.Time `json:"return_at,omitempty"`
	PassengerCount   int        `json:"passenger_count" validate:"gte=0"`
	Notes            string     `json:"notes,omitempty"`
}

// UpdateTripRequest represents a partial update of a draft trip
type UpdateTripRequest struct {
	GroupID        *uuid.UUID `json:"group_id,omitempty"`
	Title          *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Origin         *string    `json:"origin,omitempty" validate:"omitempty,max=255"`
	Destination    *string    `json:"destination,omitempty" validate:"omitempty,max=255"`
	DepartureAt    *time.Time `json:"departure_at,omitempty"`
	ReturnAt       *time.Time `json:"return_at,omitempty"`
	PassengerCount *int       `json:"passenger_count,omitempty" validate:"omitempty,gte=0"`
	Notes          *string    `json:"notes,omitempty"`
	Version        *int       `json:"version,omitempty"`
}

// DecisionRequest approves or rejects a quoted trip
type DecisionRequest struct {
	Decision    string   `json:"decision" validate:"required,oneof=approve reject"`
	QuotedPrice *float64 `json:"quoted_price,omitempty" validate:"omitempty,gte=0"`
	Comment     string   `json:"comment,omitempty" validate:"max=500"`
}

// AssignRequest assigns a bus and a driver to an approved trip
type AssignRequest struct {
	EquipmentID uuid.UUID `json:"equipment_id" validate:"required"`
	DriverID    uuid.UUID `json:"driver_id" validate:"required"`
}

// CancelRequest cancels a trip
type CancelRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// AssignmentResponse represents a bus assignment of a trip
type AssignmentResponse struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	EquipmentID uuid.UUID `json:"equipment_id"`
	DriverID    uuid.UUID `json:"driver_id"`
	AssignedBy  uuid.UUID `json:"assigned_by_user_id"`
	AssignedAt  string    `json:"assigned_at"`
}

// TripResponse represents the response for trip operations
type TripResponse struct {
	ID                 uuid.UUID            `json:"id"`
	OrganizationID     uuid.UUID            `json:"organization_id"`
	GroupID            *uuid.UUID           `json:"group_id,omitempty"`
	CreatedForUserID   uuid.UUID            `json:"created_for_user_id"`
	Title              string               `json:"title"`
	Origin             string               `json:"origin"`
	Destination        string               `json:"destination"`
	DepartureAt        *time.Time           `json:"departure_at,omitempty"`
	ReturnAt           *time.Time           `json:"return_at,omitempty"`
	PassengerCount     int                  `json:"passenger_count"`
	Notes              string               `json:"notes"`
	QuotedPrice        *float64             `json:"quoted_price,omitempty"`
	Status             models.TripStatus    `json:"status"`
	CancellationReason string               `json:"cancellation_reason,omitempty"`
	CopiedFromTripID   *uuid.UUID           `json:"copied_from_trip_id,omitempty"`
	Version            int                  `json:"version"`
	Assignments        []AssignmentResponse `json:"assignments,omitempty"`
	CreatedAt          string               `json:"created_at"`
	UpdatedAt          string               `json:"updated_at"`
}

// TripListResponse represents a paginated list of trips
type TripListResponse struct {
	Trips    []TripResponse `json:"trips"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ChangeLogResponse represents one status change of a trip
type ChangeLogResponse struct {
	ID              uuid.UUID         `json:"id"`
	OldStatus       models.TripStatus `json:"old_status,omitempty"`
	NewStatus       models.TripStatus `json:"new_status"`
	ChangedByUserID *uuid.UUID        `json:"changed_by_user_id,omitempty"`
	Comment         string            `json:"comment,omitempty"`
	ChangedAt       string            `json:"changed_at"`
}

// CompletionSummary reports the outcome of a scheduled completion run
type CompletionSummary struct {
	Completed []uuid.UUID       `json:"completed"`
	Failed    map[string]string `json:"failed,omitempty"`
}

// TripService drives the trip lifecycle
type TripService struct {
	repos     *repository.Repositories
	tx        repository.TxManager
	auth      Authorizer
	notifier  Notifier
	validator *validator.Validate
	now       func() time.Time
}

// NewTripService creates a new trip service
func NewTripService(
	repos *repository.Repositories,
	tx repository.TxManager,
	auth Authorizer,
	notifier Notifier,
	validator *validator.Validate,
) *TripService {
	return &TripService{
		repos:     repos,
		tx:        tx,
		auth:      auth,
		notifier:  notifier,
		validator: validator,
		now:       time.Now,
	}
}

// CreateTrip creates a new draft trip
func (s *TripService) CreateTrip(ctx context.Context, actor Actor, req *CreateTripRequest) (*TripResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.auth.Authorize(actor, req.OrganizationID, CapCreateTrip); err != nil {
		return nil, err
	}
	if err := s.checkOrganizationActive(req.OrganizationID); err != nil {
		return nil, err
	}
	if req.GroupID != nil {
		if err := s.checkGroup(req.OrganizationID, *req.GroupID); err != nil {
			return nil, err
		}
	}

	createdFor := actor.UserID
	if req.CreatedForUserID != nil {
		createdFor = *req.CreatedForUserID
	}
	if err := s.checkMember(req.OrganizationID, createdFor, "created_for_user_id"); err != nil {
		return nil, err
	}

	trip := &models.Trip{
		BaseModel:        models.BaseModel{CreatedBy: actor.audit(), UpdatedBy: actor.audit()},
		OrganizationID:   req.OrganizationID,
		GroupID:          req.GroupID,
		CreatedForUserID: createdFor,
		Title:            req.Title,
		Origin:           req.Origin,
		Destination:      req.Destination,
		DepartureAt:      req.DepartureAt,
		ReturnAt:         req.ReturnAt,
		PassengerCount:   req.PassengerCount,
		Notes:            req.Notes,
		Status:           models.TripStatusDraft,
		Version:          1,
	}

	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Trips.Create(trip); err != nil {
			return fmt.Errorf("failed to create trip: %w", err)
		}
		return s.appendLog(repos, trip.ID, "", models.TripStatusDraft, actor, "trip created")
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(trip, nil), nil
}

// UpdateTrip edits the specification of a draft trip
func (s *TripService) UpdateTrip(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateTripRequest) (*TripResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	trip, err := s.loadTrip(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.Authorize(actor, trip.OrganizationID, CapEditTrip); err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusDraft {
		return nil, apperrors.ErrTripNotEditable
	}
	if req.Version != nil && *req.Version != trip.Version {
		return nil, apperrors.ErrTripConflict
	}

	if req.GroupID != nil {
		if err := s.checkGroup(trip.OrganizationID, *req.GroupID); err != nil {
			return nil, err
		}
		trip.GroupID = req.GroupID
	}
	if req.Title != nil {
		trip.Title = *req.Title
	}
	if req.Origin != nil {
		trip.Origin = *req.Origin
	}
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.DepartureAt != nil {
		trip.DepartureAt = req.DepartureAt
	}
	if req.ReturnAt != nil {
		trip.ReturnAt = req.ReturnAt
	}
	if req.PassengerCount != nil {
		trip.PassengerCount = *req.PassengerCount
	}
	if req.Notes != nil {
		trip.Notes = *req.Notes
	}
	trip.UpdatedBy = actor.audit()

	if err := s.repos.Trips.Update(trip); err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	logger.WithContext(ctx).WithField("trip_id", trip.ID.String()).Debug("trip specification updated")
	return s.toResponse(trip, nil), nil
}

// SubmitForQuote moves a complete draft to quoted
func (s *TripService) SubmitForQuote(ctx context.Context, actor Actor, id uuid.UUID) (*TripResponse, error) {
	return s.transition(ctx, actor, id, models.TripStatusQuoted, CapSubmitTrip, "submitted for quote",
		func(_ *repository.Repositories, trip *models.Trip) error {
			return checkSpecificationComplete(trip)
		})
}

// ApproveOrReject decides on a quoted trip
func (s *TripService) ApproveOrReject(ctx context.Context, actor Actor, id uuid.UUID, req *DecisionRequest) (*TripResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	to := models.TripStatusRejected
	if req.Decision == DecisionApprove {
		to = models.TripStatusApproved
	}

	return s.transition(ctx, actor, id, to, CapApproveTrip, req.Comment,
		func(_ *repository.Repositories, trip *models.Trip) error {
			if req.QuotedPrice != nil {
				trip.QuotedPrice = req.QuotedPrice
			}
			if to == models.TripStatusApproved && trip.QuotedPrice == nil {
				return apperrors.NewValidationError("quoted_price", "is required to approve a trip")
			}
			return nil
		})
}

// Activate puts an approved trip with at least one assignment on the road
func (s *TripService) Activate(ctx context.Context, actor Actor, id uuid.UUID) (*TripResponse, error) {
	return s.transition(ctx, actor, id, models.TripStatusLive, CapActivateTrip, "trip started",
		func(repos *repository.Repositories, trip *models.Trip) error {
			count, err := repos.Assignments.CountByTripID(trip.ID)
			if err != nil {
				return fmt.Errorf("failed to count assignments: %w", err)
			}
			if count == 0 {
				return apperrors.ErrTripNotAssigned
			}
			return nil
		})
}

// Complete finishes a live trip. It runs as the system actor.
func (s *TripService) Complete(ctx context.Context, id uuid.UUID) (*TripResponse, error) {
	return s.transition(ctx, SystemActor, id, models.TripStatusCompleted, "", "trip completed", nil)
}

// CompleteElapsed completes every live trip whose return time is before now
func (s *TripService) CompleteElapsed(ctx context.Context, now time.Time) (*CompletionSummary, error) {
	trips, err := s.repos.Trips.GetLiveEndedBefore(now)
	if err != nil {
		return nil, fmt.Errorf("failed to get elapsed trips: %w", err)
	}

	summary := &CompletionSummary{Completed: []uuid.UUID{}}
	for _, trip := range trips {
		if _, err := s.Complete(ctx, trip.ID); err != nil {
			if summary.Failed == nil {
				summary.Failed = make(map[string]string)
			}
			summary.Failed[trip.ID.String()] = err.Error()
			logger.WithContext(ctx).WithError(err).WithField("trip_id", trip.ID.String()).Warn("failed to complete elapsed trip")
			continue
		}
		summary.Completed = append(summary.Completed, trip.ID)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"completed": len(summary.Completed),
		"failed":    len(summary.Failed),
	}).Info("elapsed trips completed")
	return summary, nil
}

// Cancel cancels a trip that has not reached a terminal status
func (s *TripService) Cancel(ctx context.Context, actor Actor, id uuid.UUID, req *CancelRequest) (*TripResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	return s.transition(ctx, actor, id, models.TripStatusCanceled, CapCancelTrip, req.Reason,
		func(_ *repository.Repositories, trip *models.Trip) error {
			trip.CancellationReason = req.Reason
			return nil
		})
}

// Copy clones the specification of a trip into a new draft. It is the only way
// to start over from a rejected trip.
func (s *TripService) Copy(ctx context.Context, actor Actor, id uuid.UUID) (*TripResponse, error) {
	source, err := s.loadTrip(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.Authorize(actor, source.OrganizationID, CapCreateTrip); err != nil {
		return nil, err
	}
	if err := s.checkOrganizationActive(source.OrganizationID); err != nil {
		return nil, err
	}

	sourceID := source.ID
	trip := &models.Trip{
		BaseModel:        models.BaseModel{CreatedBy: actor.audit(), UpdatedBy: actor.audit()},
		OrganizationID:   source.OrganizationID,
		GroupID:          source.GroupID,
		CreatedForUserID: source.CreatedForUserID,
		Title:            source.Title,
		Origin:           source.Origin,
		Destination:      source.Destination,
		DepartureAt:      source.DepartureAt,
		ReturnAt:         source.ReturnAt,
		PassengerCount:   source.PassengerCount,
		Notes:            source.Notes,
		Status:           models.TripStatusDraft,
		CopiedFromTripID: &sourceID,
		Version:          1,
	}

	err = s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Trips.Create(trip); err != nil {
			return fmt.Errorf("failed to copy trip: %w", err)
		}
		return s.appendLog(repos, trip.ID, "", models.TripStatusDraft, actor, "copied from trip "+sourceID.String())
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(trip, nil), nil
}

// Assign binds a bus and a driver to an approved trip. The trip version is
// bumped in the same transaction, so a concurrent transition of the trip conflicts.
func (s *TripService) Assign(ctx context.Context, actor Actor, tripID uuid.UUID, req *AssignRequest) (*AssignmentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	trip, err := s.loadTrip(tripID)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.Authorize(actor, trip.OrganizationID, CapAssignTrip); err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusApproved {
		return nil, apperrors.ErrTripNotApproved
	}

	var (
		assignment *models.TripBusAssignment
		equipment  *models.Equipment
		driver     *models.BusDriver
	)
	err = s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		trip.UpdatedBy = actor.audit()
		if err := repos.Trips.Touch(trip, models.TripStatusApproved); err != nil {
			if apperrors.IsConflict(err) {
				return err
			}
			return fmt.Errorf("failed to touch trip: %w", err)
		}

		equipment, err = repos.Equipment.GetByID(req.EquipmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrEquipmentNotFound
			}
			return fmt.Errorf("failed to get equipment: %w", err)
		}
		if !equipment.IsActive {
			return apperrors.ErrEquipmentInactive
		}

		driver, err = repos.Drivers.GetByID(req.DriverID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrDriverNotFound
			}
			return fmt.Errorf("failed to get driver: %w", err)
		}
		if !driver.IsActive {
			return apperrors.ErrDriverInactive
		}

		exists, err := repos.Assignments.Exists(trip.ID, equipment.ID, driver.ID)
		if err != nil {
			return fmt.Errorf("failed to check existing assignment: %w", err)
		}
		if exists {
			return apperrors.ErrAssignmentExists
		}

		assignment = &models.TripBusAssignment{
			BaseModel:        models.BaseModel{CreatedBy: actor.audit(), UpdatedBy: actor.audit()},
			TripID:           trip.ID,
			EquipmentID:      equipment.ID,
			DriverID:         driver.ID,
			AssignedByUserID: actor.UserID,
			AssignedAt:       s.now(),
		}
		if err := repos.Assignments.Create(assignment); err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, Message{
		Title:   "New trip assignment",
		Message: fmt.Sprintf("You drive bus %s for trip %q", equipment.BusNumber, trip.Title),
		Target:  ToUser(driver.UserID),
	})

	resp := toAssignmentResponse(assignment)
	return &resp, nil
}

// Unassign removes an assignment from an approved trip, bumping the trip
// version in the same transaction
func (s *TripService) Unassign(ctx context.Context, actor Actor, tripID, assignmentID uuid.UUID) error {
	trip, err := s.loadTrip(tripID)
	if err != nil {
		return err
	}
	if _, err := s.auth.Authorize(actor, trip.OrganizationID, CapAssignTrip); err != nil {
		return err
	}
	if trip.Status != models.TripStatusApproved {
		return apperrors.ErrTripNotApproved
	}

	err = s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		trip.UpdatedBy = actor.audit()
		if err := repos.Trips.Touch(trip, models.TripStatusApproved); err != nil {
			if apperrors.IsConflict(err) {
				return err
			}
			return fmt.Errorf("failed to touch trip: %w", err)
		}

		assignment, err := repos.Assignments.GetByID(assignmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAssignmentNotFound
			}
			return fmt.Errorf("failed to get assignment: %w", err)
		}
		if assignment.TripID != trip.ID {
			return apperrors.ErrAssignmentNotFound
		}

		if err := repos.Assignments.Delete(assignment.ID); err != nil {
			return fmt.Errorf("failed to delete assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("trip_id", trip.ID.String()).Info("trip assignment removed")
	return nil
}

// GetTrip retrieves a trip with its assignments
func (s *TripService) GetTrip(actor Actor, id uuid.UUID) (*TripResponse, error) {
	trip, err := s.loadTrip(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.RequireMembership(actor, trip.OrganizationID); err != nil {
		return nil, err
	}
	return s.toResponse(trip, trip.Assignments), nil
}

// ListTrips lists the trips of an organization, optionally filtered by status
func (s *TripService) ListTrips(actor Actor, orgID uuid.UUID, status string, page, pageSize int) (*TripListResponse, error) {
	if _, err := s.auth.RequireMembership(actor, orgID); err != nil {
		return nil, err
	}

	var filter *models.TripStatus
	if status != "" {
		st := models.TripStatus(status)
		if !st.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown trip status")
		}
		filter = &st
	}

	limit, offset, page, pageSize := normalizePagination(page, pageSize)
	trips, total, err := s.repos.Trips.GetByOrganizationID(orgID, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get trips: %w", err)
	}

	responses := make([]TripResponse, len(trips))
	for i := range trips {
		responses[i] = *s.toResponse(&trips[i], nil)
	}

	return &TripListResponse{
		Trips:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetChangeLog retrieves the status history of a trip, oldest first
func (s *TripService) GetChangeLog(actor Actor, id uuid.UUID) ([]ChangeLogResponse, error) {
	trip, err := s.loadTrip(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.RequireMembership(actor, trip.OrganizationID); err != nil {
		return nil, err
	}

	entries, err := s.repos.ChangeLogs.GetByTripID(trip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get change log: %w", err)
	}

	responses := make([]ChangeLogResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ChangeLogResponse{
			ID:              entry.ID,
			OldStatus:       entry.OldStatus,
			NewStatus:       entry.NewStatus,
			ChangedByUserID: entry.ChangedByUserID,
			Comment:         entry.Comment,
			ChangedAt:       entry.ChangedAt.Format(time.RFC3339),
		}
	}
	return responses, nil
}

// transition authorizes the actor, validates the move and writes the new status
// together with its change log entry. prepare runs inside the transaction before
// the write and may adjust the trip or veto the move.
func (s *TripService) transition(
	ctx context.Context,
	actor Actor,
	id uuid.UUID,
	to models.TripStatus,
	capability Capability,
	comment string,
	prepare func(repos *repository.Repositories, trip *models.Trip) error,
) (*TripResponse, error) {
	trip, err := s.loadTrip(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.auth.Authorize(actor, trip.OrganizationID, capability); err != nil {
		return nil, err
	}
	if !CanTransition(trip.Status, to) {
		return nil, apperrors.NewInvalidTransitionError(string(trip.Status), string(to))
	}

	from := trip.Status
	err = s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if prepare != nil {
			if err := prepare(repos, trip); err != nil {
				return err
			}
		}

		trip.Status = to
		trip.UpdatedBy = actor.audit()
		if err := repos.Trips.Update(trip); err != nil {
			if apperrors.IsConflict(err) {
				return err
			}
			return fmt.Errorf("failed to update trip status: %w", err)
		}
		return s.appendLog(repos, trip.ID, from, to, actor, comment)
	})
	if err != nil {
		trip.Status = from
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"trip_id": trip.ID.String(),
		"from":    string(from),
		"to":      string(to),
	}).Info("trip status changed")

	s.notifyTransition(ctx, trip, from)
	return s.toResponse(trip, nil), nil
}

func (s *TripService) notifyTransition(ctx context.Context, trip *models.Trip, from models.TripStatus) {
	s.notifier.Notify(ctx, Message{
		Title:   "Trip " + string(trip.Status),
		Message: fmt.Sprintf("Trip %q moved from %s to %s", trip.Title, from, trip.Status),
		Target:  ToUser(trip.CreatedForUserID),
	})

	if trip.Status == models.TripStatusQuoted {
		s.notifier.Notify(ctx, Message{
			Title:   "Quote requested",
			Message: fmt.Sprintf("Trip %q is waiting for a quote", trip.Title),
			Target:  ToRole(models.SystemRoleAdmin),
		})
	}
}

func (s *TripService) appendLog(repos *repository.Repositories, tripID uuid.UUID, from, to models.TripStatus, actor Actor, comment string) error {
	entry := &models.TripChangeLog{
		TripID:          tripID,
		OldStatus:       from,
		NewStatus:       to,
		ChangedByUserID: actor.changedBy(),
		Comment:         comment,
		ChangedAt:       s.now(),
	}
	if err := repos.ChangeLogs.Append(entry); err != nil {
		return fmt.Errorf("failed to append change log: %w", err)
	}
	return nil
}

func (s *TripService) loadTrip(id uuid.UUID) (*models.Trip, error) {
	trip, err := s.repos.Trips.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

func (s *TripService) checkOrganizationActive(orgID uuid.UUID) error {
	org, err := s.repos.Organizations.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}
	if !org.IsActive {
		return apperrors.ErrOrganizationInactive
	}
	return nil
}

func (s *TripService) checkGroup(orgID, groupID uuid.UUID) error {
	group, err := s.repos.Groups.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("failed to get group: %w", err)
	}
	if group.OrganizationID != orgID {
		return apperrors.ErrGroupNotFound
	}
	if !group.IsActive {
		return apperrors.ErrGroupInactive
	}
	return nil
}

func (s *TripService) checkMember(orgID, userID uuid.UUID, field string) error {
	_, err := s.repos.Memberships.GetByOrganizationAndUser(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError(field, "must be a member of the organization")
		}
		return fmt.Errorf("failed to check membership: %w", err)
	}
	return nil
}

// checkSpecificationComplete lists every field a trip needs before it can be quoted
func checkSpecificationComplete(trip *models.Trip) error {
	fields := make(map[string]string)
	if trip.Destination == "" {
		fields["destination"] = "is required"
	}
	if trip.DepartureAt == nil {
		fields["departure_at"] = "is required"
	}
	if trip.ReturnAt == nil {
		fields["return_at"] = "is required"
	} else if trip.DepartureAt != nil && !trip.ReturnAt.After(*trip.DepartureAt) {
		fields["return_at"] = "must be after departure_at"
	}
	if trip.GroupID == nil {
		fields["group_id"] = "is required"
	}
	if trip.PassengerCount <= 0 {
		fields["passenger_count"] = "must be positive"
	}
	if len(fields) > 0 {
		return apperrors.NewFieldValidationError(fields)
	}
	return nil
}

func (s *TripService) toResponse(trip *models.Trip, assignments []models.TripBusAssignment) *TripResponse {
	resp := &TripResponse{
		ID:                 trip.ID,
		OrganizationID:     trip.OrganizationID,
		GroupID:            trip.GroupID,
		CreatedForUserID:   trip.CreatedForUserID,
		Title:              trip.Title,
		Origin:             trip.Origin,
		Destination:        trip.Destination,
		DepartureAt:        trip.DepartureAt,
		ReturnAt:           trip.ReturnAt,
		PassengerCount:     trip.PassengerCount,
		Notes:              trip.Notes,
		QuotedPrice:        trip.QuotedPrice,
		Status:             trip.Status,
		CancellationReason: trip.CancellationReason,
		CopiedFromTripID:   trip.CopiedFromTripID,
		Version:            trip.Version,
		CreatedAt:          trip.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          trip.UpdatedAt.Format(time.RFC3339),
	}
	for i := range assignments {
		resp.Assignments = append(resp.Assignments, toAssignmentResponse(&assignments[i]))
	}
	return resp
}

func toAssignmentResponse(a *models.TripBusAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:          a.ID,
		TripID:      a.TripID,
		EquipmentID: a.EquipmentID,
		DriverID:    a.DriverID,
		AssignedBy:  a.AssignedByUserID,
		AssignedAt:  a.AssignedAt.Format(time.RFC3339),
	}
}
