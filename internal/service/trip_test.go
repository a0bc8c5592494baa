package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"bustrip-backend/internal/database/models"
	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/mocks"
	"bustrip-backend/internal/repository"
	"bustrip-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type TripServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	trips       *mocks.MockTripRepositoryInterface
	changeLogs  *mocks.MockTripChangeLogRepositoryInterface
	assignments *mocks.MockAssignmentRepositoryInterface
	orgs        *mocks.MockOrganizationRepositoryInterface
	groups      *mocks.MockGroupRepositoryInterface
	memberships *mocks.MockMembershipRepositoryInterface
	equipment   *mocks.MockEquipmentRepositoryInterface
	drivers     *mocks.MockDriverRepositoryInterface
	tx          *mocks.MockTxManager
	auth        *mocks.MockAuthorizer
	notifier    *mocks.MockNotifier
	repos       *repository.Repositories
	service     *service.TripService

	userID uuid.UUID
	orgID  uuid.UUID
	actor  service.Actor
}

func (suite *TripServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.trips = mocks.NewMockTripRepositoryInterface(suite.ctrl)
	suite.changeLogs = mocks.NewMockTripChangeLogRepositoryInterface(suite.ctrl)
	suite.assignments = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.orgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.groups = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.memberships = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.equipment = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	suite.drivers = mocks.NewMockDriverRepositoryInterface(suite.ctrl)
	suite.tx = mocks.NewMockTxManager(suite.ctrl)
	suite.auth = mocks.NewMockAuthorizer(suite.ctrl)
	suite.notifier = mocks.NewMockNotifier(suite.ctrl)

	suite.repos = &repository.Repositories{
		Trips:         suite.trips,
		ChangeLogs:    suite.changeLogs,
		Assignments:   suite.assignments,
		Organizations: suite.orgs,
		Groups:        suite.groups,
		Memberships:   suite.memberships,
		Equipment:     suite.equipment,
		Drivers:       suite.drivers,
	}
	suite.service = service.NewTripService(suite.repos, suite.tx, suite.auth, suite.notifier, service.NewValidator())

	suite.userID = uuid.New()
	suite.orgID = uuid.New()
	suite.actor = service.UserActor(suite.userID)
}

func (suite *TripServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// runTransactions makes the mocked TxManager execute its callback on the mocked repositories
func (suite *TripServiceTestSuite) runTransactions() {
	suite.tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*repository.Repositories) error) error {
			return fn(suite.repos)
		}).AnyTimes()
}

func (suite *TripServiceTestSuite) allow(capability service.Capability) {
	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, capability).
		Return(&models.OrganizationMembership{UserID: suite.userID, MemberType: models.MemberTypeAdmin}, nil)
}

func (suite *TripServiceTestSuite) newTrip(status models.TripStatus) *models.Trip {
	departure := time.Now().Add(48 * time.Hour)
	ret := departure.Add(8 * time.Hour)
	groupID := uuid.New()
	return &models.Trip{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		OrganizationID:   suite.orgID,
		GroupID:          &groupID,
		CreatedForUserID: suite.userID,
		Title:            "Museum visit",
		Destination:      "Vienna",
		DepartureAt:      &departure,
		ReturnAt:         &ret,
		PassengerCount:   30,
		Status:           status,
		Version:          3,
	}
}

func (suite *TripServiceTestSuite) TestCanTransition() {
	testCases := []struct {
		from, to models.TripStatus
		allowed  bool
	}{
		{models.TripStatusDraft, models.TripStatusQuoted, true},
		{models.TripStatusDraft, models.TripStatusCanceled, true},
		{models.TripStatusDraft, models.TripStatusApproved, false},
		{models.TripStatusQuoted, models.TripStatusApproved, true},
		{models.TripStatusQuoted, models.TripStatusRejected, true},
		{models.TripStatusQuoted, models.TripStatusDraft, false},
		{models.TripStatusApproved, models.TripStatusLive, true},
		{models.TripStatusApproved, models.TripStatusQuoted, false},
		{models.TripStatusLive, models.TripStatusCompleted, true},
		{models.TripStatusLive, models.TripStatusCanceled, true},
		{models.TripStatusRejected, models.TripStatusDraft, false},
		{models.TripStatusCompleted, models.TripStatusCanceled, false},
		{models.TripStatusCanceled, models.TripStatusDraft, false},
	}

	for _, tc := range testCases {
		suite.Run(fmt.Sprintf("%s_to_%s", tc.from, tc.to), func() {
			assert.Equal(suite.T(), tc.allowed, service.CanTransition(tc.from, tc.to))
		})
	}
}

func (suite *TripServiceTestSuite) TestCreateTrip_WritesInitialChangeLog() {
	suite.runTransactions()
	suite.allow(service.CapCreateTrip)
	suite.orgs.EXPECT().GetByID(suite.orgID).Return(&models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, IsActive: true}, nil)
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, suite.userID).Return(&models.OrganizationMembership{}, nil)
	suite.trips.EXPECT().Create(gomock.Any()).DoAndReturn(func(trip *models.Trip) error {
		trip.ID = uuid.New()
		return nil
	})

	var entry *models.TripChangeLog
	suite.changeLogs.EXPECT().Append(gomock.Any()).DoAndReturn(func(e *models.TripChangeLog) error {
		entry = e
		return nil
	})

	resp, err := suite.service.CreateTrip(context.Background(), suite.actor, &service.CreateTripRequest{
		OrganizationID: suite.orgID,
		Title:          "School trip",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.TripStatusDraft, resp.Status)
	assert.Equal(suite.T(), suite.userID, resp.CreatedForUserID)
	assert.Equal(suite.T(), 1, resp.Version)
	suite.Require().NotNil(entry)
	assert.Equal(suite.T(), models.TripStatus(""), entry.OldStatus)
	assert.Equal(suite.T(), models.TripStatusDraft, entry.NewStatus)
	assert.Equal(suite.T(), resp.ID, entry.TripID)
}

func (suite *TripServiceTestSuite) TestCreateTrip_InactiveOrganization() {
	suite.allow(service.CapCreateTrip)
	suite.orgs.EXPECT().GetByID(suite.orgID).Return(&models.Organization{IsActive: false}, nil)

	resp, err := suite.service.CreateTrip(context.Background(), suite.actor, &service.CreateTripRequest{
		OrganizationID: suite.orgID,
		Title:          "School trip",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationInactive)
}

func (suite *TripServiceTestSuite) TestCreateTrip_ValidationError() {
	resp, err := suite.service.CreateTrip(context.Background(), suite.actor, &service.CreateTripRequest{})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *TripServiceTestSuite) TestSubmitForQuote_Success() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusDraft)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapSubmitTrip)
	suite.trips.EXPECT().Update(trip).DoAndReturn(func(t *models.Trip) error {
		t.Version++
		return nil
	})

	var entry *models.TripChangeLog
	suite.changeLogs.EXPECT().Append(gomock.Any()).DoAndReturn(func(e *models.TripChangeLog) error {
		entry = e
		return nil
	})

	var targets []models.TargetKind
	suite.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, msg service.Message) {
		targets = append(targets, msg.Target.Kind)
	}).Times(2)

	resp, err := suite.service.SubmitForQuote(context.Background(), suite.actor, trip.ID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.TripStatusQuoted, resp.Status)
	assert.Equal(suite.T(), 4, resp.Version)
	suite.Require().NotNil(entry)
	assert.Equal(suite.T(), models.TripStatusDraft, entry.OldStatus)
	assert.Equal(suite.T(), models.TripStatusQuoted, entry.NewStatus)
	suite.Require().NotNil(entry.ChangedByUserID)
	assert.Equal(suite.T(), suite.userID, *entry.ChangedByUserID)
	assert.ElementsMatch(suite.T(), []models.TargetKind{models.TargetKindUser, models.TargetKindRole}, targets)
}

func (suite *TripServiceTestSuite) TestSubmitForQuote_IncompleteSpecification() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusDraft)
	trip.Destination = ""
	trip.GroupID = nil
	trip.PassengerCount = 0
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapSubmitTrip)

	resp, err := suite.service.SubmitForQuote(context.Background(), suite.actor, trip.ID)

	assert.Nil(suite.T(), resp)
	var validationErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &validationErr))
	assert.Contains(suite.T(), validationErr.FieldErrors(), "destination")
	assert.Contains(suite.T(), validationErr.FieldErrors(), "group_id")
	assert.Contains(suite.T(), validationErr.FieldErrors(), "passenger_count")
	assert.Equal(suite.T(), models.TripStatusDraft, trip.Status)
}

func (suite *TripServiceTestSuite) TestTransition_InvalidTransitionLeavesStatus() {
	trip := suite.newTrip(models.TripStatusDraft)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapActivateTrip)

	resp, err := suite.service.Activate(context.Background(), suite.actor, trip.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
	assert.Equal(suite.T(), models.TripStatusDraft, trip.Status)
}

func (suite *TripServiceTestSuite) TestTransition_TerminalStatus() {
	for _, status := range []models.TripStatus{models.TripStatusRejected, models.TripStatusCompleted, models.TripStatusCanceled} {
		suite.Run(string(status), func() {
			trip := suite.newTrip(status)
			suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
			suite.allow(service.CapCancelTrip)

			_, err := suite.service.Cancel(context.Background(), suite.actor, trip.ID, &service.CancelRequest{Reason: "weather"})

			assert.True(suite.T(), apperrors.IsInvalidTransition(err))
			assert.Equal(suite.T(), status, trip.Status)
		})
	}
}

func (suite *TripServiceTestSuite) TestTransition_PermissionDeniedPerformsNoMutation() {
	trip := suite.newTrip(models.TripStatusQuoted)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapApproveTrip).
		Return(nil, fmt.Errorf("%w: member requires approve_trip", apperrors.ErrNotPermitted))

	price := 1200.0
	resp, err := suite.service.ApproveOrReject(context.Background(), suite.actor, trip.ID, &service.DecisionRequest{
		Decision:    service.DecisionApprove,
		QuotedPrice: &price,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
	assert.Equal(suite.T(), models.TripStatusQuoted, trip.Status)
	assert.Nil(suite.T(), trip.QuotedPrice)
}

func (suite *TripServiceTestSuite) TestApprove_RequiresQuotedPrice() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusQuoted)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapApproveTrip)

	resp, err := suite.service.ApproveOrReject(context.Background(), suite.actor, trip.ID, &service.DecisionRequest{
		Decision: service.DecisionApprove,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Equal(suite.T(), models.TripStatusQuoted, trip.Status)
}

func (suite *TripServiceTestSuite) TestReject_Success() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusQuoted)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapApproveTrip)
	suite.trips.EXPECT().Update(trip).Return(nil)
	suite.changeLogs.EXPECT().Append(gomock.Any()).DoAndReturn(func(e *models.TripChangeLog) error {
		assert.Equal(suite.T(), "too expensive", e.Comment)
		return nil
	})
	suite.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	resp, err := suite.service.ApproveOrReject(context.Background(), suite.actor, trip.ID, &service.DecisionRequest{
		Decision: service.DecisionReject,
		Comment:  "too expensive",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.TripStatusRejected, resp.Status)
}

func (suite *TripServiceTestSuite) TestActivate_WithoutAssignment() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusApproved)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapActivateTrip)
	suite.assignments.EXPECT().CountByTripID(trip.ID).Return(int64(0), nil)

	resp, err := suite.service.Activate(context.Background(), suite.actor, trip.ID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTripNotAssigned)
	assert.True(suite.T(), apperrors.IsPreconditionFailed(err))
	assert.Equal(suite.T(), models.TripStatusApproved, trip.Status)
}

func (suite *TripServiceTestSuite) TestActivate_WithAssignment() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusApproved)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapActivateTrip)
	suite.assignments.EXPECT().CountByTripID(trip.ID).Return(int64(1), nil)
	suite.trips.EXPECT().Update(trip).Return(nil)
	suite.changeLogs.EXPECT().Append(gomock.Any()).Return(nil)
	suite.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	resp, err := suite.service.Activate(context.Background(), suite.actor, trip.ID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.TripStatusLive, resp.Status)
}

func (suite *TripServiceTestSuite) TestTransition_ConcurrentUpdateConflict() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusDraft)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapCancelTrip)
	suite.trips.EXPECT().Update(trip).Return(apperrors.ErrTripConflict)

	resp, err := suite.service.Cancel(context.Background(), suite.actor, trip.ID, &service.CancelRequest{Reason: "duplicate"})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsConflict(err))
	assert.Equal(suite.T(), models.TripStatusDraft, trip.Status)
}

func (suite *TripServiceTestSuite) TestComplete_RunsAsSystem() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusLive)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.auth.EXPECT().Authorize(service.SystemActor, suite.orgID, gomock.Any()).Return(nil, nil)
	suite.trips.EXPECT().Update(trip).Return(nil)
	suite.changeLogs.EXPECT().Append(gomock.Any()).DoAndReturn(func(e *models.TripChangeLog) error {
		assert.Nil(suite.T(), e.ChangedByUserID)
		return nil
	})
	suite.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	resp, err := suite.service.Complete(context.Background(), trip.ID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.TripStatusCompleted, resp.Status)
	assert.Equal(suite.T(), "system", trip.UpdatedBy)
}

func (suite *TripServiceTestSuite) TestCompleteElapsed_CollectsFailures() {
	suite.runTransactions()
	now := time.Now()
	done := suite.newTrip(models.TripStatusLive)
	raced := suite.newTrip(models.TripStatusLive)

	suite.trips.EXPECT().GetLiveEndedBefore(now).Return([]models.Trip{*done, *raced}, nil)
	suite.trips.EXPECT().GetByID(done.ID).Return(done, nil)
	suite.trips.EXPECT().GetByID(raced.ID).Return(raced, nil)
	suite.auth.EXPECT().Authorize(service.SystemActor, suite.orgID, gomock.Any()).Return(nil, nil).Times(2)
	suite.trips.EXPECT().Update(done).Return(nil)
	suite.trips.EXPECT().Update(raced).Return(apperrors.ErrTripConflict)
	suite.changeLogs.EXPECT().Append(gomock.Any()).Return(nil)
	suite.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	summary, err := suite.service.CompleteElapsed(context.Background(), now)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), []uuid.UUID{done.ID}, summary.Completed)
	assert.Contains(suite.T(), summary.Failed, raced.ID.String())
}

func (suite *TripServiceTestSuite) TestCopy_RejectedTripBecomesNewDraft() {
	suite.runTransactions()
	source := suite.newTrip(models.TripStatusRejected)
	suite.trips.EXPECT().GetByID(source.ID).Return(source, nil)
	suite.allow(service.CapCreateTrip)
	suite.orgs.EXPECT().GetByID(suite.orgID).Return(&models.Organization{IsActive: true}, nil)
	suite.trips.EXPECT().Create(gomock.Any()).DoAndReturn(func(trip *models.Trip) error {
		trip.ID = uuid.New()
		return nil
	})
	suite.changeLogs.EXPECT().Append(gomock.Any()).DoAndReturn(func(e *models.TripChangeLog) error {
		assert.Equal(suite.T(), models.TripStatusDraft, e.NewStatus)
		assert.Contains(suite.T(), e.Comment, source.ID.String())
		return nil
	})

	resp, err := suite.service.Copy(context.Background(), suite.actor, source.ID)

	suite.Require().NoError(err)
	assert.NotEqual(suite.T(), source.ID, resp.ID)
	assert.Equal(suite.T(), models.TripStatusDraft, resp.Status)
	suite.Require().NotNil(resp.CopiedFromTripID)
	assert.Equal(suite.T(), source.ID, *resp.CopiedFromTripID)
	assert.Equal(suite.T(), source.Destination, resp.Destination)
	assert.Equal(suite.T(), models.TripStatusRejected, source.Status)
}

func (suite *TripServiceTestSuite) TestUpdateTrip_OnlyDraft() {
	trip := suite.newTrip(models.TripStatusQuoted)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapEditTrip)

	title := "New title"
	_, err := suite.service.UpdateTrip(context.Background(), suite.actor, trip.ID, &service.UpdateTripRequest{Title: &title})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTripNotEditable)
}

func (suite *TripServiceTestSuite) TestUpdateTrip_StaleVersion() {
	trip := suite.newTrip(models.TripStatusDraft)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapEditTrip)

	stale := trip.Version - 1
	_, err := suite.service.UpdateTrip(context.Background(), suite.actor, trip.ID, &service.UpdateTripRequest{Version: &stale})

	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *TripServiceTestSuite) TestAssign_RequiresApprovedTrip() {
	trip := suite.newTrip(models.TripStatusQuoted)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapAssignTrip)

	_, err := suite.service.Assign(context.Background(), suite.actor, trip.ID, &service.AssignRequest{
		EquipmentID: uuid.New(),
		DriverID:    uuid.New(),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTripNotApproved)
}

func (suite *TripServiceTestSuite) TestAssign_NotifiesDriver() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusApproved)
	equipment := &models.Equipment{BaseModel: models.BaseModel{ID: uuid.New()}, BusNumber: "B-12", IsActive: true}
	driverUser := uuid.New()
	driver := &models.BusDriver{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: driverUser, IsActive: true}

	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapAssignTrip)
	suite.trips.EXPECT().Touch(trip, models.TripStatusApproved).Return(nil)
	suite.equipment.EXPECT().GetByID(equipment.ID).Return(equipment, nil)
	suite.drivers.EXPECT().GetByID(driver.ID).Return(driver, nil)
	suite.assignments.EXPECT().Exists(trip.ID, equipment.ID, driver.ID).Return(false, nil)
	suite.assignments.EXPECT().Create(gomock.Any()).Return(nil)
	suite.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, msg service.Message) {
		assert.Equal(suite.T(), service.ToUser(driverUser), msg.Target)
	})

	resp, err := suite.service.Assign(context.Background(), suite.actor, trip.ID, &service.AssignRequest{
		EquipmentID: equipment.ID,
		DriverID:    driver.ID,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), suite.userID, resp.AssignedBy)
}

func (suite *TripServiceTestSuite) TestAssign_InactiveEquipment() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusApproved)
	equipmentID := uuid.New()
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapAssignTrip)
	suite.trips.EXPECT().Touch(trip, models.TripStatusApproved).Return(nil)
	suite.equipment.EXPECT().GetByID(equipmentID).Return(&models.Equipment{IsActive: false}, nil)

	_, err := suite.service.Assign(context.Background(), suite.actor, trip.ID, &service.AssignRequest{
		EquipmentID: equipmentID,
		DriverID:    uuid.New(),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrEquipmentInactive)
}

func (suite *TripServiceTestSuite) TestAssign_TripChangedConcurrently() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusApproved)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapAssignTrip)
	suite.trips.EXPECT().Touch(trip, models.TripStatusApproved).Return(apperrors.ErrTripConflict)

	resp, err := suite.service.Assign(context.Background(), suite.actor, trip.ID, &service.AssignRequest{
		EquipmentID: uuid.New(),
		DriverID:    uuid.New(),
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *TripServiceTestSuite) TestUnassign_Success() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusApproved)
	assignmentID := uuid.New()
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapAssignTrip)
	suite.trips.EXPECT().Touch(trip, models.TripStatusApproved).DoAndReturn(func(t *models.Trip, _ models.TripStatus) error {
		t.Version++
		return nil
	})
	suite.assignments.EXPECT().GetByID(assignmentID).Return(&models.TripBusAssignment{
		BaseModel: models.BaseModel{ID: assignmentID},
		TripID:    trip.ID,
	}, nil)
	suite.assignments.EXPECT().Delete(assignmentID).Return(nil)

	err := suite.service.Unassign(context.Background(), suite.actor, trip.ID, assignmentID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 4, trip.Version)
}

func (suite *TripServiceTestSuite) TestUnassign_RequiresApprovedTrip() {
	for _, status := range []models.TripStatus{models.TripStatusDraft, models.TripStatusQuoted, models.TripStatusLive, models.TripStatusCanceled} {
		suite.Run(string(status), func() {
			trip := suite.newTrip(status)
			suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
			suite.allow(service.CapAssignTrip)

			err := suite.service.Unassign(context.Background(), suite.actor, trip.ID, uuid.New())

			assert.ErrorIs(suite.T(), err, apperrors.ErrTripNotApproved)
			assert.True(suite.T(), apperrors.IsPreconditionFailed(err))
		})
	}
}

func (suite *TripServiceTestSuite) TestUnassign_AssignmentOfAnotherTrip() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusApproved)
	assignmentID := uuid.New()
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapAssignTrip)
	suite.trips.EXPECT().Touch(trip, models.TripStatusApproved).Return(nil)
	suite.assignments.EXPECT().GetByID(assignmentID).Return(&models.TripBusAssignment{
		BaseModel: models.BaseModel{ID: assignmentID},
		TripID:    uuid.New(),
	}, nil)
	suite.assignments.EXPECT().Delete(gomock.Any()).Times(0)

	err := suite.service.Unassign(context.Background(), suite.actor, trip.ID, assignmentID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAssignmentNotFound)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *TripServiceTestSuite) TestUnassign_TripChangedConcurrently() {
	suite.runTransactions()
	trip := suite.newTrip(models.TripStatusApproved)
	suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
	suite.allow(service.CapAssignTrip)
	suite.trips.EXPECT().Touch(trip, models.TripStatusApproved).Return(apperrors.ErrTripConflict)
	suite.assignments.EXPECT().Delete(gomock.Any()).Times(0)

	err := suite.service.Unassign(context.Background(), suite.actor, trip.ID, uuid.New())

	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *TripServiceTestSuite) TestCancel_FromEveryOpenStatus() {
	for _, status := range []models.TripStatus{
		models.TripStatusDraft,
		models.TripStatusQuoted,
		models.TripStatusApproved,
		models.TripStatusLive,
	} {
		suite.Run(string(status), func() {
			suite.runTransactions()
			trip := suite.newTrip(status)
			suite.trips.EXPECT().GetByID(trip.ID).Return(trip, nil)
			suite.allow(service.CapCancelTrip)
			suite.trips.EXPECT().Update(trip).DoAndReturn(func(t *models.Trip) error {
				assert.Equal(suite.T(), models.TripStatusCanceled, t.Status)
				assert.Equal(suite.T(), "road closed", t.CancellationReason)
				t.Version++
				return nil
			})
			suite.changeLogs.EXPECT().Append(gomock.Any()).Times(1).DoAndReturn(func(e *models.TripChangeLog) error {
				assert.Equal(suite.T(), trip.ID, e.TripID)
				assert.Equal(suite.T(), status, e.OldStatus)
				assert.Equal(suite.T(), models.TripStatusCanceled, e.NewStatus)
				suite.Require().NotNil(e.ChangedByUserID)
				assert.Equal(suite.T(), suite.userID, *e.ChangedByUserID)
				assert.Equal(suite.T(), "road closed", e.Comment)
				return nil
			})
			suite.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()

			resp, err := suite.service.Cancel(context.Background(), suite.actor, trip.ID, &service.CancelRequest{Reason: "road closed"})

			suite.Require().NoError(err)
			assert.Equal(suite.T(), models.TripStatusCanceled, resp.Status)
			assert.Equal(suite.T(), "road closed", resp.CancellationReason)
			assert.Equal(suite.T(), 4, resp.Version)
		})
	}
}

func (suite *TripServiceTestSuite) TestGetTrip_NotFound() {
	id := uuid.New()
	suite.trips.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetTrip(suite.actor, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTripNotFound)
}

func (suite *TripServiceTestSuite) TestListTrips_UnknownStatus() {
	suite.auth.EXPECT().RequireMembership(suite.actor, suite.orgID).Return(&models.OrganizationMembership{}, nil)

	_, err := suite.service.ListTrips(suite.actor, suite.orgID, "parked", 1, 20)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *TripServiceTestSuite) TestListTrips_DefaultPagination() {
	suite.auth.EXPECT().RequireMembership(suite.actor, suite.orgID).Return(&models.OrganizationMembership{}, nil)
	trip := suite.newTrip(models.TripStatusLive)
	suite.trips.EXPECT().GetByOrganizationID(suite.orgID, gomock.Any(), 20, 0).Return([]models.Trip{*trip}, int64(1), nil)

	resp, err := suite.service.ListTrips(suite.actor, suite.orgID, "", 0, 0)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
	assert.Len(suite.T(), resp.Trips, 1)
}

func TestTripServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TripServiceTestSuite))
}
