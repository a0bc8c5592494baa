package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/mocks"
	"bustrip-backend/internal/service"
	"bustrip-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TripHandlerTestSuite defines the test suite for TripHandler
type TripHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTripService *mocks.MockTripServiceInterface
	handler         *TripHandler
	httpSuite       *testutils.HTTPTestSuite
	userID          uuid.UUID
}

func (suite *TripHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTripService = mocks.NewMockTripServiceInterface(suite.ctrl)
	suite.handler = NewTripHandler(suite.mockTripService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	v1 := suite.httpSuite.Router.Group("/api/v1", withUser(suite.userID))
	trips := v1.Group("/trips")
	{
		trips.POST("", suite.handler.CreateTrip)
		trips.GET("", suite.handler.ListTrips)
		trips.GET("/:id", suite.handler.GetTrip)
		trips.PUT("/:id", suite.handler.UpdateTrip)
		trips.POST("/:id/submit", suite.handler.SubmitForQuote)
		trips.POST("/:id/decision", suite.handler.Decide)
		trips.POST("/:id/activate", suite.handler.Activate)
		trips.POST("/:id/cancel", suite.handler.Cancel)
		trips.POST("/:id/copy", suite.handler.Copy)
		trips.POST("/:id/assignments", suite.handler.Assign)
		trips.DELETE("/:id/assignments/:assignmentId", suite.handler.Unassign)
		trips.GET("/:id/changelog", suite.handler.GetChangeLog)
	}
	suite.httpSuite.Router.POST("/anonymous/trips", suite.handler.CreateTrip)
}

func (suite *TripHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TripHandlerTestSuite) TestCreateTrip() {
	orgID := uuid.New()
	suite.mockTripService.EXPECT().
		CreateTrip(gomock.Any(), service.UserActor(suite.userID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ service.Actor, req *service.CreateTripRequest) (*service.TripResponse, error) {
			assert.Equal(suite.T(), orgID, req.OrganizationID)
			assert.Equal(suite.T(), "Ski weekend", req.Title)
			return &service.TripResponse{ID: uuid.New(), Title: req.Title, Status: "draft"}, nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/trips", map[string]interface{}{
		"organization_id": orgID,
		"title":           "Ski weekend",
	})

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusCreated, "trip created")
}

func (suite *TripHandlerTestSuite) TestCreateTrip_Unauthenticated() {
	recorder := suite.httpSuite.MakeRequest("POST", "/anonymous/trips", map[string]interface{}{"title": "x"})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

func (suite *TripHandlerTestSuite) TestCreateTrip_InvalidBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/trips", "not-an-object")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation_failed", "body")
}

func (suite *TripHandlerTestSuite) TestCreateTrip_MalformedJSON() {
	recorder := suite.httpSuite.MakeRawRequest("POST", "/api/v1/trips", `{"title": `)

	result := testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation_failed", "body")
	assert.Contains(suite.T(), result.Errors["body"], "malformed JSON")
}

func (suite *TripHandlerTestSuite) TestCreateTrip_ValidationErrors() {
	suite.mockTripService.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewFieldValidationError(map[string]string{"title": "is required"}))

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/trips", map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	var result service.OperationResult
	testutils.ParseJSONResponse(suite.T(), recorder, &result)
	assert.False(suite.T(), result.Success)
	assert.Equal(suite.T(), "validation_failed", result.Code)
	assert.Equal(suite.T(), "is required", result.Errors["title"])
}

func (suite *TripHandlerTestSuite) TestSubmit_InvalidTransition() {
	id := uuid.New()
	suite.mockTripService.EXPECT().
		SubmitForQuote(gomock.Any(), service.UserActor(suite.userID), id).
		Return(nil, &apperrors.InvalidTransitionError{From: "approved", To: "quoted"})

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/trips/"+id.String()+"/submit", nil)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
	var result service.OperationResult
	testutils.ParseJSONResponse(suite.T(), recorder, &result)
	assert.Equal(suite.T(), "invalid_transition", result.Code)
}

func (suite *TripHandlerTestSuite) TestDecide_Reject() {
	id := uuid.New()
	suite.mockTripService.EXPECT().
		ApproveOrReject(gomock.Any(), gomock.Any(), id, &service.DecisionRequest{Decision: "reject", Comment: "too pricey"}).
		Return(&service.TripResponse{ID: id, Status: "rejected"}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/trips/"+id.String()+"/decision", map[string]interface{}{
		"decision": "reject",
		"comment":  "too pricey",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var result service.OperationResult
	testutils.ParseJSONResponse(suite.T(), recorder, &result)
	assert.Equal(suite.T(), "trip rejected", result.Message)
}

func (suite *TripHandlerTestSuite) TestActivate_WithoutAssignment() {
	id := uuid.New()
	suite.mockTripService.EXPECT().Activate(gomock.Any(), gomock.Any(), id).Return(nil, apperrors.ErrTripNotAssigned)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/trips/"+id.String()+"/activate", nil)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

func (suite *TripHandlerTestSuite) TestUpdate_Conflict() {
	id := uuid.New()
	suite.mockTripService.EXPECT().UpdateTrip(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrTripConflict)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/trips/"+id.String(), map[string]interface{}{"title": "x", "version": 1})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func (suite *TripHandlerTestSuite) TestGetTrip_InvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/trips/not-a-uuid", nil)

	result := testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation_failed", "trip_id")
	assert.Equal(suite.T(), "must be a valid UUID", result.Errors["trip_id"])
}

func (suite *TripHandlerTestSuite) TestGetTrip_NotFound() {
	id := uuid.New()
	suite.mockTripService.EXPECT().GetTrip(gomock.Any(), id).Return(nil, apperrors.ErrTripNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/trips/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *TripHandlerTestSuite) TestGetTrip_InternalErrorIsNotLeaked() {
	id := uuid.New()
	suite.mockTripService.EXPECT().GetTrip(gomock.Any(), id).Return(nil, errors.New("pq: connection reset"))

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/trips/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
	assert.NotContains(suite.T(), recorder.Body.String(), "connection reset")
}

func (suite *TripHandlerTestSuite) TestListTrips() {
	orgID := uuid.New()
	suite.mockTripService.EXPECT().
		ListTrips(service.UserActor(suite.userID), orgID, "live", 2, 10).
		Return(&service.TripListResponse{Total: 11, Page: 2, PageSize: 10}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/trips?organization_id="+orgID.String()+"&status=live&page=2&page_size=10", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.TripListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(11), response.Total)
}

func (suite *TripHandlerTestSuite) TestListTrips_MissingOrganization() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/trips", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation_failed", "organization_id")
}

func (suite *TripHandlerTestSuite) TestListTrips_NonNumericPage() {
	orgID := uuid.New()

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/trips?organization_id="+orgID.String()+"&page=two", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation_failed", "page")
}

func (suite *TripHandlerTestSuite) TestAssign() {
	id, equipmentID, driverID := uuid.New(), uuid.New(), uuid.New()
	suite.mockTripService.EXPECT().
		Assign(gomock.Any(), gomock.Any(), id, &service.AssignRequest{EquipmentID: equipmentID, DriverID: driverID}).
		Return(&service.AssignmentResponse{ID: uuid.New(), TripID: id}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/trips/"+id.String()+"/assignments", map[string]interface{}{
		"equipment_id": equipmentID,
		"driver_id":    driverID,
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func (suite *TripHandlerTestSuite) TestUnassign() {
	id, assignmentID := uuid.New(), uuid.New()
	suite.mockTripService.EXPECT().Unassign(gomock.Any(), gomock.Any(), id, assignmentID).Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/trips/"+id.String()+"/assignments/"+assignmentID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *TripHandlerTestSuite) TestGetChangeLog() {
	id := uuid.New()
	suite.mockTripService.EXPECT().GetChangeLog(gomock.Any(), id).Return([]service.ChangeLogResponse{
		{NewStatus: "draft"},
		{OldStatus: "draft", NewStatus: "quoted"},
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/trips/"+id.String()+"/changelog", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var entries []service.ChangeLogResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &entries)
	assert.Len(suite.T(), entries, 2)
}

func TestTripHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TripHandlerTestSuite))
}
