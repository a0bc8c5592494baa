package handlers

import (
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

type FleetHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockFleetService *mocks.MockFleetServiceInterface
	httpSuite        *testutils.HTTPTestSuite
	userID           uuid.UUID
}

func (suite *FleetHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFleetService = mocks.NewMockFleetServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	handler := NewFleetHandler(suite.mockFleetService)
	v1 := suite.httpSuite.Router.Group("/api/v1", withUser(suite.userID))
	v1.POST("/equipment", handler.CreateEquipment)
	v1.GET("/equipment", handler.ListEquipment)
	v1.GET("/equipment/:id", handler.GetEquipment)
	v1.PUT("/equipment/:id/active", handler.SetEquipmentActive)
	v1.POST("/drivers", handler.CreateDriver)
	v1.GET("/drivers", handler.ListDrivers)
	v1.GET("/drivers/:id", handler.GetDriver)
	v1.PUT("/drivers/:id/active", handler.SetDriverActive)
}

func (suite *FleetHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FleetHandlerTestSuite) TestCreateEquipment() {
	suite.mockFleetService.EXPECT().
		CreateEquipment(gomock.Any(), service.UserActor(suite.userID), &service.CreateEquipmentRequest{BusNumber: "B-7", Capacity: 52}).
		Return(&service.EquipmentResponse{ID: uuid.New(), BusNumber: "B-7"}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/equipment", map[string]interface{}{"bus_number": "B-7", "capacity": 52})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func (suite *FleetHandlerTestSuite) TestCreateEquipment_NotAdmin() {
	suite.mockFleetService.EXPECT().CreateEquipment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrNotPermitted)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/equipment", map[string]interface{}{"bus_number": "B-7"})

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

func (suite *FleetHandlerTestSuite) TestListEquipment() {
	suite.mockFleetService.EXPECT().ListEquipment(3, 5).Return(&service.EquipmentListResponse{Total: 12}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/equipment?page=3&page_size=5", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *FleetHandlerTestSuite) TestGetDriver_NotFound() {
	id := uuid.New()
	suite.mockFleetService.EXPECT().GetDriver(id).Return(nil, apperrors.ErrDriverNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/drivers/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *FleetHandlerTestSuite) TestSetDriverActive() {
	id := uuid.New()
	suite.mockFleetService.EXPECT().SetDriverActive(gomock.Any(), gomock.Any(), id, false).Return(nil)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/drivers/"+id.String()+"/active", map[string]interface{}{"is_active": false})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func TestFleetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FleetHandlerTestSuite))
}
