package handlers

import (
	"errors"
	"net/http"
	"testing"

	"bustrip-backend/internal/database/models"
	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/mocks"
	"bustrip-backend/internal/service"
	"bustrip-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type stubTokenIssuer struct {
	token string
	err   error
}

func (s stubTokenIssuer) Issue(uuid.UUID, string, string) (string, error) {
	return s.token, s.err
}

type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	httpSuite       *testutils.HTTPTestSuite
	userID          uuid.UUID
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.userID = uuid.New()
	suite.route(stubTokenIssuer{token: "signed.jwt.token"})
}

func (suite *UserHandlerTestSuite) route(tokens TokenIssuer) {
	handler := NewUserHandler(suite.mockUserService, tokens)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/api/v1/users/register", handler.Register)

	v1 := suite.httpSuite.Router.Group("/api/v1", withUser(suite.userID))
	v1.POST("/users", handler.CreateUser)
	v1.GET("/users/me", handler.GetCurrentUser)
	v1.GET("/users/:id", handler.GetUser)
	v1.DELETE("/users/:id", handler.DeleteUser)
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestRegister_ReturnsToken() {
	userID := uuid.New()
	suite.mockUserService.EXPECT().
		Register(gomock.Any(), &service.RegisterUserRequest{Email: "ana@example.com", FullName: "Ana Novak"}).
		Return(&service.UserResponse{ID: userID, Email: "ana@example.com", Role: models.SystemRoleUser}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/users/register", map[string]interface{}{
		"email":     "ana@example.com",
		"full_name": "Ana Novak",
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), `"access_token":"signed.jwt.token"`)
}

func (suite *UserHandlerTestSuite) TestRegister_DuplicateEmail() {
	suite.mockUserService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserExists)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/users/register", map[string]interface{}{
		"email":     "ana@example.com",
		"full_name": "Ana Novak",
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func (suite *UserHandlerTestSuite) TestRegister_TokenFailure() {
	suite.route(stubTokenIssuer{err: errors.New("signing failed")})
	suite.mockUserService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&service.UserResponse{ID: uuid.New()}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/users/register", map[string]interface{}{
		"email":     "ana@example.com",
		"full_name": "Ana Novak",
	})

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser() {
	suite.mockUserService.EXPECT().GetUserByID(suite.userID).Return(&service.UserResponse{ID: suite.userID}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/users/me", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *UserHandlerTestSuite) TestCreateUser_Forbidden() {
	suite.mockUserService.EXPECT().CreateUser(gomock.Any(), service.UserActor(suite.userID), gomock.Any()).Return(nil, apperrors.ErrNotPermitted)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/users", map[string]interface{}{
		"email":     "driver@example.com",
		"full_name": "Dan Driver",
		"role":      "driver",
	})

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

func (suite *UserHandlerTestSuite) TestDeleteUser_Referenced() {
	id := uuid.New()
	suite.mockUserService.EXPECT().DeleteUser(gomock.Any(), gomock.Any(), id).
		Return(&apperrors.ReferencedEntityError{Entity: "user", ReferencedBy: "trip"})

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/users/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
