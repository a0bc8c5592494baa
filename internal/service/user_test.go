package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

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

type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	users        *mocks.MockUserRepositoryInterface
	txUsers      *mocks.MockUserRepositoryInterface
	txRepos      *repository.Repositories
	tx           *mocks.MockTxManager
	bootstrapper *mocks.MockMembershipServiceInterface
	service      *service.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.txUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.txRepos = &repository.Repositories{Users: suite.txUsers}
	suite.tx = mocks.NewMockTxManager(suite.ctrl)
	suite.bootstrapper = mocks.NewMockMembershipServiceInterface(suite.ctrl)
	suite.service = service.NewUserService(suite.users, suite.tx, suite.bootstrapper, service.NewValidator())
}

// expectTransaction runs the closure against the transaction-scoped repositories
// and hands its error back, as the gorm transaction manager does before rolling back
func (suite *UserServiceTestSuite) expectTransaction() {
	suite.tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*repository.Repositories) error) error {
			return fn(suite.txRepos)
		})
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) TestRegister_BootstrapsOrganization() {
	orgID := uuid.New()
	suite.expectTransaction()
	suite.txUsers.EXPECT().GetByEmail("ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.txUsers.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.AppUser) error {
		assert.Equal(suite.T(), models.SystemRoleUser, u.Role)
		u.ID = uuid.New()
		return nil
	})
	suite.bootstrapper.EXPECT().BootstrapDefaultOrganization(gomock.Any(), suite.txRepos, gomock.Any()).
		Return(&service.OrganizationResponse{ID: orgID}, nil)

	resp, err := suite.service.Register(context.Background(), &service.RegisterUserRequest{
		Email:    "Ana@Example.com",
		FullName: "Ana Novak",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "ana@example.com", resp.Email)
	suite.Require().NotNil(resp.DefaultOrganization)
	assert.Equal(suite.T(), orgID, resp.DefaultOrganization.ID)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	suite.expectTransaction()
	suite.txUsers.EXPECT().GetByEmail("ana@example.com").Return(&models.AppUser{}, nil)

	_, err := suite.service.Register(context.Background(), &service.RegisterUserRequest{
		Email:    "ana@example.com",
		FullName: "Ana Novak",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

func (suite *UserServiceTestSuite) TestRegister_BootstrapFailureRollsBackUser() {
	bootstrapErr := errors.New("failed to bootstrap default organization: duplicate key")
	var rolledBack error
	suite.tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*repository.Repositories) error) error {
			rolledBack = fn(suite.txRepos)
			return rolledBack
		})
	suite.txUsers.EXPECT().GetByEmail("ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.txUsers.EXPECT().Create(gomock.Any()).Return(nil)
	suite.bootstrapper.EXPECT().BootstrapDefaultOrganization(gomock.Any(), suite.txRepos, gomock.Any()).Return(nil, bootstrapErr)
	// the user row is only ever written through the transaction
	suite.users.EXPECT().Create(gomock.Any()).Times(0)

	resp, err := suite.service.Register(context.Background(), &service.RegisterUserRequest{
		Email:    "ana@example.com",
		FullName: "Ana Novak",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, bootstrapErr)
	assert.ErrorIs(suite.T(), rolledBack, bootstrapErr)
}

func (suite *UserServiceTestSuite) TestRegister_RejectsOverlongFullName() {
	_, err := suite.service.Register(context.Background(), &service.RegisterUserRequest{
		Email:    "ana@example.com",
		FullName: strings.Repeat("A", 201),
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestCreateUser_RequiresSystemAdmin() {
	actorID := uuid.New()
	suite.users.EXPECT().GetByID(actorID).Return(&models.AppUser{Role: models.SystemRoleUser}, nil)

	_, err := suite.service.CreateUser(context.Background(), service.UserActor(actorID), &service.CreateUserRequest{
		Email:    "driver@example.com",
		FullName: "Dan Driver",
		Role:     models.SystemRoleDriver,
	})

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *UserServiceTestSuite) TestCreateUser_SystemAdmin() {
	actorID := uuid.New()
	suite.users.EXPECT().GetByID(actorID).Return(&models.AppUser{Role: models.SystemRoleAdmin}, nil)
	suite.users.EXPECT().GetByEmail("driver@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.users.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.CreateUser(context.Background(), service.UserActor(actorID), &service.CreateUserRequest{
		Email:    "driver@example.com",
		FullName: "Dan Driver",
		Role:     models.SystemRoleDriver,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.SystemRoleDriver, resp.Role)
}

func (suite *UserServiceTestSuite) TestDeleteUser_BlockedWhileReferenced() {
	id := uuid.New()
	suite.users.EXPECT().GetByID(id).Return(&models.AppUser{}, nil)
	suite.users.EXPECT().CountReferences(id).Return(map[string]int64{"trip": 2, "organization membership": 1}, nil)

	err := suite.service.DeleteUser(context.Background(), service.UserActor(id), id)

	assert.True(suite.T(), apperrors.IsReferencedEntity(err))
	assert.Contains(suite.T(), err.Error(), "organization membership, trip")
}

func (suite *UserServiceTestSuite) TestDeleteUser_Self() {
	id := uuid.New()
	suite.users.EXPECT().GetByID(id).Return(&models.AppUser{}, nil)
	suite.users.EXPECT().CountReferences(id).Return(map[string]int64{}, nil)
	suite.users.EXPECT().Delete(id).Return(nil)

	assert.NoError(suite.T(), suite.service.DeleteUser(context.Background(), service.UserActor(id), id))
}

func (suite *UserServiceTestSuite) TestDeleteUser_OtherUserForbidden() {
	actorID, target := uuid.New(), uuid.New()
	suite.users.EXPECT().GetByID(actorID).Return(&models.AppUser{Role: models.SystemRoleUser}, nil)

	err := suite.service.DeleteUser(context.Background(), service.UserActor(actorID), target)

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
