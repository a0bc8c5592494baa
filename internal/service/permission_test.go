package service_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bustrip-backend/internal/database/models"
	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/mocks"
	"bustrip-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type PermissionServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	permissions *mocks.MockPermissionRepositoryInterface
	memberships *mocks.MockMembershipRepositoryInterface
	service     *service.PermissionService

	orgID  uuid.UUID
	userID uuid.UUID
}

func (suite *PermissionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.permissions = mocks.NewMockPermissionRepositoryInterface(suite.ctrl)
	suite.memberships = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.service = service.NewPermissionService(suite.permissions, suite.memberships, nil, service.NewValidator())
	suite.orgID = uuid.New()
	suite.userID = uuid.New()
}

func (suite *PermissionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PermissionServiceTestSuite) TestEvaluate_FallsBackToLeastPrivilege() {
	suite.permissions.EXPECT().GetByOrganizationAndType(suite.orgID, models.MemberTypeAdmin).Return(nil, gorm.ErrRecordNotFound)

	set, err := suite.service.Evaluate(suite.orgID, models.MemberTypeAdmin)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), service.LeastPrivilege(), set)
	assert.False(suite.T(), set.Allows(service.CapCreateTrip))
}

func (suite *PermissionServiceTestSuite) TestEvaluate_ReadsRow() {
	suite.permissions.EXPECT().GetByOrganizationAndType(suite.orgID, models.MemberTypeMember).
		Return(&models.OrganizationPermissions{CanCreateTrip: true, CanCancelTrip: true}, nil)

	set, err := suite.service.Evaluate(suite.orgID, models.MemberTypeMember)

	suite.Require().NoError(err)
	assert.True(suite.T(), set.Allows(service.CapCreateTrip))
	assert.True(suite.T(), set.Allows(service.CapCancelTrip))
	assert.False(suite.T(), set.Allows(service.CapApproveTrip))
}

func (suite *PermissionServiceTestSuite) TestEvaluate_DatabaseErrorIsNotSwallowed() {
	suite.permissions.EXPECT().GetByOrganizationAndType(suite.orgID, models.MemberTypeMember).Return(nil, errors.New("connection reset"))

	set, err := suite.service.Evaluate(suite.orgID, models.MemberTypeMember)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), service.LeastPrivilege(), set)
}

func (suite *PermissionServiceTestSuite) TestAuthorize_NotAMember() {
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, suite.userID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Authorize(service.UserActor(suite.userID), suite.orgID, service.CapCreateTrip)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAMember)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *PermissionServiceTestSuite) TestAuthorize_Denied() {
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, suite.userID).
		Return(&models.OrganizationMembership{MemberType: models.MemberTypeMember}, nil)
	suite.permissions.EXPECT().GetByOrganizationAndType(suite.orgID, models.MemberTypeMember).
		Return(&models.OrganizationPermissions{CanCreateTrip: true}, nil)

	_, err := suite.service.Authorize(service.UserActor(suite.userID), suite.orgID, service.CapApproveTrip)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotPermitted)
	assert.Contains(suite.T(), err.Error(), "approve_trip")
}

func (suite *PermissionServiceTestSuite) TestAuthorize_Granted() {
	membership := &models.OrganizationMembership{UserID: suite.userID, MemberType: models.MemberTypeAdmin}
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, suite.userID).Return(membership, nil)
	suite.permissions.EXPECT().GetByOrganizationAndType(suite.orgID, models.MemberTypeAdmin).
		Return(&models.OrganizationPermissions{CanApproveTrip: true}, nil)

	got, err := suite.service.Authorize(service.UserActor(suite.userID), suite.orgID, service.CapApproveTrip)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), membership, got)
}

func (suite *PermissionServiceTestSuite) TestAuthorize_SystemActorBypasses() {
	got, err := suite.service.Authorize(service.SystemActor, suite.orgID, service.CapManageOrganization)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), got)
}

func (suite *PermissionServiceTestSuite) TestAuthorize_MissingActor() {
	_, err := suite.service.Authorize(service.Actor{}, suite.orgID, service.CapCreateTrip)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingActor)
}

func (suite *PermissionServiceTestSuite) TestDefaultPermissions_OneRowPerMemberType() {
	rows := suite.service.DefaultPermissions(suite.orgID, "system")

	suite.Require().Len(rows, 3)
	byType := map[models.MemberType]models.OrganizationPermissions{}
	for _, row := range rows {
		assert.Equal(suite.T(), suite.orgID, row.OrganizationID)
		byType[row.MemberType] = row
	}
	assert.True(suite.T(), byType[models.MemberTypeCreator].CanTransferOwnership)
	assert.False(suite.T(), byType[models.MemberTypeAdmin].CanTransferOwnership)
	assert.True(suite.T(), byType[models.MemberTypeAdmin].CanApproveTrip)
	assert.False(suite.T(), byType[models.MemberTypeMember].CanApproveTrip)
	assert.True(suite.T(), byType[models.MemberTypeMember].CanCreateTrip)
}

func (suite *PermissionServiceTestSuite) TestSetPermissions_CreatorMustKeepOwnership() {
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, suite.userID).
		Return(&models.OrganizationMembership{MemberType: models.MemberTypeCreator}, nil)
	suite.permissions.EXPECT().GetByOrganizationAndType(suite.orgID, models.MemberTypeCreator).
		Return(&models.OrganizationPermissions{CanManageOrganization: true}, nil)

	_, err := suite.service.SetPermissions(service.UserActor(suite.userID), suite.orgID, &service.SetPermissionsRequest{
		MemberType:  models.MemberTypeCreator,
		Permissions: service.PermissionSet{CanManageMembers: true},
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PermissionServiceTestSuite) TestSetPermissions_UpdatesExistingRow() {
	row := &models.OrganizationPermissions{OrganizationID: suite.orgID, MemberType: models.MemberTypeMember}
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, suite.userID).
		Return(&models.OrganizationMembership{MemberType: models.MemberTypeCreator}, nil)
	suite.permissions.EXPECT().GetByOrganizationAndType(suite.orgID, models.MemberTypeCreator).
		Return(&models.OrganizationPermissions{CanManageOrganization: true}, nil)
	suite.permissions.EXPECT().GetByOrganizationAndType(suite.orgID, models.MemberTypeMember).Return(row, nil)
	suite.permissions.EXPECT().Update(row).Return(nil)

	resp, err := suite.service.SetPermissions(service.UserActor(suite.userID), suite.orgID, &service.SetPermissionsRequest{
		MemberType:  models.MemberTypeMember,
		Permissions: service.PermissionSet{CanCreateTrip: true, CanCancelTrip: true},
	})

	suite.Require().NoError(err)
	assert.True(suite.T(), resp.Permissions.CanCancelTrip)
	assert.True(suite.T(), row.CanCancelTrip)
}

func (suite *PermissionServiceTestSuite) TestSetPermissions_StoresEquipmentFlag() {
	row := &models.OrganizationPermissions{OrganizationID: suite.orgID, MemberType: models.MemberTypeAdmin}
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, suite.userID).
		Return(&models.OrganizationMembership{MemberType: models.MemberTypeCreator}, nil)
	suite.permissions.EXPECT().GetByOrganizationAndType(suite.orgID, models.MemberTypeCreator).
		Return(&models.OrganizationPermissions{CanManageOrganization: true}, nil)
	suite.permissions.EXPECT().GetByOrganizationAndType(suite.orgID, models.MemberTypeAdmin).Return(row, nil)
	suite.permissions.EXPECT().Update(row).Return(nil)

	resp, err := suite.service.SetPermissions(service.UserActor(suite.userID), suite.orgID, &service.SetPermissionsRequest{
		MemberType:  models.MemberTypeAdmin,
		Permissions: service.PermissionSet{CanManageEquipment: true},
	})

	suite.Require().NoError(err)
	assert.True(suite.T(), row.CanManageEquipment)
	assert.True(suite.T(), resp.Permissions.Allows(service.CapManageEquipment))
}

func (suite *PermissionServiceTestSuite) TestSetPermissions_InvalidMemberType() {
	_, err := suite.service.SetPermissions(service.UserActor(suite.userID), suite.orgID, &service.SetPermissionsRequest{
		MemberType: "owner",
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestPermissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionServiceTestSuite))
}

func TestParsePolicy(t *testing.T) {
	t.Run("overrides listed member types", func(t *testing.T) {
		policy, err := service.ParsePolicy([]byte(`
member:
  can_create_trip: true
  can_cancel_trip: true
`))
		require.NoError(t, err)
		assert.True(t, policy[models.MemberTypeMember].CanCancelTrip)
		assert.False(t, policy[models.MemberTypeMember].CanEditTrip)
		assert.Equal(t, service.DefaultPolicy()[models.MemberTypeAdmin], policy[models.MemberTypeAdmin])
	})

	t.Run("unknown member type", func(t *testing.T) {
		_, err := service.ParsePolicy([]byte("owner:\n  can_create_trip: true\n"))
		assert.ErrorIs(t, err, apperrors.ErrPolicyFileInvalid)
	})

	t.Run("creator without transfer", func(t *testing.T) {
		_, err := service.ParsePolicy([]byte("creator:\n  can_manage_members: true\n"))
		assert.ErrorIs(t, err, apperrors.ErrPolicyFileInvalid)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := service.ParsePolicy([]byte("member: ["))
		assert.True(t, apperrors.IsConfiguration(err))
	})
}

func TestLoadPolicyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "permissions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("admin:\n  can_create_trip: true\n"), 0o600))

	policy, err := service.LoadPolicyFile(path)

	require.NoError(t, err)
	assert.True(t, policy[models.MemberTypeAdmin].CanCreateTrip)
	assert.False(t, policy[models.MemberTypeAdmin].CanApproveTrip)

	_, err = service.LoadPolicyFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
