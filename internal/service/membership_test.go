package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"bustrip-backend/internal/config"
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

type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	users       *mocks.MockUserRepositoryInterface
	orgs        *mocks.MockOrganizationRepositoryInterface
	memberships *mocks.MockMembershipRepositoryInterface
	permissions *mocks.MockPermissionRepositoryInterface
	invitations *mocks.MockInvitationRepositoryInterface
	groups      *mocks.MockGroupRepositoryInterface
	trips       *mocks.MockTripRepositoryInterface
	tx          *mocks.MockTxManager
	auth        *mocks.MockAuthorizer
	notifier    *mocks.MockNotifier
	repos       *repository.Repositories

	userID uuid.UUID
	orgID  uuid.UUID
	actor  service.Actor
}

func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.orgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.memberships = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.permissions = mocks.NewMockPermissionRepositoryInterface(suite.ctrl)
	suite.invitations = mocks.NewMockInvitationRepositoryInterface(suite.ctrl)
	suite.groups = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.trips = mocks.NewMockTripRepositoryInterface(suite.ctrl)
	suite.tx = mocks.NewMockTxManager(suite.ctrl)
	suite.auth = mocks.NewMockAuthorizer(suite.ctrl)
	suite.notifier = mocks.NewMockNotifier(suite.ctrl)

	suite.repos = &repository.Repositories{
		Users:         suite.users,
		Organizations: suite.orgs,
		Memberships:   suite.memberships,
		Permissions:   suite.permissions,
		Invitations:   suite.invitations,
		Groups:        suite.groups,
		Trips:         suite.trips,
	}

	suite.tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*repository.Repositories) error) error {
			return fn(suite.repos)
		}).AnyTimes()
	suite.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()

	suite.userID = uuid.New()
	suite.orgID = uuid.New()
	suite.actor = service.UserActor(suite.userID)
}

func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipServiceTestSuite) newService(mode string) *service.MembershipService {
	cfg := &config.Config{InviteMode: mode, InvitationTTLHours: 24}
	return service.NewMembershipService(suite.repos, suite.tx, suite.auth, suite.notifier, service.NewValidator(), cfg)
}

func (suite *MembershipServiceTestSuite) membership(memberType models.MemberType) *models.OrganizationMembership {
	return &models.OrganizationMembership{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		UserID:         uuid.New(),
		MemberType:     memberType,
		Version:        2,
	}
}

func (suite *MembershipServiceTestSuite) activeOrg() *models.Organization {
	return &models.Organization{
		BaseModel:       models.BaseModel{ID: suite.orgID},
		Name:            "Rovers",
		IsActive:        true,
		CreatedByUserID: suite.userID,
	}
}

func (suite *MembershipServiceTestSuite) TestInvite_CreatorRejected() {
	svc := suite.newService(config.InviteModeDirect)

	_, err := svc.Invite(context.Background(), suite.actor, suite.orgID, &service.InviteRequest{
		Email:      "new@example.com",
		MemberType: models.MemberTypeCreator,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCreatorInvite)
}

func (suite *MembershipServiceTestSuite) TestInvite_DirectModeAddsKnownUser() {
	svc := suite.newService(config.InviteModeDirect)
	invitee := &models.AppUser{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "known@example.com"}

	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapManageMembers).Return(&models.OrganizationMembership{}, nil)
	suite.orgs.EXPECT().GetByID(suite.orgID).Return(suite.activeOrg(), nil)
	suite.users.EXPECT().GetByEmail("known@example.com").Return(invitee, nil)
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, invitee.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.memberships.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.OrganizationMembership) error {
		assert.Equal(suite.T(), models.MemberTypeMember, m.MemberType)
		assert.Equal(suite.T(), 1, m.Version)
		return nil
	})

	resp, err := svc.Invite(context.Background(), suite.actor, suite.orgID, &service.InviteRequest{
		Email:      "Known@Example.com",
		MemberType: models.MemberTypeMember,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.Membership)
	assert.Nil(suite.T(), resp.Invitation)
	assert.Equal(suite.T(), invitee.ID, resp.Membership.UserID)
}

func (suite *MembershipServiceTestSuite) TestInvite_DirectModeUnknownEmailCreatesInvitation() {
	svc := suite.newService(config.InviteModeDirect)

	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapManageMembers).Return(&models.OrganizationMembership{}, nil)
	suite.orgs.EXPECT().GetByID(suite.orgID).Return(suite.activeOrg(), nil)
	suite.users.EXPECT().GetByEmail("stranger@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.invitations.EXPECT().GetPendingByEmail(suite.orgID, "stranger@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.invitations.EXPECT().Create(gomock.Any()).DoAndReturn(func(inv *models.OrganizationInvitation) error {
		assert.Len(suite.T(), inv.Token, 64)
		assert.Equal(suite.T(), models.InvitationStatusPending, inv.Status)
		assert.Equal(suite.T(), suite.userID, inv.InvitedByUserID)
		assert.WithinDuration(suite.T(), time.Now().Add(24*time.Hour), inv.ExpiresAt, time.Minute)
		return nil
	})

	resp, err := svc.Invite(context.Background(), suite.actor, suite.orgID, &service.InviteRequest{
		Email:      "stranger@example.com",
		MemberType: models.MemberTypeAdmin,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.Invitation)
	assert.NotEmpty(suite.T(), resp.Invitation.Token)
	assert.Nil(suite.T(), resp.Membership)
}

func (suite *MembershipServiceTestSuite) TestInvite_PendingModeAlwaysCreatesInvitation() {
	svc := suite.newService(config.InviteModePending)
	invitee := &models.AppUser{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "known@example.com"}

	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapManageMembers).Return(&models.OrganizationMembership{}, nil)
	suite.orgs.EXPECT().GetByID(suite.orgID).Return(suite.activeOrg(), nil)
	suite.users.EXPECT().GetByID(invitee.ID).Return(invitee, nil)
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, invitee.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.invitations.EXPECT().GetPendingByEmail(suite.orgID, "known@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.invitations.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := svc.Invite(context.Background(), suite.actor, suite.orgID, &service.InviteRequest{
		UserID:     &invitee.ID,
		MemberType: models.MemberTypeMember,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.Invitation)
	assert.Equal(suite.T(), "known@example.com", resp.Invitation.Email)
}

func (suite *MembershipServiceTestSuite) TestInvite_AlreadyMember() {
	svc := suite.newService(config.InviteModeDirect)
	invitee := &models.AppUser{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "known@example.com"}

	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapManageMembers).Return(&models.OrganizationMembership{}, nil)
	suite.orgs.EXPECT().GetByID(suite.orgID).Return(suite.activeOrg(), nil)
	suite.users.EXPECT().GetByEmail("known@example.com").Return(invitee, nil)
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, invitee.ID).Return(&models.OrganizationMembership{}, nil)

	_, err := svc.Invite(context.Background(), suite.actor, suite.orgID, &service.InviteRequest{
		Email:      "known@example.com",
		MemberType: models.MemberTypeMember,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
}

func (suite *MembershipServiceTestSuite) TestInvite_Forbidden() {
	svc := suite.newService(config.InviteModeDirect)
	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapManageMembers).Return(nil, apperrors.ErrNotPermitted)

	_, err := svc.Invite(context.Background(), suite.actor, suite.orgID, &service.InviteRequest{
		Email:      "known@example.com",
		MemberType: models.MemberTypeMember,
	})

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *MembershipServiceTestSuite) TestAcceptInvitation_Success() {
	svc := suite.newService(config.InviteModePending)
	user := &models.AppUser{BaseModel: models.BaseModel{ID: suite.userID}, Email: "me@example.com"}
	invitation := &models.OrganizationInvitation{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		Email:          "me@example.com",
		MemberType:     models.MemberTypeAdmin,
		Token:          "token",
		Status:         models.InvitationStatusPending,
		ExpiresAt:      time.Now().Add(time.Hour),
	}

	suite.invitations.EXPECT().GetByToken("token").Return(invitation, nil)
	suite.users.EXPECT().GetByID(suite.userID).Return(user, nil)
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, suite.userID).Return(nil, gorm.ErrRecordNotFound)
	suite.memberships.EXPECT().Create(gomock.Any()).Return(nil)
	suite.invitations.EXPECT().UpdateStatus(invitation.ID, models.InvitationStatusAccepted, gomock.Not(gomock.Nil())).Return(nil)

	resp, err := svc.AcceptInvitation(context.Background(), suite.actor, &service.AcceptInvitationRequest{Token: "token"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.MemberTypeAdmin, resp.MemberType)
	assert.Equal(suite.T(), suite.orgID, resp.OrganizationID)
}

func (suite *MembershipServiceTestSuite) TestAcceptInvitation_Expired() {
	svc := suite.newService(config.InviteModePending)
	invitation := &models.OrganizationInvitation{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Status:    models.InvitationStatusPending,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	suite.invitations.EXPECT().GetByToken("token").Return(invitation, nil)
	suite.invitations.EXPECT().UpdateStatus(invitation.ID, models.InvitationStatusExpired, nil).Return(nil)

	_, err := svc.AcceptInvitation(context.Background(), suite.actor, &service.AcceptInvitationRequest{Token: "token"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationExpired)
}

func (suite *MembershipServiceTestSuite) TestAcceptInvitation_UsedToken() {
	svc := suite.newService(config.InviteModePending)
	suite.invitations.EXPECT().GetByToken("token").Return(&models.OrganizationInvitation{Status: models.InvitationStatusAccepted}, nil)

	_, err := svc.AcceptInvitation(context.Background(), suite.actor, &service.AcceptInvitationRequest{Token: "token"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotPending)
}

func (suite *MembershipServiceTestSuite) TestAcceptInvitation_EmailMismatch() {
	svc := suite.newService(config.InviteModePending)
	suite.invitations.EXPECT().GetByToken("token").Return(&models.OrganizationInvitation{
		Email:     "someone@example.com",
		Status:    models.InvitationStatusPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	suite.users.EXPECT().GetByID(suite.userID).Return(&models.AppUser{Email: "me@example.com"}, nil)

	_, err := svc.AcceptInvitation(context.Background(), suite.actor, &service.AcceptInvitationRequest{Token: "token"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationEmailMismatch)
}

func (suite *MembershipServiceTestSuite) TestChangeRole_CreatorDemotionRejected() {
	svc := suite.newService(config.InviteModeDirect)
	creator := suite.membership(models.MemberTypeCreator)
	suite.memberships.EXPECT().GetByID(creator.ID).Return(creator, nil)
	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapManageMembers).Return(&models.OrganizationMembership{}, nil)

	_, err := svc.ChangeRole(context.Background(), suite.actor, creator.ID, &service.ChangeRoleRequest{MemberType: models.MemberTypeAdmin})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCreatorDemotion)
	assert.True(suite.T(), apperrors.IsPreconditionFailed(err))
	assert.Equal(suite.T(), models.MemberTypeCreator, creator.MemberType)
}

func (suite *MembershipServiceTestSuite) TestChangeRole_PromoteToAdmin() {
	svc := suite.newService(config.InviteModeDirect)
	member := suite.membership(models.MemberTypeMember)
	suite.memberships.EXPECT().GetByID(member.ID).Return(member, nil)
	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapManageMembers).Return(&models.OrganizationMembership{}, nil)
	suite.memberships.EXPECT().UpdateMemberType(member, models.MemberTypeAdmin).DoAndReturn(
		func(m *models.OrganizationMembership, memberType models.MemberType) error {
			m.MemberType = memberType
			m.Version++
			return nil
		})

	resp, err := svc.ChangeRole(context.Background(), suite.actor, member.ID, &service.ChangeRoleRequest{MemberType: models.MemberTypeAdmin})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.MemberTypeAdmin, resp.MemberType)
	assert.Equal(suite.T(), 3, resp.Version)
}

func (suite *MembershipServiceTestSuite) TestChangeRole_TransferOwnership() {
	svc := suite.newService(config.InviteModeDirect)
	creator := suite.membership(models.MemberTypeCreator)
	admin := suite.membership(models.MemberTypeAdmin)
	org := suite.activeOrg()
	org.CreatedByUserID = creator.UserID

	suite.memberships.EXPECT().GetByID(admin.ID).Return(admin, nil)
	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapManageMembers).Return(creator, nil)
	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapTransferOwnership).Return(creator, nil)
	suite.memberships.EXPECT().GetCreator(suite.orgID).Return(creator, nil)

	gomock.InOrder(
		suite.memberships.EXPECT().UpdateMemberType(creator, models.MemberTypeAdmin).DoAndReturn(
			func(m *models.OrganizationMembership, memberType models.MemberType) error {
				m.MemberType = memberType
				return nil
			}),
		suite.memberships.EXPECT().UpdateMemberType(admin, models.MemberTypeCreator).DoAndReturn(
			func(m *models.OrganizationMembership, memberType models.MemberType) error {
				m.MemberType = memberType
				return nil
			}),
	)
	suite.orgs.EXPECT().GetByID(suite.orgID).Return(org, nil)
	suite.orgs.EXPECT().Update(org).Return(nil)

	resp, err := svc.ChangeRole(context.Background(), suite.actor, admin.ID, &service.ChangeRoleRequest{MemberType: models.MemberTypeCreator})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.MemberTypeCreator, resp.MemberType)
	assert.Equal(suite.T(), models.MemberTypeAdmin, creator.MemberType)
	assert.Equal(suite.T(), admin.UserID, org.CreatedByUserID)
}

func (suite *MembershipServiceTestSuite) TestChangeRole_TransferRequiresCapability() {
	svc := suite.newService(config.InviteModeDirect)
	admin := suite.membership(models.MemberTypeAdmin)
	suite.memberships.EXPECT().GetByID(admin.ID).Return(admin, nil)
	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapManageMembers).Return(&models.OrganizationMembership{}, nil)
	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapTransferOwnership).Return(nil, apperrors.ErrNotPermitted)

	_, err := svc.ChangeRole(context.Background(), suite.actor, admin.ID, &service.ChangeRoleRequest{MemberType: models.MemberTypeCreator})

	assert.True(suite.T(), apperrors.IsAuthorization(err))
	assert.Equal(suite.T(), models.MemberTypeAdmin, admin.MemberType)
}

func (suite *MembershipServiceTestSuite) TestRemove_CreatorCannotLeave() {
	svc := suite.newService(config.InviteModeDirect)
	creator := suite.membership(models.MemberTypeCreator)
	creator.UserID = suite.userID
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, suite.userID).Return(creator, nil)

	err := svc.SelfRemove(context.Background(), suite.actor, suite.orgID, nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCreatorCannotLeave)
}

func (suite *MembershipServiceTestSuite) TestRemove_AfterTransferSucceeds() {
	svc := suite.newService(config.InviteModeDirect)
	former := suite.membership(models.MemberTypeAdmin)
	former.UserID = suite.userID
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, suite.userID).Return(former, nil)
	suite.groups.EXPECT().CountActiveCreatedFor(suite.orgID, suite.userID).Return(int64(0), nil)
	suite.trips.EXPECT().CountOpenCreatedFor(suite.orgID, suite.userID).Return(int64(0), nil)
	suite.memberships.EXPECT().Delete(former).Return(nil)

	err := svc.SelfRemove(context.Background(), suite.actor, suite.orgID, nil)

	assert.NoError(suite.T(), err)
}

func (suite *MembershipServiceTestSuite) TestRemove_ReferencedWithoutReassignment() {
	svc := suite.newService(config.InviteModeDirect)
	member := suite.membership(models.MemberTypeMember)
	suite.memberships.EXPECT().GetByID(member.ID).Return(member, nil)
	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapManageMembers).Return(&models.OrganizationMembership{}, nil)
	suite.groups.EXPECT().CountActiveCreatedFor(suite.orgID, member.UserID).Return(int64(0), nil)
	suite.trips.EXPECT().CountOpenCreatedFor(suite.orgID, member.UserID).Return(int64(2), nil)

	err := svc.Remove(context.Background(), suite.actor, member.ID, &service.RemoveMemberRequest{})

	assert.True(suite.T(), apperrors.IsReferencedEntity(err))
}

func (suite *MembershipServiceTestSuite) TestRemove_ReassignsReferences() {
	svc := suite.newService(config.InviteModeDirect)
	member := suite.membership(models.MemberTypeMember)
	heir := uuid.New()

	suite.memberships.EXPECT().GetByID(member.ID).Return(member, nil)
	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapManageMembers).Return(&models.OrganizationMembership{}, nil)
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, heir).Return(&models.OrganizationMembership{UserID: heir}, nil)
	suite.groups.EXPECT().CountActiveCreatedFor(suite.orgID, member.UserID).Return(int64(1), nil)
	suite.trips.EXPECT().CountOpenCreatedFor(suite.orgID, member.UserID).Return(int64(3), nil)
	suite.groups.EXPECT().ReassignCreatedFor(suite.orgID, member.UserID, heir).Return(int64(1), nil)
	suite.trips.EXPECT().ReassignOpenCreatedFor(suite.orgID, member.UserID, heir).Return(int64(3), nil)
	suite.memberships.EXPECT().Delete(member).Return(nil)

	err := svc.Remove(context.Background(), suite.actor, member.ID, &service.RemoveMemberRequest{ReassignTo: &heir})

	assert.NoError(suite.T(), err)
}

func (suite *MembershipServiceTestSuite) TestRemove_ReassignTargetMustBeMember() {
	svc := suite.newService(config.InviteModeDirect)
	member := suite.membership(models.MemberTypeMember)
	outsider := uuid.New()

	suite.memberships.EXPECT().GetByID(member.ID).Return(member, nil)
	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapManageMembers).Return(&models.OrganizationMembership{}, nil)
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, outsider).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Remove(context.Background(), suite.actor, member.ID, &service.RemoveMemberRequest{ReassignTo: &outsider})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MembershipServiceTestSuite) TestConcurrentRoleChangeAndSelfRemove() {
	svc := suite.newService(config.InviteModeDirect)
	member := suite.membership(models.MemberTypeMember)
	member.UserID = suite.userID

	// the role change commits first and bumps the version the removal read
	stale := *member
	suite.memberships.EXPECT().GetByOrganizationAndUser(suite.orgID, suite.userID).Return(&stale, nil)
	suite.groups.EXPECT().CountActiveCreatedFor(suite.orgID, suite.userID).Return(int64(0), nil)
	suite.trips.EXPECT().CountOpenCreatedFor(suite.orgID, suite.userID).Return(int64(0), nil)
	suite.memberships.EXPECT().Delete(&stale).Return(apperrors.ErrMembershipConflict)

	err := svc.SelfRemove(context.Background(), suite.actor, suite.orgID, nil)

	assert.True(suite.T(), apperrors.IsConflict(err))
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipConflict)
}

func (suite *MembershipServiceTestSuite) TestRemove_StaleVersionFromClient() {
	svc := suite.newService(config.InviteModeDirect)
	member := suite.membership(models.MemberTypeMember)
	suite.memberships.EXPECT().GetByID(member.ID).Return(member, nil)
	suite.auth.EXPECT().Authorize(suite.actor, suite.orgID, service.CapManageMembers).Return(&models.OrganizationMembership{}, nil)

	stale := 1
	err := svc.Remove(context.Background(), suite.actor, member.ID, &service.RemoveMemberRequest{Version: &stale})

	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *MembershipServiceTestSuite) TestBootstrapDefaultOrganization_Provisions() {
	svc := suite.newService(config.InviteModeDirect)
	user := &models.AppUser{BaseModel: models.BaseModel{ID: suite.userID}, FullName: "Ana Novak"}

	suite.memberships.EXPECT().CountByUserID(suite.userID).Return(int64(0), nil)
	suite.orgs.EXPECT().Create(gomock.Any()).DoAndReturn(func(org *models.Organization) error {
		org.ID = suite.orgID
		return nil
	})
	suite.auth.EXPECT().DefaultPermissions(suite.orgID, suite.userID.String()).Return([]models.OrganizationPermissions{{}, {}, {}})
	suite.permissions.EXPECT().CreateBatch(gomock.Len(3)).Return(nil)
	suite.groups.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.Group) error {
		assert.Equal(suite.T(), service.DefaultGroupName, g.Name)
		assert.Equal(suite.T(), suite.userID, g.CreatedForUserID)
		return nil
	})
	suite.memberships.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.OrganizationMembership) error {
		assert.Equal(suite.T(), models.MemberTypeCreator, m.MemberType)
		assert.Equal(suite.T(), suite.userID, m.UserID)
		return nil
	})

	resp, err := svc.BootstrapDefaultOrganization(context.Background(), suite.repos, user)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	assert.Equal(suite.T(), suite.orgID, resp.ID)
	assert.Equal(suite.T(), suite.userID, resp.CreatedByUserID)
}

func (suite *MembershipServiceTestSuite) TestBootstrapDefaultOrganization_LongFullNameFitsColumn() {
	svc := suite.newService(config.InviteModeDirect)
	user := &models.AppUser{BaseModel: models.BaseModel{ID: suite.userID}, FullName: strings.Repeat("Ž", 200)}

	suite.memberships.EXPECT().CountByUserID(suite.userID).Return(int64(0), nil)
	suite.orgs.EXPECT().Create(gomock.Any()).DoAndReturn(func(org *models.Organization) error {
		assert.LessOrEqual(suite.T(), utf8.RuneCountInString(org.Name), models.OrganizationNameMaxLength)
		assert.True(suite.T(), strings.HasSuffix(org.Name, " ("+suite.userID.String()[:8]+")"))
		assert.True(suite.T(), utf8.ValidString(org.Name))
		org.ID = suite.orgID
		return nil
	})
	suite.auth.EXPECT().DefaultPermissions(gomock.Any(), gomock.Any()).Return(nil)
	suite.permissions.EXPECT().CreateBatch(gomock.Any()).Return(nil)
	suite.groups.EXPECT().Create(gomock.Any()).Return(nil)
	suite.memberships.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := svc.BootstrapDefaultOrganization(context.Background(), suite.repos, user)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), suite.orgID, resp.ID)
}

func (suite *MembershipServiceTestSuite) TestBootstrapDefaultOrganization_FailureReturnsError() {
	svc := suite.newService(config.InviteModeDirect)
	user := &models.AppUser{BaseModel: models.BaseModel{ID: suite.userID}, FullName: "Ana Novak"}

	suite.memberships.EXPECT().CountByUserID(suite.userID).Return(int64(0), nil)
	suite.orgs.EXPECT().Create(gomock.Any()).Return(nil)
	suite.auth.EXPECT().DefaultPermissions(gomock.Any(), gomock.Any()).Return(nil)
	suite.permissions.EXPECT().CreateBatch(gomock.Any()).Return(nil)
	suite.groups.EXPECT().Create(gomock.Any()).Return(errors.New("duplicate key"))

	resp, err := svc.BootstrapDefaultOrganization(context.Background(), suite.repos, user)

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *MembershipServiceTestSuite) TestBootstrapDefaultOrganization_NoopForMembers() {
	svc := suite.newService(config.InviteModeDirect)
	suite.memberships.EXPECT().CountByUserID(suite.userID).Return(int64(1), nil)

	resp, err := svc.BootstrapDefaultOrganization(context.Background(), suite.repos, &models.AppUser{BaseModel: models.BaseModel{ID: suite.userID}})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp)
}

func (suite *MembershipServiceTestSuite) TestListMembers_RequiresMembership() {
	svc := suite.newService(config.InviteModeDirect)
	suite.auth.EXPECT().RequireMembership(suite.actor, suite.orgID).Return(nil, apperrors.ErrNotAMember)

	_, err := svc.ListMembers(suite.actor, suite.orgID, 1, 20)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAMember)
}

func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
