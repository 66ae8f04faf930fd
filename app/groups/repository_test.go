package groups

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/joefazee/wagerlog/models"
	"github.com/joefazee/wagerlog/tests/suites"
)

type GroupRepositoryTestSuite struct {
	suites.RepositoryTestSuite
	repo Repository
}

func (suite *GroupRepositoryTestSuite) SetupSuite() {
	if testing.Short() {
		suite.T().Skip("Skipping database integration test")
	}

	suite.AutoMigrate = true

	suite.RepositoryTestSuite.SetupSuite()

	suite.repo = NewRepository(suite.DB)
}

func TestGroupRepository(t *testing.T) {
	suite.Run(t, new(GroupRepositoryTestSuite))
}

func (suite *GroupRepositoryTestSuite) createGroup(owner uuid.UUID, code string) *models.Group {
	group := &models.Group{Name: "Sharps", OwnerID: owner, InviteCode: code}
	suite.AssertNoDBError(suite.repo.Create(context.Background(), group))
	return group
}

func (suite *GroupRepositoryTestSuite) TestCreateAddsOwner() {
	ctx := context.Background()
	owner := uuid.New()
	suite.AssertNoDBError(suite.DB.Create(&models.User{ID: owner, Email: "owner@example.com"}).Error)

	group := suite.createGroup(owner, "abcdEFGH")

	exists, err := suite.repo.InviteCodeExists(ctx, "abcdEFGH")
	suite.AssertNoDBError(err)
	suite.True(exists)

	member, err := suite.repo.GetMember(ctx, group.ID, owner)
	suite.AssertNoDBError(err)
	suite.Equal(owner, member.UserID)

	members, err := suite.repo.ListMembers(ctx, group.ID)
	suite.AssertNoDBError(err)
	suite.Require().Len(members, 1)
	suite.Equal("owner@example.com", members[0].Email())

	found, err := suite.repo.GetByInviteCode(ctx, "abcdEFGH")
	suite.AssertNoDBError(err)
	suite.Equal(group.ID, found.ID)
}

func (suite *GroupRepositoryTestSuite) TestDuplicateInviteCodeRejected() {
	suite.createGroup(uuid.New(), "samecode")
	dup := &models.Group{Name: "Other", OwnerID: uuid.New(), InviteCode: "samecode"}
	suite.AssertDBError(suite.repo.Create(context.Background(), dup))
	suite.Equal(int64(1), suite.CountRecords("groups"))
}

func (suite *GroupRepositoryTestSuite) TestMembership() {
	ctx := context.Background()
	owner, friend := uuid.New(), uuid.New()
	group := suite.createGroup(owner, "members1")
	other := suite.createGroup(friend, "members2")

	suite.AssertNoDBError(suite.repo.AddMember(ctx, &models.GroupMember{
		GroupID:  group.ID,
		UserID:   friend,
		JoinedAt: time.Now().UTC().Add(time.Minute),
	}))

	count, err := suite.repo.CountMembers(ctx, group.ID)
	suite.AssertNoDBError(err)
	suite.Equal(int64(2), count)

	members, err := suite.repo.ListMembers(ctx, group.ID)
	suite.AssertNoDBError(err)
	suite.Require().Len(members, 2)
	suite.Equal(owner, members[0].UserID)
	suite.Equal(friend, members[1].UserID)

	summaries, err := suite.repo.ListForUser(ctx, friend)
	suite.AssertNoDBError(err)
	suite.Require().Len(summaries, 2)
	byID := map[uuid.UUID]int64{}
	for _, s := range summaries {
		byID[s.Group.ID] = s.MemberCount
	}
	suite.Equal(int64(2), byID[group.ID])
	suite.Equal(int64(1), byID[other.ID])

	suite.AssertNoDBError(suite.repo.RemoveMember(ctx, group.ID, friend))
	suite.ErrorIs(suite.repo.RemoveMember(ctx, group.ID, friend), gorm.ErrRecordNotFound)
}

func (suite *GroupRepositoryTestSuite) TestDeleteRemovesMemberships() {
	ctx := context.Background()
	owner := uuid.New()
	group := suite.createGroup(owner, "deleteme")

	suite.AssertNoDBError(suite.repo.Delete(ctx, group.ID))
	suite.Equal(int64(0), suite.CountRecords("group_members"))

	_, err := suite.repo.GetByID(ctx, group.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.repo.Delete(ctx, group.ID), gorm.ErrRecordNotFound)
}
