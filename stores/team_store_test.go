package stores

import (
	"math/rand"
	"regexp"
	"testing"

	"SWJTUCTF/mock"
	"SWJTUCTF/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inviteCodePattern = regexp.MustCompile(`^[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{4}-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{4}-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{4}$`)

func newTestTeamStore(seed []models.Team) *TeamStore {
	return NewTeamStore(seed, rand.New(rand.NewSource(42)))
}

func teamInput(name string, creatorID int) TeamInput {
	return TeamInput{
		Name:            name,
		Description:     "desc",
		CreatorID:       creatorID,
		CreatorUsername: "creator",
	}
}

func TestTeamStore_CreateAddsCreatorAsOnlyMember(t *testing.T) {
	s := newTestTeamStore(nil)

	team := s.Create(TeamInput{
		Name:            "Pwn Club",
		Description:     "binary",
		CreatorID:       7,
		CreatorUsername: "eve",
		CreatorAvatar:   "https://example.com/eve.png",
	})

	assert.Equal(t, 1, team.ID)
	require.Len(t, team.Members, 1)
	assert.Equal(t, models.TeamMember{ID: 7, Username: "eve", Avatar: "https://example.com/eve.png"}, team.Members[0])
	require.NotNil(t, team.CreatorID)
	assert.Equal(t, 7, *team.CreatorID)
	assert.Regexp(t, inviteCodePattern, team.InviteCode)
	assert.Equal(t, "https://api.dicebear.com/7.x/shapes/svg?seed=Pwn+Club", team.Avatar)
}

func TestTeamStore_CreateKeepsExplicitAvatar(t *testing.T) {
	s := newTestTeamStore(nil)
	in := teamInput("A", 1)
	in.Avatar = "https://example.com/a.png"

	team := s.Create(in)

	assert.Equal(t, "https://example.com/a.png", team.Avatar)
}

func TestTeamStore_CreateIDsFollowSeed(t *testing.T) {
	s := newTestTeamStore(mock.Teams())

	a := s.Create(teamInput("A", 10))
	b := s.Create(teamInput("B", 11))

	assert.Equal(t, 4, a.ID)
	assert.Equal(t, 5, b.ID)
}

func TestTeamStore_GeneratedInviteCodesAreDistinct(t *testing.T) {
	s := newTestTeamStore(mock.Teams())

	seen := make(map[string]struct{})
	for _, team := range mock.Teams() {
		seen[team.InviteCode] = struct{}{}
	}
	for i := 0; i < 100; i++ {
		team := s.Create(teamInput("T", 100+i))
		require.Regexp(t, inviteCodePattern, team.InviteCode)
		_, dup := seen[team.InviteCode]
		require.False(t, dup, "duplicate invite code %s", team.InviteCode)
		seen[team.InviteCode] = struct{}{}
	}
}

func TestTeamStore_GenerateInviteCodeAvoidsStoredCodes(t *testing.T) {
	s := newTestTeamStore(mock.Teams())

	code := s.GenerateInviteCode()

	assert.Regexp(t, inviteCodePattern, code)
	for _, team := range s.List() {
		assert.NotEqual(t, team.InviteCode, code)
	}
}

func TestTeamStore_JoinByInviteCode(t *testing.T) {
	s := newTestTeamStore(mock.Teams())

	joined, ok := s.JoinByInviteCode("CATS-M8QZ-7KPW", 9, "frank", "")
	require.True(t, ok)
	assert.Equal(t, 2, joined.ID)
	require.Len(t, joined.Members, 2)
	team, _ := s.Get(2)
	require.Len(t, team.Members, 2)
	assert.Equal(t, models.TeamMember{ID: 9, Username: "frank"}, team.Members[1])

	joined.Members[1].Username = "mutated"
	team, _ = s.Get(2)
	assert.Equal(t, "frank", team.Members[1].Username)

	_, ok = s.JoinByInviteCode("CATS-M8QZ-7KPW", 9, "frank", "")
	assert.False(t, ok)
	team, _ = s.Get(2)
	assert.Len(t, team.Members, 2)

	_, ok = s.JoinByInviteCode("AAAA-BBBB-CCCC", 10, "grace", "")
	assert.False(t, ok)
	_, ok = s.JoinByInviteCode("", 10, "grace", "")
	assert.False(t, ok)
}

func TestTeamStore_JoinPreservesInsertionOrder(t *testing.T) {
	s := newTestTeamStore(nil)
	team := s.Create(teamInput("Order", 1))

	_, ok := s.JoinByInviteCode(team.InviteCode, 3, "c", "")
	require.True(t, ok)
	_, ok = s.JoinByInviteCode(team.InviteCode, 2, "b", "")
	require.True(t, ok)

	got, _ := s.Get(team.ID)
	ids := []int{got.Members[0].ID, got.Members[1].ID, got.Members[2].ID}
	assert.Equal(t, []int{1, 3, 2}, ids)
}

func TestTeamStore_UpdatePartialAndMembersReplacement(t *testing.T) {
	s := newTestTeamStore(mock.Teams())
	before, _ := s.Get(1)

	assert.True(t, s.Update(1, TeamPatch{}))
	unchanged, _ := s.Get(1)
	assert.Equal(t, before, unchanged)

	desc := "new description"
	members := []models.TeamMember{{ID: 2, Username: "alice"}}
	require.True(t, s.Update(1, TeamPatch{Description: &desc, Members: members}))
	members[0].Username = "mutated"

	after, _ := s.Get(1)
	assert.Equal(t, "new description", after.Description)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, []models.TeamMember{{ID: 2, Username: "alice"}}, after.Members)

	assert.False(t, s.Update(404, TeamPatch{Description: &desc}))
}

func TestTeamStore_DeleteAndGet(t *testing.T) {
	s := newTestTeamStore(mock.Teams())

	assert.False(t, s.Delete(404))
	assert.Equal(t, 3, s.Len())

	assert.True(t, s.Delete(2))
	assert.Equal(t, 2, s.Len())
	_, ok := s.Get(2)
	assert.False(t, ok)
}

func TestTeamStore_GetUserTeams(t *testing.T) {
	s := newTestTeamStore(mock.Teams())

	teams := s.GetUserTeams(3)
	require.Len(t, teams, 2)
	assert.Equal(t, 1, teams[0].ID)
	assert.Equal(t, 3, teams[1].ID)

	assert.Empty(t, s.GetUserTeams(404))
}

func TestTeamStore_LeaveByCreatorDissolvesTeam(t *testing.T) {
	s := newTestTeamStore(mock.Teams())

	assert.True(t, s.Leave(1, 2))

	_, ok := s.Get(1)
	assert.False(t, ok)
	assert.Empty(t, s.GetUserTeams(2))
}

func TestTeamStore_LeaveByMemberRemovesOnlyMember(t *testing.T) {
	s := newTestTeamStore(mock.Teams())

	assert.True(t, s.Leave(1, 3))

	team, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, []models.TeamMember{{ID: 2, Username: "alice"}}, team.Members)
}

func TestTeamStore_LeaveFailures(t *testing.T) {
	s := newTestTeamStore(mock.Teams())

	assert.False(t, s.Leave(404, 2))
	assert.False(t, s.Leave(1, 99))

	// 没有创建者的队伍只能逐个离开
	assert.True(t, s.Leave(3, 3))
	assert.True(t, s.Leave(3, 5))
	team, ok := s.Get(3)
	require.True(t, ok)
	assert.Empty(t, team.Members)
}

func TestTeamStore_GetReturnsCopy(t *testing.T) {
	s := newTestTeamStore(mock.Teams())

	team, _ := s.Get(1)
	team.Members[0].Username = "mutated"
	*team.CreatorID = 99

	again, _ := s.Get(1)
	assert.Equal(t, "alice", again.Members[0].Username)
	assert.Equal(t, 2, *again.CreatorID)
}

func TestTeamStore_UpdateByCreator(t *testing.T) {
	s := newTestTeamStore(mock.Teams())
	name := "Renamed"

	_, err := s.UpdateByCreator(1, 3, TeamPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotTeamCreator)
	_, err = s.UpdateByCreator(404, 2, TeamPatch{Name: &name})
	assert.ErrorIs(t, err, ErrTeamNotFound)

	updated, err := s.UpdateByCreator(1, 2, TeamPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestTeamStore_DeleteByCreatorChecksCurrentOwner(t *testing.T) {
	s := newTestTeamStore(nil)
	first := s.Create(teamInput("First", 1))
	require.True(t, s.Delete(first.ID))

	// 删除最大 ID 后新队伍复用同一个 ID，旧队长不能再操作它
	reused := s.Create(teamInput("Second", 2))
	require.Equal(t, first.ID, reused.ID)

	assert.ErrorIs(t, s.DeleteByCreator(reused.ID, 1), ErrNotTeamCreator)
	_, err := s.UpdateByCreator(reused.ID, 1, TeamPatch{})
	assert.ErrorIs(t, err, ErrNotTeamCreator)

	require.NoError(t, s.DeleteByCreator(reused.ID, 2))
	assert.ErrorIs(t, s.DeleteByCreator(reused.ID, 2), ErrTeamNotFound)
}

func TestTeamStore_LeaveOrDissolve(t *testing.T) {
	s := newTestTeamStore(mock.Teams())

	dissolved, ok := s.LeaveOrDissolve(1, 3)
	assert.True(t, ok)
	assert.False(t, dissolved)

	dissolved, ok = s.LeaveOrDissolve(1, 2)
	assert.True(t, ok)
	assert.True(t, dissolved)

	_, ok = s.LeaveOrDissolve(1, 2)
	assert.False(t, ok)
}
