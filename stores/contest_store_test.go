package stores

import (
	"testing"
	"time"

	"SWJTUCTF/mock"
	"SWJTUCTF/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 12, 12, 0, 0, 0, time.Local)

func newTestContestStore(seed []models.Contest) *ContestStore {
	s := NewContestStore(seed)
	s.now = func() time.Time { return fixedNow }
	return s
}

func contestInput(start, end string) ContestInput {
	return ContestInput{
		Name:        "Spring CTF",
		Brief:       "brief",
		Description: "# Spring",
		StartTime:   start,
		EndTime:     end,
		Type:        models.ContestTypeTeam,
		ImageURL:    "https://example.com/cover.png",
	}
}

func TestContestStore_CreateOnEmptyStoreStartsAtOne(t *testing.T) {
	s := newTestContestStore(nil)

	c := s.Create(contestInput("2025-04-01 09:00", "2025-04-01 18:00"))

	assert.Equal(t, 1, c.ID)
	assert.Equal(t, 0, c.ParticipantCount)
	require.NotNil(t, c.IsActive)
	assert.True(t, *c.IsActive)
}

func TestContestStore_CreateIDsStrictlyIncrease(t *testing.T) {
	s := newTestContestStore(mock.Contests())

	prev := 22
	for i := 0; i < 10; i++ {
		c := s.Create(contestInput("2025-04-01 09:00", "2025-04-01 18:00"))
		assert.Greater(t, c.ID, prev)
		prev = c.ID
	}
	assert.Equal(t, 32, prev)
}

func TestContestStore_CreateReusesDeletedMaxID(t *testing.T) {
	s := newTestContestStore(mock.Contests())

	require.True(t, s.Delete(22))
	c := s.Create(contestInput("2025-04-01 09:00", "2025-04-01 18:00"))
	assert.Equal(t, 22, c.ID)

	require.True(t, s.Delete(5))
	c = s.Create(contestInput("2025-04-01 09:00", "2025-04-01 18:00"))
	assert.Equal(t, 23, c.ID)
}

func TestContestStore_CreateDerivesStatus(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  models.ContestStatus
	}{
		{"future", "2025-03-20 10:00", "2025-03-20 18:00", models.ContestStatusUpcoming},
		{"running", "2025-03-12 09:00", "2025-03-12 18:00", models.ContestStatusOngoing},
		{"past", "2025-03-01 09:00", "2025-03-01 21:00", models.ContestStatusFinished},
		{"start boundary", "2025-03-12 12:00", "2025-03-12 18:00", models.ContestStatusOngoing},
		{"end boundary", "2025-03-12 09:00", "2025-03-12 12:00", models.ContestStatusOngoing},
		{"rfc3339", fixedNow.Add(time.Hour).Format(time.RFC3339), fixedNow.Add(2 * time.Hour).Format(time.RFC3339), models.ContestStatusUpcoming},
		{"unparseable", "soon", "later", models.ContestStatusFinished},
		{"unparseable end", "2025-03-12 09:00", "later", models.ContestStatusFinished},
		{"future start bad end", "2025-03-20 10:00", "later", models.ContestStatusUpcoming},
		{"inverted range", "2025-03-13 09:00", "2025-03-11 09:00", models.ContestStatusUpcoming},
		{"inverted range passed", "2025-03-12 09:00", "2025-03-11 09:00", models.ContestStatusFinished},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestContestStore(nil)
			c := s.Create(contestInput(tc.start, tc.end))
			assert.Equal(t, tc.want, c.Status)
		})
	}
}

func TestContestStore_UpdateAppliesOnlyDefinedFields(t *testing.T) {
	s := newTestContestStore(mock.Contests())
	before, ok := s.Get(2)
	require.True(t, ok)

	name := "周赛"
	inactive := false
	require.True(t, s.Update(2, ContestPatch{Name: &name, IsActive: &inactive}))

	after, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, "周赛", after.Name)
	require.NotNil(t, after.IsActive)
	assert.False(t, *after.IsActive)
	assert.Equal(t, before.Brief, after.Brief)
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, before.StartTime, after.StartTime)
	assert.Equal(t, before.Type, after.Type)
}

func TestContestStore_UpdateEmptyPatchIsNoop(t *testing.T) {
	s := newTestContestStore(mock.Contests())
	before, _ := s.Get(7)

	assert.True(t, s.Update(7, ContestPatch{}))

	after, _ := s.Get(7)
	assert.Equal(t, before, after)
}

func TestContestStore_UpdateDoesNotRecomputeStatus(t *testing.T) {
	s := newTestContestStore(nil)
	c := s.Create(contestInput("2025-03-20 10:00", "2025-03-20 18:00"))
	require.Equal(t, models.ContestStatusUpcoming, c.Status)

	start, end := "2025-03-01 10:00", "2025-03-01 18:00"
	require.True(t, s.Update(c.ID, ContestPatch{StartTime: &start, EndTime: &end}))

	got, _ := s.Get(c.ID)
	assert.Equal(t, start, got.StartTime)
	assert.Equal(t, models.ContestStatusUpcoming, got.Status)
}

func TestContestStore_UpdateUnknownID(t *testing.T) {
	s := newTestContestStore(mock.Contests())
	name := "x"
	assert.False(t, s.Update(999, ContestPatch{Name: &name}))
	assert.False(t, s.UpdateDescription(999, "x"))
}

func TestContestStore_UpdateDescription(t *testing.T) {
	s := newTestContestStore(mock.Contests())

	require.True(t, s.UpdateDescription(1, "## new"))

	c, _ := s.Get(1)
	assert.Equal(t, "## new", c.Description)
	assert.Equal(t, "第八届西南交通大学 CTF 新秀杯", c.Name)
}

func TestContestStore_Delete(t *testing.T) {
	s := newTestContestStore(mock.Contests())
	size := s.Len()

	assert.False(t, s.Delete(100))
	assert.Equal(t, size, s.Len())

	assert.True(t, s.Delete(3))
	assert.Equal(t, size-1, s.Len())
	_, ok := s.Get(3)
	assert.False(t, ok)
	assert.False(t, s.Delete(3))
}

func TestContestStore_GetReturnsCopy(t *testing.T) {
	s := newTestContestStore(mock.Contests())

	c, _ := s.Get(1)
	c.Name = "mutated"
	*c.IsActive = false

	again, _ := s.Get(1)
	assert.NotEqual(t, "mutated", again.Name)
	assert.True(t, *again.IsActive)
}

func TestContestStore_ListFilters(t *testing.T) {
	s := newTestContestStore(mock.Contests())
	inactive := false
	require.True(t, s.Update(2, ContestPatch{IsActive: &inactive}))

	all := s.List(ContestFilter{})
	assert.Len(t, all, 22)

	visible := s.List(ContestFilter{VisibleOnly: true})
	assert.Len(t, visible, 21)

	finishedTeam := s.List(ContestFilter{Status: models.ContestStatusFinished, Type: models.ContestTypeTeam})
	for _, c := range finishedTeam {
		assert.Equal(t, models.ContestStatusFinished, c.Status)
		assert.Equal(t, models.ContestTypeTeam, c.Type)
	}
	assert.Len(t, finishedTeam, 6)
	assert.Equal(t, 3, finishedTeam[0].ID)
}
