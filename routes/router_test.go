package routes

import (
	"SWJTUCTF/models"
	"SWJTUCTF/services"
	"SWJTUCTF/stores"
	"SWJTUCTF/utils"
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	router http.Handler
	deps   Deps
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seed := services.MockSeed()
	users := stores.NewUserStore(bcrypt.MinCost)
	for i, u := range seed.Users {
		_, err := users.Add(u, seed.UserPasswords[i])
		require.NoError(t, err)
	}
	challenges := stores.NewChallengeStore(seed.Challenges)
	deps := Deps{
		Contests:   stores.NewContestStore(seed.Contests),
		Teams:      stores.NewTeamStore(seed.Teams, rand.New(rand.NewSource(1))),
		Challenges: challenges,
		Users:      users,
		Containers: services.NewContainerService(challenges, services.NewMockLauncher("127.0.0.1"), time.Hour, "swjtuctf", zap.NewNop()),
		Cache:      services.NewContestCache(nil, 0, zap.NewNop()),
		JWTSecret:  []byte("router-test-secret"),
		TokenTTL:   time.Hour,
		Logger:     zap.NewNop(),
	}
	return &testEnv{router: SetupRouter(deps), deps: deps}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (utils.Response, json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		utils.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Response, envelope.Data
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	resp, data := e.do(t, http.MethodPost, "/api/v1/users/login", "", gin.H{"username": username, "password": password})
	require.Equal(t, utils.CodeOK, resp.Code, resp.Msg)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	return out.Token
}

func TestHealthz(t *testing.T) {
	e := newTestEnv(t)
	resp, _ := e.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, utils.CodeOK, resp.Code)
}

func TestLogin(t *testing.T) {
	e := newTestEnv(t)

	resp, _ := e.do(t, http.MethodPost, "/api/v1/users/login", "", gin.H{"username": "alice", "password": "nope"})
	assert.Equal(t, utils.CodePermissionDenied, resp.Code)

	resp, _ = e.do(t, http.MethodPost, "/api/v1/users/login", "", gin.H{"username": "alice"})
	assert.Equal(t, utils.CodeInvalidParams, resp.Code)

	tok := e.login(t, "alice@swjtuctf.local", "password123")
	resp, data := e.do(t, http.MethodGet, "/api/v1/users/me", tok, nil)
	require.Equal(t, utils.CodeOK, resp.Code)
	var me struct {
		User  models.User   `json:"user"`
		Teams []models.Team `json:"teams"`
	}
	require.NoError(t, json.Unmarshal(data, &me))
	assert.Equal(t, "alice", me.User.Username)
	require.Len(t, me.Teams, 1)
	assert.Equal(t, "0xSWJTU", me.Teams[0].Name)
}

func TestRegister(t *testing.T) {
	e := newTestEnv(t)

	body := gin.H{"username": "frank", "password": "password123", "email": "frank@example.com"}
	resp, _ := e.do(t, http.MethodPost, "/api/v1/users/register", "", body)
	require.Equal(t, utils.CodeOK, resp.Code, resp.Msg)

	resp, _ = e.do(t, http.MethodPost, "/api/v1/users/register", "", body)
	assert.Equal(t, utils.CodeUserExists, resp.Code)

	e.login(t, "frank", "password123")
}

func TestPublicContestList(t *testing.T) {
	e := newTestEnv(t)
	inactive := false
	require.True(t, e.deps.Contests.Update(1, stores.ContestPatch{IsActive: &inactive}))

	resp, data := e.do(t, http.MethodGet, "/api/v1/contests?limit=100", "", nil)
	require.Equal(t, utils.CodeOK, resp.Code)
	var list struct {
		Total    int              `json:"total"`
		Contests []models.Contest `json:"contests"`
	}
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Equal(t, 21, list.Total)
	for _, c := range list.Contests {
		assert.NotEqual(t, 1, c.ID)
	}

	resp, data = e.do(t, http.MethodGet, "/api/v1/contests?status=finished&type=team&page=2&limit=4", "", nil)
	require.Equal(t, utils.CodeOK, resp.Code)
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Equal(t, 6, list.Total)
	assert.Len(t, list.Contests, 2)

	resp, _ = e.do(t, http.MethodGet, "/api/v1/contests?status=paused", "", nil)
	assert.Equal(t, utils.CodeInvalidParams, resp.Code)

	resp, _ = e.do(t, http.MethodGet, "/api/v1/contests/1", "", nil)
	assert.Equal(t, utils.CodeNotFound, resp.Code)
}

func TestContestDetailRendersMarkdown(t *testing.T) {
	e := newTestEnv(t)
	require.True(t, e.deps.Contests.UpdateDescription(2, "# 规则"))

	resp, data := e.do(t, http.MethodGet, "/api/v1/contests/2", "", nil)
	require.Equal(t, utils.CodeOK, resp.Code)
	var detail struct {
		ID              int    `json:"id"`
		Description     string `json:"description"`
		DescriptionHTML string `json:"descriptionHtml"`
	}
	require.NoError(t, json.Unmarshal(data, &detail))
	assert.Equal(t, 2, detail.ID)
	assert.Equal(t, "# 规则", detail.Description)
	assert.Contains(t, detail.DescriptionHTML, "<h1>规则</h1>")

	resp, _ = e.do(t, http.MethodGet, "/api/v1/contests/abc", "", nil)
	assert.Equal(t, utils.CodeInvalidID, resp.Code)
}

func TestAdminContestLifecycle(t *testing.T) {
	e := newTestEnv(t)
	admin := e.login(t, "admin", "admin123456")
	user := e.login(t, "bob", "password123")

	create := gin.H{
		"name":      "SWJTU CTF 2026",
		"brief":     "年度赛",
		"startTime": "2099-05-01 09:00",
		"endTime":   "2099-05-02 09:00",
		"type":      "team",
	}
	resp, _ := e.do(t, http.MethodPost, "/api/v1/admin/contests", user, create)
	assert.Equal(t, utils.CodePermissionDenied, resp.Code)

	resp, data := e.do(t, http.MethodPost, "/api/v1/admin/contests", admin, create)
	require.Equal(t, utils.CodeOK, resp.Code, resp.Msg)
	var created models.Contest
	require.NoError(t, json.Unmarshal(data, &created))
	assert.Equal(t, 23, created.ID)
	assert.Equal(t, models.ContestStatusUpcoming, created.Status)
	assert.Equal(t, 0, created.ParticipantCount)

	bad := gin.H{"name": "x", "startTime": "2099-05-02 09:00", "endTime": "2099-05-01 09:00", "type": "team"}
	resp, _ = e.do(t, http.MethodPost, "/api/v1/admin/contests", admin, bad)
	assert.Equal(t, utils.CodeInvalidParams, resp.Code)

	resp, _ = e.do(t, http.MethodPut, "/api/v1/admin/contests/23", admin, gin.H{"endTime": "2099-04-01 09:00"})
	assert.Equal(t, utils.CodeInvalidParams, resp.Code)

	resp, data = e.do(t, http.MethodPut, "/api/v1/admin/contests/23", admin, gin.H{"brief": "改", "isActive": false})
	require.Equal(t, utils.CodeOK, resp.Code, resp.Msg)
	var updated models.Contest
	require.NoError(t, json.Unmarshal(data, &updated))
	assert.Equal(t, "改", updated.Brief)
	assert.Equal(t, "SWJTU CTF 2026", updated.Name)
	require.NotNil(t, updated.IsActive)
	assert.False(t, *updated.IsActive)

	resp, _ = e.do(t, http.MethodPut, "/api/v1/admin/contests/23/description", admin, gin.H{"description": "## new"})
	require.Equal(t, utils.CodeOK, resp.Code)
	got, _ := e.deps.Contests.Get(23)
	assert.Equal(t, "## new", got.Description)

	resp, _ = e.do(t, http.MethodDelete, "/api/v1/admin/contests/23", admin, nil)
	require.Equal(t, utils.CodeOK, resp.Code)
	resp, _ = e.do(t, http.MethodDelete, "/api/v1/admin/contests/23", admin, nil)
	assert.Equal(t, utils.CodeNotFound, resp.Code)
}

func TestTeamFlow(t *testing.T) {
	e := newTestEnv(t)
	dave := e.login(t, "dave", "password123")
	carol := e.login(t, "carol", "password123")

	resp, data := e.do(t, http.MethodPost, "/api/v1/teams", dave, gin.H{"name": "Reverse Rangers", "description": "逆向"})
	require.Equal(t, utils.CodeOK, resp.Code, resp.Msg)
	var team models.Team
	require.NoError(t, json.Unmarshal(data, &team))
	assert.Equal(t, 4, team.ID)
	require.Len(t, team.Members, 1)
	assert.Equal(t, "dave", team.Members[0].Username)

	resp, _ = e.do(t, http.MethodPost, "/api/v1/teams/join", carol, gin.H{"inviteCode": "NOPE-NOPE-NOPE"})
	assert.Equal(t, utils.CodeInvalidInvite, resp.Code)

	resp, data = e.do(t, http.MethodPost, "/api/v1/teams/join", carol, gin.H{"inviteCode": team.InviteCode})
	require.Equal(t, utils.CodeOK, resp.Code, resp.Msg)
	var joined models.Team
	require.NoError(t, json.Unmarshal(data, &joined))
	assert.Equal(t, 4, joined.ID)
	require.Len(t, joined.Members, 2)
	assert.Equal(t, "carol", joined.Members[1].Username)
	resp, _ = e.do(t, http.MethodPost, "/api/v1/teams/join", carol, gin.H{"inviteCode": team.InviteCode})
	assert.Equal(t, utils.CodeAlreadyMember, resp.Code)

	resp, _ = e.do(t, http.MethodPut, "/api/v1/teams/4", carol, gin.H{"name": "hijack"})
	assert.Equal(t, utils.CodePermissionDenied, resp.Code)
	resp, _ = e.do(t, http.MethodPut, "/api/v1/teams/4", dave, gin.H{"description": "逆向与移动安全"})
	require.Equal(t, utils.CodeOK, resp.Code)

	resp, _ = e.do(t, http.MethodPost, "/api/v1/teams/4/leave", carol, nil)
	require.Equal(t, utils.CodeOK, resp.Code)
	resp, _ = e.do(t, http.MethodPost, "/api/v1/teams/4/leave", carol, nil)
	assert.Equal(t, utils.CodeNotMember, resp.Code)

	resp, data = e.do(t, http.MethodPost, "/api/v1/teams/4/leave", dave, nil)
	require.Equal(t, utils.CodeOK, resp.Code)
	assert.JSONEq(t, `{"dissolved":true}`, string(data))
	_, ok := e.deps.Teams.Get(4)
	assert.False(t, ok, "creator leaving dissolves the team")
}

func TestTeamDetailHidesInviteCodeFromOutsiders(t *testing.T) {
	e := newTestEnv(t)
	alice := e.login(t, "alice", "password123")
	carol := e.login(t, "carol", "password123")

	_, data := e.do(t, http.MethodGet, "/api/v1/teams/1", alice, nil)
	var team models.Team
	require.NoError(t, json.Unmarshal(data, &team))
	assert.Equal(t, "SWJT-UCTF-2K25", team.InviteCode)

	_, data = e.do(t, http.MethodGet, "/api/v1/teams/1", carol, nil)
	team = models.Team{}
	require.NoError(t, json.Unmarshal(data, &team))
	assert.Empty(t, team.InviteCode)

	resp, _ := e.do(t, http.MethodDelete, "/api/v1/teams/1", carol, nil)
	assert.Equal(t, utils.CodePermissionDenied, resp.Code)
	resp, _ = e.do(t, http.MethodDelete, "/api/v1/teams/1", alice, nil)
	assert.Equal(t, utils.CodeOK, resp.Code)
}

func TestAdminTeams(t *testing.T) {
	e := newTestEnv(t)
	admin := e.login(t, "admin", "admin123456")

	resp, data := e.do(t, http.MethodGet, "/api/v1/admin/teams?search=cats", admin, nil)
	require.Equal(t, utils.CodeOK, resp.Code)
	var list struct {
		Total int `json:"total"`
		Teams []struct {
			ID              int    `json:"id"`
			CreatorUsername string `json:"creatorUsername"`
			MemberCount     int    `json:"memberCount"`
		} `json:"teams"`
	}
	require.NoError(t, json.Unmarshal(data, &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, 2, list.Teams[0].ID)
	assert.Equal(t, "carol", list.Teams[0].CreatorUsername)

	members := []models.TeamMember{{ID: 4, Username: "carol"}, {ID: 5, Username: "dave"}}
	resp, _ = e.do(t, http.MethodPut, "/api/v1/admin/teams/2", admin, gin.H{"members": members})
	require.Equal(t, utils.CodeOK, resp.Code, resp.Msg)
	team, _ := e.deps.Teams.Get(2)
	assert.Equal(t, members, team.Members)

	resp, _ = e.do(t, http.MethodDelete, "/api/v1/admin/teams/2", admin, nil)
	require.Equal(t, utils.CodeOK, resp.Code)
	resp, _ = e.do(t, http.MethodDelete, "/api/v1/admin/teams/2", admin, nil)
	assert.Equal(t, utils.CodeNotFound, resp.Code)

	resp, _ = e.do(t, http.MethodGet, "/api/v1/admin/users", admin, nil)
	assert.Equal(t, utils.CodeOK, resp.Code)
}

func TestChallengesAndContainers(t *testing.T) {
	e := newTestEnv(t)
	bob := e.login(t, "bob", "password123")

	resp, data := e.do(t, http.MethodGet, "/api/v1/challenges?category=Web", "", nil)
	require.Equal(t, utils.CodeOK, resp.Code)
	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Equal(t, 2, list.Total)

	resp, _ = e.do(t, http.MethodGet, "/api/v1/challenges?difficulty=Insane", "", nil)
	assert.Equal(t, utils.CodeInvalidParams, resp.Code)

	resp, _ = e.do(t, http.MethodPost, "/api/v1/challenges/2/container", "", nil)
	assert.Equal(t, utils.CodeAuthMissing, resp.Code)

	resp, data = e.do(t, http.MethodPost, "/api/v1/challenges/2/container", bob, nil)
	require.Equal(t, utils.CodeOK, resp.Code, resp.Msg)
	var started struct {
		ContainerState models.ContainerState `json:"containerState"`
		ContainerInfo  *models.ContainerInfo `json:"containerInfo"`
	}
	require.NoError(t, json.Unmarshal(data, &started))
	assert.Equal(t, models.ContainerStateRunning, started.ContainerState)
	require.NotNil(t, started.ContainerInfo)
	assert.Equal(t, "127.0.0.1", started.ContainerInfo.IP)

	resp, _ = e.do(t, http.MethodPost, "/api/v1/challenges/2/container", bob, nil)
	assert.Equal(t, utils.CodeContainerBusy, resp.Code)

	resp, _ = e.do(t, http.MethodDelete, "/api/v1/challenges/2/container", bob, nil)
	require.Equal(t, utils.CodeOK, resp.Code)
	resp, _ = e.do(t, http.MethodDelete, "/api/v1/challenges/2/container", bob, nil)
	assert.Equal(t, utils.CodeContainerStopped, resp.Code)

	resp, _ = e.do(t, http.MethodPost, "/api/v1/challenges/404/container", bob, nil)
	assert.Equal(t, utils.CodeNotFound, resp.Code)
}

func TestContainersBelongToTheirOwner(t *testing.T) {
	e := newTestEnv(t)
	bob := e.login(t, "bob", "password123")
	carol := e.login(t, "carol", "password123")

	resp, _ := e.do(t, http.MethodPost, "/api/v1/challenges/2/container", bob, nil)
	require.Equal(t, utils.CodeOK, resp.Code, resp.Msg)

	resp, _ = e.do(t, http.MethodDelete, "/api/v1/challenges/2/container", carol, nil)
	assert.Equal(t, utils.CodeContainerStopped, resp.Code)

	resp, data := e.do(t, http.MethodGet, "/api/v1/challenges/2", bob, nil)
	require.Equal(t, utils.CodeOK, resp.Code)
	var detail struct {
		ContainerState models.ContainerState `json:"containerState"`
		ContainerInfo  *models.ContainerInfo `json:"containerInfo"`
	}
	require.NoError(t, json.Unmarshal(data, &detail))
	assert.Equal(t, models.ContainerStateRunning, detail.ContainerState, "carol must not destroy bob's container")

	resp, _ = e.do(t, http.MethodPost, "/api/v1/challenges/2/container", carol, nil)
	require.Equal(t, utils.CodeOK, resp.Code, "bob's container must not block carol")

	resp, _ = e.do(t, http.MethodDelete, "/api/v1/challenges/2/container", carol, nil)
	require.Equal(t, utils.CodeOK, resp.Code)
	resp, _ = e.do(t, http.MethodDelete, "/api/v1/challenges/2/container", bob, nil)
	assert.Equal(t, utils.CodeOK, resp.Code)
}

func TestChallengeViewsFollowTheCaller(t *testing.T) {
	e := newTestEnv(t)
	bob := e.login(t, "bob", "password123")

	resp, _ := e.do(t, http.MethodPost, "/api/v1/challenges/3/container", bob, nil)
	require.Equal(t, utils.CodeOK, resp.Code, resp.Msg)

	stateOf := func(token string, id int) models.ContainerState {
		resp, data := e.do(t, http.MethodGet, "/api/v1/challenges", token, nil)
		require.Equal(t, utils.CodeOK, resp.Code)
		var list struct {
			Challenges []struct {
				ID             int                   `json:"id"`
				ContainerState models.ContainerState `json:"containerState"`
			} `json:"challenges"`
		}
		require.NoError(t, json.Unmarshal(data, &list))
		for _, ch := range list.Challenges {
			if ch.ID == id {
				return ch.ContainerState
			}
		}
		t.Fatalf("challenge %d missing from list", id)
		return ""
	}

	assert.Equal(t, models.ContainerStateRunning, stateOf(bob, 3))
	assert.Equal(t, models.ContainerStateIdle, stateOf("", 3))
	assert.Equal(t, models.ContainerStateIdle, stateOf(bob, 1))
	assert.Equal(t, models.ContainerStateRunning, stateOf("", 1))

	resp, _ = e.do(t, http.MethodGet, "/api/v1/challenges/3", "not-a-token", nil)
	assert.Equal(t, utils.CodeOK, resp.Code)
}
