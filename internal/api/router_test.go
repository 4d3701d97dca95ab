package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dmaia/taskboard/internal/app"
	iauth "github.com/dmaia/taskboard/internal/auth"
	"github.com/dmaia/taskboard/internal/database/testutil"
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type apiTester struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newAPITester(t *testing.T) *apiTester {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.MustOpenTestDB(t)

	jwt, err := iauth.NewJWTService(iauth.JWTConfig{Secret: "router-test-secret"})
	require.NoError(t, err)

	cfg := &app.Config{}
	cfg.Server.Port = 8080
	cfg.Auth.JWTSecret = "router-test-secret"

	router, err := NewRouter(db, jwt, cfg)
	require.NoError(t, err)

	return &apiTester{t: t, router: router}
}

func (a *apiTester) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w, env
}

// register logs in as a fresh user and stores the bearer token.
func (a *apiTester) register(name, email string) uint {
	a.t.Helper()

	w, env := a.do(http.MethodPost, "/auth/register", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(a.t, data.Token)

	a.token = data.Token
	return data.User.ID
}

func TestRouterRejectsMissingToken(t *testing.T) {
	a := newAPITester(t)

	w, _ := a.do(http.MethodGet, "/team/all", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouterUnknownRouteIs404(t *testing.T) {
	a := newAPITester(t)

	w, env := a.do(http.MethodGet, "/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, env.Message, "route /nope not found")
}

func TestRouterHealthAndMetricsArePublic(t *testing.T) {
	a := newAPITester(t)

	w, _ := a.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterLoginFlow(t *testing.T) {
	a := newAPITester(t)
	a.register("Ana", "ana@example.com")

	a.token = ""
	w, env := a.do(http.MethodPost, "/auth/login", gin.H{
		"email":    "ana@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Login successful", env.Message)

	w, _ = a.do(http.MethodPost, "/auth/login", gin.H{
		"email":    "ana@example.com",
		"password": "wrong-pass",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouterValidationErrors(t *testing.T) {
	a := newAPITester(t)
	a.register("Ana", "ana@example.com")

	// missing required fields
	w, _ := a.do(http.MethodPost, "/team/create", gin.H{"description": "no name"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// non-numeric path parameter
	w, _ = a.do(http.MethodGet, "/team/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// empty update payload
	w, _ = a.do(http.MethodPut, "/user/1", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouterBoardLifecycle(t *testing.T) {
	a := newAPITester(t)
	userID := a.register("Ana", "ana@example.com")

	// team
	w, env := a.do(http.MethodPost, "/team/create", gin.H{
		"name":      "Eng",
		"memberIds": []uint{userID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var team struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &team))

	// project
	w, env = a.do(http.MethodPost, "/project/create", gin.H{
		"name":    "Site",
		"teamId":  team.ID,
		"ownerId": userID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var project struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &project))

	// task defaults to the todo column
	w, env = a.do(http.MethodPost, "/task/create", gin.H{
		"title":     "Design",
		"projectId": project.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var task struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &task))
	require.Equal(t, "todo", task.Status)

	boardPath := fmt.Sprintf("/projects/%d/tasks?view=board", project.ID)
	w, env = a.do(http.MethodGet, boardPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var columns struct {
		Todo  []json.RawMessage `json:"todo"`
		Doing []json.RawMessage `json:"doing"`
		Done  []json.RawMessage `json:"done"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &columns))
	require.Len(t, columns.Todo, 1)
	require.Empty(t, columns.Doing)
	require.Empty(t, columns.Done)

	// status-only PUT moves the task
	w, _ = a.do(http.MethodPut, fmt.Sprintf("/task/%d", task.ID), gin.H{"status": "done"})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = a.do(http.MethodGet, boardPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &columns))
	require.Empty(t, columns.Todo)
	require.Empty(t, columns.Doing)
	require.Len(t, columns.Done, 1)
}

func TestRouterMemberAndCommentFlow(t *testing.T) {
	a := newAPITester(t)
	anaID := a.register("Ana", "ana@example.com")

	w, env := a.do(http.MethodPost, "/user/create", gin.H{
		"name":     "Bia",
		"email":    "bia@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var bia struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &bia))

	w, env = a.do(http.MethodPost, "/team/create", gin.H{"name": "Eng"})
	require.Equal(t, http.StatusCreated, w.Code)
	var team struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &team))

	w, _ = a.do(http.MethodPost, "/member/add", gin.H{"userId": bia.ID, "teamId": team.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	// duplicate pair is a 400
	w, _ = a.do(http.MethodPost, "/member/add", gin.H{"userId": bia.ID, "teamId": team.ID})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = a.do(http.MethodPut, "/member/update-role", gin.H{
		"userId": bia.ID, "teamId": team.ID, "role": "admin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// comments need a task
	w, env = a.do(http.MethodPost, "/project/create", gin.H{
		"name": "Site", "teamId": team.ID, "ownerId": anaID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var project struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &project))

	w, env = a.do(http.MethodPost, "/task/create", gin.H{
		"title": "Design", "projectId": project.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var task struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &task))

	w, _ = a.do(http.MethodPost, "/comment/create", gin.H{
		"content": "looks good", "taskId": task.ID, "authorId": anaID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = a.do(http.MethodGet, fmt.Sprintf("/comment/task/%d", task.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var comments []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &comments))
	require.Len(t, comments, 1)

	w, _ = a.do(http.MethodDelete, "/member/remove", gin.H{"userId": bia.ID, "teamId": team.ID})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouterNotFoundMapping(t *testing.T) {
	a := newAPITester(t)
	a.register("Ana", "ana@example.com")

	w, _ := a.do(http.MethodGet, "/project/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w, _ = a.do(http.MethodDelete, "/task/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// empty collections report 404 for teams
	a2 := newAPITester(t)
	a2.register("Solo", "solo@example.com")
	w, _ = a2.do(http.MethodGet, "/team/all", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
