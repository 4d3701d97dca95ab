package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	appValidator "github.com/dmaia/taskboard/pkg/validator"
)

func TestFormatValidationError(t *testing.T) {
	require.Equal(t, "invalid request payload", formatValidationError(nil))

	err := appValidator.ValidationErrors{
		{Field: "email", Tag: "required"},
		{Field: "password", Tag: "min", Param: "6"},
	}
	require.Equal(t,
		"email is required; password must be at least 6 characters",
		formatValidationError(err))
}

func TestUintParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		raw    string
		wantID uint
		wantOK bool
	}{
		{"7", 7, true},
		{"abc", 0, false},
		{"0", 0, false},
		{"-3", 0, false},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Params = gin.Params{{Key: "id", Value: tc.raw}}

		id, ok := uintParam(c, "id")
		require.Equal(t, tc.wantOK, ok, "raw=%q", tc.raw)
		require.Equal(t, tc.wantID, id, "raw=%q", tc.raw)
		if !tc.wantOK {
			require.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/health", Health(nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
}
