package userdemoserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginUserWithDemoCredentials(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doRequest(t, router, http.MethodPost, "/api/login", `{"email":"eve.holt@reqres.in","password":"cityslicka"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"token":"demo-token-123"}`, rec.Body.String())
}

func TestLoginUserRejectsOtherCredentials(t *testing.T) {
	router, _ := newTestRouter(t)
	bodies := []string{
		`{"email":"eve.holt@reqres.in","password":"wrong"}`,
		`{"email":"someone@reqres.in","password":"cityslicka"}`,
		`{"email":" eve.holt@reqres.in","password":"cityslicka"}`,
		`{"email":"EVE.HOLT@REQRES.IN","password":"cityslicka"}`,
	}
	for _, body := range bodies {
		rec := doRequest(t, router, http.MethodPost, "/api/login", body)
		require.Equal(t, http.StatusUnauthorized, rec.Code, body)
		require.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String(), body)
	}
}

func TestLoginUserMissingFields(t *testing.T) {
	router, _ := newTestRouter(t)
	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing email", `{"password":"cityslicka"}`, "Missing email"},
		{"missing password", `{"email":"eve.holt@reqres.in"}`, "Missing password"},
		{"both missing", `{}`, "Missing email"},
		{"empty body", ``, "Missing email"},
		{"empty email", `{"email":"","password":"cityslicka"}`, "Missing email"},
		{"non-string email", `{"email":123,"password":"cityslicka"}`, "Missing email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/login", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.JSONEq(t, `{"error":"`+tc.want+`"}`, rec.Body.String())
		})
	}
}

func TestLoginUserMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doRequest(t, router, http.MethodPost, "/api/login", `{`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
}
