package userdemo

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	authapp "github.com/qa-sandbox/go-demo-user-api/internal/domains/auth/application"
	usermemory "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/adapters/memory"
	userapp "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/application"
	userdemoserver "github.com/qa-sandbox/go-demo-user-api/server"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handlers := userdemoserver.ApiHandleFunctions{
		HealthAPI: userdemoserver.NewHealthAPI(),
		UsersAPI:  userdemoserver.NewUsersAPI(userapp.NewService(usermemory.NewRepository())),
		AuthAPI:   userdemoserver.NewAuthAPI(authapp.NewService()),
	}
	router := gin.New()
	router.Use(userdemoserver.Recovery(nil))
	router = userdemoserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client, err := New(server.URL)
	require.NoError(t, err)
	return client
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New("   ")
	require.Error(t, err)
}

func TestClientHealth(t *testing.T) {
	client := newTestClient(t)
	health, err := client.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Time)
}

func TestClientListUsers(t *testing.T) {
	client := newTestClient(t)

	page, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, float64(1), page.Page)
	require.Equal(t, float64(2), page.PerPage)
	require.Equal(t, 2, page.Total)
	require.Len(t, page.Data, 2)
	require.NotEmpty(t, page.Support.URL)

	second, err := client.ListUsers(context.Background(), WithPage(2), WithPerPage(1))
	require.NoError(t, err)
	require.Equal(t, float64(2), second.Page)
	require.Len(t, second.Data, 1)
	require.Equal(t, "janet.weaver@reqres.in", second.Data[0].Email)

	_, err = client.ListUsers(context.Background(), WithPage(0))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
	require.Equal(t, "Invalid pagination parameters", apiErr.Message)
}

func TestClientUserLifecycle(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateUser(ctx, "Trinity Moss", "operator")
	require.NoError(t, err)
	require.Equal(t, int64(3), created.ID)
	require.Equal(t, "Trinity Moss", created.Name)
	require.NotEmpty(t, created.CreatedAt)

	fetched, err := client.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "trinity.moss@reqres.in", fetched.Email)
	require.Equal(t, "Trinity", fetched.FirstName)
	require.Equal(t, "Moss", fetched.LastName)

	all, err := client.ListAllUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, all.Total)

	name := "Trinity M"
	echo, err := client.UpdateUser(ctx, created.ID, &name, nil)
	require.NoError(t, err)
	require.Equal(t, "Trinity M", echo.Name)
	require.Equal(t, "(unchanged)", echo.Job)

	unchanged, err := client.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Trinity", unchanged.FirstName)

	require.NoError(t, client.DeleteUser(ctx, created.ID))

	_, err = client.GetUser(ctx, created.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.StatusCode)
	require.Equal(t, "User not found", apiErr.Message)
}

func TestClientLogin(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	token, err := client.Login(ctx, "eve.holt@reqres.in", "cityslicka")
	require.NoError(t, err)
	require.Equal(t, "demo-token-123", token)

	_, err = client.Login(ctx, "eve.holt@reqres.in", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode)
	require.Equal(t, "Invalid credentials", apiErr.Message)
}
