//go:build pact
// +build pact

package provider_test

import (
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/qa-sandbox/go-demo-user-api/test/pact"

	authobs "github.com/qa-sandbox/go-demo-user-api/internal/domains/auth/adapters/observability"
	authapp "github.com/qa-sandbox/go-demo-user-api/internal/domains/auth/application"
	usermemory "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/adapters/memory"
	userobs "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/adapters/observability"
	userapp "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/application"
	userdemoserver "github.com/qa-sandbox/go-demo-user-api/server"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestUserDemoProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateUsersBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetUsers(t)
			return nil, nil
		},
		pacttest.StateUserExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			// The seed data restored by a reset already contains the user.
			app.resetUsers(t)
			return nil, nil
		},
		pacttest.StateUserMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.resetUsers(t)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.resetUsers(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	repo   *usermemory.Repository
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	repo := usermemory.NewRepository()
	userService := userobs.New(userapp.NewService(repo))
	authService := authobs.New(authapp.NewService())

	handlers := userdemoserver.ApiHandleFunctions{
		HealthAPI: userdemoserver.NewHealthAPI(),
		UsersAPI:  userdemoserver.NewUsersAPI(userService),
		AuthAPI:   userdemoserver.NewAuthAPI(authService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = userdemoserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		repo:   repo,
		server: server,
	}
}

func (a *contractProviderApp) resetUsers(t testing.TB) {
	t.Helper()
	a.repo.Reset()
}
