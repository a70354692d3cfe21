package userdemoserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qa-sandbox/go-demo-user-api/internal/shared/apierrors"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the generated Route.
type Routes []Route

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	router.NoRoute(NotFoundHandler)
	return router
}

// DefaultHandleFunc used when a route has no handler configured.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// NotFoundHandler keeps unknown routes on the JSON error envelope.
func NotFoundHandler(c *gin.Context) {
	apierrors.Respond(c, apierrors.NotFound("Resource not found"))
}

// ApiHandleFunctions groups the handlers per API section.
type ApiHandleFunctions struct {
	HealthAPI HealthAPI
	UsersAPI  UsersAPI
	AuthAPI   AuthAPI
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"HealthCheck",
			http.MethodGet,
			"/health",
			handleFunctions.HealthAPI.HealthCheck,
		},
		{
			"ListUsers",
			http.MethodGet,
			"/api/users",
			handleFunctions.UsersAPI.ListUsers,
		},
		{
			"ListAllUsers",
			http.MethodGet,
			"/api/users/all",
			handleFunctions.UsersAPI.ListAllUsers,
		},
		{
			"GetUser",
			http.MethodGet,
			"/api/users/:id",
			handleFunctions.UsersAPI.GetUser,
		},
		{
			"CreateUser",
			http.MethodPost,
			"/api/users",
			handleFunctions.UsersAPI.CreateUser,
		},
		{
			"UpdateUser",
			http.MethodPut,
			"/api/users/:id",
			handleFunctions.UsersAPI.UpdateUser,
		},
		{
			"DeleteUser",
			http.MethodDelete,
			"/api/users",
			handleFunctions.UsersAPI.DeleteUser,
		},
		{
			"LoginUser",
			http.MethodPost,
			"/api/login",
			handleFunctions.AuthAPI.LoginUser,
		},
	}
}
