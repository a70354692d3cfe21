package userdemoserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qa-sandbox/go-demo-user-api/internal/shared/timestamp"
)

// HealthAPI serves the liveness probe with an error-simulation switch.
type HealthAPI struct {
	clock func() time.Time
}

// NewHealthAPI creates a HealthAPI on the system clock.
func NewHealthAPI() HealthAPI {
	return NewHealthAPIWithClock(nil)
}

// NewHealthAPIWithClock pins the reported time, used by tests.
func NewHealthAPIWithClock(clock func() time.Time) HealthAPI {
	if clock == nil {
		clock = time.Now
	}
	return HealthAPI{clock: clock}
}

// HealthResponse is the healthy probe payload.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// HealthFailureResponse is the simulated failure payload.
type HealthFailureResponse struct {
	Error string `json:"error"`
	Time  string `json:"time"`
}

// Get /health
// Health check
// @Summary Health probe, optionally simulating a server fault
// @Tags health
// @Produce json
// @Param fail query string false "Set to 500 to simulate a fault"
// @Success 200 {object} HealthResponse
// @Failure 500 {object} HealthFailureResponse
// @Router /health [get]
func (api *HealthAPI) HealthCheck(c *gin.Context) {
	now := timestamp.Format(api.clock())
	if c.Query("fail") == "500" {
		c.JSON(http.StatusInternalServerError, HealthFailureResponse{
			Error: "Internal error (simulated)",
			Time:  now,
		})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Time: now})
}
