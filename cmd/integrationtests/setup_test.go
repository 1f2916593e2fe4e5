package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"carbid/internal/auth"
	bidding "carbid/internal/biddingService"
	"carbid/internal/config"
	"carbid/internal/fanout"
	"carbid/internal/repository"
	"carbid/internal/server"
	user "carbid/internal/userService"
	vehicle "carbid/internal/vehicleService"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router *gin.Engine
	repo   *repository.SQLiteRepo
	hub    *fanout.Hub
}

// setupTestApp wires the full HTTP stack against a throwaway SQLite file.
func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:                "0",
		DatabasePath:        filepath.Join(t.TempDir(), "auction.db"),
		JWTSecret:           "integration-test-secret",
		TokenTTL:            time.Hour,
		MinIncrementDefault: 100,
		AuctionWindow:       time.Hour,
		SweepInterval:       time.Minute,
		BidLockWait:         5 * time.Second,
	}

	repo, err := repository.OpenSQLite(cfg.DatabasePath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	hub := fanout.NewHub()

	authSvc, err := auth.NewService(repo, cfg.JWTSecret, cfg.TokenTTL)
	require.NoError(t, err)

	biddingSvc := bidding.NewBiddingService(repo, hub)
	vehicleSvc := vehicle.NewVehicleService(repo, hub, vehicle.Defaults{
		MinIncrement:  cfg.MinIncrementDefault,
		AuctionWindow: cfg.AuctionWindow,
	})
	userSvc := user.NewUserService(repo)

	router := server.SetupRouter(cfg, server.Services{
		Auth:     authSvc,
		Vehicles: vehicleSvc,
		Bidding:  biddingSvc,
		Users:    userSvc,
		Hub:      hub,
	})

	return &testApp{router: router, repo: repo, hub: hub}
}

// do executes an HTTP request and parses the JSON envelope.
func (a *testApp) do(t *testing.T, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	resp := map[string]any{}
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// registerAndLogin creates an account and returns its access token and id.
func (a *testApp) registerAndLogin(t *testing.T, name, email, role string) (token, userID string) {
	t.Helper()

	resp, w := a.do(t, "POST", "/api/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "password-1",
		"role":     role,
	})
	require.Equal(t, 200, w.Code, "register failed: %v", resp)
	userID = resp["data"].(map[string]any)["user_id"].(string)

	resp, w = a.do(t, "POST", "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "password-1",
	})
	require.Equal(t, 200, w.Code, "login failed: %v", resp)
	token = resp["data"].(map[string]any)["token"].(string)
	return token, userID
}

// createVehicle lists a vehicle as the given seller and returns its id.
func (a *testApp) createVehicle(t *testing.T, sellerToken, lotCode string, basePrice, minIncrement int64) string {
	t.Helper()

	resp, w := a.do(t, "POST", "/api/vehicles", sellerToken, map[string]any{
		"make":          "Ford",
		"model":         "Mustang",
		"year":          1967,
		"base_price":    basePrice,
		"min_increment": minIncrement,
		"lot_code":      lotCode,
	})
	require.Equal(t, 200, w.Code, "create vehicle failed: %v", resp)
	return resp["data"].(map[string]any)["vehicle_id"].(string)
}
