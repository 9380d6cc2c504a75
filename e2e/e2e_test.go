//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseURL string

func TestMain(m *testing.M) {
	baseURL = os.Getenv("KRISHID_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Wait for krishid to be ready
	for i := 0; i < 30; i++ {
		resp, err := http.Get(baseURL + "/healthz")
		if err == nil && resp.StatusCode == 200 {
			break
		}
		time.Sleep(2 * time.Second)
	}

	os.Exit(m.Run())
}

func TestHealthCheck(t *testing.T) {
	resp, err := http.Get(baseURL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "ok", body["status"])
}

func TestSoilToLoanFlow(t *testing.T) {
	t.Skip("Requires full stack running - enable in CI")

	// Step 1: Submit a soil report
	soilReq := map[string]interface{}{
		"farmer_id":        "00000000-0000-0000-0000-000000000010",
		"farm_id":          "00000000-0000-0000-0000-000000000011",
		"nitrogen_kg_ha":   190,
		"phosphorus_kg_ha": 18,
		"potassium_kg_ha":  260,
		"ph":               6.4,
	}
	report := postJSON(t, "/api/v1/soil/analyze", soilReq, http.StatusCreated)
	require.NotEmpty(t, report["id"])
	assert.NotEmpty(t, report["recommendations"])

	// Step 2: Apply for a crop loan
	loanReq := map[string]interface{}{
		"farmer_id":        "00000000-0000-0000-0000-000000000010",
		"requested_amount": "20000",
		"purpose":          "seeds and fertilizer",
		"crop_type":        "Rice",
		"crop_stage":       "sowing",
		"soil_ph":          6.4,
		"soil_nitrogen":    190,
	}
	app := postJSON(t, "/api/v1/loans/applications", loanReq, http.StatusCreated)
	require.Equal(t, "APPROVED", app["status"])

	// Step 3: Disburse and check the schedule
	appID := app["id"].(string)
	loan := postJSON(t, fmt.Sprintf("/api/v1/loans/applications/%s/disburse", appID), map[string]interface{}{}, http.StatusCreated)
	assert.Equal(t, "ACTIVE", loan["status"])
	assert.NotEmpty(t, loan["schedule"])
}

func postJSON(t *testing.T, path string, body map[string]interface{}, wantStatus int) map[string]interface{} {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantStatus, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
