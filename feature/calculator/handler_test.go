package calculator

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"toolbox/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleEval(t *testing.T) {
	rec := metrics.New()
	app := fiber.New()
	NewHandler(NewService(zap.NewNop(), rec)).RegisterRoutes(app)

	for expression, want := range map[string]string{"1+2*3": "7", "1/0": ""} {
		body, err := json.Marshal(EvalRequest{Expression: expression})
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/calculator/eval", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out Evaluation
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, Evaluation{Expression: expression, Result: want}, out)
	}

	count, err := testutil.GatherAndCount(rec.Registry(), "toolbox_conversions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestHandleEval_BadBody(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(zap.NewNop(), nil)).RegisterRoutes(app)

	req := httptest.NewRequest("POST", "/calculator/eval", strings.NewReader(`{"expression":`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(zap.NewNop(), nil)

	assert.Equal(t, "calculator", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
