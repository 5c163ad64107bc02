package radix

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"toolbox/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	NewHandler(NewService(zap.NewNop(), metrics.New())).RegisterRoutes(app)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHandleConvert(t *testing.T) {
	app := setupTestApp()

	code, body := post(t, app, "/radix/dec", `{"value":"255"}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, map[string]string{"hex": "FF", "dec": "255", "oct": "377", "bin": "11111111"}, body)
}

func TestHandleConvert_InvalidInputClears(t *testing.T) {
	app := setupTestApp()

	code, body := post(t, app, "/radix/bin", `{"value":"12"}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, map[string]string{"hex": "", "dec": "", "oct": "", "bin": "12"}, body)
}

func TestHandleConvert_BadRequests(t *testing.T) {
	app := setupTestApp()

	code, body := post(t, app, "/radix/b64", `{"value":"1"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body["error"], "unknown base")

	code, _ = post(t, app, "/radix/hex", `{"value":`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(zap.NewNop(), nil)

	assert.Equal(t, "radix", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
