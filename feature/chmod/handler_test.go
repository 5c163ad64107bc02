package chmod

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

func do(t *testing.T, app *fiber.App, method, path, body string) (int, State) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var out State
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestHandleInitial(t *testing.T) {
	code, s := do(t, setupTestApp(), "GET", "/chmod", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, NewState(), s)
}

func TestHandleToggle(t *testing.T) {
	app := setupTestApp()

	code, s := do(t, app, "POST", "/chmod/toggle", `{"who":"owner","perm":"write"}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "200", s.Octal)

	body, err := json.Marshal(ToggleRequest{State: &s, Who: "group", Perm: "read"})
	require.NoError(t, err)
	code, s = do(t, app, "POST", "/chmod/toggle", string(body))
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "240", s.Octal)
	assert.Equal(t, "-w-r-----", s.Text)
}

func TestHandleToggle_UnknownBit(t *testing.T) {
	code, _ := do(t, setupTestApp(), "POST", "/chmod/toggle", `{"who":"everyone","perm":"read"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestHandleOctalAndText(t *testing.T) {
	app := setupTestApp()

	code, s := do(t, app, "POST", "/chmod/octal", `{"value":"755"}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "rwxr-xr-x", s.Text)
	assert.Equal(t, "chmod 755", s.Command)

	code, s = do(t, app, "POST", "/chmod/text", `{"value":"rw-------"}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "600", s.Octal)

	code, _ = do(t, app, "POST", "/chmod/octal", `{"value":`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(zap.NewNop(), nil)

	assert.Equal(t, "chmod", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
