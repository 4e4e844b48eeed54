package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mansoorceksport/kinetic/internal/catalog"
	"github.com/mansoorceksport/kinetic/internal/domain"
	"github.com/mansoorceksport/kinetic/internal/middleware"
	"github.com/mansoorceksport/kinetic/internal/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CATALOG_PATH", "")
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSuggestText(t *testing.T) {
	out, err := run(t, "suggest", "--focus", "core", "--duration", "20 MIN", "--seed", "7")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "CORE HYPERTROPHY", lines[0])
	assert.Contains(t, lines[1], "4 exercises · 3 x 10 · rest 90 sec")
	assert.True(t, strings.HasPrefix(lines[3], "1."))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "4."))
}

func TestSuggestJSONIsReproducible(t *testing.T) {
	first, err := run(t, "suggest", "--goal", "strength", "--equipment", "all", "--seed", "42", "--json")
	require.NoError(t, err)
	second, err := run(t, "suggest", "--goal", "strength", "--equipment", "all", "--seed", "42", "--json")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var result suggest.Result
	require.NoError(t, json.Unmarshal([]byte(first), &result))
	assert.Len(t, result.Items, 7)
	assert.Equal(t, 4, result.Prescription.Sets)
	assert.Equal(t, 5, result.Prescription.Reps)
}

func TestCatalogFilters(t *testing.T) {
	out, err := run(t, "catalog", "--equipment", "band")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "BAND")
	assert.NotContains(t, out, "pushup ")

	_, err = run(t, "catalog", "--equipment", "kettlebell")
	assert.Error(t, err)
	_, err = run(t, "catalog", "--category", "neck")
	assert.Error(t, err)
}

func TestCatalogExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	_, err := run(t, "catalog", "export", "-o", path)
	require.NoError(t, err)

	loaded, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Len(), loaded.Len())

	// the exported file can drive the other commands
	out, err := run(t, "--catalog", path, "catalog", "--search", "plank")
	require.NoError(t, err)
	assert.Contains(t, out, "timed")
}

func TestCatalogExportStdout(t *testing.T) {
	out, err := run(t, "catalog", "export")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "exercises:"))
}

func TestMissingCatalogFile(t *testing.T) {
	_, err := run(t, "--catalog", filepath.Join(os.TempDir(), "does-not-exist.yaml"), "catalog")
	assert.Error(t, err)
}

func TestTokenIsAcceptedByTheAPI(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	out, err := run(t, "token", "--device", "phone-1", "--secret", "s3cret", "--ttl", "1h")
	require.NoError(t, err)
	raw := strings.TrimSpace(out)

	claims := &domain.DeviceClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("s3cret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "phone-1", claims.DeviceID)
	assert.Equal(t, "phone-1", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	app := fiber.New()
	app.Use(middleware.VerifyDeviceToken("s3cret"))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.DeviceIDKey).(string))
	})
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
}

func TestTokenNeedsSecretAndDevice(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := run(t, "token", "--device", "phone-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	_, err = run(t, "token", "--secret", "s3cret")
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "from-env")
	out, err := run(t, "token", "--device", "tablet", "--ttl", "0")
	require.NoError(t, err)
	claims := &domain.DeviceClaims{}
	_, err = jwt.ParseWithClaims(strings.TrimSpace(out), claims, func(*jwt.Token) (interface{}, error) {
		return []byte("from-env"), nil
	})
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}
