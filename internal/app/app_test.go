package app

import (
	"flag"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/movies-api/internal/config"
	"github.com/MKhiriev/movies-api/internal/cors"
	"github.com/MKhiriev/movies-api/internal/logger"
	"github.com/MKhiriev/movies-api/internal/server"
	"github.com/MKhiriev/movies-api/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{LogLevel: "debug"},
		Server: config.Server{
			Host:              "127.0.0.1",
			Port:              0,
			ShutdownTimeout:   2 * time.Second,
			ReadHeaderTimeout: time.Second,
		},
		CORS: config.CORS{
			Origins:      append([]string(nil), config.DefaultCORSOrigins...),
			Methods:      append([]string(nil), config.DefaultCORSMethods...),
			AllowHeaders: append([]string(nil), config.DefaultCORSAllowHeaders...),
		},
	}
}

// startApp runs a new App on a free loopback port and stops it when the test
// ends.
func startApp(t *testing.T, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo) (*resty.Client, *App) {
	t.Helper()

	a, err := New(cfg, buildInfo, logger.Nop())
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Run()
	}()
	t.Cleanup(func() {
		a.Shutdown()
		assert.NoError(t, <-errCh)
	})

	client := resty.New().
		SetBaseURL("http://" + a.Addr().String()).
		SetTimeout(2 * time.Second)

	return client, a
}

// ─────────────────────────────────────────────
// New
// ─────────────────────────────────────────────

func TestNew_InvalidCORSPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.CORS.Methods = []string{"GET", "NOT A METHOD"}

	a, err := New(cfg, models.AppBuildInfo{}, logger.Nop())

	require.ErrorIs(t, err, cors.ErrInvalidPolicy)
	assert.Nil(t, a)
}

func TestNew_PortInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	cfg := testConfig()
	cfg.Server.Port = occupied.Addr().(*net.TCPAddr).Port

	a, err := New(cfg, models.AppBuildInfo{}, logger.Nop())

	require.ErrorIs(t, err, server.ErrListen)
	assert.Nil(t, a)
}

// TestNew_PortFromEnvironment starts the app from the real configuration
// sources and checks that SERVER_PORT replaces the default port.
func TestNew_PortFromEnvironment(t *testing.T) {
	free, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := free.Addr().(*net.TCPAddr).Port
	require.NoError(t, free.Close())

	t.Setenv("APP_ENV_FILE", filepath.Join(t.TempDir(), "none.env"))
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", strconv.Itoa(port))

	args, commandLine := os.Args, flag.CommandLine
	t.Cleanup(func() {
		os.Args, flag.CommandLine = args, commandLine
	})
	os.Args = []string{"movies-api"}
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	cfg, err := config.GetStructuredConfig()
	require.NoError(t, err)
	require.Equal(t, port, cfg.Server.Port)

	client, a := startApp(t, cfg, models.AppBuildInfo{})

	assert.Equal(t, port, a.Addr().(*net.TCPAddr).Port)
	assert.NotEqual(t, config.DefaultPort, a.Addr().(*net.TCPAddr).Port)

	resp, err := client.R().Get("/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		build      models.AppBuildInfo
		want       string
	}{
		{"configured wins", "2.0.0", models.NewAppBuildInfo("1.0.0", "", ""), "2.0.0"},
		{"build version", "", models.NewAppBuildInfo("1.0.0", "", ""), "1.0.0"},
		{"unknown", "", models.AppBuildInfo{}, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveVersion(tt.configured, tt.build))
		})
	}
}

// ─────────────────────────────────────────────
// End to end
// ─────────────────────────────────────────────

func TestApp_PreflightOnMovies(t *testing.T) {
	client, _ := startApp(t, testConfig(), models.AppBuildInfo{})

	resp, err := client.R().
		SetHeader("Origin", "http://example.com").
		SetHeader("Access-Control-Request-Method", http.MethodPost).
		Options("/movies")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "http://example.com", resp.Header().Get("Access-Control-Allow-Origin"))

	allowed := resp.Header().Get("Access-Control-Allow-Methods")
	for _, m := range config.DefaultCORSMethods {
		assert.Contains(t, allowed, m)
	}
}

func TestApp_UnknownPathCarriesCORS(t *testing.T) {
	client, _ := startApp(t, testConfig(), models.AppBuildInfo{})

	resp, err := client.R().
		SetHeader("Origin", "http://example.com").
		Get("/nonexistent")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.Equal(t, "http://example.com", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestApp_MovieLifecycle(t *testing.T) {
	client, _ := startApp(t, testConfig(), models.AppBuildInfo{})

	var created models.Movie
	resp, err := client.R().
		SetBody(map[string]any{"title": "Solaris", "director": "Andrei Tarkovsky", "year": 1972}).
		SetResult(&created).
		Post("/movies")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "/movies/"+created.ID, resp.Header().Get("Location"))

	var fetched models.Movie
	resp, err = client.R().SetResult(&fetched).Get("/movies/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "Solaris", fetched.Title)

	resp, err = client.R().Delete("/movies/" + created.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	resp, err = client.R().Get("/movies/" + created.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestApp_VersionFromBuildInfo(t *testing.T) {
	client, _ := startApp(t, testConfig(), models.NewAppBuildInfo("v0.9.0", "2026-10-19", "abc123"))

	resp, err := client.R().Get("/version")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "v0.9.0", resp.String())
}

func TestApp_Metrics(t *testing.T) {
	client, _ := startApp(t, testConfig(), models.AppBuildInfo{})

	_, err := client.R().Get("/healthz")
	require.NoError(t, err)

	resp, err := client.R().Get("/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), `movies_api_http_requests_total{method="GET",route="/healthz",status_code="200"} 1`)
	assert.Contains(t, resp.String(), `movies_api_mounted_routes{group="movies"} 5`)
}
