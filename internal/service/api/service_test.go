package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/diag-server/internal/config"
	"github.com/darkkaiser/diag-server/internal/pkg/version"
	"github.com/darkkaiser/diag-server/internal/service/api/constants"
	"github.com/darkkaiser/diag-server/internal/service/contract"
	"github.com/darkkaiser/diag-server/internal/service/contract/mocks"
	"github.com/darkkaiser/diag-server/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeHealthChecker 테스트용 DiagnosticsHealthChecker 구현체입니다.
type fakeHealthChecker struct {
	err error
}

func (f *fakeHealthChecker) Health() error {
	return f.err
}

func newTestAppConfig() *config.AppConfig {
	appConfig := &config.AppConfig{}
	appConfig.DiagAPI.WS.ListenPort = 47653
	appConfig.DiagAPI.CORS.AllowOrigins = []string{"*"}

	return appConfig
}

func newTestDependencies() Dependencies {
	return Dependencies{
		DependencyChecker: &mocks.MockDependencyChecker{},
		HealthChecker:     &fakeHealthChecker{},
		ConfigSanitizer:   &mocks.MockConfigSanitizer{},
		SystemInventory:   &mocks.MockSystemInventory{},
	}
}

func TestNewService(t *testing.T) {
	t.Parallel()

	t.Run("성공: 모든 의존성이 주어지면 서비스가 생성된다", func(t *testing.T) {
		t.Parallel()

		service := NewService(newTestAppConfig(), newTestDependencies(), version.Info{})
		assert.NotNil(t, service)
	})

	t.Run("실패: AppConfig가 nil이면 panic이 발생한다", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, constants.PanicMsgAppConfigRequired, func() {
			NewService(nil, newTestDependencies(), version.Info{})
		})
	})

	t.Run("실패: DependencyChecker가 nil이면 panic이 발생한다", func(t *testing.T) {
		t.Parallel()

		deps := newTestDependencies()
		deps.DependencyChecker = nil

		assert.PanicsWithValue(t, constants.PanicMsgDependencyCheckerRequired, func() {
			NewService(newTestAppConfig(), deps, version.Info{})
		})
	})

	t.Run("실패: HealthChecker가 nil이면 panic이 발생한다", func(t *testing.T) {
		t.Parallel()

		deps := newTestDependencies()
		deps.HealthChecker = nil

		assert.PanicsWithValue(t, constants.PanicMsgHealthCheckerRequired, func() {
			NewService(newTestAppConfig(), deps, version.Info{})
		})
	})

	t.Run("실패: ConfigSanitizer가 nil이면 panic이 발생한다", func(t *testing.T) {
		t.Parallel()

		deps := newTestDependencies()
		deps.ConfigSanitizer = nil

		assert.PanicsWithValue(t, constants.PanicMsgConfigSanitizerRequired, func() {
			NewService(newTestAppConfig(), deps, version.Info{})
		})
	})

	t.Run("실패: SystemInventory가 nil이면 panic이 발생한다", func(t *testing.T) {
		t.Parallel()

		deps := newTestDependencies()
		deps.SystemInventory = nil

		assert.PanicsWithValue(t, constants.PanicMsgSystemInventoryRequired, func() {
			NewService(newTestAppConfig(), deps, version.Info{})
		})
	})
}

func TestSetupServerRoutes(t *testing.T) {
	dependencyChecker := &mocks.MockDependencyChecker{}
	dependencyChecker.On("CheckAll", mock.Anything).Return([]contract.ExternalDependency{
		{Name: "svc-a", Type: "ping", Target: "10.0.0.1", Status: contract.DependencyStatusHealthy},
	})

	configSanitizer := &mocks.MockConfigSanitizer{}
	configSanitizer.On("Sanitize", mock.Anything).Return(map[string]any{"debug": false})

	systemInventory := &mocks.MockSystemInventory{}
	systemInventory.On("Collect").Return(contract.SystemMetadata{
		OS:      "linux/amd64",
		Runtime: "go1.24.0",
	}, nil)

	deps := Dependencies{
		DependencyChecker: dependencyChecker,
		HealthChecker:     &fakeHealthChecker{},
		ConfigSanitizer:   configSanitizer,
		SystemInventory:   systemInventory,
	}

	service := NewService(newTestAppConfig(), deps, version.Info{Version: "1.0.0"})
	e := service.setupServer()

	serve := func(t *testing.T, method, path string) *httptest.ResponseRecorder {
		t.Helper()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

		return rec
	}

	t.Run("성공: GET /health", func(t *testing.T) {
		rec := serve(t, http.MethodGet, "/health")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), constants.HealthStatusHealthy)
	})

	t.Run("성공: GET /version", func(t *testing.T) {
		rec := serve(t, http.MethodGet, "/version")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "1.0.0")
	})

	t.Run("성공: GET /metrics", func(t *testing.T) {
		rec := serve(t, http.MethodGet, "/metrics")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("성공: GET /diagnostics/dependencies", func(t *testing.T) {
		rec := serve(t, http.MethodGet, "/diagnostics/dependencies")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "svc-a")
	})

	t.Run("성공: GET /diagnostics/config", func(t *testing.T) {
		rec := serve(t, http.MethodGet, "/diagnostics/config")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "debug")
	})

	t.Run("성공: GET /diagnostics/info", func(t *testing.T) {
		rec := serve(t, http.MethodGet, "/diagnostics/info")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "linux/amd64")
	})

	t.Run("실패: 존재하지 않는 경로는 404 JSON으로 응답한다", func(t *testing.T) {
		rec := serve(t, http.MethodGet, "/nope")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), constants.ErrMsgNotFound)
	})

	t.Run("성공: Server 헤더가 응답에서 제거된다", func(t *testing.T) {
		rec := serve(t, http.MethodGet, "/health")

		assert.Empty(t, rec.Header().Get(echo.HeaderServer))
	})
}

func waitServiceStopped(t *testing.T, serviceStopWG *sync.WaitGroup) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		serviceStopWG.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("서비스가 제한 시간 내에 종료되지 않았습니다")
	}
}

func TestServiceLifecycle(t *testing.T) {
	port, err := testutil.GetFreePort()
	require.NoError(t, err)

	appConfig := newTestAppConfig()
	appConfig.DiagAPI.WS.ListenPort = port

	service := NewService(appConfig, newTestDependencies(), version.Info{})

	serviceStopCtx, serviceStopCancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	serviceStopWG.Add(1)
	require.NoError(t, service.Start(serviceStopCtx, serviceStopWG))

	// 중복 시작은 무시된다
	serviceStopWG.Add(1)
	require.NoError(t, service.Start(serviceStopCtx, serviceStopWG))

	require.NoError(t, testutil.WaitForServer(port, 5*time.Second))

	resp, err := http.Get(fmt.Sprintf("http://localhost:%d/health", port))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	serviceStopCancel()
	waitServiceStopped(t, serviceStopWG)
}

func TestServiceLifecycleTLS(t *testing.T) {
	certFile, keyFile, cleanup := testutil.GenerateSelfSignedCert(t)
	defer cleanup()

	port, err := testutil.GetFreePort()
	require.NoError(t, err)

	appConfig := newTestAppConfig()
	appConfig.DiagAPI.WS.ListenPort = port
	appConfig.DiagAPI.WS.TLSServer = true
	appConfig.DiagAPI.WS.TLSCertFile = certFile
	appConfig.DiagAPI.WS.TLSKeyFile = keyFile

	service := NewService(appConfig, newTestDependencies(), version.Info{})

	serviceStopCtx, serviceStopCancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	serviceStopWG.Add(1)
	require.NoError(t, service.Start(serviceStopCtx, serviceStopWG))

	require.NoError(t, testutil.WaitForServer(port, 5*time.Second))

	client := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
	defer client.CloseIdleConnections()

	resp, err := client.Get(fmt.Sprintf("https://localhost:%d/health", port))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	serviceStopCancel()
	waitServiceStopped(t, serviceStopWG)
}
