package system

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/darkkaiser/diag-server/internal/pkg/version"
	"github.com/darkkaiser/diag-server/internal/service/api/constants"
	"github.com/darkkaiser/diag-server/internal/service/api/model/system"
	"github.com/darkkaiser/diag-server/internal/service/contract"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHealthChecker 테스트에서 진단 서비스의 상태를 임의로 주입하기 위한 구현체입니다.
type fakeHealthChecker struct {
	err error
}

func (f *fakeHealthChecker) Health() error {
	return f.err
}

func newTestContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("실패: HealthChecker가 nil이면 패닉이 발생한다", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, constants.PanicMsgHealthCheckerRequired, func() {
			NewHandler(nil, version.Info{})
		})
	})
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 진단 서비스가 정상이면 전체 상태가 healthy로 반환된다", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(&fakeHealthChecker{}, version.Info{})
		c, rec := newTestContext(http.MethodGet, "/health")

		require.NoError(t, h.HealthCheckHandler(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp system.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, constants.HealthStatusHealthy, resp.Status)
		assert.GreaterOrEqual(t, resp.Uptime, int64(0))

		dep, ok := resp.Dependencies[constants.DependencyDiagnosticsService]
		require.True(t, ok)
		assert.Equal(t, constants.HealthStatusHealthy, dep.Status)
		assert.Equal(t, constants.MsgDepStatusHealthy, dep.Message)
	})

	t.Run("성공: 진단 서비스가 중지 상태이면 전체 상태가 unhealthy로 반환된다", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(&fakeHealthChecker{err: contract.ErrServiceStopped}, version.Info{})
		c, rec := newTestContext(http.MethodGet, "/health")

		require.NoError(t, h.HealthCheckHandler(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp system.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, constants.HealthStatusUnhealthy, resp.Status)

		dep := resp.Dependencies[constants.DependencyDiagnosticsService]
		assert.Equal(t, constants.HealthStatusUnhealthy, dep.Status)
		assert.Contains(t, dep.Message, "서비스가 실행 중이지 않습니다")
	})
}

func TestVersionHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 빌드 정보와 Go 버전이 반환된다", func(t *testing.T) {
		t.Parallel()

		buildInfo := version.Info{
			Version:     "v1.2.0",
			BuildDate:   "2026-08-01T14:00:00Z",
			BuildNumber: "100",
		}
		h := NewHandler(&fakeHealthChecker{}, buildInfo)
		c, rec := newTestContext(http.MethodGet, "/version")

		require.NoError(t, h.VersionHandler(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp system.VersionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, "v1.2.0", resp.Version)
		assert.Equal(t, "2026-08-01T14:00:00Z", resp.BuildDate)
		assert.Equal(t, "100", resp.BuildNumber)
		assert.Equal(t, runtime.Version(), resp.GoVersion)
	})
}
