package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiting(t *testing.T) {
	t.Run("성공: 제한 이내의 요청은 통과한다", func(t *testing.T) {
		e := echo.New()
		e.Use(RateLimiting(10, 10))
		e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("성공: 버스트를 초과한 요청은 429와 Retry-After 헤더를 반환한다", func(t *testing.T) {
		e := echo.New()
		e.Use(RateLimiting(1, 1))
		e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		first := httptest.NewRecorder()
		e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Equal(t, "1", second.Header().Get("Retry-After"))
	})

	t.Run("성공: IP별로 독립적인 제한이 적용된다", func(t *testing.T) {
		e := echo.New()
		e.Use(RateLimiting(1, 1))
		e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		reqA := httptest.NewRequest(http.MethodGet, "/", nil)
		reqA.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
		recA := httptest.NewRecorder()
		e.ServeHTTP(recA, reqA)
		require.Equal(t, http.StatusOK, recA.Code)

		// 다른 IP의 첫 요청은 제한과 무관하게 통과해야 한다.
		reqB := httptest.NewRequest(http.MethodGet, "/", nil)
		reqB.Header.Set(echo.HeaderXRealIP, "10.0.0.2")
		recB := httptest.NewRecorder()
		e.ServeHTTP(recB, reqB)

		assert.Equal(t, http.StatusOK, recB.Code)
	})

	t.Run("실패: 유효하지 않은 설정값은 패닉이 발생한다", func(t *testing.T) {
		assert.Panics(t, func() { RateLimiting(0, 10) })
		assert.Panics(t, func() { RateLimiting(10, 0) })
	})
}
