package api

import (
	"github.com/darkkaiser/diag-server/internal/service/api/handler/diag"
	"github.com/darkkaiser/diag-server/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 라우트를 등록합니다.
//
// 이 함수는 다음 엔드포인트들을 설정합니다:
//   - 시스템 엔드포인트: 서비스 상태 확인(/health), 버전 정보(/version), 메트릭(/metrics)
//   - 진단 엔드포인트: 의존성 점검(/diagnostics/dependencies), 설정 조회(/diagnostics/config), 시스템 정보(/diagnostics/info)
//   - API 문서: Swagger UI (/swagger/*) 제공
func RegisterRoutes(e *echo.Echo, systemHandler *system.Handler, diagHandler *diag.Handler) {
	registerSystemRoutes(e, systemHandler)
	registerDiagnosticsRoutes(e, diagHandler)
	registerSwaggerRoutes(e)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func registerDiagnosticsRoutes(e *echo.Echo, h *diag.Handler) {
	g := e.Group("/diagnostics")
	g.GET("/dependencies", h.DependenciesHandler)
	g.GET("/config", h.ConfigHandler)
	g.GET("/info", h.InfoHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	// Swagger UI 엔드포인트 설정
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		// Swagger 문서 JSON 파일 위치 지정
		echoSwagger.URL("/swagger/doc.json"),
		// 딥 링크 활성화 (특정 API로 바로 이동 가능한 URL 지원)
		echoSwagger.DeepLinking(true),
		// 문서 로드 시 태그(Tag) 목록만 펼침 상태로 표시 ("list", "full", "none")
		echoSwagger.DocExpansion("list"),
	))
}
