// Package diag 진단 엔드포인트 핸들러를 제공합니다.
//
// 외부 의존성 점검, 마스킹된 설정 조회, 시스템 정보 조회 API를 처리합니다.
package diag

import (
	"net/http"

	"github.com/darkkaiser/diag-server/internal/config"
	"github.com/darkkaiser/diag-server/internal/service/api/constants"
	"github.com/darkkaiser/diag-server/internal/service/api/httputil"
	"github.com/darkkaiser/diag-server/internal/service/contract"
	applog "github.com/darkkaiser/diag-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 진단 엔드포인트 핸들러
type Handler struct {
	appConfig *config.AppConfig

	dependencyChecker contract.DependencyChecker
	configSanitizer   contract.ConfigSanitizer
	systemInventory   contract.SystemInventory
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(
	appConfig *config.AppConfig,
	dependencyChecker contract.DependencyChecker,
	configSanitizer contract.ConfigSanitizer,
	systemInventory contract.SystemInventory,
) *Handler {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if dependencyChecker == nil {
		panic(constants.PanicMsgDependencyCheckerRequired)
	}
	if configSanitizer == nil {
		panic(constants.PanicMsgConfigSanitizerRequired)
	}
	if systemInventory == nil {
		panic(constants.PanicMsgSystemInventoryRequired)
	}

	return &Handler{
		appConfig: appConfig,

		dependencyChecker: dependencyChecker,
		configSanitizer:   configSanitizer,
		systemInventory:   systemInventory,
	}
}

// DependenciesHandler godoc
// @Summary 외부 의존성 점검
// @Description 설정된 모든 외부 의존성을 선언 순서대로 점검하고 결과 목록을 반환합니다.
// @Description 점검 대상이 없으면 빈 목록을 반환합니다.
// @Tags Diagnostics
// @Produce json
// @Success 200 {array} contract.ExternalDependency "점검 결과 목록"
// @Router /diagnostics/dependencies [get]
func (h *Handler) DependenciesHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/diagnostics/dependencies",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgDependencyCheck)

	dependencies := h.dependencyChecker.CheckAll(c.Request().Context())
	if dependencies == nil {
		dependencies = []contract.ExternalDependency{}
	}

	return c.JSON(http.StatusOK, dependencies)
}

// ConfigHandler godoc
// @Summary 마스킹된 설정 조회
// @Description 현재 적용 중인 런타임 설정을 반환합니다.
// @Description 마스킹 스키마에 비밀로 표시된 값은 플레이스홀더로 치환됩니다.
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} map[string]interface{} "마스킹된 설정 트리"
// @Router /diagnostics/config [get]
func (h *Handler) ConfigHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/diagnostics/config",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgSanitizedConfig)

	sanitized := h.configSanitizer.Sanitize(h.appConfig.Effective())
	if sanitized == nil {
		sanitized = map[string]any{}
	}

	return c.JSON(http.StatusOK, sanitized)
}

// InfoHandler godoc
// @Summary 시스템 정보 조회
// @Description 실행 환경(OS, 런타임), 애플리케이션 버전, 설치된 패키지 목록을 반환합니다.
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} contract.SystemMetadata "시스템 정보"
// @Failure 500 {object} response.ErrorResponse "패키지 목록 수집 실패"
// @Router /diagnostics/info [get]
func (h *Handler) InfoHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/diagnostics/info",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgSystemInfo)

	metadata, err := h.systemInventory.Collect()
	if err != nil {
		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"endpoint": "/diagnostics/info",
			"error":    err,
		}).Error("시스템 정보 수집에 실패하였습니다")

		return httputil.NewInternalServerError(constants.ErrMsgInternalServer)
	}

	return c.JSON(http.StatusOK, metadata)
}
