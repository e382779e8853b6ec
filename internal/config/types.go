package config

import (
	"fmt"
	"strings"

	apperrors "github.com/darkkaiser/diag-server/internal/pkg/errors"
	"github.com/darkkaiser/diag-server/pkg/cronx"
)

const (
	// DefaultListenPort 진단 API 서버의 기본 포트입니다.
	DefaultListenPort = 8543

	// DefaultLockFile 패키지 인벤토리가 기본으로 참조하는 의존성 잠금 파일입니다.
	DefaultLockFile = "go.sum"
)

// wellKnownEndpointTypes 진단 시스템이 실제로 점검을 수행할 수 있는 엔드포인트 타입 목록입니다.
// 이 목록에 없는 타입도 설정 로드는 허용되며, 점검 실행 시점에 처리 여부가 결정됩니다.
var wellKnownEndpointTypes = map[string]struct{}{
	"ping":  {},
	"fetch": {},
}

// DiagnosticsConfig 외부 의존성 점검과 관련된 모든 설정을 담습니다.
type DiagnosticsConfig struct {
	Endpoints []EndpointConfig `json:"endpoints"`
	Sanitizer SanitizerConfig  `json:"sanitizer"`
	Inventory InventoryConfig  `json:"inventory"`
	Scheduler SchedulerConfig  `json:"scheduler"`
}

func (c *DiagnosticsConfig) validate() error {
	for i := range c.Endpoints {
		if err := c.Endpoints[i].validate(); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%d번째 점검 대상 설정이 유효하지 않습니다", i+1))
		}
	}

	if err := c.Inventory.validate(); err != nil {
		return err
	}

	return c.Scheduler.validate()
}

func (c *DiagnosticsConfig) VerifyRecommendations() []string {
	var warnings []string

	seen := make(map[string]struct{}, len(c.Endpoints))
	for _, endpoint := range c.Endpoints {
		if _, ok := wellKnownEndpointTypes[endpoint.Type]; !ok {
			warnings = append(warnings, fmt.Sprintf("점검 대상('%s')의 타입('%s')은 지원되지 않습니다. 이 대상을 만나는 시점에 이후의 모든 점검이 중단됩니다.", endpoint.Name, endpoint.Type))
		}
		if _, ok := seen[endpoint.Name]; ok {
			warnings = append(warnings, fmt.Sprintf("점검 대상의 이름('%s')이 중복되었습니다. 점검 결과를 구분하기 어려울 수 있습니다.", endpoint.Name))
		}
		seen[endpoint.Name] = struct{}{}
	}

	if len(c.Endpoints) == 0 {
		warnings = append(warnings, "점검 대상이 하나도 설정되지 않았습니다. 의존성 점검 결과는 항상 비어 있게 됩니다.")
	}

	return warnings
}

// EndpointConfig 점검 대상이 되는 외부 의존성 하나를 기술합니다.
//
// Type은 자유 형식 문자열로 받아들입니다. 지원되지 않는 타입의 판별과 처리는
// 설정 로드 시점이 아닌 점검 실행 시점의 책임입니다.
type EndpointConfig struct {
	Name   string `json:"name" validate:"required"`
	Type   string `json:"type" validate:"required"`
	Target string `json:"target" validate:"required"`
}

func (c *EndpointConfig) validate() error {
	return checkStruct(c)
}

// SanitizerConfig 설정 마스킹 스키마 파일의 위치를 지정합니다.
// SchemaFile이 비어있으면 마스킹 스키마 없이 동작합니다. (모든 값이 그대로 노출됨)
type SanitizerConfig struct {
	SchemaFile string `json:"schema_file"`
}

// InventoryConfig 패키지 인벤토리 수집에 필요한 설정입니다.
type InventoryConfig struct {
	LockFile     string `json:"lock_file" validate:"required"`
	ModulePrefix string `json:"module_prefix"`
}

func (c *InventoryConfig) validate() error {
	return checkStruct(c)
}

// SchedulerConfig 주기적인 백그라운드 의존성 점검의 실행 여부와 주기를 지정합니다.
type SchedulerConfig struct {
	Runnable bool   `json:"runnable"`
	TimeSpec string `json:"time_spec"`
}

func (c *SchedulerConfig) validate() error {
	if !c.Runnable {
		return nil
	}

	if err := cronx.Validate(c.TimeSpec); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("스케줄러의 TimeSpec('%s')이 유효하지 않습니다", c.TimeSpec))
	}

	return nil
}

// DiagAPIConfig 진단 API 서버와 관련된 설정을 담습니다.
type DiagAPIConfig struct {
	WS   WSConfig   `json:"ws"`
	CORS CORSConfig `json:"cors"`
}

func (c *DiagAPIConfig) validate() error {
	if err := c.WS.validate(); err != nil {
		return err
	}

	return c.CORS.validate()
}

func (c *DiagAPIConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.WS.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("잘 알려진 포트(%d)를 사용하고 있습니다. 1024 이상의 포트 사용을 권장합니다.", c.WS.ListenPort))
	}

	for _, origin := range c.CORS.AllowOrigins {
		if origin == "*" && len(c.CORS.AllowOrigins) > 1 {
			warnings = append(warnings, "CORS 허용 오리진에 '*'와 개별 오리진이 함께 설정되어 있습니다. '*'가 우선 적용되므로 개별 오리진 설정은 무시됩니다.")
			break
		}
	}

	return warnings
}

// WSConfig 웹서버의 수신 포트 및 TLS 관련 설정입니다.
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file"`
	TLSKeyFile  string `json:"tls_key_file"`
	ListenPort  int    `json:"listen_port" validate:"gte=1,lte=65535"`
}

func (c *WSConfig) validate() error {
	if err := checkStruct(c); err != nil {
		return err
	}

	if c.TLSServer {
		if strings.TrimSpace(c.TLSCertFile) == "" {
			return apperrors.New(apperrors.InvalidInput, "TLS 서버 활성화 시 TLSCertFile은 필수입니다")
		}
		if strings.TrimSpace(c.TLSKeyFile) == "" {
			return apperrors.New(apperrors.InvalidInput, "TLS 서버 활성화 시 TLSKeyFile은 필수입니다")
		}
	}

	return nil
}

// CORSConfig 진단 API 서버의 CORS 허용 오리진 설정입니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"required,min=1,dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	return checkStruct(c)
}
