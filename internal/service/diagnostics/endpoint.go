// Package diagnostics 설정된 외부 의존성에 대한 상태 점검을 수행합니다.
//
// 점검 대상(Endpoint)은 설정에 선언된 순서 그대로 순차적으로 점검되며,
// 각 점검의 실패는 해당 대상의 결과에만 기록되고 다른 대상의 점검에 영향을 주지 않습니다.
package diagnostics

import (
	"github.com/darkkaiser/diag-server/internal/config"
)

// CheckType 점검 대상에 적용할 점검 방식입니다.
type CheckType string

const (
	// CheckTypePing ICMP 기반 도달 가능성 점검
	CheckTypePing CheckType = "ping"

	// CheckTypeFetch HTTP GET 기반 응답 상태 점검
	CheckTypeFetch CheckType = "fetch"
)

// Endpoint 점검 대상이 되는 외부 의존성 하나를 나타냅니다.
//
// Type은 설정에서 읽어들인 값을 그대로 보존합니다. 지원되지 않는 타입의 판별은
// 점검 실행 시점에 이루어집니다.
type Endpoint struct {
	Name   string
	Type   string
	Target string
}

// EndpointsFromConfig 설정의 점검 대상 목록을 선언 순서를 유지한 채 변환합니다.
func EndpointsFromConfig(configs []config.EndpointConfig) []Endpoint {
	if len(configs) == 0 {
		return nil
	}

	endpoints := make([]Endpoint, 0, len(configs))
	for _, c := range configs {
		endpoints = append(endpoints, Endpoint{
			Name:   c.Name,
			Type:   c.Type,
			Target: c.Target,
		})
	}

	return endpoints
}
