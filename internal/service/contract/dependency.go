package contract

import "context"

// DependencyStatus 외부 의존성 점검 결과의 상태 값입니다.
type DependencyStatus string

const (
	// DependencyStatusHealthy 의존성이 정상적으로 응답하고 있음을 나타냅니다.
	DependencyStatusHealthy DependencyStatus = "Healthy"

	// DependencyStatusUnhealthy 의존성이 응답하지 않거나 비정상 상태임을 나타냅니다.
	DependencyStatusUnhealthy DependencyStatus = "Unhealthy"
)

// ExternalDependency 외부 의존성 하나에 대한 점검 결과입니다.
//
// Error 필드는 구체적인 실패 사유가 파악된 경우에만 채워집니다.
// HTTP 상태 코드만으로 Unhealthy가 된 경우처럼, 실패하더라도 비어있을 수 있습니다.
type ExternalDependency struct {
	Name   string           `json:"name"`
	Type   string           `json:"type"`
	Target string           `json:"target"`
	Status DependencyStatus `json:"status"`
	Error  string           `json:"error,omitempty"`
}

// IsHealthy 점검 결과가 정상 상태인지 여부를 반환합니다.
func (d ExternalDependency) IsHealthy() bool {
	return d.Status == DependencyStatusHealthy
}

// DependencyChecker 설정된 모든 외부 의존성에 대한 점검 기능을 제공하는 인터페이스입니다.
// API, Scheduler와 같은 클라이언트는 이 인터페이스를 통해 진단 서비스를 사용합니다.
type DependencyChecker interface {
	// CheckAll 설정된 모든 점검 대상을 설정에 선언된 순서 그대로 점검하고 결과를 반환합니다.
	//
	// 점검 대상이 하나도 없으면 빈 슬라이스를 반환합니다.
	// 지원되지 않는 타입의 점검 대상을 만나면 그 시점에 점검이 중단되며,
	// 그때까지 누적된 결과만 반환됩니다.
	//
	// 파라미터:
	//   - ctx: 점검 취소 및 타임아웃 제어용 컨텍스트
	//
	// 반환값:
	//   - []ExternalDependency: 점검 대상별 결과 (설정 순서 유지)
	CheckAll(ctx context.Context) []ExternalDependency
}

// DiagnosticsHealthChecker Diagnostics 서비스의 상태를 확인하는 인터페이스입니다.
type DiagnosticsHealthChecker interface {
	// Health 서비스가 정상적으로 실행 중인지 확인합니다.
	//
	// 반환값:
	//   - error: 서비스가 정상 동작 중이면 nil, 그렇지 않으면 에러 반환 (예: ErrServiceStopped)
	Health() error
}
