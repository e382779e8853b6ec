package diagnostics

import (
	"time"

	"github.com/darkkaiser/diag-server/internal/service/contract"
	"github.com/iancoleman/strcase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// metricChecksTotal 점검 결과(엔드포인트/타입/상태)별 누적 횟수
	metricChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "diag_server",
		Subsystem: "diagnostics",
		Name:      "checks_total",
		Help:      "외부 의존성 점검의 결과별 누적 횟수",
	}, []string{"endpoint", "type", "status"})

	// metricCheckDuration 점검 1회의 소요 시간 분포
	metricCheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "diag_server",
		Subsystem: "diagnostics",
		Name:      "check_duration_seconds",
		Help:      "외부 의존성 점검 1회의 소요 시간(초)",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint", "type"})

	// metricTruncationsTotal 지원되지 않는 타입으로 인해 점검이 중단된 누적 횟수
	metricTruncationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "diag_server",
		Subsystem: "diagnostics",
		Name:      "truncations_total",
		Help:      "지원되지 않는 점검 타입으로 인해 점검이 중단된 누적 횟수",
	})
)

// recordCheckMetrics 점검 1회의 결과와 소요 시간을 메트릭으로 기록합니다.
// 엔드포인트 이름은 레이블 규칙에 맞게 snake_case로 정규화합니다.
func recordCheckMetrics(endpoint Endpoint, result contract.ExternalDependency, elapsed time.Duration) {
	name := strcase.ToSnake(endpoint.Name)

	metricChecksTotal.WithLabelValues(name, endpoint.Type, string(result.Status)).Inc()
	metricCheckDuration.WithLabelValues(name, endpoint.Type).Observe(elapsed.Seconds())
}
