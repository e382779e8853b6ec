package diagnostics

import (
	"context"
	"time"

	"github.com/darkkaiser/diag-server/internal/service/contract"
	applog "github.com/darkkaiser/diag-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

const componentOrchestrator = "diagnostics.orchestrator"

// defaultCheckTimeout 점검 1회에 허용되는 최대 시간입니다.
const defaultCheckTimeout = 10 * time.Second

// Orchestrator 점검 대상 목록을 순서대로 순회하며 타입에 맞는 Checker에 점검을 위임합니다.
//
// 점검은 엄격하게 순차적으로 수행되며, 결과 목록의 순서는 입력 순서와 동일합니다.
// 개별 점검의 실패는 해당 결과 레코드에만 기록되고 전체 순회를 중단시키지 않습니다.
// 단, 지원되지 않는 타입의 점검 대상을 만나면 순회가 그 시점에 중단되고
// 그때까지 누적된 결과만 반환됩니다.
type Orchestrator struct {
	checkers     map[CheckType]Checker
	checkTimeout time.Duration
}

// NewOrchestrator 기본 점검 타입(ping, fetch)이 등록된 Orchestrator를 생성합니다.
func NewOrchestrator(pingChecker Checker, fetchChecker Checker) *Orchestrator {
	return &Orchestrator{
		checkers: map[CheckType]Checker{
			CheckTypePing:  pingChecker,
			CheckTypeFetch: fetchChecker,
		},
		checkTimeout: defaultCheckTimeout,
	}
}

// Run 점검 대상 목록을 순서대로 점검하고 결과 목록을 반환합니다.
// 점검 대상이 비어있으면 빈 슬라이스를 반환하며, 이는 에러가 아닙니다.
func (o *Orchestrator) Run(ctx context.Context, endpoints []Endpoint) []contract.ExternalDependency {
	results := make([]contract.ExternalDependency, 0, len(endpoints))

	for _, endpoint := range endpoints {
		applog.WithComponentAndFields(componentOrchestrator, log.Fields{
			"endpoint": endpoint.Name,
			"type":     endpoint.Type,
			"target":   endpoint.Target,
		}).Infof("'%s'('%s') 점검을 시작합니다.", endpoint.Name, endpoint.Target)

		checker, ok := o.checkers[CheckType(endpoint.Type)]
		if !ok {
			applog.WithComponentAndFields(componentOrchestrator, log.Fields{
				"endpoint": endpoint.Name,
				"type":     endpoint.Type,
			}).Warnf("지원되지 않는 점검 타입('%s')을 만나 이후의 점검을 모두 중단합니다.", endpoint.Type)

			metricTruncationsTotal.Inc()

			break
		}

		checkCtx, cancel := context.WithTimeout(ctx, o.checkTimeout)
		started := time.Now()
		result := checker.Check(checkCtx, endpoint)
		cancel()

		recordCheckMetrics(endpoint, result, time.Since(started))

		results = append(results, result)
	}

	return results
}
