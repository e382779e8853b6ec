package diagnostics

import (
	"context"
	"fmt"

	"github.com/darkkaiser/diag-server/internal/service/contract"
	applog "github.com/darkkaiser/diag-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

const componentPingChecker = "diagnostics.ping"

// packetLossUnknown 패킷 손실률을 산출할 수 없을 때 사용되는 값입니다. (예: 패킷이 전혀 전송되지 않은 경우)
const packetLossUnknown = "unknown"

// packetLossTotal 전송한 모든 패킷이 유실되었음을 나타내는 손실률 문자열입니다.
const packetLossTotal = "100.000"

// ProbeResult ICMP 프로브 1회의 결과입니다.
type ProbeResult struct {
	// Alive 프로브에 대한 응답이 하나라도 수신되었는지 여부
	Alive bool

	// PacketLoss 손실률 문자열. "100.000"과 같은 숫자 형식이거나,
	// 산출 불가능한 경우 "unknown"입니다.
	PacketLoss string

	// Output 프로브 도구가 생성한 원시 진단 텍스트
	Output string
}

// Prober 단일 대상에 대해 ICMP 프로브를 수행하는 인터페이스입니다.
type Prober interface {
	// Probe 대상에 프로브 1회를 수행합니다. 프로브 자체를 수행할 수 없는 경우
	// (예: 잘못된 대상 주소) 에러를 반환합니다.
	Probe(ctx context.Context, target string) (ProbeResult, error)
}

// pingChecker ICMP 프로브 결과로 의존성 상태를 판정하는 Checker 구현체입니다.
//
// 상태 판정과 에러 메시지 할당은 서로 독립된 규칙을 따릅니다.
//   - 상태: 응답이 수신되었으면(Alive) Healthy, 아니면 Unhealthy
//   - 에러: 손실률이 정확히 "100.000"이거나 "unknown"이면 프로브의 원시 출력을 에러로 기록.
//     원시 출력이 비어있으면 "<대상> - Unknown" 형식으로 기록
type pingChecker struct {
	prober Prober
}

// NewPingChecker ICMP 기반 Checker를 생성합니다.
func NewPingChecker(prober Prober) Checker {
	return &pingChecker{prober: prober}
}

func (c *pingChecker) Check(ctx context.Context, endpoint Endpoint) contract.ExternalDependency {
	result := contract.ExternalDependency{
		Name:   endpoint.Name,
		Type:   endpoint.Type,
		Target: endpoint.Target,
	}

	probeResult, err := c.prober.Probe(ctx, endpoint.Target)
	if err != nil {
		result.Status = contract.DependencyStatusUnhealthy
		result.Error = err.Error()

		applog.WithComponentAndFields(componentPingChecker, log.Fields{
			"endpoint": endpoint.Name,
			"target":   endpoint.Target,
		}).Errorf("프로브 수행에 실패하였습니다: %s", err)

		return result
	}

	if probeResult.Alive {
		result.Status = contract.DependencyStatusHealthy
	} else {
		result.Status = contract.DependencyStatusUnhealthy
	}

	// 상태 판정과 별개로, 손실률이 전손이거나 산출 불가능한 경우 에러 메시지를 기록한다.
	if probeResult.PacketLoss == packetLossTotal || probeResult.PacketLoss == packetLossUnknown {
		if probeResult.Output != "" {
			result.Error = probeResult.Output
		} else {
			result.Error = fmt.Sprintf("%s - Unknown", endpoint.Target)
		}

		applog.WithComponentAndFields(componentPingChecker, log.Fields{
			"endpoint":    endpoint.Name,
			"target":      endpoint.Target,
			"packet_loss": probeResult.PacketLoss,
		}).Errorf("프로브 응답을 수신하지 못하였습니다: %s", result.Error)
	}

	applog.WithComponentAndFields(componentPingChecker, log.Fields{
		"endpoint":    endpoint.Name,
		"target":      endpoint.Target,
		"alive":       probeResult.Alive,
		"packet_loss": probeResult.PacketLoss,
	}).Infof("프로브가 완료되었습니다. (%s)", probeResult.Output)

	return result
}
