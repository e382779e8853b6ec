package diagnostics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	apperrors "github.com/darkkaiser/diag-server/internal/pkg/errors"
	probing "github.com/prometheus-community/pro-bing"
)

// defaultProbeTimeout 프로브 1회에 허용되는 최대 시간입니다.
const defaultProbeTimeout = 5 * time.Second

// icmpProber pro-bing 라이브러리를 사용하는 Prober 구현체입니다.
// 대상당 패킷 1개를 전송하고 그 결과로 ProbeResult를 구성합니다.
type icmpProber struct {
	timeout time.Duration

	// privileged raw ICMP 소켓 사용 여부. 일반적으로 root 권한 또는
	// CAP_NET_RAW가 있는 환경에서만 true로 설정할 수 있습니다.
	privileged bool
}

// NewICMPProber ICMP 프로브를 수행하는 Prober를 생성합니다.
func NewICMPProber(privileged bool) Prober {
	return &icmpProber{
		timeout:    defaultProbeTimeout,
		privileged: privileged,
	}
}

func (p *icmpProber) Probe(ctx context.Context, target string) (ProbeResult, error) {
	pinger, err := probing.NewPinger(target)
	if err != nil {
		return ProbeResult{}, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("프로브 대상('%s')을 해석할 수 없습니다", target))
	}

	pinger.Count = 1
	pinger.Timeout = p.timeout
	pinger.SetPrivileged(p.privileged)

	if err := pinger.RunWithContext(ctx); err != nil {
		return ProbeResult{}, apperrors.Wrap(err, apperrors.ExecutionFailed, fmt.Sprintf("프로브 수행 중 오류가 발생하였습니다: '%s'", target))
	}

	stats := pinger.Statistics()

	// 패킷이 하나도 전송되지 않았다면 손실률을 산출할 수 없다.
	packetLoss := packetLossUnknown
	if stats.PacketsSent > 0 {
		packetLoss = strconv.FormatFloat(stats.PacketLoss, 'f', 3, 64)
	}

	var output string
	if stats.PacketsRecv > 0 {
		output = fmt.Sprintf("%d packets transmitted, %d packets received, %s%% packet loss, rtt avg %s",
			stats.PacketsSent, stats.PacketsRecv, packetLoss, stats.AvgRtt)
	}

	return ProbeResult{
		Alive:      stats.PacketsRecv > 0,
		PacketLoss: packetLoss,
		Output:     output,
	}, nil
}
