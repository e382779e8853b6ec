package diagnostics

import (
	"context"
	"io"
	"net/http"

	"github.com/darkkaiser/diag-server/internal/service/contract"
	applog "github.com/darkkaiser/diag-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

const componentFetchChecker = "diagnostics.fetch"

// fetchChecker HTTP GET 응답의 상태 코드로 의존성 상태를 판정하는 Checker 구현체입니다.
//
// 판정 규칙:
//   - 상태 코드가 정확히 200이면 Healthy
//   - 그 외의 모든 상태 코드는 Unhealthy (이 경우 에러 메시지는 남기지 않음)
//   - 전송 계층 실패(DNS, 연결 거부, TLS 등)는 Unhealthy + 실패 메시지
type fetchChecker struct {
	client *http.Client
}

// NewFetchChecker HTTP 기반 Checker를 생성합니다. client가 nil이면 기본 클라이언트를 사용합니다.
func NewFetchChecker(client *http.Client) Checker {
	if client == nil {
		client = &http.Client{}
	}
	return &fetchChecker{client: client}
}

func (c *fetchChecker) Check(ctx context.Context, endpoint Endpoint) contract.ExternalDependency {
	result := contract.ExternalDependency{
		Name:   endpoint.Name,
		Type:   endpoint.Type,
		Target: endpoint.Target,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.Target, nil)
	if err != nil {
		result.Status = contract.DependencyStatusUnhealthy
		result.Error = err.Error()

		applog.WithComponentAndFields(componentFetchChecker, log.Fields{
			"endpoint": endpoint.Name,
			"target":   endpoint.Target,
		}).Errorf("점검 요청 생성에 실패하였습니다: %s", err)

		return result
	}

	resp, err := c.client.Do(req)
	if err != nil {
		result.Status = contract.DependencyStatusUnhealthy
		result.Error = err.Error()

		applog.WithComponentAndFields(componentFetchChecker, log.Fields{
			"endpoint": endpoint.Name,
			"target":   endpoint.Target,
		}).Errorf("점검 요청 전송에 실패하였습니다: %s", err)

		return result
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusOK {
		result.Status = contract.DependencyStatusHealthy
	} else {
		result.Status = contract.DependencyStatusUnhealthy
	}

	applog.WithComponentAndFields(componentFetchChecker, log.Fields{
		"endpoint":    endpoint.Name,
		"target":      endpoint.Target,
		"status_code": resp.StatusCode,
	}).Infof("점검 응답을 수신하였습니다. (상태 코드: %d)", resp.StatusCode)

	return result
}
