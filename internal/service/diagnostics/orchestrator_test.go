package diagnostics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/diag-server/internal/service/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker 테스트에서 점검 결과를 임의로 주입하기 위한 Checker 구현체입니다.
// 점검이 수행된 대상의 이름을 순서대로 기록합니다.
type stubChecker struct {
	status  contract.DependencyStatus
	err     string
	checked []string
}

func (c *stubChecker) Check(_ context.Context, endpoint Endpoint) contract.ExternalDependency {
	c.checked = append(c.checked, endpoint.Name)
	return contract.ExternalDependency{
		Name:   endpoint.Name,
		Type:   endpoint.Type,
		Target: endpoint.Target,
		Status: c.status,
		Error:  c.err,
	}
}

func TestOrchestratorRun(t *testing.T) {
	t.Run("성공: 결과 목록은 입력 순서와 길이를 그대로 유지한다", func(t *testing.T) {
		ping := &stubChecker{status: contract.DependencyStatusHealthy}
		fetch := &stubChecker{status: contract.DependencyStatusHealthy}
		orchestrator := NewOrchestrator(ping, fetch)

		endpoints := []Endpoint{
			{Name: "cache", Type: "ping", Target: "10.0.0.5"},
			{Name: "portal", Type: "fetch", Target: "https://portal.example.com"},
			{Name: "db", Type: "ping", Target: "10.0.0.7"},
		}

		results := orchestrator.Run(context.Background(), endpoints)

		require.Len(t, results, 3)
		for i, endpoint := range endpoints {
			assert.Equal(t, endpoint.Name, results[i].Name)
			assert.Equal(t, endpoint.Type, results[i].Type)
			assert.Equal(t, endpoint.Target, results[i].Target)
		}
	})

	t.Run("성공: 점검 대상이 비어있으면 빈 결과를 반환한다", func(t *testing.T) {
		orchestrator := NewOrchestrator(&stubChecker{}, &stubChecker{})

		results := orchestrator.Run(context.Background(), nil)

		require.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("성공: 지원되지 않는 타입을 만나면 그 시점에 점검이 중단된다", func(t *testing.T) {
		ping := &stubChecker{status: contract.DependencyStatusHealthy}
		fetch := &stubChecker{status: contract.DependencyStatusHealthy}
		orchestrator := NewOrchestrator(ping, fetch)

		endpoints := []Endpoint{
			{Name: "cache", Type: "ping", Target: "10.0.0.5"},
			{Name: "queue", Type: "amqp", Target: "amqp.example.com"},
			{Name: "portal", Type: "fetch", Target: "https://portal.example.com"},
		}

		results := orchestrator.Run(context.Background(), endpoints)

		require.Len(t, results, 1)
		assert.Equal(t, "cache", results[0].Name)
		assert.Empty(t, fetch.checked, "중단 이후의 점검 대상은 점검되지 않아야 한다")
	})

	t.Run("성공: 한 점검의 실패는 다른 점검의 결과에 영향을 주지 않는다", func(t *testing.T) {
		ping := &stubChecker{status: contract.DependencyStatusHealthy}
		fetch := &stubChecker{status: contract.DependencyStatusUnhealthy, err: "connection refused"}
		orchestrator := NewOrchestrator(ping, fetch)

		endpoints := []Endpoint{
			{Name: "portal", Type: "fetch", Target: "https://portal.example.com"},
			{Name: "cache", Type: "ping", Target: "10.0.0.5"},
		}

		results := orchestrator.Run(context.Background(), endpoints)

		require.Len(t, results, 2)
		assert.Equal(t, contract.DependencyStatusUnhealthy, results[0].Status)
		assert.Equal(t, "connection refused", results[0].Error)
		assert.Equal(t, contract.DependencyStatusHealthy, results[1].Status)
		assert.Empty(t, results[1].Error)
	})

	t.Run("성공: 실제 Checker 조합으로 점검이 순서대로 수행된다", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		orchestrator := NewOrchestrator(
			NewPingChecker(&fakeProber{result: ProbeResult{Alive: true, PacketLoss: "0.000", Output: "ok"}}),
			NewFetchChecker(server.Client()),
		)

		endpoints := []Endpoint{
			{Name: "cache", Type: "ping", Target: "10.0.0.5"},
			{Name: "portal", Type: "fetch", Target: server.URL},
		}

		results := orchestrator.Run(context.Background(), endpoints)

		require.Len(t, results, 2)
		assert.Equal(t, contract.DependencyStatusHealthy, results[0].Status)
		assert.Equal(t, contract.DependencyStatusHealthy, results[1].Status)
	})
}
