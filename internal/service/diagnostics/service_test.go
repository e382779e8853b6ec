package diagnostics

import (
	"context"
	"sync"
	"testing"

	"github.com/darkkaiser/diag-server/internal/config"
	"github.com/darkkaiser/diag-server/internal/service/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestService(endpoints []config.EndpointConfig) *Service {
	appConfig := &config.AppConfig{}
	appConfig.Diagnostics.Endpoints = endpoints

	service := NewService(appConfig)
	service.SetOrchestrator(NewOrchestrator(
		NewPingChecker(&fakeProber{result: ProbeResult{Alive: true, PacketLoss: "0.000", Output: "ok"}}),
		&stubChecker{status: contract.DependencyStatusHealthy},
	))

	return service
}

func TestServiceLifecycle(t *testing.T) {
	t.Run("성공: 시작 전에는 Health가 에러를 반환하고 점검 결과가 비어있다", func(t *testing.T) {
		service := newTestService([]config.EndpointConfig{
			{Name: "cache", Type: "ping", Target: "10.0.0.5"},
		})

		require.ErrorIs(t, service.Health(), contract.ErrServiceStopped)
		assert.Empty(t, service.CheckAll(context.Background()))
	})

	t.Run("성공: 시작 후 점검이 수행되고 종료 후에는 다시 중지 상태가 된다", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		service := newTestService([]config.EndpointConfig{
			{Name: "cache", Type: "ping", Target: "10.0.0.5"},
			{Name: "portal", Type: "fetch", Target: "https://portal.example.com"},
		})

		serviceStopCtx, serviceStopCancel := context.WithCancel(context.Background())
		serviceStopWG := &sync.WaitGroup{}
		serviceStopWG.Add(1)

		require.NoError(t, service.Start(serviceStopCtx, serviceStopWG))
		require.NoError(t, service.Health())

		results := service.CheckAll(context.Background())
		require.Len(t, results, 2)
		assert.Equal(t, "cache", results[0].Name)
		assert.Equal(t, "portal", results[1].Name)

		serviceStopCancel()
		serviceStopWG.Wait()

		require.ErrorIs(t, service.Health(), contract.ErrServiceStopped)
		assert.Empty(t, service.CheckAll(context.Background()))
	})

	t.Run("성공: 이미 시작된 서비스의 중복 시작은 무시된다", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		service := newTestService(nil)

		serviceStopCtx, serviceStopCancel := context.WithCancel(context.Background())
		serviceStopWG := &sync.WaitGroup{}

		serviceStopWG.Add(1)
		require.NoError(t, service.Start(serviceStopCtx, serviceStopWG))

		serviceStopWG.Add(1)
		require.NoError(t, service.Start(serviceStopCtx, serviceStopWG))

		serviceStopCancel()
		serviceStopWG.Wait()
	})

	t.Run("성공: 점검 대상이 없으면 빈 결과를 반환한다", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		service := newTestService(nil)

		serviceStopCtx, serviceStopCancel := context.WithCancel(context.Background())
		serviceStopWG := &sync.WaitGroup{}
		serviceStopWG.Add(1)

		require.NoError(t, service.Start(serviceStopCtx, serviceStopWG))

		results := service.CheckAll(context.Background())
		require.NotNil(t, results)
		assert.Empty(t, results)

		serviceStopCancel()
		serviceStopWG.Wait()
	})
}
