package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/darkkaiser/diag-server/internal/config"
	apperrors "github.com/darkkaiser/diag-server/internal/pkg/errors"
	"github.com/darkkaiser/diag-server/internal/service/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// fakeDependencyChecker 호출 횟수를 기록하고 미리 정해진 결과를 반환하는 테스트용 구현체입니다.
type fakeDependencyChecker struct {
	calls   atomic.Int64
	called  chan struct{}
	results []contract.ExternalDependency
}

func newFakeDependencyChecker(results []contract.ExternalDependency) *fakeDependencyChecker {
	return &fakeDependencyChecker{
		called:  make(chan struct{}, 16),
		results: results,
	}
}

func (f *fakeDependencyChecker) CheckAll(_ context.Context) []contract.ExternalDependency {
	f.calls.Add(1)

	select {
	case f.called <- struct{}{}:
	default:
	}

	return f.results
}

func TestNewService(t *testing.T) {
	t.Parallel()

	t.Run("성공: DependencyChecker가 주어지면 서비스가 생성된다", func(t *testing.T) {
		t.Parallel()

		service := NewService(config.SchedulerConfig{}, newFakeDependencyChecker(nil))
		assert.NotNil(t, service)
	})

	t.Run("실패: DependencyChecker가 nil이면 panic이 발생한다", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			NewService(config.SchedulerConfig{}, nil)
		})
	})
}

func TestStart(t *testing.T) {
	t.Run("성공: Runnable이 꺼져 있으면 점검을 등록하지 않고 즉시 종료 처리된다", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		checker := newFakeDependencyChecker(nil)
		service := NewService(config.SchedulerConfig{Runnable: false}, checker)

		serviceStopCtx, serviceStopCancel := context.WithCancel(context.Background())
		defer serviceStopCancel()
		serviceStopWG := &sync.WaitGroup{}

		serviceStopWG.Add(1)
		require.NoError(t, service.Start(serviceStopCtx, serviceStopWG))

		serviceStopWG.Wait()

		assert.Zero(t, checker.calls.Load())
	})

	t.Run("실패: 잘못된 Cron 표현식이면 에러를 반환한다", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		service := NewService(config.SchedulerConfig{
			Runnable: true,
			TimeSpec: "not-a-cron-spec",
		}, newFakeDependencyChecker(nil))

		serviceStopCtx, serviceStopCancel := context.WithCancel(context.Background())
		defer serviceStopCancel()
		serviceStopWG := &sync.WaitGroup{}

		serviceStopWG.Add(1)
		err := service.Start(serviceStopCtx, serviceStopWG)

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))

		serviceStopWG.Wait()
	})

	t.Run("성공: 스케줄에 따라 점검이 반복 실행된다", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		checker := newFakeDependencyChecker([]contract.ExternalDependency{
			{Name: "svc-a", Type: "ping", Target: "10.0.0.1", Status: contract.DependencyStatusHealthy},
			{Name: "svc-b", Type: "fetch", Target: "http://svc-b.local", Status: contract.DependencyStatusUnhealthy},
		})

		// 매 초 실행
		service := NewService(config.SchedulerConfig{
			Runnable: true,
			TimeSpec: "* * * * * *",
		}, checker)

		serviceStopCtx, serviceStopCancel := context.WithCancel(context.Background())
		serviceStopWG := &sync.WaitGroup{}

		serviceStopWG.Add(1)
		require.NoError(t, service.Start(serviceStopCtx, serviceStopWG))

		select {
		case <-checker.called:
		case <-time.After(3 * time.Second):
			t.Fatal("스케줄된 점검이 제한 시간 내에 실행되지 않았습니다")
		}

		serviceStopCancel()
		serviceStopWG.Wait()

		assert.GreaterOrEqual(t, checker.calls.Load(), int64(1))
	})

	t.Run("성공: 중복 시작 호출은 무시된다", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		service := NewService(config.SchedulerConfig{
			Runnable: true,
			TimeSpec: "@daily",
		}, newFakeDependencyChecker(nil))

		serviceStopCtx, serviceStopCancel := context.WithCancel(context.Background())
		serviceStopWG := &sync.WaitGroup{}

		serviceStopWG.Add(1)
		require.NoError(t, service.Start(serviceStopCtx, serviceStopWG))

		serviceStopWG.Add(1)
		require.NoError(t, service.Start(serviceStopCtx, serviceStopWG))

		serviceStopCancel()
		serviceStopWG.Wait()
	})
}

func TestStop(t *testing.T) {
	t.Parallel()

	t.Run("성공: 실행 중이 아닌 서비스의 Stop 호출은 무시된다", func(t *testing.T) {
		t.Parallel()

		service := NewService(config.SchedulerConfig{}, newFakeDependencyChecker(nil))

		assert.NotPanics(t, func() {
			service.Stop()
		})
	})
}
