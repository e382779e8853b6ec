// Package scheduler 설정된 Cron 스케줄에 따라 외부 의존성 점검을 주기적으로 실행하는 서비스를 제공합니다.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/diag-server/internal/config"
	apperrors "github.com/darkkaiser/diag-server/internal/pkg/errors"
	"github.com/darkkaiser/diag-server/internal/service/contract"
	"github.com/darkkaiser/diag-server/pkg/cronx"
	applog "github.com/darkkaiser/diag-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

// checkRunTimeout 스케줄 1회 실행 시 전체 점검에 허용되는 최대 시간입니다.
// 점검 대상이 많고 일부 대상의 응답이 느린 경우에도 다음 스케줄 실행을 방해하지 않도록 제한합니다.
const checkRunTimeout = 5 * time.Minute

// Scheduler 애플리케이션 설정 파일(AppConfig)에 정의된 Cron 스케줄에 맞춰
// 외부 의존성 점검(CheckAll)을 자동으로 실행하는 서비스입니다.
//
// 점검 결과는 구조화된 로그로 기록되며, 비정상 의존성이 발견되면 경고 레벨로 남깁니다.
// 결과를 별도로 저장하지는 않으므로, 시점 조회는 API 서비스의 /diagnostics/dependencies를 사용합니다.
type Scheduler struct {
	schedulerConfig config.SchedulerConfig

	cron *cron.Cron

	// dependencyChecker 외부 의존성 점검 실행을 담당하는 인터페이스입니다.
	dependencyChecker contract.DependencyChecker

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(schedulerConfig config.SchedulerConfig, dependencyChecker contract.DependencyChecker) *Scheduler {
	if dependencyChecker == nil {
		panic("DependencyChecker는 필수입니다")
	}

	return &Scheduler{
		schedulerConfig: schedulerConfig,

		dependencyChecker: dependencyChecker,
	}
}

// Start 스케줄러를 시작하고 설정된 Cron 스케줄에 점검 작업을 등록합니다.
//
// Runnable 플래그가 꺼져 있으면 아무 작업도 등록하지 않고 즉시 반환합니다.
// 잘못된 Cron 표현식이 설정된 경우에는 에러를 반환합니다(설정 로드 시점에 이미 검증되지만 방어적으로 재확인).
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if s.dependencyChecker == nil {
		serviceStopWG.Done()
		return ErrDependencyCheckerNotInitialized
	}

	if !s.schedulerConfig.Runnable {
		serviceStopWG.Done()
		applog.WithComponent(component).Info("주기적 점검이 비활성화되어 있어 Scheduler 서비스를 시작하지 않습니다")
		return nil
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// 1. Cron 엔진 초기화
	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - Recover: Panic 발생 시 복구하여 다음 스케줄 실행에 영향을 주지 않음
	// - SkipIfStillRunning: 이전 점검이 끝나지 않았으면 다음 실행을 건너뜀
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	// 2. 점검 작업 등록
	if _, err := s.cron.AddFunc(s.schedulerConfig.TimeSpec, s.runChecks); err != nil {
		serviceStopWG.Done()
		s.cron = nil
		return apperrors.Wrapf(err, apperrors.InvalidInput,
			"스케줄 등록 실패: 잘못된 Cron 표현식입니다 (TimeSpec: %s)", s.schedulerConfig.TimeSpec)
	}

	// 3. 스케줄러 시작
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": s.schedulerConfig.TimeSpec,
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	// 4. 종료 신호 대기 (고루틴)
	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 스케줄러를 안전하게 중지합니다.
// Cron 엔진을 중지하고 실행 중인 점검이 있으면 완료될 때까지 대기합니다.
func (s *Scheduler) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// runChecks 등록된 모든 점검 대상에 대해 점검을 1회 실행하고 결과 요약을 로깅합니다.
//
// 점검 실행의 생명주기는 서비스 종료 시그널과 분리합니다. Graceful Shutdown 시
// cron.Stop()이 실행 중인 점검의 완료를 대기하므로, 점검 도중 컨텍스트 취소로 인한
// 강제 중단을 방지합니다. 대신 checkRunTimeout으로 전체 실행 시간을 제한합니다.
func (s *Scheduler) runChecks() {
	ctx, cancel := context.WithTimeout(context.Background(), checkRunTimeout)
	defer cancel()

	start := time.Now()
	results := s.dependencyChecker.CheckAll(ctx)
	elapsed := time.Since(start)

	unhealthy := make([]string, 0)
	for _, result := range results {
		if !result.IsHealthy() {
			unhealthy = append(unhealthy, result.Name)
		}
	}

	fields := applog.Fields{
		"checked":         len(results),
		"unhealthy_count": len(unhealthy),
		"elapsed":         elapsed.String(),
	}

	if len(unhealthy) > 0 {
		fields["unhealthy"] = unhealthy
		applog.WithComponentAndFields(component, fields).Warn("주기적 점검 완료: 비정상 의존성이 발견되었습니다")
		return
	}

	applog.WithComponentAndFields(component, fields).Info("주기적 점검 완료: 모든 의존성이 정상입니다")
}
