package diagnostics

import (
	"context"
	"net/http"
	"sync"

	"github.com/darkkaiser/diag-server/internal/config"
	"github.com/darkkaiser/diag-server/internal/service/contract"
	applog "github.com/darkkaiser/diag-server/pkg/log"
)

const componentService = "diagnostics.service"

// Service 외부 의존성 점검 기능을 제공하는 서비스입니다.
// contract.DependencyChecker를 구현하며, API 핸들러와 스케줄러가 이 서비스를 사용합니다.
type Service struct {
	appConfig *config.AppConfig

	endpoints    []Endpoint
	orchestrator *Orchestrator

	running   bool
	runningMu sync.Mutex
}

// 인터페이스 구현 여부를 컴파일 타임에 검증한다.
var (
	_ contract.DependencyChecker        = (*Service)(nil)
	_ contract.DiagnosticsHealthChecker = (*Service)(nil)
)

// NewService 기본 Checker(ICMP 프로브, HTTP 클라이언트)로 구성된 Diagnostics 서비스를 생성합니다.
func NewService(appConfig *config.AppConfig) *Service {
	return &Service{
		appConfig: appConfig,

		endpoints: EndpointsFromConfig(appConfig.Diagnostics.Endpoints),
		orchestrator: NewOrchestrator(
			NewPingChecker(NewICMPProber(false)),
			NewFetchChecker(&http.Client{}),
		),

		running:   false,
		runningMu: sync.Mutex{},
	}
}

// SetOrchestrator 점검 오케스트레이터를 교체합니다. 테스트에서 가짜 Checker를 주입할 때 사용합니다.
func (s *Service) SetOrchestrator(orchestrator *Orchestrator) {
	s.orchestrator = orchestrator
}

// Start Diagnostics 서비스를 시작합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(componentService).Info("Diagnostics 서비스 시작중...")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(componentService).Warn("Diagnostics 서비스가 이미 시작됨!!!")
		return nil
	}

	go s.waitForShutdown(serviceStopCtx, serviceStopWG)

	s.running = true

	applog.WithComponent(componentService).Infof("Diagnostics 서비스 시작됨 (점검 대상: %d개)", len(s.endpoints))

	return nil
}

// waitForShutdown 서비스의 종료 신호를 감지하고 리소스를 안전하게 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	<-serviceStopCtx.Done()

	applog.WithComponent(componentService).Info("Diagnostics 서비스 중지중...")

	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(componentService).Info("Diagnostics 서비스 중지됨")
}

// CheckAll 설정된 모든 점검 대상을 선언 순서대로 점검하고 결과를 반환합니다.
// 서비스가 실행 중이 아니면 빈 결과를 반환합니다.
func (s *Service) CheckAll(ctx context.Context) []contract.ExternalDependency {
	s.runningMu.Lock()
	running := s.running
	s.runningMu.Unlock()

	if !running {
		applog.WithComponent(componentService).Warn("Diagnostics 서비스가 중지된 상태여서 점검을 수행할 수 없습니다")
		return []contract.ExternalDependency{}
	}

	return s.orchestrator.Run(ctx, s.endpoints)
}

// Health 서비스가 정상적으로 실행 중인지 확인합니다.
func (s *Service) Health() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return contract.ErrServiceStopped
	}

	return nil
}
