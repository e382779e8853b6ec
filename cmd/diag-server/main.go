package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/darkkaiser/diag-server/internal/config"
	"github.com/darkkaiser/diag-server/internal/pkg/version"
	"github.com/darkkaiser/diag-server/internal/service"
	"github.com/darkkaiser/diag-server/internal/service/api"
	"github.com/darkkaiser/diag-server/internal/service/diagnostics"
	"github.com/darkkaiser/diag-server/internal/service/diagnostics/inventory"
	"github.com/darkkaiser/diag-server/internal/service/diagnostics/sanitizer"
	"github.com/darkkaiser/diag-server/internal/service/scheduler"
	applog "github.com/darkkaiser/diag-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

// @title diag-server API
// @version 1.0.0
// @description 외부 의존성 상태 점검 및 시스템 진단 정보를 제공하는 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 외부 의존성 점검 (ICMP Ping / HTTP Fetch)
// @description - 비밀값이 마스킹된 설정 조회
// @description - 실행 환경 및 패키지 목록 조회
// @description - Cron 스케줄 기반 주기적 점검
// @description
// @description 점검 대상은 설정 파일(diag-server.json)의 diagnostics.endpoints에 등록합니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @host localhost:8543
// @BasePath /

// 빌드 정보 변수 (Dockerfile의 ldflags로 주입됨)
var (
	Version     = "dev"     // Git 커밋 해시
	BuildDate   = "unknown" // 빌드 날짜
	BuildNumber = "0"       // 빌드 번호
)

const (
	banner = `
  ____   _                   ____
 |  _ \ (_)  __ _   __ _    / ___|   ___  _ __ __   __  ___  _ __
 | | | || | / _' | / _' |   \___ \  / _ \| '__|\ \ / / / _ \| '__|
 | |_| || || (_| || (_| |    ___) ||  __/| |    \ V / |  __/| |
 |____/ |_| \__,_| \__, |   |____/  \___||_|     \_/   \___||_|
                   |___/                          %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	// 설정 권고사항 점검 결과 출력
	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, Version)

	// 빌드 정보 설정 (전역 싱글톤 등록)
	buildInfo := version.Info{
		Version:     Version,
		BuildDate:   BuildDate,
		BuildNumber: BuildNumber,
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
	}
	version.Set(buildInfo)

	// 빌드 정보 출력
	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 서비스를 생성하고 초기화한다.
	configSanitizer, err := sanitizer.New(appConfig.Diagnostics.Sanitizer.SchemaFile)
	if err != nil {
		log.Fatalf("설정 스키마 로드 실패로 프로그램을 종료합니다: %v", err)
	}

	diagnosticsService := diagnostics.NewService(appConfig)
	schedulerService := scheduler.NewService(appConfig.Diagnostics.Scheduler, diagnosticsService)
	apiService := api.NewService(appConfig, api.Dependencies{
		DependencyChecker: diagnosticsService,
		HealthChecker:     diagnosticsService,
		ConfigSanitizer:   configSanitizer,
		SystemInventory:   inventory.New(appConfig.Diagnostics.Inventory),
	}, buildInfo)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{diagnosticsService, schedulerService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	// Handle sigterm and await termC signal
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC // Blocks here until interrupted

	// Handle shutdown
	applog.WithComponent("main").Info("Shutdown signal received")
	cancel()             // Signal cancellation to context.Context
	serviceStopWG.Wait() // Block here until are workers are done
}
