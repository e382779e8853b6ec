// Package service 애플리케이션을 구성하는 서비스들의 공통 생명주기 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 애플리케이션 서비스의 공통 생명주기 인터페이스입니다.
//
// Start는 서비스를 비동기로 시작하고 즉시 반환합니다. 서비스는 serviceStopCtx의
// 취소 신호를 받으면 스스로 정리 작업을 수행한 후 serviceStopWG.Done()을 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
