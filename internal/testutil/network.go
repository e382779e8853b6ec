// Package testutil 네트워크 기반 테스트에서 공통으로 사용하는 보조 기능을 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"time"
)

// GetFreePort 테스트용으로 사용 가능한 임의의 포트를 반환합니다.
//
// OS에 포트 0으로 바인딩을 요청하여 할당받은 포트 번호를 확보한 뒤 리스너를 닫습니다.
// 반환 직후 다른 프로세스가 해당 포트를 선점할 가능성이 이론상 존재하지만,
// 테스트 환경에서는 충분히 안전합니다.
func GetFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// WaitForServer 서버가 해당 포트에서 리스닝을 시작할 때까지 대기합니다.
// 제한 시간 내에 연결에 성공하지 못하면 에러를 반환합니다.
func WaitForServer(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.Dial("tcp", fmt.Sprintf("localhost:%d", port))
		if err == nil {
			conn.Close()
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}

	return fmt.Errorf("server did not start on port %d within %v", port, timeout)
}
