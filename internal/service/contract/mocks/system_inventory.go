package mocks

import (
	"github.com/darkkaiser/diag-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockSystemInventory는 contract.SystemInventory 인터페이스의 Mock 구현체입니다.
type MockSystemInventory struct {
	mock.Mock
}

// Collect 실행 환경 정보를 수집하는 Mock 메서드입니다.
func (m *MockSystemInventory) Collect() (contract.SystemMetadata, error) {
	args := m.Called()
	return args.Get(0).(contract.SystemMetadata), args.Error(1)
}
