package mocks

import (
	"context"

	"github.com/darkkaiser/diag-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockDependencyChecker는 contract.DependencyChecker 인터페이스의 Mock 구현체입니다.
type MockDependencyChecker struct {
	mock.Mock
}

// CheckAll 모든 점검 대상을 점검하는 Mock 메서드입니다.
func (m *MockDependencyChecker) CheckAll(ctx context.Context) []contract.ExternalDependency {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]contract.ExternalDependency)
}
