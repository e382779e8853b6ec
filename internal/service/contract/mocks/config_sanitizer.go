package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockConfigSanitizer는 contract.ConfigSanitizer 인터페이스의 Mock 구현체입니다.
type MockConfigSanitizer struct {
	mock.Mock
}

// Sanitize 설정 트리의 비밀값을 치환하는 Mock 메서드입니다.
func (m *MockConfigSanitizer) Sanitize(config map[string]any) map[string]any {
	args := m.Called(config)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]any)
}
