package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("성공: 타입과 메시지가 보존된 에러 생성", func(t *testing.T) {
		t.Parallel()

		err := New(NotFound, "설정 파일을 찾을 수 없습니다")

		var appErr *AppError
		require.True(t, As(err, &appErr))
		assert.Equal(t, NotFound, appErr.Type())
		assert.Equal(t, "설정 파일을 찾을 수 없습니다", appErr.Message())
		assert.Equal(t, "[NotFound] 설정 파일을 찾을 수 없습니다", err.Error())
	})

	t.Run("성공: 스택 트레이스가 수집됨", func(t *testing.T) {
		t.Parallel()

		err := New(Internal, "내부 오류")

		var appErr *AppError
		require.True(t, As(err, &appErr))
		require.NotEmpty(t, appErr.Stack())
		assert.Equal(t, "errors_test.go", appErr.Stack()[0].File)
	})
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(InvalidInput, "유효하지 않은 포트: %d", 70000)
	assert.Equal(t, "[InvalidInput] 유효하지 않은 포트: 70000", err.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("성공: 원인 에러가 체인에 보존됨", func(t *testing.T) {
		t.Parallel()

		cause := stderrors.New("connection refused")
		err := Wrap(cause, System, "외부 대상 접근 실패")

		assert.Equal(t, "[System] 외부 대상 접근 실패: connection refused", err.Error())
		assert.Equal(t, cause, RootCause(err))
		assert.True(t, stderrors.Is(err, cause))
	})

	t.Run("성공: nil 에러를 감싸면 nil 반환", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, Wrap(nil, System, "무시되어야 합니다"))
		assert.Nil(t, Wrapf(nil, System, "무시되어야 합니다: %d", 1))
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		errType  ErrorType
		expected bool
	}{
		{
			name:     "성공: 최상위 에러의 타입 일치",
			err:      New(Timeout, "요청 시간 초과"),
			errType:  Timeout,
			expected: true,
		},
		{
			name:     "성공: 체인 내부 에러의 타입 일치",
			err:      Wrap(New(NotFound, "대상 없음"), Internal, "조회 실패"),
			errType:  NotFound,
			expected: true,
		},
		{
			name:     "실패: 체인에 없는 타입",
			err:      New(System, "디스크 오류"),
			errType:  Timeout,
			expected: false,
		},
		{
			name:     "실패: nil 에러",
			err:      nil,
			errType:  System,
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Is(tt.err, tt.errType))
		})
	}
}

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	t.Run("성공: %+v 출력에 스택과 원인이 포함됨", func(t *testing.T) {
		t.Parallel()

		cause := stderrors.New("dial tcp: i/o timeout")
		err := Wrap(cause, System, "핑 점검 실패")

		formatted := fmt.Sprintf("%+v", err)
		assert.Contains(t, formatted, "[System] 핑 점검 실패")
		assert.Contains(t, formatted, "Stack trace:")
		assert.Contains(t, formatted, "Caused by:")
		assert.Contains(t, formatted, "dial tcp: i/o timeout")
	})

	t.Run("성공: %q 출력", func(t *testing.T) {
		t.Parallel()

		err := New(Unknown, "알 수 없는 오류")
		assert.Equal(t, `"[Unknown] 알 수 없는 오류"`, fmt.Sprintf("%q", err))
	})
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "ExecutionFailed", ExecutionFailed.String())
	assert.Equal(t, "Unknown", ErrorType(999).String())
}
