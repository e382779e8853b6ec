package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskSensitiveData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "성공: 빈 문자열", input: "", expected: ""},
		{name: "성공: 3자 이하 전체 마스킹", input: "abc", expected: "***"},
		{name: "성공: 12자 이하 앞 4자 노출", input: "abcdefgh", expected: "abcd***"},
		{name: "성공: 긴 토큰 앞뒤 4자 노출", input: "abcdefghijklmnop", expected: "abcd***mnop"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, MaskSensitiveData(tt.input))
		})
	}
}

func TestWithComponent(t *testing.T) {
	entry := WithComponent("diagnostics.orchestrator")
	assert.Equal(t, "diagnostics.orchestrator", entry.Data["component"])
}

func TestWithComponentAndFields(t *testing.T) {
	entry := WithComponentAndFields("diagnostics.fetch", Fields{
		"endpoint": "svc-a",
		"target":   "http://ok.example",
	})

	assert.Equal(t, "diagnostics.fetch", entry.Data["component"])
	assert.Equal(t, "svc-a", entry.Data["endpoint"])
	assert.Equal(t, "http://ok.example", entry.Data["target"])
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	t.Run("실패: 애플리케이션 식별자 누락", func(t *testing.T) {
		t.Parallel()
		opts := Options{}
		assert.Error(t, opts.Validate())
	})

	t.Run("실패: 음수 보관 기간", func(t *testing.T) {
		t.Parallel()
		opts := Options{Name: "diag-server", MaxAge: -1}
		assert.Error(t, opts.Validate())
	})

	t.Run("성공: 유효한 설정", func(t *testing.T) {
		t.Parallel()
		opts := Options{Name: "diag-server", MaxAge: 30, MaxSizeMB: 100, MaxBackups: 20}
		assert.NoError(t, opts.Validate())
	})
}

func TestHook_Fire(t *testing.T) {
	newEntry := func(level Level, msg string) *Entry {
		logger := logrus.New()
		entry := logrus.NewEntry(logger)
		entry.Level = level
		entry.Message = msg
		return entry
	}

	t.Run("성공: Error 로그는 Critical과 Main 양쪽에 기록", func(t *testing.T) {
		var mainBuf, criticalBuf bytes.Buffer
		h := &hook{
			mainWriter:     &mainBuf,
			criticalWriter: &criticalBuf,
			formatter:      &logrus.TextFormatter{DisableTimestamp: true},
		}

		require.NoError(t, h.Fire(newEntry(ErrorLevel, "점검 실패")))

		assert.Contains(t, mainBuf.String(), "점검 실패")
		assert.Contains(t, criticalBuf.String(), "점검 실패")
	})

	t.Run("성공: Debug 로그는 Verbose에만 기록", func(t *testing.T) {
		var mainBuf, verboseBuf bytes.Buffer
		h := &hook{
			mainWriter:    &mainBuf,
			verboseWriter: &verboseBuf,
			formatter:     &logrus.TextFormatter{DisableTimestamp: true},
		}

		require.NoError(t, h.Fire(newEntry(DebugLevel, "상세 추적")))

		assert.Empty(t, mainBuf.String())
		assert.Contains(t, verboseBuf.String(), "상세 추적")
	})

	t.Run("성공: 종료된 Hook은 기록하지 않음", func(t *testing.T) {
		var mainBuf bytes.Buffer
		h := &hook{
			mainWriter: &mainBuf,
			formatter:  &logrus.TextFormatter{DisableTimestamp: true},
		}

		require.NoError(t, h.Close())
		require.NoError(t, h.Fire(newEntry(InfoLevel, "무시되어야 합니다")))

		assert.Empty(t, mainBuf.String())
	})
}

func TestCloser_Close(t *testing.T) {
	t.Run("성공: 중복 Close 호출에도 안전", func(t *testing.T) {
		c := &closer{hook: &hook{}}

		assert.NoError(t, c.Close())
		assert.NoError(t, c.Close())
	})
}
