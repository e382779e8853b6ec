package main

import (
	"fmt"
	"testing"

	"github.com/darkkaiser/diag-server/internal/config"
	"github.com/darkkaiser/diag-server/internal/pkg/version"
	"github.com/stretchr/testify/assert"
)

// TestAppMetadata는 애플리케이션의 기본 메타데이터 설정이 올바른지 검증합니다.
func TestAppMetadata(t *testing.T) {
	t.Parallel()

	t.Run("AppVersion 검증", func(t *testing.T) {
		t.Parallel()

		v := version.Version()
		assert.NotEmpty(t, v, "애플리케이션 버전(Version)은 비어있을 수 없습니다")

		// 기본값("dev") 또는 Semantic Versioning 형식(vX.Y.Z)을 준수해야 함
		// 테스트 환경에서는 ldflags가 없을 수 있으므로 "unknown"도 허용
		if v != "dev" && v != "unknown" {
			assert.Regexp(t, `^v?\d+\.\d+\.\d+(?:-.*)?$`, v, "버전은 Semantic Versioning 표준 형식을 따라야 합니다")
		}
	})

	t.Run("AppName 검증", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "diag-server", config.AppName, "애플리케이션 이름은 'diag-server'여야 합니다")
		assert.NotContains(t, config.AppName, " ", "애플리케이션 이름에는 공백이 포함될 수 없습니다")
	})

	t.Run("ConfigFileName 검증", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "diag-server.json", config.DefaultFilename)
	})
}

// TestBanner는 서버 시작 시 출력되는 배너의 형식과 내용이 올바른지 검증합니다.
func TestBanner(t *testing.T) {
	t.Parallel()

	t.Run("템플릿 형식 검증", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, banner, "%s", "배너 템플릿에는 버전 포맷팅을 위한 '%s'가 포함되어야 합니다")
		assert.Contains(t, banner, "DarkKaiser", "배너에는 개발자/조직명(DarkKaiser)이 포함되어야 합니다")
	})

	t.Run("출력 포맷팅 검증", func(t *testing.T) {
		t.Parallel()

		v := version.Version()
		output := fmt.Sprintf(banner, v)
		assert.Contains(t, output, v, "최종 출력된 배너에는 실제 버전 정보가 포함되어야 합니다")
		assert.NotContains(t, output, "%s", "최종 출력된 배너에는 포맷 지정자가 남아있지 않아야 합니다")
	})
}
