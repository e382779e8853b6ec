// Package sanitizer 설정 트리에서 비밀값을 가려 외부에 노출 가능한 형태로 만듭니다.
//
// 마스킹 대상은 설정 구조를 그대로 따라가는 JSON 스키마 파일로 지정합니다.
// 스키마에서 "secret": true로 표시된 노드에 대응하는 설정 값은 플레이스홀더로 치환됩니다.
//
// 스키마 예시:
//
//	{
//	  "diagnostics": {
//	    "endpoints": { "target": { "secret": true } }
//	  }
//	}
package sanitizer

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/diag-server/internal/pkg/errors"
	"github.com/darkkaiser/diag-server/internal/service/contract"
	"github.com/tidwall/gjson"
)

// Placeholder 비밀값을 치환할 때 사용되는 문자열입니다.
const Placeholder = "***"

// Sanitizer 스키마 기반으로 설정 트리의 비밀값을 치환하는 contract.ConfigSanitizer 구현체입니다.
type Sanitizer struct {
	schema gjson.Result
	loaded bool
}

var _ contract.ConfigSanitizer = (*Sanitizer)(nil)

// New 스키마 파일을 읽어 Sanitizer를 생성합니다.
// schemaFile이 비어있으면 어떤 값도 치환하지 않는 Sanitizer를 반환합니다.
func New(schemaFile string) (*Sanitizer, error) {
	if strings.TrimSpace(schemaFile) == "" {
		return &Sanitizer{}, nil
	}

	data, err := os.ReadFile(schemaFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.NotFound, fmt.Sprintf("마스킹 스키마 파일을 찾을 수 없습니다: '%s'", schemaFile))
		}
		return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("마스킹 스키마 파일을 읽을 수 없습니다: '%s'", schemaFile))
	}

	if !gjson.ValidBytes(data) {
		return nil, apperrors.New(apperrors.ParsingFailed, fmt.Sprintf("마스킹 스키마 파일('%s')이 유효한 JSON이 아닙니다", schemaFile))
	}

	return &Sanitizer{
		schema: gjson.ParseBytes(data),
		loaded: true,
	}, nil
}

// Sanitize 설정 트리에서 스키마에 비밀로 표시된 값을 플레이스홀더로 치환한 사본을 반환합니다.
// 원본 맵은 수정되지 않습니다.
func (s *Sanitizer) Sanitize(config map[string]any) map[string]any {
	if config == nil {
		return nil
	}

	if !s.loaded {
		return copyMap(config)
	}

	return sanitizeMap(config, s.schema)
}

func sanitizeMap(config map[string]any, schema gjson.Result) map[string]any {
	sanitized := make(map[string]any, len(config))
	for key, value := range config {
		sanitized[key] = sanitizeValue(value, schemaChild(schema, key))
	}
	return sanitized
}

func sanitizeValue(value any, schema gjson.Result) any {
	if schema.Exists() && schema.Get("secret").Bool() {
		return Placeholder
	}

	switch v := value.(type) {
	case map[string]any:
		return sanitizeMap(v, schema)
	case []any:
		// 배열의 모든 요소에 동일한 스키마 노드를 적용한다.
		sanitized := make([]any, 0, len(v))
		for _, item := range v {
			sanitized = append(sanitized, sanitizeValue(item, schema))
		}
		return sanitized
	default:
		return value
	}
}

// schemaChild 스키마에서 설정 키에 대응하는 자식 노드를 조회합니다.
// 설정 키에 포함된 점(.)이 gjson의 경로 구분자로 해석되지 않도록 이스케이프합니다.
func schemaChild(schema gjson.Result, key string) gjson.Result {
	if !schema.Exists() {
		return gjson.Result{}
	}
	return schema.Get(strings.ReplaceAll(key, ".", `\.`))
}

func copyMap(config map[string]any) map[string]any {
	copied := make(map[string]any, len(config))
	for key, value := range config {
		copied[key] = copyValue(value)
	}
	return copied
}

func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return copyMap(v)
	case []any:
		copied := make([]any, 0, len(v))
		for _, item := range v {
			copied = append(copied, copyValue(item))
		}
		return copied
	default:
		return value
	}
}
