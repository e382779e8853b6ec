package contract

// ConfigSanitizer 설정 트리에서 비밀값을 가리는 기능을 제공하는 인터페이스입니다.
type ConfigSanitizer interface {
	// Sanitize 전달된 설정 트리에서 스키마에 비밀로 표시된 값을 플레이스홀더로 치환한 사본을 반환합니다.
	// 원본 맵은 수정되지 않습니다.
	//
	// 파라미터:
	//   - config: 마스킹 대상 설정 트리
	//
	// 반환값:
	//   - map[string]any: 비밀값이 치환된 설정 트리의 사본
	Sanitize(config map[string]any) map[string]any
}
