package constants

// 시스템 시작/구동 시 발생할 수 있는 크리티컬한 패닉 메시지 상수입니다.
const (
	// PanicMsgAppConfigRequired 패닉 메시지: AppConfig 필수
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"

	// PanicMsgDependencyCheckerRequired 패닉 메시지: DependencyChecker 필수
	PanicMsgDependencyCheckerRequired = "DependencyChecker는 필수입니다"

	// PanicMsgConfigSanitizerRequired 패닉 메시지: ConfigSanitizer 필수
	PanicMsgConfigSanitizerRequired = "ConfigSanitizer는 필수입니다"

	// PanicMsgSystemInventoryRequired 패닉 메시지: SystemInventory 필수
	PanicMsgSystemInventoryRequired = "SystemInventory는 필수입니다"

	// PanicMsgHealthCheckerRequired 패닉 메시지: HealthChecker 필수
	PanicMsgHealthCheckerRequired = "HealthChecker는 필수입니다"

	// PanicMsgRateLimitRequestsPerSecondInvalid 패닉 메시지: requestsPerSecond 설정 오류
	PanicMsgRateLimitRequestsPerSecondInvalid = "RateLimiting: requestsPerSecond는 양수여야 합니다 (현재값: %d)"

	// PanicMsgRateLimitBurstInvalid 패닉 메시지: burst 설정 오류
	PanicMsgRateLimitBurstInvalid = "RateLimiting: burst는 양수여야 합니다 (현재값: %d)"
)
