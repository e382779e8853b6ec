package diagnostics

import (
	"context"

	"github.com/darkkaiser/diag-server/internal/service/contract"
)

// Checker 점검 대상 하나를 점검하고 결과를 반환하는 인터페이스입니다.
//
// 구현체는 어떤 경우에도 패닉이나 에러를 외부로 전파해서는 안 되며,
// 실패를 포함한 모든 결과를 온전한 ExternalDependency 레코드로 반환해야 합니다.
type Checker interface {
	Check(ctx context.Context, endpoint Endpoint) contract.ExternalDependency
}
