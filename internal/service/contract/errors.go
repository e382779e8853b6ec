package contract

import (
	apperrors "github.com/darkkaiser/diag-server/internal/pkg/errors"
)

var (
	// ErrServiceStopped 서비스가 아직 시작되지 않았거나 이미 중지되어 요청을 처리할 수 없을 때 반환하는 에러입니다.
	ErrServiceStopped = apperrors.New(apperrors.Unavailable, "서비스가 실행 중이지 않습니다")
)
