package scheduler

import (
	apperrors "github.com/darkkaiser/diag-server/internal/pkg/errors"
)

var (
	// ErrDependencyCheckerNotInitialized DependencyChecker가 초기화되지 않은 상태로 서비스가 시작된 경우 반환됩니다.
	ErrDependencyCheckerNotInitialized = apperrors.New(apperrors.Internal, "DependencyChecker가 초기화되지 않았습니다")
)
