package config

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/diag-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// validate 설정 구조체의 유효성 검증에 사용되는 전역 validator 인스턴스입니다.
var validate = newValidator()

// newValidator 애플리케이션 설정 검증에 특화된 validator 인스턴스를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 에러 메시지에 Go 필드명 대신 json 태그명이 노출되도록 한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사기 등록에 실패하였습니다: %v", err))
	}

	return v
}

// validateCORSOrigin CORS 허용 오리진 값의 유효성을 검증합니다.
// 와일드카드('*') 또는 스킴과 호스트를 갖춘 URL(경로 없음)만 허용합니다.
func validateCORSOrigin(fl validator.FieldLevel) bool {
	origin := fl.Field().String()
	if origin == "*" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if u.Host == "" || u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return false
	}

	return true
}

// checkStruct 구조체에 선언된 validate 태그 규칙을 검사하고,
// 위반 시 사람이 읽을 수 있는 메시지로 변환하여 반환합니다.
func checkStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !apperrors.As(err, &validationErrors) {
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증 중 오류가 발생했습니다")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fmt.Sprintf("'%s' 필드가 '%s' 규칙을 위반하였습니다", fieldError.Field(), fieldError.Tag()))
	}

	return apperrors.New(apperrors.InvalidInput, strings.Join(messages, ", "))
}
