package contract

// PackageVersion 설치된 패키지 하나의 이름과 버전 정보입니다.
// 동일한 패키지가 여러 버전으로 존재하면 Version에 쉼표로 구분되어 나열됩니다.
type PackageVersion struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// SystemMetadata 서비스가 실행 중인 환경에 대한 요약 정보입니다.
type SystemMetadata struct {
	OS         string           `json:"os"`
	Runtime    string           `json:"runtime"`
	AppVersion string           `json:"app_version"`
	Packages   []PackageVersion `json:"packages"`
}

// SystemInventory 실행 환경 및 설치된 패키지 목록을 수집하는 인터페이스입니다.
type SystemInventory interface {
	// Collect 실행 환경 정보와 패키지 목록을 수집하여 반환합니다.
	//
	// 반환값:
	//   - SystemMetadata: 수집된 환경 정보
	//   - error: 패키지 목록 수집 실패 시 에러 반환
	Collect() (SystemMetadata, error)
}
