// Package inventory 서비스 실행 환경과 설치된 패키지 목록을 수집합니다.
//
// 패키지 목록은 의존성 잠금 파일(go.sum 형식)에서 읽어들이며,
// 설정된 모듈 접두사로 필터링한 후 패키지별로 고유한 버전을 집계합니다.
package inventory

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/darkkaiser/diag-server/internal/config"
	apperrors "github.com/darkkaiser/diag-server/internal/pkg/errors"
	"github.com/darkkaiser/diag-server/internal/pkg/version"
	"github.com/darkkaiser/diag-server/internal/service/contract"
)

// Inventory 잠금 파일 기반의 contract.SystemInventory 구현체입니다.
type Inventory struct {
	lockFile     string
	modulePrefix string
}

var _ contract.SystemInventory = (*Inventory)(nil)

// New 설정에 지정된 잠금 파일을 참조하는 Inventory를 생성합니다.
func New(inventoryConfig config.InventoryConfig) *Inventory {
	return &Inventory{
		lockFile:     inventoryConfig.LockFile,
		modulePrefix: inventoryConfig.ModulePrefix,
	}
}

// Collect 실행 환경 정보와 패키지 목록을 수집하여 반환합니다.
func (i *Inventory) Collect() (contract.SystemMetadata, error) {
	packages, err := i.readPackages()
	if err != nil {
		return contract.SystemMetadata{}, err
	}

	return contract.SystemMetadata{
		OS:         fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Runtime:    runtime.Version(),
		AppVersion: version.Version(),
		Packages:   packages,
	}, nil
}

// readPackages 잠금 파일을 파싱하여 패키지별 고유 버전 목록을 집계합니다.
//
// 잠금 파일의 각 줄은 "모듈경로 버전 해시" 형식이며, 버전에 붙는 "/go.mod" 접미사는
// 동일 버전의 중복 기재이므로 제거 후 집계합니다.
func (i *Inventory) readPackages() ([]contract.PackageVersion, error) {
	f, err := os.Open(i.lockFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.NotFound, fmt.Sprintf("의존성 잠금 파일을 찾을 수 없습니다: '%s'", i.lockFile))
		}
		return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("의존성 잠금 파일을 열 수 없습니다: '%s'", i.lockFile))
	}
	defer func() { _ = f.Close() }()

	versionsByName := make(map[string]map[string]struct{})

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		name := fields[0]
		if i.modulePrefix != "" && !strings.HasPrefix(name, i.modulePrefix) {
			continue
		}

		moduleVersion := strings.TrimSuffix(fields[1], "/go.mod")

		if versionsByName[name] == nil {
			versionsByName[name] = make(map[string]struct{})
		}
		versionsByName[name][moduleVersion] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("의존성 잠금 파일을 읽는 중 오류가 발생하였습니다: '%s'", i.lockFile))
	}

	names := make([]string, 0, len(versionsByName))
	for name := range versionsByName {
		names = append(names, name)
	}
	sort.Strings(names)

	packages := make([]contract.PackageVersion, 0, len(names))
	for _, name := range names {
		versions := make([]string, 0, len(versionsByName[name]))
		for v := range versionsByName[name] {
			versions = append(versions, v)
		}
		sort.Strings(versions)

		packages = append(packages, contract.PackageVersion{
			Name:    name,
			Version: strings.Join(versions, ", "),
		})
	}

	return packages, nil
}
