package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

// T 테스트 실패 보고에 필요한 최소 인터페이스입니다.
// testing 패키지를 직접 의존하지 않기 위해 *testing.T 대신 사용합니다.
type T interface {
	Fatalf(format string, args ...interface{})
}

// GenerateSelfSignedCert 임시 디렉토리에 테스트용 자체 서명 인증서와 키 파일을 생성합니다.
// HTTPS 서버 테스트에서 사용하며, 인증서는 127.0.0.1 대상으로 1시간 동안 유효합니다.
//
// 반환값: (인증서 파일 경로, 키 파일 경로, 정리 함수)
func GenerateSelfSignedCert(t T) (string, string, func()) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("테스트용 개인 키 생성 실패: %v", err)
	}

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization: []string{"diag-server test"},
		},
		NotBefore: time.Now(),
		NotAfter:  time.Now().Add(time.Hour),

		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,

		IPAddresses: []net.IP{net.ParseIP("127.0.0.1")},
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		t.Fatalf("테스트용 인증서 생성 실패: %v", err)
	}

	tempDir, err := os.MkdirTemp("", "diag-server-tls-test")
	if err != nil {
		t.Fatalf("임시 디렉토리 생성 실패: %v", err)
	}
	cleanup := func() {
		os.RemoveAll(tempDir)
	}

	certPath := filepath.Join(tempDir, "cert.pem")
	keyPath := filepath.Join(tempDir, "key.pem")

	if err := writePEMFile(certPath, "CERTIFICATE", derBytes); err != nil {
		cleanup()
		t.Fatalf("인증서 파일 기록 실패: %v", err)
	}

	privBytes, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		cleanup()
		t.Fatalf("개인 키 인코딩 실패: %v", err)
	}
	if err := writePEMFile(keyPath, "EC PRIVATE KEY", privBytes); err != nil {
		cleanup()
		t.Fatalf("키 파일 기록 실패: %v", err)
	}

	return certPath, keyPath, cleanup
}

func writePEMFile(path, blockType string, derBytes []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, &pem.Block{Type: blockType, Bytes: derBytes})
}
