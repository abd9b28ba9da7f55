package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local 将上传文件写入本地目录，由静态路由对外提供访问。
type Local struct {
	baseDir   string
	publicURL string
}

// NewLocal 构造 Local 存储。publicURL 为静态路由前缀，例如 /static/uploads。
func NewLocal(baseDir, publicURL string) *Local {
	return &Local{
		baseDir:   baseDir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Save 保存文件并返回访问 URL。
func (l *Local) Save(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	if err := os.MkdirAll(l.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(l.baseDir, filepath.FromSlash(objectName))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create upload subdir: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, reader); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return l.publicURL + "/" + objectName, nil
}

// Remove 删除文件，目标不存在时视为成功。
func (l *Local) Remove(_ context.Context, objectName string) error {
	path := filepath.Join(l.baseDir, filepath.FromSlash(objectName))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}
