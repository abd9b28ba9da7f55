// Package storage 管理上传文件的持久化，支持本地磁盘与 MinIO 两种后端。
package storage

import (
	"context"
	"io"
)

// Storage 抽象上传文件的保存与删除，返回可公开访问的 URL。
type Storage interface {
	Save(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
}
