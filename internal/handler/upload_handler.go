package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var resumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// UploadImage 处理后台图片上传请求
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "未找到上传的图片")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "只允许上传图片文件")
		return
	}

	url, err := a.saveUpload(c, file, "images")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "保存文件失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "上传成功", "url": url})
}

// saveResume 保存应聘者上传的简历，仅接受常见文档格式
func (a *API) saveResume(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !resumeExtensions[ext] {
		return "", fmt.Errorf("unsupported resume format %s", ext)
	}
	return a.saveUpload(c, file, "resumes")
}

// saveUpload 以日期加 UUID 命名保存文件，避免覆盖同名上传
func (a *API) saveUpload(c *gin.Context, file *multipart.FileHeader, prefix string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	objectName := fmt.Sprintf("%s/%s-%s%s", prefix, time.Now().Format("20060102"), uuid.New().String(), ext)

	contentType := file.Header.Get("Content-Type")
	url, err := a.store.Save(c.Request.Context(), objectName, src, file.Size, contentType)
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return url, nil
}
