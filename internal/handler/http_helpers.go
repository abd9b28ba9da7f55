package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

type reorderRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

type publishToggleRequest struct {
	IsPublished *bool `json:"is_published" binding:"required"`
}

type activeToggleRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type readToggleRequest struct {
	IsRead *bool `json:"is_read" binding:"required"`
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}
