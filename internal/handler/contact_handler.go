package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/service"
)

// ListContactMessages 获取全部留言，后台管理视角
func (a *API) ListContactMessages(c *gin.Context) {
	items, err := a.contacts.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取留言列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": items})
}

// ToggleContactMessageRead 标记留言的已读状态
func (a *API) ToggleContactMessageRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的留言ID")
		return
	}

	var req readToggleRequest
	if !bindJSON(c, &req, "已读状态不能为空") {
		return
	}

	item, err := a.contacts.SetRead(id, *req.IsRead)
	if err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			respondError(c, http.StatusNotFound, "留言不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "标记留言失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "留言已更新", "contact_message": item})
}

// DeleteContactMessage 删除留言
func (a *API) DeleteContactMessage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的留言ID")
		return
	}

	if err := a.contacts.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除留言失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "留言删除成功"})
}
