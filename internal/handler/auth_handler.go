package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/db"
	"github.com/rastechno/internal/service"
)

const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
	sessionRoleKey     = "role"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Login 处理管理员登录请求
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "用户名和密码不能为空") {
		return
	}

	user, err := a.users.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "用户名或密码错误")
			return
		}
		respondError(c, http.StatusInternalServerError, "登录失败")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	session.Set(sessionUsernameKey, user.Username)
	session.Set(sessionRoleKey, user.Role)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "会话保存失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "登录成功",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// Logout 处理管理员登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "已退出登录"})
}

// CurrentUser 返回当前会话对应的用户信息
func (a *API) CurrentUser(c *gin.Context) {
	session := sessions.Default(c)
	userID := session.Get(sessionUserIDKey)
	if userID == nil {
		respondError(c, http.StatusUnauthorized, "未登录")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       userID,
			"username": session.Get(sessionUsernameKey),
			"role":     session.Get(sessionRoleKey),
		},
	})
}

// ChangePassword 修改当前登录用户的密码
func (a *API) ChangePassword(c *gin.Context) {
	session := sessions.Default(c)
	userID, ok := session.Get(sessionUserIDKey).(uint)
	if !ok {
		respondError(c, http.StatusUnauthorized, "未登录")
		return
	}

	var req changePasswordRequest
	if !bindJSON(c, &req, "原密码和新密码不能为空") {
		return
	}

	if err := a.users.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, "原密码错误")
		case errors.Is(err, service.ErrUserInvalidInput):
			respondError(c, http.StatusBadRequest, "新密码不符合要求")
		default:
			respondError(c, http.StatusInternalServerError, "修改密码失败")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "密码修改成功"})
}

// AuthRequired 是一个简单的认证中间件，仅放行管理员会话
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserIDKey) == nil {
			respondError(c, http.StatusUnauthorized, "请先登录")
			c.Abort()
			return
		}
		if role, ok := session.Get(sessionRoleKey).(string); !ok || role != db.RoleAdmin {
			respondError(c, http.StatusForbidden, "没有管理权限")
			c.Abort()
			return
		}
		c.Next()
	}
}
