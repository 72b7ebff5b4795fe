package api

import (
	"net/http"
	"strconv"

	"remaster/api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) UserFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var users []model.User

	if err := a.DB.Find(&users).Error; err != nil {
		internalError(c)

		zap.L().Error("Failed to fetch users", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (a *API) UserDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fieldError(c, http.StatusBadRequest, "id", "invalid user id")
		return
	}

	if err := a.DB.Delete(&model.User{}, id).Error; err != nil {
		internalError(c)

		zap.L().Error("Failed to delete user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
