package api

import (
	"errors"
	"net/http"
	"strconv"

	"remaster/api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) RemasterDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fieldError(c, http.StatusBadRequest, "id", "invalid remaster id")
		return
	}

	var remaster model.Remaster

	if err := a.DB.First(&remaster, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fieldError(c, http.StatusNotFound, "id", "remaster not found")
			return
		}

		internalError(c)

		zap.L().Error("Failed to fetch remaster", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Only the creator may touch a remaster
	if remaster.CreatorID != userID {
		fieldError(c, http.StatusForbidden, "id", "not the creator")
		return
	}

	if err := a.DB.Delete(&remaster).Error; err != nil {
		internalError(c)

		zap.L().Error("Failed to delete remaster", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
