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

func (a *API) RemasterFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var remasters []model.Remaster

	if err := a.DB.Find(&remasters).Error; err != nil {
		internalError(c)

		zap.L().Error("Failed to fetch remasters", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"remasters": remasters})
}

func (a *API) RemasterFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fieldError(c, http.StatusBadRequest, "id", "invalid remaster id")
		return
	}

	var remaster model.Remaster

	if err := a.DB.First(&remaster, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"remaster": nil})
			return
		}

		internalError(c)

		zap.L().Error("Failed to fetch remaster", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"remaster": remaster})
}
