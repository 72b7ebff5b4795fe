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

type updateRemasterBody struct {
	Name string `json:"name"`
}

func (a *API) RemasterUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fieldError(c, http.StatusBadRequest, "id", "invalid remaster id")
		return
	}

	var data updateRemasterBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.Name == "" {
		fieldError(c, http.StatusBadRequest, "name", "name can't be empty")
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

	// Only the creator may touch a remaster
	if remaster.CreatorID != userID {
		fieldError(c, http.StatusForbidden, "id", "not the creator")
		return
	}

	remaster.Name = data.Name

	err = a.DB.Model(&remaster).
		Update("name", remaster.Name).
		Error
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to update remaster", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"remaster": remaster})
}
