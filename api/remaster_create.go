package api

import (
	"net/http"

	"remaster/api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createRemasterBody struct {
	Name        string         `json:"name"`
	PlaybackURL string         `json:"playbackURL"`
	TrackID     string         `json:"trackId"`
	Key         string         `json:"key"`
	Tuning      []string       `json:"tuning"`
	Loops       model.JSONBlob `json:"loops"`
	Chords      model.JSONBlob `json:"chords"`
}

func (a *API) RemasterCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var data createRemasterBody
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

	remaster := model.Remaster{
		Name:        data.Name,
		PlaybackURL: data.PlaybackURL,
		TrackID:     data.TrackID,
		Key:         data.Key,
		Tuning:      model.StringSlice(data.Tuning),
		Loops:       data.Loops,
		Chords:      data.Chords,
		CreatorID:   userID,
	}

	if err := a.DB.Create(&remaster).Error; err != nil {
		internalError(c)

		zap.L().Error("Failed to create remaster", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"remaster": remaster})
}
