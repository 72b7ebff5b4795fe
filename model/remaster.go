package model

import "time"

type Remaster struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"_id"`
	Name        string      `gorm:"not null" json:"name"`
	PlaybackURL string      `json:"playbackURL"`
	TrackID     string      `json:"trackId"`
	Key         string      `json:"key"`
	Tuning      StringSlice `json:"tuning"`
	Loops       JSONBlob    `json:"loops"`
	Chords      JSONBlob    `json:"chords"`
	Likes       int         `gorm:"default:0" json:"likes"`
	CreatorID   uint        `gorm:"index;not null" json:"creatorId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
