package models

import "time"

// EpisodeVideo is one streaming link of an episode. EpisodeNumber,
// AnimeTitle and AnimeImage are snapshots taken at write time and are not
// kept in sync with later anime or episode edits.
type EpisodeVideo struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EpisodeID     int64     `json:"episode_id" gorm:"index;not null"`
	VideoURL      string    `json:"video_url" gorm:"not null;size:500"`
	EpisodeNumber int       `json:"episode_number"`
	AnimeTitle    string    `json:"anime_title"`
	AnimeImage    *string   `json:"anime_image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (EpisodeVideo) TableName() string {
	return "episode_videos"
}
