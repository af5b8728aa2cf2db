package repository

import (
	"errors"
	"khe/app_error"

	"gorm.io/gorm"
)

type Track struct {
	ID          int     `gorm:"primaryKey"`
	Name        string  `gorm:"not null;uniqueIndex"`
	Description *string `gorm:"null"`
}

type TrackRepository struct {
	DB *gorm.DB
}

func NewTrackRepository(db *gorm.DB) *TrackRepository {
	return &TrackRepository{DB: db}
}

func (r *TrackRepository) GetAllTracks() ([]*Track, error) {
	tracks := make([]*Track, 0)
	result := r.DB.Order("name ASC").Find(&tracks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tracks, nil
}

func (r *TrackRepository) GetTrackById(trackId int) (*Track, error) {
	var track Track
	result := r.DB.First(&track, trackId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("track %d", trackId)
		}
		return nil, result.Error
	}
	return &track, nil
}

func (r *TrackRepository) SaveTrack(track *Track) (*Track, error) {
	result := r.DB.Save(track)
	if result.Error != nil {
		return nil, result.Error
	}
	return track, nil
}

func (r *TrackRepository) DeleteTrack(trackId int) error {
	return r.DB.Delete(&Track{}, trackId).Error
}
