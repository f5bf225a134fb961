package service

import (
	"context"

	"pixelgram/internal/media"
	"pixelgram/internal/models"
	"pixelgram/internal/repository"
	"pixelgram/internal/validation"
)

type ReelService struct {
	reels repository.ReelRepository
	media MediaDiscarder
}

// CreateReelInput is a validated reel upload. Thumbnail may be nil.
type CreateReelInput struct {
	UserID    uint
	Fields    validation.CreateReel
	Video     *media.StoredFile
	Thumbnail *media.StoredFile
}

func NewReelService(reels repository.ReelRepository, discarder MediaDiscarder) *ReelService {
	return &ReelService{reels: reels, media: discarder}
}

// Create stores a reel owned by the uploader.
func (s *ReelService) Create(ctx context.Context, in CreateReelInput) (*models.Reel, error) {
	reel := &models.Reel{
		UserID:     in.UserID,
		VideoURL:   in.Video.URL,
		Caption:    in.Fields.Caption,
		Filter:     in.Fields.Filter,
		AudioTrack: models.AudioTrackName(in.Fields.AudioID),
	}
	if reel.Filter == "" {
		reel.Filter = models.DefaultReelFilter
	}
	if in.Thumbnail != nil {
		reel.Thumbnail = in.Thumbnail.URL
	}
	if err := s.reels.Create(ctx, reel); err != nil {
		s.media.Discard(ctx, in.Video.URL)
		if in.Thumbnail != nil {
			s.media.Discard(ctx, in.Thumbnail.URL)
		}
		return nil, err
	}
	return s.reels.GetByID(ctx, reel.ID)
}

// View counts one view and returns the new total.
func (s *ReelService) View(ctx context.Context, reelID uint) (int, error) {
	return s.reels.AddView(ctx, reelID)
}
