package media

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"pixelgram/internal/models"
	"pixelgram/internal/observability"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// DefaultMaxUploadMB applies when NewIngestor is given no limit.
const DefaultMaxUploadMB = 50

var allowedExtensions = map[string][]string{
	models.MediaTypeImage: {".jpg", ".jpeg", ".png", ".gif", ".webp"},
	models.MediaTypeVideo: {".mp4", ".mov", ".webm", ".m4v"},
	models.MediaTypeAudio: {".mp3", ".wav", ".ogg", ".m4a", ".aac"},
}

// KindForField maps a multipart field name to the media kind it must contain.
func KindForField(field string) string {
	switch field {
	case "video":
		return models.MediaTypeVideo
	case "audio":
		return models.MediaTypeAudio
	default:
		return models.MediaTypeImage
	}
}

// StoredFile describes an accepted upload.
type StoredFile struct {
	URL         string
	MediaType   string
	Filename    string
	ContentType string
	Size        int64
}

// Ingestor validates multipart uploads and writes them to a Storage.
type Ingestor struct {
	store    Storage
	maxBytes int64
	logger   *slog.Logger
}

// NewIngestor returns an Ingestor writing to store with a per-file size limit.
// A nil logger uses slog.Default.
func NewIngestor(store Storage, maxUploadMB int, logger *slog.Logger) *Ingestor {
	if maxUploadMB <= 0 {
		maxUploadMB = DefaultMaxUploadMB
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{store: store, maxBytes: int64(maxUploadMB) << 20, logger: logger}
}

// Ingest checks fh against the rules for field's media kind and stores it
// as "<field>-<uuid><ext>".
func (i *Ingestor) Ingest(ctx context.Context, field string, fh *multipart.FileHeader) (*StoredFile, error) {
	if fh == nil {
		return nil, models.NewValidationError("No file uploaded")
	}
	kind := KindForField(field)
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtension(kind, ext) {
		return nil, models.NewValidationError(fmt.Sprintf("Unsupported %s file type %q", kind, ext))
	}
	if fh.Size > i.maxBytes {
		return nil, models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", i.maxBytes>>20))
	}
	if fh.Size == 0 {
		return nil, models.NewValidationError("Uploaded file is empty")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, models.NewInternalError(fmt.Errorf("open upload: %w", err))
	}
	defer f.Close()

	if kind == models.MediaTypeImage {
		if _, _, err := image.DecodeConfig(f); err != nil {
			return nil, models.NewValidationError("Invalid image file")
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, models.NewInternalError(fmt.Errorf("rewind upload: %w", err))
		}
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = fh.Header.Get("Content-Type")
	}

	key := field + "-" + uuid.NewString() + ext
	url, err := i.store.Put(ctx, key, io.LimitReader(f, i.maxBytes), contentType)
	if err != nil {
		return nil, models.NewStorageError("store upload", err)
	}

	observability.MediaUploadsTotal.WithLabelValues(kind).Inc()
	observability.MediaUploadBytes.Observe(float64(fh.Size))

	return &StoredFile{
		URL:         url,
		MediaType:   kind,
		Filename:    key,
		ContentType: contentType,
		Size:        fh.Size,
	}, nil
}

// Discard deletes a stored file. Failures are logged and otherwise ignored.
func (i *Ingestor) Discard(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := i.store.Delete(ctx, url); err != nil {
		i.logger.WarnContext(ctx, "failed to discard media", "url", url, "error", err)
	}
}

func allowedExtension(kind, ext string) bool {
	for _, e := range allowedExtensions[kind] {
		if e == ext {
			return true
		}
	}
	return false
}
