package media

import (
	"time"

	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Image is an entry in the media library. URL is either absolute or a path
// relative to the service base URL.
type Image struct {
	bun.BaseModel `bun:"table:media_images,alias:mi"`

	ID        uuid.UUID `bun:",pk,type:uuid"          json:"id"`
	URL       string    `bun:"url,notnull"            json:"url"`
	AltEn     string    `bun:"alt_en"                 json:"alt_en,omitempty"`
	AltAr     string    `bun:"alt_ar"                 json:"alt_ar,omitempty"`
	MimeType  string    `bun:"mime_type"              json:"mime_type,omitempty"`
	Width     int       `bun:"width,notnull,default:0"  json:"width,omitempty"`
	Height    int       `bun:"height,notnull,default:0" json:"height,omitempty"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// Alt returns the alternative text for locale.
func (i *Image) Alt(locale string) string {
	if i == nil {
		return ""
	}
	return domain.Localized{En: i.AltEn, Ar: i.AltAr}.In(locale)
}

func cloneImage(img *Image) *Image {
	if img == nil {
		return nil
	}
	cloned := *img
	return &cloned
}
