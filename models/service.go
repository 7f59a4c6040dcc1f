package models

import (
	"strings"
	"time"
	"unicode"

	"gorm.io/gorm"
)

type Service struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	Title           string         `json:"title"`
	Slug            string         `json:"slug" gorm:"uniqueIndex"`
	Category        string         `json:"category"`
	Description     string         `json:"description"`
	LongDescription string         `json:"longDescription"`
	StartingPrice   float64        `json:"startingPrice"`
	PriceUnit       string         `json:"priceUnit"`
	ImageURL        string         `json:"imageUrl"`
	Featured        bool           `json:"featured"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate derives the slug from the title when the client didn't send one.
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.Slug == "" {
		s.Slug = Slugify(s.Title)
	}
	return nil
}

// Slugify lowercases the title and collapses every non-alphanumeric run
// into a single dash, e.g. "House Cleaning" -> "house-cleaning".
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
