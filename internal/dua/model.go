package dua

import (
	"time"

	"github.com/google/uuid"
)

const (
	TextTypeAyah   = "ayah"
	TextTypeHadith = "hadith"
)

// Dua is a community prayer request. A row exists only if the submission
// passed moderation; rejected submissions are never persisted.
type Dua struct {
	ID              uuid.UUID `json:"id"`
	Content         string    `json:"content"`
	RelatedText     string    `json:"related_text"`
	TextTranslation string    `json:"text_translation"`
	TextReference   string    `json:"text_reference"`
	TextType        string    `json:"text_type"`
	ResonanceCount  int       `json:"resonance_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type CheckDuaRequest struct {
	DuaContent string `json:"duaContent"`
}

// CheckDuaResponse is the wire shape for a moderation decision.
type CheckDuaResponse struct {
	IsValid         bool   `json:"isValid"`
	RelatedText     string `json:"relatedText,omitempty"`
	TextTranslation string `json:"textTranslation,omitempty"`
	TextReference   string `json:"textReference,omitempty"`
	TextType        string `json:"textType,omitempty"`
	InsertedDua     *Dua   `json:"insertedDua,omitempty"`
}

type ResonanceResponse struct {
	ID             uuid.UUID `json:"id"`
	ResonanceCount int       `json:"resonanceCount"`
}

// moderationVerdict is the structure the model is prompted to return.
type moderationVerdict struct {
	IsAppropriate   bool   `json:"isAppropriate"`
	Reason          string `json:"reason"`
	RelatedText     string `json:"relatedText"`
	TextTranslation string `json:"textTranslation"`
	TextReference   string `json:"textReference"`
	TextType        string `json:"textType"`
}
