package dua

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/dualinkhq/dualink-api/pkg/textutil"
)

var ErrEmptyContent = errors.New("dua content is missing")

// Generator produces model text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ModerationResult carries the moderation decision back to the handler. Dua is
// set only when the submission was approved and persisted.
type ModerationResult struct {
	Approved bool
	Reason   string
	Dua      *Dua
}

type DuaService struct {
	repo DuaRepo
	gen  Generator
}

func NewDuaService(repo DuaRepo, gen Generator) DuaService {
	return DuaService{repo: repo, gen: gen}
}

// SubmitDua moderates the submission and persists it if approved. Unlike the
// daily pipeline there is no retry and no fallback: upstream, parse, and
// persistence failures are all hard errors, because the caller must know
// exactly what happened to their submission.
func (s *DuaService) SubmitDua(ctx context.Context, content string) (*ModerationResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	raw, err := s.gen.Generate(ctx, buildModerationPrompt(content))
	if err != nil {
		log.Printf("dua moderation upstream error: %v", err)
		return nil, fmt.Errorf("moderation request failed: %w", err)
	}

	payload, err := textutil.ExtractJSONObject(raw)
	if err != nil {
		log.Printf("dua moderation: no JSON in response: %q", raw)
		return nil, fmt.Errorf("failed to parse moderation response: %w", err)
	}

	var verdict moderationVerdict
	if err := json.Unmarshal([]byte(payload), &verdict); err != nil {
		log.Printf("dua moderation: malformed JSON: %v", err)
		return nil, fmt.Errorf("failed to parse moderation response: %w", err)
	}

	if !verdict.IsAppropriate {
		return &ModerationResult{Approved: false, Reason: verdict.Reason}, nil
	}

	textType := verdict.TextType
	if textType != TextTypeHadith {
		textType = TextTypeAyah
	}

	d := &Dua{
		ID:              uuid.New(),
		Content:         content,
		RelatedText:     verdict.RelatedText,
		TextTranslation: verdict.TextTranslation,
		TextReference:   verdict.TextReference,
		TextType:        textType,
		ResonanceCount:  0,
	}

	if err := s.repo.Insert(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to save dua: %w", err)
	}

	return &ModerationResult{Approved: true, Dua: d}, nil
}

func (s *DuaService) ListDuas(ctx context.Context) ([]Dua, error) {
	duas, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("error listing duas: %v", err)
		return nil, err
	}
	return duas, nil
}

func (s *DuaService) IncrementResonance(ctx context.Context, id uuid.UUID) (*Dua, error) {
	d, err := s.repo.IncrementResonance(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("error incrementing resonance for %s: %v", id, err)
		}
		return nil, err
	}
	return d, nil
}

func buildModerationPrompt(content string) string {
	return fmt.Sprintf(`Evaluate if the following dua request is appropriate: %q.
It should be considered inappropriate if it:
1. Revolves around haram (forbidden in Islam) topics
2. Asks for a boyfriend or girlfriend
3. Contains any other inappropriate content

If the dua is appropriate, provide one related scriptural reference, either a Quranic ayah or a hadith.
Respond in JSON format with these fields:
1. "isAppropriate": a boolean indicating if the dua is appropriate
2. "relatedText": if isAppropriate is true, the related ayah or hadith in Arabic
3. "textTranslation": if isAppropriate is true, an English translation
4. "textReference": if isAppropriate is true, the citation (e.g., "Al-Baqarah: 286")
5. "textType": if isAppropriate is true, either "ayah" or "hadith"`, content)
}
