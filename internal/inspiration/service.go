package inspiration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dualinkhq/dualink-api/internal/genai"
	"github.com/dualinkhq/dualink-api/pkg/textutil"
)

const (
	maxAttempts = 3
	historyDays = 10
)

// Generator produces model text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type InspirationService struct {
	repo InspirationRepo
	gen  Generator
	now  func() time.Time
}

func NewInspirationService(repo InspirationRepo, gen Generator) InspirationService {
	return InspirationService{
		repo: repo,
		gen:  gen,
		now:  time.Now,
	}
}

// GetOrCreateToday returns today's inspiration, generating and persisting it on
// the first request of the day. It only errors on configuration problems; every
// upstream or persistence failure still yields content, falling back to the
// default pairing after the attempt budget is spent.
func (s *InspirationService) GetOrCreateToday(ctx context.Context) (*Inspiration, error) {
	today := s.now().UTC().Format(dateLayout)

	existing, err := s.repo.GetByDate(ctx, today)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		log.Printf("error reading today's inspiration: %v", err)
	}

	since := s.now().UTC().AddDate(0, 0, -historyDays).Format(dateLayout)
	history, err := s.repo.GetSince(ctx, since)
	if err != nil {
		// The uniqueness guard degrades to best-effort this request.
		log.Printf("error loading inspiration history: %v", err)
		history = nil
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		raw, err := s.gen.Generate(ctx, buildDailyPrompt(attempt))
		if err != nil {
			if errors.Is(err, genai.ErrMissingAPIKey) {
				return nil, err
			}
			log.Printf("inspiration attempt %d: upstream error: %v", attempt, err)
			continue
		}

		candidate, err := parseGenerated(raw, today)
		if err != nil {
			log.Printf("inspiration attempt %d: %v", attempt, err)
			continue
		}

		if duplicatesHistory(candidate, history) {
			log.Printf("inspiration attempt %d: content duplicates recent history", attempt)
			continue
		}

		if err := s.repo.Insert(ctx, candidate); err != nil {
			if errors.Is(err, ErrAlreadyExists) {
				// A concurrent request won the insert; serve its row.
				if winner, readErr := s.repo.GetByDate(ctx, today); readErr == nil {
					return winner, nil
				}
			}
			// Serve the generated content unsaved so a later request retries.
			log.Printf("failed to persist today's inspiration: %v", err)
		}
		return candidate, nil
	}

	log.Printf("all %d inspiration attempts failed, serving default content", maxAttempts)
	return defaultInspiration(today), nil
}

func buildDailyPrompt(attempt int) string {
	return fmt.Sprintf("Generate a daily inspiration with a Quranic verse and a Hadith. "+
		"Provide the Quranic verse in Arabic and English, along with its Surah and Ayah number. "+
		"Also provide a relevant Hadith with its source. "+
		"Format the response as a JSON object with fields "+
		`{"quranicVerse": {"arabic", "english", "surah", "ayah"}, "hadith": {"text", "source"}} `+
		"without any markdown formatting. "+
		"This is attempt number %d, please ensure the content is different from previous attempts.", attempt)
}

func parseGenerated(raw, date string) (*Inspiration, error) {
	payload, err := textutil.ExtractJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("no JSON payload in generated content: %w", err)
	}

	var content generatedContent
	if err := json.Unmarshal([]byte(payload), &content); err != nil {
		return nil, fmt.Errorf("failed to parse generated content: %w", err)
	}

	v := content.QuranicVerse
	h := content.Hadith
	if v.Arabic == "" || v.English == "" || v.Surah == "" || v.Ayah == "" || h.Text == "" {
		return nil, errors.New("generated content is missing required fields")
	}

	hadith := h.Text
	if h.Source != "" {
		hadith = fmt.Sprintf("%s (%s)", h.Text, h.Source)
	}

	return &Inspiration{
		Date:         date,
		VerseArabic:  v.Arabic,
		VerseEnglish: v.English,
		SurahName:    v.Surah,
		AyahNumber:   v.Ayah,
		HadithText:   hadith,
	}, nil
}

// duplicatesHistory reports whether the candidate repeats an ayah number or
// hadith already served in the trailing window. String equality is the
// authoritative guard; the attempt hint in the prompt is only a bias.
func duplicatesHistory(candidate *Inspiration, history []Inspiration) bool {
	for _, past := range history {
		if past.AyahNumber == candidate.AyahNumber || past.HadithText == candidate.HadithText {
			return true
		}
	}
	return false
}

// defaultInspiration is served, unsaved, when generation fails outright, so a
// later request gets another chance at real content.
func defaultInspiration(date string) *Inspiration {
	return &Inspiration{
		Date:         date,
		VerseArabic:  "وَإِذَا سَأَلَكَ عِبَادِي عَنِّي فَإِنِّي قَرِيبٌ ۖ أُجِيبُ دَعْوَةَ الدَّاعِ إِذَا دَعَانِ",
		VerseEnglish: "And when My servants ask you concerning Me, indeed I am near. I respond to the invocation of the supplicant when he calls upon Me.",
		SurahName:    "Al-Baqarah",
		AyahNumber:   "186",
		HadithText:   "The Prophet (ﷺ) said, 'The best among you are those who have the best manners and character.' (Sahih al-Bukhari)",
	}
}
