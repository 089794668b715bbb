package subscription

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dualinkhq/dualink-api/pkg/config"
	"github.com/dualinkhq/dualink-api/pkg/util"
)

// StartScheduler runs the daily inspiration delivery job on a schedule.
// - In dev: checks every 1 hour.
// - In prod: checks every 24 hours.
func (s *SubscriptionService) StartScheduler(ctx context.Context) {
	tickerDuration := time.Hour

	appEnv := config.GetAppEnv()
	if appEnv == "production" {
		tickerDuration = 24 * time.Hour
	}

	ticker := time.NewTicker(tickerDuration)
	defer ticker.Stop()

	log.Printf("Inspiration delivery scheduler started (%s interval)\n", tickerDuration)

	for {
		select {
		case <-ctx.Done():
			log.Println("Scheduler stopped gracefully")
			return
		case <-ticker.C:
			s.runDailyDelivery(ctx)
		}
	}
}

// runDailyDelivery emails today's inspiration to every subscriber who opted in
// and hasn't received one yet today.
func (s *SubscriptionService) runDailyDelivery(ctx context.Context) {
	subs, err := s.repo.GetSubscribed(ctx)
	if err != nil {
		log.Printf("Failed to fetch subscribers for delivery: %v", err)
		return
	}

	log.Printf("Running inspiration delivery check for %d subscribers\n", len(subs))

	insp, err := s.inspService.GetOrCreateToday(ctx)
	if err != nil {
		log.Printf("Failed to load today's inspiration: %v", err)
		return
	}

	today := time.Now().UTC().Format("2006-01-02")

	for _, sub := range subs {
		if !sub.EmailOptIn {
			continue
		}
		if sub.LastSentAt != nil && sub.LastSentAt.UTC().Format("2006-01-02") == today {
			continue
		}

		go func(sub Subscriber) {
			token, err := util.GenerateUnsubscribeToken(sub.ID.String(), sub.Email)
			if err != nil {
				log.Printf("Skipping subscriber %s: %v", sub.Email, err)
				return
			}

			data := map[string]interface{}{
				"VerseArabic":    insp.VerseArabic,
				"VerseEnglish":   insp.VerseEnglish,
				"SurahName":      insp.SurahName,
				"AyahNumber":     insp.AyahNumber,
				"HadithText":     insp.HadithText,
				"UnsubscribeURL": fmt.Sprintf("https://dualink.app/unsubscribe?token=%s", token),
			}

			subject := fmt.Sprintf("Your Daily Inspiration for %s", insp.Date)

			if err := s.mail.SendHTML(sub.Email, subject, "inspiration.html", data); err != nil {
				log.Printf("Failed to send inspiration to %s: %v", sub.Email, err)
				return
			}

			if err := s.repo.UpdateLastSentAt(ctx, sub.ID, time.Now()); err != nil {
				log.Printf("Could not update last sent date for %s: %v", sub.Email, err)
			}

			log.Printf("Inspiration sent to %s (%s)", sub.Email, insp.Date)
		}(sub)
	}
}
