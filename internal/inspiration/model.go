package inspiration

import "time"

// Inspiration is one day's verse and hadith pairing. At most one row exists
// per calendar date; rows are never updated or deleted.
type Inspiration struct {
	ID           int       `json:"id"`
	Date         string    `json:"date"`
	VerseArabic  string    `json:"verse_arabic"`
	VerseEnglish string    `json:"verse_english"`
	SurahName    string    `json:"surah_name"`
	AyahNumber   string    `json:"ayah_number"`
	HadithText   string    `json:"hadith_text"`
	CreatedAt    time.Time `json:"created_at"`
}

type QuranVerse struct {
	Arabic  string `json:"arabic"`
	English string `json:"english"`
	Surah   string `json:"surah"`
	Ayah    string `json:"ayah"`
}

// DailyInspirationResponse is the wire shape served to the UI.
type DailyInspirationResponse struct {
	Date       string     `json:"date"`
	QuranVerse QuranVerse `json:"quranVerse"`
	Hadith     string     `json:"hadith"`
}

// generatedContent is the structure the model is prompted to return.
type generatedContent struct {
	QuranicVerse struct {
		Arabic  string `json:"arabic"`
		English string `json:"english"`
		Surah   string `json:"surah"`
		Ayah    string `json:"ayah"`
	} `json:"quranicVerse"`
	Hadith struct {
		Text   string `json:"text"`
		Source string `json:"source"`
	} `json:"hadith"`
}

func (i *Inspiration) ToResponse() DailyInspirationResponse {
	return DailyInspirationResponse{
		Date: i.Date,
		QuranVerse: QuranVerse{
			Arabic:  i.VerseArabic,
			English: i.VerseEnglish,
			Surah:   i.SurahName,
			Ayah:    i.AyahNumber,
		},
		Hadith: i.HadithText,
	}
}
