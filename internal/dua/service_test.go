package dua

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	return g.response, g.err
}

type fakeRepo struct {
	duas      []Dua
	insertErr error
}

func (r *fakeRepo) Insert(ctx context.Context, d *Dua) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.duas = append(r.duas, *d)
	return nil
}

func (r *fakeRepo) List(ctx context.Context) ([]Dua, error) {
	return r.duas, nil
}

func (r *fakeRepo) IncrementResonance(ctx context.Context, id uuid.UUID) (*Dua, error) {
	for i := range r.duas {
		if r.duas[i].ID == id {
			r.duas[i].ResonanceCount++
			copied := r.duas[i]
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func TestSubmitDua_EmptyContent(t *testing.T) {
	gen := &fakeGenerator{}
	s := NewDuaService(&fakeRepo{}, gen)

	_, err := s.SubmitDua(context.Background(), "   \t\n")
	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.Zero(t, gen.calls, "validation errors never reach moderation")
}

func TestSubmitDua_RejectedIsNeverPersisted(t *testing.T) {
	repo := &fakeRepo{}
	gen := &fakeGenerator{response: `{"isAppropriate": false, "reason": "haram topic"}`}
	s := NewDuaService(repo, gen)

	result, err := s.SubmitDua(context.Background(), "something inappropriate")
	require.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, "haram topic", result.Reason)
	assert.Nil(t, result.Dua)
	assert.Empty(t, repo.duas)
}

func TestSubmitDua_ApprovedPersistsExactlyOne(t *testing.T) {
	repo := &fakeRepo{}
	gen := &fakeGenerator{response: `{
		"isAppropriate": true,
		"relatedText": "لَا يُكَلِّفُ اللَّهُ نَفْسًا إِلَّا وُسْعَهَا",
		"textTranslation": "Allah does not burden a soul beyond that it can bear.",
		"textReference": "Al-Baqarah: 286",
		"textType": "ayah"
	}`}
	s := NewDuaService(repo, gen)

	result, err := s.SubmitDua(context.Background(), "please pray for my exam")
	require.NoError(t, err)
	require.True(t, result.Approved)
	require.NotNil(t, result.Dua)

	require.Len(t, repo.duas, 1)
	stored := repo.duas[0]
	assert.Equal(t, "please pray for my exam", stored.Content)
	assert.Equal(t, "Al-Baqarah: 286", stored.TextReference)
	assert.Equal(t, TextTypeAyah, stored.TextType)
	assert.Equal(t, "Allah does not burden a soul beyond that it can bear.", stored.TextTranslation)
	assert.Zero(t, stored.ResonanceCount)
	assert.Equal(t, stored.ID, result.Dua.ID, "the inserted row is returned to the caller")
}

func TestSubmitDua_HadithReference(t *testing.T) {
	repo := &fakeRepo{}
	gen := &fakeGenerator{response: `{"isAppropriate": true, "relatedText": "نص", "textTranslation": "Actions are by intentions.", "textReference": "Sahih al-Bukhari 1", "textType": "hadith"}`}
	s := NewDuaService(repo, gen)

	result, err := s.SubmitDua(context.Background(), "pray my work goes well")
	require.NoError(t, err)
	assert.Equal(t, TextTypeHadith, result.Dua.TextType)
}

func TestSubmitDua_ProseWrappedVerdict(t *testing.T) {
	repo := &fakeRepo{}
	gen := &fakeGenerator{response: "Here is my evaluation:\n```json\n" +
		`{"isAppropriate": true, "relatedText": "آية", "textTranslation": "tr", "textReference": "An-Nas: 1", "textType": "ayah"}` +
		"\n```\nHope that helps!"}
	s := NewDuaService(repo, gen)

	result, err := s.SubmitDua(context.Background(), "pray for my family")
	require.NoError(t, err)
	assert.True(t, result.Approved)
	assert.Len(t, repo.duas, 1)
}

func TestSubmitDua_UnparseableVerdictIsHardError(t *testing.T) {
	repo := &fakeRepo{}
	gen := &fakeGenerator{response: "I think this dua is fine."}
	s := NewDuaService(repo, gen)

	_, err := s.SubmitDua(context.Background(), "pray for rain")
	assert.Error(t, err)
	assert.Empty(t, repo.duas)
	assert.Equal(t, 1, gen.calls, "moderation parse failures are not retried")
}

func TestSubmitDua_UpstreamErrorIsHardError(t *testing.T) {
	repo := &fakeRepo{}
	gen := &fakeGenerator{err: errors.New("status 503")}
	s := NewDuaService(repo, gen)

	_, err := s.SubmitDua(context.Background(), "pray for rain")
	assert.Error(t, err)
	assert.Empty(t, repo.duas)
}

func TestSubmitDua_PersistenceErrorIsHardError(t *testing.T) {
	repo := &fakeRepo{insertErr: ErrInternalServer}
	gen := &fakeGenerator{response: `{"isAppropriate": true, "relatedText": "آية", "textTranslation": "tr", "textReference": "Al-Ikhlas: 1", "textType": "ayah"}`}
	s := NewDuaService(repo, gen)

	_, err := s.SubmitDua(context.Background(), "pray for my health")
	assert.Error(t, err, "the caller must know the submission was not saved")
}

func TestIncrementResonance(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepo{duas: []Dua{{ID: id, Content: "pray for us", ResonanceCount: 5}}}
	s := NewDuaService(repo, &fakeGenerator{})

	d, err := s.IncrementResonance(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 6, d.ResonanceCount)

	_, err = s.IncrementResonance(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
