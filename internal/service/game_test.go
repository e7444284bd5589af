package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"country-guess/internal/game"
	"country-guess/internal/model"
	"country-guess/internal/pkg/session"
)

// fakeCountryStore serves a fixed catalog from memory.
type fakeCountryStore struct {
	countries []model.Country
	err       error
}

func (f *fakeCountryStore) ListByDifficulties(_ context.Context, tiers []string) ([]model.Country, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(tiers) == 0 {
		return f.countries, nil
	}
	allowed := make(map[string]bool, len(tiers))
	for _, tier := range tiers {
		allowed[tier] = true
	}
	var out []model.Country
	for _, c := range f.countries {
		if allowed[c.Difficulty] {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeRankingStore appends records to a slice.
type fakeRankingStore struct {
	recs []*model.Ranking
	err  error
}

func (f *fakeRankingStore) Create(_ context.Context, rec *model.Ranking) (*model.Ranking, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *rec
	stored.ID = int64(len(f.recs) + 1)
	stored.CreatedAt = time.Now()
	f.recs = append(f.recs, &stored)
	return &stored, nil
}

func (f *fakeRankingStore) ListAll(_ context.Context) ([]*model.Ranking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]*model.Ranking(nil), f.recs...), nil
}

var testCatalog = []model.Country{
	{ID: 1, Name: "Japão", InitialLetter: "J", FlagCode: "jp", Difficulty: model.DifficultyEasy},
	{ID: 2, Name: "Brasil", InitialLetter: "B", FlagCode: "br", Difficulty: model.DifficultyEasy},
	{ID: 3, Name: "Chile", InitialLetter: "C", FlagCode: "cl", Difficulty: model.DifficultyMedium},
	{ID: 4, Name: "Butão", InitialLetter: "B", FlagCode: "bt", Difficulty: model.DifficultyHard},
}

func newTestService(countries []model.Country) (*GameService, *fakeRankingStore, *session.Store) {
	rankings := &fakeRankingStore{}
	sessions := session.NewStore()
	svc := NewGameService(&fakeCountryStore{countries: countries}, rankings, sessions, game.DefaultMaxWrongGuesses)
	return svc, rankings, sessions
}

func TestGameService_Start(t *testing.T) {
	svc, _, sessions := newTestService(testCatalog)

	res, err := svc.Start(context.Background(), "tok", model.DifficultyEasy)
	require.NoError(t, err)
	assert.Contains(t, []string{"J", "B"}, res.InitialLetter)

	p := sessions.Get("tok")
	require.NotNil(t, p)
	require.NotNil(t, p.Game)
	assert.Equal(t, game.StateActive, p.Game.State)
	assert.Equal(t, p.Game.Target.ID, p.LastCountryID)
}

func TestGameService_Start_EmptyPool(t *testing.T) {
	hardOnly := []model.Country{
		{ID: 4, Name: "Butão", InitialLetter: "B", FlagCode: "bt", Difficulty: model.DifficultyHard},
	}
	svc, _, _ := newTestService(hardOnly)

	_, err := svc.Start(context.Background(), "tok", model.DifficultyEasy)
	assert.ErrorIs(t, err, game.ErrEmptyPool)
}

// Consecutive games on the same token never serve the same country twice
// in a row while the pool has alternatives.
func TestGameService_Start_AntiRepeat(t *testing.T) {
	svc, _, sessions := newTestService(testCatalog)
	ctx := context.Background()

	last := int64(0)
	for i := 0; i < 100; i++ {
		_, err := svc.Start(ctx, "tok", model.DifficultyEasy)
		require.NoError(t, err)
		current := sessions.Get("tok").LastCountryID
		if last != 0 {
			assert.NotEqual(t, last, current, "round %d repeated country %d", i, last)
		}
		last = current
	}
}

func TestGameService_Guess_NoGame(t *testing.T) {
	svc, _, _ := newTestService(testCatalog)

	_, err := svc.Guess("tok", "Brasil")
	assert.ErrorIs(t, err, ErrNoActiveGame)
}

func TestGameService_GiveUp(t *testing.T) {
	svc, _, sessions := newTestService(testCatalog)
	ctx := context.Background()

	_, err := svc.Start(ctx, "tok", model.DifficultyEasy)
	require.NoError(t, err)
	target := sessions.Get("tok").Game.Target

	res, err := svc.GiveUp("tok")
	require.NoError(t, err)
	assert.Equal(t, "given_up", res.Status)
	assert.Equal(t, target.Name, res.CountryName)
	assert.Equal(t, target.FlagCode, res.FlagCode)

	// Game is gone, but the anti-repeat memory survives.
	p := sessions.Get("tok")
	require.NotNil(t, p)
	assert.Nil(t, p.Game)
	assert.Equal(t, target.ID, p.LastCountryID)

	_, err = svc.Guess("tok", "Brasil")
	assert.ErrorIs(t, err, ErrNoActiveGame)
}

func TestGameService_Save_RequiresWin(t *testing.T) {
	t.Run("active game rejected", func(t *testing.T) {
		svc, rankings, _ := newTestService(testCatalog)
		_, err := svc.Start(context.Background(), "tok", model.DifficultyEasy)
		require.NoError(t, err)

		err = svc.Save(context.Background(), "tok", "Ana")
		assert.ErrorIs(t, err, game.ErrNotWon)
		assert.Empty(t, rankings.recs)
	})

	t.Run("lost game rejected", func(t *testing.T) {
		rankings := &fakeRankingStore{}
		sessions := session.NewStore()
		svc := NewGameService(&fakeCountryStore{countries: testCatalog}, rankings, sessions, 1)

		_, err := svc.Start(context.Background(), "tok", model.DifficultyEasy)
		require.NoError(t, err)
		res, err := svc.Guess("tok", "definitely wrong")
		require.NoError(t, err)
		require.Equal(t, game.GuessLose, res.Status)

		err = svc.Save(context.Background(), "tok", "Ana")
		assert.ErrorIs(t, err, game.ErrNotWon)
		assert.Empty(t, rankings.recs)
	})

	t.Run("given-up game rejected", func(t *testing.T) {
		svc, rankings, _ := newTestService(testCatalog)
		_, err := svc.Start(context.Background(), "tok", model.DifficultyEasy)
		require.NoError(t, err)
		_, err = svc.GiveUp("tok")
		require.NoError(t, err)

		err = svc.Save(context.Background(), "tok", "Ana")
		assert.ErrorIs(t, err, ErrNoActiveGame)
		assert.Empty(t, rankings.recs)
	})

	t.Run("missing player name rejected", func(t *testing.T) {
		svc, rankings, sessions := newTestService(testCatalog)
		_, err := svc.Start(context.Background(), "tok", model.DifficultyEasy)
		require.NoError(t, err)
		_, err = svc.Guess("tok", sessions.Get("tok").Game.Target.Name)
		require.NoError(t, err)

		err = svc.Save(context.Background(), "tok", "")
		assert.ErrorIs(t, err, ErrPlayerNameRequired)
		assert.Empty(t, rankings.recs)
	})
}

// Full happy path: start at easy, win on the first guess with accents and
// case altered, save under a player name.
func TestGameService_WinAndSave(t *testing.T) {
	japanOnly := []model.Country{
		{ID: 1, Name: "Japão", InitialLetter: "J", FlagCode: "jp", Difficulty: model.DifficultyEasy},
	}
	svc, rankings, sessions := newTestService(japanOnly)
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := start
	svc.now = func() time.Time { return now }

	res, err := svc.Start(ctx, "tok", model.DifficultyEasy)
	require.NoError(t, err)
	assert.Equal(t, "J", res.InitialLetter)

	now = start.Add(8 * time.Second)
	guess, err := svc.Guess("tok", "  JAPAO ")
	require.NoError(t, err)
	assert.Equal(t, game.GuessWin, guess.Status)
	assert.Equal(t, "Japão", guess.CountryName)
	assert.Equal(t, "jp", guess.FlagCode)
	assert.Equal(t, 8.0, guess.TimeSpent)
	assert.Equal(t, 1, guess.Attempts)

	// The recorded time is recomputed at save time, not the win-time value.
	now = start.Add(11 * time.Second)
	err = svc.Save(ctx, "tok", "Ana")
	require.NoError(t, err)

	require.Len(t, rankings.recs, 1)
	rec := rankings.recs[0]
	assert.Equal(t, "Ana", rec.PlayerName)
	assert.Equal(t, "Japão", rec.CountryName)
	assert.Equal(t, model.DifficultyEasy, rec.Difficulty)
	assert.Equal(t, 1, rec.Attempts)
	assert.Equal(t, 11.0, rec.TimeSpent)

	// Session is fully cleared after a save.
	assert.Nil(t, sessions.Get("tok"))
	err = svc.Save(ctx, "tok", "Ana")
	assert.ErrorIs(t, err, ErrNoActiveGame)
}

func TestGameService_WrongGuessFlow(t *testing.T) {
	svc, _, sessions := newTestService(testCatalog)
	ctx := context.Background()

	_, err := svc.Start(ctx, "tok", model.DifficultyEasy)
	require.NoError(t, err)
	target := sessions.Get("tok").Game.Target

	res, err := svc.Guess("tok", "not a country")
	require.NoError(t, err)
	assert.Equal(t, game.GuessWrong, res.Status)
	assert.Equal(t, []string{"not a country"}, res.WrongGuesses)
	assert.Equal(t, 1, res.Attempts)
	assert.NotContains(t, res.Message, target.Name, "a wrong guess must not leak the target")
	assert.Empty(t, res.CountryName)
}

func TestGameService_Save_StorageFailure(t *testing.T) {
	japanOnly := []model.Country{
		{ID: 1, Name: "Japão", InitialLetter: "J", FlagCode: "jp", Difficulty: model.DifficultyEasy},
	}
	rankings := &fakeRankingStore{err: errors.New("connection refused")}
	sessions := session.NewStore()
	svc := NewGameService(&fakeCountryStore{countries: japanOnly}, rankings, sessions, game.DefaultMaxWrongGuesses)
	ctx := context.Background()

	_, err := svc.Start(ctx, "tok", model.DifficultyEasy)
	require.NoError(t, err)
	_, err = svc.Guess("tok", "Japão")
	require.NoError(t, err)

	err = svc.Save(ctx, "tok", "Ana")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoActiveGame)

	// The session survives a storage failure so the save can be retried.
	require.NotNil(t, sessions.Get("tok"))
	assert.NotNil(t, sessions.Get("tok").Game)
}
