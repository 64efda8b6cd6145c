//go:build integration

package repository_puzzle_grid

import (
	"context"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/domain"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/Super-Badmen-Viper/JazzGrid/mongo"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.uber.org/zap"
)

const (
	testDate      = "2026-10-16"
	yesterdayDate = "2026-10-15"
)

var (
	testClient mongo.Client
	faker      = gofakeit.New(20261016)
)

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		log.Fatalf("failed to start mongodb container: %v", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		log.Fatalf("failed to get mongodb connection string: %v", err)
	}

	testClient, err = mongo.NewClient(uri)
	if err == nil {
		err = testClient.Connect(ctx)
	}
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		log.Fatalf("failed to connect to mongodb: %v", err)
	}

	code := m.Run()

	_ = testClient.Disconnect(context.Background())
	if err := testcontainers.TerminateContainer(container); err != nil {
		log.Printf("failed to terminate mongodb container: %v", err)
	}
	os.Exit(code)
}

type stores struct {
	guesses puzzle_grid_interface.GuessRepository
	results puzzle_grid_interface.ResultRepository
}

// newStores 每个测试使用独立数据库，并建好唯一索引
func newStores(t *testing.T) stores {
	t.Helper()
	db := testClient.Database("jazzgrid_" + strings.ToLower(faker.LetterN(12)))
	require.NoError(t, mongo.CreateIndexes(db, zap.NewNop()))

	return stores{
		guesses: NewGuessRepository(db, domain.CollectionPuzzleGridGuesses),
		results: NewResultRepository(db, domain.CollectionPuzzleGridResults),
	}
}

func newGuess(userID string, row, col int, album string) *puzzle_grid_models.GuessMetadata {
	return &puzzle_grid_models.GuessMetadata{
		UserID:     userID,
		PuzzleDate: testDate,
		RowIndex:   row,
		ColIndex:   col,
		Album:      album,
		Cover:      faker.URL(),
	}
}

func TestGuessRepository_UniquePerPlayerCell(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	userID := faker.UUID()
	cell := puzzle_grid_models.CellKey{PuzzleDate: testDate, RowIndex: 1, ColIndex: 2}

	first := newGuess(userID, 1, 2, "Kind Of Blue")
	require.NoError(t, s.guesses.Insert(ctx, first))
	assert.False(t, first.ID.IsZero())

	err := s.guesses.Insert(ctx, newGuess(userID, 1, 2, "Sketches Of Spain"))
	assert.ErrorIs(t, err, domain.ErrAlreadyGuessed)

	count, err := s.guesses.CountForPlayerCell(ctx, userID, cell)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 其他玩家同一格子不受影响
	require.NoError(t, s.guesses.Insert(ctx, newGuess(faker.UUID(), 1, 2, "Kind Of Blue")))
	total, err := s.guesses.CountForCell(ctx, cell)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestGuessRepository_RarityCounts(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	cell := puzzle_grid_models.CellKey{PuzzleDate: testDate, RowIndex: 0, ColIndex: 0}

	for _, album := range []string{"Kind Of Blue", "Kind Of Blue", "Milestones"} {
		require.NoError(t, s.guesses.Insert(ctx, newGuess(faker.UUID(), 0, 0, album)))
	}
	// 不同日期不计入
	other := newGuess(faker.UUID(), 0, 0, "Kind Of Blue")
	other.PuzzleDate = yesterdayDate
	require.NoError(t, s.guesses.Insert(ctx, other))

	albumCount, err := s.guesses.CountAlbumForCell(ctx, cell, "Kind Of Blue")
	require.NoError(t, err)
	totalCount, err := s.guesses.CountForCell(ctx, cell)
	require.NoError(t, err)

	assert.Equal(t, int64(2), albumCount)
	assert.Equal(t, int64(3), totalCount)
}

func TestGuessRepository_SetRarityAndSum(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	userID := faker.UUID()

	rarities := []float64{100, 50, 33.3}
	for i, rarity := range rarities {
		g := newGuess(userID, 0, i, faker.Word())
		require.NoError(t, s.guesses.Insert(ctx, g))
		require.NoError(t, s.guesses.SetRarity(ctx, g.ID, rarity))
	}
	// rarity 仍为 null 的记录按 0 计
	require.NoError(t, s.guesses.Insert(ctx, newGuess(userID, 1, 0, faker.Word())))

	count, err := s.guesses.CountForPlayer(ctx, userID, testDate)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	sum, err := s.guesses.SumRarityForPlayer(ctx, userID, testDate)
	require.NoError(t, err)
	assert.InDelta(t, 183.3, sum, 1e-9)

	stored, err := s.guesses.GetForPlayer(ctx, userID, testDate)
	require.NoError(t, err)
	require.Len(t, stored, 4)
	require.NotNil(t, stored[0].Rarity)
	assert.Equal(t, 100.0, *stored[0].Rarity)
	assert.Nil(t, stored[3].Rarity)
	assert.Equal(t, 1, stored[3].RowIndex)
}

func TestGuessRepository_SumForUnknownPlayer(t *testing.T) {
	s := newStores(t)

	sum, err := s.guesses.SumRarityForPlayer(context.Background(), faker.UUID(), testDate)
	require.NoError(t, err)
	assert.Zero(t, sum)
}

func TestResultRepository_UpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	userID := faker.UUID()
	username := faker.Username()

	for _, score := range []float64{420, 380.5} {
		require.NoError(t, s.results.UpsertTotal(ctx, &puzzle_grid_models.ResultMetadata{
			UserID:     userID,
			Username:   username,
			PuzzleDate: testDate,
			TotalScore: score,
		}))
	}

	top, err := s.results.GetTopByDate(ctx, testDate, puzzle_grid_models.LeaderboardLimit)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, username, top[0].Username)
	assert.Equal(t, 380.5, top[0].TotalScore)
	assert.NotZero(t, top[0].CreatedAt)
}

func TestResultRepository_LeaderboardOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)

	for i := 0; i < 12; i++ {
		require.NoError(t, s.results.UpsertTotal(ctx, &puzzle_grid_models.ResultMetadata{
			UserID:     faker.UUID(),
			Username:   faker.Username(),
			PuzzleDate: testDate,
			TotalScore: faker.Float64Range(1, 900),
		}))
	}
	// 昨天的最低分不应出现
	require.NoError(t, s.results.UpsertTotal(ctx, &puzzle_grid_models.ResultMetadata{
		UserID:     faker.UUID(),
		Username:   "yesterday",
		PuzzleDate: yesterdayDate,
		TotalScore: 0,
	}))

	top, err := s.results.GetTopByDate(ctx, testDate, puzzle_grid_models.LeaderboardLimit)
	require.NoError(t, err)
	require.Len(t, top, puzzle_grid_models.LeaderboardLimit)
	for i := 1; i < len(top); i++ {
		assert.LessOrEqual(t, top[i-1].TotalScore, top[i].TotalScore)
		assert.NotEqual(t, "yesterday", top[i].Username)
	}
}

func TestResultRepository_TiesBrokenByFinishTime(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)

	for _, name := range []string{"early", "late"} {
		require.NoError(t, s.results.UpsertTotal(ctx, &puzzle_grid_models.ResultMetadata{
			UserID:     faker.UUID(),
			Username:   name,
			PuzzleDate: testDate,
			TotalScore: 250,
		}))
		time.Sleep(5 * time.Millisecond)
	}

	top, err := s.results.GetTopByDate(ctx, testDate, puzzle_grid_models.LeaderboardLimit)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "early", top[0].Username)
	assert.Equal(t, "late", top[1].Username)
}

func TestDeleteForPlayer_OnlyTouchesPlayerAndDate(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	userID := faker.UUID()
	otherID := faker.UUID()

	require.NoError(t, s.guesses.Insert(ctx, newGuess(userID, 0, 0, "Kind Of Blue")))
	require.NoError(t, s.guesses.Insert(ctx, newGuess(userID, 0, 1, "Giant Steps")))
	require.NoError(t, s.guesses.Insert(ctx, newGuess(otherID, 0, 0, "Kind Of Blue")))
	old := newGuess(userID, 0, 0, "Kind Of Blue")
	old.PuzzleDate = yesterdayDate
	require.NoError(t, s.guesses.Insert(ctx, old))
	require.NoError(t, s.results.UpsertTotal(ctx, &puzzle_grid_models.ResultMetadata{
		UserID: userID, Username: "me", PuzzleDate: testDate, TotalScore: 10,
	}))

	deleted, err := s.guesses.DeleteForPlayer(ctx, userID, testDate)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = s.results.DeleteForPlayer(ctx, userID, testDate)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := s.guesses.CountForPlayer(ctx, userID, yesterdayDate)
	require.NoError(t, err)
	assert.Equal(t, int64(1), remaining)

	remaining, err = s.guesses.CountForPlayer(ctx, otherID, testDate)
	require.NoError(t, err)
	assert.Equal(t, int64(1), remaining)
}
