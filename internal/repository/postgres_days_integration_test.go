//go:build integration

package repository

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"testing"
	"time"

	"smoketaper/internal/domain"
	"smoketaper/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestDB(t *testing.T) *sql.DB {
	cfg := &database.Config{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnvInt("TEST_DB_PORT", 5432),
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		Database: getEnv("TEST_DB_NAME", "smoketaper"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		t.Skipf("Skipping integration test: cannot connect to database: %v", err)
		return nil
	}
	return db
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func cleanupDay(t *testing.T, db *sql.DB, date string) {
	t.Helper()
	_, _ = db.Exec(`DELETE FROM days WHERE date = $1`, date)
}

func TestPostgresDaysRepo_CreateAndFetch(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewPostgresDaysRepo(db)
	rems := NewPostgresRemindersRepo(db)
	ctx := context.Background()

	const date = "2031-01-01"
	cleanupDay(t, db, date)
	defer cleanupDay(t, db, date)

	day, err := repo.CreateDay(ctx, &domain.Day{
		Date: date, WakeTime: "06:00", SleepTime: "23:00", TargetCigarettes: 2,
	}, []string{"10:15", "18:45"})
	require.NoError(t, err)
	require.NotEmpty(t, day.ID)
	assert.Equal(t, date, day.Date)
	assert.False(t, day.CreatedAt.IsZero())

	got, err := repo.GetDayByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, day.ID, got.ID)

	list, err := rems.ListByDay(ctx, day.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "10:15", list[0].Time)
	assert.Equal(t, "18:45", list[1].Time)
	assert.False(t, list[0].Completed)
}

func TestPostgresDaysRepo_DuplicateDate(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewPostgresDaysRepo(db)
	ctx := context.Background()

	const date = "2031-01-02"
	cleanupDay(t, db, date)
	defer cleanupDay(t, db, date)

	_, err := repo.CreateDay(ctx, &domain.Day{
		Date: date, WakeTime: "06:00", SleepTime: "23:00", TargetCigarettes: 1,
	}, []string{"14:30"})
	require.NoError(t, err)

	_, err = repo.CreateDay(ctx, &domain.Day{
		Date: date, WakeTime: "07:00", SleepTime: "22:00", TargetCigarettes: 1,
	}, []string{"14:30"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestPostgresDaysRepo_UpdateRegenerates(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewPostgresDaysRepo(db)
	rems := NewPostgresRemindersRepo(db)
	ctx := context.Background()

	const date = "2031-01-03"
	cleanupDay(t, db, date)
	defer cleanupDay(t, db, date)

	day, err := repo.CreateDay(ctx, &domain.Day{
		Date: date, WakeTime: "06:00", SleepTime: "23:00", TargetCigarettes: 3,
	}, []string{"08:50", "14:30", "20:10"})
	require.NoError(t, err)

	before, err := rems.ListByDay(ctx, day.ID)
	require.NoError(t, err)
	require.Len(t, before, 3)
	_, err = rems.Complete(ctx, before[0].ID, time.Now())
	require.NoError(t, err)

	updated, err := repo.UpdateDay(ctx, day.ID, "07:00", "22:00", 5,
		[]string{"08:30", "11:30", "14:30", "17:30", "20:30"})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.TargetCigarettes)
	assert.Equal(t, date, updated.Date)

	after, err := rems.ListByDay(ctx, day.ID)
	require.NoError(t, err)
	require.Len(t, after, 5)
	for _, r := range after {
		assert.False(t, r.Completed)
		assert.Nil(t, r.CompletedAt)
	}
}

func TestPostgresRemindersRepo_CompleteAndDelete(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewPostgresDaysRepo(db)
	rems := NewPostgresRemindersRepo(db)
	ctx := context.Background()

	const date = "2031-01-04"
	cleanupDay(t, db, date)
	defer cleanupDay(t, db, date)

	day, err := repo.CreateDay(ctx, &domain.Day{
		Date: date, WakeTime: "06:00", SleepTime: "22:00", TargetCigarettes: 2,
	}, []string{"10:00", "18:00"})
	require.NoError(t, err)

	list, err := rems.ListByDay(ctx, day.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	done, err := rems.Complete(ctx, list[0].ID, time.Now())
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)

	require.NoError(t, rems.Delete(ctx, list[1].ID))
	err = rems.Delete(ctx, list[1].ID)
	assert.True(t, domain.IsNotFound(err))

	left, err := rems.ListByDay(ctx, day.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, list[0].ID, left[0].ID)
}
