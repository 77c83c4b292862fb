package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fd-calculator/domain"
)

func newRecord(kind string, at time.Time) domain.CalculationRecord {
	return domain.CalculationRecord{
		ID:             uuid.NewString(),
		Kind:           kind,
		Principal:      decimal.RequireFromString("100000"),
		InterestRate:   decimal.RequireFromString("7.25"),
		TenureInMonths: 12,
		InterestEarned: decimal.RequireFromString("7250.00"),
		MaturityAmount: decimal.RequireFromString("107250.00"),
		CreatedAt:      at,
	}
}

// exerciseRepository runs the shared contract against any implementation.
func exerciseRepository(t *testing.T, repo CalculationRepository) {
	ctx := context.Background()
	base := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

	empty, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := newRecord(domain.RecordStandalone, base)
	second := newRecord(domain.RecordProduct, base.Add(time.Second))
	second.ProductID = 3
	second.Subject = "customer-9"
	third := newRecord(domain.RecordCompare, base.Add(1500*time.Millisecond))

	for _, rec := range []domain.CalculationRecord{first, second, third} {
		require.NoError(t, repo.Save(ctx, rec))
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, third.ID, recent[0].ID)
	assert.Equal(t, second.ID, recent[1].ID)
	assert.Equal(t, int64(3), recent[1].ProductID)
	assert.Equal(t, "customer-9", recent[1].Subject)
	assert.True(t, recent[1].MaturityAmount.Equal(second.MaturityAmount))
	assert.True(t, recent[1].CreatedAt.Equal(second.CreatedAt))

	all, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCalculationRepositoryMemory(t *testing.T) {
	exerciseRepository(t, NewCalculationRepositoryMemory())
}

func TestCalculationRepositoryMemoryConcurrentSave(t *testing.T) {
	repo := NewCalculationRepositoryMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Save(context.Background(), newRecord(domain.RecordStandalone, time.Now()))
		}()
	}
	wg.Wait()

	all, err := repo.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}

func TestCalculationRepositorySQLite(t *testing.T) {
	repo, err := NewCalculationRepositorySQLite(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	exerciseRepository(t, repo)
}

func TestCalculationRepositorySQLiteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	repo, err := NewCalculationRepositorySQLite(path)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		rec := newRecord(domain.RecordStandalone, time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC))
		rec.Principal = decimal.RequireFromString(fmt.Sprintf("1000.%d5", i))
		require.NoError(t, repo.Save(context.Background(), rec))
	}
	require.NoError(t, repo.Close())

	reopened, err := NewCalculationRepositorySQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	recent, err := reopened.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "1000.25", recent[0].Principal.String())
}
