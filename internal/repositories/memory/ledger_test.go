package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerAppendListGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRiskRepository(SampleRiskAssessments()...)

	stored, err := repo.Append(ctx, domain.RiskAssessment{Company: "Acme", RiskType: "Transfer Pricing", RiskLevel: "Low"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.ID)
	assert.Equal(t, "RISK002", stored.Ref())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Acme", list[0].Company, "newest record first")
	assert.Equal(t, "RISK001", list[1].Ref())

	got, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Liberia Mining Co.", got.Company)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLedgerConcurrentAppendsGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewTaxReturnRepository()

	const writers = 50
	ids := make(chan int64, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := repo.Append(ctx, domain.TaxReturn{Company: "Acme"})
			if assert.NoError(t, err) {
				ids <- rec.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, writers)
	assert.Equal(t, writers, repo.Len())
}

func TestLedgerAppendHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewComplianceRepository()
	_, err := repo.Append(ctx, domain.ComplianceRecord{Company: "Acme"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, repo.Len())
}

func TestGSTAppendBatchKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewGSTCalculationRepository()

	stored, err := repo.AppendBatch(ctx, []domain.GSTCalculation{{CompanyName: "A"}, {CompanyName: "B"}})
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, int64(1), stored[0].ID)
	assert.Equal(t, "B", stored[1].CompanyName)
	assert.Equal(t, int64(2), stored[1].ID)
}

func TestGSTListPageWalksNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewGSTCalculationRepository()
	_, err := repo.AppendBatch(ctx, []domain.GSTCalculation{
		{CompanyName: "A"}, {CompanyName: "B"}, {CompanyName: "C"}, {CompanyName: "D"}, {CompanyName: "E"},
	})
	require.NoError(t, err)

	page, err := repo.ListPage(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(5), page[0].ID)
	assert.Equal(t, int64(4), page[1].ID)

	page, err = repo.ListPage(ctx, page[1].ID, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "C", page[0].CompanyName)
	assert.Equal(t, "B", page[1].CompanyName)

	page, err = repo.ListPage(ctx, page[1].ID, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "A", page[0].CompanyName)
}

func TestUserRepositoryRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.SaveUser(ctx, domain.User{UserID: "u1", Email: "a@example.com", Role: domain.RoleUser}))
	err := repo.SaveUser(ctx, domain.User{UserID: "u2", Email: "a@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	u, err := repo.FindUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UserID)

	_, err = repo.FindUserByEmail(ctx, "A@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "lookup is case-sensitive")

	_, err = repo.FindUserByID(ctx, "u2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSessionStoreExpiresRevocations(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Revoke(ctx, "s1", time.Minute))
	revoked, err := store.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, err = store.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = store.IsRevoked(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestLockerSerializesHolders(t *testing.T) {
	ctx := context.Background()
	locker := NewLocker(50 * time.Millisecond)

	release, err := locker.Obtain(ctx, "export:compliance", time.Minute)
	require.NoError(t, err)

	_, err = locker.Obtain(ctx, "export:compliance", time.Minute)
	assert.ErrorIs(t, err, portsrepo.ErrLockNotObtained)

	other, err := locker.Obtain(ctx, "export:risk_assessments", time.Minute)
	require.NoError(t, err)
	require.NoError(t, other(ctx))

	require.NoError(t, release(ctx))
	again, err := locker.Obtain(ctx, "export:compliance", time.Minute)
	require.NoError(t, err)
	require.NoError(t, again(ctx))
}

func TestLockerTakesOverExpiredLease(t *testing.T) {
	ctx := context.Background()
	locker := NewLocker(0)

	_, err := locker.Obtain(ctx, "k", time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	release, err := locker.Obtain(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.NoError(t, release(ctx))
}
