package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webloom-dev/webloom/internal/application/credits/dto"
	domainCredits "github.com/webloom-dev/webloom/internal/domain/credits"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	vo "github.com/webloom-dev/webloom/internal/domain/user/valueobjects"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/id"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

type memLedgerRepo struct {
	domainCredits.Repository
	ledgers map[uint]*domainCredits.Ledger
}

func (m *memLedgerRepo) GetByUserID(_ context.Context, userID uint) (*domainCredits.Ledger, error) {
	return m.ledgers[userID], nil
}

func (m *memLedgerRepo) Update(_ context.Context, _ *domainCredits.Ledger) error {
	return nil
}

func (m *memLedgerRepo) ConsumeAtomic(_ context.Context, userID uint, n int64) (bool, error) {
	l := m.ledgers[userID]
	if l == nil || !l.HasEnough(n) {
		return false, nil
	}
	return true, nil
}

func (m *memLedgerRepo) GrantAtomic(_ context.Context, userID uint, n int64) error {
	l := m.ledgers[userID]
	if l == nil {
		return errors.NewNotFoundError("credit ledger not found")
	}
	return l.Grant(n)
}

type memUserRepo struct {
	domainUser.Repository
	users map[string]*domainUser.User
}

func (m *memUserRepo) GetBySID(_ context.Context, sid string) (*domainUser.User, error) {
	return m.users[sid], nil
}

type passTxManager struct{}

func (passTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newLedger(t *testing.T, userID uint, credits int64, freq domainCredits.ResetFrequency) *domainCredits.Ledger {
	t.Helper()
	l, err := domainCredits.NewLedger(userID, credits, freq)
	require.NoError(t, err)
	l.SetID(userID)
	return l
}

func TestGetBalance(t *testing.T) {
	repo := &memLedgerRepo{ledgers: map[uint]*domainCredits.Ledger{
		1: newLedger(t, 1, 20, domainCredits.ResetMonthly),
	}}
	uc := NewGetBalanceUseCase(repo, logger.NewNop())

	balance, err := uc.Execute(context.Background(), Actor{UserID: 1, Role: authorization.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, int64(20), balance.Credits)
	assert.Equal(t, int64(20), balance.Remaining)
	assert.Equal(t, "monthly", balance.Frequency)
	assert.NotNil(t, balance.NextResetAt)
}

func TestGetBalance_AppliesDueReset(t *testing.T) {
	// rebuild a ledger whose reset instant is already in the past
	past := time.Now().UTC().AddDate(0, -2, 0)
	due := past.AddDate(0, 1, 0)
	l, err := domainCredits.ReconstructLedger(1, 1, 20, 15, domainCredits.ResetMonthly, past, &due, 3, past, past)
	require.NoError(t, err)

	repo := &memLedgerRepo{ledgers: map[uint]*domainCredits.Ledger{1: l}}
	uc := NewGetBalanceUseCase(repo, logger.NewNop())

	balance, err := uc.Execute(context.Background(), Actor{UserID: 1, Role: authorization.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance.UsedCredits)
	assert.Equal(t, int64(20), balance.Remaining)
	// the catch-up schedules the next reset in the future
	require.NotNil(t, balance.NextResetAt)
	assert.True(t, balance.NextResetAt.After(time.Now().UTC()))
}

func TestGetBalance_MissingLedger(t *testing.T) {
	repo := &memLedgerRepo{ledgers: map[uint]*domainCredits.Ledger{}}
	uc := NewGetBalanceUseCase(repo, logger.NewNop())

	_, err := uc.Execute(context.Background(), Actor{UserID: 9, Role: authorization.RoleUser})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestConsumeCredits(t *testing.T) {
	repo := &memLedgerRepo{ledgers: map[uint]*domainCredits.Ledger{
		1: newLedger(t, 1, 10, domainCredits.ResetMonthly),
	}}
	uc := NewConsumeCreditsUseCase(repo, passTxManager{}, logger.NewNop())
	actor := Actor{UserID: 1, Role: authorization.RoleUser}
	ctx := context.Background()

	balance, err := uc.Execute(ctx, actor, dto.ConsumeCreditsRequest{Amount: 4, Reason: "hero copy"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), balance.Remaining)

	// overdraw is refused and the balance stays put
	_, err = uc.Execute(ctx, actor, dto.ConsumeCreditsRequest{Amount: 7})
	assert.True(t, errors.IsForbiddenError(err))

	balance, err = NewGetBalanceUseCase(repo, logger.NewNop()).Execute(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, int64(6), balance.Remaining)
}

func TestGrantCredits_AdminOnly(t *testing.T) {
	addr, err := vo.NewEmail("target@example.com")
	require.NoError(t, err)
	target, err := domainUser.NewUser(addr, "$2a$12$hash", domainUser.PlanLimits{
		MaxSites: 10, MaxPagesPerSite: 50, MaxSectionsPerPage: 50,
	}, id.NewUserID)
	require.NoError(t, err)
	target.SetID(2)

	ledgerRepo := &memLedgerRepo{ledgers: map[uint]*domainCredits.Ledger{
		2: newLedger(t, 2, 20, domainCredits.ResetMonthly),
	}}
	userRepo := &memUserRepo{users: map[string]*domainUser.User{target.SID(): target}}
	uc := NewGrantCreditsUseCase(ledgerRepo, userRepo, logger.NewNop())
	ctx := context.Background()

	_, err = uc.Execute(ctx, Actor{UserID: 1, Role: authorization.RoleUser},
		dto.GrantCreditsRequest{UserID: target.SID(), Amount: 50})
	assert.True(t, errors.IsForbiddenError(err))

	balance, err := uc.Execute(ctx, Actor{UserID: 1, Role: authorization.RoleAdmin},
		dto.GrantCreditsRequest{UserID: target.SID(), Amount: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(70), balance.Credits)

	_, err = uc.Execute(ctx, Actor{UserID: 1, Role: authorization.RoleAdmin},
		dto.GrantCreditsRequest{UserID: "usr_missing", Amount: 50})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateResetFrequency(t *testing.T) {
	addr, err := vo.NewEmail("target@example.com")
	require.NoError(t, err)
	target, err := domainUser.NewUser(addr, "$2a$12$hash", domainUser.PlanLimits{
		MaxSites: 10, MaxPagesPerSite: 50, MaxSectionsPerPage: 50,
	}, id.NewUserID)
	require.NoError(t, err)
	target.SetID(2)

	ledgerRepo := &memLedgerRepo{ledgers: map[uint]*domainCredits.Ledger{
		2: newLedger(t, 2, 20, domainCredits.ResetMonthly),
	}}
	userRepo := &memUserRepo{users: map[string]*domainUser.User{target.SID(): target}}
	uc := NewUpdateResetFrequencyUseCase(ledgerRepo, userRepo, logger.NewNop())
	ctx := context.Background()

	balance, err := uc.Execute(ctx, Actor{UserID: 1, Role: authorization.RoleAdmin},
		dto.UpdateResetFrequencyRequest{UserID: target.SID(), Frequency: "daily"})
	require.NoError(t, err)
	assert.Equal(t, "daily", balance.Frequency)

	balance, err = uc.Execute(ctx, Actor{UserID: 1, Role: authorization.RoleAdmin},
		dto.UpdateResetFrequencyRequest{UserID: target.SID(), Frequency: "never"})
	require.NoError(t, err)
	assert.Nil(t, balance.NextResetAt)
}
