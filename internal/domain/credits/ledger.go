package credits

import (
	"fmt"
	"time"

	"github.com/webloom-dev/webloom/internal/shared/biztime"
)

// ResetFrequency controls when a ledger's used counter rolls back to zero.
type ResetFrequency string

const (
	ResetDaily   ResetFrequency = "daily"
	ResetWeekly  ResetFrequency = "weekly"
	ResetMonthly ResetFrequency = "monthly"
	ResetYearly  ResetFrequency = "yearly"
	ResetNever   ResetFrequency = "never"
)

func (f ResetFrequency) String() string {
	return string(f)
}

func (f ResetFrequency) IsValid() bool {
	switch f {
	case ResetDaily, ResetWeekly, ResetMonthly, ResetYearly, ResetNever:
		return true
	}
	return false
}

// Ledger tracks a user's AI credit allowance. Consumption is enforced
// atomically at the persistence layer; the aggregate methods mirror the
// same arithmetic for in-process checks and tests.
type Ledger struct {
	id          uint
	userID      uint
	credits     int64
	usedCredits int64
	frequency   ResetFrequency
	lastResetAt time.Time
	nextResetAt *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewLedger creates a ledger with the signup allowance. A nextResetAt is
// scheduled unless the frequency is never.
func NewLedger(userID uint, credits int64, frequency ResetFrequency) (*Ledger, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if credits < 0 {
		return nil, fmt.Errorf("credits cannot be negative")
	}
	if !frequency.IsValid() {
		return nil, fmt.Errorf("invalid reset frequency: %s", frequency)
	}

	now := biztime.NowUTC()
	l := &Ledger{
		userID:      userID,
		credits:     credits,
		frequency:   frequency,
		lastResetAt: now,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}
	l.scheduleNextReset(now)
	return l, nil
}

func (l *Ledger) scheduleNextReset(from time.Time) {
	if l.frequency == ResetNever {
		l.nextResetAt = nil
		return
	}
	next := biztime.AddPeriod(from, l.frequency.String())
	l.nextResetAt = &next
}

// Remaining returns the spendable balance.
func (l *Ledger) Remaining() int64 {
	return l.credits - l.usedCredits
}

// HasEnough reports whether n credits can be consumed right now.
func (l *Ledger) HasEnough(n int64) bool {
	return n > 0 && l.Remaining() >= n
}

// Consume spends n credits. The persistence layer enforces the same guard
// with a conditional update so concurrent spends cannot overdraw.
func (l *Ledger) Consume(n int64) error {
	if n <= 0 {
		return fmt.Errorf("consume amount must be positive")
	}
	if !l.HasEnough(n) {
		return fmt.Errorf("insufficient credits: have %d, need %d", l.Remaining(), n)
	}
	l.usedCredits += n
	l.touch()
	return nil
}

// Grant raises the allowance by n, e.g. after a credit purchase.
func (l *Ledger) Grant(n int64) error {
	if n <= 0 {
		return fmt.Errorf("grant amount must be positive")
	}
	l.credits += n
	l.touch()
	return nil
}

// SetFrequency changes the reset cadence and reschedules the next reset
// from now.
func (l *Ledger) SetFrequency(frequency ResetFrequency, now time.Time) error {
	if !frequency.IsValid() {
		return fmt.Errorf("invalid reset frequency: %s", frequency)
	}
	l.frequency = frequency
	l.scheduleNextReset(biztime.ToUTC(now))
	l.touch()
	return nil
}

// ResetIfDue zeroes the used counter when the reset instant has passed.
// Resets are applied lazily on read, so a ledger that missed several
// periods catches up in one step. Returns true when a reset happened.
func (l *Ledger) ResetIfDue(now time.Time) bool {
	if l.nextResetAt == nil {
		return false
	}
	now = biztime.ToUTC(now)
	if now.Before(*l.nextResetAt) {
		return false
	}

	l.usedCredits = 0
	l.lastResetAt = now
	next := *l.nextResetAt
	for !next.After(now) {
		next = biztime.AddPeriod(next, l.frequency.String())
	}
	l.nextResetAt = &next
	l.touch()
	return true
}

func (l *Ledger) touch() {
	l.updatedAt = biztime.NowUTC()
	l.version++
}

// SetID sets the numeric ID after persistence.
func (l *Ledger) SetID(id uint) {
	l.id = id
}

func (l *Ledger) ID() uint                  { return l.id }
func (l *Ledger) UserID() uint              { return l.userID }
func (l *Ledger) Credits() int64            { return l.credits }
func (l *Ledger) UsedCredits() int64        { return l.usedCredits }
func (l *Ledger) Frequency() ResetFrequency { return l.frequency }
func (l *Ledger) LastResetAt() time.Time    { return l.lastResetAt }
func (l *Ledger) NextResetAt() *time.Time   { return l.nextResetAt }
func (l *Ledger) Version() int              { return l.version }
func (l *Ledger) CreatedAt() time.Time      { return l.createdAt }
func (l *Ledger) UpdatedAt() time.Time      { return l.updatedAt }

// ReconstructLedger rebuilds a ledger from persistence.
func ReconstructLedger(
	id uint,
	userID uint,
	credits, usedCredits int64,
	frequency ResetFrequency,
	lastResetAt time.Time,
	nextResetAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Ledger, error) {
	if id == 0 {
		return nil, fmt.Errorf("ledger ID cannot be zero")
	}
	if !frequency.IsValid() {
		return nil, fmt.Errorf("invalid reset frequency: %s", frequency)
	}

	return &Ledger{
		id:          id,
		userID:      userID,
		credits:     credits,
		usedCredits: usedCredits,
		frequency:   frequency,
		lastResetAt: lastResetAt,
		nextResetAt: nextResetAt,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}
