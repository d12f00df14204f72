package credits

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T, frequency ResetFrequency) *Ledger {
	t.Helper()
	l, err := NewLedger(1, 20, frequency)
	require.NoError(t, err)
	return l
}

func TestNewLedger(t *testing.T) {
	l := newTestLedger(t, ResetMonthly)

	assert.Equal(t, int64(20), l.Credits())
	assert.Equal(t, int64(0), l.UsedCredits())
	assert.Equal(t, int64(20), l.Remaining())
	require.NotNil(t, l.NextResetAt())
	assert.True(t, l.NextResetAt().After(l.LastResetAt()))
}

func TestNewLedger_NeverResets(t *testing.T) {
	l := newTestLedger(t, ResetNever)
	assert.Nil(t, l.NextResetAt())
	assert.False(t, l.ResetIfDue(time.Now().UTC().Add(24*365*time.Hour)))
}

func TestNewLedger_Invalid(t *testing.T) {
	_, err := NewLedger(0, 20, ResetMonthly)
	assert.Error(t, err)

	_, err = NewLedger(1, -1, ResetMonthly)
	assert.Error(t, err)

	_, err = NewLedger(1, 20, ResetFrequency("hourly"))
	assert.Error(t, err)
}

func TestLedger_Consume(t *testing.T) {
	l := newTestLedger(t, ResetNever)

	require.NoError(t, l.Consume(5))
	assert.Equal(t, int64(15), l.Remaining())

	assert.Error(t, l.Consume(0))
	assert.Error(t, l.Consume(-3))
	assert.Error(t, l.Consume(16))
	assert.Equal(t, int64(15), l.Remaining())

	require.NoError(t, l.Consume(15))
	assert.Equal(t, int64(0), l.Remaining())
	assert.False(t, l.HasEnough(1))
}

func TestLedger_Grant(t *testing.T) {
	l := newTestLedger(t, ResetNever)

	require.NoError(t, l.Grant(100))
	assert.Equal(t, int64(120), l.Remaining())

	assert.Error(t, l.Grant(0))
}

func TestLedger_ResetIfDue(t *testing.T) {
	l := newTestLedger(t, ResetDaily)
	require.NoError(t, l.Consume(10))

	// before the scheduled instant nothing happens
	assert.False(t, l.ResetIfDue(l.NextResetAt().Add(-time.Minute)))
	assert.Equal(t, int64(10), l.UsedCredits())

	// three missed periods collapse into one catch-up reset
	late := l.NextResetAt().Add(48 * time.Hour)
	assert.True(t, l.ResetIfDue(late))
	assert.Equal(t, int64(0), l.UsedCredits())
	require.NotNil(t, l.NextResetAt())
	assert.True(t, l.NextResetAt().After(late))
}
