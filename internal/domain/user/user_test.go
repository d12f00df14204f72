package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/webloom-dev/webloom/internal/domain/user/valueobjects"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
	"github.com/webloom-dev/webloom/internal/shared/id"
)

func newTestUser(t *testing.T) *User {
	t.Helper()
	email, err := vo.NewEmail("owner@example.com")
	require.NoError(t, err)
	u, err := NewUser(email, "$2a$12$hash", PlanLimits{MaxSites: 10, MaxPagesPerSite: 50, MaxSectionsPerPage: 50}, id.NewUserID)
	require.NoError(t, err)
	return u
}

func TestNewUser_ValidInput(t *testing.T) {
	u := newTestUser(t)

	assert.NotEmpty(t, u.SID())
	assert.Equal(t, "owner@example.com", u.Email().String())
	assert.Equal(t, authorization.RoleUser, u.Role())
	assert.Equal(t, StatusActive, u.Status())
	assert.Equal(t, 10, u.Limits().MaxSites)
	assert.Equal(t, 1, u.Version())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.BillingCustomerID())
}

func TestNewUser_Invalid(t *testing.T) {
	email, err := vo.NewEmail("owner@example.com")
	require.NoError(t, err)

	_, err = NewUser(nil, "hash", PlanLimits{MaxSites: 1, MaxPagesPerSite: 1, MaxSectionsPerPage: 1}, id.NewUserID)
	assert.Error(t, err)

	_, err = NewUser(email, "", PlanLimits{MaxSites: 1, MaxPagesPerSite: 1, MaxSectionsPerPage: 1}, id.NewUserID)
	assert.Error(t, err)

	_, err = NewUser(email, "hash", PlanLimits{}, id.NewUserID)
	assert.Error(t, err)
}

func TestUser_PasswordReset(t *testing.T) {
	u := newTestUser(t)
	now := time.Now().UTC()

	require.NoError(t, u.BeginPasswordReset("token-1", now.Add(30*time.Minute)))
	assert.True(t, u.CanResetPassword("token-1", now))
	assert.False(t, u.CanResetPassword("wrong", now))
	assert.False(t, u.CanResetPassword("token-1", now.Add(time.Hour)))

	require.NoError(t, u.ChangePassword("$2a$12$newhash"))
	assert.Equal(t, "$2a$12$newhash", u.PasswordHash())
	assert.Nil(t, u.PasswordResetToken())
	assert.False(t, u.CanResetPassword("token-1", now))
}

func TestUser_Billing(t *testing.T) {
	u := newTestUser(t)

	u.AttachBillingCustomer("cus_ext123")
	require.NotNil(t, u.BillingCustomerID())
	assert.Equal(t, "cus_ext123", *u.BillingCustomerID())

	u.AttachBillingSubscription("sub_ext456")
	require.NotNil(t, u.BillingSubscriptionID())
	u.DetachBillingSubscription()
	assert.Nil(t, u.BillingSubscriptionID())
}

func TestUser_PromoteToAdmin(t *testing.T) {
	u := newTestUser(t)
	v := u.Version()

	u.PromoteToAdmin()
	assert.True(t, u.Role().IsAdmin())
	assert.Greater(t, u.Version(), v)
}

func TestEmail_Validation(t *testing.T) {
	_, err := vo.NewEmail("not-an-email")
	assert.Error(t, err)

	email, err := vo.NewEmail("  MiXeD@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "mixed@example.com", email.String())
}
