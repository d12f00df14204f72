package user

import (
	"fmt"
	"time"

	vo "github.com/webloom-dev/webloom/internal/domain/user/valueobjects"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
)

// PlanLimits carries the per-account quotas sourced from the active plan.
type PlanLimits struct {
	MaxSites           int
	MaxPagesPerSite    int
	MaxSectionsPerPage int
}

// User is the account aggregate root. It owns sites, one credit ledger and
// a payment history.
type User struct {
	id           uint
	sid          string
	email        *vo.Email
	passwordHash string
	role         authorization.UserRole
	status       Status
	limits       PlanLimits

	billingCustomerID     *string
	billingSubscriptionID *string

	passwordResetToken     *string
	passwordResetExpiresAt *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// Status represents the lifecycle state of an account.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// NewUser creates an active account with the given plan limits. sidGen
// supplies the external identifier.
func NewUser(email *vo.Email, passwordHash string, limits PlanLimits, sidGen func() (string, error)) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if limits.MaxSites <= 0 || limits.MaxPagesPerSite <= 0 || limits.MaxSectionsPerPage <= 0 {
		return nil, fmt.Errorf("plan limits must be positive")
	}

	sid, err := sidGen()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	now := biztime.NowUTC()
	return &User{
		sid:          sid,
		email:        email,
		passwordHash: passwordHash,
		role:         authorization.RoleUser,
		status:       StatusActive,
		limits:       limits,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// PromoteToAdmin grants the admin role. Used by the seed-admin command.
func (u *User) PromoteToAdmin() {
	u.role = authorization.RoleAdmin
	u.touch()
}

// ChangePassword replaces the stored hash and clears any pending reset token.
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.passwordResetToken = nil
	u.passwordResetExpiresAt = nil
	u.touch()
	return nil
}

// BeginPasswordReset stores a reset token with its expiry.
func (u *User) BeginPasswordReset(token string, expiresAt time.Time) error {
	if token == "" {
		return fmt.Errorf("reset token is required")
	}
	u.passwordResetToken = &token
	u.passwordResetExpiresAt = &expiresAt
	u.touch()
	return nil
}

// CanResetPassword reports whether the pending reset token matches and has
// not expired.
func (u *User) CanResetPassword(token string, now time.Time) bool {
	if u.passwordResetToken == nil || u.passwordResetExpiresAt == nil {
		return false
	}
	return *u.passwordResetToken == token && now.Before(*u.passwordResetExpiresAt)
}

// AttachBillingCustomer records the external processor customer reference.
func (u *User) AttachBillingCustomer(customerID string) {
	u.billingCustomerID = &customerID
	u.touch()
}

// AttachBillingSubscription records the external processor subscription
// reference after a successful subscription confirmation.
func (u *User) AttachBillingSubscription(subscriptionID string) {
	u.billingSubscriptionID = &subscriptionID
	u.touch()
}

// DetachBillingSubscription clears the subscription reference after
// cancellation.
func (u *User) DetachBillingSubscription() {
	u.billingSubscriptionID = nil
	u.touch()
}

// UpdateLimits replaces the plan quotas, e.g. after a plan change.
func (u *User) UpdateLimits(limits PlanLimits) error {
	if limits.MaxSites <= 0 || limits.MaxPagesPerSite <= 0 || limits.MaxSectionsPerPage <= 0 {
		return fmt.Errorf("plan limits must be positive")
	}
	u.limits = limits
	u.touch()
	return nil
}

// Deactivate marks the account inactive.
func (u *User) Deactivate() {
	u.status = StatusInactive
	u.touch()
}

func (u *User) touch() {
	u.updatedAt = biztime.NowUTC()
	u.version++
}

// SetID sets the numeric ID after persistence (used by the repository after
// Create).
func (u *User) SetID(id uint) {
	u.id = id
}

func (u *User) ID() uint                            { return u.id }
func (u *User) SID() string                         { return u.sid }
func (u *User) Email() *vo.Email                    { return u.email }
func (u *User) PasswordHash() string                { return u.passwordHash }
func (u *User) Role() authorization.UserRole        { return u.role }
func (u *User) Status() Status                      { return u.status }
func (u *User) Limits() PlanLimits                  { return u.limits }
func (u *User) BillingCustomerID() *string          { return u.billingCustomerID }
func (u *User) BillingSubscriptionID() *string      { return u.billingSubscriptionID }
func (u *User) PasswordResetToken() *string         { return u.passwordResetToken }
func (u *User) PasswordResetExpiresAt() *time.Time  { return u.passwordResetExpiresAt }
func (u *User) Version() int                        { return u.version }
func (u *User) CreatedAt() time.Time                { return u.createdAt }
func (u *User) UpdatedAt() time.Time                { return u.updatedAt }
func (u *User) IsActive() bool                      { return u.status == StatusActive }

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	sid string,
	email *vo.Email,
	passwordHash string,
	role authorization.UserRole,
	status Status,
	limits PlanLimits,
	billingCustomerID, billingSubscriptionID *string,
	passwordResetToken *string,
	passwordResetExpiresAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:                     id,
		sid:                    sid,
		email:                  email,
		passwordHash:           passwordHash,
		role:                   role,
		status:                 status,
		limits:                 limits,
		billingCustomerID:      billingCustomerID,
		billingSubscriptionID:  billingSubscriptionID,
		passwordResetToken:     passwordResetToken,
		passwordResetExpiresAt: passwordResetExpiresAt,
		version:                version,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
	}, nil
}
