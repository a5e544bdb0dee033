package storage

import "github.com/manav03panchal/fastpilot/internal/model"

// OnboardingRepo tracks whether first-run setup has been completed.
type OnboardingRepo struct {
	db *DB
}

// NewOnboardingRepo creates a new onboarding repository.
func NewOnboardingRepo(db *DB) *OnboardingRepo {
	return &OnboardingRepo{db: db}
}

// IsOnboarded returns the stored flag, false when unset.
func (r *OnboardingRepo) IsOnboarded() (bool, error) {
	return readOrDefault(r.db.Get, model.KeyOnboarded, func() bool { return false })
}

// SetOnboarded stores the flag.
func (r *OnboardingRepo) SetOnboarded(done bool) error {
	return r.db.Set(model.KeyOnboarded, done)
}
