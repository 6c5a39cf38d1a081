package access

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/press-service/internal/domain"
)

// fakeProfileRepo is an in-memory ProfileRepository with failure injection.
type fakeProfileRepo struct {
	profiles map[string]*domain.Profile

	failGet    error
	failCreate error
	failFind   error
	failUpdate error

	// missFirstGet makes the first GetByID report no rows even when the
	// profile exists, to simulate losing a concurrent-insert race.
	missFirstGet bool

	createCalls int
	getCalls    int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*domain.Profile{}}
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *domain.Profile) error {
	f.createCalls++
	if f.failCreate != nil {
		return f.failCreate
	}
	if _, exists := f.profiles[profile.ID]; exists {
		return errors.New("duplicate key")
	}
	clone := *profile
	f.profiles[profile.ID] = &clone
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	f.getCalls++
	if f.failGet != nil {
		return nil, f.failGet
	}
	if f.missFirstGet && f.getCalls == 1 {
		return nil, pgx.ErrNoRows
	}
	profile, ok := f.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *profile
	return &clone, nil
}

func (f *fakeProfileRepo) FindByEmail(_ context.Context, email string) ([]domain.Profile, error) {
	if f.failFind != nil {
		return nil, f.failFind
	}
	var result []domain.Profile
	for _, profile := range f.profiles {
		if profile.Email == email {
			result = append(result, *profile)
		}
	}
	return result, nil
}

func (f *fakeProfileRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	profile, ok := f.profiles[id]
	if !ok {
		return pgx.ErrNoRows
	}
	profile.Role = role
	return nil
}

func (f *fakeProfileRepo) UpdatePreferences(_ context.Context, id string, prefs domain.Preferences) error {
	profile, ok := f.profiles[id]
	if !ok {
		return pgx.ErrNoRows
	}
	profile.Preferences = prefs
	return nil
}
