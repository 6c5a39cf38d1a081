package service

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/events"
	"github.com/spec-kit/press-service/internal/repository"
)

type fakeStaffRepo struct {
	entries map[string]*domain.StaffEntry

	failUpsert error
	failDelete error
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{entries: map[string]*domain.StaffEntry{}}
}

func (f *fakeStaffRepo) List(_ context.Context) ([]domain.StaffEntry, error) {
	var result []domain.StaffEntry
	for _, entry := range f.entries {
		result = append(result, *entry)
	}
	return result, nil
}

func (f *fakeStaffRepo) GetBySlug(_ context.Context, slug string) (*domain.StaffEntry, error) {
	entry, ok := f.entries[slug]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *entry
	return &clone, nil
}

func (f *fakeStaffRepo) Upsert(_ context.Context, entry *domain.StaffEntry) error {
	if f.failUpsert != nil {
		return f.failUpsert
	}
	clone := *entry
	f.entries[entry.Slug] = &clone
	return nil
}

func (f *fakeStaffRepo) Delete(_ context.Context, slug string) error {
	if f.failDelete != nil {
		return f.failDelete
	}
	if _, ok := f.entries[slug]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.entries, slug)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*domain.Profile

	failFind   error
	failUpdate error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*domain.Profile{}}
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *domain.Profile) error {
	if _, exists := f.profiles[profile.ID]; exists {
		return errors.New("duplicate key")
	}
	clone := *profile
	f.profiles[profile.ID] = &clone
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
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

type fakeArticleRepo struct {
	articles map[string]*domain.Article
	order    []string
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[string]*domain.Article{}}
}

func (f *fakeArticleRepo) Create(_ context.Context, article *domain.Article) error {
	f.articles[article.ID] = article
	f.order = append(f.order, article.ID)
	return nil
}

func (f *fakeArticleRepo) Update(_ context.Context, article *domain.Article) error {
	if _, ok := f.articles[article.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.articles[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) GetByID(_ context.Context, id string) (*domain.Article, error) {
	article, ok := f.articles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *article
	return &clone, nil
}

func (f *fakeArticleRepo) List(_ context.Context, filter repository.ArticleFilter) ([]domain.Article, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	var result []domain.Article
	for _, id := range f.order {
		article := f.articles[id]
		if filter.Category != nil && article.Category != *filter.Category {
			continue
		}
		if filter.Author != nil && article.Author != *filter.Author {
			continue
		}
		if filter.Featured != nil && article.Featured != *filter.Featured {
			continue
		}
		result = append(result, *article)
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (f *fakeArticleRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.articles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.articles, id)
	return nil
}

// captureDispatcher records published events for assertions.
type captureDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *captureDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *captureDispatcher) byType(eventType events.EventType) []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var result []events.Event
	for _, event := range d.events {
		if event.Type == eventType {
			result = append(result, event)
		}
	}
	return result
}
