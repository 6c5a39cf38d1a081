package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/events"
	"github.com/spec-kit/press-service/internal/markup"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

func newContentFixture() (*ContentService, *fakeArticleRepo, *captureDispatcher) {
	repo := newFakeArticleRepo()
	dispatcher := &captureDispatcher{}
	return NewContentService(repo, markup.NewSanitizer(), dispatcher), repo, dispatcher
}

func seedArticle(t *testing.T, svc *ContentService, title, category string) *domain.Article {
	t.Helper()
	article, err := svc.SaveArticle(context.Background(), adminActor(), &domain.Article{
		Title:    title,
		Content:  "<p>body</p>",
		Author:   "staff",
		Category: category,
	})
	require.NoError(t, err)
	return article
}

func TestSaveArticleSanitizes(t *testing.T) {
	svc, repo, dispatcher := newContentFixture()

	article, err := svc.SaveArticle(context.Background(), adminActor(), &domain.Article{
		Title:    `Breaking <script>alert(1)</script> News`,
		Content:  `<p>fine</p><script>alert(1)</script>`,
		Author:   "staff",
		Category: "culture",
	})
	require.NoError(t, err)
	assert.NotContains(t, article.Title, "<script>")
	assert.NotContains(t, article.Content, "<script>")
	assert.Contains(t, article.Content, "<p>fine</p>")
	assert.NotEmpty(t, article.ID)
	assert.False(t, article.PublishedAt.IsZero())
	assert.Contains(t, repo.articles, article.ID)

	published := dispatcher.byType(events.EventArticlePublished)
	require.Len(t, published, 1)
}

func TestSaveArticleUpdateDoesNotRepublish(t *testing.T) {
	svc, _, dispatcher := newContentFixture()
	article := seedArticle(t, svc, "original", "culture")

	article.Title = "updated"
	_, err := svc.SaveArticle(context.Background(), adminActor(), article)
	require.NoError(t, err)
	assert.Len(t, dispatcher.byType(events.EventArticlePublished), 1)
}

func TestSaveArticlePermissions(t *testing.T) {
	svc, _, _ := newContentFixture()
	writer := &domain.Profile{ID: "w1", Role: domain.RoleWriter}
	audience := &domain.Profile{ID: "a1", Role: domain.RoleAudience}

	_, err := svc.SaveArticle(context.Background(), writer, &domain.Article{
		Title: "ok", Content: "x", Author: "w", Category: "news",
	})
	assert.NoError(t, err)

	_, err = svc.SaveArticle(context.Background(), audience, &domain.Article{
		Title: "nope", Content: "x", Author: "a", Category: "news",
	})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestRelatedArticles(t *testing.T) {
	svc, _, _ := newContentFixture()
	ctx := context.Background()

	target := seedArticle(t, svc, "target", "culture")
	seedArticle(t, svc, "same-1", "culture")
	seedArticle(t, svc, "same-2", "culture")
	seedArticle(t, svc, "same-3", "culture")
	seedArticle(t, svc, "same-4", "culture")
	seedArticle(t, svc, "other", "sports")

	related, err := svc.RelatedArticles(ctx, target.ID)
	require.NoError(t, err)
	assert.Len(t, related, 3)
	for _, article := range related {
		assert.NotEqual(t, target.ID, article.ID)
		assert.Equal(t, "culture", article.Category)
	}
}

func TestDeleteArticleAdminOnly(t *testing.T) {
	svc, repo, _ := newContentFixture()
	article := seedArticle(t, svc, "doomed", "news")

	writer := &domain.Profile{ID: "w1", Role: domain.RoleWriter}
	err := svc.DeleteArticle(context.Background(), writer, article.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	require.NoError(t, svc.DeleteArticle(context.Background(), adminActor(), article.ID))
	assert.NotContains(t, repo.articles, article.ID)
}

func TestGetArticleNotFound(t *testing.T) {
	svc, _, _ := newContentFixture()
	_, err := svc.GetArticle(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
