package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemangjain17/TruthLens-backend/internal/db"
	"github.com/hemangjain17/TruthLens-backend/internal/models"
	"github.com/hemangjain17/TruthLens-backend/internal/repository"
	"github.com/hemangjain17/TruthLens-backend/internal/service"
)

// Live MongoDB tests; each test gets a throwaway collection that is
// dropped on cleanup. Set MONGO_TEST_URI to run them.
func testRepo(t *testing.T) *repository.SubmissionRepo {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set; skipping live MongoDB tests")
	}

	coll := "submissions_" + uuid.New().String()[:8]
	client, err := db.Connect(context.Background(), uri, "truthlens_test", coll)
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client.Collection().Drop(ctx)
		client.Close(ctx)
	})

	repo := repository.NewSubmissionRepo(client.Collection())
	require.NoError(t, repo.EnsureIndexes(context.Background()))
	return repo
}

func strPtr(s string) *string { return &s }

func insertAt(t *testing.T, repo *repository.SubmissionRepo, email, text string, at time.Time) string {
	t.Helper()
	id, err := repo.Insert(context.Background(), &models.Submission{
		Email:         strPtr(email),
		TextInput:     strPtr(text),
		InputInsights: fmt.Sprintf("Raw input submitted: Text - \"%s\", Blog Links - 0 links, Video Links - 0 links, Uploaded Videos - 0 files", text),
		CreatedAt:     at,
	})
	require.NoError(t, err)
	return id
}

func TestInsertReturnsHexID(t *testing.T) {
	repo := testRepo(t)

	id := insertAt(t, repo, "a@b.com", "hello", time.Now().UTC())
	assert.Len(t, id, 24)
}

func TestFindLatestByEmail(t *testing.T) {
	repo := testRepo(t)
	base := time.Now().UTC().Truncate(time.Millisecond)

	insertAt(t, repo, "a@b.com", "first", base)
	insertAt(t, repo, "a@b.com", "second", base.Add(time.Minute))
	newest := insertAt(t, repo, "a@b.com", "third", base.Add(2*time.Minute))
	insertAt(t, repo, "other@b.com", "not yours", base.Add(time.Hour))

	sub, err := repo.FindLatestByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, newest, sub.ID)
	assert.Equal(t, "third", *sub.TextInput)
}

func TestFindLatestByEmailNone(t *testing.T) {
	repo := testRepo(t)

	sub, err := repo.FindLatestByEmail(context.Background(), "nobody@b.com")
	require.NoError(t, err)
	assert.Nil(t, sub)
}

func TestFindTopByEmailExcludesOldest(t *testing.T) {
	repo := testRepo(t)
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i := 0; i < 6; i++ {
		insertAt(t, repo, "a@b.com", fmt.Sprintf("entry-%d", i), base.Add(time.Duration(i)*time.Minute))
	}

	subs, err := repo.FindTopByEmail(context.Background(), "a@b.com", service.TopLimit)
	require.NoError(t, err)
	require.Len(t, subs, 5)

	for i, sub := range subs {
		assert.Equal(t, fmt.Sprintf("entry-%d", 5-i), *sub.TextInput, "results must be newest first")
		assert.NotEmpty(t, sub.ID)
	}
}

func TestFindTopByEmailNoneIsEmptySlice(t *testing.T) {
	repo := testRepo(t)

	subs, err := repo.FindTopByEmail(context.Background(), "nobody@b.com", service.TopLimit)
	require.NoError(t, err)
	assert.NotNil(t, subs)
	assert.Empty(t, subs)
}

func TestNullFieldsRoundTrip(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.Insert(context.Background(), &models.Submission{
		Email:     strPtr("null@b.com"),
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	sub, err := repo.FindLatestByEmail(context.Background(), "null@b.com")
	require.NoError(t, err)
	require.NotNil(t, sub)

	assert.Nil(t, sub.Name)
	assert.Nil(t, sub.TextInput)
	assert.Nil(t, sub.BlogLinks)
	assert.Nil(t, sub.VideoLinks)
	assert.Nil(t, sub.UploadedVideos)
}
