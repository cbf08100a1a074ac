package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdigest/pkg/domain"
)

// seedItems inserts n unprocessed items and returns their ids in order
func seedItems(t *testing.T, repos *Repositories, n int) []int64 {
	t.Helper()
	ctx := context.Background()

	items := make([]domain.NewsItem, n)
	for i := range items {
		items[i] = makeItem(i + 1)
	}
	stored, err := repos.News.CreateItems(ctx, items)
	require.NoError(t, err)
	require.Equal(t, n, stored)

	selected, err := repos.News.UnprocessedItems(ctx)
	require.NoError(t, err)
	require.Len(t, selected, n)

	ids := make([]int64, n)
	for i, item := range selected {
		ids[i] = item.ID
	}
	return ids
}

func TestDigestRepository_CreateWithProcessedItems(t *testing.T) {
	repos := setupTestRepo(t)
	ctx := context.Background()
	ids := seedItems(t, repos, 3)

	d := &domain.Digest{
		Text:          "- first entry\n- second entry",
		SourceItemIDs: []int64{ids[0], ids[1]},
		SourceTexts:   []string{"news item 1", "news item 2"},
		LLMModel:      "gpt-4o-mini",
	}
	require.NoError(t, repos.Digest.CreateWithProcessedItems(ctx, d))
	assert.Positive(t, d.ID, "id assigned on insert")

	t.Run("digest persisted pending", func(t *testing.T) {
		got, err := repos.Digest.GetDigest(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, "- first entry\n- second entry", got.Text)
		assert.False(t, got.Published)
		assert.Equal(t, []int64{ids[0], ids[1]}, got.SourceItemIDs)
		assert.Equal(t, []string{"news item 1", "news item 2"}, got.SourceTexts)
		assert.Equal(t, "gpt-4o-mini", got.LLMModel)
		assert.Nil(t, got.PublishedAt)
		assert.Empty(t, got.ExternalID)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("source items flipped, others untouched", func(t *testing.T) {
		remaining, err := repos.News.UnprocessedItems(ctx)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, ids[2], remaining[0].ID)
	})
}

func TestDigestRepository_CreateWithProcessedItems_Rejections(t *testing.T) {
	repos := setupTestRepo(t)

	t.Run("no source items", func(t *testing.T) {
		err := repos.Digest.CreateWithProcessedItems(context.Background(), &domain.Digest{Text: "text"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one source item")
	})

	t.Run("canceled context leaves items unprocessed", func(t *testing.T) {
		ids := seedItems(t, repos, 2)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := repos.Digest.CreateWithProcessedItems(ctx, &domain.Digest{
			Text:          "text",
			SourceItemIDs: ids,
			SourceTexts:   []string{"a", "b"},
		})
		require.Error(t, err)

		// nothing committed: no digest row, flags intact
		var count int
		require.NoError(t, repos.DB.Get(&count, "SELECT count(*) FROM digests"))
		assert.Equal(t, 0, count)

		remaining, err := repos.News.UnprocessedItems(context.Background())
		require.NoError(t, err)
		assert.Len(t, remaining, 2)
	})
}

func TestDigestRepository_MarkPublished(t *testing.T) {
	repos := setupTestRepo(t)
	ctx := context.Background()
	ids := seedItems(t, repos, 1)

	d := &domain.Digest{
		Text:          "- draft entry",
		SourceItemIDs: ids,
		SourceTexts:   []string{"news item 1"},
	}
	require.NoError(t, repos.Digest.CreateWithProcessedItems(ctx, d))

	require.NoError(t, repos.Digest.MarkPublished(ctx, d.ID, "- published entry", "msg-42"))

	got, err := repos.Digest.GetDigest(ctx, d.ID)
	require.NoError(t, err)
	assert.True(t, got.Published)
	assert.Equal(t, "- published entry", got.Text, "text rewritten to the exact sent text")
	assert.Equal(t, "msg-42", got.ExternalID)
	require.NotNil(t, got.PublishedAt)

	t.Run("unknown digest", func(t *testing.T) {
		err := repos.Digest.MarkPublished(ctx, 99999, "text", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestDigestRepository_GetDigests(t *testing.T) {
	repos := setupTestRepo(t)
	ctx := context.Background()
	ids := seedItems(t, repos, 3)

	for i, id := range ids {
		d := &domain.Digest{
			Text:          "digest",
			SourceItemIDs: []int64{id},
			SourceTexts:   []string{"text"},
		}
		require.NoError(t, repos.Digest.CreateWithProcessedItems(ctx, d))
		if i == 0 {
			require.NoError(t, repos.Digest.MarkPublished(ctx, d.ID, "digest", ""))
		}
	}

	t.Run("newest first", func(t *testing.T) {
		digests, err := repos.Digest.GetDigests(ctx, 10)
		require.NoError(t, err)
		require.Len(t, digests, 3)
		assert.Greater(t, digests[0].ID, digests[1].ID)
		assert.Greater(t, digests[1].ID, digests[2].ID)
		assert.True(t, digests[2].Published, "first created was published")
	})

	t.Run("limit applied", func(t *testing.T) {
		digests, err := repos.Digest.GetDigests(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, digests, 2)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repos.Digest.GetDigest(ctx, 99999)
		assert.Error(t, err)
	})
}

func TestJSONListRoundTrip(t *testing.T) {
	t.Run("int64 list", func(t *testing.T) {
		v, err := int64List{1, 2, 3}.Value()
		require.NoError(t, err)
		assert.Equal(t, "[1,2,3]", v)

		var l int64List
		require.NoError(t, l.Scan("[4,5]"))
		assert.Equal(t, int64List{4, 5}, l)
	})

	t.Run("string list", func(t *testing.T) {
		v, err := stringList{"a", "b"}.Value()
		require.NoError(t, err)
		assert.Equal(t, `["a","b"]`, v)

		var l stringList
		require.NoError(t, l.Scan([]byte(`["c"]`)))
		assert.Equal(t, stringList{"c"}, l)
	})

	t.Run("nil column", func(t *testing.T) {
		var l int64List
		require.NoError(t, l.Scan(nil))
		assert.Nil(t, l)
	})

	t.Run("unsupported column type", func(t *testing.T) {
		var l stringList
		assert.Error(t, l.Scan(42))
	})
}
