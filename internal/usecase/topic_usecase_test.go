package usecase

import (
	"fmt"
	"sync"
	"testing"

	"ai-interviewer/internal/model"
	"ai-interviewer/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalTopicName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Python", "python"},
		{"  PYTHON  ", "python"},
		{"Machine-Learning", "machine learning"},
		{"machine_learning", "machine learning"},
		{"system   design", "system design"},
		{"Go--Lang__ Basics", "go lang basics"},
		{"   ", ""},
		{"---", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, CanonicalTopicName(tc.raw), "raw %q", tc.raw)
	}
}

func TestResolveDeduplicatesVariants(t *testing.T) {
	db := newTestDB(t)
	resolver := NewTopicResolver(repository.NewTopicRepository(db))

	topics, err := resolver.Resolve([]string{"Python", "python ", "PYTHON"}, NewTopicCache())
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "python", topics[0].Name)

	var count int64
	require.NoError(t, db.Model(&model.Topic{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestResolveReusesCatalogRows(t *testing.T) {
	db := newTestDB(t)
	resolver := NewTopicResolver(repository.NewTopicRepository(db))

	first, err := resolver.Resolve([]string{"Go", "Kubernetes"}, NewTopicCache())
	require.NoError(t, err)
	require.Len(t, first, 2)

	// A later batch with overlapping labels must map onto the same rows.
	second, err := resolver.Resolve([]string{"GO", "docker"}, NewTopicCache())
	require.NoError(t, err)
	require.Len(t, second, 2)

	byName := make(map[string]uint)
	for _, topic := range first {
		byName[topic.Name] = topic.ID
	}
	for _, topic := range second {
		if id, ok := byName[topic.Name]; ok {
			assert.Equal(t, id, topic.ID, "topic %q recreated instead of reused", topic.Name)
		}
	}

	var count int64
	require.NoError(t, db.Model(&model.Topic{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestResolveCacheShortCircuitsLookups(t *testing.T) {
	db := newTestDB(t)
	resolver := NewTopicResolver(repository.NewTopicRepository(db))
	cache := NewTopicCache()

	_, err := resolver.Resolve([]string{"SQL"}, cache)
	require.NoError(t, err)
	require.Contains(t, cache, "sql")

	// Poison the catalog row; a cache hit must not touch the database.
	require.NoError(t, db.Exec("DELETE FROM topics").Error)

	topics, err := resolver.Resolve([]string{"sql"}, cache)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, cache["sql"].ID, topics[0].ID)
}

func TestResolveConcurrentInsert(t *testing.T) {
	db := newTestDB(t)
	resolver := NewTopicResolver(repository.NewTopicRepository(db))

	// Every caller races to insert the same missing name; the losers must
	// treat the duplicate-key error as "exists" and re-read the row.
	const workers = 8
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			topics, err := resolver.Resolve([]string{"Distributed-Systems"}, NewTopicCache())
			if err == nil && len(topics) != 1 {
				err = fmt.Errorf("expected 1 topic, got %d", len(topics))
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&model.Topic{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	topic, err := repository.NewTopicRepository(db).FindByName("distributed systems")
	require.NoError(t, err)
	assert.Equal(t, "distributed systems", topic.Name)
}

func TestResolveSkipsEmptyLabels(t *testing.T) {
	db := newTestDB(t)
	resolver := NewTopicResolver(repository.NewTopicRepository(db))

	topics, err := resolver.Resolve([]string{"", "   ", "--"}, NewTopicCache())
	require.NoError(t, err)
	assert.Empty(t, topics)

	var count int64
	require.NoError(t, db.Model(&model.Topic{}).Count(&count).Error)
	assert.Zero(t, count)
}
