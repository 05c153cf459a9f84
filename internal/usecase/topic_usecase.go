package usecase

import (
	"errors"
	"regexp"
	"strings"

	"ai-interviewer/internal/model"
	"ai-interviewer/internal/repository"

	"gorm.io/gorm"
)

var separatorRuns = regexp.MustCompile(`[\s_-]+`)

// CanonicalTopicName lowercases, trims, and collapses runs of whitespace,
// hyphens and underscores into single spaces, so "Machine-Learning" and
// "machine_learning " resolve to the same catalog row.
func CanonicalTopicName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	return strings.TrimSpace(separatorRuns.ReplaceAllString(name, " "))
}

// TopicCache maps canonical names to resolved topics for the duration of one
// interview-creation batch. It is never shared across sessions, so it needs
// no locking.
type TopicCache map[string]model.Topic

func NewTopicCache() TopicCache {
	return make(TopicCache)
}

type TopicResolver struct {
	topicRepo *repository.TopicRepository
}

func NewTopicResolver(topicRepo *repository.TopicRepository) *TopicResolver {
	return &TopicResolver{topicRepo: topicRepo}
}

// Resolve maps a batch of raw topic labels to catalog topics, creating
// missing ones. The cache is consulted first and mutated for reuse across the
// rest of the batch. A duplicate-key error during create means another
// request inserted the same name concurrently; it is resolved by re-reading.
func (r *TopicResolver) Resolve(raws []string, cache TopicCache) ([]model.Topic, error) {
	names := make([]string, 0, len(raws))
	seen := make(map[string]bool, len(raws))
	for _, raw := range raws {
		name := CanonicalTopicName(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, nil
	}

	resolved := make([]model.Topic, 0, len(names))
	missing := make([]string, 0, len(names))
	for _, name := range names {
		if topic, ok := cache[name]; ok {
			resolved = append(resolved, topic)
		} else {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return resolved, nil
	}

	found, err := r.topicRepo.FindByNames(missing)
	if err != nil {
		return nil, err
	}
	inCatalog := make(map[string]bool, len(found))
	for _, topic := range found {
		name := CanonicalTopicName(topic.Name)
		cache[name] = topic
		inCatalog[name] = true
		resolved = append(resolved, topic)
	}

	for _, name := range missing {
		if inCatalog[name] {
			continue
		}
		topic := model.Topic{Name: name}
		if err := r.topicRepo.Create(&topic); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, err
			}
			existing, err := r.topicRepo.FindByName(name)
			if err != nil {
				return nil, err
			}
			topic = *existing
		}
		cache[name] = topic
		resolved = append(resolved, topic)
	}
	return resolved, nil
}
