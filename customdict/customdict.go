// Package customdict stores user-added dictionary words in Redis, so a
// running corrector-server can accept new words at runtime without
// restarting or touching the on-disk dictionary file.
package customdict

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/esgramatica/corrector"
)

// CustomDict wraps a Redis client to store one language's custom
// dictionary words in a Redis set.
type CustomDict struct {
	client *redis.Client
	key    string
}

// New creates a CustomDict for languageCode, each language keeping its
// own Redis set so a Spanish custom word never short-circuits a Catalan
// correction and vice versa.
func New(client *redis.Client, languageCode string) *CustomDict {
	return &CustomDict{client: client, key: "corrector:customdict:" + languageCode}
}

// Add inserts a word into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	if err := cd.client.SAdd(ctx, cd.key, word).Err(); err != nil {
		return fmt.Errorf("customdict: add %q: %w", word, err)
	}
	return nil
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	if err := cd.client.SRem(ctx, cd.key, word).Err(); err != nil {
		return fmt.Errorf("customdict: remove %q: %w", word, err)
	}
	return nil
}

// All returns every word currently stored.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	words, err := cd.client.SMembers(ctx, cd.key).Result()
	if err != nil {
		return nil, fmt.Errorf("customdict: list: %w", err)
	}
	return words, nil
}

// LoadTrie builds a *corrector.Trie from the words currently stored,
// ready to pass as the customDict argument of
// corrector.NewEngineFromData. Each word is inserted with a bare Entry,
// since Redis stores the surface form only, with no
// category/gender/number columns.
func (cd *CustomDict) LoadTrie(ctx context.Context) (*corrector.Trie, error) {
	words, err := cd.All(ctx)
	if err != nil {
		return nil, err
	}
	trie := corrector.NewTrie()
	for _, w := range words {
		trie.InsertWord(w)
	}
	return trie, nil
}
