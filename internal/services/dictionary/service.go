package dictionary

import (
	"bufio"
	"context"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/mcoot/dailypuzzles/internal/data"
	"github.com/mcoot/dailypuzzles/internal/dependencies/random"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/storage"
)

// Service answers word validity and hands out words for puzzle generation.
//
// Validation uses the full word list; generation draws only from the curated
// pools, which favour common words a player can actually find.
type Service struct {
	storage storage.Storage

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool

	pools map[int][]string
	easy  []string
}

// New creates a new dictionary service. pools may be nil, in which case
// every generation pool is empty.
func New(storage storage.Storage, pools *data.Pools) *Service {
	s := &Service{
		storage: storage,
		words:   make(map[string]struct{}),
		pools:   make(map[int][]string),
	}
	if pools != nil {
		for length, list := range pools.Generation {
			s.pools[length] = normalise(list)
		}
		s.easy = normalise(pools.Easy4)
	}
	return s
}

func normalise(list []string) []string {
	return lo.Map(list, func(w string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(w))
	})
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return s.persistAndLoad(ctx, words)
}

// LoadEmbedded loads the word list compiled into the binary
func (s *Service) LoadEmbedded(ctx context.Context) error {
	words, err := data.Words()
	if err != nil {
		return err
	}
	return s.persistAndLoad(ctx, words)
}

func (s *Service) persistAndLoad(ctx context.Context, words []string) error {
	// Save to storage so other instances can load without the file
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	loaded := make(map[string]struct{}, len(words))
	for _, word := range words {
		// Store lowercase for case-insensitive matching
		loaded[strings.ToLower(word)] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = loaded
	s.loaded = true
	return nil
}

// IsValidWord checks if a word exists in the dictionary
// Words must be at least 2 characters
func (s *Service) IsValidWord(word string) bool {
	if len(word) < 2 {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// WordsOfLength returns a copy of the generation pool for length, in pool
// order. Unknown lengths give an empty slice.
func (s *Service) WordsOfLength(length int) []string {
	return slices.Clone(s.pools[length])
}

// RandomWords returns count words of the given length from the generation
// pool, shuffled with rng. Fewer are returned if the pool is smaller.
func (s *Service) RandomWords(count, length int, rng random.Random) []string {
	return take(random.Shuffle(rng, s.pools[length]), count)
}

// EasyWords returns count common 4-letter words shuffled with rng
func (s *Service) EasyWords(count int, rng random.Random) []string {
	return take(random.Shuffle(rng, s.easy), count)
}

func take(words []string, count int) []string {
	if count < 0 {
		count = 0
	}
	if count > len(words) {
		count = len(words)
	}
	return words[:count]
}

// Interface check
type ServiceInterface interface {
	IsValidWord(word string) bool
	IsLoaded() bool
	WordCount() int
	WordsOfLength(length int) []string
	RandomWords(count, length int, rng random.Random) []string
	EasyWords(count int, rng random.Random) []string
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadEmbedded(ctx context.Context) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded
