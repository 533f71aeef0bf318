package captcha

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
)

const (
	// Alphabet leaves out 0/O and 1/I/L.
	Alphabet   = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	TextLength = 4
	idBytes    = 16
)

type (
	IImageRenderer interface {
		Render(text string) (imageURL string, err error)
	}
)

type Service struct {
	imageRenderer   IImageRenderer
	ttl             time.Duration
	maxChallenges   int
	cleanupInterval time.Duration
	now             func() time.Time

	mx         sync.Mutex
	challenges map[string]entities.CaptchaChallenge
}

func NewService(imageRenderer IImageRenderer, ttl time.Duration, maxChallenges int, cleanupInterval time.Duration, now func() time.Time) *Service {
	if maxChallenges <= 0 {
		maxChallenges = constants.DefaultCaptchaMax
	}

	return &Service{
		imageRenderer:   imageRenderer,
		ttl:             ttl,
		maxChallenges:   maxChallenges,
		cleanupInterval: cleanupInterval,
		now:             now,

		challenges: make(map[string]entities.CaptchaChallenge),
	}
}

// Start sweeps expired challenges until ctx is done.
func (s *Service) Start(ctx context.Context) {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if evicted := s.CleanupExpired(); evicted > 0 {
				log.Debug().Int("evicted", evicted).Msg("Start: expired captchas swept")
			}
		}
	}
}

// Create issues a new challenge. When the store is full the oldest challenge is dropped.
func (s *Service) Create() (issued entities.IssuedCaptcha, err error) {
	text, err := randomText(TextLength)
	if err != nil {
		return issued, fmt.Errorf("Create: %w", err)
	}

	id, err := randomID()
	if err != nil {
		return issued, fmt.Errorf("Create: %w", err)
	}

	imageURL, err := s.imageRenderer.Render(text)
	if err != nil {
		return issued, fmt.Errorf("Create: %w", err)
	}

	createdAt := s.now()

	s.mx.Lock()
	defer s.mx.Unlock()

	s.cleanupExpiredLocked(createdAt)
	for len(s.challenges) >= s.maxChallenges {
		s.evictOldestLocked()
	}

	s.challenges[id] = entities.CaptchaChallenge{
		ID:           id,
		ExpectedText: text,
		CreatedAt:    createdAt,
		ExpiresAt:    createdAt.Add(s.ttl),
	}

	return entities.IssuedCaptcha{
		ID:       id,
		ImageURL: imageURL,
	}, nil
}

// Verify is one-shot: the challenge is deleted whatever the outcome.
func (s *Service) Verify(id, text string) bool {
	now := s.now()

	s.mx.Lock()
	defer s.mx.Unlock()

	challenge, found := s.challenges[id]
	delete(s.challenges, id)
	s.cleanupExpiredLocked(now)

	if !found || challenge.IsExpired(now) {
		return false
	}

	answer := strings.ToUpper(strings.TrimSpace(text))
	return subtle.ConstantTimeCompare([]byte(answer), []byte(challenge.ExpectedText)) == 1
}

// CleanupExpired evicts every expired challenge and reports how many were dropped.
func (s *Service) CleanupExpired() int {
	now := s.now()

	s.mx.Lock()
	defer s.mx.Unlock()

	return s.cleanupExpiredLocked(now)
}

func (s *Service) Count() int {
	s.mx.Lock()
	defer s.mx.Unlock()

	return len(s.challenges)
}

func (s *Service) cleanupExpiredLocked(now time.Time) (evicted int) {
	for id, challenge := range s.challenges {
		if challenge.IsExpired(now) {
			delete(s.challenges, id)
			evicted++
		}
	}

	return evicted
}

func (s *Service) evictOldestLocked() {
	oldest := lo.MinBy(lo.Values(s.challenges), func(a, b entities.CaptchaChallenge) bool {
		return a.CreatedAt.Before(b.CreatedAt)
	})

	delete(s.challenges, oldest.ID)
}

func randomText(length int) (text string, err error) {
	var builder strings.Builder
	alphabetLen := big.NewInt(int64(len(Alphabet)))
	for range length {
		index, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("randomText: %w", err)
		}

		builder.WriteByte(Alphabet[index.Int64()])
	}

	return builder.String(), nil
}

func randomID() (id string, err error) {
	buf := make([]byte, idBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", fmt.Errorf("randomID: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
