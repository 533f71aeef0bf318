package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/entities"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
)

const (
	keyPrefix = "session:"
	idBytes   = 32
)

// Service keeps server-side sessions in badger. Entries carry a badger TTL, but
// expiry is always decided against the injected clock.
type Service struct {
	db              *badger.DB
	ttl             time.Duration
	cleanupInterval time.Duration
	now             func() time.Time
}

func NewService(db *badger.DB, ttl, cleanupInterval time.Duration, now func() time.Time) *Service {
	if ttl <= 0 || ttl > constants.MaxTokenTTL {
		ttl = constants.MaxTokenTTL
	}

	return &Service{
		db:              db,
		ttl:             ttl,
		cleanupInterval: cleanupInterval,
		now:             now,
	}
}

func (s *Service) Start(ctx context.Context) {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			evicted, err := s.CleanupExpired()
			if err != nil {
				log.Error().Err(err).Msg("Start: sweep sessions error")
				break
			}

			if evicted > 0 {
				log.Debug().Int("evicted", evicted).Msg("Start: expired sessions swept")
			}
		}
	}
}

func (s *Service) Create(username string) (session entities.Session, err error) {
	if lo.IsEmpty(username) {
		return session, fmt.Errorf("Create: %w: empty username", errs.ErrInvalidParameters)
	}

	id, err := randomID()
	if err != nil {
		return session, fmt.Errorf("Create: %w", err)
	}

	createdAt := s.now()
	session = entities.Session{
		ID:        id,
		Username:  username,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(s.ttl),
	}

	value, err := json.Marshal(session)
	if err != nil {
		return session, fmt.Errorf("Create: %w", err)
	}

	if err = s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(sessionKey(id), value).WithTTL(s.ttl))
	}); err != nil {
		return session, fmt.Errorf("Create: %w", err)
	}

	return session, nil
}

// Verify returns the live session for id. An expired session is evicted on the spot.
func (s *Service) Verify(id string) (session entities.Session, err error) {
	if lo.IsEmpty(id) {
		return session, fmt.Errorf("Verify: %w", errs.ErrSessionNotFound)
	}

	if err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if err != nil {
			return err
		}

		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &session)
		})
	}); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return session, fmt.Errorf("Verify: %w", errs.ErrSessionNotFound)
		}

		return session, fmt.Errorf("Verify: %w", err)
	}

	if session.IsExpired(s.now()) {
		if err = s.Delete(id); err != nil {
			log.Warn().Err(err).Msg("Verify: evict expired session error")
		}

		return entities.Session{}, fmt.Errorf("Verify: %w", errs.ErrSessionNotFound)
	}

	return session, nil
}

func (s *Service) Delete(id string) (err error) {
	if err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(id))
	}); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}

	return nil
}

// Count reports live sessions.
func (s *Service) Count() int {
	now := s.now()
	count := 0
	if err := s.iterate(func(session entities.Session) {
		if !session.IsExpired(now) {
			count++
		}
	}); err != nil {
		log.Error().Err(err).Msg("Count")
	}

	return count
}

func (s *Service) CleanupExpired() (evicted int, err error) {
	now := s.now()
	expired := make([]string, 0)
	if err = s.iterate(func(session entities.Session) {
		if session.IsExpired(now) {
			expired = append(expired, session.ID)
		}
	}); err != nil {
		return 0, fmt.Errorf("CleanupExpired: %w", err)
	}

	for _, id := range expired {
		if err = s.Delete(id); err != nil {
			return evicted, fmt.Errorf("CleanupExpired: %w", err)
		}
		evicted++
	}

	return evicted, nil
}

// IssueCredential opens a session for a freshly logged in operator.
func (s *Service) IssueCredential(username string) (credential entities.Credential, err error) {
	session, err := s.Create(username)
	if err != nil {
		return credential, fmt.Errorf("IssueCredential: %w", err)
	}

	return entities.Credential{
		Value:      session.ID,
		Type:       constants.TokenTypeSession,
		CookieName: constants.SessionCookie,
		ExpiresAt:  session.ExpiresAt,
	}, nil
}

func (s *Service) RevokeCredential(value string) (err error) {
	if err = s.Delete(value); err != nil {
		return fmt.Errorf("RevokeCredential: %w", err)
	}

	return nil
}

func (s *Service) Authenticate(credential string) (username string, err error) {
	session, err := s.Verify(credential)
	if err != nil {
		return "", fmt.Errorf("Authenticate: %w", err)
	}

	return session.Username, nil
}

func (s *Service) CookieName() string {
	return constants.SessionCookie
}

func (s *Service) iterate(fn func(session entities.Session)) (err error) {
	return s.db.View(func(txn *badger.Txn) error {
		iterator := txn.NewIterator(badger.DefaultIteratorOptions)
		defer iterator.Close()

		prefix := []byte(keyPrefix)
		for iterator.Seek(prefix); iterator.ValidForPrefix(prefix); iterator.Next() {
			var session entities.Session
			if err := iterator.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &session)
			}); err != nil {
				return fmt.Errorf("iterate: %w", err)
			}

			fn(session)
		}

		return nil
	})
}

func sessionKey(id string) []byte {
	return []byte(keyPrefix + id)
}

func randomID() (id string, err error) {
	buf := make([]byte, idBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", fmt.Errorf("randomID: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
