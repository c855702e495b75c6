// Package session holds per-conversation state: the active ayah window,
// language preference, chat history and any uploaded document index.
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"hidayah-ai/internal/docindex"
	"hidayah-ai/internal/quran"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session: not found")

// historyLimit caps retained turns so long conversations stay bounded.
const historyLimit = 40

// Turn is one exchange in the conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the mutable state of one conversation. Access goes through
// Store methods; callers receive copies.
type Session struct {
	ID             string
	Window         []quran.Ayah
	TafsirLanguage string
	History        []Turn
	DocumentName   string
	DocumentIndex  *docindex.Index
}

// Store is an in-memory session registry safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new session and returns its id.
func (s *Store) Create(language string) *Session {
	if language == "" {
		language = "en"
	}
	sess := &Session{
		ID:             uuid.NewString(),
		TafsirLanguage: language,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess.snapshot()
}

// Get returns a copy of a session.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess.snapshot(), nil
}

// GetOrCreate returns the session with the given id, creating a fresh one
// when the id is empty or unknown.
func (s *Store) GetOrCreate(id, language string) *Session {
	if id != "" {
		if sess, err := s.Get(id); err == nil {
			return sess
		}
	}
	return s.Create(language)
}

// SetWindow replaces the session's active ayah window.
func (s *Store) SetWindow(id string, window []quran.Ayah) error {
	return s.update(id, func(sess *Session) {
		sess.Window = append([]quran.Ayah(nil), window...)
	})
}

// SetLanguage changes the session's tafsir language preference.
func (s *Store) SetLanguage(id, language string) error {
	return s.update(id, func(sess *Session) {
		sess.TafsirLanguage = language
	})
}

// SetDocument attaches an uploaded document's index to the session,
// replacing any previous one.
func (s *Store) SetDocument(id, name string, index *docindex.Index) error {
	return s.update(id, func(sess *Session) {
		sess.DocumentName = name
		sess.DocumentIndex = index
	})
}

// AppendHistory records one exchange, evicting the oldest turns beyond the
// retention limit.
func (s *Store) AppendHistory(id string, turns ...Turn) error {
	return s.update(id, func(sess *Session) {
		sess.History = append(sess.History, turns...)
		if len(sess.History) > historyLimit {
			sess.History = sess.History[len(sess.History)-historyLimit:]
		}
	})
}

func (s *Store) update(id string, fn func(*Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	fn(sess)
	return nil
}

// snapshot copies the session so callers cannot race store mutations. The
// document index itself is immutable and shared.
func (s *Session) snapshot() *Session {
	out := &Session{
		ID:             s.ID,
		TafsirLanguage: s.TafsirLanguage,
		DocumentName:   s.DocumentName,
		DocumentIndex:  s.DocumentIndex,
	}
	out.Window = append([]quran.Ayah(nil), s.Window...)
	out.History = append([]Turn(nil), s.History...)
	return out
}
