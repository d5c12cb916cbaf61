package session

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"
	"time"

	"github.com/dmitrijs2005/insula/internal/client/client"
	"github.com/dmitrijs2005/insula/internal/client/models"
	"github.com/dmitrijs2005/insula/internal/client/storage"
	"github.com/dmitrijs2005/insula/internal/common"
	"github.com/dmitrijs2005/insula/internal/logging"
)

// Store owns the session State. Build it with New and hand the same
// pointer to everything that renders from it.
type Store struct {
	api     client.Client
	storage storage.Storage
	key     string
	log     logging.Logger

	mu          sync.Mutex
	state       State
	initStarted bool
	subs        map[int]func(State)
	nextSub     int
}

// Option configures a Store.
type Option func(*Store)

// WithStorageKey overrides the key of the persisted record.
func WithStorageKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// New builds the store in its cold-start state and restores token, user
// and isAuthenticated from the persisted record. An unreadable record is
// logged and ignored.
func New(ctx context.Context, api client.Client, st storage.Storage, log logging.Logger, opts ...Option) *Store {
	s := &Store{
		api:     api,
		storage: st,
		key:     common.DefaultSessionKey,
		log:     log,
		state:   initialState(),
		subs:    make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	raw, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.log.Warn(ctx, "persisted session unreadable, starting empty", "key", s.key, "error", err)
		return
	}
	if raw == nil {
		return
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.log.Warn(ctx, "persisted session corrupt, starting empty", "key", s.key, "error", err)
		return
	}

	// Initialized is a per-process guard, the persisted flag doesn't carry over.
	s.state.Token = rec.Token
	s.state.User = rec.User
	s.state.IsAuthenticated = rec.IsAuthenticated && rec.Token != ""
	s.log.Debug(ctx, "session restored", "has_token", rec.Token != "", "has_user", rec.User != nil)
}

// State returns a snapshot of the current session.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to receive a snapshot after every commit.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// commit applies fn to the state, persists the record if it changed and
// notifies subscribers. Persistence failures are logged, never returned.
func (s *Store) commit(ctx context.Context, fn func(st *State)) {
	s.mu.Lock()
	before := s.state.record()
	fn(&s.state)
	if s.state.Token == "" {
		s.state.IsAuthenticated = false
	}
	after := s.state.record()
	if !reflect.DeepEqual(before, after) {
		s.persist(ctx, after)
	}
	notify := s.notifierLocked()
	s.mu.Unlock()

	notify()
}

// notifierLocked captures the current snapshot and subscribers; the
// returned func delivers them and must be called without s.mu held.
func (s *Store) notifierLocked() func() {
	snapshot := s.state.clone()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return func() {
		for _, fn := range subs {
			fn(snapshot)
		}
	}
}

// persist writes rec; caller holds s.mu so writes land in commit order.
func (s *Store) persist(ctx context.Context, rec record) {
	data, err := json.Marshal(rec)
	if err != nil {
		s.log.Error(ctx, "encode session record", "error", err)
		return
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		s.log.Error(ctx, "persist session record", "key", s.key, "error", err)
	}
}

func (s *Store) token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// Initialize runs the startup sequence once per process: with a persisted
// token it loads the profile (failures end up in State, not returned),
// otherwise it just finishes loading. Repeated or concurrent calls are no-ops.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	if s.state.Initialized || s.initStarted {
		s.mu.Unlock()
		return
	}
	s.initStarted = true
	hasToken := s.state.Token != ""
	s.mu.Unlock()

	if !hasToken {
		s.commit(ctx, func(st *State) {
			st.IsLoading = false
			st.Initialized = true
		})
		s.log.Debug(ctx, "initialized without session")
		return
	}

	if err := s.LoadUser(ctx); err != nil {
		s.log.Warn(ctx, "restoring session failed", "error", err)
	}
	s.commit(ctx, func(st *State) {
		st.Initialized = true
	})
}

// Login authenticates with email and password.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.beginAttempt(ctx)
	resp, err := s.api.Login(ctx, models.LoginInput{Email: email, Password: password})
	return s.finishAuth(ctx, client.OpLogin, resp, err)
}

// Register creates an account and signs it in. The response is validated
// like a login response even though the server promises a full profile.
func (s *Store) Register(ctx context.Context, in models.RegisterInput) error {
	s.beginAttempt(ctx)
	resp, err := s.api.Register(ctx, in)
	return s.finishAuth(ctx, client.OpRegister, resp, err)
}

func (s *Store) beginAttempt(ctx context.Context) {
	s.commit(ctx, func(st *State) {
		st.IsLoading = true
		st.Error = ""
	})
}

// finishAuth commits the outcome of a login or register exchange. On
// failure the previous token and user are left as they were.
func (s *Store) finishAuth(ctx context.Context, op string, resp *models.UserResponse, err error) error {
	if err == nil {
		v := Validate(resp)
		if v.Valid && v.Token == "" {
			v.Valid = false
			v.Missing = append(v.Missing, "token")
		}
		if v.Valid {
			s.commit(ctx, func(st *State) {
				st.User = v.User
				st.Token = v.Token
				st.IsAuthenticated = true
				st.IsLoading = false
				st.Error = ""
			})
			s.log.Info(ctx, "session established", "op", op, "user_id", v.User.ID, "token_len", len(v.Token))
			return nil
		}
		err = &InvalidProfileError{Op: op, Missing: v.Missing}
	}

	err = classify(op, err)
	s.commit(ctx, func(st *State) {
		st.Error = ErrorMessage(err)
		st.IsLoading = false
		st.IsAuthenticated = false
	})
	s.log.Warn(ctx, "authentication failed", "op", op, "error", err)
	return err
}

// Logout clears the session locally. No remote revocation is performed.
func (s *Store) Logout(ctx context.Context) {
	s.commit(ctx, func(st *State) {
		st.User = nil
		st.Token = ""
		st.IsAuthenticated = false
		st.Error = ""
		st.IsLoading = false
	})
	s.log.Info(ctx, "logged out")
}

// LoadUser fetches the profile for the current token. Without a token it
// settles on "not logged in" and returns nil. Any failure clears the token
// and user: a restored credential that can't produce a profile is not kept.
func (s *Store) LoadUser(ctx context.Context) error {
	token := s.token()
	if token == "" {
		s.commit(ctx, func(st *State) {
			st.IsAuthenticated = false
			st.IsLoading = false
		})
		return nil
	}

	s.beginAttempt(ctx)
	resp, err := s.api.GetProfile(ctx, token)
	if err == nil {
		v := Validate(resp)
		if v.Valid {
			s.commit(ctx, func(st *State) {
				st.User = v.User
				st.IsAuthenticated = true
				st.IsLoading = false
			})
			return nil
		}
		err = &InvalidProfileError{Op: client.OpGetProfile, Missing: v.Missing}
	}

	err = classify(client.OpGetProfile, err)
	s.commit(ctx, func(st *State) {
		st.User = nil
		st.Token = ""
		st.IsAuthenticated = false
		st.IsLoading = false
		st.Error = ErrorMessage(err)
	})
	s.log.Warn(ctx, "profile load failed, session cleared", "error", err)
	return err
}

// ClearError drops the last error message.
func (s *Store) ClearError() {
	s.commit(context.Background(), func(st *State) {
		st.Error = ""
	})
}

// Reset returns the store to its cold-start state, re-arms Initialize and
// removes the persisted record.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.state = initialState()
	s.initStarted = false
	err := s.storage.Remove(ctx, s.key)
	notify := s.notifierLocked()
	s.mu.Unlock()

	notify()
	return err
}

// SavedAt reports when the session record was last persisted. ok is false
// when the record was never written or the storage keeps no write times.
func (s *Store) SavedAt(ctx context.Context) (t time.Time, ok bool) {
	st, stamped := s.storage.(storage.Stamped)
	if !stamped {
		return time.Time{}, false
	}
	t, ok, err := st.UpdatedAt(ctx, s.key)
	if err != nil {
		s.log.Warn(ctx, "reading session write time failed", "key", s.key, "error", err)
		return time.Time{}, false
	}
	return t, ok
}
