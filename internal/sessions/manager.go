package sessions

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/stayhub/stayctl/internal/api"
	"github.com/stayhub/stayctl/internal/common"
	"github.com/stayhub/stayctl/internal/gateway"
	"github.com/stayhub/stayctl/internal/models"
	"golang.org/x/sync/semaphore"
)

var ErrNotAuthenticated = errors.New("you must be logged in to update your profile")

// AuthAPI is the subset of the auth resource client the manager drives.
type AuthAPI interface {
	Register(ctx context.Context, registration models.Registration) (*models.AuthResponse, error)
	Login(ctx context.Context, credentials models.Credentials) (*models.AuthResponse, error)
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.ProfileUpdateResponse, error)
}

// Manager owns the session state and its persisted copy. It is the only
// writer of either. Mutating actions run one at a time; readers of the
// token never wait for an action in flight.
type Manager struct {
	store Store

	// auth reads the token from the manager itself. verifier is bound to
	// the stored token while the startup verification runs.
	auth     AuthAPI
	verifier func(token string) AuthAPI

	actions *semaphore.Weighted

	lock        sync.RWMutex
	status      models.SessionStatus
	token       *string
	user        *models.UserProfile
	lastError   string
	initialized bool
}

func NewManager(store Store, sender api.Sender) *Manager {
	m := &Manager{
		store:   store,
		actions: semaphore.NewWeighted(1),
		status:  models.SessionUninitialized,
	}

	m.auth = api.NewAuthClient(sender, m)
	m.verifier = func(token string) AuthAPI {
		return api.NewAuthClient(sender, gateway.StaticToken(token))
	}

	return m
}

// Init loads the persisted session and verifies it against the profile
// endpoint. A session that fails verification is dropped without an error.
// Only the first call does any work.
func (m *Manager) Init(ctx context.Context) error {

	if err := m.actions.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("failed to initialize session: %w", err)
	}
	defer m.actions.Release(1)

	m.lock.Lock()
	if m.initialized {
		m.lock.Unlock()
		return nil
	}
	m.initialized = true
	m.lock.Unlock()

	stored, err := m.store.Load(ctx)
	if err != nil {
		logrus.WithError(err).Warnln("Failed to load stored session")
		m.signOut(ctx)
		return nil
	}

	if stored == nil {
		logrus.Debugln("No stored session found")
		m.setAnonymous()
		return nil
	}

	m.setStatus(models.SessionVerifying)

	logrus.WithFields(logrus.Fields{
		"username": stored.User.Username,
		"token":    common.MaskToken(stored.Token),
	}).Debugln("Verifying stored session")

	profile, err := m.verifier(stored.Token).GetProfile(ctx)
	if err != nil {
		logrus.WithError(err).Debugln("Stored session is no longer valid, signing out")
		m.signOut(ctx)
		return nil
	}

	if err := m.store.Save(ctx, stored.Token, profile); err != nil {
		logrus.WithError(err).Warnln("Failed to persist verified session, signing out")
		m.signOut(ctx)
		return nil
	}

	m.setAuthenticated(stored.Token, profile)

	return nil
}

func (m *Manager) Login(ctx context.Context, credentials models.Credentials) (*models.UserProfile, error) {
	return m.authenticate(ctx, models.SessionLoggingIn, func(ctx context.Context) (*models.AuthResponse, error) {
		return m.auth.Login(ctx, credentials)
	})
}

func (m *Manager) Register(ctx context.Context, registration models.Registration) (*models.UserProfile, error) {
	return m.authenticate(ctx, models.SessionRegistering, func(ctx context.Context) (*models.AuthResponse, error) {
		return m.auth.Register(ctx, registration)
	})
}

// authenticate runs a login style action: persist and adopt the returned
// pair on success, keep the previous state and record the error otherwise.
func (m *Manager) authenticate(
	ctx context.Context,
	transient models.SessionStatus,
	call func(ctx context.Context) (*models.AuthResponse, error),
) (*models.UserProfile, error) {

	if err := m.actions.Acquire(ctx, 1); err != nil {
		m.recordError(err)
		return nil, err
	}
	defer m.actions.Release(1)

	previous := m.beginAction(transient)

	resp, err := call(ctx)
	if err != nil {
		logrus.WithError(err).WithField("action", transient).Debugln("Authentication failed")
		m.failAction(previous, err)
		return nil, err
	}

	token := resp.GetToken()

	if err := m.store.Save(ctx, token, resp.User); err != nil {
		err = fmt.Errorf("failed to persist session: %w", err)
		m.failAction(previous, err)
		return nil, err
	}

	m.setAuthenticated(token, resp.User)

	logrus.WithFields(logrus.Fields{
		"username": resp.User.Username,
		"admin":    resp.User.IsAdmin,
	}).Infoln("Signed in")

	return m.User(), nil
}

// Logout clears the stored and in-memory session. It makes no network
// call and waits for any action in flight to finish first.
func (m *Manager) Logout(ctx context.Context) {

	// Neither the wait nor the clear can be aborted by the caller.
	_ = m.actions.Acquire(context.WithoutCancel(ctx), 1)
	defer m.actions.Release(1)

	m.lock.Lock()
	m.lastError = ""
	m.initialized = true
	m.lock.Unlock()

	m.signOut(ctx)
}

// UpdateProfile sends the update and merges the returned fields over the
// current profile.
func (m *Manager) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error) {

	if err := m.actions.Acquire(ctx, 1); err != nil {
		m.recordError(err)
		return nil, err
	}
	defer m.actions.Release(1)

	m.lock.RLock()
	authenticated := m.status == models.SessionAuthenticated && m.user != nil && m.token != nil
	var current models.UserProfile
	var token string
	if authenticated {
		current = *m.user
		token = *m.token
	}
	m.lock.RUnlock()

	if !authenticated {
		m.recordError(ErrNotAuthenticated)
		return nil, ErrNotAuthenticated
	}

	previous := m.beginAction(models.SessionUpdatingProfile)

	resp, err := m.auth.UpdateProfile(ctx, update)
	if err != nil {
		m.failAction(previous, err)
		return nil, err
	}

	merged := models.MergeProfile(current, *resp.User)

	if err := m.store.Save(ctx, token, &merged); err != nil {
		err = fmt.Errorf("failed to persist profile: %w", err)
		m.failAction(previous, err)
		return nil, err
	}

	m.setAuthenticated(token, &merged)

	return m.User(), nil
}

// ClearError forgets the last recorded error.
func (m *Manager) ClearError() {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.lastError = ""
}

// Token implements gateway.TokenSource.
func (m *Manager) Token() string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if m.token == nil {
		return ""
	}
	return *m.token
}

func (m *Manager) Status() models.SessionStatus {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.status
}

// User returns a copy of the current profile, or nil.
func (m *Manager) User() *models.UserProfile {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

func (m *Manager) LastError() string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.lastError
}

func (m *Manager) IsAuthenticated() bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.status == models.SessionAuthenticated && m.user != nil
}

func (m *Manager) IsAdmin() bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.user != nil && m.user.IsAdmin
}

// Snapshot copies the whole session state.
func (m *Manager) Snapshot() models.Session {
	m.lock.RLock()
	defer m.lock.RUnlock()

	session := models.Session{
		Status:    m.status,
		LastError: m.lastError,
	}

	if m.token != nil {
		token := *m.token
		session.Token = &token
	}

	if m.user != nil {
		user := *m.user
		session.User = &user
	}

	return session
}

func (m *Manager) setStatus(status models.SessionStatus) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.status = status
}

func (m *Manager) setAnonymous() {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.status = models.SessionAnonymous
	m.token = nil
	m.user = nil
}

func (m *Manager) setAuthenticated(token string, user *models.UserProfile) {
	copied := *user

	m.lock.Lock()
	defer m.lock.Unlock()
	m.status = models.SessionAuthenticated
	m.token = &token
	m.user = &copied
}

// signOut clears the store and memory. The clear ignores cancellation of
// ctx so a stored pair never outlives the in-memory one. A store failure
// is logged only; the in-memory session is dropped regardless.
func (m *Manager) signOut(ctx context.Context) {
	if err := m.store.Clear(context.WithoutCancel(ctx)); err != nil {
		logrus.WithError(err).Errorln("Failed to clear stored session")
	}
	m.setAnonymous()
}

func (m *Manager) beginAction(transient models.SessionStatus) models.SessionStatus {
	m.lock.Lock()
	defer m.lock.Unlock()
	previous := m.status
	m.status = transient
	m.lastError = ""
	return previous
}

func (m *Manager) failAction(previous models.SessionStatus, err error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.status = previous
	m.lastError = gateway.MessageOf(err)
}

func (m *Manager) recordError(err error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.lastError = gateway.MessageOf(err)
}
