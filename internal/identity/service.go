package identity

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	pkgauth "github.com/danielavega/shopfront-backend/pkg/auth"
	"github.com/danielavega/shopfront-backend/pkg/config"
	pkgerrors "github.com/danielavega/shopfront-backend/pkg/errors"
	"github.com/danielavega/shopfront-backend/pkg/metrics"
)

// User is the synthetic record minted by the mock identity service.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// State is the session's identity snapshot.
type State struct {
	User            *User  `json:"user"`
	IsAuthenticated bool   `json:"is_authenticated"`
	IsLoading       bool   `json:"is_loading"`
	Error           string `json:"error,omitempty"`
}

// Result carries the outcome of a successful login or register.
type Result struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Service simulates an identity provider: canned credential rules, a fixed
// latency before resolution, and at most one surfaced error at a time. Each
// asynchronous attempt is tagged with a monotonic generation; a completion only
// applies while its generation is still the latest, so a stale attempt can never
// clobber the state of a newer one.
type Service struct {
	idCfg  config.IdentityConfig
	jwtCfg config.JWTConfig
	m      *metrics.StorefrontMetrics
	now    func() time.Time

	mu         sync.Mutex
	generation uint64
	state      State
}

// NewService builds a mock identity service. metrics may be nil.
func NewService(idCfg config.IdentityConfig, jwtCfg config.JWTConfig, m *metrics.StorefrontMetrics) *Service {
	return &Service{
		idCfg:  idCfg,
		jwtCfg: jwtCfg,
		m:      m,
		now:    time.Now,
	}
}

// Login resolves after the simulated delay. Validation failures and credential
// rejections land in the state's error slot; success replaces the user and mints
// a demo token.
func (s *Service) Login(ctx context.Context, email, password string) (*Result, error) {
	gen := s.begin()

	if err := s.wait(ctx, gen); err != nil {
		return nil, err
	}

	user, authErr := resolveLogin(s.idCfg, email, password)
	return s.finish(ctx, "login", gen, user, authErr)
}

// Register resolves after the simulated delay. Any syntactically valid input
// succeeds, minting a user with a time-derived identifier.
func (s *Service) Register(ctx context.Context, email, password, name string) (*Result, error) {
	gen := s.begin()

	if err := s.wait(ctx, gen); err != nil {
		return nil, err
	}

	var user *User
	authErr := validateRegistration(email, password, name)
	if authErr == nil {
		user = &User{
			ID:    strconv.FormatInt(s.now().UnixMilli(), 10),
			Email: email,
			Name:  name,
		}
	}
	return s.finish(ctx, "register", gen, user, authErr)
}

// Logout resets the session to the unauthenticated default. Always succeeds and
// invalidates any in-flight attempt.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = State{}
}

// ClearError drops the surfaced error, as does any form-field edit upstream.
func (s *Service) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

// State returns a detached snapshot of the identity state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	if s.state.User != nil {
		user := *s.state.User
		snap.User = &user
	}
	return snap
}

func (s *Service) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state.IsLoading = true
	s.state.Error = ""
	return s.generation
}

func (s *Service) wait(ctx context.Context, gen uint64) error {
	if err := sleepCtx(ctx, s.idCfg.SimulatedDelay); err != nil {
		s.mu.Lock()
		if gen == s.generation {
			s.state.IsLoading = false
		}
		s.mu.Unlock()
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "attempt interrupted")
	}
	return nil
}

func (s *Service) finish(_ context.Context, operation string, gen uint64, user *User, authErr *pkgerrors.Error) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		// A newer attempt (or a logout) superseded this one; discard the result.
		s.m.IncAuthAttempt(operation, "superseded")
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "attempt superseded by a newer request")
	}

	s.state.IsLoading = false

	if authErr != nil {
		s.state.Error = authErr.Message()
		s.m.IncAuthAttempt(operation, strings.ToLower(string(authErr.Code())))
		return nil, authErr
	}

	token, err := pkgauth.MintDemoToken(s.jwtCfg, s.now(), pkgauth.DemoTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		s.state.Error = "internal error"
		s.m.IncAuthAttempt(operation, "error")
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint demo token")
	}

	s.state.User = user
	s.state.IsAuthenticated = true
	s.state.Error = ""
	s.m.IncAuthAttempt(operation, "success")
	return &Result{User: *user, Token: token}, nil
}

// resolveLogin applies the demo's credential rules in order: emptiness, password
// length, the privileged pair, then the permissive fallback.
func resolveLogin(cfg config.IdentityConfig, email, password string) (*User, *pkgerrors.Error) {
	if email == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Email and password are required")
	}
	if len(password) < 6 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Password must be at least 6 characters")
	}

	if email == cfg.AdminEmail && password == cfg.AdminPassword {
		return &User{ID: "1", Email: email, Name: "Admin User"}, nil
	}

	if strings.Contains(email, "@") {
		return &User{ID: "2", Email: email, Name: displayNameFromEmail(email)}, nil
	}

	return nil, pkgerrors.New(pkgerrors.CodeInvalidCredentials, "Invalid email or password")
}

func validateRegistration(email, password, name string) *pkgerrors.Error {
	if email == "" || password == "" || name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "All fields are required")
	}
	if len(password) < 6 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Password must be at least 6 characters")
	}
	if !strings.Contains(email, "@") {
		return pkgerrors.New(pkgerrors.CodeValidation, "Please enter a valid email address")
	}
	if len(name) < 2 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Name must be at least 2 characters")
	}
	return nil
}

// displayNameFromEmail capitalizes the local part of the address.
func displayNameFromEmail(email string) string {
	local := strings.SplitN(email, "@", 2)[0]
	if local == "" {
		return local
	}
	runes := []rune(local)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
