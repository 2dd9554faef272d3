package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	pkgauth "github.com/dhruvpatel/atoz-storefront/pkg/auth"
	"github.com/dhruvpatel/atoz-storefront/pkg/config"
	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
)

// Session is the transient identity state. It resets to guest on logout.
type Session struct {
	LoggedIn bool       `json:"loggedIn"`
	Name     string     `json:"name"`
	Role     enums.Role `json:"role"`
	Email    string     `json:"email,omitempty"`
}

// LoginResult bundles the minted access token with the session snapshot.
type LoginResult struct {
	Token   string  `json:"token"`
	Session Session `json:"session"`
}

type notifier interface {
	Push(kind enums.ToastKind, message string)
	PushTTL(kind enums.ToastKind, message string, ttl time.Duration)
}

type viewResetter interface {
	Reset()
}

// Gate owns the session state machine: guest, then manager or admin after
// a successful login, back to guest on logout.
type Gate struct {
	mu            sync.RWMutex
	current       Session
	authenticator Authenticator
	toasts        notifier
	views         viewResetter
	jwtCfg        config.JWTConfig
	welcomeTTL    time.Duration
}

// GateParams bundles the dependencies required to build a session gate.
type GateParams struct {
	Authenticator Authenticator
	Toasts        notifier
	Views         viewResetter
	JWTConfig     config.JWTConfig
	WelcomeTTL    time.Duration
}

// NewGate constructs a session gate with the provided dependencies.
func NewGate(params GateParams) (*Gate, error) {
	if params.Authenticator == nil {
		return nil, fmt.Errorf("authenticator is required")
	}
	if params.Toasts == nil {
		return nil, fmt.Errorf("notifier is required")
	}
	if params.Views == nil {
		return nil, fmt.Errorf("view router is required")
	}
	return &Gate{
		current:       guestSession(),
		authenticator: params.Authenticator,
		toasts:        params.Toasts,
		views:         params.Views,
		jwtCfg:        params.JWTConfig,
		welcomeTTL:    params.WelcomeTTL,
	}, nil
}

// Login resolves the credentials through the authenticator. On rejection
// the session stays guest and an error toast is emitted; on success the
// session is stored, a token minted, and a welcome toast shown.
func (g *Gate) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	role, err := g.authenticator.Authenticate(ctx, creds)
	if err != nil {
		message := invalidCredentialsMessage
		if typed := pkgerrors.As(err); typed != nil && typed.Message() != "" {
			message = typed.Message()
		}
		g.toasts.Push(enums.ToastKindError, message)
		return LoginResult{}, err
	}

	name := strings.TrimSpace(creds.Name)
	token, err := pkgauth.MintAccessToken(g.jwtCfg, time.Now(), pkgauth.AccessTokenPayload{
		Name:  name,
		Email: creds.Email,
		Role:  role,
	})
	if err != nil {
		return LoginResult{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	session := Session{
		LoggedIn: true,
		Name:     name,
		Role:     role,
		Email:    creds.Email,
	}

	g.mu.Lock()
	g.current = session
	g.mu.Unlock()

	g.toasts.PushTTL(enums.ToastKindSuccess, fmt.Sprintf("Welcome %s", name), g.welcomeTTL)
	return LoginResult{Token: token, Session: session}, nil
}

// Logout resets the session to guest and forces the view router back to
// the shop view.
func (g *Gate) Logout() Session {
	g.mu.Lock()
	g.current = guestSession()
	g.mu.Unlock()

	g.views.Reset()
	return guestSession()
}

// Current returns the session snapshot.
func (g *Gate) Current() Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current
}

func guestSession() Session {
	return Session{Role: enums.RoleGuest}
}
