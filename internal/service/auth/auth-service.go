package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"AgentDesk/entity"
	"AgentDesk/internal/datasource"
	"AgentDesk/internal/lib/sl"
	"AgentDesk/internal/query"
	"AgentDesk/internal/tablestore"
)

// ErrInvalidCredentials covers both unknown accounts and wrong passwords
// so login responses do not leak which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrSessionNotFound means the token is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

const sessionTTL = 24 * time.Hour

// DataSource is the slice of the datasource the auth service needs.
type DataSource interface {
	Fetch(ctx context.Context, collection, tenantID string, opts tablestore.Options) (datasource.FetchResult, error)
}

// Session is one issued login token.
type Session struct {
	Token     string          `json:"token"`
	User      entity.AuthUser `json:"user"`
	CreatedAt time.Time       `json:"created_at"`
}

type Service struct {
	ds       DataSource
	mu       sync.Mutex
	sessions map[string]*Session
	log      *slog.Logger
}

func NewAuthService(logger *slog.Logger) *Service {
	return &Service{
		sessions: make(map[string]*Session),
		log:      logger.With(sl.Module("auth-service")),
	}
}

func (s *Service) SetDataSource(ds DataSource) {
	s.ds = ds
}

// Login authenticates a tenant: the user record for the client id is
// fetched and its bcrypt password_hash compared server-side. The original
// client shipped the credential into a remote filter expression; that
// equality-query scheme is intentionally gone.
func (s *Service) Login(ctx context.Context, clientId, password string) (*Session, error) {
	if s.ds == nil {
		return nil, fmt.Errorf("auth service has no data source")
	}

	res, err := s.ds.Fetch(ctx, entity.CollectionUsers, clientId, tablestore.Options{})
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	if len(res.Records) == 0 {
		return nil, ErrInvalidCredentials
	}

	record := res.Records[0]
	hash := entity.FieldString(record, "password_hash")
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(entity.AuthUser{
		ClientId: clientId,
		Name:     entity.FieldString(record, "name"),
	}), nil
}

// AdminLogin authenticates a back-office account by email against the
// admins collection, which carries no client_id.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (*Session, error) {
	if s.ds == nil {
		return nil, fmt.Errorf("auth service has no data source")
	}

	res, err := s.ds.Fetch(ctx, entity.CollectionAdmins, "", tablestore.Options{
		Where: []query.Condition{query.Eq("email", email)},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch admin: %w", err)
	}
	if len(res.Records) == 0 {
		return nil, ErrInvalidCredentials
	}

	record := res.Records[0]
	hash := entity.FieldString(record, "password_hash")
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(entity.AuthUser{
		Name:  entity.FieldString(record, "name"),
		Admin: true,
	}), nil
}

func (s *Service) newSession(user entity.AuthUser) *Session {
	session := &Session{
		Token:     uuid.NewString(),
		User:      user,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	s.log.With(
		slog.String("client_id", user.ClientId),
		slog.Bool("admin", user.Admin),
	).Info("session issued")
	return session
}

// AuthenticateByToken resolves a session token to its principal.
func (s *Service) AuthenticateByToken(token string) (*entity.AuthUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Since(session.CreatedAt) > sessionTTL {
		delete(s.sessions, token)
		return nil, ErrSessionNotFound
	}
	user := session.User
	return &user, nil
}

// Logout invalidates a session token. Unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// HashPassword is used when creating users/admins through the back
// office.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
