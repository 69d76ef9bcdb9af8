package core

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"AgentDesk/entity"
	"AgentDesk/internal/database"
	"AgentDesk/internal/datasource"
	"AgentDesk/internal/lib/sl"
	"AgentDesk/internal/service/auth"
	"AgentDesk/internal/tablestore"
)

// ErrForbidden marks an operation the authenticated principal may not
// perform (wrong tenant, admin-only collection).
var ErrForbidden = errors.New("forbidden")

// ErrNotFound marks a record that does not exist for this principal.
var ErrNotFound = errors.New("not found")

// DataSource is the resilience-wrapped record store.
type DataSource interface {
	Fetch(ctx context.Context, collection, tenantID string, opts tablestore.Options) (datasource.FetchResult, error)
	Create(ctx context.Context, collection string, record entity.Record) (datasource.RecordResult, error)
	Update(ctx context.Context, collection, id string, fields entity.Record) (datasource.RecordResult, error)
	Delete(ctx context.Context, collection, id string) (datasource.DeleteResult, error)
}

// AuthService issues and resolves dashboard sessions.
type AuthService interface {
	Login(ctx context.Context, clientId, password string) (*auth.Session, error)
	AdminLogin(ctx context.Context, email, password string) (*auth.Session, error)
	AuthenticateByToken(token string) (*entity.AuthUser, error)
	Logout(token string)
}

// Responder provides the AI-assisted features.
type Responder interface {
	SuggestReply(ctx context.Context, thread []entity.Record) (string, error)
	SummarizeCall(ctx context.Context, details string) (string, error)
}

// Repository is the optional Mongo-backed ops store: API keys and the
// fallback audit trail.
type Repository interface {
	CheckApiKey(key string) (string, error)
	GenerateApiKey(username string) (string, error)
	RecentFallbacks(limit int64) ([]repository.FallbackEvent, error)
}

type Core struct {
	ds          DataSource
	authService AuthService
	responder   Responder
	repo        Repository
	authKey     string
	mu          sync.Mutex
	keys        map[string]string
	log         *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log:  log.With(sl.Module("core")),
		keys: make(map[string]string),
	}
}

func (c *Core) SetDataSource(ds DataSource) {
	c.ds = ds
}

func (c *Core) SetAuthService(s AuthService) {
	c.authService = s
}

func (c *Core) SetResponder(r Responder) {
	c.responder = r
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

// SetAuthKey installs the static service API key from config.
func (c *Core) SetAuthKey(key string) {
	c.authKey = key
}

// tenantFor returns the tenant filter a principal is allowed to read
// with: admins see across tenants, everyone else is pinned to their own
// client id.
func tenantFor(user *entity.AuthUser) string {
	if user.Admin {
		return ""
	}
	return user.ClientId
}
