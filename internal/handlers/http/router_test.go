package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/dentalclinic-backend/internal/domain/entities"
	"github.com/rafabene/dentalclinic-backend/internal/domain/errors"
	"github.com/rafabene/dentalclinic-backend/internal/domain/ports"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/i18n"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/idgen"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/logging"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/push"
	"github.com/rafabene/dentalclinic-backend/internal/infrastructure/security"
	"github.com/rafabene/dentalclinic-backend/internal/services"
)

const (
	testSecret   = "http-handlers-test-secret-32-bytes!!"
	testPassword = "s3cret-password"
)

// ==================== Fakes ====================

type memoryCredentials struct {
	mu        sync.Mutex
	emails    map[string]string // id -> email
	passwords map[string]string // id -> senha
	createErr error
}

func newMemoryCredentials() *memoryCredentials {
	return &memoryCredentials{emails: map[string]string{}, passwords: map[string]string{}}
}

func (m *memoryCredentials) CreateUser(_ context.Context, email, password string) (*ports.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return nil, m.createErr
	}
	for _, existing := range m.emails {
		if existing == email {
			return nil, errors.ErrEmailAlreadyExists
		}
	}
	id := uuid.NewString()
	m.emails[id] = email
	m.passwords[id] = password
	return &ports.Credential{ID: id, Email: email}, nil
}

func (m *memoryCredentials) GetUser(_ context.Context, id string) (*ports.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email, ok := m.emails[id]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	return &ports.Credential{ID: id, Email: email}, nil
}

func (m *memoryCredentials) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.emails, id)
	delete(m.passwords, id)
	return nil
}

func (m *memoryCredentials) VerifyPassword(_ context.Context, email, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, e := range m.emails {
		if e == email && m.passwords[id] == password {
			return nil
		}
	}
	return errors.ErrInvalidCredentials
}

func (m *memoryCredentials) UpdatePassword(_ context.Context, id, newPassword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.passwords[id] = newPassword
	return nil
}

func (m *memoryCredentials) UpdateEmail(_ context.Context, id, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.emails[id] = email
	return nil
}

func (m *memoryCredentials) SendPasswordReset(context.Context, string, string) error {
	return nil
}

func (m *memoryCredentials) ResetPassword(_ context.Context, accessToken, _ string) error {
	if accessToken != "recovery-token" {
		return errors.ErrInvalidToken
	}
	return nil
}

type memoryObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memoryObjectStore) Upload(_ context.Context, key, _ string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *memoryObjectStore) SignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.test/%s?expires=%d", key, int(ttl.Seconds())), nil
}

// ==================== Servidor de teste ====================

type testServer struct {
	t           *testing.T
	router      *gin.Engine
	credentials *memoryCredentials
	objects     *memoryObjectStore
	issuer      *security.JWTIssuer
	users       *services.UserService
	pingErr     error
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), postgres.GormConfig(logger.Silent))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	i18nService, err := i18n.NewDefaultService()
	if err != nil {
		t.Fatalf("failed to load locales: %v", err)
	}

	ids, err := idgen.NewSnowflakeGenerator(1)
	if err != nil {
		t.Fatalf("failed to create id generator: %v", err)
	}

	log := logging.Nop{}
	s := &testServer{
		t:           t,
		credentials: newMemoryCredentials(),
		objects:     &memoryObjectStore{objects: map[string][]byte{}},
		issuer:      security.NewJWTIssuer(testSecret, "http-test", 64),
	}

	userRepo := postgres.NewUserRepository(db)
	uow := postgres.NewUnitOfWork(db)
	audit := services.NewActivityRecorder(postgres.NewActivityLogRepository(db), ids, log)
	notifier := services.NewNotificationService(postgres.NewNotificationRepository(db), userRepo, push.NewLogSender(log), log)

	authService := services.NewAuthService(userRepo, postgres.NewRefreshTokenRepository(db), s.credentials, s.issuer, uow, notifier,
		services.AuthSettings{
			WebAccessTTL: 24 * time.Hour,
			AppAccessTTL: 15 * time.Minute,
			RefreshTTL:   720 * time.Hour,
		}, log)
	s.users = services.NewUserService(userRepo, s.credentials, uow, audit, notifier, log)
	catalog := services.NewCatalogService(postgres.NewServiceRepository(db), postgres.NewCategoryRepository(db), uow, audit, notifier, log)
	models := services.NewModelService(postgres.NewDentalModelRepository(db), s.objects, t.TempDir(), 600*time.Second, log)

	s.router = NewRouter(RouterConfig{
		BaseURL:        "http://api.clinic.test",
		AllowedOrigins: "*",
		Issuer:         s.issuer,
		I18n:           i18nService,
		Logger:         log,
	}, Handlers{
		Auth:          NewAuthHandler(authService, log),
		Users:         NewUserHandler(s.users, log),
		Catalog:       NewCatalogHandler(catalog, log),
		Models:        NewModelHandler(models, log, 1<<20),
		Notifications: NewNotificationHandler(notifier, log),
		ActivityLogs:  NewActivityLogHandler(audit, log),
		Health:        NewHealthHandler("test", func(context.Context) error { return s.pingErr }, log),
	})

	return s
}

// seedUser cria um usuário direto pelo serviço, aceitando qualquer papel
func (s *testServer) seedUser(username string, role entities.Role) *entities.User {
	s.t.Helper()

	user, err := s.users.AddUser(context.Background(), uuid.NewString(), services.NewUserInput{
		ProfileInput: services.ProfileInput{
			Username:  username,
			Email:     username + "@clinic.test",
			Role:      role,
			FirstName: "Test",
			LastName:  "User",
		},
		Password: testPassword,
	})
	if err != nil {
		s.t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user
}

// tokenFor emite um access token para o usuário, como o login faria
func (s *testServer) tokenFor(user *entities.User) string {
	s.t.Helper()

	token, err := s.issuer.IssueAccessToken(ports.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, time.Hour)
	if err != nil {
		s.t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

type request struct {
	method      string
	path        string
	body        any
	token       string
	headers     map[string]string
	rawBody     io.Reader
	contentType string
}

func (s *testServer) do(r request) *httptest.ResponseRecorder {
	s.t.Helper()

	var body io.Reader = r.rawBody
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			s.t.Fatalf("failed to encode body: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(r.method, r.path, body)
	switch {
	case r.contentType != "":
		req.Header.Set("Content-Type", r.contentType)
	case r.body != nil:
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v (%s)", err, w.Body.String())
	}
	return out
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()

	if w.Code != status {
		t.Fatalf("esperava status %d, obteve %d: %s", status, w.Code, w.Body.String())
	}
}

func expectProblem(t *testing.T, w *httptest.ResponseRecorder, status int) map[string]any {
	t.Helper()

	expectStatus(t, w, status)
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("esperava application/problem+json, obteve '%s'", ct)
	}

	problem := decode[map[string]any](t, w)
	if problem["status"] != float64(status) {
		t.Errorf("esperava status %d no corpo, obteve %v", status, problem["status"])
	}
	return problem
}
