package handlers

import (
	"context"
	"io"
	"net/http"

	"image_enhancer/internal/models"
	"image_enhancer/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error
	resolveUser   *models.User
	resolveErr    error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}
func (m *mockAuth) ResolveUser(id int) (*models.User, error) {
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	if m.resolveUser != nil {
		return m.resolveUser, nil
	}
	return &models.User{ID: id, Username: "tester"}, nil
}

type mockSettings struct {
	getResp   models.AccountSettings
	getErr    error
	updResp   models.AccountSettings
	updErr    error
	updCalls  int
	lastPhone *string
	lastPic   *string
}

func (m *mockSettings) Get(id int) (models.AccountSettings, error) {
	return m.getResp, m.getErr
}
func (m *mockSettings) Update(id int, phone, profilePic *string) (models.AccountSettings, error) {
	m.updCalls++
	m.lastPhone = phone
	m.lastPic = profilePic
	return m.updResp, m.updErr
}

type mockActivity struct {
	recorded []string // event types in order
	listResp []models.ActivityEvent
	listErr  error
	lastF    service.LogFilter
}

func (m *mockActivity) Record(_ context.Context, accountID int, typ, description string, meta any) error {
	m.recorded = append(m.recorded, typ)
	return nil
}
func (m *mockActivity) List(_ context.Context, accountID int, f service.LogFilter) ([]models.ActivityEvent, error) {
	m.lastF = f
	return m.listResp, m.listErr
}

type mockAssets struct {
	storeRel   string
	storeErr   error
	storeCalls int
	lastName   string
	lastPurp   string
}

func (m *mockAssets) ValidExtension(filename string) bool {
	return service.NewAssetService("").ValidExtension(filename)
}
func (m *mockAssets) Store(accountID int, r io.Reader, filename, purpose string) (string, error) {
	m.storeCalls++
	m.lastName = filename
	m.lastPurp = purpose
	return m.storeRel, m.storeErr
}
func (m *mockAssets) Resolve(relPath string) (string, error) {
	return service.NewAssetService("").Resolve(relPath)
}
func (m *mockAssets) Enhance(relPath string) (string, error) {
	return relPath, nil
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
