package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"homekeep/organizer-api/api"
	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const strongPassword = "C0rrect-Horse-Battery!"

var verifyTokenRegex = regexp.MustCompile(`token=([0-9a-f-]{36})`)

type fakeMailer struct {
	mu       sync.Mutex
	lastTo   string
	lastBody string
}

func (m *fakeMailer) Send(to, _, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastTo = to
	m.lastBody = body
	return nil
}

func (m *fakeMailer) lastToken(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	match := verifyTokenRegex.FindStringSubmatch(m.lastBody)
	require.Len(t, match, 2, "no verification token in mail body")
	return match[1]
}

func newTestAPI(t *testing.T) (*api.API, *fakeMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		model.User{},
		model.InventoryItem{},
		model.Note{},
		model.Tag{},
		model.Reminder{},
	)
	require.NoError(t, err)

	mailer := &fakeMailer{}
	sessions := session.NewMemoryStore(session.MemorySessionTTL)
	t.Cleanup(func() { sessions.Close() })
	verifyTokens := session.NewMemoryStore(session.VerifyTokenTTL)
	t.Cleanup(func() { verifyTokens.Close() })

	return api.New(&internal.Deps{
		DB:           database,
		Sessions:     sessions,
		VerifyTokens: verifyTokens,
		Mail:         mailer,
	}), mailer
}

func doJSON(t *testing.T, a *api.API, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("session_token", token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func register(t *testing.T, a *api.API, email string) string {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/api/users/register", "", gin.H{
		"email":      email,
		"password":   strongPassword,
		"first_name": "Alice",
		"last_name":  "Smith",
		"birth_date": "1990-03-03",
		"phone":      "+12025550123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return decode(t, w)["userID"].(string)
}

func login(t *testing.T, a *api.API, email, password string) string {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return decode(t, w)["sessionToken"].(string)
}

func TestRegisterAndLogin(t *testing.T) {
	a, _ := newTestAPI(t)

	register(t, a, "alice@example.com")

	// Same address again
	w := doJSON(t, a, http.MethodPost, "/api/users/register", "", gin.H{
		"email":      "alice@example.com",
		"password":   strongPassword,
		"first_name": "Alice",
		"last_name":  "Smith",
		"birth_date": "1990-03-03",
		"phone":      "+12025550123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "Wrong-Password-1!",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, a, "alice@example.com", strongPassword)

	w = doJSON(t, a, http.MethodGet, "/api/validate", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/users/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/validate", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	a, _ := newTestAPI(t)

	cases := map[string]gin.H{
		"bad email": {"email": "nope", "password": strongPassword, "first_name": "Alice", "last_name": "Smith", "birth_date": "1990-03-03", "phone": "+12025550123"},
		"weak pass": {"email": "a@example.com", "password": "password", "first_name": "Alice", "last_name": "Smith", "birth_date": "1990-03-03", "phone": "+12025550123"},
		"underage":  {"email": "b@example.com", "password": strongPassword, "first_name": "Alice", "last_name": "Smith", "birth_date": time.Now().AddDate(-15, 0, 0).Format("2006-01-02"), "phone": "+12025550123"},
		"bad phone": {"email": "c@example.com", "password": strongPassword, "first_name": "Alice", "last_name": "Smith", "birth_date": "1990-03-03", "phone": "123"},
		"bad name":  {"email": "d@example.com", "password": strongPassword, "first_name": "Al1ce", "last_name": "Smith", "birth_date": "1990-03-03", "phone": "+12025550123"},
	}
	for name, body := range cases {
		w := doJSON(t, a, http.MethodPost, "/api/users/register", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestVerifyFlow(t *testing.T) {
	a, mailer := newTestAPI(t)

	register(t, a, "alice@example.com")
	token := mailer.lastToken(t)

	w := doJSON(t, a, http.MethodGet, "/api/users/verify?token="+token, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, decode(t, w)["sessionToken"])

	// Verification tokens are single use
	w = doJSON(t, a, http.MethodGet, "/api/users/verify?token="+token, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNoteOwnership(t *testing.T) {
	a, _ := newTestAPI(t)

	register(t, a, "alice@example.com")
	register(t, a, "bob@example.com")

	aliceToken := login(t, a, "alice@example.com", strongPassword)
	bobToken := login(t, a, "bob@example.com", strongPassword)

	w := doJSON(t, a, http.MethodPost, "/api/notes", aliceToken, gin.H{
		"title":   "Groceries",
		"content": "milk, eggs",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	noteID := decode(t, w)["note"].(map[string]any)["id"].(string)

	w = doJSON(t, a, http.MethodGet, "/api/notes/"+noteID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/notes/"+noteID, aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNoteDuplicateTitlePerUser(t *testing.T) {
	a, _ := newTestAPI(t)

	register(t, a, "alice@example.com")
	register(t, a, "bob@example.com")

	aliceToken := login(t, a, "alice@example.com", strongPassword)
	bobToken := login(t, a, "bob@example.com", strongPassword)

	w := doJSON(t, a, http.MethodPost, "/api/notes", aliceToken, gin.H{"title": "Groceries", "content": "milk"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/notes", aliceToken, gin.H{"title": "Groceries", "content": "eggs"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// A different user may reuse the title
	w = doJSON(t, a, http.MethodPost, "/api/notes", bobToken, gin.H{"title": "Groceries", "content": "bread"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTagUniquePerUser(t *testing.T) {
	a, _ := newTestAPI(t)

	register(t, a, "alice@example.com")
	register(t, a, "bob@example.com")

	aliceToken := login(t, a, "alice@example.com", strongPassword)
	bobToken := login(t, a, "bob@example.com", strongPassword)

	w := doJSON(t, a, http.MethodPost, "/api/tags", aliceToken, gin.H{"name": "work"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/tags", aliceToken, gin.H{"name": "work"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/tags", bobToken, gin.H{"name": "work"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestNoteTagLifecycle(t *testing.T) {
	a, _ := newTestAPI(t)

	register(t, a, "alice@example.com")
	token := login(t, a, "alice@example.com", strongPassword)

	w := doJSON(t, a, http.MethodPost, "/api/tags", token, gin.H{"name": "errands"})
	require.Equal(t, http.StatusCreated, w.Code)
	tagID := decode(t, w)["tag"].(map[string]any)["id"].(string)

	w = doJSON(t, a, http.MethodPost, "/api/notes", token, gin.H{"title": "Groceries", "content": "milk"})
	require.Equal(t, http.StatusCreated, w.Code)
	noteID := decode(t, w)["note"].(map[string]any)["id"].(string)

	w = doJSON(t, a, http.MethodPost, "/api/notes/"+noteID+"/tags", token, gin.H{"tag_ids": []string{tagID}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, a, http.MethodGet, "/api/notes/filter_by_tag?tag_id="+tagID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["notes"], 1)

	w = doJSON(t, a, http.MethodDelete, "/api/notes/"+noteID+"/tags/"+tagID, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, a, http.MethodGet, "/api/notes/filter_by_tag?tag_id="+tagID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["notes"], 0)
}

func TestReminderPastDateRejected(t *testing.T) {
	a, _ := newTestAPI(t)

	register(t, a, "alice@example.com")
	token := login(t, a, "alice@example.com", strongPassword)

	w := doJSON(t, a, http.MethodPost, "/api/reminder", token, gin.H{
		"title":       "Too late",
		"content":     "already happened",
		"remind_date": time.Now().Add(-time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/reminder", token, gin.H{
		"title":       "Water the plants",
		"content":     "the ficus first",
		"remind_date": time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestInventorySoftDelete(t *testing.T) {
	a, _ := newTestAPI(t)

	register(t, a, "alice@example.com")
	token := login(t, a, "alice@example.com", strongPassword)

	w := doJSON(t, a, http.MethodPost, "/api/inventory", token, gin.H{
		"product_name":    "Olive oil",
		"amount":          2,
		"expiration_date": time.Now().AddDate(1, 0, 0).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	itemID := decode(t, w)["item"].(map[string]any)["id"].(string)

	w = doJSON(t, a, http.MethodDelete, "/api/inventory/"+itemID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Soft-deleted rows vanish from the default lookups
	w = doJSON(t, a, http.MethodGet, "/api/inventory/"+itemID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/inventory", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["items"], 0)
}

func TestSessionRequired(t *testing.T) {
	a, _ := newTestAPI(t)

	w := doJSON(t, a, http.MethodGet, "/api/notes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/notes", "made-up-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePassword(t *testing.T) {
	a, _ := newTestAPI(t)

	register(t, a, "alice@example.com")
	token := login(t, a, "alice@example.com", strongPassword)

	newPassword := "An0ther-Horse-Battery?"

	w := doJSON(t, a, http.MethodPatch, "/api/users", token, gin.H{
		"old_password": "not-the-password",
		"new_password": newPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, a, http.MethodPatch, "/api/users", token, gin.H{
		"old_password": strongPassword,
		"new_password": newPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	login(t, a, "alice@example.com", newPassword)

	w = doJSON(t, a, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    "alice@example.com",
		"password": strongPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNoteTitleReusableAfterDelete(t *testing.T) {
	a, _ := newTestAPI(t)

	register(t, a, "alice@example.com")
	token := login(t, a, "alice@example.com", strongPassword)

	w := doJSON(t, a, http.MethodPost, "/api/notes", token, gin.H{"title": "Groceries", "content": "milk"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	noteID := decode(t, w)["note"].(map[string]any)["id"].(string)

	w = doJSON(t, a, http.MethodDelete, "/api/notes/"+noteID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The deleted note no longer reserves its title
	w = doJSON(t, a, http.MethodPost, "/api/notes", token, gin.H{"title": "Groceries", "content": "eggs"})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestTagNameReusableAfterDelete(t *testing.T) {
	a, _ := newTestAPI(t)

	register(t, a, "alice@example.com")
	token := login(t, a, "alice@example.com", strongPassword)

	w := doJSON(t, a, http.MethodPost, "/api/tags", token, gin.H{"name": "work"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	tagID := decode(t, w)["tag"].(map[string]any)["id"].(string)

	w = doJSON(t, a, http.MethodDelete, "/api/tags/"+tagID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/tags", token, gin.H{"name": "work"})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestDeleteAccount(t *testing.T) {
	a, _ := newTestAPI(t)

	register(t, a, "alice@example.com")
	token := login(t, a, "alice@example.com", strongPassword)

	w := doJSON(t, a, http.MethodDelete, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The session died with the account
	w = doJSON(t, a, http.MethodGet, "/api/validate", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// And the credentials no longer resolve to an account
	w = doJSON(t, a, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    "alice@example.com",
		"password": strongPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
