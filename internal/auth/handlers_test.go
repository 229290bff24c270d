package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"detailbook/pkg/config"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret: "test-secret",
		Admin: config.AdminConfig{
			Username: "owner",
			Password: "hunter2",
		},
	}
}

func doLogin(t *testing.T, cfg config.Config, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := Handlers{Cfg: cfg}
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Login(rr, req)
	return rr
}

func TestLogin_Success(t *testing.T) {
	rr := doLogin(t, testConfig(), `{"username":"owner","password":"hunter2"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"token"`) {
		t.Fatalf("expected a token in response, got %s", rr.Body.String())
	}
}

func TestLogin_MismatchIsUniform(t *testing.T) {
	badPass := doLogin(t, testConfig(), `{"username":"owner","password":"wrong"}`)
	badUser := doLogin(t, testConfig(), `{"username":"intruder","password":"hunter2"}`)

	if badPass.Code != http.StatusUnauthorized || badUser.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", badPass.Code, badUser.Code)
	}
	// Which field was wrong must not be observable.
	if badPass.Body.String() != badUser.Body.String() {
		t.Fatalf("expected identical bodies, got %q vs %q", badPass.Body.String(), badUser.Body.String())
	}
}

func TestLogin_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := testConfig()
	cfg.Admin.Password = ""
	cfg.Admin.PasswordHash = string(hash)

	if rr := doLogin(t, cfg, `{"username":"owner","password":"hunter2"}`); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with hashed password, got %d", rr.Code)
	}
	if rr := doLogin(t, cfg, `{"username":"owner","password":"wrong"}`); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong password, got %d", rr.Code)
	}
}

func TestLogin_IssuedTokenVerifies(t *testing.T) {
	rr := doLogin(t, testConfig(), `{"username":"owner","password":"hunter2"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := VerifyToken(resp.Token, "test-secret", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Username != "owner" {
		t.Fatalf("expected username owner, got %q", claims.Username)
	}
}
