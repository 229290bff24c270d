package auth

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"detailbook/internal/api"
	"detailbook/pkg/config"
)

// badCredentials is the one message every login failure produces, no matter
// which field was wrong.
const badCredentials = "invalid username or password"

type Handlers struct {
	Cfg config.Config
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	if !h.credentialsMatch(req.Username, req.Password) {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", badCredentials)
		return
	}

	token, err := IssueToken(h.Cfg.JWTSecret, req.Username, time.Now())
	if err != nil {
		log.Printf("login: token issue failed user=%s err=%v", req.Username, err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
	})
}

func (h Handlers) credentialsMatch(username, password string) bool {
	admin := h.Cfg.Admin
	if admin.Username == "" {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(admin.Username)) == 1

	var passOK bool
	if admin.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
	} else {
		passOK = admin.Password != "" &&
			subtle.ConstantTimeCompare([]byte(password), []byte(admin.Password)) == 1
	}

	return userOK && passOK
}
