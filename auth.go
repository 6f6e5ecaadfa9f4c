package main

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Account is an identity known to the credential store.
type Account struct {
	Username     string
	PasswordHash []byte
	Role         string // admin | trainer
	UserID       uint
}

// CredentialStore resolves usernames to accounts. The fixed account table
// lives behind this interface so it can be swapped for a real user store
// without touching the handlers.
type CredentialStore interface {
	Lookup(username string) (*Account, bool)
}

type envCredentialStore struct {
	accounts map[string]*Account
}

func (s *envCredentialStore) Lookup(username string) (*Account, bool) {
	acc, ok := s.accounts[strings.ToUpper(username)]
	return acc, ok
}

// Credentials is the active store; main wires the env-backed default.
var Credentials CredentialStore

// LoadCredentials builds the env-backed credential store: one mandatory
// admin account plus up to two trainer accounts, each registered only
// when both its username and password are configured. Passwords are kept
// as bcrypt hashes, never as plaintext.
func LoadCredentials() error {
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminPass == "" {
		return errors.New("ADMIN_PASSWORD is missing")
	}

	store := &envCredentialStore{accounts: map[string]*Account{}}

	add := func(username, password, role string, userID uint) error {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		username = strings.ToUpper(username)
		store.accounts[username] = &Account{
			Username:     username,
			PasswordHash: hash,
			Role:         role,
			UserID:       userID,
		}
		return nil
	}

	if err := add(envOr("ADMIN_USERNAME", "USER"), adminPass, "admin", adminUserID); err != nil {
		return err
	}

	trainers := []struct {
		userEnv, passEnv string
		userID           uint
	}{
		{"TRAINER1_USERNAME", "TRAINER1_PASSWORD", 150023},
		{"TRAINER2_USERNAME", "TRAINER2_PASSWORD", 150024},
	}
	for _, tr := range trainers {
		username := os.Getenv(tr.userEnv)
		password := os.Getenv(tr.passEnv)
		if username == "" || password == "" {
			continue
		}
		if err := add(username, password, "trainer", tr.userID); err != nil {
			return err
		}
	}

	Credentials = store
	return nil
}

func GenerateToken(acc *Account) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "defaultsecret"
	}

	claims := jwt.MapClaims{
		"user_id":  acc.UserID,
		"username": acc.Username,
		"role":     acc.Role,
		"exp":      time.Now().Add(30 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ========================
// LOGIN HANDLER
// ========================

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acc, ok := Credentials.Lookup(req.Username)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := GenerateToken(acc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": acc.Username,
		"role":     acc.Role,
	})
}

// Me returns the authenticated identity attached by AuthMiddleware.
func Me(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)
	username, _ := getUsernameFromContext(c)
	role, _ := getRoleFromContext(c)

	c.JSON(http.StatusOK, gin.H{
		"user_id":  userID,
		"username": username,
		"role":     role,
	})
}
