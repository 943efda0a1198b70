// Package apitest is an in-process fake of the RideShareX remote API for
// tests. It serves the auth, user, rides and health endpoints over
// httptest, issues real HS256 tokens, and lets a test force a status code
// on any path or count the requests a path received.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/common"
	"github.com/ifti227i/RideShareX/internal/jwtx"
)

const issuer = "ridesharex-api"

type account struct {
	user     models.User
	password string
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	secret   []byte
	accounts map[models.ID]*account
	order    []models.ID
	riders   []models.Rider
	forced   map[string]int
	hits     map[string]int
	nextID   int
}

// New starts a fake API that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		secret:   []byte("apitest-secret"),
		accounts: make(map[models.ID]*account),
		forced:   make(map[string]int),
		hits:     make(map[string]int),
		nextID:   1000,
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/api/auth/login", s.login)
	r.Post("/api/auth/register", s.register)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/api/users/{id}", s.getUser)
		r.Patch("/api/users/{id}", s.patchUser)
		r.Get("/rides", s.listRides)
	})
	return r
}

// record counts requests per path and applies forced statuses.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		code, forced := s.forced[r.URL.Path]
		s.mu.Unlock()

		if forced {
			writeJSON(w, code, map[string]string{"message": http.StatusText(code)})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(h, common.BearerPrefix)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "missing token"})
			return
		}
		if _, err := jwtx.ParseToken(token, issuer, s.secret); err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": err.Error()})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad request"})
		return
	}

	s.mu.Lock()
	var (
		user  models.User
		match bool
	)
	if acc := s.findByEmail(req.Email); acc != nil && acc.password == req.Password {
		user, match = acc.user, true
	}
	s.mu.Unlock()

	if !match {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		return
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad request"})
		return
	}

	s.mu.Lock()
	exists := s.findByEmail(req.Email) != nil
	s.mu.Unlock()
	if exists {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Email already registered"})
		return
	}

	u := s.AddUser(models.User{Username: req.Username, Email: req.Email}, req.Password)
	writeJSON(w, http.StatusCreated, map[string]any{"message": "User registered", "id": u.ID})
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	u, ok := s.User(models.ID(chi.URLParam(r, "id")))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) patchUser(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad request"})
		return
	}

	id := models.ID(chi.URLParam(r, "id"))

	var updated models.User
	s.mu.Lock()
	acc, ok := s.accounts[id]
	if ok {
		acc.user = update.Apply(acc.user)
		updated = acc.user
	}
	s.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) listRides(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	riders := append([]models.Rider{}, s.riders...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, riders)
}

// findByEmail must be called with s.mu held.
func (s *Server) findByEmail(email string) *account {
	for _, id := range s.order {
		if acc := s.accounts[id]; strings.EqualFold(acc.user.Email, email) {
			return acc
		}
	}
	return nil
}

// AddUser registers an account. A missing id or creation time is filled in.
func (s *Server) AddUser(u models.User, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		s.nextID++
		u.ID = models.ID(strconv.Itoa(s.nextID))
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}
	if _, ok := s.accounts[u.ID]; !ok {
		s.order = append(s.order, u.ID)
	}
	s.accounts[u.ID] = &account{user: u, password: password}
	return u
}

func (s *Server) User(id models.ID) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[id]
	if !ok {
		return models.User{}, false
	}
	return acc.user, true
}

// IssueToken returns a token the server accepts for id.
func (s *Server) IssueToken(id models.ID) (string, error) {
	return jwtx.GenerateToken(id.String(), issuer, s.secret, time.Hour)
}

func (s *Server) SetRiders(riders []models.Rider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.riders = append([]models.Rider{}, riders...)
}

// SetStatus makes every request to path answer with code. Zero restores
// normal handling.
func (s *Server) SetStatus(path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if code == 0 {
		delete(s.forced, path)
		return
	}
	s.forced[path] = code
}

// Hits returns how many requests path has received.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
