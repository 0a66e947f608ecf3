package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-agent/internal/config"
	"github.com/jonathan/resume-agent/internal/db"
	"github.com/jonathan/resume-agent/internal/feedback"
	"github.com/jonathan/resume-agent/internal/ingestion"
	"github.com/jonathan/resume-agent/internal/llm"
	"github.com/jonathan/resume-agent/internal/refine"
	"github.com/jonathan/resume-agent/internal/suggest"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	gateway     llm.Gateway
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	generator   *refine.Service
	suggester   *suggest.Suggester
	interpreter *feedback.Interpreter
	extractor   *ingestion.Extractor
	maxIter     int
}

// New creates a new server instance
func New(cfg *config.AppConfig) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	gateway, err := llm.NewGeminiGateway(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM gateway: %w", err)
	}

	s := &Server{
		db:      database,
		gateway: gateway,
		maxIter: cfg.MaxIterations,
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	orchestrator := refine.NewOrchestrator(gateway)
	s.generator = refine.NewService(orchestrator, database, database, database)
	s.suggester = suggest.NewSuggester(gateway)
	s.interpreter = feedback.NewInterpreter(gateway, database, database)
	s.extractor = ingestion.NewExtractor(gateway)

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	mux.HandleFunc("GET /profile", s.requireAuth(s.handleGetProfile))
	mux.HandleFunc("POST /profile", s.requireAuth(s.handleSaveProfile))
	mux.HandleFunc("POST /profile/upload", s.requireAuth(s.handleUploadResume))

	mux.HandleFunc("GET /rules", s.requireAuth(s.handleListRules))

	mux.HandleFunc("POST /resumes/generate", s.requireAuth(s.handleGenerateResume))
	mux.HandleFunc("GET /resumes", s.requireAuth(s.handleListResumes))
	mux.HandleFunc("GET /resumes/{id}", s.requireAuth(s.handleGetResume))

	mux.HandleFunc("POST /feedback", s.requireAuth(s.handleFeedback))
	mux.HandleFunc("POST /suggestions", s.requireAuth(s.handleSuggestions))
	mux.HandleFunc("GET /dashboard", s.requireAuth(s.handleDashboard))

	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Generation runs can take minutes
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.gateway.Close(); err != nil {
		log.Printf("Error closing LLM gateway: %v", err)
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
