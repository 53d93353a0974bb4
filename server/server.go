// Package server serves a built documentation model over HTTP for
// local browsing and tooling integration.
package server

import (
	"log/slog"
	"net/http"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/refgraph/refgraph/model"
)

// Server exposes a model.Project over HTTP.
type Server struct {
	project  *model.Project
	logger   *slog.Logger
	decoder  *schema.Decoder
	validate *validator.Validate
}

// New creates a server for the given project.
// If logger is nil, slog.Default() is used.
func New(project *model.Project, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &Server{
		project:  project,
		logger:   logger,
		decoder:  decoder,
		validate: validator.New(),
	}
}

// Handler returns an http.Handler with panic recovery and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /declarations", s.handleDeclarations)
	mux.HandleFunc("GET /declaration", s.handleDeclaration)
	mux.HandleFunc("GET /warnings", s.handleWarnings)
	mux.HandleFunc("GET /status", s.handleStatus)

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := debug.Stack()
				s.logger.Error("PANIC recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(stack)))
				writeError(w, NewError(CodeInternal, "internal server error"), s.logger)
			}
		}()
		s.logger.Debug("request",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path))
		mux.ServeHTTP(w, req)
	})
}

// declarationFilter is the query shape for GET /declarations.
type declarationFilter struct {
	Kind    string `schema:"kind" validate:"omitempty,oneof=struct interface alias type func var const"`
	Package string `schema:"package"`
	Name    string `schema:"name"`
	Limit   int    `schema:"limit" validate:"omitempty,min=1,max=1000"`
}

func (s *Server) handleDeclarations(w http.ResponseWriter, req *http.Request) {
	var filter declarationFilter
	if err := s.decoder.Decode(&filter, req.URL.Query()); err != nil {
		writeError(w, NewError(CodeInvalidArgument, "malformed query parameters"), s.logger)
		return
	}
	if err := s.validate.Struct(&filter); err != nil {
		writeError(w, validationError(err), s.logger)
		return
	}

	out := make([]*model.Declaration, 0)
	for _, d := range s.project.Declarations {
		if filter.Kind != "" && d.Kind.String() != filter.Kind {
			continue
		}
		if filter.Package != "" && !strings.HasPrefix(d.FullyQualifiedName, `"`+filter.Package) {
			continue
		}
		if filter.Name != "" && !strings.Contains(d.Name, filter.Name) {
			continue
		}
		out = append(out, d)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	writeJSON(w, out, s.logger)
}

func (s *Server) handleDeclaration(w http.ResponseWriter, req *http.Request) {
	fqn := req.URL.Query().Get("fqn")
	if fqn == "" {
		writeError(w, NewError(CodeInvalidArgument, "fqn query parameter is required"), s.logger)
		return
	}
	d := s.project.Lookup(fqn)
	if d == nil {
		writeError(w, Errorf(CodeNotFound, "no declaration %s", fqn), s.logger)
		return
	}
	writeJSON(w, d, s.logger)
}

func (s *Server) handleWarnings(w http.ResponseWriter, req *http.Request) {
	warnings := s.project.Warnings
	if warnings == nil {
		warnings = []model.Warning{}
	}
	writeJSON(w, warnings, s.logger)
}

// statusResponse provides runtime information about the server.
type statusResponse struct {
	Declarations  int    `json:"declarations"`
	Warnings      int    `json:"warnings"`
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
}

func (s *Server) handleStatus(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, statusResponse{
		Declarations:  len(s.project.Declarations),
		Warnings:      len(s.project.Warnings),
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
	}, s.logger)
}
