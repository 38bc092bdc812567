// Package server はビジョンボードのセッションを HTTP と WebSocket で公開します。
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/shouni/vision-board-kit/pkg/locale"
	"github.com/shouni/vision-board-kit/pkg/session"
)

// ReferenceLoader は参照画像の指定（data URI・URL）を DataURI に変換します。
type ReferenceLoader interface {
	Load(ctx context.Context, source string) (domain.DataURI, error)
}

// Server は HTTP ハンドラーの依存関係をまとめます。
type Server struct {
	registry    *Registry
	loader      ReferenceLoader
	defaultLang locale.Language
	upgrader    websocket.Upgrader
}

// Option は Server の任意設定です。
type Option func(*Server)

// WithDefaultLanguage はヘッダーから言語が決まらない場合の言語を設定します。
func WithDefaultLanguage(lang locale.Language) Option {
	return func(s *Server) {
		if lang.Valid() {
			s.defaultLang = lang
		}
	}
}

// WithCheckOrigin は WebSocket の Origin 検証を差し替えます。既定はすべて許可します。
func WithCheckOrigin(check func(r *http.Request) bool) Option {
	return func(s *Server) { s.upgrader.CheckOrigin = check }
}

// New は Server を作成します。セッションは sessionOpts 付きで生成されます。
func New(gen session.Generator, assistant session.Assistant, loader ReferenceLoader, opts []Option, sessionOpts ...session.Option) (*Server, error) {
	if gen == nil {
		return nil, fmt.Errorf("gen (session.Generator) is required")
	}
	if assistant == nil {
		return nil, fmt.Errorf("assistant (session.Assistant) is required")
	}
	if loader == nil {
		return nil, fmt.Errorf("loader (ReferenceLoader) is required")
	}
	s := &Server{
		loader:      loader,
		defaultLang: locale.Default,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registry = NewRegistry(func(lang locale.Language) (*session.Orchestrator, error) {
		o := append([]session.Option{}, sessionOpts...)
		o = append(o, session.WithLanguage(lang))
		return session.NewOrchestrator(gen, assistant, o...)
	})
	return s, nil
}

// Registry はセッション一覧を返します。
func (s *Server) Registry() *Registry { return s.registry }

// Close はすべてのセッションを閉じます。
func (s *Server) Close() { s.registry.Close() }

// Handler はルーティング済みの http.Handler を返します。
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Use(LocaleMiddleware(s.defaultLang))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Post("/prompt", s.handlePrompt)

		r.Post("/sessions", s.handleCreateSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Put("/language", s.handleSetLanguage)

			r.Put("/form", s.handlePutForm)
			r.Post("/form/atmosphere", s.handleAddAtmosphere)
			r.Delete("/form/atmosphere", s.handleRemoveAtmosphere)
			r.Post("/form/collage/clear", s.handleClearCollage)
			r.Put("/form/references/{slot}", s.handleSetReference)
			r.Delete("/form/references/{slot}", s.handleClearReference)

			r.Post("/submit", s.handleSubmit)
			r.Post("/regenerate", s.handleRegenerate)
			r.Post("/edit", s.handleEdit)
			r.Post("/show-result", s.handleShowResult)
			r.Post("/suggest", s.handleSuggest)
			r.Post("/autoconfigure", s.handleAutoConfigure)
			r.Post("/accordion/{section}", s.handleAccordion)

			r.Get("/history", s.handleHistory)
			r.Post("/history/{entryID}/clean", s.handleClean)

			r.Get("/events", s.handleEvents)
		})
	})

	return r
}
