package server

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shouni/vision-board-kit/pkg/locale"
	"github.com/shouni/vision-board-kit/pkg/session"
)

// ErrSessionNotFound は指定 ID のセッションが存在しないことを示します。
var ErrSessionNotFound = errors.New("session not found")

// Factory は新しいセッションを作成します。
type Factory func(lang locale.Language) (*session.Orchestrator, error)

// Registry はメモリ上のセッション一覧です。永続化はしません。
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session.Orchestrator
	factory  Factory
}

// NewRegistry は空の Registry を作成します。
func NewRegistry(factory Factory) *Registry {
	return &Registry{
		sessions: make(map[string]*session.Orchestrator),
		factory:  factory,
	}
}

// Create はセッションを作成し、その ID を返します。
func (r *Registry) Create(lang locale.Language) (string, *session.Orchestrator, error) {
	orch, err := r.factory(lang)
	if err != nil {
		return "", nil, fmt.Errorf("セッションの作成に失敗しました: %w", err)
	}
	id := uuid.NewString()

	r.mu.Lock()
	r.sessions[id] = orch
	r.mu.Unlock()
	return id, orch, nil
}

// Get は ID でセッションを探します。
func (r *Registry) Get(id string) (*session.Orchestrator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orch, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return orch, nil
}

// Delete はセッションを閉じて削除します。
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	orch, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	orch.Close()
	return nil
}

// Len は保持しているセッション数です。
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close はすべてのセッションを閉じます。
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*session.Orchestrator)
	r.mu.Unlock()
	for _, orch := range sessions {
		orch.Close()
	}
}
