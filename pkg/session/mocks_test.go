package session

import (
	"context"
	"sync"

	"github.com/shouni/vision-board-kit/pkg/catalog"
	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/shouni/vision-board-kit/pkg/prompt"
)

const testImage = domain.DataURI("data:image/png;base64,iVBORw0KGgo=")

// mockGenerator は呼び出し内容を記録する Generator です。
type mockGenerator struct {
	mu           sync.Mutex
	compositions []prompt.Composition
	removeCalls  []domain.RemoveMode

	generateFunc func(ctx context.Context, comp prompt.Composition) (*domain.GenerationResult, error)
	removeFunc   func(ctx context.Context, image domain.DataURI, mode domain.RemoveMode) (domain.DataURI, error)
}

func (m *mockGenerator) Generate(ctx context.Context, comp prompt.Composition) (*domain.GenerationResult, error) {
	m.mu.Lock()
	m.compositions = append(m.compositions, comp)
	m.mu.Unlock()
	if m.generateFunc != nil {
		return m.generateFunc(ctx, comp)
	}
	return &domain.GenerationResult{Image: testImage, Prompt: comp.Text}, nil
}

func (m *mockGenerator) RemoveContent(ctx context.Context, image domain.DataURI, mode domain.RemoveMode) (domain.DataURI, error) {
	m.mu.Lock()
	m.removeCalls = append(m.removeCalls, mode)
	m.mu.Unlock()
	if m.removeFunc != nil {
		return m.removeFunc(ctx, image, mode)
	}
	return image, nil
}

func (m *mockGenerator) lastComposition() prompt.Composition {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.compositions[len(m.compositions)-1]
}

// mockAssistant は固定値を返す Assistant です。
type mockAssistant struct {
	suggestFunc    func(ctx context.Context, theme, style string, atmosphere []string) string
	autoConfigFunc func(ctx context.Context, theme catalog.Theme) domain.AutoConfig
}

func (m *mockAssistant) SuggestDetails(ctx context.Context, theme, style string, atmosphere []string) string {
	if m.suggestFunc != nil {
		return m.suggestFunc(ctx, theme, style, atmosphere)
	}
	return "keywords"
}

func (m *mockAssistant) AutoConfigure(ctx context.Context, theme catalog.Theme) domain.AutoConfig {
	if m.autoConfigFunc != nil {
		return m.autoConfigFunc(ctx, theme)
	}
	return domain.AutoConfig{}
}
