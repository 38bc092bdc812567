package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shouni/vision-board-kit/pkg/catalog"
	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/shouni/vision-board-kit/pkg/locale"
	"github.com/shouni/vision-board-kit/pkg/prompt"
	"github.com/shouni/vision-board-kit/pkg/session"
)

type catalogResponse struct {
	catalog.Listing
	Languages []locale.Language `json:"languages"`
	Language  locale.Language   `json:"language"`
	Messages  map[string]string `json:"messages"`
}

type promptResponse struct {
	Prompt      string              `json:"prompt"`
	AspectRatio catalog.AspectRatio `json:"aspectRatio"`
	Attachments int                 `json:"attachments"`
}

type sessionResponse struct {
	ID    string        `json:"id"`
	State session.State `json:"state"`
}

type generateResponse struct {
	Result *domain.GenerationResult `json:"result"`
	State  session.State            `json:"state"`
}

type atmosphereRequest struct {
	Value string `json:"value"`
}

type referenceRequest struct {
	Source string `json:"source"`
}

type languageRequest struct {
	Language string `json:"language"`
}

type cleanRequest struct {
	Mode domain.RemoveMode `json:"mode"`
}

type cleanResponse struct {
	EntryID string            `json:"entryId"`
	Mode    domain.RemoveMode `json:"mode"`
	Image   domain.DataURI    `json:"image"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "sessions": s.registry.Len()})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	lang := locale.FromContext(r.Context())
	writeJSON(w, http.StatusOK, catalogResponse{
		Listing:   catalog.List(),
		Languages: locale.AllLanguages,
		Language:  lang,
		Messages:  locale.Bundle(lang),
	})
}

// handlePrompt はセッションを作らずにプロンプトを組み立てます（プロンプトのコピー用）。
func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	form := domain.NewFormData()
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err, http.StatusBadRequest, "")
		return
	}
	form.Normalize()
	if err := form.Validate(); err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err), http.StatusBadRequest, "")
		return
	}
	comp, err := prompt.Compose(form)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest, "")
		return
	}
	writeJSON(w, http.StatusOK, promptResponse{
		Prompt:      comp.Text,
		AspectRatio: comp.AspectRatio,
		Attachments: len(comp.Attachments),
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, orch, err := s.registry.Create(locale.FromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError, "")
		return
	}
	w.Header().Set("Location", "/v1/sessions/"+id)
	writeJSON(w, http.StatusCreated, sessionResponse{ID: id, State: orch.Snapshot()})
}

// orchestrator は URL のセッション ID からセッションを取り出します。見つからなければ 404 を返します。
func (s *Server) orchestrator(w http.ResponseWriter, r *http.Request) (string, *session.Orchestrator, bool) {
	id := chi.URLParam(r, "sessionID")
	orch, err := s.registry.Get(id)
	if err != nil {
		writeError(w, r, err, http.StatusNotFound, "")
		return "", nil, false
	}
	return id, orch, true
}

// respondState は状態遷移の結果をそのまま返します。
func respondState(w http.ResponseWriter, r *http.Request, id string, st session.State, err error) {
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest, "")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, State: st})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, State: orch.Snapshot()})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.registry.Delete(chi.URLParam(r, "sessionID")); err != nil {
		writeError(w, r, err, http.StatusNotFound, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	id, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	var req languageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest, "")
		return
	}
	lang, valid := locale.ParseLanguage(req.Language)
	if !valid {
		writeError(w, r, fmt.Errorf("%w: unknown language %q", session.ErrInvalidArgument, req.Language), http.StatusBadRequest, "")
		return
	}
	st, err := orch.SetLanguage(lang)
	respondState(w, r, id, st, err)
}

func (s *Server) handlePutForm(w http.ResponseWriter, r *http.Request) {
	id, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	form := domain.NewFormData()
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err, http.StatusBadRequest, "")
		return
	}
	form.Normalize()
	if err := form.Validate(); err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err), http.StatusBadRequest, "")
		return
	}
	st, err := orch.UpdateForm(func(f *domain.FormData) { *f = form })
	respondState(w, r, id, st, err)
}

func (s *Server) handleAddAtmosphere(w http.ResponseWriter, r *http.Request) {
	s.updateAtmosphere(w, r, (*domain.FormData).AddAtmosphere)
}

func (s *Server) handleRemoveAtmosphere(w http.ResponseWriter, r *http.Request) {
	s.updateAtmosphere(w, r, (*domain.FormData).RemoveAtmosphere)
}

func (s *Server) updateAtmosphere(w http.ResponseWriter, r *http.Request, apply func(*domain.FormData, string) bool) {
	id, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	var req atmosphereRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest, "")
		return
	}
	if strings.TrimSpace(req.Value) == "" {
		writeError(w, r, fmt.Errorf("%w: value is required", errBadRequest), http.StatusBadRequest, "")
		return
	}
	st, err := orch.UpdateForm(func(f *domain.FormData) { apply(f, req.Value) })
	respondState(w, r, id, st, err)
}

func (s *Server) handleClearCollage(w http.ResponseWriter, r *http.Request) {
	id, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	st, err := orch.UpdateForm((*domain.FormData).ClearCollage)
	respondState(w, r, id, st, err)
}

func referenceSlot(r *http.Request) (domain.ReferenceSlot, error) {
	slot := domain.ReferenceSlot(chi.URLParam(r, "slot"))
	switch slot {
	case domain.PrimaryReference, domain.SecondaryReference:
		return slot, nil
	}
	return "", fmt.Errorf("%w: unknown reference slot %q", errBadRequest, slot)
}

func (s *Server) handleSetReference(w http.ResponseWriter, r *http.Request) {
	id, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	slot, err := referenceSlot(r)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest, "")
		return
	}
	var req referenceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest, "")
		return
	}
	if strings.TrimSpace(req.Source) == "" {
		writeError(w, r, fmt.Errorf("%w: source is required", errBadRequest), http.StatusBadRequest, "")
		return
	}

	img, err := s.loader.Load(r.Context(), req.Source)
	if err != nil {
		writeError(w, r, err, http.StatusBadGateway, "")
		return
	}
	st, err := orch.UpdateForm(func(f *domain.FormData) { _ = f.SetReference(slot, img) })
	respondState(w, r, id, st, err)
}

func (s *Server) handleClearReference(w http.ResponseWriter, r *http.Request) {
	id, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	slot, err := referenceSlot(r)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest, "")
		return
	}
	st, err := orch.UpdateForm(func(f *domain.FormData) { _ = f.SetReference(slot, "") })
	respondState(w, r, id, st, err)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	s.runGeneration(w, r, (*session.Orchestrator).Submit)
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	s.runGeneration(w, r, (*session.Orchestrator).Regenerate)
}

// runGeneration は生成完了まで待ってから結果を返します。進捗は /events で購読できます。
func (s *Server) runGeneration(w http.ResponseWriter, r *http.Request, run func(*session.Orchestrator, context.Context) (*domain.GenerationResult, error)) {
	_, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	res, err := run(orch, r.Context())
	if err != nil {
		st := orch.Snapshot()
		writeError(w, r, err, http.StatusBadGateway, locale.T(st.Language, locale.ErrorGeneration))
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{Result: res, State: orch.Snapshot()})
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	id, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	st, err := orch.Edit()
	respondState(w, r, id, st, err)
}

func (s *Server) handleShowResult(w http.ResponseWriter, r *http.Request) {
	id, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	st, err := orch.ShowResult()
	respondState(w, r, id, st, err)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	_, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	keywords, err := orch.SuggestDetails(r.Context())
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"keywords": keywords, "state": orch.Snapshot()})
}

func (s *Server) handleAutoConfigure(w http.ResponseWriter, r *http.Request) {
	_, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	cfg, err := orch.AutoConfigure(r.Context())
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"config": cfg, "state": orch.Snapshot()})
}

// handleAccordion は区画を開閉します。?mode=open で「次へ」と同じく指定区画だけを開きます。
func (s *Server) handleAccordion(w http.ResponseWriter, r *http.Request) {
	id, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	section := session.Section(chi.URLParam(r, "section"))
	var (
		st  session.State
		err error
	)
	switch r.URL.Query().Get("mode") {
	case "", "toggle":
		st, err = orch.ToggleSection(section)
	case "open":
		st, err = orch.OpenSection(section)
	default:
		err = fmt.Errorf("%w: unknown mode %q", errBadRequest, r.URL.Query().Get("mode"))
	}
	respondState(w, r, id, st, err)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	_, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": orch.Snapshot().History})
}

func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	_, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}
	var req cleanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest, "")
		return
	}
	entryID := chi.URLParam(r, "entryID")
	img, err := orch.CleanHistoryItem(r.Context(), entryID, req.Mode)
	if err != nil {
		writeError(w, r, err, http.StatusBadGateway, locale.T(orch.Snapshot().Language, locale.ErrorClean))
		return
	}
	writeJSON(w, http.StatusOK, cleanResponse{EntryID: entryID, Mode: req.Mode, Image: img})
}
