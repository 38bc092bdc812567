package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shouni/vision-board-kit/pkg/catalog"
	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/shouni/vision-board-kit/pkg/locale"
	"github.com/shouni/vision-board-kit/pkg/prompt"
)

const (
	// DefaultErrorDisplayDuration はエラー表示を自動で消すまでの時間です。
	DefaultErrorDisplayDuration = 3 * time.Second
	// FallbackAutoConfigTheme はテーマ未選択で自動設定したときに使うテーマです。
	FallbackAutoConfigTheme = catalog.ThemeSelfLove

	subscriberBuffer = 16
)

// Generator は画像生成と画像編集のバックエンドです。
type Generator interface {
	Generate(ctx context.Context, comp prompt.Composition) (*domain.GenerationResult, error)
	RemoveContent(ctx context.Context, image domain.DataURI, mode domain.RemoveMode) (domain.DataURI, error)
}

// Assistant はフォーム入力の補助です。失敗時も値を返します。
type Assistant interface {
	SuggestDetails(ctx context.Context, theme, style string, atmosphere []string) string
	AutoConfigure(ctx context.Context, theme catalog.Theme) domain.AutoConfig
}

type timerKind int

const (
	generationErrorTimer timerKind = iota
	cleanErrorTimer
	numTimers
)

// Orchestrator は 1 セッション分の状態を保持し、生成バックエンドの呼び出しと状態遷移を仲介します。
// 並行利用に安全です。バックエンド呼び出しの間はロックを保持しません。
type Orchestrator struct {
	generator Generator
	assistant Assistant

	errorDuration time.Duration
	now           func() time.Time

	mu     sync.Mutex
	state  State
	subs   map[chan State]struct{}
	timers [numTimers]*time.Timer
	seq    [numTimers]uint64
}

// Option は Orchestrator の任意設定です。
type Option func(*Orchestrator)

// WithErrorDisplayDuration はエラー表示時間を設定します。0 以下なら自動で消しません。
func WithErrorDisplayDuration(d time.Duration) Option {
	return func(o *Orchestrator) { o.errorDuration = d }
}

// WithLanguage は表示言語の初期値を設定します。
func WithLanguage(lang locale.Language) Option {
	return func(o *Orchestrator) {
		if lang.Valid() {
			o.state.Language = lang
		}
	}
}

// WithClock は履歴の作成時刻に使う時計を差し替えます。
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// NewOrchestrator は依存関係を注入して初期状態のセッションを作成します。
func NewOrchestrator(generator Generator, assistant Assistant, opts ...Option) (*Orchestrator, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator (Generator) is required")
	}
	if assistant == nil {
		return nil, fmt.Errorf("assistant (Assistant) is required")
	}
	o := &Orchestrator{
		generator:     generator,
		assistant:     assistant,
		errorDuration: DefaultErrorDisplayDuration,
		now:           time.Now,
		state:         NewState(locale.Default),
		subs:          make(map[chan State]struct{}),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Snapshot は現在の状態のコピーを返します。
func (o *Orchestrator) Snapshot() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.Clone()
}

// Subscribe は状態変化のたびにスナップショットを受け取るチャネルを返します。
// 受信が追いつかない場合は古いスナップショットから捨てられます。戻り値の関数で購読を解除します。
func (o *Orchestrator) Subscribe() (<-chan State, func()) {
	ch := make(chan State, subscriberBuffer)
	o.mu.Lock()
	o.subs[ch] = struct{}{}
	ch <- o.state.Clone()
	o.mu.Unlock()

	return ch, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if _, ok := o.subs[ch]; ok {
			delete(o.subs, ch)
			close(ch)
		}
	}
}

// dispatch はロックを取得してイベントを適用し、購読者に通知します。
func (o *Orchestrator) dispatch(ev Event) (State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.applyLocked(ev)
}

func (o *Orchestrator) applyLocked(ev Event) (State, error) {
	next, err := Reduce(o.state, ev)
	if err != nil {
		return o.state.Clone(), err
	}
	o.state = next
	o.publishLocked()
	return next.Clone(), nil
}

// publishLocked は購読者に現在の状態を送ります。バッファが満杯なら最も古いスナップショットを捨てて入れ替えるので、
// 受信が遅い購読者でも最後に受け取る値は常に最新の状態です。
func (o *Orchestrator) publishLocked() {
	for ch := range o.subs {
		st := o.state.Clone()
		select {
		case ch <- st:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		// 送信はロック下でのみ行うので、1 つ空ければ必ず入る。
		select {
		case ch <- st:
		default:
		}
	}
}

// showErrorLocked はエラー表示を適用し、表示時間後に消すタイマーを張り直します。
func (o *Orchestrator) showErrorLocked(kind timerKind, ev Event) {
	if _, err := o.applyLocked(ev); err != nil {
		return
	}
	if o.timers[kind] != nil {
		o.timers[kind].Stop()
	}
	o.seq[kind]++
	if o.errorDuration <= 0 {
		return
	}
	seq := o.seq[kind]
	o.timers[kind] = time.AfterFunc(o.errorDuration, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.seq[kind] != seq {
			return
		}
		if kind == generationErrorTimer {
			o.applyLocked(ClearError{})
		} else {
			o.applyLocked(ClearCleanError{})
		}
	})
}

// Close は保留中のタイマーを止め、すべての購読を解除します。
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, t := range o.timers {
		if t != nil {
			t.Stop()
		}
		o.seq[i]++
	}
	for ch := range o.subs {
		delete(o.subs, ch)
		close(ch)
	}
}

// Submit は現在のフォームで画像を生成します。生成中は ErrBusy を返します。
func (o *Orchestrator) Submit(ctx context.Context) (*domain.GenerationResult, error) {
	o.mu.Lock()
	st, err := o.applyLocked(Submit{Form: o.state.Form})
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return o.generate(ctx, st.Form)
}

// Regenerate は保持しているフォームをそのまま使って再生成します。
func (o *Orchestrator) Regenerate(ctx context.Context) (*domain.GenerationResult, error) {
	st, err := o.dispatch(Regenerate{})
	if err != nil {
		return nil, err
	}
	return o.generate(ctx, st.Form)
}

func (o *Orchestrator) generate(ctx context.Context, form domain.FormData) (*domain.GenerationResult, error) {
	res, err := o.compose(ctx, form)
	if err != nil {
		slog.WarnContext(ctx, "画像生成に失敗しました", "error", err)
		o.mu.Lock()
		o.showErrorLocked(generationErrorTimer, Failed{Message: locale.T(o.state.Language, locale.ErrorGeneration)})
		o.mu.Unlock()
		return nil, err
	}

	entry := domain.NewHistoryEntry(*res, o.now())
	if _, err := o.dispatch(Succeeded{Result: *res, Entry: entry}); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "ビジョンボードを生成しました", "entry_id", entry.ID)
	return res, nil
}

func (o *Orchestrator) compose(ctx context.Context, form domain.FormData) (*domain.GenerationResult, error) {
	comp, err := prompt.Compose(form)
	if err != nil {
		return nil, err
	}
	res, err := o.generator.Generate(ctx, comp)
	if err != nil {
		return nil, err
	}
	if res == nil || res.Image.IsZero() {
		return nil, fmt.Errorf("生成結果が空です")
	}
	return res, nil
}

// Edit は結果画面からフォームに戻ります。
func (o *Orchestrator) Edit() (State, error) { return o.dispatch(Edit{}) }

// ShowResult はフォームから直前の結果表示に戻ります。
func (o *Orchestrator) ShowResult() (State, error) { return o.dispatch(ShowResult{}) }

// UpdateForm はフォームを変更します。変更後のフォームは正規化されます。
func (o *Orchestrator) UpdateForm(mutate func(*domain.FormData)) (State, error) {
	return o.dispatch(UpdateForm{Mutate: mutate})
}

// SetLanguage は表示言語を切り替えます。
func (o *Orchestrator) SetLanguage(lang locale.Language) (State, error) {
	return o.dispatch(SetLanguage{Language: lang})
}

// ToggleSection はアコーディオン区画を開閉します。
func (o *Orchestrator) ToggleSection(s Section) (State, error) {
	return o.dispatch(ToggleSection{Section: s})
}

// OpenSection は指定区画だけを開きます。
func (o *Orchestrator) OpenSection(s Section) (State, error) {
	return o.dispatch(OpenSection{Section: s})
}

// SuggestDetails は現在のテーマ・スタイル・雰囲気からキーワードを提案し、フォームに書き込みます。
func (o *Orchestrator) SuggestDetails(ctx context.Context) (string, error) {
	st, err := o.dispatch(SuggestStarted{})
	if err != nil {
		return "", err
	}

	keywords := o.assistant.SuggestDetails(ctx, string(st.Form.Theme), string(st.Form.Aesthetic), st.Form.Atmosphere)

	if _, err := o.dispatch(SuggestFinished{Keywords: keywords}); err != nil {
		return "", err
	}
	return keywords, nil
}

// AutoConfigure はテーマに合う設定を提案させ、空でない項目だけをフォームに反映します。
func (o *Orchestrator) AutoConfigure(ctx context.Context) (domain.AutoConfig, error) {
	st, err := o.dispatch(AutoConfigStarted{})
	if err != nil {
		return domain.AutoConfig{}, err
	}

	theme := st.Form.Theme
	if theme == "" {
		theme = FallbackAutoConfigTheme
	}
	cfg := o.assistant.AutoConfigure(ctx, theme)
	if cfg.IsEmpty() {
		slog.WarnContext(ctx, "自動設定の提案が空でした", "theme", theme)
	}

	if _, err := o.dispatch(AutoConfigFinished{Theme: theme, Config: cfg}); err != nil {
		return domain.AutoConfig{}, err
	}
	return cfg, nil
}

// CleanHistoryItem は履歴画像からテキスト等を除去した画像を返します。履歴自体は変更しません。
// 同じ項目への同時実行は ErrCleanInProgress、異なる項目は並行して進みます。
func (o *Orchestrator) CleanHistoryItem(ctx context.Context, entryID string, mode domain.RemoveMode) (domain.DataURI, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidRemoveMode, mode)
	}

	o.mu.Lock()
	entry, _ := o.state.FindEntry(entryID)
	_, err := o.applyLocked(CleanStarted{EntryID: entryID})
	o.mu.Unlock()
	if err != nil {
		return "", err
	}

	cleaned, err := o.generator.RemoveContent(ctx, entry.Image, mode)

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		slog.WarnContext(ctx, "履歴画像の編集に失敗しました", "entry_id", entryID, "mode", mode, "error", err)
		o.showErrorLocked(cleanErrorTimer, CleanFinished{
			EntryID:      entryID,
			ErrorMessage: locale.T(o.state.Language, locale.ErrorClean),
		})
		return "", err
	}
	o.applyLocked(CleanFinished{EntryID: entryID})
	return cleaned, nil
}
