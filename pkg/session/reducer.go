package session

import (
	"errors"
	"fmt"

	"github.com/shouni/vision-board-kit/pkg/catalog"
	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/shouni/vision-board-kit/pkg/locale"
)

var (
	// ErrBusy は同じ種類の処理が進行中であることを示します。
	ErrBusy = errors.New("operation already in progress")
	// ErrNoResult は表示できる生成結果がないことを示します。
	ErrNoResult = errors.New("no result to show")
	// ErrCleanInProgress は同じ履歴項目の編集が進行中であることを示します。
	ErrCleanInProgress = errors.New("clean already in progress for this item")
	// ErrEntryNotFound は指定 ID の履歴項目が存在しないことを示します。
	ErrEntryNotFound = errors.New("history entry not found")
	// ErrInvalidTransition は現在の画面では受け付けない操作であることを示します。
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrInvalidArgument は区画名や言語などの引数が不正であることを示します。
	ErrInvalidArgument = errors.New("invalid argument")
)

// Event は状態遷移のきっかけです。
type Event interface{ isEvent() }

type (
	// Submit はフォームの送信です。Form は送信時点のスナップショットです。
	Submit struct{ Form domain.FormData }
	// Regenerate は保持しているフォームで再生成します。
	Regenerate struct{}
	// Succeeded は生成成功です。
	Succeeded struct {
		Result domain.GenerationResult
		Entry  domain.HistoryEntry
	}
	// Failed は生成失敗です。Message は表示用の文言です。
	Failed struct{ Message string }
	// Edit は結果画面からフォームに戻ります。結果は残ります。
	Edit struct{}
	// ShowResult はフォームから直前の結果に戻ります。
	ShowResult struct{}
	// ClearError は生成エラーの表示を消します。
	ClearError struct{}

	// UpdateForm はフォームを変更します。変更後に Normalize されます。
	UpdateForm struct{ Mutate func(*domain.FormData) }
	// SetLanguage は表示言語を切り替えます。
	SetLanguage struct{ Language locale.Language }

	// ToggleSection はアコーディオン区画を開閉します。
	ToggleSection struct{ Section Section }
	// OpenSection は指定区画だけを開きます。
	OpenSection struct{ Section Section }

	// SuggestStarted はキーワード提案の開始です。
	SuggestStarted struct{}
	// SuggestFinished はキーワード提案の完了です。
	SuggestFinished struct{ Keywords string }
	// AutoConfigStarted は自動設定の開始です。
	AutoConfigStarted struct{}
	// AutoConfigFinished は自動設定の完了です。Theme は実際に使ったテーマです。
	AutoConfigFinished struct {
		Theme  catalog.Theme
		Config domain.AutoConfig
	}

	// CleanStarted は履歴項目の編集開始です。
	CleanStarted struct{ EntryID string }
	// CleanFinished は履歴項目の編集完了です。ErrorMessage が空でなければ失敗です。
	CleanFinished struct {
		EntryID      string
		ErrorMessage string
	}
	// ClearCleanError は編集エラーの表示を消します。
	ClearCleanError struct{}
)

func (Submit) isEvent()             {}
func (Regenerate) isEvent()         {}
func (Succeeded) isEvent()          {}
func (Failed) isEvent()             {}
func (Edit) isEvent()               {}
func (ShowResult) isEvent()         {}
func (ClearError) isEvent()         {}
func (UpdateForm) isEvent()         {}
func (SetLanguage) isEvent()        {}
func (ToggleSection) isEvent()      {}
func (OpenSection) isEvent()        {}
func (SuggestStarted) isEvent()     {}
func (SuggestFinished) isEvent()    {}
func (AutoConfigStarted) isEvent()  {}
func (AutoConfigFinished) isEvent() {}
func (CleanStarted) isEvent()       {}
func (CleanFinished) isEvent()      {}
func (ClearCleanError) isEvent()    {}

// Reduce は現在の状態とイベントから次の状態を返します。入力の State は変更しません。
// 受け付けられないイベントの場合はエラーと元の状態を返します。
func Reduce(s State, ev Event) (State, error) {
	next := s.Clone()

	switch e := ev.(type) {
	case Submit:
		if next.View == ViewLoading {
			return s, ErrBusy
		}
		next.Form = e.Form.Clone()
		next.View = ViewLoading
		next.Result = nil
		next.Error = ""

	case Regenerate:
		switch next.View {
		case ViewLoading:
			return s, ErrBusy
		case ViewForm:
			return s, fmt.Errorf("%w: regenerate requires the result view", ErrInvalidTransition)
		}
		next.View = ViewLoading
		next.Result = nil
		next.Error = ""

	case Succeeded:
		if next.View != ViewLoading {
			return s, fmt.Errorf("%w: no generation in progress", ErrInvalidTransition)
		}
		r := e.Result
		next.Result = &r
		next.History = append([]domain.HistoryEntry{e.Entry}, next.History...)
		next.View = ViewResult
		next.Error = ""

	case Failed:
		if next.View != ViewLoading {
			return s, fmt.Errorf("%w: no generation in progress", ErrInvalidTransition)
		}
		next.View = ViewForm
		next.Error = e.Message

	case Edit:
		switch next.View {
		case ViewLoading:
			return s, ErrBusy
		case ViewResult:
			next.View = ViewForm
		}

	case ShowResult:
		switch {
		case next.View == ViewLoading:
			return s, ErrBusy
		case next.Result == nil:
			return s, ErrNoResult
		}
		next.View = ViewResult

	case ClearError:
		next.Error = ""

	case UpdateForm:
		if e.Mutate != nil {
			e.Mutate(&next.Form)
		}
		next.Form.Normalize()

	case SetLanguage:
		if !e.Language.Valid() {
			return s, fmt.Errorf("%w: unknown language %q", ErrInvalidArgument, e.Language)
		}
		next.Language = e.Language

	case ToggleSection:
		if !e.Section.Valid() {
			return s, fmt.Errorf("%w: unknown section %q", ErrInvalidArgument, e.Section)
		}
		next.Accordion = next.Accordion.Toggle(e.Section)

	case OpenSection:
		if !e.Section.Valid() {
			return s, fmt.Errorf("%w: unknown section %q", ErrInvalidArgument, e.Section)
		}
		next.Accordion = next.Accordion.Open(e.Section)

	case SuggestStarted:
		if next.Suggesting {
			return s, ErrBusy
		}
		next.Suggesting = true

	case SuggestFinished:
		next.Suggesting = false
		next.Form.Keywords = e.Keywords

	case AutoConfigStarted:
		if next.AutoConfiguring {
			return s, ErrBusy
		}
		next.AutoConfiguring = true
		next.Accordion = assistantLayout()

	case AutoConfigFinished:
		next.AutoConfiguring = false
		next.Form.Theme = e.Theme
		next.Form.ApplyAutoConfig(e.Config)

	case CleanStarted:
		if _, ok := next.FindEntry(e.EntryID); !ok {
			return s, ErrEntryNotFound
		}
		if next.Cleaning[e.EntryID] {
			return s, ErrCleanInProgress
		}
		next.Cleaning[e.EntryID] = true

	case CleanFinished:
		delete(next.Cleaning, e.EntryID)
		if e.ErrorMessage != "" {
			next.CleanError = e.ErrorMessage
		}

	case ClearCleanError:
		next.CleanError = ""

	default:
		return s, fmt.Errorf("%w: unknown event %T", ErrInvalidTransition, ev)
	}

	return next, nil
}
