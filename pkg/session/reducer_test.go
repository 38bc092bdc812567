package session

import (
	"testing"
	"time"

	"github.com/shouni/vision-board-kit/pkg/catalog"
	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/shouni/vision-board-kit/pkg/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withView(v View) State {
	s := NewState(locale.English)
	s.View = v
	return s
}

func withResult(v View) State {
	s := withView(v)
	s.Result = &domain.GenerationResult{Image: testImage, Prompt: "p"}
	return s
}

func TestReduce_Transitions(t *testing.T) {
	res := domain.GenerationResult{Image: testImage, Prompt: "p"}
	entry := domain.NewHistoryEntry(res, time.Unix(0, 0))

	tests := []struct {
		name     string
		from     State
		event    Event
		wantView View
		wantErr  error
	}{
		{"フォームから送信", withView(ViewForm), Submit{Form: domain.NewFormData()}, ViewLoading, nil},
		{"結果画面から送信", withResult(ViewResult), Submit{Form: domain.NewFormData()}, ViewLoading, nil},
		{"生成中の送信は拒否", withView(ViewLoading), Submit{Form: domain.NewFormData()}, ViewLoading, ErrBusy},
		{"結果画面から再生成", withResult(ViewResult), Regenerate{}, ViewLoading, nil},
		{"生成中の再生成は拒否", withView(ViewLoading), Regenerate{}, ViewLoading, ErrBusy},
		{"フォームからの再生成は拒否", withView(ViewForm), Regenerate{}, ViewForm, ErrInvalidTransition},
		{"成功で結果画面へ", withView(ViewLoading), Succeeded{Result: res, Entry: entry}, ViewResult, nil},
		{"生成中でない成功は拒否", withView(ViewForm), Succeeded{Result: res, Entry: entry}, ViewForm, ErrInvalidTransition},
		{"失敗でフォームへ", withView(ViewLoading), Failed{Message: "x"}, ViewForm, nil},
		{"生成中でない失敗は拒否", withView(ViewResult), Failed{Message: "x"}, ViewResult, ErrInvalidTransition},
		{"結果画面から編集", withResult(ViewResult), Edit{}, ViewForm, nil},
		{"フォームでの編集は何もしない", withView(ViewForm), Edit{}, ViewForm, nil},
		{"生成中の編集は拒否", withView(ViewLoading), Edit{}, ViewLoading, ErrBusy},
		{"結果があれば結果表示", withResult(ViewForm), ShowResult{}, ViewResult, nil},
		{"結果がなければ拒否", withView(ViewForm), ShowResult{}, ViewForm, ErrNoResult},
		{"生成中の結果表示は拒否", withView(ViewLoading), ShowResult{}, ViewLoading, ErrBusy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reduce(tt.from, tt.event)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantView, got.View)
		})
	}
}

func TestReduce_SubmitAndResult(t *testing.T) {
	s := NewState(locale.Russian)
	s.Error = "old"
	form := domain.NewFormData()
	form.Theme = catalog.ThemeTravel

	s, err := Reduce(s, Submit{Form: form})
	require.NoError(t, err)
	assert.Equal(t, catalog.ThemeTravel, s.Form.Theme)
	assert.Empty(t, s.Error)
	assert.Nil(t, s.Result)

	first := domain.GenerationResult{Image: testImage, Prompt: "first"}
	e1 := domain.NewHistoryEntry(first, time.Unix(1, 0))
	s, err = Reduce(s, Succeeded{Result: first, Entry: e1})
	require.NoError(t, err)
	require.NotNil(t, s.Result)
	assert.Equal(t, "first", s.Result.Prompt)

	s, err = Reduce(s, Regenerate{})
	require.NoError(t, err)
	assert.Equal(t, catalog.ThemeTravel, s.Form.Theme, "再生成はフォームを保持する")

	second := domain.GenerationResult{Image: testImage, Prompt: "second"}
	e2 := domain.NewHistoryEntry(second, time.Unix(2, 0))
	s, err = Reduce(s, Succeeded{Result: second, Entry: e2})
	require.NoError(t, err)

	require.Len(t, s.History, 2)
	assert.Equal(t, e2.ID, s.History[0].ID, "新しいものが先頭")
	assert.Equal(t, e1.ID, s.History[1].ID)
}

func TestReduce_FailureKeepsFormAndHistory(t *testing.T) {
	s := withView(ViewLoading)
	s.Form.Keywords = "kept"
	s.History = []domain.HistoryEntry{{ID: "a"}}

	got, err := Reduce(s, Failed{Message: "boom"})
	require.NoError(t, err)
	assert.Equal(t, ViewForm, got.View)
	assert.Equal(t, "boom", got.Error)
	assert.Equal(t, "kept", got.Form.Keywords)
	assert.Len(t, got.History, 1)

	got, err = Reduce(got, ClearError{})
	require.NoError(t, err)
	assert.Empty(t, got.Error)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := NewState(locale.English)
	s.Form.Atmosphere = []string{"A"}
	s.History = []domain.HistoryEntry{{ID: "a"}}

	_, err := Reduce(s, UpdateForm{Mutate: func(f *domain.FormData) {
		f.Atmosphere[0] = "changed"
		f.AddAtmosphere("B")
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, s.Form.Atmosphere)

	_, err = Reduce(s, CleanStarted{EntryID: "a"})
	require.NoError(t, err)
	assert.Empty(t, s.Cleaning)
}

func TestReduce_UpdateFormNormalizes(t *testing.T) {
	s := NewState(locale.English)
	s.Form.SetCollageTechnique(catalog.CollageDada)
	s.Form.CollageArtist = catalog.ArtistManRay

	got, err := Reduce(s, UpdateForm{Mutate: func(f *domain.FormData) {
		f.CollageTechnique = catalog.CollageNone
		f.Atmosphere = []string{"X", "X", " Y "}
	}})
	require.NoError(t, err)
	assert.Equal(t, catalog.ArtistNone, got.Form.CollageArtist)
	assert.Equal(t, []string{"X", "Y"}, got.Form.Atmosphere)
}

func TestReduce_Language(t *testing.T) {
	s := NewState(locale.Russian)

	got, err := Reduce(s, SetLanguage{Language: locale.Ukrainian})
	require.NoError(t, err)
	assert.Equal(t, locale.Ukrainian, got.Language)

	_, err = Reduce(s, SetLanguage{Language: "de"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestReduce_Assistant(t *testing.T) {
	s := NewState(locale.English)
	s.Accordion = NewAccordion().Open(SectionPhotos)

	s, err := Reduce(s, SuggestStarted{})
	require.NoError(t, err)
	_, err = Reduce(s, SuggestStarted{})
	assert.ErrorIs(t, err, ErrBusy)

	s, err = Reduce(s, SuggestFinished{Keywords: "sea, salt"})
	require.NoError(t, err)
	assert.False(t, s.Suggesting)
	assert.Equal(t, "sea, salt", s.Form.Keywords)

	s, err = Reduce(s, AutoConfigStarted{})
	require.NoError(t, err)
	assert.Equal(t, Accordion{Concept: true, Visual: true}, s.Accordion)
	_, err = Reduce(s, AutoConfigStarted{})
	assert.ErrorIs(t, err, ErrBusy)

	s, err = Reduce(s, AutoConfigFinished{
		Theme:  catalog.ThemeSelfLove,
		Config: domain.AutoConfig{Aesthetic: catalog.StyleJapandi},
	})
	require.NoError(t, err)
	assert.False(t, s.AutoConfiguring)
	assert.Equal(t, catalog.ThemeSelfLove, s.Form.Theme)
	assert.Equal(t, catalog.StyleJapandi, s.Form.Aesthetic)
	assert.Equal(t, "sea, salt", s.Form.Keywords, "空の項目は元の値を残す")
}

func TestReduce_Clean(t *testing.T) {
	s := NewState(locale.English)
	s.History = []domain.HistoryEntry{{ID: "a"}, {ID: "b"}}

	_, err := Reduce(s, CleanStarted{EntryID: "missing"})
	assert.ErrorIs(t, err, ErrEntryNotFound)

	s, err = Reduce(s, CleanStarted{EntryID: "a"})
	require.NoError(t, err)
	_, err = Reduce(s, CleanStarted{EntryID: "a"})
	assert.ErrorIs(t, err, ErrCleanInProgress)

	s, err = Reduce(s, CleanStarted{EntryID: "b"})
	require.NoError(t, err, "別の項目は並行して編集できる")
	assert.Len(t, s.Cleaning, 2)

	s, err = Reduce(s, CleanFinished{EntryID: "a", ErrorMessage: "failed"})
	require.NoError(t, err)
	assert.False(t, s.Cleaning["a"])
	assert.Equal(t, "failed", s.CleanError)

	s, err = Reduce(s, ClearCleanError{})
	require.NoError(t, err)
	assert.Empty(t, s.CleanError)
}
