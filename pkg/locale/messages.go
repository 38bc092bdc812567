package locale

// Key は翻訳メッセージの識別子です。
type Key int

const (
	HeaderTitle Key = iota
	HeaderSubtitle
	ErrorGeneration
	ErrorClean
	CleanSuccess
	ButtonGenerate
	ButtonGenerating
	ButtonRegenerate
	ButtonCopy
	ButtonCopied
	ButtonDownload
	ButtonDownloadClean
	ButtonNextStep
	CleanOptionText
	CleanOptionAll
	HistoryTitle
	SectionConcept
	SectionTypography
	SectionVisual
	SectionPhotos
	AssistantButton
	AssistantGenerating
	RandomButton
	LoadingStepConcept
	LoadingStepComposition
	LoadingStepLight
	LoadingStepDetails
	numKeys
)

var messages = [numKeys][numLanguages]string{
	HeaderTitle: {
		idxRU: "Доска Визуализации",
		idxUA: "Дошка Візуалізації",
		idxEN: "Vision Board",
	},
	HeaderSubtitle: {
		idxRU: "Создайте эстетичный постер своей мечты",
		idxUA: "Створіть естетичний постер своєї мрії",
		idxEN: "Create an aesthetic poster of your dream",
	},
	ErrorGeneration: {
		idxRU: "Не удалось создать изображение. Попробуйте ещё раз.",
		idxUA: "Не вдалося створити зображення. Спробуйте ще раз.",
		idxEN: "Failed to generate the image. Please try again.",
	},
	ErrorClean: {
		idxRU: "Не удалось очистить изображение.",
		idxUA: "Не вдалося очистити зображення.",
		idxEN: "Failed to clean the image.",
	},
	CleanSuccess: {
		idxRU: "Изображение очищено",
		idxUA: "Зображення очищено",
		idxEN: "Image cleaned",
	},
	ButtonGenerate: {
		idxRU: "Создать постер",
		idxUA: "Створити постер",
		idxEN: "Create poster",
	},
	ButtonGenerating: {
		idxRU: "Создаём...",
		idxUA: "Створюємо...",
		idxEN: "Creating...",
	},
	ButtonRegenerate: {
		idxRU: "Ещё вариант",
		idxUA: "Ще варіант",
		idxEN: "Another version",
	},
	ButtonCopy: {
		idxRU: "Копировать промпт",
		idxUA: "Копіювати промпт",
		idxEN: "Copy prompt",
	},
	ButtonCopied: {
		idxRU: "Скопировано",
		idxUA: "Скопійовано",
		idxEN: "Copied",
	},
	ButtonDownload: {
		idxRU: "Скачать",
		idxUA: "Завантажити",
		idxEN: "Download",
	},
	ButtonDownloadClean: {
		idxRU: "Скачать без текста",
		idxUA: "Завантажити без тексту",
		idxEN: "Download clean",
	},
	ButtonNextStep: {
		idxRU: "Далее",
		idxUA: "Далі",
		idxEN: "Next step",
	},
	CleanOptionText: {
		idxRU: "Убрать только текст",
		idxUA: "Прибрати лише текст",
		idxEN: "Remove text only",
	},
	CleanOptionAll: {
		idxRU: "Убрать текст и человека",
		idxUA: "Прибрати текст і людину",
		idxEN: "Remove text and person",
	},
	HistoryTitle: {
		idxRU: "История",
		idxUA: "Історія",
		idxEN: "History",
	},
	SectionConcept: {
		idxRU: "Концепция",
		idxUA: "Концепція",
		idxEN: "Concept",
	},
	SectionTypography: {
		idxRU: "Текст",
		idxUA: "Текст",
		idxEN: "Typography",
	},
	SectionVisual: {
		idxRU: "Визуал",
		idxUA: "Візуал",
		idxEN: "Visual",
	},
	SectionPhotos: {
		idxRU: "Фото",
		idxUA: "Фото",
		idxEN: "Photos",
	},
	AssistantButton: {
		idxRU: "Подобрать стиль",
		idxUA: "Підібрати стиль",
		idxEN: "Auto-style",
	},
	AssistantGenerating: {
		idxRU: "Подбираем...",
		idxUA: "Підбираємо...",
		idxEN: "Styling...",
	},
	RandomButton: {
		idxRU: "Придумать детали",
		idxUA: "Вигадати деталі",
		idxEN: "Suggest details",
	},
	LoadingStepConcept: {
		idxRU: "Собираем концепцию...",
		idxUA: "Збираємо концепцію...",
		idxEN: "Gathering the concept...",
	},
	LoadingStepComposition: {
		idxRU: "Выстраиваем композицию...",
		idxUA: "Вибудовуємо композицію...",
		idxEN: "Building the composition...",
	},
	LoadingStepLight: {
		idxRU: "Настраиваем свет...",
		idxUA: "Налаштовуємо світло...",
		idxEN: "Setting up the light...",
	},
	LoadingStepDetails: {
		idxRU: "Добавляем детали...",
		idxUA: "Додаємо деталі...",
		idxEN: "Adding the details...",
	},
}

// T は指定言語のメッセージを返します。範囲外のキーは空文字です。
func T(lang Language, key Key) string {
	if key < 0 || key >= numKeys {
		return ""
	}
	return messages[key][lang.index()]
}

// LoadingSteps はローディング表示で順に切り替えるメッセージです。
func LoadingSteps(lang Language) []string {
	return []string{
		T(lang, LoadingStepConcept),
		T(lang, LoadingStepComposition),
		T(lang, LoadingStepLight),
		T(lang, LoadingStepDetails),
	}
}

// Bundle は 1 言語分の全メッセージをキー名付きで返します。API のカタログ応答用です。
func Bundle(lang Language) map[string]string {
	out := make(map[string]string, numKeys)
	for k := Key(0); k < numKeys; k++ {
		out[keyNames[k]] = T(lang, k)
	}
	return out
}

var keyNames = [numKeys]string{
	HeaderTitle:            "header_title",
	HeaderSubtitle:         "header_subtitle",
	ErrorGeneration:        "error_msg",
	ErrorClean:             "clean_error",
	CleanSuccess:           "clean_success",
	ButtonGenerate:         "btn_generate",
	ButtonGenerating:       "btn_generating",
	ButtonRegenerate:       "btn_regenerate",
	ButtonCopy:             "btn_copy",
	ButtonCopied:           "btn_copied",
	ButtonDownload:         "btn_download",
	ButtonDownloadClean:    "btn_download_clean",
	ButtonNextStep:         "next_step",
	CleanOptionText:        "clean_option_text",
	CleanOptionAll:         "clean_option_all",
	HistoryTitle:           "history_title",
	SectionConcept:         "concept_label",
	SectionTypography:      "text_label",
	SectionVisual:          "visual_label",
	SectionPhotos:          "photo_label",
	AssistantButton:        "assistant_btn",
	AssistantGenerating:    "assistant_generating",
	RandomButton:           "random_btn",
	LoadingStepConcept:     "loading_step_concept",
	LoadingStepComposition: "loading_step_composition",
	LoadingStepLight:       "loading_step_light",
	LoadingStepDetails:     "loading_step_details",
}

// String はキー名を返します。
func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return "unknown"
	}
	return keyNames[k]
}
