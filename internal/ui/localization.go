package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyInquire          = "inquire"
	KeyClear            = "clear"
	KeyRunning          = "running"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyShutdownServer   = "shutdown_server"
	KeyEnterVideo       = "enter_video"
	KeyServerURL        = "server_url"
	KeyPollInterval     = "poll_interval"
	KeyCacheSize        = "cache_size"
	KeyRequestTimeout   = "request_timeout"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyRestartRequired  = "restart_required"
	KeyClosePanel       = "close_panel"
	KeyDownloadStream   = "download_stream"
	KeyCancelStream     = "cancel_stream"
	KeyStreams          = "streams"
	KeyProgress         = "progress"
	KeyNoDownloads      = "no_downloads"
	KeyShutdownConfirm  = "shutdown_confirm"
	KeyConnectionLabel  = "connection"
	KeyInterfaceSection = "interface"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Clipy",
		KeyInquire:          "Inquire",
		KeyClear:            "Clear",
		KeyRunning:          "running",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyShutdownServer:   "Shutdown server",
		KeyEnterVideo:       "Video id or URL",
		KeyServerURL:        "Server URL",
		KeyPollInterval:     "Poll interval",
		KeyCacheSize:        "Panel cache size",
		KeyRequestTimeout:   "Request timeout",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartRequired:  "Server URL, timeout and cache size apply after restart.",
		KeyClosePanel:       "Close this panel",
		KeyDownloadStream:   "Download this stream",
		KeyCancelStream:     "Cancel this download",
		KeyStreams:          "Streams",
		KeyProgress:         "Downloads",
		KeyNoDownloads:      "No active downloads",
		KeyShutdownConfirm:  "Stop the clipy server?",
		KeyConnectionLabel:  "Connection",
		KeyInterfaceSection: "Interface",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Clipy",
		KeyInquire:          "Запросить",
		KeyClear:            "Очистить",
		KeyRunning:          "работает",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyShutdownServer:   "Остановить сервер",
		KeyEnterVideo:       "ID или URL видео",
		KeyServerURL:        "URL сервера",
		KeyPollInterval:     "Интервал опроса",
		KeyCacheSize:        "Размер кэша панелей",
		KeyRequestTimeout:   "Таймаут запроса",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyRestartRequired:  "URL сервера, таймаут и размер кэша применятся после перезапуска.",
		KeyClosePanel:       "Закрыть панель",
		KeyDownloadStream:   "Скачать этот поток",
		KeyCancelStream:     "Отменить загрузку",
		KeyStreams:          "Потоки",
		KeyProgress:         "Загрузки",
		KeyNoDownloads:      "Нет активных загрузок",
		KeyShutdownConfirm:  "Остановить сервер clipy?",
		KeyConnectionLabel:  "Подключение",
		KeyInterfaceSection: "Интерфейс",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Clipy",
		KeyInquire:          "Consultar",
		KeyClear:            "Limpar",
		KeyRunning:          "em execução",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyShutdownServer:   "Desligar servidor",
		KeyEnterVideo:       "ID ou URL do vídeo",
		KeyServerURL:        "URL do servidor",
		KeyPollInterval:     "Intervalo de consulta",
		KeyCacheSize:        "Tamanho do cache de painéis",
		KeyRequestTimeout:   "Tempo limite da requisição",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyRestartRequired:  "URL do servidor, tempo limite e cache valem após reiniciar.",
		KeyClosePanel:       "Fechar este painel",
		KeyDownloadStream:   "Baixar este fluxo",
		KeyCancelStream:     "Cancelar este download",
		KeyStreams:          "Fluxos",
		KeyProgress:         "Downloads",
		KeyNoDownloads:      "Nenhum download ativo",
		KeyShutdownConfirm:  "Parar o servidor clipy?",
		KeyConnectionLabel:  "Conexão",
		KeyInterfaceSection: "Interface",
	}
}
