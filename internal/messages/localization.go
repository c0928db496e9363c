package messages

import "fmt"

// Localization manages message translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Supported language codes
const (
	LanguageSystem      = "system"
	LanguageEnglish     = "en"
	LanguageTraditional = "zh-TW"
)

// Text keys for localization
const (
	KeyFetchingInfo      = "fetching_info"
	KeyPreparing         = "preparing"
	KeyDownloadCompleted = "download_completed"
	KeyVideoUnavailable  = "video_unavailable"
	KeyInvalidURL        = "invalid_url"
	KeyToolError         = "tool_error"
	KeyAttemptFailed     = "attempt_failed"
	KeyRetriesExhausted  = "retries_exhausted"
	KeyToolMissing       = "tool_missing"
	KeyInstallGuide      = "install_guide"
	KeyToolFoundAt       = "tool_found_at"
	KeyToolAddToPath     = "tool_add_to_path"
	KeyToolNotFound      = "tool_not_found"
	KeyToolCheckError    = "tool_check_error"
	KeyListMissing       = "list_missing"
	KeyListEmpty         = "list_empty"
	KeyListUnreadable    = "list_unreadable"
	KeyProgressLine      = "progress_line"
	KeyUnknownQuality    = "unknown_quality"
	KeyPlaylistExpanded  = "playlist_expanded"
	KeyPlaylistFailed    = "playlist_failed"
	KeyInterrupted       = "interrupted"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LanguageEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == LanguageSystem {
		lang = LanguageEnglish
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
	if texts, exists := l.texts[LanguageEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Textf formats the localized text for key with args
func (l *Localization) Textf(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LanguageEnglish:     "English",
		LanguageTraditional: "繁體中文",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts[LanguageEnglish] = map[string]string{
		KeyFetchingInfo:      "Fetching video info: %s",
		KeyPreparing:         "Preparing download: %s",
		KeyDownloadCompleted: "Download completed: %s",
		KeyVideoUnavailable:  "Error: video unavailable or removed - %s",
		KeyInvalidURL:        "Error: invalid video URL - %s",
		KeyToolError:         "Error: ffmpeg failed, make sure ffmpeg is installed and its directory is on PATH",
		KeyAttemptFailed:     "Download failed %s (attempt %d/%d): %v",
		KeyRetriesExhausted:  "Could not download %s, maximum retries reached",
		KeyToolMissing:       "Error: ffmpeg not found. Install ffmpeg to download and merge high quality video.",
		KeyInstallGuide: "Windows installation:\n" +
			"1. Download ffmpeg: https://github.com/BtbN/FFmpeg-Builds/releases\n" +
			"2. Extract the archive\n" +
			"3. Add the bin directory containing ffmpeg.exe to the PATH environment variable",
		KeyToolFoundAt:      "Found ffmpeg at: %s",
		KeyToolAddToPath:    "Make sure this directory is added to the PATH environment variable",
		KeyToolNotFound:     "Could not find ffmpeg in common install locations",
		KeyToolCheckError:   "Error while checking ffmpeg: %v",
		KeyListMissing:      "Error: %s does not exist",
		KeyListEmpty:        "Warning: no valid URLs in %s",
		KeyListUnreadable:   "Error: cannot read %s: %v",
		KeyProgressLine:     "Download progress: %.1f%% | %s/%s | Speed: %s/s | Quality: %s",
		KeyUnknownQuality:   "unknown quality",
		KeyPlaylistExpanded: "Playlist %s expanded into %d videos",
		KeyPlaylistFailed:   "Could not expand playlist %s, downloading it as a single URL: %v",
		KeyInterrupted:      "Interrupted, remaining URLs skipped",
	}

	l.texts[LanguageTraditional] = map[string]string{
		KeyFetchingInfo:      "正在獲取影片信息: %s",
		KeyPreparing:         "正在準備下載: %s",
		KeyDownloadCompleted: "下載完成: %s",
		KeyVideoUnavailable:  "錯誤: 影片不可用或已被刪除 - %s",
		KeyInvalidURL:        "錯誤: 無效的影片 URL - %s",
		KeyToolError:         "錯誤: ffmpeg相關錯誤，請確保ffmpeg已正確安裝並添加到系統環境變量Path中",
		KeyAttemptFailed:     "下載失敗 %s (嘗試 %d/%d): %v",
		KeyRetriesExhausted:  "無法下載 %s 已達最大重試次數",
		KeyToolMissing:       "錯誤: 未找到ffmpeg。請安裝ffmpeg以支持高品質視頻下載和合併。",
		KeyInstallGuide: "Windows安裝方法：\n" +
			"1. 下載ffmpeg: https://github.com/BtbN/FFmpeg-Builds/releases\n" +
			"2. 解壓縮下載的檔案\n" +
			"3. 將ffmpeg.exe所在的bin目錄添加到系統環境變量Path中",
		KeyToolFoundAt:      "找到ffmpeg於: %s",
		KeyToolAddToPath:    "請確保此路徑已添加到系統環境變量Path中",
		KeyToolNotFound:     "無法在常見安裝路徑找到ffmpeg",
		KeyToolCheckError:   "檢查ffmpeg時發生錯誤: %v",
		KeyListMissing:      "錯誤: %s 不存在",
		KeyListEmpty:        "警告: %s 中沒有有效的URL",
		KeyListUnreadable:   "錯誤: 無法讀取 %s: %v",
		KeyProgressLine:     "下載進度: %.1f%% | %s/%s | 速度: %s/s | 品質: %s",
		KeyUnknownQuality:   "未知品質",
		KeyPlaylistExpanded: "播放清單 %s 已展開為 %d 部影片",
		KeyPlaylistFailed:   "無法展開播放清單 %s，將作為單一URL下載: %v",
		KeyInterrupted:      "已中斷，略過剩餘的URL",
	}
}
