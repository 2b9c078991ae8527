package ui

import (
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clipy/internal/config"
)

// Settings dialog size
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 420
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serverEntry    *widget.Entry
	pollEntry      *widget.Entry
	cacheSizeEntry *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.serverEntry = widget.NewEntry()
	sd.serverEntry.SetPlaceHolder(config.DefaultServerURL)
	sd.serverEntry.Validator = func(s string) error {
		if s == "" || config.ValidServerURL(s) {
			return nil
		}
		return errInvalidServerURL
	}

	sd.pollEntry = widget.NewEntry()
	sd.pollEntry.SetPlaceHolder(config.DefaultPollInterval.String())

	sd.cacheSizeEntry = widget.NewEntry()
	sd.cacheSizeEntry.SetPlaceHolder(strconv.Itoa(config.MinCacheSize) + "-" + strconv.Itoa(config.MaxCacheSize))

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(config.DefaultRequestTimeout.String())

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyConnectionLabel)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyServerURL)+":"),
		sd.serverEntry,

		widget.NewLabel(t(KeyPollInterval)+":"),
		sd.pollEntry,

		widget.NewLabel(t(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(t(KeyCacheSize)+":"),
		sd.cacheSizeEntry,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyInterfaceSection)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(t(KeyRestartRequired)),
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverEntry.SetText(sd.settings.GetServerURL())
	sd.pollEntry.SetText(sd.settings.GetPollInterval().String())
	sd.cacheSizeEntry.SetText(strconv.Itoa(sd.settings.GetCacheSize()))
	sd.timeoutEntry.SetText(sd.settings.GetRequestTimeout().String())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// save writes every parsable field to the settings. Unparsable fields keep
// their stored value.
func (sd *SettingsDialog) save() {
	if sd.serverEntry.Text != "" && config.ValidServerURL(sd.serverEntry.Text) {
		sd.settings.SetServerURL(sd.serverEntry.Text)
	}

	if d, err := time.ParseDuration(sd.pollEntry.Text); err == nil {
		sd.settings.SetPollInterval(d)
	}

	if d, err := time.ParseDuration(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetRequestTimeout(d)
	}

	if size, err := strconv.Atoi(sd.cacheSizeEntry.Text); err == nil {
		sd.settings.SetCacheSize(size)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
