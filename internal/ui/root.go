package ui

import (
	"context"
	"sort"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/clipy/internal/config"
	"github.com/ytget/clipy/internal/download"
	"github.com/ytget/clipy/internal/inquiry"
	"github.com/ytget/clipy/internal/model"
	"github.com/ytget/clipy/internal/panel"
	"github.com/ytget/clipy/internal/progress"
)

// RootUI represents the main UI structure
type RootUI struct {
	ctx    context.Context
	window fyne.Window

	videoEntry   *widget.Entry
	inquireBtn   *widget.Button
	clearBtn     *widget.Button
	runningCheck *widget.Check
	statusDot    *canvas.Circle
	panelsBox    *fyne.Container
	progressBox  *fyne.Container
	progressHint *widget.Label
	progressHead *widget.Label

	// Views keyed by panel index and bar id, touched on the UI goroutine only
	panelViews   map[int]*PanelView
	progressRows map[string]*ProgressRow

	inquirySvc   inquiry.Inquirer
	board        *panel.Board
	downloadSvc  download.Downloader
	settings     *config.Settings
	localization *Localization
	logger       *log.Logger

	// Background actions still running
	pending sync.WaitGroup
}

var (
	_ inquiry.Sink      = (*RootUI)(nil)
	_ progress.Listener = (*RootUI)(nil)
)

// NewRootUI creates and initializes the main UI. The caller registers the
// returned value as the inquiry sink and the progress listener.
func NewRootUI(
	ctx context.Context,
	window fyne.Window,
	settings *config.Settings,
	inquirySvc inquiry.Inquirer,
	board *panel.Board,
	downloadSvc download.Downloader,
	logger *log.Logger,
) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if logger == nil {
		logger = log.Default()
	}

	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		panelViews:   make(map[int]*PanelView),
		progressRows: make(map[string]*ProgressRow),
		inquirySvc:   inquirySvc,
		board:        board,
		downloadSvc:  downloadSvc,
		settings:     settings,
		localization: localization,
		logger:       logger.WithPrefix("ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	downloadSvc.SetStatusCallback(ui.onServerStatus)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.videoEntry = widget.NewEntry()
	ui.videoEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterVideo))
	ui.videoEntry.OnSubmitted = func(string) {
		ui.onInquireClick()
	}

	ui.inquireBtn = widget.NewButton(ui.localization.GetText(KeyInquire), ui.onInquireClick)
	ui.inquireBtn.Importance = widget.HighImportance

	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClear), ui.onClearClick)

	ui.runningCheck = widget.NewCheck(ui.localization.GetText(KeyRunning), nil)
	ui.runningCheck.Disable()
	ui.statusDot = canvas.NewCircle(statusColor(model.ServerStatusUnknown))
	ui.statusDot.Resize(fyne.NewSquareSize(StatusDotSize))

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	dot := container.NewCenter(container.NewGridWrap(fyne.NewSquareSize(StatusDotSize), ui.statusDot))
	topPanel := container.NewBorder(
		nil, nil,
		settingsBtn,
		container.NewHBox(ui.inquireBtn, ui.clearBtn, ui.runningCheck, dot),
		ui.videoEntry,
	)

	ui.panelsBox = container.NewVBox()
	panelsScroll := container.NewVScroll(ui.panelsBox)
	panelsScroll.SetMinSize(fyne.NewSize(RowMinWidth, PanelsMinHeight))

	ui.progressHead = widget.NewLabelWithStyle(ui.localization.GetText(KeyProgress), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.progressHint = widget.NewLabel(ui.localization.GetText(KeyNoDownloads))
	ui.progressBox = container.NewVBox()
	progressScroll := container.NewVScroll(container.NewVBox(ui.progressHint, ui.progressBox))
	progressScroll.SetMinSize(fyne.NewSize(RowMinWidth, ProgressMinHeight))

	split := container.NewVSplit(panelsScroll, container.NewBorder(ui.progressHead, nil, nil, nil, progressScroll))
	split.Offset = 0.65

	ui.window.SetContent(container.NewBorder(topPanel, nil, nil, nil, split))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	shutdownItem := fyne.NewMenuItem(ui.localization.GetText(KeyShutdownServer), ui.onShutdownClick)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, fyne.NewMenuItemSeparator(), shutdownItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.videoEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterVideo))
	ui.inquireBtn.SetText(ui.localization.GetText(KeyInquire))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClear))
	ui.runningCheck.Text = ui.localization.GetText(KeyRunning)
	ui.runningCheck.Refresh()
	ui.progressHead.SetText(ui.localization.GetText(KeyProgress))
	ui.progressHint.SetText(ui.localization.GetText(KeyNoDownloads))
}

// onInquireClick sends the entry text to the inquiry service
func (ui *RootUI) onInquireClick() {
	input := strings.TrimSpace(ui.videoEntry.Text)
	if input == "" {
		return
	}
	ui.inquire(input)
}

// inquire runs an inquiry in the background. Failures are logged only.
func (ui *RootUI) inquire(input string) {
	ui.pending.Add(1)
	go func() {
		defer ui.pending.Done()
		if _, err := ui.inquirySvc.Inquire(ui.ctx, input); err != nil {
			ui.logger.Error("inquiry failed", "input", input, "error", err)
		}
	}()
}

// onClearClick removes every panel and forgets their cached results
func (ui *RootUI) onClearClick() {
	n := ui.inquirySvc.Clear()
	ui.panelViews = make(map[int]*PanelView)
	ui.panelsBox.RemoveAll()
	ui.logger.Debug("panels cleared", "count", n)
}

// PanelInserted adds the view of a new panel. Panels cleared or closed
// before the view is built are skipped.
func (ui *RootUI) PanelInserted(p panel.Panel) {
	fyne.Do(func() {
		if _, ok := ui.board.Get(p.Index); !ok {
			ui.logger.Debug("panel gone before display", "index", p.Index)
			return
		}
		view := NewPanelView(p, ui.localization)
		view.SetCallbacks(ui.onPanelToggle, ui.onPanelClose, ui.onStreamClick)
		ui.panelViews[p.Index] = view
		ui.panelsBox.Add(view)
	})
}

func (ui *RootUI) onPanelToggle(index int) {
	expanded, ok := ui.board.Toggle(index)
	if !ok {
		return
	}
	if view, exists := ui.panelViews[index]; exists {
		view.SetExpanded(expanded)
	}
}

func (ui *RootUI) onPanelClose(index int) {
	ui.inquirySvc.Close(index)
	if view, exists := ui.panelViews[index]; exists {
		ui.panelsBox.Remove(view)
		delete(ui.panelViews, index)
	}
}

// onStreamClick downloads the stream, or cancels it when already running.
// The stream is read back from the cached result of its panel; clicks on
// evicted panels do nothing.
func (ui *RootUI) onStreamClick(clicked panel.StreamItem) {
	item, err := ui.inquirySvc.ResolveStream(clicked.Panel, clicked.Index)
	if err != nil {
		ui.logger.Warn("stream click skipped", "panel", clicked.Panel, "stream", clicked.Index, "error", err)
		return
	}

	ui.pending.Add(1)
	go func() {
		defer ui.pending.Done()
		action, err := ui.downloadSvc.Toggle(ui.ctx, item)
		if err != nil {
			ui.logger.Error("stream action failed", "action", action, "vid", item.VID, "sid", item.SID, "error", err)
		}
	}()
}

// BarAdded adds a progress row
func (ui *RootUI) BarAdded(bar progress.Bar) {
	fyne.Do(func() {
		row := NewProgressRow(bar)
		row.SetOnTapped(ui.inquire)
		ui.progressRows[bar.ID] = row
		ui.progressBox.Add(row)
		ui.progressHint.Hide()
	})
}

// BarUpdated refreshes a progress row
func (ui *RootUI) BarUpdated(bar progress.Bar) {
	fyne.Do(func() {
		if row, exists := ui.progressRows[bar.ID]; exists {
			row.UpdateBar(bar)
		}
	})
}

// BarRemoved drops a progress row
func (ui *RootUI) BarRemoved(id string) {
	fyne.Do(func() {
		if row, exists := ui.progressRows[id]; exists {
			ui.progressBox.Remove(row)
			delete(ui.progressRows, id)
		}
		if len(ui.progressRows) == 0 {
			ui.progressHint.Show()
		}
	})
}

// onServerStatus mirrors the poll result into the running check
func (ui *RootUI) onServerStatus(status model.ServerStatus) {
	fyne.Do(func() {
		if ui.runningCheck.Checked != status.IsRunning() {
			ui.runningCheck.SetChecked(status.IsRunning())
		}
		ui.statusDot.FillColor = statusColor(status)
		ui.statusDot.Refresh()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies the settings that do not need a restart
func (ui *RootUI) onSettingsSaved() {
	ui.downloadSvc.SetPollInterval(ui.settings.GetPollInterval())
	ui.onLanguageChange(ui.settings.GetLanguage())
}

// onShutdownClick asks for confirmation and stops the server
func (ui *RootUI) onShutdownClick() {
	dialog.ShowConfirm(
		ui.localization.GetText(KeyShutdownServer),
		ui.localization.GetText(KeyShutdownConfirm),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			ui.pending.Add(1)
			go func() {
				defer ui.pending.Done()
				if err := ui.downloadSvc.Shutdown(ui.ctx); err != nil {
					ui.logger.Error("shutdown failed", "error", err)
				}
			}()
		},
		ui.window,
	)
}

// Wait blocks until background actions started by the UI have finished
func (ui *RootUI) Wait() {
	ui.pending.Wait()
}
