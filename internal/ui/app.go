package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/nexusdesk/internal/config"
	"github.com/justinpbarnett/nexusdesk/internal/geom"
	"github.com/justinpbarnett/nexusdesk/internal/gesture"
	"github.com/justinpbarnett/nexusdesk/internal/icons"
	"github.com/justinpbarnett/nexusdesk/internal/input"
	"github.com/justinpbarnett/nexusdesk/internal/taskbar"
	"github.com/justinpbarnett/nexusdesk/internal/ui/apps"
	"github.com/justinpbarnett/nexusdesk/internal/ui/canvas"
	"github.com/justinpbarnett/nexusdesk/internal/ui/clipboard"
	"github.com/justinpbarnett/nexusdesk/internal/ui/layout"
	"github.com/justinpbarnett/nexusdesk/internal/ui/panels"
	"github.com/justinpbarnett/nexusdesk/internal/wm"
)

const (
	clockInterval = 30 * time.Second
	wheelStep     = 3
)

type App struct {
	config *config.Config
	scale  layout.Scale
	width  int
	height int
	layout layout.Layout
	ready  bool

	windows   *wm.Manager
	pointer   *input.Dispatcher
	drags     map[string]*gesture.Drag
	resizes   map[string]*gesture.Resize
	icons     *icons.Placement
	iconCells geom.Size
	launchers map[string]config.LauncherConfig
	menuItems []panels.MenuItem

	taskbar      panels.Taskbar
	startMenu    *panels.StartMenu
	helpOverlay  *panels.HelpOverlay
	selectedIcon string
	keys         KeyMap
	copy         func(string) error
	log          *slog.Logger
}

// Option configures an App.
type Option func(*appOptions)

type appOptions struct {
	store     icons.Store
	copy      func(string) error
	now       func() time.Time
	wmOptions []wm.Option
}

// WithIconStore sets where icon positions are persisted.
func WithIconStore(s icons.Store) Option {
	return func(o *appOptions) { o.store = s }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(fn func(string) error) Option {
	return func(o *appOptions) { o.copy = fn }
}

// WithClock replaces time.Now for the taskbar clock and double-click timing.
func WithClock(now func() time.Time) Option {
	return func(o *appOptions) { o.now = now }
}

// WithWindowOptions passes options through to the window manager.
func WithWindowOptions(opts ...wm.Option) Option {
	return func(o *appOptions) { o.wmOptions = append(o.wmOptions, opts...) }
}

func NewApp(cfg *config.Config, opts ...Option) App {
	o := appOptions{
		store: icons.NewMemoryStore(),
		copy:  clipboard.Write,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	scale := layout.Scale{CellWidth: cfg.Desktop.CellWidth, CellHeight: cfg.Desktop.CellHeight}
	wmOpts := append([]wm.Option{
		wm.WithMinimumSize(cfg.Desktop.MinWindowWidth, cfg.Desktop.MinWindowHeight),
	}, o.wmOptions...)
	windows := wm.NewManager(wmOpts...)
	pointer := input.NewDispatcher()

	launchers := make(map[string]config.LauncherConfig, len(cfg.Launchers))
	desktopIcons := make([]icons.Icon, 0, len(cfg.Launchers))
	menu := make([]panels.MenuItem, 0, len(cfg.Launchers))
	for _, l := range cfg.Launchers {
		launchers[l.ID] = l
		desktopIcons = append(desktopIcons, icons.Icon{ID: l.ID, Label: l.Title, Glyph: l.Icon})
		menu = append(menu, panels.MenuItem{ID: l.ID, Title: l.Title, Icon: l.Icon})
	}

	iconSize := scale.FitSize(geom.Size{Width: cfg.Icons.Width, Height: cfg.Icons.Height})
	placement := icons.NewPlacement(desktopIcons, iconSize, pointer,
		icons.WithStore(o.store),
		icons.WithDoubleClick(time.Duration(cfg.Icons.DoubleClickMS)*time.Millisecond),
		icons.WithClock(o.now),
		icons.WithLaunch(func(ic icons.Icon) {
			if l, ok := launchers[ic.ID]; ok {
				openLauncher(windows, l)
			}
		}),
	)
	placement.Load()

	tb := panels.NewTaskbar()
	tb.SetClock(o.now)
	tb.SetShowClock(cfg.UI.ShowClock == nil || *cfg.UI.ShowClock)
	tb.SetShowHint(cfg.UI.ShowHelpHint == nil || *cfg.UI.ShowHelpHint)

	return App{
		config:    cfg,
		scale:     scale,
		windows:   windows,
		pointer:   pointer,
		drags:     make(map[string]*gesture.Drag),
		resizes:   make(map[string]*gesture.Resize),
		icons:     placement,
		iconCells: scale.SizeToCells(iconSize),
		launchers: launchers,
		menuItems: menu,
		taskbar:   tb,
		keys:      DefaultKeyMap(),
		copy:      o.copy,
		log:       slog.With("component", "ui"),
	}
}

// openLauncher opens a fresh window for l. Every launch gets its own window.
func openLauncher(windows *wm.Manager, l config.LauncherConfig) string {
	return windows.OpenWindow(wm.Params{
		Title:   l.Title,
		Icon:    l.Icon,
		Content: apps.NewText(l.Body),
		X:       l.X,
		Y:       l.Y,
		Width:   l.Width,
		Height:  l.Height,
	})
}

func (a App) Init() tea.Cmd {
	return clockTick()
}

func clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg { return ClockTickMsg(t) })
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout = layout.Calculate(msg.Width, msg.Height)
		a.taskbar.SetSize(a.layout.TaskbarWidth)
		area := a.desktopArea()
		a.icons.SetBounds(geom.Size{Width: area.Width, Height: area.Height})
		return a, nil

	case ClockTickMsg:
		return a, clockTick()

	case CloseModalMsg:
		a.helpOverlay = nil
		a.startMenu = nil
		return a, nil

	case ClearFlashMsg:
		a.taskbar.ClearFlash()
		return a, nil

	case NoticeMsg:
		if msg.Text == "" {
			return a, nil
		}
		a.taskbar.SetFlashWithLevel(msg.Text, panels.FlashInfo)
		return a, clearFlashAfter()

	case LaunchMsg:
		a.startMenu = nil
		return a, a.launch(msg.LauncherID)

	case panels.QuitMsg:
		return a, tea.Quit

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if a.helpOverlay != nil {
		var cmd tea.Cmd
		*a.helpOverlay, cmd = a.helpOverlay.Update(msg)
		return a, cmd
	}
	if a.startMenu != nil {
		var cmd tea.Cmd
		*a.startMenu, cmd = a.startMenu.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.helpOverlay = panels.NewHelpOverlay()
		return a, nil
	case key.Matches(msg, a.keys.Start):
		a.openStartMenu()
		return a, nil
	case key.Matches(msg, a.keys.FocusNext):
		a.focusNext()
		return a, nil
	}

	top, ok := a.windows.Topmost()
	if !ok {
		return a, nil
	}
	switch {
	case key.Matches(msg, a.keys.Minimize):
		a.windows.MinimizeWindow(top.ID)
	case key.Matches(msg, a.keys.Maximize):
		a.toggleMaximize(top)
	case key.Matches(msg, a.keys.Close):
		a.windows.CloseWindow(top.ID)
		a.prune()
	case key.Matches(msg, a.keys.ScrollUp):
		scroll(top, -1)
	case key.Matches(msg, a.keys.ScrollDown):
		scroll(top, 1)
	case key.Matches(msg, a.keys.Copy):
		return a, a.copyWindow(top)
	}
	return a, nil
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.ready || a.layout.TooSmall {
		return a, nil
	}
	px, py := a.scale.Pointer(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		a.pointer.Move(px, py)
		return a, nil
	case tea.MouseActionRelease:
		a.pointer.Up(px, py)
		a.prune()
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if w, _, ok := a.windowAt(msg.X, msg.Y); ok {
			scroll(w, -wheelStep)
		}
		return a, nil
	case tea.MouseButtonWheelDown:
		if w, _, ok := a.windowAt(msg.X, msg.Y); ok {
			scroll(w, wheelStep)
		}
		return a, nil
	case tea.MouseButtonLeft:
		return a.press(msg.X, msg.Y, px, py)
	}
	return a, nil
}

// press routes a left-button press at cell (cx, cy); (px, py) is the same
// point in desktop units.
func (a App) press(cx, cy, px, py int) (tea.Model, tea.Cmd) {
	if a.helpOverlay != nil {
		a.helpOverlay = nil
		return a, nil
	}
	if a.startMenu != nil {
		menu := a.startMenuRect()
		if menu.Contains(cx, cy) {
			item, ok := a.startMenu.ItemAt(cy - menu.Y)
			a.startMenu = nil
			if ok {
				return a, panels.Choose(item)
			}
			return a, nil
		}
		a.startMenu = nil
		if cy == a.layout.TaskbarY {
			if hit, _ := a.taskbar.Hit(cx); hit == panels.TaskbarHitStart {
				return a, nil
			}
		}
	}

	if cy == a.layout.TaskbarY {
		a.syncTaskbar()
		switch hit, entry := a.taskbar.Hit(cx); hit {
		case panels.TaskbarHitStart:
			a.openStartMenu()
		case panels.TaskbarHitEntry:
			taskbar.Activate(a.windows, entry)
		}
		return a, nil
	}

	if w, rect, ok := a.windowAt(cx, cy); ok {
		a.selectedIcon = ""
		a.pressWindow(w, rect, cx, cy, px, py)
		return a, nil
	}

	if id, ok := a.iconAt(cx, cy); ok {
		a.selectedIcon = id
		a.icons.Begin(id, px, py)
		return a, nil
	}

	a.selectedIcon = ""
	return a, nil
}

func (a App) pressWindow(w wm.Window, rect geom.Rect, cx, cy, px, py int) {
	region := layout.HitWindow(rect, w.Maximized, cx, cy)
	a.log.Debug("window press", "window", w.ID, "region", region)

	switch region {
	case layout.RegionMinimize:
		a.windows.MinimizeWindow(w.ID)
	case layout.RegionMaximize:
		a.toggleMaximize(w)
	case layout.RegionClose:
		a.windows.CloseWindow(w.ID)
		a.prune()
	case layout.RegionTitle:
		if !a.drag(w.ID).Begin(px, py) {
			a.windows.FocusWindow(w.ID)
		}
	case layout.RegionResize:
		// The grip resizes in place; stacking order is left alone.
		a.resize(w.ID).Begin(px, py)
	default:
		a.windows.FocusWindow(w.ID)
	}
}

func (a App) drag(id string) *gesture.Drag {
	d, ok := a.drags[id]
	if !ok {
		d = gesture.NewDrag(id, a.windows, a.pointer)
		a.drags[id] = d
	}
	return d
}

func (a App) resize(id string) *gesture.Resize {
	r, ok := a.resizes[id]
	if !ok {
		r = gesture.NewResize(id, a.windows, a.pointer)
		a.resizes[id] = r
	}
	return r
}

// prune releases the controllers of windows that no longer exist, which
// detaches any listener a closed window left behind.
func (a App) prune() {
	for id, d := range a.drags {
		if _, ok := a.windows.Window(id); !ok {
			d.Release()
			delete(a.drags, id)
		}
	}
	for id, r := range a.resizes {
		if _, ok := a.windows.Window(id); !ok {
			r.Release()
			delete(a.resizes, id)
		}
	}
}

func (a App) toggleMaximize(w wm.Window) {
	if w.Maximized {
		a.windows.RestoreWindow(w.ID)
		return
	}
	a.windows.MaximizeWindow(w.ID)
}

// focusNext activates the window after the topmost one in table order, the
// same way a taskbar click would.
func (a *App) focusNext() {
	all := a.windows.Windows()
	if len(all) == 0 {
		return
	}
	next := 0
	if topID, ok := taskbar.Topmost(all); ok {
		for i, w := range all {
			if w.ID == topID {
				next = (i + 1) % len(all)
				break
			}
		}
	}
	taskbar.Activate(a.windows, taskbar.Entries(all)[next])
}

func (a *App) openStartMenu() {
	if a.startMenu != nil {
		a.startMenu = nil
		return
	}
	a.startMenu = panels.NewStartMenu(a.menuItems)
}

func (a *App) launch(id string) tea.Cmd {
	l, ok := a.launchers[id]
	if !ok {
		a.log.Warn("unknown launcher", "launcher", id)
		return nil
	}
	openLauncher(a.windows, l)
	return nil
}

func (a *App) copyWindow(w wm.Window) tea.Cmd {
	body := w.Title
	if c, ok := w.Content.(apps.Content); ok {
		body += "\n\n" + c.Plain()
	}
	if err := a.copy(body); err != nil {
		a.log.Warn("copy window", "window", w.ID, "error", err)
		a.taskbar.SetFlashWithLevel("Copy failed", panels.FlashError)
	} else {
		a.taskbar.SetFlashWithLevel("Copied "+w.Title, panels.FlashSuccess)
	}
	return clearFlashAfter()
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(panels.FlashDuration(), func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}

func scroll(w wm.Window, delta int) {
	if c, ok := w.Content.(apps.Content); ok {
		c.Scroll(delta)
	}
}

// desktopArea is the desktop in desktop units; maximized windows fill it.
func (a App) desktopArea() geom.Rect {
	return a.scale.ToUnits(a.layout.Desktop)
}

// windowCells returns the cells a window is drawn in.
func (a App) windowCells(w wm.Window) geom.Rect {
	return a.scale.ToCells(wm.Rendered(w, a.desktopArea()))
}

// windowAt returns the topmost visible window covering cell (cx, cy).
func (a App) windowAt(cx, cy int) (wm.Window, geom.Rect, bool) {
	visible := a.windows.Visible()
	for i := len(visible) - 1; i >= 0; i-- {
		r := a.windowCells(visible[i])
		if r.Contains(cx, cy) {
			return visible[i], r, true
		}
	}
	return wm.Window{}, geom.Rect{}, false
}

func (a App) iconCellsAt(p geom.Point) geom.Rect {
	size := a.icons.Size()
	return a.scale.ToCells(geom.Rect{X: p.X, Y: p.Y, Width: size.Width, Height: size.Height})
}

// iconAt returns the icon drawn at cell (cx, cy). Later icons are on top.
func (a App) iconAt(cx, cy int) (string, bool) {
	placed := a.icons.Icons()
	for i := len(placed) - 1; i >= 0; i-- {
		if a.iconCellsAt(placed[i].Position).Contains(cx, cy) {
			return placed[i].ID, true
		}
	}
	return "", false
}

func (a App) startMenuRect() geom.Rect {
	if a.startMenu == nil {
		return geom.Rect{}
	}
	w, h := a.startMenu.Size()
	return geom.Rect{X: 0, Y: a.layout.Desktop.Bottom() - h, Width: w, Height: h}
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	desk := a.layout.Desktop
	c := canvas.New(desk.Width, desk.Height)

	for _, ic := range a.icons.Icons() {
		r := a.iconCellsAt(ic.Position)
		c.Draw(r.X, r.Y, panels.RenderIcon(ic, a.iconCells, ic.ID == a.selectedIcon))
	}

	topID, _ := taskbar.Topmost(a.windows.Windows())
	for _, w := range a.windows.Visible() {
		r := a.windowCells(w)
		c.Draw(r.X, r.Y, panels.RenderWindow(w, geom.Size{Width: r.Width, Height: r.Height}, w.ID == topID))
	}

	if a.startMenu != nil {
		r := a.startMenuRect()
		c.Draw(r.X, r.Y, a.startMenu.View())
	}

	if a.helpOverlay != nil {
		modal := a.helpOverlay.View()
		mw, mh := lipgloss.Width(modal), lipgloss.Height(modal)
		c.Draw((desk.Width-mw)/2, (desk.Height-mh)/2, modal)
	}

	a.syncTaskbar()
	return strings.Join([]string{c.String(), a.taskbar.View()}, "\n")
}

// syncTaskbar recomputes the taskbar entries from the live window table.
func (a *App) syncTaskbar() {
	a.taskbar.SetEntries(taskbar.Entries(a.windows.Windows()))
	a.taskbar.SetStartOpen(a.startMenu != nil)
}

// Windows returns the window manager backing the desktop.
func (a App) Windows() *wm.Manager {
	return a.windows
}

// Pointer returns the global pointer dispatcher.
func (a App) Pointer() *input.Dispatcher {
	return a.pointer
}

// Icons returns the desktop icon placement.
func (a App) Icons() *icons.Placement {
	return a.icons
}
