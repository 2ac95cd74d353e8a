package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"actionmenu/config"
	"actionmenu/inspect"
	"actionmenu/keys"
	"actionmenu/log"
	"actionmenu/ui"
	"actionmenu/ui/layout"
	"actionmenu/ui/overlay"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures one run of the menu.
type Options struct {
	Config *config.Config
	Theme  *config.Theme
	// Version is shown in the footer unless the config turns it off. Empty hides it.
	Version string
	// State supplies the initially focused tile and the last launch.
	State *config.State
	// Reload re-reads the layout and theme after a watched file changed. Nil disables live reload.
	Reload func() (*config.Config, *config.Theme, error)
	// Watcher reports changes to the layout and theme files.
	Watcher *config.Watcher
	// InputTTY reads keys from the terminal instead of stdin.
	InputTTY bool
}

// Run shows the menu until a button is chosen or the menu is closed. It returns the chosen
// button, or nil when the menu was closed without a choice.
func Run(ctx context.Context, opts Options) (*config.Button, error) {
	m := newHome(ctx, opts)
	p := tea.NewProgram(m, programOptions(ctx, opts)...)

	final, err := p.Run()
	log.GetProfiler().LogStats()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return nil, fmt.Errorf("menu: %w", err)
	}
	if h, ok := final.(*home); ok && h.chosen != nil {
		return h.chosen, nil
	}
	return nil, ctx.Err()
}

// Layout lays the menu out for a width x height terminal without starting the UI. The debug
// command prints what it returns.
func Layout(cfg *config.Config, theme *config.Theme, width, height int) (*inspect.Snapshot, layout.Result) {
	m := newHome(context.Background(), Options{Config: cfg, Theme: theme})
	m.width, m.height = width, height
	m.updateLayout()
	return m.snapshot(), m.grid.Result()
}

// programOptions maps the display protocol to bubbletea options: layer-shell and xdg take the
// whole screen, none renders inline.
func programOptions(ctx context.Context, opts Options) []tea.ProgramOption {
	options := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	}
	switch opts.Config.Protocol {
	case config.ProtocolLayerShell, config.ProtocolXdg, "":
		options = append(options, tea.WithAltScreen())
	}
	if opts.InputTTY {
		options = append(options, tea.WithInputTTY())
	}
	return options
}

type home struct {
	ctx context.Context

	// -- Config --

	cfg    *config.Config
	styles ui.Styles
	reload func() (*config.Config, *config.Theme, error)
	// watcher is nil when live reload is off
	watcher *config.Watcher

	// -- UI Components --

	// grid holds the tiles and lays them out
	grid *ui.TileGrid
	// menu is the footer with key hints and the version label
	menu *ui.Menu
	// errBox displays error messages
	errBox *ui.ErrBox
	// warning is shown instead of the grid when the terminal is too small
	warning *overlay.WarningOverlay

	// -- Layout --

	width, height int
	constraints   layout.Constraints
	degradation   layout.Degradation

	// chosen is the button to launch once the program exits
	chosen *config.Button

	// copy writes to the clipboard
	copy func(string) error
	now  func() time.Time
}

func newHome(ctx context.Context, opts Options) *home {
	m := &home{
		ctx:     ctx,
		cfg:     opts.Config,
		styles:  ui.NewStyles(opts.Theme),
		reload:  opts.Reload,
		watcher: opts.Watcher,
		grid:    ui.NewTileGrid(opts.Config),
		menu:    ui.NewMenu(opts.Version),
		errBox:  ui.NewErrBox(),
		warning: overlay.NewWarningOverlay("Terminal too small"),
		copy:    clipboard.WriteAll,
		now:     time.Now,
	}

	if opts.State != nil {
		if opts.State.LastLabel != "" {
			m.grid.FocusLabel(opts.State.LastLabel)
		}
		if n := len(opts.State.History); n > 0 {
			last := opts.State.History[n-1]
			m.menu.SetLastLaunch(last.Label, last.At)
		}
	}
	return m
}

func (m *home) Init() tea.Cmd {
	return m.waitForChange()
}

// updateLayout recomputes the screen regions and allocates the tiles into the content box.
func (m *home) updateLayout() {
	footer := m.width >= layout.HintHideWidth || !m.cfg.NoVersionInfo
	c := layout.ComputeConstraints(m.width, m.height, m.cfg.Margins(), footer)

	result := m.grid.Allocate(c.ContentWidth, c.ContentHeight)
	d := layout.ComputeDegradation(c, result.Geometry)

	minWidth := m.grid.Measure(layout.Horizontal, layout.Unconstrained).Minimum
	minHeight := m.grid.Measure(layout.Vertical, c.ContentWidth).Minimum
	if len(m.grid.Visible()) > 0 && !c.FitsMinimum(minWidth, minHeight) {
		d.ShowMinWarning = true
	}
	m.constraints, m.degradation = c, d

	m.menu.SetSize(m.width)
	m.menu.SetShowHints(!d.HideHints)
	m.menu.SetShowVersion(!m.cfg.NoVersionInfo && !d.HideVersionInfo)
	m.errBox.SetSize(m.width)
	m.warning.SetStatus(fmt.Sprintf("%dx%d, need %dx%d", m.width, m.height,
		max(layout.MinWidth, minWidth+c.Margins.Left+c.Margins.Right),
		max(layout.MinHeight, minHeight+c.Margins.Top+c.Margins.Bottom)))

	log.LayoutTrace("terminal %dx%d mode=%s content=%dx%d grid=%dx%d warning=%v",
		m.width, m.height, c.Mode, c.ContentWidth, c.ContentHeight,
		result.Geometry.Rows, result.Geometry.Cols, d.ShowMinWarning)

	if inspect.IsEnabled() {
		if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
			log.WarningLog.Printf("could not write inspect snapshot: %v", err)
		}
	}
}

// snapshot describes the current layout for inspection.
func (m *home) snapshot() *inspect.Snapshot {
	state := inspect.AppStateInfo{
		ConfigPath:  m.cfg.Path,
		ThemePath:   m.styles.Theme.Path,
		ButtonCount: len(m.cfg.Buttons),
	}
	if t, ok := m.grid.Focused(); ok {
		state.Focused = t.Button().Label
	}
	if err := m.errBox.Err(); err != nil {
		state.ErrorMessage = err.Error()
	}

	return inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithAppState(state).
		WithLayout(m.constraints, m.grid.LayoutConfig(), m.grid.Geometry(), m.degradation).
		WithComponents(m.grid.InspectNode())
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		m.errBox.Clear()
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.BlurMsg:
		if m.cfg.CloseOnLostFocus {
			log.InfoLog.Printf("focus lost, closing")
			return m, tea.Quit
		}
		return m, nil
	case configChangedMsg:
		cmd := m.handleReload(msg.path)
		return m, tea.Batch(cmd, m.waitForChange())
	case watchErrMsg:
		return m, tea.Batch(m.handleError(msg.err), m.waitForChange())
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	log.InputTrace("key %q", s)

	if s != "ctrl+c" {
		if b, ok := m.cfg.FindButton(s); ok {
			return m.choose(b)
		}
	}

	name, ok := keys.GlobalKeyStringsMap[s]
	if !ok {
		return m, nil
	}
	highlight := m.keydownCallback(name)

	switch name {
	case keys.KeyQuit:
		return m, tea.Quit
	case keys.KeyUp:
		m.grid.MoveFocus(ui.DirUp)
	case keys.KeyDown:
		m.grid.MoveFocus(ui.DirDown)
	case keys.KeyLeft:
		m.grid.MoveFocus(ui.DirLeft)
	case keys.KeyRight:
		m.grid.MoveFocus(ui.DirRight)
	case keys.KeyNext:
		m.grid.MoveFocus(ui.DirNext)
	case keys.KeyPrev:
		m.grid.MoveFocus(ui.DirPrev)
	case keys.KeyEnter:
		if t, ok := m.grid.Focused(); ok {
			return m.choose(t.Button())
		}
	case keys.KeyCopy:
		t, ok := m.grid.Focused()
		if !ok {
			return m, highlight
		}
		if err := m.copy(t.Button().Action); err != nil {
			return m, tea.Batch(highlight, m.handleError(fmt.Errorf("failed to copy action: %w", err)))
		}
		log.InfoLog.Printf("copied action of %q", t.Button().Label)
	}
	return m, highlight
}

func (m *home) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var (
		tile   *ui.Tile
		onTile bool
	)
	if m.constraints.Contains(msg.X, msg.Y) {
		tile, onTile = m.grid.TileAt(msg.X-m.constraints.ContentX, msg.Y-m.constraints.ContentY)
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.grid.SetHover(tile)
	case tea.MouseActionRelease:
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
			return m, nil
		}
		log.InputTrace("click at %d,%d on tile=%v", msg.X, msg.Y, onTile)
		if onTile {
			return m.choose(tile.Button())
		}
		// Clicking the background closes the menu.
		return m, tea.Quit
	}
	return m, nil
}

// choose records b as the chosen button and quits so the terminal is restored before the action
// runs.
func (m *home) choose(b config.Button) (tea.Model, tea.Cmd) {
	log.InfoLog.Printf("chose %q", b.Label)
	m.chosen = &b
	return m, tea.Quit
}

// handleReload re-reads the layout and theme after path changed. On failure the old config stays.
func (m *home) handleReload(path string) tea.Cmd {
	if m.reload == nil {
		return nil
	}
	log.InfoLog.Printf("%s changed, reloading", path)

	cfg, theme, err := m.reload()
	if err != nil {
		var perr *config.ParseError
		if errors.As(err, &perr) {
			log.ErrorLog.Printf("%v\n%s", perr, perr.Snippet())
		}
		return m.handleError(fmt.Errorf("reload failed: %w", err))
	}

	m.cfg = cfg
	m.styles = ui.NewStyles(theme)
	m.grid.SetConfig(cfg)
	if m.width > 0 && m.height > 0 {
		m.updateLayout()
	}
	return nil
}

func (m *home) View() string {
	start := time.Now()
	defer func() {
		log.GetProfiler().RecordFrame(time.Since(start))
	}()

	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	c := m.constraints
	canvas := ui.NewCanvas(m.width, m.height)

	if m.degradation.ShowMinWarning {
		block := m.warning.Render(m.styles.WarningBox, m.styles.WarningText)
		canvas.Place(0, 0, overlay.Center(m.width, m.height, block))
		return canvas.String()
	}

	canvas.Place(c.ContentX, c.ContentY, m.grid.View(m.styles, m.degradation))

	errY := m.height - 1
	if c.ShowFooter {
		canvas.Place(0, c.FooterY, m.menu.View(m.styles, m.now()))
		errY = c.FooterY - layout.FooterGap
	}
	if errView := m.errBox.View(m.styles); errView != "" {
		canvas.Place(0, errY, errView)
	}
	return canvas.String()
}

// waitForChange waits for the next change reported by the watcher.
func (m *home) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case path, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return configChangedMsg{path: path}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

type keyupMsg struct{}

// keydownCallback clears the footer key highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// configChangedMsg is sent when a watched layout or theme file changed.
type configChangedMsg struct {
	path string
}

// watchErrMsg carries an error from the file watcher.
type watchErrMsg struct {
	err error
}

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideErrMsg{}
	}
}
