package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/gosplit/internal/config"
	"github.com/sadopc/gosplit/internal/core/history"
	"github.com/sadopc/gosplit/internal/logging"
	"github.com/sadopc/gosplit/internal/ui/components"
	"github.com/sadopc/gosplit/internal/ui/layout"
	"github.com/sadopc/gosplit/internal/ui/msgs"
	"github.com/sadopc/gosplit/internal/ui/panels/events"
	"github.com/sadopc/gosplit/internal/ui/panels/source"
	"github.com/sadopc/gosplit/internal/ui/splitpane"
	"github.com/sadopc/gosplit/internal/ui/theme"
)

// Document is the file shown in the first pane.
type Document struct {
	Name string
	Data []byte
}

// App is the root Bubble Tea model.
type App struct {
	split  *splitpane.Model
	source *source.Model
	events *events.Model

	statusBar components.StatusBar
	help      components.Help
	toast     components.Toast

	cfg        config.Config
	history    *history.Store
	session    string
	layoutKey  string
	defaultPos layout.Position

	mode  msgs.AppMode
	focus msgs.PanelFocus
	frame layout.Frame
	keys  KeyMap

	theme  theme.Theme
	styles theme.Styles

	ready bool
	log   *slog.Logger
}

// New creates the App. hist may be nil, in which case placements are
// neither restored nor recorded.
func New(cfg config.Config, doc Document, hist *history.Store) (App, error) {
	t := theme.WithDividerColors(theme.Resolve(cfg.Theme), cfg.DividerColor, cfg.DraggingColor)
	s := theme.NewStyles(t)

	opts, err := cfg.SplitOptions(t.DividerColor(false), t.DividerColor(true))
	if err != nil {
		return App{}, err
	}

	a := App{
		source: source.New(t, s),
		events: events.New(t, s),

		statusBar: components.NewStatusBar(t, s),
		help:      components.NewHelp(t, s),
		toast:     components.NewToast(t),

		cfg:        cfg,
		history:    hist,
		session:    history.NewSession(),
		layoutKey:  doc.Name + "|" + opts.Axis.String(),
		defaultPos: opts.Position,

		mode:  msgs.ModeNormal,
		focus: msgs.FocusPaneA,
		keys:  DefaultKeyMap(),

		theme:  t,
		styles: s,
		log:    logging.New("app"),
	}

	a.source.SetContent(doc.Name, doc.Data)

	ev := a.events
	opts.Listener = splitpane.ListenerFunc(func(m *splitpane.Model, fromUser bool) {
		ev.Record(events.Entry{
			Axis:     m.Axis(),
			Offset:   m.Offset(),
			Percent:  m.Percent(),
			FromUser: fromUser,
		})
	})
	a.split = splitpane.New(opts)
	if err := a.split.SetPanes(a.source, a.events); err != nil {
		return App{}, err
	}

	a.restorePlacement()
	a.updateFocus()
	return a, nil
}

// Split returns the split pane widget.
func (a App) Split() *splitpane.Model {
	return a.split
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.update(msg)
	next := model.(App)
	next.syncStatus()
	return next, cmd
}

func (a App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.frame = layout.HandleResize(msg)
		if err := a.split.SetSize(a.frame.Width, a.frame.ContentHeight); err != nil {
			a.log.Error("layout failed", "err", err)
		}
		a.statusBar.SetWidth(a.frame.Width)
		a.toast.SetMaxWidth(a.frame.Width)
		a.help.SetSize(a.frame.Width, a.frame.Height)
		a.ready = true
		return a, nil

	case tea.MouseMsg:
		if a.help.Visible {
			return a, nil
		}
		_, cmd := a.split.Update(msg)
		return a, cmd

	case tea.BlurMsg:
		_, cmd := a.split.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if a.help.Visible {
			var cmd tea.Cmd
			a.help, cmd = a.help.Update(msg)
			return a, cmd
		}
		if a.split.Dragging() {
			_, cmd := a.split.Update(msg)
			return a, cmd
		}

		if cmd := a.handleGlobalKey(msg); cmd != nil {
			return a, cmd
		}
		return a.handlePanelKey(msg)

	case msgs.SplitterMovedMsg:
		a.statusBar.SetMoved(msg.At)
		return a, a.recordPlacement(msg)

	case msgs.PlacementSavedMsg:
		if msg.Err != nil {
			a.log.Warn("storing placement failed", "err", msg.Err)
			cmd := a.toast.Show("Could not save placement: "+msg.Err.Error(), true, 3*time.Second)
			return a, cmd
		}
		a.log.Debug("placement stored", "id", msg.ID)
		return a, nil

	case msgs.ResetSplitMsg:
		return a, a.split.SetPosition(a.defaultPos)

	case msgs.CancelDragMsg:
		_, cmd := a.split.Update(msg)
		return a, cmd

	case msgs.CopyGeometryMsg:
		return a.copyGeometry()

	case msgs.ShowHelpMsg:
		a.mode = msgs.ModeModal
		a.help.SetSize(a.frame.Width, a.frame.Height)
		a.help.Toggle()
		return a, nil

	case msgs.SetModeMsg:
		a.mode = msg.Mode
		return a, nil

	case msgs.StatusMsg:
		return a, a.statusBar.SetMessage(msg.Text, msg.Duration)
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.statusBar, cmd = a.statusBar.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// syncStatus copies the splitter readout and the mode into the status bar.
func (a *App) syncStatus() {
	switch {
	case a.split.Dragging():
		a.mode = msgs.ModeDrag
	case a.help.Visible:
		a.mode = msgs.ModeModal
	default:
		a.mode = msgs.ModeNormal
	}
	a.statusBar.SetMode(a.mode)

	w, h := a.split.Size()
	a.statusBar.SetSplit(a.split.Axis(), a.split.Percent(), a.split.Offset(), a.split.Axis().Extent(w, h))
}

func (a *App) restorePlacement() {
	if a.history == nil {
		return
	}
	e, err := a.history.Latest(a.layoutKey)
	if err != nil {
		if !errors.Is(err, history.ErrNotFound) {
			a.log.Warn("loading placement failed", "err", err)
		}
		return
	}

	saved := splitpane.SavedState{
		Axis:       a.split.Axis(),
		ByFraction: e.ByFraction,
		Offset:     e.Offset,
		Fraction:   e.Fraction,
	}
	if err := a.split.Restore(saved); err != nil {
		a.log.Warn("restoring placement failed", "err", err)
		return
	}
	a.events.Note(fmt.Sprintf("restored %s from %s", saved.Position(), humanize.Time(e.Timestamp)))
}

func (a App) recordPlacement(msg msgs.SplitterMovedMsg) tea.Cmd {
	store := a.history
	if store == nil {
		return nil
	}
	entry := history.Entry{
		Session:    a.session,
		Key:        a.layoutKey,
		Axis:       msg.Axis.String(),
		ByFraction: msg.Position.IsFraction(),
		Offset:     msg.Offset,
		Fraction:   msg.Fraction,
		FromUser:   msg.FromUser,
		Timestamp:  msg.At,
	}
	if entry.ByFraction {
		entry.Fraction = msg.Position.Configured()
	} else {
		entry.Offset = int(msg.Position.Configured())
	}
	return func() tea.Msg {
		id, err := store.Add(entry)
		return msgs.PlacementSavedMsg{ID: id, Err: err}
	}
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	main := lipgloss.JoinVertical(lipgloss.Left, a.split.View(), a.statusBar.View())

	if a.help.Visible {
		main = overlayCenter(main, a.help.View(), a.frame.Width, a.frame.Height)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.frame.Width)
	}
	return main
}
