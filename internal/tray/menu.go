package tray

// Menu item ids. Changing one breaks the event dispatcher.
const (
	IDShow = "show"
	IDQuit = "quit"
)

// MenuItem is one entry of the tray menu. A separator has no id.
type MenuItem struct {
	ID        string
	Label     string
	Tooltip   string
	Separator bool
}

// Menu is ordered top to bottom.
type Menu []MenuItem

// BuildMenu returns the tray menu: Open Dashboard, separator, Quit.
func BuildMenu() Menu {
	return Menu{
		{ID: IDShow, Label: "Open Dashboard", Tooltip: "Show the dashboard window"},
		{Separator: true},
		{ID: IDQuit, Label: "Quit", Tooltip: "Quit JOR Task Manager"},
	}
}

// IDs lists the menu in order, "-" standing for a separator.
func (m Menu) IDs() []string {
	ids := make([]string, 0, len(m))
	for _, it := range m {
		if it.Separator {
			ids = append(ids, "-")
			continue
		}
		ids = append(ids, it.ID)
	}
	return ids
}

// Action is what a menu event asks the shell to do. The set is closed:
// ShowAndFocusMainWindow, TerminateProcess and NoOp.
type Action interface {
	action()
}

type ShowAndFocusMainWindow struct{}

type TerminateProcess struct {
	Code int
}

type NoOp struct{}

func (ShowAndFocusMainWindow) action() {}
func (TerminateProcess) action()       {}
func (NoOp) action()                   {}

// OnMenuEvent maps a menu event id to an action. Unknown ids map to NoOp.
func OnMenuEvent(id string) Action {
	switch id {
	case IDShow:
		return ShowAndFocusMainWindow{}
	case IDQuit:
		return TerminateProcess{Code: 0}
	default:
		return NoOp{}
	}
}
