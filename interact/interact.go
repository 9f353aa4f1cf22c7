package interact

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdginn/go-mirror-optics/optics"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type item struct {
	emitter int
	index   int
	ray     *optics.Ray
}

func (i item) Title() string {
	return fmt.Sprintf("emitter %d ray %d", i.emitter, i.index)
}

func (i item) Description() string {
	return fmt.Sprintf("%d reflections, %s, %.1f long", i.ray.Bounces(), i.ray.Termination(), i.ray.PathLength())
}

func (i item) FilterValue() string {
	return i.Title()
}

type model struct {
	list     list.Model
	view     *optics.View
	output   string
	selected *optics.Ray
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if selected, ok := m.list.SelectedItem().(item); ok && selected.ray != m.selected {
		m.selected = selected.ray
		if err := m.view.SavePNG(m.output, selected.ray); err != nil {
			slog.Error("rendering selected ray", "err", err)
		}
	}
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

// Items lists every ray of the scene in emitter order.
func Items(scene *optics.Scene) []list.Item {
	var items []list.Item
	for ei, e := range scene.Emitters {
		for ri, ray := range e.Rays() {
			items = append(items, item{emitter: ei, index: ri, ray: ray})
		}
	}
	return items
}

// Interact browses the traced rays of scene. Every time the selection
// changes the view is rendered to output with the selected ray highlighted.
func Interact(view *optics.View, output string) error {
	m := model{
		list:   list.New(Items(view.Scene), list.NewDefaultDelegate(), 0, 0),
		view:   view,
		output: output,
	}
	m.list.Title = "Traced rays"

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ray browser: %w", err)
	}
	return nil
}
