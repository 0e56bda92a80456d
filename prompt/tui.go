package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/animeon-cli/animeon/color"
	"github.com/animeon-cli/animeon/log"
	"github.com/animeon-cli/animeon/style"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

// Builtin is a dependency-free picker rendered in-process.
// It filters with "/", toggles with space in multi mode and confirms with enter.
type Builtin struct{}

func (b *Builtin) Pick(options []string, opts Options) mo.Option[string] {
	selected, ok := b.run(options, opts, false).Get()
	if !ok || len(selected) == 0 {
		return mo.None[string]()
	}

	return mo.Some(selected[0])
}

func (b *Builtin) PickMany(options []string, opts Options) mo.Option[[]string] {
	return b.run(options, opts, true)
}

func (b *Builtin) run(options []string, opts Options, multi bool) mo.Option[[]string] {
	if len(options) == 0 {
		log.Info("No options available for selection")
		return mo.None[[]string]()
	}

	items := make([]list.Item, len(options))
	for i, option := range options {
		items[i] = pickerItem(option)
	}

	model := newPickerModel(items, opts.Title, multi)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		log.Errorf("builtin picker failed: %s", err)
		return mo.None[[]string]()
	}

	result := final.(pickerModel)
	if !result.accepted {
		log.Info("Selection cancelled by user")
		return mo.None[[]string]()
	}

	if result.multi {
		// Preserve the original option order regardless of toggle order.
		var selected []string
		for _, option := range options {
			if _, ok := result.chosen[option]; ok {
				selected = append(selected, option)
			}
		}
		if len(selected) == 0 {
			return mo.None[[]string]()
		}
		return mo.Some(selected)
	}

	item, ok := result.list.SelectedItem().(pickerItem)
	if !ok {
		return mo.None[[]string]()
	}

	return mo.Some([]string{string(item)})
}

type pickerItem string

func (i pickerItem) FilterValue() string {
	return string(i)
}

var (
	cursorStyle   = style.New().Foreground(style.AccentColor).Bold(true)
	selectedStyle = style.New().Foreground(style.SuccessColor)
)

type pickerDelegate struct {
	chosen map[string]struct{}
}

func (d pickerDelegate) Height() int {
	return 1
}

func (d pickerDelegate) Spacing() int {
	return 0
}

func (d pickerDelegate) Update(tea.Msg, *list.Model) tea.Cmd {
	return nil
}

func (d pickerDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	label, ok := item.(pickerItem)
	if !ok {
		return
	}

	cursor := "  "
	render := style.Fg(color.White)
	if index == m.Index() {
		cursor = cursorStyle.Render("❯ ")
		render = func(s string) string { return cursorStyle.Render(s) }
	}

	marker := ""
	if _, toggled := d.chosen[string(label)]; toggled {
		marker = selectedStyle.Render("◆ ")
	}

	fmt.Fprint(w, cursor+marker+render(string(label)))
}

type pickerModel struct {
	list     list.Model
	multi    bool
	chosen   map[string]struct{}
	accepted bool
}

func newPickerModel(items []list.Item, title string, multi bool) pickerModel {
	chosen := make(map[string]struct{})

	l := list.New(items, pickerDelegate{chosen: chosen}, 0, 0)
	l.Title = strings.TrimSuffix(title, " ")
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = cursorStyle

	return pickerModel{list: l, multi: multi, chosen: chosen}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "enter":
			if m.multi && len(m.chosen) == 0 {
				if item, ok := m.list.SelectedItem().(pickerItem); ok {
					m.chosen[string(item)] = struct{}{}
				}
			}
			m.accepted = true
			return m, tea.Quit
		case " ":
			if !m.multi {
				break
			}
			if item, ok := m.list.SelectedItem().(pickerItem); ok {
				if _, toggled := m.chosen[string(item)]; toggled {
					delete(m.chosen, string(item))
				} else {
					m.chosen[string(item)] = struct{}{}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}
