package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/somsu123/taskmaster/internal/activity"
	"github.com/somsu123/taskmaster/internal/storage"
	"github.com/somsu123/taskmaster/pkg/models"
	"github.com/spf13/cobra"
)

// uiKeyMap defines the key bindings of the interactive view.
type uiKeyMap struct {
	Add      key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	Priority key.Binding
	Quit     key.Binding
}

// defaultUIKeyMap is the built-in binding set, vim-style navigation next to
// the arrow keys.
var defaultUIKeyMap = uiKeyMap{
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add task"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle complete"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Priority: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "cycle priority"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Strikethrough(true)

	priorityHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	priorityMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	priorityLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))

	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// uiModel is the bubbletea model behind the ui command. It shows every task
// (completed ones grayed out) and funnels all mutations through the store.
type uiModel struct {
	store storage.TaskStore
	keys  uiKeyMap

	input    textinput.Model
	priority models.Priority
	adding   bool

	tasks  []models.Task
	cursor int

	confirmDelete int    // id awaiting a y/n answer; 0 when none
	status        string // transient message under the table
	err           error

	width  int
	height int
}

func newUIModel(store storage.TaskStore, defaultPriority models.Priority) uiModel {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200
	ti.Width = 40

	return uiModel{
		store:    store,
		keys:     defaultUIKeyMap,
		input:    ti,
		priority: defaultPriority,
		tasks:    store.List(true),
	}
}

func (m uiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateList(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// updateAdding handles keys while the add field is focused.
func (m uiModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		m.adding = false
		m.input.Blur()
		m.input.SetValue("")
		m.status = ""
		return m, nil

	case msg.Type == tea.KeyEnter:
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.status = "Task title cannot be empty!"
			return m, nil
		}
		task, err := m.store.Add(title, m.priority)
		if err != nil {
			m.err = err
			return m, nil
		}
		recordActivity(activity.TypeCreated, task)
		m.adding = false
		m.input.Blur()
		m.input.SetValue("")
		m.err = nil
		m.status = fmt.Sprintf("Added task: %s (Priority: %s)", task.Title, task.Priority)
		return m.refresh()

	case key.Matches(msg, m.keys.Priority):
		m.priority = nextPriority(m.priority)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateList handles keys while the task table has focus.
func (m uiModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending delete only listens for its y/n answer.
	if m.confirmDelete != 0 {
		id := m.confirmDelete
		m.confirmDelete = 0
		if msg.String() != "y" {
			m.status = ""
			return m, nil
		}
		task, found := findTaskIn(m.tasks, id)
		ok, err := m.store.Delete(id)
		if err != nil {
			m.err = err
			return m, nil
		}
		if ok && found {
			recordActivity(activity.TypeDeleted, task)
		}
		m.status = fmt.Sprintf("Task %d deleted!", id)
		return m.refresh()
	}

	switch {
	case key.Matches(msg, m.keys.Quit), msg.Type == tea.KeyEsc:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.status = ""
		m.err = nil
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Priority):
		m.priority = nextPriority(m.priority)
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if len(m.tasks) == 0 {
			return m, nil
		}
		id := m.tasks[m.cursor].ID
		// Toggle flips the first task carrying this id; with count-derived
		// ids that may not be the cursor row, so record the first match.
		task, _ := findTaskIn(m.tasks, id)
		ok, err := m.store.Toggle(id)
		if err != nil {
			m.err = err
			return m, nil
		}
		if ok {
			if task.Completed {
				recordActivity(activity.TypeReopened, task)
			} else {
				recordActivity(activity.TypeCompleted, task)
			}
		}
		m.err = nil
		m.status = ""
		return m.refresh()

	case key.Matches(msg, m.keys.Delete):
		if len(m.tasks) == 0 {
			return m, nil
		}
		m.confirmDelete = m.tasks[m.cursor].ID
		m.status = fmt.Sprintf("Delete task %d? (y/n)", m.confirmDelete)
		return m, nil
	}

	return m, nil
}

// refresh re-reads the store and clamps the cursor to the new list.
func (m uiModel) refresh() (tea.Model, tea.Cmd) {
	m.tasks = m.store.List(true)
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m, nil
}

func (m uiModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(" TaskMaster "))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Add New Task"))
	b.WriteString("\n")
	prio := priorityStyle(m.priority).Render(capitalize(string(m.priority)))
	if m.adding {
		b.WriteString(fmt.Sprintf("Task: %s  Priority: %s\n\n", m.input.View(), prio))
	} else {
		b.WriteString(fmt.Sprintf("Task: %s  Priority: %s\n\n", helpStyle.Render("press a to add"), prio))
	}

	b.WriteString(labelStyle.Render("Tasks"))
	b.WriteString("\n")
	if len(m.tasks) == 0 {
		b.WriteString(helpStyle.Render("  No tasks found."))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("  %-4s %-40s %-10s %s\n", "ID", "Task", "Priority", "Status"))
		for i, task := range m.tasks {
			b.WriteString(m.renderTaskRow(i, task))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %s", m.err)))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	help := "a: add | space: toggle | d: delete | tab: priority | q: quit"
	if m.adding {
		help = "enter: save | esc: cancel | tab: priority"
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// renderTaskRow renders one table row: completed tasks gray and struck
// through, pending tasks with their priority colored.
func (m uiModel) renderTaskRow(i int, task models.Task) string {
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}

	status := " "
	if task.Completed {
		status = "✓"
	}
	title := truncate(task.Title, 40)
	prio := capitalize(string(task.Priority))

	if task.Completed {
		return cursor + completedStyle.Render(
			fmt.Sprintf("%-4d %-40s %-10s [%s]", task.ID, title, prio, status))
	}
	return cursor + fmt.Sprintf("%-4d %-40s %s [%s]",
		task.ID, title,
		priorityStyle(task.Priority).Render(fmt.Sprintf("%-10s", prio)),
		status)
}

func priorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return priorityHighStyle
	case models.PriorityLow:
		return priorityLowStyle
	default:
		return priorityMediumStyle
	}
}

// nextPriority cycles low -> medium -> high -> low.
func nextPriority(p models.Priority) models.Priority {
	for i, cur := range models.Priorities {
		if cur == p {
			return models.Priorities[(i+1)%len(models.Priorities)]
		}
	}
	return models.PriorityMedium
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func findTaskIn(tasks []models.Task, id int) (models.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Interactive full-screen task view",
	Long: `Launch a full-screen terminal view over the task list.

Add tasks with a, move with j/k, toggle completion with space, delete with
d (answer y to confirm), and cycle the priority used for new tasks with
tab. Completed tasks stay visible, grayed out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("task store not initialized")
		}
		p := tea.NewProgram(newUIModel(Store, DefaultPriority), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
