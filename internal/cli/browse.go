package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/carga/internal/app"
	"github.com/alexanderramin/carga/internal/cli/formatter"
	"github.com/alexanderramin/carga/internal/domain"
	"github.com/alexanderramin/carga/internal/workload"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type browserKeys struct {
	Up    key.Binding
	Down  key.Binding
	Focus key.Binding
	Quit  key.Binding
}

func (k browserKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Focus, k.Quit}
}

func defaultBrowserKeys() browserKeys {
	return browserKeys{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Focus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "buckets/detail")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var browserColumns = []table.Column{
	{Title: "DEPT", Width: 8},
	{Title: "LEVEL", Width: 20},
	{Title: "TYPE", Width: 11},
	{Title: "CLASS", Width: 9},
	{Title: "HOURS", Width: 8},
	{Title: "PER", Width: 8},
	{Title: "REQ HOURS", Width: 10},
	{Title: "REQ PROFS", Width: 10},
}

const (
	defaultBrowserWidth  = 100
	defaultBrowserHeight = 10
	browserChromeLines   = 7
)

// statsBrowser lists buckets in a table and shows the section-professor
// contributions of the selected bucket in a scrollable pane.
type statsBrowser struct {
	resp   *app.StatsResponse
	table  table.Model
	detail viewport.Model
	help   help.Model
	keys   browserKeys

	detailFocused bool
	selected      int
}

func newStatsBrowser(resp *app.StatsResponse) *statsBrowser {
	rows := make([]table.Row, 0, len(resp.Buckets))
	for _, m := range resp.Buckets {
		profs := formatter.Decimal(m.Professors)
		if m.Key.ProfessorType.IsCatchAll() {
			profs = "--"
		}
		rows = append(rows, table.Row{
			domain.DepartmentForDependency(m.Key.Dependency),
			string(m.Key.Level),
			string(m.Key.ProfessorType),
			string(m.Key.Class),
			formatter.Decimal(m.TotalHours),
			formatter.Decimal(m.TotalPER),
			formatter.Decimal(m.Hours),
			profs,
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true).
		Foreground(formatter.ColorHeader).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(formatter.ColorFg).
		Background(formatter.ColorHeader).
		Bold(false)

	t := table.New(
		table.WithColumns(browserColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeightFor(len(rows), defaultBrowserHeight*2)),
		table.WithStyles(styles),
	)

	b := &statsBrowser{
		resp:   resp,
		table:  t,
		detail: viewport.New(defaultBrowserWidth, defaultBrowserHeight),
		help:   help.New(),
		keys:   defaultBrowserKeys(),
	}
	b.refreshDetail()
	return b
}

func (b *statsBrowser) Init() tea.Cmd { return nil }

func (b *statsBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keys.Focus):
			b.detailFocused = !b.detailFocused
			if b.detailFocused {
				b.table.Blur()
			} else {
				b.table.Focus()
			}
			return b, nil
		}
	}

	if len(b.resp.Buckets) == 0 {
		return b, nil
	}

	var cmd tea.Cmd
	if b.detailFocused {
		b.detail, cmd = b.detail.Update(msg)
		return b, cmd
	}
	b.table, cmd = b.table.Update(msg)
	if b.table.Cursor() != b.selected {
		b.selected = b.table.Cursor()
		b.refreshDetail()
	}
	return b, cmd
}

func (b *statsBrowser) View() string {
	var s strings.Builder
	s.WriteString(formatter.Header("Staffing buckets") + "\n")

	if len(b.resp.Buckets) == 0 {
		s.WriteString(formatter.Dim("No workload matches the filters.") + "\n\n")
		s.WriteString(b.help.ShortHelpView([]key.Binding{b.keys.Quit}))
		return s.String()
	}

	s.WriteString(b.table.View() + "\n\n")
	s.WriteString(b.detailTitle() + "\n")
	s.WriteString(b.detail.View() + "\n")
	s.WriteString(b.help.ShortHelpView(b.keys.ShortHelp()))
	return s.String()
}

func (b *statsBrowser) resize(width, height int) {
	b.help.Width = width
	b.table.SetWidth(width)
	th := tableHeightFor(len(b.resp.Buckets), height/2)
	b.table.SetHeight(th)

	b.detail.Width = width
	b.detail.Height = height - th - browserChromeLines
	if b.detail.Height < 3 {
		b.detail.Height = 3
	}
}

// tableHeightFor fits the table to its rows plus header, within limit.
func tableHeightFor(rows, limit int) int {
	h := rows + 1
	if h > limit {
		h = limit
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (b *statsBrowser) selectedMetrics() (workload.BucketMetrics, bool) {
	if b.selected < 0 || b.selected >= len(b.resp.Buckets) {
		return workload.BucketMetrics{}, false
	}
	return b.resp.Buckets[b.selected], true
}

func (b *statsBrowser) detailTitle() string {
	m, ok := b.selectedMetrics()
	if !ok {
		return ""
	}
	focus := ""
	if b.detailFocused {
		focus = formatter.StyleHeader.Render(" ◀")
	}
	return formatter.Bold(fmt.Sprintf("%s · %s · %s · %s",
		m.Key.Dependency, m.Key.Level, m.Key.ProfessorType, m.Key.Class)) + focus
}

func (b *statsBrowser) refreshDetail() {
	b.detail.SetContent(b.detailContent())
	b.detail.GotoTop()
}

func (b *statsBrowser) detailContent() string {
	m, ok := b.selectedMetrics()
	if !ok {
		return ""
	}

	var s strings.Builder
	size := formatter.Decimal(m.StandardSize)
	if m.SizeFallback {
		size += " (fallback)"
	}
	s.WriteString(fmt.Sprintf("%d sections · %d professors · avg %s h · standard size %s · %s standard sections\n\n",
		m.SectionCount, m.ProfessorCount, formatter.Decimal(m.AverageHours), size, formatter.Decimal(m.StandardSections)))

	var bucket *workload.Bucket
	if b.resp.Aggregation != nil {
		bucket = b.resp.Aggregation.Buckets[m.Key]
	}
	if bucket == nil || len(bucket.Leaves) == 0 {
		s.WriteString(formatter.Dim("No contributions recorded."))
		return s.String()
	}

	rows := make([][]string, 0, len(bucket.Leaves))
	for _, lk := range bucket.SortedLeaves() {
		c := bucket.Leaves[lk]
		rows = append(rows, []string{
			lk.SectionNRC,
			formatter.ShortID(lk.ProfessorID),
			formatter.Decimal(c.Hours),
			formatter.Decimal(c.PER),
		})
	}
	s.WriteString(formatter.RenderTableRight([]string{"SECTION", "PROFESSOR", "HOURS", "PER"}, rows, 2, 3))
	return s.String()
}
