package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/transitlab/netlint/pkg/report"
	"github.com/transitlab/netlint/pkg/validate"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Finding - Unified Row Model
// =============================================================================

// finding is one row in the browser: either a validation issue or a
// topology observation, flattened to a common shape.
type finding struct {
	Severity string // "error", "warning", "info"
	Kind     string // check name or topology category
	Ref      string // entity id
	Message  string
}

// flattenReport converts a report into browsable findings: validation
// issues first, then topology observations.
func flattenReport(rep *report.Report) []finding {
	var out []finding

	if rep.Validation != nil {
		for _, issue := range rep.Validation.Issues {
			out = append(out, finding{
				Severity: string(issue.Severity),
				Kind:     string(issue.Check),
				Ref:      issue.Ref,
				Message:  issue.Message,
			})
		}
	}

	topo := rep.Topology
	if topo == nil {
		return out
	}
	for _, id := range topo.DeadEnds {
		out = append(out, finding{Severity: "warning", Kind: "DEAD_END", Ref: id,
			Message: "node only reachable, never left after pruning"})
	}
	for _, id := range topo.Springs {
		out = append(out, finding{Severity: "warning", Kind: "SPRING", Ref: id,
			Message: "node only left, never reached after pruning"})
	}
	for _, id := range topo.Isolates {
		out = append(out, finding{Severity: "warning", Kind: "ISOLATE", Ref: id,
			Message: "node disconnected after pruning"})
	}
	for _, grp := range topo.Duplicates {
		out = append(out, finding{Severity: "warning", Kind: "DUPLICATE", Ref: strings.Join(grp.SectionIDs, ","),
			Message: fmt.Sprintf("parallel sections %s to %s", grp.Upstream, grp.Downstream)})
	}
	if topo.MaxCentralityNode != "" {
		out = append(out, finding{Severity: "info", Kind: "CENTRALITY", Ref: topo.MaxCentralityNode,
			Message: fmt.Sprintf("highest centrality, %d incident sections", topo.MaxCentralityDegree)})
	}
	return out
}

// =============================================================================
// FindingsModel - Interactive findings browser
// =============================================================================

// FindingsModel is the bubbletea model for browsing analysis findings.
type FindingsModel struct {
	Findings []finding
	Cursor   int
	Height   int
	Offset   int
	filter   string // "", "error", "warning"
}

// NewFindingsModel creates a findings browser over a report.
func NewFindingsModel(rep *report.Report) FindingsModel {
	return FindingsModel{
		Findings: flattenReport(rep),
		Height:   15,
	}
}

func (m FindingsModel) Init() tea.Cmd {
	return nil
}

func (m FindingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.visible())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "e":
			m.filter = toggleFilter(m.filter, "error")
			m.Cursor, m.Offset = 0, 0
		case "w":
			m.filter = toggleFilter(m.filter, "warning")
			m.Cursor, m.Offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func toggleFilter(current, want string) string {
	if current == want {
		return ""
	}
	return want
}

// visible returns the findings passing the active severity filter.
func (m FindingsModel) visible() []finding {
	if m.filter == "" {
		return m.Findings
	}
	var out []finding
	for _, f := range m.Findings {
		if f.Severity == m.filter {
			out = append(out, f)
		}
	}
	return out
}

func (m FindingsModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Network Findings"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  e errors  w warnings  q quit"))
	b.WriteString("\n\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(StyleSuccess.Render("No findings"))
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(visible) {
		end = len(visible)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		f := visible[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, f.Severity, f.Kind, f.Ref, f.Message})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Severity", "Check", "Ref", "Detail").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.Offset + row
			if actualIdx >= len(visible) {
				return lipgloss.NewStyle()
			}
			f := visible[actualIdx]

			base := lipgloss.NewStyle()
			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			switch f.Severity {
			case string(validate.SeverityError):
				return base.Foreground(colorRed)
			case string(validate.SeverityWarning):
				return base.Foreground(colorYellow)
			}
			return base.Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(visible))))

	return b.String()
}

// =============================================================================
// Browse Command
// =============================================================================

// browseCommand creates the browse command: an interactive findings view.
func (c *CLI) browseCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse analysis findings interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, _, err := c.buildReport(cmd, args[0], noCache)
			if err != nil {
				return err
			}

			model := NewFindingsModel(rep)
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "analyze even if a cached report exists")
	return cmd
}
