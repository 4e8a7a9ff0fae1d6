package ui

import (
	"strconv"
	"strings"

	"kickview/internal/format"
	"kickview/internal/kickstarter"
	"kickview/internal/pager"
	"kickview/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table columns, in display order.
var columnHeaders = []string{"S.No.", "Title", "Percentage Funded", "Amount Pledged"}

const (
	colTitle = 1
	// maxTitleWidth bounds the title column so the table fits 80 columns.
	maxTitleWidth = 32
)

// ProjectsView shows one page of projects and the pagination controls.
type ProjectsView struct {
	Projects []kickstarter.Project
	pager    pager.Pager
	format   *format.Formatter
}

// Ensure ProjectsView implements View.
var _ View = (*ProjectsView)(nil)

// NewProjectsView creates an empty view on page 1 of 1.
func NewProjectsView(f *format.Formatter) *ProjectsView {
	if f == nil {
		f = format.Default()
	}
	return &ProjectsView{
		Projects: []kickstarter.Project{},
		pager:    pager.New(),
		format:   f,
	}
}

// SetProjects stores a fetched list and recomputes the page count.
func (v *ProjectsView) SetProjects(projects []kickstarter.Project) {
	if projects == nil {
		projects = []kickstarter.Project{}
	}
	v.Projects = projects
	v.pager.SetItems(len(projects))
}

// Clear drops all projects and resets to page 1 of 1.
func (v *ProjectsView) Clear() {
	v.Projects = []kickstarter.Project{}
	v.pager = pager.New()
}

// Page returns the current 1-based page, always within [1, TotalPages].
func (v *ProjectsView) Page() int { return v.pager.Page() }

// TotalPages returns the page count, at least 1.
func (v *ProjectsView) TotalPages() int { return v.pager.Total() }

// SetPage moves to page, clamped to the available pages.
func (v *ProjectsView) SetPage(page int) { v.pager.SetPage(page) }

// CanPrev reports whether Previous is enabled.
func (v *ProjectsView) CanPrev() bool { return !v.pager.OnFirst() }

// CanNext reports whether Next is enabled.
func (v *ProjectsView) CanNext() bool { return !v.pager.OnLast() }

// Prev moves back one page. Returns false (and does nothing) on page 1.
func (v *ProjectsView) Prev() bool { return v.pager.Prev() }

// Next moves forward one page. Returns false (and does nothing) on the last page.
func (v *ProjectsView) Next() bool { return v.pager.Next() }

// First jumps to page 1.
func (v *ProjectsView) First() bool { return v.pager.First() }

// Last jumps to the last page.
func (v *ProjectsView) Last() bool { return v.pager.Last() }

// Visible returns the projects on the current page.
func (v *ProjectsView) Visible() []kickstarter.Project {
	return pager.Window(&v.pager, v.Projects)
}

// Rows returns exactly pager.PageSize table rows for the current page.
// A partial last page is padded with blank rows.
func (v *ProjectsView) Rows() [][]string {
	visible := v.Visible()
	rows := make([][]string, 0, pager.PageSize)
	for _, p := range visible {
		rows = append(rows, []string{
			strconv.Itoa(p.SerialNo),
			textutil.Truncate(p.Title, maxTitleWidth),
			v.format.Percent(p.PercentageFunded),
			v.format.Currency(p.AmountPledged, p.Currency),
		})
	}
	for len(rows) < pager.PageSize {
		rows = append(rows, make([]string, len(columnHeaders)))
	}
	return rows
}

// Init implements View.
func (v *ProjectsView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ProjectsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg.(type) {
	case PrevPageMsg:
		v.Prev()
	case NextPageMsg:
		v.Next()
	case FirstPageMsg:
		v.First()
	case LastPageMsg:
		v.Last()
	}
	return v, nil
}

// View implements View.
func (v *ProjectsView) View() string {
	var b strings.Builder
	b.WriteString(v.renderTable())
	b.WriteString("\n")
	b.WriteString(v.renderPagination())
	return b.String()
}

// PlainView renders the table and page line without colors, for
// non-interactive output.
func (v *ProjectsView) PlainView() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(columnHeaders...).
		Rows(v.Rows()...)
	return t.String() + "\n" + v.pager.String()
}

func (v *ProjectsView) renderTable() string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Styles.TableBorder).
		Headers(columnHeaders...).
		Rows(v.Rows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return Styles.TableHeader
			case col == colTitle:
				return Styles.TableCellLeft
			default:
				return Styles.TableCell
			}
		})
	return t.String()
}

func (v *ProjectsView) renderPagination() string {
	prev := Styles.ButtonDisabled.Render("◀ Previous")
	if v.CanPrev() {
		prev = Styles.Button.Render("◀ Previous")
	}
	next := Styles.ButtonDisabled.Render("Next ▶")
	if v.CanNext() {
		next = Styles.Button.Render("Next ▶")
	}
	info := Styles.PageInfo.Render(v.pager.String())
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, info, next)
}
