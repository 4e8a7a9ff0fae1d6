package ui

import (
	"fmt"
	"strconv"
	"testing"

	"kickview/internal/kickstarter"
	"kickview/internal/pager"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testProjects returns n records numbered 0..n-1 titled "Project 1".."Project n".
func testProjects(n int) []kickstarter.Project {
	projects := make([]kickstarter.Project, n)
	for i := range projects {
		projects[i] = kickstarter.Project{
			SerialNo:         i,
			AmountPledged:    15823,
			PercentageFunded: 186,
			Title:            fmt.Sprintf("Project %d", i+1),
			Currency:         "usd",
			Backers:          "219382",
		}
	}
	return projects
}

func serials(projects []kickstarter.Project) []int {
	out := make([]int, len(projects))
	for i, p := range projects {
		out[i] = p.SerialNo
	}
	return out
}

func TestProjectsView_Empty(t *testing.T) {
	v := NewProjectsView(nil)

	assert.Equal(t, 1, v.Page())
	assert.Equal(t, 1, v.TotalPages())
	assert.False(t, v.CanPrev())
	assert.False(t, v.CanNext())
	assert.Empty(t, v.Visible())

	rows := v.Rows()
	require.Len(t, rows, pager.PageSize)
	for _, row := range rows {
		assert.Equal(t, []string{"", "", "", ""}, row)
	}
}

func TestProjectsView_TwoRecords(t *testing.T) {
	v := NewProjectsView(nil)
	v.SetProjects(testProjects(2))

	assert.Equal(t, 1, v.TotalPages())
	assert.False(t, v.CanNext(), "Next is disabled on the only page")
	assert.False(t, v.Next())
	assert.Equal(t, 1, v.Page())

	rows := v.Rows()
	require.Len(t, rows, pager.PageSize)
	assert.Equal(t, []string{"0", "Project 1", "186%", "$15,823"}, rows[0])
	assert.Equal(t, []string{"1", "Project 2", "186%", "$15,823"}, rows[1])
	for _, row := range rows[2:] {
		assert.Equal(t, []string{"", "", "", ""}, row, "padding row")
	}

	out := v.View()
	assert.Contains(t, out, "Project 1")
	assert.Contains(t, out, "Project 2")
	assert.Contains(t, out, "186%")
	assert.Contains(t, out, "$15,823")
	assert.Contains(t, out, "Page 1 of 1")
	assert.Contains(t, out, "S.No.")
	assert.Contains(t, out, "Percentage Funded")
	assert.Contains(t, out, "Amount Pledged")
}

func TestProjectsView_TenRecords(t *testing.T) {
	v := NewProjectsView(nil)
	v.SetProjects(testProjects(10))

	assert.Equal(t, 2, v.TotalPages())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, serials(v.Visible()))
	assert.NotContains(t, v.View(), "Project 6")

	require.True(t, v.Next())
	assert.Equal(t, 2, v.Page())
	assert.Equal(t, []int{5, 6, 7, 8, 9}, serials(v.Visible()))

	out := v.View()
	assert.Contains(t, out, "Project 6")
	assert.NotContains(t, out, "Project 2")
	assert.Contains(t, out, "Page 2 of 2")

	assert.False(t, v.Next(), "Next is inert on the last page")
	assert.Equal(t, 2, v.Page())
}

func TestProjectsView_PrevInertOnFirstPage(t *testing.T) {
	v := NewProjectsView(nil)
	v.SetProjects(testProjects(12))

	assert.False(t, v.CanPrev())
	assert.False(t, v.Prev())
	assert.Equal(t, 1, v.Page())

	v.Next()
	assert.True(t, v.CanPrev())
	assert.True(t, v.Prev())
	assert.Equal(t, 1, v.Page())
}

func TestProjectsView_FirstLast(t *testing.T) {
	v := NewProjectsView(nil)
	v.SetProjects(testProjects(23))

	assert.False(t, v.First(), "already on first page")
	assert.True(t, v.Last())
	assert.Equal(t, 5, v.Page())
	assert.Equal(t, []int{20, 21, 22}, serials(v.Visible()))
	assert.False(t, v.Last(), "already on last page")
	assert.True(t, v.First())
	assert.Equal(t, 1, v.Page())
}

// Every page of every list size shows the expected serial range, five rows,
// and correctly enabled controls.
func TestProjectsView_PagesCoverList(t *testing.T) {
	for n := 0; n <= 23; n++ {
		v := NewProjectsView(nil)
		v.SetProjects(testProjects(n))
		assert.Equal(t, max(1, (n+4)/5), v.TotalPages(), "n=%d", n)

		for p := 1; p <= v.TotalPages(); p++ {
			require.Equal(t, p, v.Page())
			assert.Equal(t, p == 1, !v.CanPrev(), "n=%d p=%d", n, p)
			assert.Equal(t, p == v.TotalPages(), !v.CanNext(), "n=%d p=%d", n, p)

			var want []int
			for s := (p - 1) * 5; s <= p*5-1 && s < n; s++ {
				want = append(want, s)
			}
			got := serials(v.Visible())
			if len(want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, want, got, "n=%d p=%d", n, p)
			}

			rows := v.Rows()
			require.Len(t, rows, pager.PageSize)
			for i, s := range want {
				assert.Equal(t, strconv.Itoa(s), rows[i][0])
			}
			v.Next()
		}
	}
}

func TestProjectsView_SetProjectsKeepsPageInRange(t *testing.T) {
	v := NewProjectsView(nil)
	v.SetProjects(testProjects(16))
	v.SetPage(4)
	require.Equal(t, 4, v.Page())

	v.SetProjects(testProjects(6))
	assert.Equal(t, 2, v.Page())

	v.SetProjects(nil)
	assert.NotNil(t, v.Projects)
	assert.Equal(t, 1, v.TotalPages())
	assert.Equal(t, 1, v.Page())
}

func TestProjectsView_SetPageClamps(t *testing.T) {
	v := NewProjectsView(nil)
	v.SetProjects(testProjects(12))

	v.SetPage(9)
	assert.Equal(t, 3, v.Page())
	assert.Contains(t, v.View(), "Page 3 of 3")
	v.SetPage(0)
	assert.Equal(t, 1, v.Page())
}

func TestProjectsView_Clear(t *testing.T) {
	v := NewProjectsView(nil)
	v.SetProjects(testProjects(12))
	v.Last()

	v.Clear()
	assert.Empty(t, v.Projects)
	assert.Equal(t, 1, v.Page())
	assert.Equal(t, 1, v.TotalPages())
}

func TestProjectsView_UpdateRoutesPageMsgs(t *testing.T) {
	v := NewProjectsView(nil)
	v.SetProjects(testProjects(16))

	v.Update(NextPageMsg{})
	assert.Equal(t, 2, v.Page())
	v.Update(LastPageMsg{})
	assert.Equal(t, 4, v.Page())
	v.Update(PrevPageMsg{})
	assert.Equal(t, 3, v.Page())
	v.Update(FirstPageMsg{})
	assert.Equal(t, 1, v.Page())
}

func TestProjectsView_LongTitleTruncated(t *testing.T) {
	v := NewProjectsView(nil)
	p := testProjects(1)
	p[0].Title = "An extraordinarily long crowdfunding campaign title that keeps going"
	v.SetProjects(p)

	title := v.Rows()[0][colTitle]
	assert.LessOrEqual(t, len([]rune(title)), maxTitleWidth)
	assert.Contains(t, title, "…")
}

func TestProjectsView_PlainView(t *testing.T) {
	v := NewProjectsView(nil)
	v.SetProjects(testProjects(7))
	v.Next()

	out := v.PlainView()
	assert.Contains(t, out, "Project 6")
	assert.Contains(t, out, "Project 7")
	assert.Contains(t, out, "Page 2 of 2")
	assert.NotContains(t, out, "\x1b[", "no ANSI escapes")
}
