// Package pager tracks which page of a record list is on screen. It wraps
// the bubbles paginator with 1-based page numbers and a floor of one page.
package pager

import "github.com/charmbracelet/bubbles/paginator"

// PageSize is the number of records shown per page.
const PageSize = 5

// Pager is the page position for a list of records.
type Pager struct {
	model paginator.Model
}

// New returns a pager on page 1 of 1.
func New() Pager {
	m := paginator.New()
	m.Type = paginator.Arabic
	m.PerPage = PageSize
	m.ArabicFormat = "Page %d of %d"
	m.TotalPages = 1
	return Pager{model: m}
}

// SetItems recomputes the page count for n records and keeps the current
// page in range.
func (p *Pager) SetItems(n int) {
	if n < 1 {
		// SetTotalPages leaves the count untouched for an empty list.
		p.model.TotalPages = 1
	} else {
		p.model.SetTotalPages(n)
	}
	p.SetPage(p.Page())
}

// Page returns the current 1-based page.
func (p Pager) Page() int { return p.model.Page + 1 }

// Total returns the page count.
func (p Pager) Total() int { return p.model.TotalPages }

// SetPage moves to a 1-based page, clamped to [1, Total].
func (p *Pager) SetPage(page int) {
	page = max(1, min(page, p.model.TotalPages))
	p.model.Page = page - 1
}

// OnFirst reports whether the first page is shown.
func (p Pager) OnFirst() bool { return p.model.OnFirstPage() }

// OnLast reports whether the last page is shown.
func (p Pager) OnLast() bool { return p.model.OnLastPage() }

// Prev moves back one page. Returns false on the first page.
func (p *Pager) Prev() bool {
	if p.OnFirst() {
		return false
	}
	p.model.PrevPage()
	return true
}

// Next moves forward one page. Returns false on the last page.
func (p *Pager) Next() bool {
	if p.OnLast() {
		return false
	}
	p.model.NextPage()
	return true
}

// First jumps to page 1. Returns false if already there.
func (p *Pager) First() bool {
	if p.OnFirst() {
		return false
	}
	p.model.Page = 0
	return true
}

// Last jumps to the last page. Returns false if already there.
func (p *Pager) Last() bool {
	if p.OnLast() {
		return false
	}
	p.model.Page = p.model.TotalPages - 1
	return true
}

// String renders "Page X of Y".
func (p Pager) String() string { return p.model.View() }

// Window returns the records on the current page, in original order.
// There is no wraparound.
func Window[T any](p *Pager, list []T) []T {
	start, end := p.model.GetSliceBounds(len(list))
	if start >= end {
		return []T{}
	}
	return list[start:end]
}
