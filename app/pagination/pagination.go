package pagination

import "strconv"

// DefaultPerPage is the fixed page size used by every listing.
const DefaultPerPage = 10

// Page describes one page of a paginated listing. A listing with no items
// still has a single, empty page 1.
type Page struct {
	Number     int
	PerPage    int
	TotalItems int
	TotalPages int
}

// New builds a Page for the given totals, clamping an out-of-range page
// selector: anything below 1 becomes page 1, anything beyond the last page
// becomes the last page.
func New(totalItems, perPage, number int) Page {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if totalItems < 0 {
		totalItems = 0
	}
	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	return Page{
		Number:     number,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// ParseNumber interprets a raw page selector from a query string.
// Empty, non-numeric or non-positive values select page 1.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Offset returns the item offset of the first item on the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) NextPage() int {
	return p.Number + 1
}

func (p Page) PrevPage() int {
	return p.Number - 1
}
