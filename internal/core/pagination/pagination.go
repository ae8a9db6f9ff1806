// Package pagination computes offset page windows and RFC-5988 link header
// values for list endpoints. Everything here is pure: the current request's
// base URL is the only outside input.
package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params is a normalized page request.
type Params struct {
	Page  int
	Limit int
}

// Parse coerces raw query values into Params. Absent or non-numeric values
// fall back to the defaults, out-of-range values are clamped. maxLimit <= 0
// means no cap.
func Parse(page, limit string, maxLimit int) Params {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}
	if n, err := strconv.Atoi(page); err == nil && n >= 1 {
		p.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil && n >= 1 {
		p.Limit = n
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Window is the half-open item range [Start, End) selected by a page request.
type Window struct {
	Start      int
	End        int
	TotalPages int
}

// WindowFor computes the item window and page count for total items.
func (p Params) WindowFor(total int64) Window {
	return Window{
		Start:      (p.Page - 1) * p.Limit,
		End:        p.Page * p.Limit,
		TotalPages: int((total + int64(p.Limit) - 1) / int64(p.Limit)),
	}
}

// Links builds the applicable prev/first/next/last link values for the page.
// baseURL is the request URL without query parameters. The prev/first pair
// appears only when the window starts past item zero, the next/last pair
// only when items remain past the window's end.
func (p Params) Links(baseURL string, total int64) []string {
	w := p.WindowFor(total)
	var links []string
	if w.Start > 0 {
		links = append(links,
			link(baseURL, p.Page-1, p.Limit, "prev"),
			link(baseURL, 1, p.Limit, "first"),
		)
	}
	if int64(w.End) < total {
		links = append(links,
			link(baseURL, p.Page+1, p.Limit, "next"),
			link(baseURL, w.TotalPages, p.Limit, "last"),
		)
	}
	return links
}

// Header renders the link values as a single Link header, or "" when the
// page has no navigation.
func (p Params) Header(baseURL string, total int64) string {
	return strings.Join(p.Links(baseURL, total), ", ")
}

func link(baseURL string, page, limit int, rel string) string {
	return fmt.Sprintf("<%s?page=%d&limit=%d>; rel=%q", baseURL, page, limit, rel)
}
