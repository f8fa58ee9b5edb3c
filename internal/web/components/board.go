// ABOUTME: Inputs for the board page component
// ABOUTME: One row per roster session carrying its pre-rendered utilization bar

package components

import "github.com/a-h/templ"

// BoardRow is one session line on the board page. Bar is usually a memoized
// fragment from BarRenderer wrapped with templ.Raw.
type BoardRow struct {
	Name      string
	Occupancy int
	Capacity  int
	Bar       templ.Component
}

func pageClasses(dark bool) string {
	if dark {
		return "bg-gray-900 text-gray-100"
	}
	return "bg-white text-gray-900"
}
