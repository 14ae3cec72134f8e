package menu

// DefaultPageSize is the number of item buttons per page. With one
// navigation button appended this stays under the platform's 3-button limit.
const DefaultPageSize = 2

// Item is one selectable entry of a paginated list.
type Item struct {
	ID   string
	Name string
}

// Page is one bounded slice of an ordered item list, computed per request and
// discarded after rendering.
type Page struct {
	Items      []Item
	Index      int
	Size       int
	Total      int
	TotalPages int
	HasMore    bool
}

// Paginate slices items into the page with the given index. An out-of-range
// index yields an empty page with HasMore false, it is not an error.
func Paginate(items []Item, index, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if index < 0 {
		index = 0
	}

	start := index * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page{
		Items:      items[start:end],
		Index:      index,
		Size:       size,
		Total:      len(items),
		TotalPages: (len(items) + size - 1) / size,
		HasMore:    index*size+size < len(items),
	}
}
