package listview

// SortKey identifies the row field used for ordering
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByCategory SortKey = "category"
	SortByPrice    SortKey = "price"
	SortByCreated  SortKey = "createdAt"
)

// SortDirection is the ordering direction for the active sort key
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// DefaultPageSize matches the paginator default of the admin screens
const DefaultPageSize = 10

// ViewState holds one screen's transient filter/sort/pagination selection.
// It is owned by a single controller, initialized to defaults on
// construction and discarded with the controller; nothing is persisted.
type ViewState struct {
	// FilterText is matched case-insensitively as a substring against the
	// row name and, for products, the resolved category name.
	FilterText string

	// CategoryID, when set, restricts product rows to an exact categoryId
	// match and replaces the free-text predicate entirely.
	CategoryID string

	SortKey       SortKey
	SortDirection SortDirection
	PageNumber    int
	PageSize      int
}

// NewViewState returns the per-screen defaults
func NewViewState() ViewState {
	return ViewState{
		SortKey:       SortByName,
		SortDirection: Ascending,
		PageNumber:    1,
		PageSize:      DefaultPageSize,
	}
}
