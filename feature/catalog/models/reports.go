package models

// ListingItem is one query result row: the record plus the display-ready
// image URI sized for the rendering context.
type ListingItem struct {
	ProductRecord
	Image string `json:"image,omitempty"`
}

// Facets holds the selectable filter options derived from the loaded
// collection. The first entry of each list is the "all" pseudo-option.
type Facets struct {
	Seasons []string `json:"seasons"`
	Genders []string `json:"genders"`
}

// CacheStats reports the catalog cache state.
type CacheStats struct {
	Loaded     bool `json:"loaded"`
	Total      int  `json:"total"`
	Malformed  int  `json:"malformed"`
	Duplicates int  `json:"duplicates"`
}
