// Package listing extracts existing downloads from the repository's
// downloads page.
package listing

import "sort"

// Asset is a download already present on the remote listing page.
type Asset struct {
	ID        int64  `json:"id"`
	FileName  string `json:"fileName"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	DeleteURL string `json:"deleteUrl"`
}

// Listing is the result of parsing one listing page.
type Listing struct {
	// AuthToken authorizes state-changing requests for every asset on the page.
	AuthToken string
	assets    map[string]Asset
}

// NewListing returns an empty listing carrying authToken.
func NewListing(authToken string) *Listing {
	return &Listing{AuthToken: authToken, assets: map[string]Asset{}}
}

// Add records a, replacing any asset with the same file name.
func (l *Listing) Add(a Asset) {
	l.assets[a.FileName] = a
}

// Lookup returns the asset whose file name equals fileName.
func (l *Listing) Lookup(fileName string) (Asset, bool) {
	a, ok := l.assets[fileName]
	return a, ok
}

// Len returns the number of distinct file names.
func (l *Listing) Len() int {
	return len(l.assets)
}

// Assets returns the assets ordered by file name.
func (l *Listing) Assets() []Asset {
	out := make([]Asset, 0, len(l.assets))
	for _, a := range l.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FileName < out[j].FileName })
	return out
}
