package entity

// CatalogItem is the subset of a Google Books volume the frontend renders.
// The JSON shape mirrors the upstream response so search results can be
// passed through to the client unchanged.
type CatalogItem struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

type VolumeInfo struct {
	Title         string     `json:"title"`
	Authors       []string   `json:"authors,omitempty"`
	Description   string     `json:"description,omitempty"`
	PublishedDate string     `json:"publishedDate,omitempty"`
	ImageLinks    ImageLinks `json:"imageLinks"`
}

type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty"`
}
