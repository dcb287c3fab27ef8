package model

// Category is a row of the categories lookup table.
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Type string `db:"type" json:"type"`
}

// Content sources whose free-text category column is matched against categories.name.
const (
	SourceArticles   = "articles"
	SourcePodcasts   = "podcasts"
	SourceVideos     = "videos"
	SourceBusinesses = "businesses"
)

// CategorySources lists the content sources in response order.
var CategorySources = []string{SourceArticles, SourcePodcasts, SourceVideos, SourceBusinesses}

// RawCategoryCount is the number of rows in one source carrying one raw category value.
type RawCategoryCount struct {
	Source   string
	Category string
	Count    int64
}

// CategoryUsage is the number of content rows in one source matched to a category name.
type CategoryUsage struct {
	Name   string `json:"name"`
	Count  int64  `json:"count"`
	Source string `json:"source"`
}
