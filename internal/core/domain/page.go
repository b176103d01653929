package domain

// PostPage is the view of one document handed to page templates.
type PostPage struct {
	Document  Document
	Tags      []string
	Permalink string
	Excerpt   string
	Content   Markup
}

// TreeCopy reports a copied directory tree.
type TreeCopy struct {
	// Files lists every copied path relative to the destination, slash separated.
	Files []string
	// Written counts the files whose content changed on disk.
	Written int
}

// TagSummary is one entry of the all-tags page.
type TagSummary struct {
	Name  string
	URL   string
	Count int
}
