package config

// File represents the structure of the quill.yaml configuration file.
type File struct {
	Site        SiteDTO        `mapstructure:"site"`
	Paths       PathsDTO       `mapstructure:"paths"`
	Index       IndexDTO       `mapstructure:"index"`
	Links       LinksDTO       `mapstructure:"links"`
	Feed        FeedDTO        `mapstructure:"feed"`
	Markup      MarkupDTO      `mapstructure:"markup"`
	Frontmatter FrontmatterDTO `mapstructure:"frontmatter"`
}

// SiteDTO describes the site itself.
type SiteDTO struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Author      string `mapstructure:"author"`
	BaseURL     string `mapstructure:"base_url"`
}

// PathsDTO locates the site directories relative to the config file.
type PathsDTO struct {
	Content   string `mapstructure:"content"`
	Resources string `mapstructure:"resources"`
	Public    string `mapstructure:"public"`
}

// IndexDTO configures the landing page.
type IndexDTO struct {
	Recent   int    `mapstructure:"recent"`
	TieBreak string `mapstructure:"tie_break"`
}

// LinksDTO configures document URLs.
type LinksDTO struct {
	Style  string `mapstructure:"style"`
	Prefix string `mapstructure:"prefix"`
}

// FeedDTO configures the syndication feed.
type FeedDTO struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Limit   int    `mapstructure:"limit"`
}

// MarkupDTO configures Markdown rendering.
type MarkupDTO struct {
	HighlightStyle string `mapstructure:"highlight_style"`
	CacheSize      int    `mapstructure:"cache_size"`
}

// FrontmatterDTO configures metadata decoding.
type FrontmatterDTO struct {
	Timezone string `mapstructure:"timezone"`
}
