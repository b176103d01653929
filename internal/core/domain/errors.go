package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidKey is returned when a document is stored under the zero key.
	ErrInvalidKey = zerr.New("invalid document key")

	// ErrDocumentNotFound is returned when no document has been set at a key.
	ErrDocumentNotFound = zerr.New("document not found")

	// ErrParseFailed is returned when a source document cannot be parsed.
	ErrParseFailed = zerr.New("failed to parse document")

	// ErrMissingFrontmatter is returned when a source document has no frontmatter block.
	ErrMissingFrontmatter = zerr.New("missing frontmatter")

	// ErrUnterminatedFrontmatter is returned when a frontmatter block has no closing delimiter.
	ErrUnterminatedFrontmatter = zerr.New("unterminated frontmatter")

	// ErrMissingDate is returned when frontmatter has no publish date.
	ErrMissingDate = zerr.New("missing date")

	// ErrInvalidDate is returned when a frontmatter date does not match a supported layout.
	ErrInvalidDate = zerr.New("invalid date, expected 'YYYY-MM-DD HH:MM' or RFC 3339")

	// ErrDerivationFailed is returned when a derivation function fails on a stored document.
	ErrDerivationFailed = zerr.New("derivation failed")

	// ErrUnknownDerivation is returned when a derivation name is not registered.
	ErrUnknownDerivation = zerr.New("unknown derivation")

	// ErrDerivationCycle is returned when a derivation depends on itself.
	ErrDerivationCycle = zerr.New("derivation cycle detected")

	// ErrUnexpectedArtifact is returned when a derivation yields a value of the wrong type.
	ErrUnexpectedArtifact = zerr.New("unexpected artifact type")

	// ErrInvalidTag is returned when a category label cannot be used in a URL.
	ErrInvalidTag = zerr.New("invalid tag")

	// ErrFeedBuild is returned when a document lacks a field required by the feed.
	ErrFeedBuild = zerr.New("failed to build feed")

	// ErrMarkupRenderFailed is returned when Markdown cannot be rendered.
	ErrMarkupRenderFailed = zerr.New("failed to render markup")

	// ErrTemplateRenderFailed is returned when a page template fails to execute.
	ErrTemplateRenderFailed = zerr.New("failed to render page")

	// ErrFeedEncodeFailed is returned when the feed cannot be encoded.
	ErrFeedEncodeFailed = zerr.New("failed to encode feed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigInvalid is returned when a config value is out of range.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrContentDiscoveryFailed is returned when the content root cannot be walked.
	ErrContentDiscoveryFailed = zerr.New("failed to discover content")

	// ErrFileReadFailed is returned when a file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileWriteFailed is returned when an output file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrDirCreateFailed is returned when an output directory cannot be created.
	ErrDirCreateFailed = zerr.New("failed to create directory")

	// ErrOutputPathOutsideRoot is returned when an output path escapes the public directory.
	ErrOutputPathOutsideRoot = zerr.New("output path is outside public directory")

	// ErrOutputCollision is returned when a generated page and a resource share an output path.
	ErrOutputCollision = zerr.New("generated page collides with a resource")

	// ErrFailedToCleanOutput is returned when the public directory cannot be removed.
	ErrFailedToCleanOutput = zerr.New("failed to clean output directory")

	// ErrBuildFailed is returned when a build does not complete.
	ErrBuildFailed = zerr.New("build failed")
)

// Annotate attaches metadata to err while keeping err itself in the chain,
// so errors.Is still matches when err is a sentinel.
func Annotate(err error, key string, value any) error {
	return zerr.With(zerr.Wrap(err, ""), key, value)
}
