package boilerplate

import (
	"errors"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultArchiveName is the temporary file the archive is downloaded to.
const DefaultArchiveName = "boilerplate.zip"

// Failure classes. Errors returned by Materialize wrap exactly one of them.
var (
	ErrDownload    = errors.New("retrieving the boilerplate archive failed")
	ErrOpenArchive = errors.New("locating the boilerplate archive failed")
	ErrExtract     = errors.New("unpacking the boilerplate archive failed")
	ErrRename      = errors.New("setting up the add-on directory failed")
)

// Source describes the remote archive new add-ons are seeded from.
type Source struct {
	// URL serves a zip archive.
	URL string
	// RootFolder is the single top-level folder inside the archive.
	RootFolder string
	// ArchiveName is the temporary file name used in the destination root.
	ArchiveName string
	// Timeout bounds the download; zero means no timeout.
	Timeout time.Duration
}

func (s Source) archiveName() string {
	if s.ArchiveName == "" {
		return DefaultArchiveName
	}
	return s.ArchiveName
}

// Unpacker fetches and unpacks boilerplate archives.
type Unpacker struct {
	httpClient *http.Client
	logger     hclog.Logger
	userAgent  string
}

// Option configures an Unpacker.
type Option func(*Unpacker)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(u *Unpacker) {
		u.httpClient = c
	}
}

// WithLogger sets the debug logger.
func WithLogger(l hclog.Logger) Option {
	return func(u *Unpacker) {
		u.logger = l
	}
}

// WithUserAgent sets the User-Agent header sent with the download.
func WithUserAgent(ua string) Option {
	return func(u *Unpacker) {
		u.userAgent = ua
	}
}

// New creates an Unpacker with the given options.
func New(opts ...Option) *Unpacker {
	u := &Unpacker{
		httpClient: http.DefaultClient,
		logger:     hclog.NewNullLogger(),
		userAgent:  "create-local-addon",
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
