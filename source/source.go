// Package source loads metadata documents from the local filesystem, HTTP
// servers or S3-compatible object storage.
package source

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v3"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/horizon-catalog/datamodel/s3"
	"github.com/horizon-catalog/datamodel/version"
)

// Stdin is the location that reads the document from the standard input.
const Stdin = "-"

// StatusError is returned when an HTTP server answers with a status other
// than 200 OK.
type StatusError struct {
	StatusCode int
	Status     string
}

func (err *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d (%s)", err.StatusCode, err.Status)
}

// Loader reads documents given their location: a path, a file://, http://
// or https:// URL, an s3:// URI or Stdin.
type Loader struct {
	logger     logrus.FieldLogger
	fs         afero.Fs
	storage    s3.ObjectStorage
	httpClient *http.Client
	stdin      io.Reader
	timeout    time.Duration
	newBackOff func() backoff.BackOff
}

// Option configures a Loader.
type Option func(*Loader)

// WithFs sets the filesystem used for local paths and temporary files.
func WithFs(fs afero.Fs) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

// WithObjectStorage enables s3:// locations.
func WithObjectStorage(storage s3.ObjectStorage) Option {
	return func(l *Loader) {
		l.storage = storage
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.httpClient = client
	}
}

func WithStdin(r io.Reader) Option {
	return func(l *Loader) {
		l.stdin = r
	}
}

// WithTimeout bounds every Load call. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithBackOff sets the retry policy of HTTP requests. The function is called
// once per request as backoff policies are stateful.
func WithBackOff(fn func() backoff.BackOff) Option {
	return func(l *Loader) {
		l.newBackOff = fn
	}
}

// New returns a Loader. Without options it reads from the OS filesystem and
// uses http.DefaultClient with exponential backoff.
func New(logger logrus.FieldLogger, opts ...Option) *Loader {
	l := &Loader{
		logger:     logger,
		fs:         afero.NewOsFs(),
		httpClient: http.DefaultClient,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the contents of the document found at location.
func (l *Loader) Load(ctx context.Context, location string) ([]byte, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	logger := l.logger.WithField("location", location)
	logger.Debug("Loading document")

	var (
		blob []byte
		err  error
	)
	switch scheme := schemeOf(location); scheme {
	case "stdin":
		blob, err = l.loadStdin()
	case "", "file":
		blob, err = l.loadFile(location)
	case "http", "https":
		blob, err = l.loadHTTP(ctx, location)
	case s3.Scheme:
		blob, err = l.loadS3(ctx, location)
	default:
		err = fmt.Errorf("unsupported location scheme %q", scheme)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", location, err)
	}
	logger.WithField("size", humanize.Bytes(uint64(len(blob)))).Debug("Document loaded")
	return blob, nil
}

func schemeOf(location string) string {
	if location == Stdin {
		return "stdin"
	}
	u, err := url.Parse(location)
	if err != nil {
		// Not a URL, e.g. a path with a colon in its first segment.
		return ""
	}
	return strings.ToLower(u.Scheme)
}

func (l *Loader) loadStdin() ([]byte, error) {
	if l.stdin == nil {
		return nil, fmt.Errorf("standard input is not available")
	}
	return ioutil.ReadAll(l.stdin)
}

func (l *Loader) loadFile(location string) ([]byte, error) {
	path := location
	if strings.HasPrefix(location, "file://") {
		u, err := url.Parse(location)
		if err != nil {
			return nil, err
		}
		path = u.Path
	}
	return afero.ReadFile(l.fs, path)
}

func (l *Loader) loadHTTP(ctx context.Context, location string) ([]byte, error) {
	// Create a BackOffContext to stop retrying after the context is canceled.
	cb := backoff.WithContext(l.newBackOff(), ctx)

	req, err := http.NewRequest("GET", location, nil)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("User-Agent", version.AppVersion())
	req.Header.Set("Accept", "application/json")

	var blob []byte
	op := func() error {
		resp, err := l.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			err := &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
			// Client errors are not going to be fixed by retrying.
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			l.logger.WithField("location", location).Warn(err)
			return err
		}
		blob, err = ioutil.ReadAll(resp.Body)
		return err
	}

	if err := backoff.Retry(op, cb); err != nil {
		return nil, err
	}
	return blob, nil
}

func (l *Loader) loadS3(ctx context.Context, location string) ([]byte, error) {
	if l.storage == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}
	f, err := afero.TempFile(l.fs, "", "horizon-")
	if err != nil {
		return nil, err
	}
	defer func() {
		f.Close()
		l.fs.Remove(f.Name())
	}()

	n, err := l.storage.Download(ctx, f, location)
	if err != nil {
		return nil, err
	}
	l.logger.Debugf("Downloaded %s - %s written", location, humanize.Bytes(uint64(n)))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return ioutil.ReadAll(f)
}
