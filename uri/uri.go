package uri

import (
	"log/slog"
	"net/url"
	"path"
	"strings"

	platformerrors "github.com/jmgilman/helm-git/errors"
)

// schemePrefix marks a helm-git URI.
const schemePrefix = "git+"

// allowedTransports is the transport allow-list.
var allowedTransports = map[string]bool{
	"https": true,
	"http":  true,
	"ssh":   true,
	"file":  true,
}

// Option configures Parse.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives the floating-ref warning.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Parse parses raw into a Descriptor.
//
// Errors carry INVALID_URI_FORMAT for malformed input and
// DISALLOWED_PROTOCOL for a transport outside the allow-list.
func Parse(raw string, opts ...Option) (*Descriptor, error) {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	if !strings.HasPrefix(raw, schemePrefix) {
		return nil, invalid(raw, "URI %q must start with %q", redact(raw), schemePrefix)
	}

	rest := strings.TrimPrefix(raw, schemePrefix)
	transport, _, ok := strings.Cut(rest, "://")
	if !ok || transport == "" {
		return nil, invalid(raw, "URI %q has no transport", redact(raw))
	}
	transport = strings.ToLower(transport)
	if !allowedTransports[transport] {
		return nil, platformerrors.WithContext(
			platformerrors.Newf(platformerrors.CodeDisallowedProtocol,
				"protocol %q is not allowed, must be one of https, http, ssh, file", transport),
			"protocol", transport,
		)
	}

	u, err := url.Parse(rest)
	if err != nil {
		return nil, platformerrors.WithContext(
			platformerrors.Wrapf(err, platformerrors.CodeInvalidURIFormat, "unable to parse URI %q", redact(raw)),
			"uri", redact(raw),
		)
	}

	if u.Host == "" && transport != "file" {
		return nil, invalid(raw, "URI %q has no host", redact(raw))
	}

	repoPath, subPath, _ := strings.Cut(u.Path, "@")
	repoPath = strings.Trim(repoPath, "/")
	subPath = strings.Trim(subPath, "/")
	if repoPath == "" {
		return nil, invalid(raw, "URI %q has no repository path", redact(raw))
	}
	if escapes(repoPath) || escapes(subPath) {
		return nil, invalid(raw, "URI %q must not contain '..' path elements", redact(raw))
	}

	d := &Descriptor{
		Scheme:    schemePrefix + transport,
		Transport: transport,
		Authority: u.Host,
		RepoPath:  repoPath,
		SubPath:   subPath,
		Raw:       raw,
		redacted:  schemePrefix + u.Redacted(),
	}
	if u.User != nil {
		d.Authority = u.User.String() + "@" + u.Host
	}
	if subPath != "" {
		if i := strings.LastIndex(subPath, "/"); i >= 0 {
			d.Dir = subPath[:i]
		}
		d.File = path.Base(subPath)
	}

	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, platformerrors.WithContext(
			platformerrors.Wrapf(err, platformerrors.CodeInvalidURIFormat, "invalid query in URI %q", d.Redacted()),
			"uri", d.Redacted(),
		)
	}

	d.Ref = query.Get("ref")
	if d.Ref == "" {
		d.Ref = DefaultRef
		d.RefDefaulted = true
		o.logger.Warn("no ref given, using the floating default; pin a ref with ?ref=<tag>",
			"uri", d.Redacted(), "ref", DefaultRef)
	}

	for _, f := range []struct {
		name string
		dst  *bool
	}{
		{"sparse", &d.Sparse},
		{"depupdate", &d.DependencyUpdate},
		{"package", &d.Package},
	} {
		v, err := parseFlag(query.Get(f.name))
		if err != nil {
			return nil, platformerrors.WithContext(
				platformerrors.Newf(platformerrors.CodeInvalidURIFormat,
					"invalid value %q for %s in URI %q", query.Get(f.name), f.name, d.Redacted()),
				"parameter", f.name,
			)
		}
		*f.dst = v
	}

	return d, nil
}

// parseFlag parses a boolean query value. The empty string is the default,
// which is enabled.
func parseFlag(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "", "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, platformerrors.Newf(platformerrors.CodeInvalidURIFormat, "not a boolean: %q", v)
}

// escapes reports whether p has a ".." element.
func escapes(p string) bool {
	for _, elem := range strings.Split(p, "/") {
		if elem == ".." {
			return true
		}
	}
	return false
}

func invalid(raw, format string, args ...interface{}) error {
	return platformerrors.WithContext(
		platformerrors.Newf(platformerrors.CodeInvalidURIFormat, format, args...),
		"uri", redact(raw),
	)
}

// redact masks the password of a raw URI that may not parse.
func redact(raw string) string {
	rest := strings.TrimPrefix(raw, schemePrefix)
	if u, err := url.Parse(rest); err == nil {
		return strings.TrimSuffix(raw, rest) + u.Redacted()
	}
	return raw
}
