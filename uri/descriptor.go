package uri

import (
	"net/url"
	"strings"
)

// DefaultRef is the ref used when a URI does not name one.
const DefaultRef = "master"

// DefaultTarget is the file emitted when the sub-path names a directory.
const DefaultTarget = "index.yaml"

// Descriptor is the parsed form of a request URI. It is not modified after
// Parse returns.
type Descriptor struct {
	// Scheme is "git+" followed by Transport.
	Scheme string

	// Transport is one of https, http, ssh or file.
	Transport string

	// Authority is host[:port], prefixed with user[:password]@ when present.
	Authority string

	// RepoPath is the repository path without leading or trailing slashes.
	RepoPath string

	// SubPath is the path inside the repository, without surrounding slashes.
	SubPath string

	// Dir is the directory part of SubPath, empty when SubPath has no slash.
	Dir string

	// File is the last element of SubPath.
	File string

	// Ref is the requested branch or tag.
	Ref string

	// RefDefaulted is set when Ref was not given and DefaultRef was used.
	RefDefaulted bool

	// Sparse limits the checkout to SubPath.
	Sparse bool

	// DependencyUpdate runs helm dependency update for each chart.
	DependencyUpdate bool

	// Package runs helm package for each chart.
	Package bool

	// Raw is the URI as given.
	Raw string

	redacted string
}

// RepoURL returns the URL of the remote repository, suitable for git.
func (d Descriptor) RepoURL() string {
	return d.Transport + "://" + d.Authority + "/" + d.RepoPath
}

// Layout places the chart pipeline for a request: the directory it runs in
// and the file read back from its output.
type Layout struct {
	Dir    string
	Target string
}

// DirectoryLayout treats SubPath as a chart directory, emitting DefaultTarget.
func (d Descriptor) DirectoryLayout() Layout {
	return Layout{Dir: d.SubPath, Target: DefaultTarget}
}

// FileLayout treats SubPath as a file produced by the pipeline run over Dir.
func (d Descriptor) FileLayout() Layout {
	if d.SubPath == "" {
		return d.DirectoryLayout()
	}
	return Layout{Dir: d.Dir, Target: d.File}
}

// HasCredentials reports whether the authority carries user information.
func (d Descriptor) HasCredentials() bool {
	return strings.Contains(d.Authority, "@")
}

// CanonicalURI returns the URI of dir at the resolved ref, used as the base
// URL of a generated index. It always names the ref and every flag
// explicitly so that re-resolving a dependency link is deterministic.
func (d Descriptor) CanonicalURI(dir string) string {
	var b strings.Builder
	b.WriteString(d.Scheme)
	b.WriteString("://")
	b.WriteString(d.Authority)
	b.WriteString("/")
	b.WriteString(d.RepoPath)
	if dir = strings.Trim(dir, "/"); dir != "" {
		b.WriteString("@")
		b.WriteString(dir)
	}
	b.WriteString("?ref=")
	b.WriteString(url.QueryEscape(d.Ref))
	b.WriteString("&sparse=")
	b.WriteString(flag(d.Sparse))
	b.WriteString("&depupdate=")
	b.WriteString(flag(d.DependencyUpdate))
	b.WriteString("&package=")
	b.WriteString(flag(d.Package))
	return b.String()
}

// Redacted returns Raw with any password replaced, for use in logs.
func (d Descriptor) Redacted() string {
	if d.redacted == "" {
		return d.Raw
	}
	return d.redacted
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
