// Package uri parses helm-git request URIs into fetch descriptors.
//
// A request URI names a path inside a ref of a remote repository:
//
//	git+<transport>://<authority>/<repo-path>@<sub-path>?ref=<ref>&sparse=1&depupdate=1&package=1
//
// For example:
//
//	git+https://github.com/jetstack/cert-manager@deploy/charts?ref=v0.6.2
//	git+ssh://git@github.com/org/charts@charts/app/index.yaml?ref=main&sparse=0
//	git+file:///srv/git/infra@charts?ref=release
//
// The transport must be one of https, http, ssh or file; anything else is
// rejected before any filesystem or network access. The repository path is
// everything before the first "@" of the URI path, the sub-path everything
// after it.
//
// Query parameters:
//
//	ref        branch or tag to fetch; defaults to master with a warning
//	sparse     check out only the chart directory (default 1)
//	depupdate  run helm dependency update for each chart (default 1)
//	package    package each chart with helm package (default 1)
//
// Boolean parameters accept 1/true/yes/on and 0/false/no/off.
package uri
