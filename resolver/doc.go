// Package resolver answers helm-git requests.
//
// A request is a git+ URI. Resolve parses it, consults the request cache and,
// on a miss, fetches the named ref into a scratch working tree (through the
// repository mirror cache when one is configured). When the URI names a file
// that exists in the tree its content is returned as is. Otherwise the chart
// pipeline runs over the chart directory and the requested file, usually
// index.yaml, is returned from its output.
//
// Every scratch directory lives in a per-request workspace that is removed
// before Resolve returns, whether it succeeds, fails or is canceled.
package resolver
