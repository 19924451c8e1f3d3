// Package reqcache memoizes the output of a request keyed by its raw URI.
//
// An entry is a directory <root>/<key> where key is the hex SHA-256 of the
// URI exactly as given. It holds the output directory produced for the
// request and a file named "result" with the bytes that were emitted.
//
//	c := reqcache.New("/var/cache/helm-git/charts")
//	data, err := c.GetOrCompute(ctx, raw, func(ctx context.Context, out string) ([]byte, error) {
//	    // write files to out and return the bytes to emit
//	})
//
// Output is produced in a staging directory next to the entry and renamed
// into place only after it succeeded, so a failed or interrupted request
// never leaves an entry behind. The cache is an optimization: when it cannot
// be used the computation runs in a temporary directory instead and the
// failure is only logged at debug level.
package reqcache
