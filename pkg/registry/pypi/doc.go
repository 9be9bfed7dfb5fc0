// Package pypi provides an HTTP client for the Python Package Index API.
//
// [Client.FetchPackage] issues a GET to https://pypi.org/pypi/{name}/json
// and extracts the latest published version (info.version) and the short
// summary (info.summary). Responses are cached through a pluggable
// backend; transient failures are retried with backoff.
//
//	client := pypi.NewClient(backend, 24*time.Hour)
//	info, err := client.FetchPackage(ctx, "requests", false)
//	if err != nil {
//	    // registry.ErrNotFound or registry.ErrNetwork
//	}
//	fmt.Println(info.Version, info.Summary)
//
// Package names are normalized following PEP 503 before the request.
package pypi
