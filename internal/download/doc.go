// Package download fetches annotation manifests over HTTPS.
//
// Downloads are sequential and blocking: the response body is streamed to a
// temporary file and renamed into place on success, so a partially written
// manifest is never left behind under the final name. An existing cached
// file short-circuits the transfer unless verification is disabled.
package download
