// Package fetch downloads template sources into a local directory. Git
// repositories are shallow-cloned and stripped of their history; .tar.gz and
// .zip URLs are downloaded over HTTP and unpacked. Failures are reported as
// ErrDownload, with ErrPermission added when the remote refused access.
package fetch
