// Package registry models the remote template registry: a JSON document
// mapping template ids to their source URL, display remark, CI directory and
// creation flags. The document is fetched once per invocation, validated
// against an embedded JSON schema, and kept in document order because that
// order drives prompt choices and defaults.
package registry
