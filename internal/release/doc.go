// Package release publishes npm packages from annotated git tags.
//
// A tag names its target branch, an optional package and a version:
// "master-v1.2.3" releases the repository's root package from master, and
// "release-pkg-a-v2.0.0" releases the package named pkg-a found anywhere in
// the tree. Pipeline checks out the branch, aligns package.json with the tag
// version, publishes with a temporary registry token, optionally notifies a
// chat webhook, and pushes any commits it made back to the branch.
package release
