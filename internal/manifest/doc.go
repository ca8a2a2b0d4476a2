// Package manifest reads and updates package.json descriptors. Edits are
// applied to the raw document so key order and unknown fields survive a
// read-modify-write cycle.
package manifest
