// Package scaffold turns a downloaded template into a project. It copies the
// template tree, names the package descriptor, substitutes {{key}}
// placeholders in a fixed set of files per template, renders CI
// configuration, and drives the create and addCI flows end to end.
package scaffold
