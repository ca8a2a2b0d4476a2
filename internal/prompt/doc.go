// Package prompt asks the operator to pick templates and confirm actions.
//
// Prompter is the capability the create and addCI flows depend on. Huh drives
// a terminal form, Line reads numbered answers from a plain stream, Defaults
// answers every question with its default, and Canned replays scripted
// answers in tests.
package prompt
