// Package ui renders operator-facing output: colored status lines, messages
// translated into the operator's language, and the structured debug logger.
package ui
