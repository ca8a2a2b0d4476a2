// Package shell runs the external tools the CLI drives (git, npm, yarn, vue)
// behind a small Runner interface so orchestration code can be exercised
// against a recording fake in tests.
package shell
