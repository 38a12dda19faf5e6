// Package analyzer detects the technologies used by a project directory,
// classifies the project into a single category, and derives a list of
// suggested specialist agents.
//
// Detection is heuristic and best-effort: known manifest files at the
// project root are parsed for dependency evidence, and a bounded-depth
// walk of the tree collects file-extension statistics. A malformed or
// unreadable manifest contributes no evidence but never aborts the
// analysis; only an invalid root path is a fatal error.
package analyzer
