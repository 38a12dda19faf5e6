// Package workspace wraps the git binary for the repository operations
// teamforge-ctl needs: clone, status, and commit. It shells out rather
// than linking a git library; errors carry the exact command line that
// failed.
package workspace
