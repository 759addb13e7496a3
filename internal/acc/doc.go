// Package acc answers questions about a browser window's UI state by walking
// its live accessibility tree.
//
// Nothing is cached between calls: every query re-walks the tree, and every
// handle acquired along the way is released before the query returns. The
// target application may change its tree at any time, so a missing role, a
// failed attribute read or an unexpected shape all degrade to "not found"
// rather than an error.
package acc
