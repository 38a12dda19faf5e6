// Package catalog provides the embedded agent template library.
//
// The library ships inside the binary and is parsed once on first use.
// Templates are looked up by id, category, keyword, or by the technologies
// a project was detected to use, and can be rendered into agent markdown
// files with optional custom instructions.
package catalog
