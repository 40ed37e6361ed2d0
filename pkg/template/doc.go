// Package template implements the document composition core: named,
// independently overridable blocks arranged in an ordered layout, single
// inheritance between documents, and explicit super calls that splice an
// ancestor's rendering into an override at any position.
//
// Documents are built once at initialisation and stay immutable; each
// render request gets its own Context, so concurrent renders share only
// read-only state. There is no template language: blocks are plain Go
// functions receiving their Context explicitly.
package template
