// Package render assembles report documents into their final Markdown
// text: a registry of immutable documents shared across requests, and an
// assembler that resolves blocks in declaration order with atomic
// failure semantics.
package render
