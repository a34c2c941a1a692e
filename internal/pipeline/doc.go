// Package pipeline implements the page stages of a site build.
//
// Each Markdown page goes through:
//   - preprocessing (line normalization, front matter extraction)
//   - swagger marker rewriting (root mdswagger package, driven by site.Builder)
//   - Markdown to HTML conversion via Goldmark
//
// Raw HTML is allowed through Goldmark because the rewriting stage emits the
// Swagger UI markup as an HTML block.
package pipeline
