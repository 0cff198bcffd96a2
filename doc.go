// Package chordsense is the composition root for the Chordsense blog.
//
// It connects the content domain (pkg/core) with the filesystem adapter
// (pkg/adapters/fs) and the Markdown renderer (pkg/render).
//
// Content lives in a flat directory of Markdown/MDX files. Each file starts
// with a YAML frontmatter block carrying title, summary and date, followed by
// the body:
//
//	---
//	title: "Hello"
//	summary: "World"
//	date: "2024-01-01"
//	---
//	# Hello
//
// Every call reads the directory again; nothing is cached.
//
// Usage:
//
//	svc, err := chordsense.New("./content",
//		chordsense.WithConcurrency(4),
//		chordsense.WithLogger(logger),
//	)
//
//	posts, err := svc.ListPosts(ctx)
//	page, err := svc.RenderPost(ctx, "hello")
package chordsense
