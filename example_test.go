package chordsense_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/chordsense/chordsense"
)

// Example_basic lists a content directory and renders one post.
func Example_basic() {
	dir, err := os.MkdirTemp("", "chordsense-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	post := "---\ntitle: \"Hello\"\nsummary: \"World\"\ndate: \"2024-01-01\"\n---\n# Hello\n"
	if err := os.WriteFile(filepath.Join(dir, "hello.mdx"), []byte(post), 0644); err != nil {
		log.Fatal(err)
	}

	svc, err := chordsense.New(dir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	posts, err := svc.ListPosts(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range posts {
		fmt.Printf("%s: %s (%s)\n", p.Slug, p.Title, p.Summary)
	}

	page, err := svc.RenderPost(ctx, "hello")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(page.HTML))
	// Output:
	// hello: Hello (World)
	// <h1 id="hello">Hello</h1>
}

// ExampleOpenTypedRepository decodes frontmatter into a struct.
func ExampleOpenTypedRepository() {
	dir, err := os.MkdirTemp("", "chordsense-typed-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	post := "---\ntitle: Modes\ntags: [dorian, lydian]\n---\n"
	if err := os.WriteFile(filepath.Join(dir, "modes.mdx"), []byte(post), 0644); err != nil {
		log.Fatal(err)
	}

	type Lesson struct {
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	}

	lessons, err := chordsense.OpenTypedRepository[Lesson](dir)
	if err != nil {
		log.Fatal(err)
	}

	doc, err := lessons.Get(context.Background(), "modes")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s %v\n", doc.Data.Title, doc.Data.Tags)
	// Output:
	// Modes [dorian lydian]
}
