package blog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/ziadkadry99/folio/internal/content"
)

// Post is one successfully loaded blog post together with the source path
// that identifies it.
type Post struct {
	Path string
	content.BlogPost
}

// LoadPosts fetches and parses each discovered post sequentially, in
// discovery order. The loop is best-effort per item: a fetch or parse
// failure is logged and that post is skipped, the rest still load. This is
// deliberately the opposite of content.LoadBundle's all-or-nothing batch.
// progress may be nil; it reports every attempt, skipped or not, so the
// counter always reaches len(paths).
func LoadPosts(ctx context.Context, f content.Fetcher, paths []string, progress func(done int, path string)) []Post {
	posts := make([]Post, 0, len(paths))
	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			log.Printf("blog load aborted: %v", err)
			break
		}

		post, err := loadOne(ctx, f, p)
		if err != nil {
			log.Printf("skipping blog post %s: %v", p, err)
		} else {
			posts = append(posts, post)
		}
		if progress != nil {
			progress(i+1, p)
		}
	}
	return posts
}

func loadOne(ctx context.Context, f content.Fetcher, p string) (Post, error) {
	data, err := f.Fetch(ctx, p)
	if err != nil {
		return Post{}, err
	}
	var post content.BlogPost
	if err := json.Unmarshal(data, &post); err != nil {
		return Post{}, fmt.Errorf("parsing: %w", err)
	}
	return Post{Path: p, BlogPost: post}, nil
}
