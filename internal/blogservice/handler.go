package blogservice

import (
	"context"
	"database/sql"
)

func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{m: newBlogModel(db)}
}

// CreateBlog inserts a new blog and returns the store-assigned id. The author
// id always comes from the authenticated caller, never from the request body.
func (s *BlogService) CreateBlog(ctx context.Context, title, content string, authorID int) (int, error) {
	return s.m.insert(ctx, title, content, authorID)
}

// UpdateBlog replaces title and content of the blog with the given id and
// returns that id. There is no ownership check: any authenticated caller may
// update any blog.
func (s *BlogService) UpdateBlog(ctx context.Context, id int, title, content string) (int, error) {
	return s.m.update(ctx, id, title, content)
}

// GetBlogByID returns the blog with the given id, or ErrRecordNotFound.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	return s.m.getBlogByID(ctx, id)
}

// GetBlogs returns all blogs.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	return s.m.getBlogs(ctx)
}
