package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/seed"
	"devconnect/internal/share"
	"devconnect/internal/storage"
)

// Content owns the post collection and is the only writer of its persisted
// blob. Every mutation is a pure transformation of the collection, persisted
// in full before the in-memory value is swapped; a failed write leaves the
// in-memory state untouched.
type Content struct {
	storage  storage.Store
	identity *Identity
	caps     share.Capabilities
	log      *observability.StoreLogger
	baseURL  string
	now      func() time.Time
	posts    []models.Post
	loaded   bool
}

// CreatePostInput is the payload for CreatePost.
type CreatePostInput struct {
	Content  string
	Type     string
	MediaURL string
}

// NewContent creates the content store. baseURL is the prefix for
// constructed post share URLs.
func NewContent(store storage.Store, identity *Identity, caps share.Capabilities, logger *slog.Logger, baseURL string) *Content {
	return &Content{
		storage:  store,
		identity: identity,
		caps:     caps,
		log:      observability.NewStoreLogger("content", logger),
		baseURL:  baseURL,
		now:      time.Now,
	}
}

// Load reads the persisted collection, seeding the demo feed when nothing
// has ever been written. Posts come out sorted newest first.
func (c *Content) Load(ctx context.Context) error {
	if c.loaded {
		return nil
	}

	data, err := c.storage.Get(ctx, KeyPosts)
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		demo := seed.DemoPosts(c.now())
		if err := c.commit(ctx, "load", demo); err != nil {
			return err
		}
	case err != nil:
		c.log.LogError(ctx, "load", err)
		return err
	default:
		var posts []models.Post
		if err := json.Unmarshal(data, &posts); err != nil {
			c.log.LogError(ctx, "load", err)
			return err
		}
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
		for i := range posts {
			posts[i].CommentsCount = len(posts[i].Comments)
		}
		c.posts = posts
	}

	c.loaded = true
	c.log.LogOp(ctx, "load", map[string]interface{}{"posts": len(c.posts)})
	return nil
}

// Posts returns a copy of the collection, newest first.
func (c *Content) Posts() []models.Post {
	return clonePosts(c.posts)
}

// GetComments returns the comment list for a post, empty for unknown IDs.
func (c *Content) GetComments(postID string) []models.Comment {
	for i := range c.posts {
		if c.posts[i].ID == postID {
			return append([]models.Comment{}, c.posts[i].Comments...)
		}
	}
	return []models.Comment{}
}

// CreatePost constructs a post authored by the session user and prepends it
// to the collection; insertion position maintains the newest-first order.
func (c *Content) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	user := c.identity.CurrentUser()
	if user == nil {
		return nil, models.NewUnauthenticatedError("sign in to create a post")
	}
	if !models.ValidPostType(in.Type) {
		return nil, models.NewValidationError(fmt.Sprintf("invalid post type %q", in.Type))
	}

	author := user.Snapshot()
	if author.Title == "" {
		author.Title = "Developer"
	}
	post := models.Post{
		ID:        newID("post", c.now()),
		Content:   in.Content,
		Type:      in.Type,
		CreatedAt: c.now(),
		User:      author,
		MediaURL:  in.MediaURL,
		Comments:  []models.Comment{},
	}

	updated := append([]models.Post{post}, clonePosts(c.posts)...)
	if err := c.commit(ctx, "create_post", updated); err != nil {
		return nil, err
	}
	c.log.LogOp(ctx, "create_post", map[string]interface{}{"post_id": post.ID, "type": post.Type})
	return &post, nil
}

// LikePost toggles the viewer's like on a post, adjusting likes_count by one
// in the matching direction. Unknown IDs and signed-out viewers are no-ops.
func (c *Content) LikePost(ctx context.Context, postID string) error {
	if !c.identity.IsAuthenticated() {
		return nil
	}
	idx := c.findPost(postID)
	if idx < 0 {
		return nil
	}

	updated := clonePosts(c.posts)
	post := &updated[idx]
	if post.IsLiked {
		post.IsLiked = false
		post.LikesCount--
	} else {
		post.IsLiked = true
		post.LikesCount++
	}
	return c.commit(ctx, "like_post", updated)
}

// AddComment appends a comment authored by the session user and increments
// comments_count, which stays equal to the comment list length.
func (c *Content) AddComment(ctx context.Context, postID, content string) (*models.Comment, error) {
	user := c.identity.CurrentUser()
	if user == nil {
		return nil, models.NewUnauthenticatedError("sign in to comment")
	}
	idx := c.findPost(postID)
	if idx < 0 {
		return nil, models.NewNotFoundError("post", postID)
	}

	comment := models.Comment{
		ID:        newID("comment", c.now()),
		Content:   content,
		CreatedAt: c.now(),
		User:      user.Snapshot(),
	}

	updated := clonePosts(c.posts)
	post := &updated[idx]
	post.Comments = append(post.Comments, comment)
	post.CommentsCount = len(post.Comments)
	if err := c.commit(ctx, "add_comment", updated); err != nil {
		return nil, err
	}
	c.log.LogOp(ctx, "add_comment", map[string]interface{}{"post_id": postID, "comment_id": comment.ID})
	return &comment, nil
}

// LikeComment toggles the viewer's like on one comment of one post. Unknown
// post or comment IDs and signed-out viewers are no-ops.
func (c *Content) LikeComment(ctx context.Context, postID, commentID string) error {
	if !c.identity.IsAuthenticated() {
		return nil
	}
	idx := c.findPost(postID)
	if idx < 0 {
		return nil
	}
	commentIdx := -1
	for i := range c.posts[idx].Comments {
		if c.posts[idx].Comments[i].ID == commentID {
			commentIdx = i
			break
		}
	}
	if commentIdx < 0 {
		return nil
	}

	updated := clonePosts(c.posts)
	comment := &updated[idx].Comments[commentIdx]
	if comment.IsLiked {
		comment.IsLiked = false
		comment.LikesCount--
	} else {
		comment.IsLiked = true
		comment.LikesCount++
	}
	return c.commit(ctx, "like_comment", updated)
}

// SharePost increments shares_count and then attempts the share tiers:
// native sheet, clipboard copy, manual URL. The increment commits before the
// fallible part runs and sticks regardless of which tier is reached.
func (c *Content) SharePost(ctx context.Context, postID string) (share.Result, error) {
	idx := c.findPost(postID)
	if idx < 0 {
		return share.Result{}, models.NewNotFoundError("post", postID)
	}

	updated := clonePosts(c.posts)
	updated[idx].SharesCount++
	if err := c.commit(ctx, "share_post", updated); err != nil {
		return share.Result{}, err
	}

	post := c.posts[idx]
	text := post.Content
	if len(text) > 100 {
		text = text[:100] + "..."
	}
	result := c.caps.Share(ctx, share.Data{
		Title: post.User.Name + " on DevConnect",
		Text:  text,
		URL:   fmt.Sprintf("%s/post/%s", c.baseURL, postID),
	})
	c.log.LogOp(ctx, "share_post", map[string]interface{}{
		"post_id": postID,
		"method":  string(result.Method),
		"success": result.Success,
	})
	return result, nil
}

// DeletePost removes the post from the collection. Unknown IDs are a no-op;
// author checks are the caller's responsibility, as in the original client.
func (c *Content) DeletePost(ctx context.Context, postID string) error {
	idx := c.findPost(postID)
	if idx < 0 {
		return nil
	}
	updated := clonePosts(c.posts)
	updated = append(updated[:idx], updated[idx+1:]...)
	if err := c.commit(ctx, "delete_post", updated); err != nil {
		return err
	}
	c.log.LogOp(ctx, "delete_post", map[string]interface{}{"post_id": postID})
	return nil
}

func (c *Content) findPost(postID string) int {
	for i := range c.posts {
		if c.posts[i].ID == postID {
			return i
		}
	}
	return -1
}

// commit persists the transformed collection and swaps it in. On a failed
// write the in-memory collection is left as it was, so memory never drifts
// ahead of the blob.
func (c *Content) commit(ctx context.Context, op string, updated []models.Post) error {
	data, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	if err := c.storage.Put(ctx, KeyPosts, data); err != nil {
		c.log.LogError(ctx, op, err)
		return err
	}
	c.posts = updated
	return nil
}

// clonePosts copies the collection deeply enough that mutating the clone's
// posts or comment lists cannot alias the original.
func clonePosts(posts []models.Post) []models.Post {
	cloned := make([]models.Post, len(posts))
	copy(cloned, posts)
	for i := range cloned {
		cloned[i].Comments = append([]models.Comment{}, cloned[i].Comments...)
	}
	return cloned
}
