package seed

import (
	"testing"
	"time"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoPosts_Invariants(t *testing.T) {
	now := time.Now()
	posts := DemoPosts(now)
	require.NotEmpty(t, posts)

	seen := make(map[string]bool)
	for _, post := range posts {
		assert.False(t, seen[post.ID], "duplicate post id %s", post.ID)
		seen[post.ID] = true
		assert.True(t, models.ValidPostType(post.Type))
		assert.Equal(t, len(post.Comments), post.CommentsCount)
		assert.GreaterOrEqual(t, post.LikesCount, 0)
		assert.True(t, post.CreatedAt.Before(now))
	}

	// Newest first.
	for i := 1; i < len(posts); i++ {
		assert.True(t, posts[i].CreatedAt.Before(posts[i-1].CreatedAt))
	}
}

func TestDemoConversations_LastMessageConsistency(t *testing.T) {
	conversations := DemoConversations(time.Now(), "current-user")
	require.NotEmpty(t, conversations)

	unread := 0
	for _, conv := range conversations {
		require.NotEmpty(t, conv.Messages)
		require.NotNil(t, conv.LastMessage)
		assert.Equal(t, conv.Messages[len(conv.Messages)-1].ID, conv.LastMessage.ID)
		unread += conv.UnreadCount
	}
	assert.Positive(t, unread, "seed should include unread threads")
}

func TestFactory_BuildDevelopers(t *testing.T) {
	factory := NewFactory(42)
	developers := factory.BuildDevelopers(10)
	require.Len(t, developers, 10)

	seen := make(map[string]bool)
	for _, dev := range developers {
		assert.False(t, seen[dev.ID])
		seen[dev.ID] = true
		assert.NotEmpty(t, dev.Name)
		assert.NotEmpty(t, dev.Email)
		assert.Len(t, dev.Skills, 3)
	}
}

func TestFactory_BuildPost(t *testing.T) {
	factory := NewFactory(42)
	now := time.Now()

	post := factory.BuildPost(now)
	assert.NotEmpty(t, post.ID)
	assert.NotEmpty(t, post.Content)
	assert.Equal(t, models.PostTypeText, post.Type)
	assert.True(t, post.CreatedAt.Before(now))
	assert.NotEmpty(t, post.User.ID)
	assert.Empty(t, post.Comments)

	override := factory.BuildPost(now, func(p *models.Post) { p.Type = models.PostTypeCode })
	assert.Equal(t, models.PostTypeCode, override.Type)
}
