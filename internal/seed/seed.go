// Package seed provides the demo dataset the stores fall back to when their
// persisted collections are empty, plus factories for generated sample data.
package seed

import (
	"time"

	"devconnect/internal/models"
)

// DemoPosts returns the fixed starter feed, newest first. Timestamps are
// anchored relative to now so the feed always looks recent.
func DemoPosts(now time.Time) []models.Post {
	return []models.Post{
		{
			ID:            "demo-post-1",
			Content:       "Just shipped a new feature using React 18 and TypeScript! The new concurrent features are amazing for performance.\n\nWhat's everyone's experience with the new React features?",
			Type:          models.PostTypeText,
			CreatedAt:     now.Add(-2 * time.Hour),
			LikesCount:    12,
			CommentsCount: 1,
			SharesCount:   2,
			User: models.Author{
				ID:        "demo-user-1",
				Name:      "Sarah Chen",
				Username:  "sarahdev",
				AvatarURL: "/placeholder.svg?height=40&width=40",
				Title:     "Frontend Engineer",
			},
			Comments: []models.Comment{
				{
					ID:        "demo-comment-1",
					Content:   "React 18 is incredible! The automatic batching alone has improved our app's performance significantly.",
					CreatedAt: now.Add(-1 * time.Hour),
					User: models.Author{
						ID:        "demo-user-2",
						Name:      "Alex Rodriguez",
						Username:  "alexdev",
						AvatarURL: "/placeholder.svg?height=32&width=32",
						Title:     "Full Stack Developer",
					},
					LikesCount: 5,
				},
			},
		},
		{
			ID: "demo-post-2",
			Content: `// A clean way to handle async operations
const useAsyncData = (fetchFn) => {
  const [data, setData] = useState(null);
  const [loading, setLoading] = useState(true);
  const [error, setError] = useState(null);

  useEffect(() => {
    fetchFn()
      .then(setData)
      .catch(setError)
      .finally(() => setLoading(false));
  }, [fetchFn]);

  return { data, loading, error };
};`,
			Type:          models.PostTypeCode,
			CreatedAt:     now.Add(-4 * time.Hour),
			LikesCount:    24,
			CommentsCount: 0,
			SharesCount:   6,
			User: models.Author{
				ID:        "demo-user-3",
				Name:      "Maya Patel",
				Username:  "mayacode",
				AvatarURL: "/placeholder.svg?height=40&width=40",
				Title:     "Senior React Developer",
			},
			IsLiked:  true,
			Comments: []models.Comment{},
		},
		{
			ID:            "demo-post-3",
			Content:       "Working on a new design system for our team. Here's a sneak peek at our new component library!\n\nFeedback welcome!",
			Type:          models.PostTypeMedia,
			CreatedAt:     now.Add(-6 * time.Hour),
			LikesCount:    18,
			CommentsCount: 0,
			SharesCount:   3,
			User: models.Author{
				ID:        "demo-user-4",
				Name:      "Jordan Kim",
				Username:  "jordanux",
				AvatarURL: "/placeholder.svg?height=40&width=40",
				Title:     "UI/UX Designer",
			},
			MediaURL: "/placeholder.svg?height=300&width=500&text=Design+System+Preview",
			Comments: []models.Comment{},
		},
	}
}

// DemoConversations returns the starter direct-message threads.
func DemoConversations(now time.Time, currentUserID string) []models.Conversation {
	first := models.Message{
		ID:        "demo-msg-1",
		Content:   "Hey! I saw your React component library. Really impressive work!",
		SenderID:  "demo-user-1",
		CreatedAt: now.Add(-10 * time.Minute),
		IsRead:    true,
	}
	reply := models.Message{
		ID:        "demo-msg-2",
		Content:   "Thank you! I've been working on it for a few months now. Always looking to improve it.",
		SenderID:  currentUserID,
		CreatedAt: now.Add(-8 * time.Minute),
		IsRead:    true,
	}
	followup := models.Message{
		ID:        "demo-msg-3",
		Content:   "The TypeScript definitions are really well done. Mind if I contribute?",
		SenderID:  "demo-user-1",
		CreatedAt: now.Add(-5 * time.Minute),
	}
	thanks := models.Message{
		ID:        "demo-msg-4",
		Content:   "Thanks for the code review feedback!",
		SenderID:  "demo-user-2",
		CreatedAt: now.Add(-2 * time.Hour),
		IsRead:    true,
	}
	collab := models.Message{
		ID:        "demo-msg-5",
		Content:   "Would love to collaborate on that open source project!",
		SenderID:  "demo-user-3",
		CreatedAt: now.Add(-24 * time.Hour),
	}

	return []models.Conversation{
		{
			ID: "demo-conversation-1",
			User: models.Author{
				ID:        "demo-user-1",
				Name:      "Sarah Chen",
				Username:  "sarahchen",
				AvatarURL: "/placeholder.svg?height=40&width=40",
			},
			IsOnline:    true,
			Messages:    []models.Message{first, reply, followup},
			LastMessage: &followup,
			UnreadCount: 1,
		},
		{
			ID: "demo-conversation-2",
			User: models.Author{
				ID:        "demo-user-2",
				Name:      "Alex Rodriguez",
				Username:  "alexdev",
				AvatarURL: "/placeholder.svg?height=40&width=40",
			},
			Messages:    []models.Message{thanks},
			LastMessage: &thanks,
		},
		{
			ID: "demo-conversation-3",
			User: models.Author{
				ID:        "demo-user-3",
				Name:      "Maya Patel",
				Username:  "mayacode",
				AvatarURL: "/placeholder.svg?height=40&width=40",
			},
			IsOnline:    true,
			Messages:    []models.Message{collab},
			LastMessage: &collab,
			UnreadCount: 1,
		},
	}
}
