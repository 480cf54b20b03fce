package seed

import (
	"fmt"
	"math/rand"
	"time"

	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory builds sample domain entities. It is used for the suggested
// developer directory and for padding demo feeds.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a Factory seeded from the given source. A fixed seed
// gives reproducible suggestions.
func NewFactory(seed int64) *Factory {
	gofakeit.Seed(seed)
	return &Factory{rng: rand.New(rand.NewSource(seed))}
}

var developerTitles = []string{
	"Frontend Engineer",
	"Backend Engineer",
	"Full Stack Developer",
	"DevOps Engineer",
	"Mobile Developer",
	"Data Engineer",
	"UI/UX Designer",
}

var developerSkills = []string{
	"Go", "TypeScript", "React", "Python", "Kubernetes",
	"PostgreSQL", "Redis", "GraphQL", "Rust", "Docker",
}

// BuildDeveloper constructs a suggested-directory user.
func (f *Factory) BuildDeveloper(overrides ...func(*models.User)) models.User {
	name := gofakeit.Name()
	username := gofakeit.Username()
	skills := make([]string, 0, 3)
	for _, i := range f.rng.Perm(len(developerSkills))[:3] {
		skills = append(skills, developerSkills[i])
	}
	user := models.User{
		ID:        "dev-" + gofakeit.UUID(),
		Name:      name,
		Email:     gofakeit.Email(),
		Username:  username,
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
		Title:     developerTitles[f.rng.Intn(len(developerTitles))],
		Company:   gofakeit.Company(),
		Location:  fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		Bio:       gofakeit.Sentence(10),
		Skills:    skills,
	}
	for _, override := range overrides {
		override(&user)
	}
	return user
}

// BuildDevelopers constructs n suggested-directory users.
func (f *Factory) BuildDevelopers(n int) []models.User {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, f.BuildDeveloper())
	}
	return users
}

// BuildPost constructs a sample feed post authored by a generated developer.
func (f *Factory) BuildPost(now time.Time, overrides ...func(*models.Post)) models.Post {
	author := f.BuildDeveloper()
	hoursBack := time.Duration(f.rng.Intn(72)+1) * time.Hour
	post := models.Post{
		ID:        fmt.Sprintf("post-%d-%s", now.UnixMilli(), gofakeit.LetterN(8)),
		Content:   gofakeit.Paragraph(1, 3, 8, "\n"),
		Type:      models.PostTypeText,
		CreatedAt: now.Add(-hoursBack),
		User:      author.Snapshot(),
		Comments:  []models.Comment{},
	}
	for _, override := range overrides {
		override(&post)
	}
	return post
}
