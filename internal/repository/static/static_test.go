package static_test

import (
	"context"
	"testing"
	"testing/fstest"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/repository/static"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := static.Load()
	require.NoError(t, err)

	assert.Len(t, c.Projects, 10)
	assert.Len(t, c.Services, 6)
	assert.Len(t, c.Posts, 4)
	assert.Equal(t, "ai-resume-agent", c.Projects[0].ID)
	assert.Equal(t, "software-development", c.Services[0].ID)
	assert.Equal(t, "1", c.Posts[0].ID)
	assert.Contains(t, c.Posts[0].Content, "# The Future of Web Design")
	assert.NotEmpty(t, c.Profile.SkillCategories)
}

func minimalFS(projects string) fstest.MapFS {
	return fstest.MapFS{
		"data/projects.yaml": {Data: []byte(projects)},
		"data/services.yaml": {Data: []byte("- id: a\n  title: A\n")},
		"data/blog.yaml":     {Data: []byte("- id: \"1\"\n  title: One\n")},
		"data/profile.yaml":  {Data: []byte("name: Someone\n")},
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	_, err := static.LoadFS(minimalFS("- id: x\n- id: x\n"), "data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `projects: duplicate id "x"`)
}

func TestLoadRejectsEmptyID(t *testing.T) {
	_, err := static.LoadFS(minimalFS("- title: no id\n"), "data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty id")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := static.LoadFS(minimalFS("- id: x\n  colour: red\n"), "data")
	require.Error(t, err)
}

func TestProjectRepository(t *testing.T) {
	c, err := static.Load()
	require.NoError(t, err)
	repo := static.NewProjectRepository(c)
	ctx := context.Background()

	p, err := repo.GetByID(ctx, "portfolio-website")
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Website", p.Title)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepositoriesReturnCopies(t *testing.T) {
	c, err := static.Load()
	require.NoError(t, err)
	ctx := context.Background()

	projects := static.NewProjectRepository(c)
	before := projects.List(ctx)
	mutated := projects.List(ctx)
	mutated[0].Tags[0] = "changed"
	mutated[0].Title = "changed"
	if diff := cmp.Diff(before, projects.List(ctx)); diff != "" {
		t.Fatalf("project repository was mutated through a returned slice (-want +got):\n%s", diff)
	}

	posts := static.NewBlogRepository(c)
	post, err := posts.GetByID(ctx, "1")
	require.NoError(t, err)
	post.Tags[0] = "changed"
	again, err := posts.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Web Design", again.Tags[0])

	profiles := static.NewProfileRepository(c)
	prof := profiles.Get(ctx)
	prof.SkillCategories[0].Skills[0] = "changed"
	assert.Equal(t, "Python", profiles.Get(ctx).SkillCategories[0].Skills[0])
}

func TestServiceRepository(t *testing.T) {
	c, err := static.Load()
	require.NoError(t, err)
	repo := static.NewServiceRepository(c)

	s, err := repo.GetByID(context.Background(), "machine-learning")
	require.NoError(t, err)
	assert.Equal(t, "Machine Learning", s.Title)
	assert.Len(t, s.Features, 5)

	_, err = repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
