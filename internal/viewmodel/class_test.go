package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-adp-views/internal/models"
)

func newTestProjector() *Projector {
	return NewProjector(ProjectorConfig{Banners: BannerResolver{Transformer: stubTransformer{}}})
}

func TestProjectClassFull(t *testing.T) {
	class := models.ClassRecord{
		ID:             "c1",
		Name:           "Algebra I",
		Description:    strPtr("Intro to algebra"),
		Capacity:       intPtr(30),
		Status:         models.ClassStatusActive,
		BannerURL:      strPtr("https://res.cloudinary.com/demo/image/upload/v1/banner.png"),
		BannerCldPubID: strPtr("classes/banner"),
		Teacher:        &models.UserRef{ID: "t1", Name: "Grace Brewster Hopper", Email: strPtr("grace@example.com")},
		Subject:        &models.Subject{ID: "s1", Name: "Mathematics", Code: "MATH101", Description: strPtr("Numbers")},
		Department:     &models.Department{ID: "d1", Name: "Science", Description: strPtr("Hard sciences")},
	}

	page := newTestProjector().Class(Fetch[models.ClassRecord]{Data: &class})

	require.Equal(t, StateReady, page.State)
	require.NotNil(t, page.Class)
	assert.Equal(t, "Class Details", page.Title)
	assert.Equal(t, "Intro to algebra", page.Class.Description)
	assert.Equal(t, Badge{Text: "30 spots", Variant: BadgeOutline}, page.Class.Capacity)
	assert.Equal(t, Badge{Text: "ACTIVE", Variant: BadgeDefault}, page.Class.Status)
	assert.Equal(t, Banner{Kind: BannerCDN, Src: "cdn://classes/banner/Algebra I", Alt: "Class Banner"}, page.Class.Banner)
	assert.Equal(t, InstructorCard{
		Name:     "Grace Brewster Hopper",
		Email:    "grace@example.com",
		Image:    "https://placehold.co/600x400?text=GH",
		Initials: "GH",
	}, page.Class.Instructor)
	assert.Equal(t, DetailCard{Name: "Science", Description: "Hard sciences"}, page.Class.Department)
	assert.Equal(t, SubjectCard{Code: "MATH101", Name: "Mathematics", Description: "Numbers"}, page.Class.Subject)
	assert.Equal(t, JoinSteps, page.Class.JoinSteps)
}

func TestProjectClassMissingStatusRendersUnknown(t *testing.T) {
	class := models.ClassRecord{ID: "c1", Name: "Orphan"}

	var page ClassPage
	require.NotPanics(t, func() {
		page = newTestProjector().Class(Fetch[models.ClassRecord]{Data: &class})
	})

	assert.Equal(t, Badge{Text: "unknown", Variant: BadgeSecondary}, page.Class.Status)
}

func TestProjectClassFallbacks(t *testing.T) {
	class := models.ClassRecord{ID: "c1", Name: "Orphan", Status: models.ClassStatusInactive}

	page := newTestProjector().Class(Fetch[models.ClassRecord]{Data: &class})

	view := page.Class
	require.NotNil(t, view)
	assert.Equal(t, NoDescriptionProvided, view.Description)
	assert.Equal(t, Badge{Text: NoCapacity, Variant: BadgeOutline}, view.Capacity)
	assert.Equal(t, Badge{Text: "INACTIVE", Variant: BadgeSecondary}, view.Status)
	assert.Equal(t, Banner{Kind: BannerPlaceholder}, view.Banner)
	assert.Equal(t, InstructorCard{
		Name:     Unassigned,
		Email:    NoEmail,
		Image:    "https://placehold.co/600x400?text=NA",
		Initials: "",
	}, view.Instructor)
	assert.Equal(t, DetailCard{Name: Unassigned, Description: NoDescriptionProvided}, view.Department)
	assert.Equal(t, SubjectCard{Code: Unassigned, Name: Unassigned, Description: NoDescriptionProvided}, view.Subject)
}

func TestProjectClassTeacherImageWins(t *testing.T) {
	class := models.ClassRecord{
		ID:      "c1",
		Name:    "Art",
		Teacher: &models.UserRef{ID: "t1", Name: "Frida", Image: strPtr("https://img.example/frida.png")},
	}

	page := newTestProjector().Class(Fetch[models.ClassRecord]{Data: &class})

	assert.Equal(t, "https://img.example/frida.png", page.Class.Instructor.Image)
	assert.Equal(t, NoEmail, page.Class.Instructor.Email)
}

func TestProjectClassShortCircuits(t *testing.T) {
	page := newTestProjector().Class(Fetch[models.ClassRecord]{IsError: true, Data: &models.ClassRecord{}})

	assert.Equal(t, StateFailed, page.State)
	assert.Equal(t, "Failed to load class details.", page.Message)
	assert.Nil(t, page.Class)
}
