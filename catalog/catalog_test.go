package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edulearn_backend/models"
)

func mustEmbedded(t *testing.T) *Catalog {
	t.Helper()
	cat, err := LoadEmbedded()
	require.NoError(t, err)
	return cat
}

func TestLoadEmbedded(t *testing.T) {
	cat := mustEmbedded(t)

	assert.Equal(t, 12, cat.CourseCount())
	assert.Equal(t, 8, cat.TutorialCount())

	tutorial, ok := cat.TutorialByID(4)
	require.True(t, ok)
	assert.Equal(t, "Cloud Computing Basics: AWS Fundamentals", tutorial.Title)
	assert.Equal(t, "2023-08-21", tutorial.Date.String())
}

func TestNew_Validation(t *testing.T) {
	valid := models.Course{ID: 1, Title: "Go", Level: models.LevelBeginner, Lessons: 3}
	published := models.NewDate(2024, time.March, 1)

	tests := []struct {
		name      string
		courses   []models.Course
		tutorials []models.Tutorial
		wantErr   error
	}{
		{
			name:    "valid",
			courses: []models.Course{valid},
		},
		{
			name:    "duplicate_course",
			courses: []models.Course{valid, valid},
			wantErr: ErrDuplicateID,
		},
		{
			name:    "zero_lessons",
			courses: []models.Course{{ID: 2, Level: models.LevelBeginner}},
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "non_positive_id",
			courses: []models.Course{{ID: 0, Level: models.LevelBeginner, Lessons: 1}},
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "unknown_level",
			courses: []models.Course{{ID: 3, Level: "Expert", Lessons: 1}},
			wantErr: ErrInvalidRecord,
		},
		{
			name: "duplicate_tutorial",
			tutorials: []models.Tutorial{
				{ID: 1, Level: models.LevelAdvanced, Date: published},
				{ID: 1, Level: models.LevelBeginner, Date: published},
			},
			wantErr: ErrDuplicateID,
		},
		{
			name:      "tutorial_unknown_level",
			tutorials: []models.Tutorial{{ID: 1, Date: published}},
			wantErr:   ErrInvalidRecord,
		},
		{
			name:      "tutorial_missing_date",
			tutorials: []models.Tutorial{{ID: 1, Level: models.LevelBeginner}},
			wantErr:   ErrInvalidRecord,
		},
		{
			name:      "course_and_tutorial_may_share_id",
			courses:   []models.Course{valid},
			tutorials: []models.Tutorial{{ID: 1, Level: models.LevelBeginner, Date: published}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.courses, tt.tutorials)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLookup(t *testing.T) {
	cat, err := New(pythonCourses(), nil)
	require.NoError(t, err)

	course, ok := cat.CourseByID(2)
	require.True(t, ok)
	assert.Equal(t, "Advanced Python", course.Title)

	missing, ok := cat.CourseByID(999)
	assert.False(t, ok)
	assert.Equal(t, models.Course{}, missing)

	_, ok = cat.TutorialByID(1)
	assert.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	source := pythonCourses()
	cat, err := New(source, nil)
	require.NoError(t, err)

	source[0].Title = "edited source"
	courses := cat.Courses()
	courses[1].Title = "edited copy"

	fresh := cat.Courses()
	assert.Equal(t, "Intro to Python", fresh[0].Title)
	assert.Equal(t, "Advanced Python", fresh[1].Title)
}

func TestRelatedCourses(t *testing.T) {
	cat := mustEmbedded(t)

	tests := []struct {
		name string
		id   int
		want []int
	}{
		{name: "web_development", id: 1, want: []int{2, 12}},
		{name: "data_science", id: 4, want: []int{3, 5}},
		{name: "only_course_in_category", id: 11, want: []int{}},
		{name: "unknown_id", id: 999, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cat.RelatedCourses(tt.id)
			assert.Equal(t, tt.want, ids(got))
			assert.LessOrEqual(t, len(got), 3)
		})
	}
}

func TestRelatedCourses_Limit(t *testing.T) {
	var courses []models.Course
	for id := 1; id <= 6; id++ {
		courses = append(courses, models.Course{ID: id, Category: "Go", Level: models.LevelBeginner, Lessons: 1})
	}
	cat, err := New(courses, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 4}, ids(cat.RelatedCourses(3)))
}

func TestFeatured(t *testing.T) {
	cat := mustEmbedded(t)

	assert.Equal(t, []int{1, 2, 3}, ids(cat.FeaturedCourses()))
	assert.Equal(t, []int{1, 2}, ids(cat.FeaturedTutorials()))
}

func TestLessonOutline(t *testing.T) {
	course := models.Course{ID: 7, Title: "AWS Cloud Practitioner", Lessons: 3}

	lessons := LessonOutline(course)
	require.Len(t, lessons, 3)
	assert.Equal(t, "Lesson 1: Introduction", lessons[0].Title)
	assert.Equal(t, "Lesson 2: AWS Cloud Practitioner Concepts Part 1", lessons[1].Title)
	assert.Equal(t, "Lesson 3: AWS Cloud Practitioner Concepts Part 2", lessons[2].Title)
	assert.Equal(t, lessons, LessonOutline(course), "outline must be deterministic")

	for i, l := range lessons {
		assert.Equal(t, i+1, l.Number)
		assert.Regexp(t, `^(?:[5-9]|1[0-9]):[0-5][0-9]$`, l.Duration)
	}
}

func TestParse(t *testing.T) {
	t.Run("unknown_field", func(t *testing.T) {
		_, err := Parse([]byte("courses:\n  - id: 1\n    colour: red\n"))
		assert.Error(t, err)
	})

	t.Run("bad_date", func(t *testing.T) {
		_, err := Parse([]byte("tutorials:\n  - id: 1\n    level: Beginner\n    date: \"15/08/2023\"\n"))
		assert.Error(t, err)
	})

	t.Run("tutorial_without_date", func(t *testing.T) {
		_, err := Parse([]byte("tutorials:\n  - id: 1\n    level: Beginner\n"))
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("invalid_record", func(t *testing.T) {
		_, err := Parse([]byte("courses:\n  - id: 1\n    level: Beginner\n    lessons: 0\n"))
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("empty_document", func(t *testing.T) {
		cat, err := Parse([]byte(""))
		require.NoError(t, err)
		assert.Zero(t, cat.CourseCount())
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `courses:
  - id: 5
    title: Rust for Gophers
    description: Ownership explained
    category: Systems
    level: Intermediate
    lessons: 4
    duration: 2 hours
    popular: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	course, ok := cat.CourseByID(5)
	require.True(t, ok)
	assert.True(t, course.Popular)
	assert.Equal(t, []string{"Systems"}, cat.CourseCategories())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
