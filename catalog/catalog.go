package catalog

import (
	"errors"
	"fmt"

	"edulearn_backend/models"
)

var (
	// ErrDuplicateID is returned when two records of the same kind share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrInvalidRecord is returned when a record breaks a field invariant.
	ErrInvalidRecord = errors.New("invalid record")
)

const (
	relatedLimit           = 3
	featuredCourseLimit    = 3
	featuredTutorialsLimit = 2
)

// Catalog is the read-only store of courses and tutorials.
type Catalog struct {
	courses   []models.Course
	tutorials []models.Tutorial

	courseIndex   map[int]int
	tutorialIndex map[int]int
}

// New validates the records and builds a Catalog that owns copies of them.
func New(courses []models.Course, tutorials []models.Tutorial) (*Catalog, error) {
	c := &Catalog{
		courses:       append([]models.Course(nil), courses...),
		tutorials:     append([]models.Tutorial(nil), tutorials...),
		courseIndex:   make(map[int]int, len(courses)),
		tutorialIndex: make(map[int]int, len(tutorials)),
	}

	for i, course := range c.courses {
		if err := validateCourse(course); err != nil {
			return nil, err
		}
		if _, exists := c.courseIndex[course.ID]; exists {
			return nil, fmt.Errorf("course %d: %w", course.ID, ErrDuplicateID)
		}
		c.courseIndex[course.ID] = i
	}

	for i, tutorial := range c.tutorials {
		if err := validateTutorial(tutorial); err != nil {
			return nil, err
		}
		if _, exists := c.tutorialIndex[tutorial.ID]; exists {
			return nil, fmt.Errorf("tutorial %d: %w", tutorial.ID, ErrDuplicateID)
		}
		c.tutorialIndex[tutorial.ID] = i
	}

	return c, nil
}

func validateCourse(course models.Course) error {
	switch {
	case course.ID <= 0:
		return fmt.Errorf("course %d: id must be positive: %w", course.ID, ErrInvalidRecord)
	case course.Lessons < 1:
		return fmt.Errorf("course %d: lesson count %d is below 1: %w", course.ID, course.Lessons, ErrInvalidRecord)
	case !course.Level.Valid():
		return fmt.Errorf("course %d: unknown level %q: %w", course.ID, course.Level, ErrInvalidRecord)
	}
	return nil
}

func validateTutorial(tutorial models.Tutorial) error {
	switch {
	case tutorial.ID <= 0:
		return fmt.Errorf("tutorial %d: id must be positive: %w", tutorial.ID, ErrInvalidRecord)
	case !tutorial.Level.Valid():
		return fmt.Errorf("tutorial %d: unknown level %q: %w", tutorial.ID, tutorial.Level, ErrInvalidRecord)
	case tutorial.Date.IsZero():
		return fmt.Errorf("tutorial %d: missing publication date: %w", tutorial.ID, ErrInvalidRecord)
	}
	return nil
}

// Courses returns a copy of every course in catalog order.
func (c *Catalog) Courses() []models.Course {
	return append([]models.Course(nil), c.courses...)
}

// Tutorials returns a copy of every tutorial in catalog order.
func (c *Catalog) Tutorials() []models.Tutorial {
	return append([]models.Tutorial(nil), c.tutorials...)
}

func (c *Catalog) CourseCount() int {
	return len(c.courses)
}

func (c *Catalog) TutorialCount() int {
	return len(c.tutorials)
}

// CourseByID looks up a course. The bool is false when no course has id.
func (c *Catalog) CourseByID(id int) (models.Course, bool) {
	i, ok := c.courseIndex[id]
	if !ok {
		return models.Course{}, false
	}
	return c.courses[i], true
}

// TutorialByID looks up a tutorial. The bool is false when no tutorial has id.
func (c *Catalog) TutorialByID(id int) (models.Tutorial, bool) {
	i, ok := c.tutorialIndex[id]
	if !ok {
		return models.Tutorial{}, false
	}
	return c.tutorials[i], true
}

// SearchCourses applies the criteria and then the bucket.
func (c *Catalog) SearchCourses(criteria Criteria, bucket models.Bucket) []models.Course {
	return SelectBucket(Filter(c.courses, criteria), bucket)
}

// SearchTutorials applies the criteria and then the bucket.
func (c *Catalog) SearchTutorials(criteria Criteria, bucket models.Bucket) []models.Tutorial {
	return SelectBucket(Filter(c.tutorials, criteria), bucket)
}

func (c *Catalog) CourseCategories() []string {
	return Categories(c.courses)
}

func (c *Catalog) TutorialCategories() []string {
	return Categories(c.tutorials)
}

// RelatedCourses returns up to three other courses sharing the category of
// the course with id, in catalog order. Unknown ids yield nothing.
func (c *Catalog) RelatedCourses(id int) []models.Course {
	course, ok := c.CourseByID(id)
	if !ok {
		return []models.Course{}
	}
	related := make([]models.Course, 0, relatedLimit)
	for _, other := range c.courses {
		if other.ID == course.ID || other.Category != course.Category {
			continue
		}
		related = append(related, other)
		if len(related) == relatedLimit {
			break
		}
	}
	return related
}

// FeaturedCourses returns the first popular courses for the home page.
func (c *Catalog) FeaturedCourses() []models.Course {
	return head(SelectBucket(c.courses, models.BucketPopular), featuredCourseLimit)
}

// FeaturedTutorials returns the first featured tutorials.
func (c *Catalog) FeaturedTutorials() []models.Tutorial {
	return head(SelectBucket(c.tutorials, models.BucketFeatured), featuredTutorialsLimit)
}

func head[R any](records []R, n int) []R {
	if len(records) > n {
		return records[:n]
	}
	return records
}
