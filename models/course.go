package models

// Level is the difficulty of a course or tutorial.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Levels lists the enumeration in display order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Valid reports whether l is one of the enumerated levels.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type Course struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Level       Level  `json:"level"`
	Lessons     int    `json:"lessons"`
	Duration    string `json:"duration"`
	Popular     bool   `json:"popular"`
	IsNew       bool   `json:"is_new"`
	Trending    bool   `json:"trending"`
}

func (c Course) Facets() Facets {
	return Facets{Title: c.Title, Description: c.Description, Category: c.Category, Level: c.Level}
}

func (c Course) InBucket(b Bucket) bool {
	switch b {
	case BucketAll:
		return true
	case BucketPopular:
		return c.Popular
	case BucketNew:
		return c.IsNew
	case BucketTrending:
		return c.Trending
	}
	return false
}

type LessonResponse struct {
	Number   int    `json:"number"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

type ReviewResponse struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type CourseDetailResponse struct {
	Course  Course           `json:"course"`
	Lessons []LessonResponse `json:"lessons"`
	Reviews []ReviewResponse `json:"reviews"`
	Related []Course         `json:"related"`
}

type CourseListResponse struct {
	Courses    []Course       `json:"courses"`
	Total      int            `json:"total"`
	Categories []string       `json:"categories"`
	Levels     []Level        `json:"levels"`
	Filters    FilterResponse `json:"filters"`
}
