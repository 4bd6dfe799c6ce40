package catalog

import (
	"fmt"

	"edulearn_backend/models"
)

// LessonOutline lists the lessons of a course. Durations are derived from the
// course id and lesson number so the outline is stable across requests.
func LessonOutline(course models.Course) []models.LessonResponse {
	lessons := make([]models.LessonResponse, 0, course.Lessons)
	for n := 1; n <= course.Lessons; n++ {
		title := fmt.Sprintf("Lesson %d: Introduction", n)
		if n > 1 {
			title = fmt.Sprintf("Lesson %d: %s Concepts Part %d", n, course.Title, n-1)
		}
		lessons = append(lessons, models.LessonResponse{
			Number:   n,
			Title:    title,
			Duration: lessonDuration(course.ID, n),
		})
	}
	return lessons
}

// lessonDuration yields mm:ss in [5:00, 19:59].
func lessonDuration(courseID, n int) string {
	seed := uint32(courseID)*2654435761 + uint32(n)*40503
	minutes := 5 + seed%15
	seconds := (seed / 15) % 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
