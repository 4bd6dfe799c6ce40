package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"edulearn_backend/models"
)

// CourseListResult is the result of the courses command.
type CourseListResult struct {
	Filters models.FilterResponse `json:"filters"`
	Courses []models.Course       `json:"courses"`
	Total   int                   `json:"total"`
}

// CourseDetailResult is the result of the course command.
type CourseDetailResult struct {
	Course  models.Course           `json:"course"`
	Lessons []models.LessonResponse `json:"lessons"`
	Related []models.Course         `json:"related"`
}

// TutorialListResult is the result of the tutorials command.
type TutorialListResult struct {
	Filters   models.FilterResponse `json:"filters"`
	Tutorials []models.Tutorial     `json:"tutorials"`
	Total     int                   `json:"total"`
}

// CategoriesResult is the result of the categories command.
type CategoriesResult struct {
	Kind       string   `json:"kind"`
	Categories []string `json:"categories"`
}

// outputResult writes the result in the requested format.
func outputResult(w io.Writer, result interface{}, format string) error {
	switch format {
	case "json":
		return outputJSON(w, result)
	case "yaml":
		return outputYAML(w, result)
	case "table", "":
		return outputTable(w, result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func outputJSON(w io.Writer, result interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputYAML(w io.Writer, result interface{}) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func outputTable(out io.Writer, result interface{}) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	switch r := result.(type) {
	case CourseListResult:
		return outputCourseListTable(w, r)
	case CourseDetailResult:
		return outputCourseDetailTable(w, r)
	case TutorialListResult:
		return outputTutorialListTable(w, r)
	case CategoriesResult:
		return outputCategoriesTable(w, r)
	default:
		// Fall back to JSON for unknown types
		return outputJSON(out, result)
	}
}

func outputCourseListTable(w *tabwriter.Writer, r CourseListResult) error {
	fmt.Fprintf(w, "TOTAL\t%d\n\n", r.Total)

	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tLEVEL\tLESSONS\tDURATION\tTAGS")
	for _, c := range r.Courses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			c.ID, c.Title, c.Category, c.Level, c.Lessons, c.Duration, courseTags(c))
	}
	return nil
}

func outputCourseDetailTable(w *tabwriter.Writer, r CourseDetailResult) error {
	c := r.Course
	fmt.Fprintf(w, "ID:\t%d\n", c.ID)
	fmt.Fprintf(w, "TITLE:\t%s\n", c.Title)
	fmt.Fprintf(w, "CATEGORY:\t%s\n", c.Category)
	fmt.Fprintf(w, "LEVEL:\t%s\n", c.Level)
	fmt.Fprintf(w, "DURATION:\t%s\n", c.Duration)
	fmt.Fprintf(w, "TAGS:\t%s\n", courseTags(c))
	fmt.Fprintf(w, "DESCRIPTION:\t%s\n\n", c.Description)

	fmt.Fprintln(w, "LESSONS:")
	for _, l := range r.Lessons {
		fmt.Fprintf(w, "%d.\t%s\t%s\n", l.Number, l.Title, l.Duration)
	}

	if len(r.Related) > 0 {
		fmt.Fprintln(w, "\nRELATED:")
		for _, rc := range r.Related {
			fmt.Fprintf(w, "%d\t%s\t%s\n", rc.ID, rc.Title, rc.Level)
		}
	}
	return nil
}

func outputTutorialListTable(w *tabwriter.Writer, r TutorialListResult) error {
	fmt.Fprintf(w, "TOTAL\t%d\n\n", r.Total)

	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tLEVEL\tDURATION\tAUTHOR\tDATE\tFEATURED")
	for _, t := range r.Tutorials {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%t\n",
			t.ID, t.Title, t.Category, t.Level, t.Duration, t.Author, t.Date, t.Featured)
	}
	return nil
}

func outputCategoriesTable(w *tabwriter.Writer, r CategoriesResult) error {
	fmt.Fprintln(w, strings.ToUpper(r.Kind)+" CATEGORIES")
	for _, c := range r.Categories {
		fmt.Fprintln(w, c)
	}
	return nil
}

func courseTags(c models.Course) string {
	var tags []string
	if c.Popular {
		tags = append(tags, "popular")
	}
	if c.IsNew {
		tags = append(tags, "new")
	}
	if c.Trending {
		tags = append(tags, "trending")
	}
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ",")
}
