package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"edulearn_backend/catalog"
	"edulearn_backend/models"
)

// loadCatalogFunc is overridden in tests.
var loadCatalogFunc = defaultLoadCatalog

func defaultLoadCatalog() (*catalog.Catalog, error) {
	if catalogFile != "" {
		return catalog.LoadFile(catalogFile)
	}
	return catalog.LoadEmbedded()
}

func addFilterFlags(cmd *cobra.Command, req *models.FilterRequest) {
	cmd.Flags().StringVarP(&req.Query, "query", "q", "", "Case-insensitive text to find in title or description")
	cmd.Flags().StringVar(&req.Level, "level", models.All, "Level: Beginner, Intermediate, Advanced or all")
	cmd.Flags().StringVar(&req.Category, "category", models.All, "Category or all")
	cmd.Flags().StringVar(&req.Bucket, "bucket", models.All, "Bucket: popular, new, trending, featured or all")
}

func coursesCmd() *cobra.Command {
	var req models.FilterRequest

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List courses matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalogFunc()
			if err != nil {
				return err
			}
			courses := cat.SearchCourses(catalog.CriteriaFrom(req), catalog.BucketFrom(req))
			return outputResult(cmd.OutOrStdout(), CourseListResult{
				Filters: filterResult(req),
				Courses: courses,
				Total:   len(courses),
			}, outputFmt)
		},
	}
	addFilterFlags(cmd, &req)
	return cmd
}

func courseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "course ID",
		Short: "Show a course with its lesson outline and related courses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid course id %q", args[0])
			}
			cat, err := loadCatalogFunc()
			if err != nil {
				return err
			}
			course, ok := cat.CourseByID(id)
			if !ok {
				return fmt.Errorf("course %d not found", id)
			}
			return outputResult(cmd.OutOrStdout(), CourseDetailResult{
				Course:  course,
				Lessons: catalog.LessonOutline(course),
				Related: cat.RelatedCourses(id),
			}, outputFmt)
		},
	}
}

func tutorialsCmd() *cobra.Command {
	var req models.FilterRequest

	cmd := &cobra.Command{
		Use:   "tutorials",
		Short: "List tutorials matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalogFunc()
			if err != nil {
				return err
			}
			tutorials := cat.SearchTutorials(catalog.CriteriaFrom(req), catalog.BucketFrom(req))
			return outputResult(cmd.OutOrStdout(), TutorialListResult{
				Filters:   filterResult(req),
				Tutorials: tutorials,
				Total:     len(tutorials),
			}, outputFmt)
		},
	}
	addFilterFlags(cmd, &req)
	return cmd
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "categories [courses|tutorials]",
		Short:     "List the category vocabulary",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"courses", "tutorials"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalogFunc()
			if err != nil {
				return err
			}
			kind := "courses"
			if len(args) == 1 {
				kind = args[0]
			}
			categories := cat.CourseCategories()
			if kind == "tutorials" {
				categories = cat.TutorialCategories()
			}
			return outputResult(cmd.OutOrStdout(), CategoriesResult{Kind: kind, Categories: categories}, outputFmt)
		},
	}
}

func filterResult(req models.FilterRequest) models.FilterResponse {
	criteria := catalog.CriteriaFrom(req)
	return models.FilterResponse{
		Query:    criteria.Query,
		Level:    criteria.Level,
		Category: criteria.Category,
		Bucket:   string(catalog.BucketFrom(req)),
	}
}
