package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"edulearn_backend/models"
)

// Keep header order in sync with the row builders below.
var (
	courseHeader   = []string{"ID", "TITLE", "DESCRIPTION", "CATEGORY", "LEVEL", "LESSONS", "DURATION", "POPULAR", "NEW", "TRENDING"}
	tutorialHeader = []string{"ID", "TITLE", "DESCRIPTION", "CATEGORY", "LEVEL", "DURATION", "AUTHOR", "DATE", "IMAGE", "FEATURED"}
)

func exportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:       "export [courses|tutorials]",
		Short:     "Export the catalog as CSV",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"courses", "tutorials"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalogFunc()
			if err != nil {
				return err
			}

			write := func(w io.Writer) error { return writeCoursesCSV(w, cat.Courses()) }
			if args[0] == "tutorials" {
				write = func(w io.Writer) error { return writeTutorialsCSV(w, cat.Tutorials()) }
			}

			if file == "" {
				return write(cmd.OutOrStdout())
			}
			return writeFile(file, write)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Write to this file instead of stdout")
	return cmd
}

// writeFile creates path and reports write and close failures.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeCoursesCSV(w io.Writer, courses []models.Course) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(courseHeader); err != nil {
		return err
	}
	for _, c := range courses {
		row := []string{
			strconv.Itoa(c.ID),
			c.Title,
			c.Description,
			c.Category,
			string(c.Level),
			strconv.Itoa(c.Lessons),
			c.Duration,
			strconv.FormatBool(c.Popular),
			strconv.FormatBool(c.IsNew),
			strconv.FormatBool(c.Trending),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTutorialsCSV(w io.Writer, tutorials []models.Tutorial) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tutorialHeader); err != nil {
		return err
	}
	for _, t := range tutorials {
		row := []string{
			strconv.Itoa(t.ID),
			t.Title,
			t.Description,
			t.Category,
			string(t.Level),
			t.Duration,
			t.Author,
			t.Date.String(),
			t.Image,
			strconv.FormatBool(t.Featured),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
