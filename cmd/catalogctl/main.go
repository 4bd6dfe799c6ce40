// catalogctl queries the EduLearn catalog from the command line.
//
// Usage:
//
//	catalogctl courses -q python --level Beginner
//	catalogctl courses --bucket trending -o json
//	catalogctl course 3
//	catalogctl tutorials --category "Data Science"
//	catalogctl categories tutorials
//	catalogctl export courses --file courses.csv
//	catalogctl seed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version     = "dev"
	outputFmt   string
	catalogFile string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Query the EduLearn course catalog",
		Long: `catalogctl reads the same catalog the EduLearn API serves.

It applies the listing filters offline, prints course details, exports CSV
and seeds a PostgreSQL database from the embedded fixtures.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table", "Output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog-file", "", "Read the catalog from a YAML file instead of the embedded fixtures")

	// Add subcommands
	rootCmd.AddCommand(coursesCmd())
	rootCmd.AddCommand(courseCmd())
	rootCmd.AddCommand(tutorialsCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(seedCmd())

	return rootCmd
}
