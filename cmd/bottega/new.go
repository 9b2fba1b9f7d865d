package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivoiuliano/bottega/content"
	"github.com/ivoiuliano/bottega/scaffold"
)

var (
	newLocales     []string
	newDescription string
	newDate        string
)

var newPostCmd = &cobra.Command{
	Use:   "new-post <title>",
	Short: "Create a Markdown post in every locale (or the ones given)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSite()
		if err != nil {
			return err
		}
		title := args[0]
		slug := content.Slugify(title)
		if slug == "" {
			return fmt.Errorf("title %q gives an empty slug", title)
		}

		date := time.Now()
		if newDate != "" {
			if date, err = time.Parse(content.DateLayout, newDate); err != nil {
				return fmt.Errorf("--date: %w", err)
			}
		}

		locales := newLocales
		if len(locales) == 0 {
			locales = s.Locales.Codes
		}
		for _, locale := range locales {
			if err := s.Locales.Validate(locale); err != nil {
				return err
			}
		}

		for _, locale := range locales {
			path, err := runNewPost(cfg.ContentDir, scaffold.PostData{
				Title:       title,
				Description: newDescription,
				Date:        date,
				Locale:      locale,
				Slug:        slug,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  created %s\n", path)
		}
		return nil
	},
}

func init() {
	newPostCmd.Flags().StringSliceVarP(&newLocales, "locale", "l", nil, "locales to create (default all)")
	newPostCmd.Flags().StringVarP(&newDescription, "description", "d", "", "post description")
	newPostCmd.Flags().StringVar(&newDate, "date", "", "publication date YYYY-MM-DD (default today)")
	rootCmd.AddCommand(newPostCmd)
}

func runNewPost(contentDir string, data scaffold.PostData) (string, error) {
	dir := filepath.Join(contentDir, data.Locale)
	path := filepath.Join(dir, data.Slug+".md")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := scaffold.WritePost(f, data); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
