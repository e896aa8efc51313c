package main

import (
	"fmt"

	"portfolio-site/internal/repository/static"
	"portfolio-site/pkg/markdown"

	"github.com/spf13/cobra"
)

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect the embedded site content",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Load the embedded content and render every blog post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContentCheck(cmd)
		},
	})
	return cmd
}

func runContentCheck(cmd *cobra.Command) error {
	catalog, err := static.Load()
	if err != nil {
		return fmt.Errorf("content check: %w", err)
	}

	md := markdown.NewRenderer()
	for _, p := range catalog.Posts {
		if _, err := md.Render(p.Content); err != nil {
			return fmt.Errorf("content check: post %q: %w", p.ID, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d projects, %d services, %d posts, %d skill categories\n",
		len(catalog.Projects), len(catalog.Services), len(catalog.Posts), len(catalog.Profile.SkillCategories))
	return nil
}
