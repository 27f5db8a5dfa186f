package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/photofeed/internal/content"
)

func newMockCmd(opts *options) *cobra.Command {
	var images, videos int
	var seed int64
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Print the generated mock feed as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.cfg.Content
			if cmd.Flags().Changed("images") {
				c.Images = images
			}
			if cmd.Flags().Changed("videos") {
				c.Videos = videos
			}
			if cmd.Flags().Changed("seed") {
				c.Seed = seed
			}
			feed := content.NewFeed(c.Images, c.Videos, c.Seed, time.Now())
			return feed.WriteYAML(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&images, "images", 0, "number of images (default from config)")
	cmd.Flags().IntVar(&videos, "videos", 0, "number of videos (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for video stats (default from config)")
	return cmd
}
