package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ivoiuliano/bottega/images"
)

var (
	imagesOut      string
	imagesMaxWidth int
)

var imagesCmd = &cobra.Command{
	Use:   "images <source-dir>",
	Short: "Build colour and greyscale gallery variants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		written, err := images.ProcessDir(args[0], imagesOut, imagesMaxWidth)
		for _, img := range written {
			logger.Info("image",
				zap.String("file", img.Filename),
				zap.String("source", img.OriginalName),
				zap.Int("width", img.Width),
				zap.Int("height", img.Height),
				zap.Int("bytes", img.Size),
				zap.Bool("grey", img.Grey),
			)
		}
		return err
	},
}

func init() {
	imagesCmd.Flags().StringVarP(&imagesOut, "out", "o", "public/images/gallery", "output directory")
	imagesCmd.Flags().IntVar(&imagesMaxWidth, "max-width", images.DefaultMaxWidth, "maximum output width in pixels")
	rootCmd.AddCommand(imagesCmd)
}
