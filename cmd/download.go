package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/pexplore/pexels"
)

var (
	downloadPhotoID int
	downloadVideoID int
	downloadSize    string
	downloadOutput  string
)

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download a photo or video file to disk",
	Long: `Download the media file behind a photo or video ID.

For photos, --size selects one of the pre-rendered sizes (original,
large2x, large, medium, small, portrait, landscape, tiny). For videos,
the highest-resolution file is chosen.`,
	PreRunE: initializeApp,
	RunE:    runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().IntVar(&downloadPhotoID, "photo", 0, "photo ID to download")
	downloadCmd.Flags().IntVar(&downloadVideoID, "video", 0, "video ID to download")
	downloadCmd.Flags().StringVar(&downloadSize, "size", "", "photo size to download (default original)")
	downloadCmd.Flags().StringVarP(&downloadOutput, "output", "o", "", "output file path")
	downloadCmd.MarkFlagsMutuallyExclusive("photo", "video")
	downloadCmd.MarkFlagsOneRequired("photo", "video")
}

func runDownload(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var fileURL, outPath string

	switch {
	case downloadPhotoID > 0:
		photo, err := client.GetPhoto(ctx, downloadPhotoID)
		if err != nil {
			return err
		}

		size := pexels.PhotoSizeOriginal
		if downloadSize != "" {
			if size, err = pexels.ParsePhotoSize(downloadSize); err != nil {
				return err
			}
		}

		fileURL = photo.Src.URLFor(size)
		outPath = fmt.Sprintf("pexels-photo-%d.jpg", photo.ID)

	default:
		video, err := client.GetVideo(ctx, downloadVideoID)
		if err != nil {
			return err
		}

		best, ok := video.BestFile()
		if !ok {
			return fmt.Errorf("video %d has no downloadable files", video.ID)
		}

		fileURL = best.Link
		outPath = fmt.Sprintf("pexels-video-%d.mp4", video.ID)
	}

	if downloadOutput != "" {
		outPath = downloadOutput
	}

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	n, err := client.Download(ctx, fileURL, file)
	if err != nil {
		return err
	}

	logger.Info().Str("path", outPath).Int64("bytes", n).Msg("Download complete")
	fmt.Printf("Downloaded %s (%d bytes)\n", outPath, n)
	return nil
}
