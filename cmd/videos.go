package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/pexplore/pexels"
)

var (
	minWidthFlag    int
	minHeightFlag   int
	minDurationFlag int
	maxDurationFlag int
)

// searchVideosCmd represents the search-videos command
var searchVideosCmd = &cobra.Command{
	Use:     "search-videos",
	Short:   "Search for videos matching a query",
	PreRunE: initializeApp,
	RunE:    runSearchVideos,
}

// popularVideosCmd represents the popular-videos command
var popularVideosCmd = &cobra.Command{
	Use:     "popular-videos",
	Short:   "Browse the popular video feed",
	PreRunE: initializeApp,
	RunE:    runPopularVideos,
}

// getVideoCmd represents the get-video command
var getVideoCmd = &cobra.Command{
	Use:     "get-video",
	Short:   "Get a single video by ID",
	PreRunE: initializeApp,
	RunE:    runGetVideo,
}

func init() {
	rootCmd.AddCommand(searchVideosCmd)
	rootCmd.AddCommand(popularVideosCmd)
	rootCmd.AddCommand(getVideoCmd)

	searchVideosCmd.Flags().StringVarP(&queryFlag, "query", "q", "", "search query (required)")
	searchVideosCmd.Flags().IntVar(&perPageFlag, "per-page", 0, "results per page (1-80)")
	searchVideosCmd.Flags().IntVar(&pageFlag, "page", 1, "page number")
	searchVideosCmd.Flags().StringVar(&orientationFlag, "orientation", "", "landscape, portrait or square")
	searchVideosCmd.Flags().StringVar(&sizeFlag, "size", "", "minimum size: large, medium or small")
	searchVideosCmd.Flags().StringVar(&localeFlag, "locale", "", "search locale (e.g. en-US)")
	searchVideosCmd.Flags().StringVarP(&filterFlag, "filter", "f", "", "client-side filter expression")
	searchVideosCmd.MarkFlagRequired("query")

	popularVideosCmd.Flags().IntVar(&minWidthFlag, "min-width", 0, "minimum video width in pixels")
	popularVideosCmd.Flags().IntVar(&minHeightFlag, "min-height", 0, "minimum video height in pixels")
	popularVideosCmd.Flags().IntVar(&minDurationFlag, "min-duration", 0, "minimum duration in seconds")
	popularVideosCmd.Flags().IntVar(&maxDurationFlag, "max-duration", 0, "maximum duration in seconds")
	popularVideosCmd.Flags().IntVar(&perPageFlag, "per-page", 0, "results per page (1-80)")
	popularVideosCmd.Flags().IntVar(&pageFlag, "page", 1, "page number")
	popularVideosCmd.Flags().StringVarP(&filterFlag, "filter", "f", "", "client-side filter expression")

	getVideoCmd.Flags().IntVar(&idFlag, "id", 0, "video ID (required)")
	getVideoCmd.MarkFlagRequired("id")
}

func runSearchVideos(cmd *cobra.Command, args []string) error {
	params := pexels.SearchVideosParams{
		Query:   queryFlag,
		Page:    pageFlag,
		PerPage: perPageOrDefault(),
	}

	var err error
	if orientationFlag != "" {
		if params.Orientation, err = pexels.ParseOrientation(orientationFlag); err != nil {
			return err
		}
	}
	if sizeFlag != "" {
		if params.Size, err = pexels.ParseSize(sizeFlag); err != nil {
			return err
		}
	}
	if localeFlag != "" {
		if params.Locale, err = pexels.ParseLocale(localeFlag); err != nil {
			return err
		}
	}

	flt, err := compileFilter()
	if err != nil {
		return err
	}

	logger.Info().Str("query", params.Query).Msg("Searching videos")

	page, err := client.SearchVideos(context.Background(), params)
	if err != nil {
		return err
	}

	if page.Videos, err = flt.Videos(page.Videos); err != nil {
		return err
	}

	return printResult(page, func() string { return formatter.FormatVideoPage(page) })
}

func runPopularVideos(cmd *cobra.Command, args []string) error {
	flt, err := compileFilter()
	if err != nil {
		return err
	}

	page, err := client.PopularVideos(context.Background(), pexels.PopularVideosParams{
		MinWidth:    minWidthFlag,
		MinHeight:   minHeightFlag,
		MinDuration: minDurationFlag,
		MaxDuration: maxDurationFlag,
		Page:        pageFlag,
		PerPage:     perPageOrDefault(),
	})
	if err != nil {
		return err
	}

	if page.Videos, err = flt.Videos(page.Videos); err != nil {
		return err
	}

	return printResult(page, func() string { return formatter.FormatVideoPage(page) })
}

func runGetVideo(cmd *cobra.Command, args []string) error {
	video, err := client.GetVideo(context.Background(), idFlag)
	if err != nil {
		return err
	}

	return printResult(video, func() string { return formatter.FormatVideo(video) })
}
