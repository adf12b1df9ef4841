package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/pexplore/pexels"
)

// searchPhotosCmd represents the search-photos command
var searchPhotosCmd = &cobra.Command{
	Use:   "search-photos",
	Short: "Search for photos matching a query",
	Long: `Search the Pexels photo library. Results can be narrowed with
orientation, size, color and locale filters, and post-filtered
client-side with an expression via --filter, e.g.:

  pexplore search-photos --query nature --per-page 10 --filter 'Photo.Width > 3000'`,
	PreRunE: initializeApp,
	RunE:    runSearchPhotos,
}

// curatedPhotosCmd represents the curated-photos command
var curatedPhotosCmd = &cobra.Command{
	Use:     "curated-photos",
	Short:   "Browse the curated photo feed",
	PreRunE: initializeApp,
	RunE:    runCuratedPhotos,
}

// getPhotoCmd represents the get-photo command
var getPhotoCmd = &cobra.Command{
	Use:     "get-photo",
	Short:   "Get a single photo by ID",
	PreRunE: initializeApp,
	RunE:    runGetPhoto,
}

func init() {
	rootCmd.AddCommand(searchPhotosCmd)
	rootCmd.AddCommand(curatedPhotosCmd)
	rootCmd.AddCommand(getPhotoCmd)

	searchPhotosCmd.Flags().StringVarP(&queryFlag, "query", "q", "", "search query (required)")
	searchPhotosCmd.Flags().IntVar(&perPageFlag, "per-page", 0, "results per page (1-80)")
	searchPhotosCmd.Flags().IntVar(&pageFlag, "page", 1, "page number")
	searchPhotosCmd.Flags().StringVar(&orientationFlag, "orientation", "", "landscape, portrait or square")
	searchPhotosCmd.Flags().StringVar(&sizeFlag, "size", "", "minimum size: large, medium or small")
	searchPhotosCmd.Flags().StringVar(&colorFlag, "color", "", "dominant color (name or #rrggbb)")
	searchPhotosCmd.Flags().StringVar(&localeFlag, "locale", "", "search locale (e.g. en-US)")
	searchPhotosCmd.Flags().StringVarP(&filterFlag, "filter", "f", "", "client-side filter expression")
	searchPhotosCmd.MarkFlagRequired("query")

	curatedPhotosCmd.Flags().IntVar(&perPageFlag, "per-page", 0, "results per page (1-80)")
	curatedPhotosCmd.Flags().IntVar(&pageFlag, "page", 1, "page number")
	curatedPhotosCmd.Flags().StringVarP(&filterFlag, "filter", "f", "", "client-side filter expression")

	getPhotoCmd.Flags().IntVar(&idFlag, "id", 0, "photo ID (required)")
	getPhotoCmd.MarkFlagRequired("id")
}

func runSearchPhotos(cmd *cobra.Command, args []string) error {
	params := pexels.SearchPhotosParams{
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
	if colorFlag != "" {
		if params.Color, err = pexels.ParseColor(colorFlag); err != nil {
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

	logger.Info().Str("query", params.Query).Msg("Searching photos")

	page, err := client.SearchPhotos(context.Background(), params)
	if err != nil {
		return err
	}

	if page.Photos, err = flt.Photos(page.Photos); err != nil {
		return err
	}

	return printResult(page, func() string { return formatter.FormatPhotoPage(page) })
}

func runCuratedPhotos(cmd *cobra.Command, args []string) error {
	flt, err := compileFilter()
	if err != nil {
		return err
	}

	page, err := client.CuratedPhotos(context.Background(), pexels.CuratedPhotosParams{
		Page:    pageFlag,
		PerPage: perPageOrDefault(),
	})
	if err != nil {
		return err
	}

	if page.Photos, err = flt.Photos(page.Photos); err != nil {
		return err
	}

	return printResult(page, func() string { return formatter.FormatPhotoPage(page) })
}

func runGetPhoto(cmd *cobra.Command, args []string) error {
	photo, err := client.GetPhoto(context.Background(), idFlag)
	if err != nil {
		return err
	}

	return printResult(photo, func() string { return formatter.FormatPhoto(photo) })
}
