package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/pexplore/pexels"
)

var (
	collectionIDFlag string
	typeFlag         string
	sortFlag         string
)

// searchCollectionsCmd represents the search-collections command
var searchCollectionsCmd = &cobra.Command{
	Use:     "search-collections",
	Short:   "List your collections",
	PreRunE: initializeApp,
	RunE:    runSearchCollections,
}

// featuredCollectionsCmd represents the featured-collections command
var featuredCollectionsCmd = &cobra.Command{
	Use:     "featured-collections",
	Short:   "Browse the featured collections",
	PreRunE: initializeApp,
	RunE:    runFeaturedCollections,
}

// searchMediaCmd represents the search-media command
var searchMediaCmd = &cobra.Command{
	Use:   "search-media",
	Short: "List the media (photos and videos) within a collection",
	Long: `List all media items within a single collection. Each item is either a
photo or a video; use --type to narrow to one kind and --sort to order
the results.`,
	PreRunE: initializeApp,
	RunE:    runSearchMedia,
}

func init() {
	rootCmd.AddCommand(searchCollectionsCmd)
	rootCmd.AddCommand(featuredCollectionsCmd)
	rootCmd.AddCommand(searchMediaCmd)

	searchCollectionsCmd.Flags().IntVar(&perPageFlag, "per-page", 0, "results per page (1-80)")
	searchCollectionsCmd.Flags().IntVar(&pageFlag, "page", 1, "page number")

	featuredCollectionsCmd.Flags().IntVar(&perPageFlag, "per-page", 0, "results per page (1-80)")
	featuredCollectionsCmd.Flags().IntVar(&pageFlag, "page", 1, "page number")

	searchMediaCmd.Flags().StringVar(&collectionIDFlag, "id", "", "collection ID (required)")
	searchMediaCmd.Flags().StringVar(&typeFlag, "type", "", "narrow to photos or videos")
	searchMediaCmd.Flags().StringVar(&sortFlag, "sort", "", "sort order: asc or desc")
	searchMediaCmd.Flags().IntVar(&perPageFlag, "per-page", 0, "results per page (1-80)")
	searchMediaCmd.Flags().IntVar(&pageFlag, "page", 1, "page number")
	searchMediaCmd.MarkFlagRequired("id")
}

func runSearchCollections(cmd *cobra.Command, args []string) error {
	page, err := client.SearchCollections(context.Background(), pexels.CollectionsParams{
		Page:    pageFlag,
		PerPage: perPageOrDefault(),
	})
	if err != nil {
		return err
	}

	return printResult(page, func() string { return formatter.FormatCollectionPage(page) })
}

func runFeaturedCollections(cmd *cobra.Command, args []string) error {
	page, err := client.FeaturedCollections(context.Background(), pexels.CollectionsParams{
		Page:    pageFlag,
		PerPage: perPageOrDefault(),
	})
	if err != nil {
		return err
	}

	return printResult(page, func() string { return formatter.FormatCollectionPage(page) })
}

func runSearchMedia(cmd *cobra.Command, args []string) error {
	params := pexels.CollectionMediaParams{
		Page:    pageFlag,
		PerPage: perPageOrDefault(),
	}

	var err error
	if typeFlag != "" {
		if params.Type, err = pexels.ParseMediaType(typeFlag); err != nil {
			return err
		}
	}
	if sortFlag != "" {
		if params.Sort, err = pexels.ParseMediaSort(sortFlag); err != nil {
			return err
		}
	}

	page, err := client.CollectionMedia(context.Background(), collectionIDFlag, params)
	if err != nil {
		return err
	}

	return printResult(page, func() string { return formatter.FormatMediaPage(page) })
}
