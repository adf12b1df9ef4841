package pexels

import (
	"fmt"
	"strings"
)

// ConsoleFormatter provides console output formatting for search results
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatPhotoPage formats one page of photo results for console display
func (f *ConsoleFormatter) FormatPhotoPage(page *PhotoPage) string {
	if len(page.Photos) == 0 {
		return "No photos found\n"
	}

	var sb strings.Builder

	sb.WriteString("\nPhoto")
	if len(page.Photos) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d of %d total, page %d):\n\n", len(page.Photos), page.TotalResults, page.Page)

	for i := range page.Photos {
		isLast := i == len(page.Photos)-1
		f.formatPhoto(&sb, &page.Photos[i], isLast)
	}

	if page.HasMore() {
		sb.WriteString("\nMore results available on the next page.\n")
	}
	return sb.String()
}

func (f *ConsoleFormatter) formatPhoto(sb *strings.Builder, photo *Photo, isLast bool) {
	prefix := "├"
	indent := "│   "
	if isLast {
		prefix = "╰"
		indent = "    "
	}

	title := photo.Alt
	if title == "" {
		title = photo.URL
	}
	fmt.Fprintf(sb, "%s── #%d %s\n", prefix, photo.ID, title)
	fmt.Fprintf(sb, "%sBy: %s (%s)\n", indent, photo.Photographer, photo.PhotographerURL)
	fmt.Fprintf(sb, "%s%dx%d | avg color %s\n", indent, photo.Width, photo.Height, photo.AvgColor)
	fmt.Fprintf(sb, "%sOriginal: %s\n", indent, photo.Src.Original)
}

// FormatPhoto formats a single photo with its full size map
func (f *ConsoleFormatter) FormatPhoto(photo *Photo) string {
	var sb strings.Builder

	title := photo.Alt
	if title == "" {
		title = photo.URL
	}
	fmt.Fprintf(&sb, "\nPhoto #%d: %s\n", photo.ID, title)
	fmt.Fprintf(&sb, "Photographer: %s (%s)\n", photo.Photographer, photo.PhotographerURL)
	fmt.Fprintf(&sb, "Dimensions: %dx%d\n", photo.Width, photo.Height)
	fmt.Fprintf(&sb, "Average color: %s\n", photo.AvgColor)

	sb.WriteString("Sizes:\n")
	for _, size := range []PhotoSize{
		PhotoSizeOriginal, PhotoSizeLarge2X, PhotoSizeLarge, PhotoSizeMedium,
		PhotoSizeSmall, PhotoSizePortrait, PhotoSizeLandscape, PhotoSizeTiny,
	} {
		fmt.Fprintf(&sb, "  %-10s %s\n", size, photo.Src.URLFor(size))
	}
	return sb.String()
}

// FormatVideoPage formats one page of video results for console display
func (f *ConsoleFormatter) FormatVideoPage(page *VideoPage) string {
	if len(page.Videos) == 0 {
		return "No videos found\n"
	}

	var sb strings.Builder

	sb.WriteString("\nVideo")
	if len(page.Videos) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d of %d total, page %d):\n\n", len(page.Videos), page.TotalResults, page.Page)

	for i := range page.Videos {
		isLast := i == len(page.Videos)-1
		f.formatVideo(&sb, &page.Videos[i], isLast)
	}

	if page.HasMore() {
		sb.WriteString("\nMore results available on the next page.\n")
	}
	return sb.String()
}

func (f *ConsoleFormatter) formatVideo(sb *strings.Builder, video *Video, isLast bool) {
	prefix := "├"
	indent := "│   "
	if isLast {
		prefix = "╰"
		indent = "    "
	}

	fmt.Fprintf(sb, "%s── #%d %s\n", prefix, video.ID, video.URL)
	fmt.Fprintf(sb, "%sBy: %s | %s | %dx%d\n", indent, video.User.Name, formatDuration(video.Duration), video.Width, video.Height)
	if best, ok := video.BestFile(); ok {
		fmt.Fprintf(sb, "%sBest file: %s %dx%d %s\n", indent, best.Quality, best.Width, best.Height, best.Link)
	}
}

// FormatVideo formats a single video with its file list
func (f *ConsoleFormatter) FormatVideo(video *Video) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nVideo #%d: %s\n", video.ID, video.URL)
	fmt.Fprintf(&sb, "By: %s (%s)\n", video.User.Name, video.User.URL)
	fmt.Fprintf(&sb, "Duration: %s | Dimensions: %dx%d\n", formatDuration(video.Duration), video.Width, video.Height)
	if video.FullRes != nil {
		fmt.Fprintf(&sb, "Full resolution: %s\n", *video.FullRes)
	}
	if len(video.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(video.Tags, ", "))
	}

	if len(video.VideoFiles) > 0 {
		sb.WriteString("Files:\n")
		for _, file := range video.VideoFiles {
			fmt.Fprintf(&sb, "  %-4s %-10s %4dx%-4d %s\n", file.Quality, file.FileType, file.Width, file.Height, file.Link)
		}
	}
	return sb.String()
}

// FormatCollectionPage formats one page of collections for console display
func (f *ConsoleFormatter) FormatCollectionPage(page *CollectionPage) string {
	if len(page.Collections) == 0 {
		return "No collections found\n"
	}

	var sb strings.Builder

	sb.WriteString("\nCollection")
	if len(page.Collections) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d of %d total, page %d):\n\n", len(page.Collections), page.TotalResults, page.Page)

	for i, col := range page.Collections {
		isLast := i == len(page.Collections)-1
		prefix := "├"
		indent := "│   "
		if isLast {
			prefix = "╰"
			indent = "    "
		}

		fmt.Fprintf(&sb, "%s── %s [%s]\n", prefix, col.Title, col.ID)
		if col.Description != nil && *col.Description != "" {
			fmt.Fprintf(&sb, "%s%s\n", indent, *col.Description)
		}
		fmt.Fprintf(&sb, "%s%d media (%d photos, %d videos)\n", indent, col.MediaCount, col.PhotosCount, col.VideosCount)
	}

	if page.HasMore() {
		sb.WriteString("\nMore results available on the next page.\n")
	}
	return sb.String()
}

// FormatMediaPage formats the mixed media of a collection for console
// display, preserving the API's order
func (f *ConsoleFormatter) FormatMediaPage(page *MediaPage) string {
	if len(page.Media) == 0 {
		return "No media found in collection\n"
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "\nCollection %s media (%d of %d total, page %d):\n\n", page.ID, len(page.Media), page.TotalResults, page.Page)

	for i, item := range page.Media {
		isLast := i == len(page.Media)-1
		if photo, ok := item.Photo(); ok {
			f.formatPhoto(&sb, photo, isLast)
		} else if video, ok := item.Video(); ok {
			f.formatVideo(&sb, video, isLast)
		}
	}

	if page.HasMore() {
		sb.WriteString("\nMore results available on the next page.\n")
	}
	return sb.String()
}

func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
}
