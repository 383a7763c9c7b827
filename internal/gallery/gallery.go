// Package gallery serves the venue's image gallery. The set is static;
// the venue swaps photos by editing this list, not through the datastore.
package gallery

const CategoryAll = "All"

type Image struct {
	ID       int    `json:"id"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Title    string `json:"title"`
}

func Categories() []string {
	return []string{CategoryAll, "Wedding", "Reception", "Corporate", "Garden"}
}

func Images() []Image {
	return []Image{
		{ID: 1, URL: "https://images.pexels.com/photos/1444442/pexels-photo-1444442.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "Wedding", Title: "Beautiful Wedding Setup"},
		{ID: 2, URL: "https://images.pexels.com/photos/1024993/pexels-photo-1024993.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "Wedding", Title: "Wedding Ceremony"},
		{ID: 3, URL: "https://images.pexels.com/photos/2306281/pexels-photo-2306281.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "Reception", Title: "Reception Hall"},
		{ID: 4, URL: "https://images.pexels.com/photos/1395967/pexels-photo-1395967.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "Reception", Title: "Evening Reception"},
		{ID: 5, URL: "https://images.pexels.com/photos/2747446/pexels-photo-2747446.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "Corporate", Title: "Corporate Event"},
		{ID: 6, URL: "https://images.pexels.com/photos/1540406/pexels-photo-1540406.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "Corporate", Title: "Business Meeting"},
		{ID: 7, URL: "https://images.pexels.com/photos/169198/pexels-photo-169198.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "Garden", Title: "Garden Area"},
		{ID: 8, URL: "https://images.pexels.com/photos/587741/pexels-photo-587741.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "Garden", Title: "Outdoor Space"},
		{ID: 9, URL: "https://images.pexels.com/photos/2306277/pexels-photo-2306277.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "Wedding", Title: "Wedding Decoration"},
		{ID: 10, URL: "https://images.pexels.com/photos/1616113/pexels-photo-1616113.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "Reception", Title: "Reception Venue"},
		{ID: 11, URL: "https://images.pexels.com/photos/1024960/pexels-photo-1024960.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "Wedding", Title: "Elegant Wedding"},
		{ID: 12, URL: "https://images.pexels.com/photos/2788792/pexels-photo-2788792.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "Garden", Title: "Garden View"},
	}
}

// Filter returns the images in a category; CategoryAll or an empty
// category returns the full set.
func Filter(category string) []Image {
	images := Images()
	if category == "" || category == CategoryAll {
		return images
	}
	filtered := make([]Image, 0, len(images))
	for _, img := range images {
		if img.Category == category {
			filtered = append(filtered, img)
		}
	}
	return filtered
}
