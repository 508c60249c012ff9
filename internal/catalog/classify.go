package catalog

import (
	"strings"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// Checked in order; the first category with a matching keyword wins.
var categoryKeywords = []struct {
	category models.Category
	keywords []string
}{
	{models.CategoryAccessories, []string{"keyboard", "mouse", "accessory"}},
	{models.CategoryAudio, []string{"earphone", "headphone", "audio"}},
	{models.CategoryComputers, []string{"laptop", "desktop", "computer"}},
	{models.CategoryMobile, []string{"mobile", "phone", "smartphone"}},
	{models.CategoryGaming, []string{"game", "gaming"}},
	{models.CategoryNetworking, []string{"wifi", "network", "router"}},
	{models.CategoryStorage, []string{"flash", "memory", "storage", "hdd"}},
}

// Classify derives a product category from its name and description.
// Products matching no keyword fall back to electronics.
func Classify(name, description string) models.Category {
	text := strings.ToLower(name + " " + description)
	for _, ck := range categoryKeywords {
		for _, kw := range ck.keywords {
			if strings.Contains(text, kw) {
				return ck.category
			}
		}
	}
	return models.CategoryElectronics
}
