package mapview

import "github.com/nightowldevx/lakbayregion8/internal/domain"

// CategoryIcons is keyed by every domain.Category.
var CategoryIcons = map[domain.Category]string{
	domain.Beach:     "🏖️",
	domain.Nature:    "🌿",
	domain.Heritage:  "🏛️",
	domain.Adventure: "🧗",
}

// SidebarGroup is one collapsible category section of the map sidebar.
type SidebarGroup struct {
	Category domain.Category      `json:"category"`
	Icon     string               `json:"icon"`
	Items    []domain.Destination `json:"items"`
}

// Sidebar groups dests by category in domain.Categories order. Every
// category gets a group, empty or not; items keep their input order.
func Sidebar(dests []domain.Destination) []SidebarGroup {
	groups := make([]SidebarGroup, len(domain.Categories))
	index := make(map[domain.Category]int, len(domain.Categories))
	for i, c := range domain.Categories {
		groups[i] = SidebarGroup{Category: c, Icon: CategoryIcons[c], Items: []domain.Destination{}}
		index[c] = i
	}
	for _, d := range dests {
		if i, ok := index[d.Category]; ok {
			groups[i].Items = append(groups[i].Items, d)
		}
	}
	return groups
}
