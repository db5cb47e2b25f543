// Package menu declares the header's navigation entries: the desktop tabs,
// the profile dropdown and the compact (mobile) menu.
package menu

import (
	"strings"

	"github.com/linkup-social/linkup-header/internal/route"
)

// Item identifiers.
const (
	Home    = "home"
	Video   = "video"
	Friends = "friends"
	Profile = "profile"
	Logout  = "logout"
)

// Item represents a selectable header entry. Items without a Route trigger
// an action instead of a navigation.
type Item struct {
	ID    string
	Label string
	Route string
	Key   string
}

// Navigates reports whether picking the item pushes a route.
func (i Item) Navigates() bool {
	return i.Route != ""
}

// DesktopTabs returns the centred tab strip.
func DesktopTabs() []Item {
	return []Item{
		{ID: Home, Label: "home", Route: route.Home, Key: "1"},
		{ID: Video, Label: "video", Route: route.VideoFeed, Key: "2"},
		{ID: Friends, Label: "friends", Route: route.FriendsList, Key: "3"},
	}
}

// ProfileItems returns the avatar dropdown entries for userID.
func ProfileItems(userID string) []Item {
	return []Item{
		profileItem(userID),
		{ID: Logout, Label: "Logout"},
	}
}

// MobileItems returns the compact menu: every tab plus the profile entries.
func MobileItems(userID string) []Item {
	items := []Item{
		{ID: Home, Label: "Home", Route: route.Home},
		{ID: Video, Label: "Video", Route: route.VideoFeed},
		{ID: Friends, Label: "Friends", Route: route.FriendsList},
	}
	return append(items, ProfileItems(userID)...)
}

func profileItem(userID string) Item {
	item := Item{ID: Profile, Label: "Profile", Key: "p"}
	if strings.TrimSpace(userID) != "" {
		item.Route = route.UserProfile(userID)
	}
	return item
}

// Find returns the item with id.
func Find(items []Item, id string) (Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// ByKey returns the item bound to key.
func ByKey(items []Item, key string) (Item, bool) {
	if key == "" {
		return Item{}, false
	}
	for _, item := range items {
		if item.Key == key {
			return item, true
		}
	}
	return Item{}, false
}

// ActiveTab returns the id of the tab whose route is path, or "".
func ActiveTab(path string) string {
	resolved := route.Resolve(path)
	for _, tab := range DesktopTabs() {
		if tab.Route == resolved {
			return tab.ID
		}
	}
	return ""
}
