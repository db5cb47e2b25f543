package menu

import "testing"

func TestDesktopTabsKeys(t *testing.T) {
	tabs := DesktopTabs()
	if len(tabs) != 3 {
		t.Fatalf("expected 3 tabs, got %d", len(tabs))
	}
	item, ok := ByKey(tabs, "2")
	if !ok || item.ID != Video || item.Route != "/video-feed" {
		t.Fatalf("unexpected tab for key 2: %#v", item)
	}
	if _, ok := ByKey(tabs, ""); ok {
		t.Fatal("expected empty key to match nothing")
	}
}

func TestProfileItems(t *testing.T) {
	items := ProfileItems("42")
	profile, ok := Find(items, Profile)
	if !ok || profile.Route != "/user-profile/42" || !profile.Navigates() {
		t.Fatalf("unexpected profile item %#v", profile)
	}
	logout, ok := Find(items, Logout)
	if !ok || logout.Navigates() {
		t.Fatalf("expected logout action, got %#v", logout)
	}
	if anon, _ := Find(ProfileItems(" "), Profile); anon.Navigates() {
		t.Fatalf("expected no profile route without a user, got %#v", anon)
	}
}

func TestMobileItemsIncludeTabsAndProfile(t *testing.T) {
	items := MobileItems("7")
	want := []string{Home, Video, Friends, Profile, Logout}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("item %d: expected %s, got %s", i, id, items[i].ID)
		}
	}
}

func TestActiveTab(t *testing.T) {
	cases := map[string]string{
		"/":                Home,
		"video-feed":       Video,
		"/friends-list/":   Friends,
		"/user-profile/42": "",
		"":                 Home,
	}
	for path, want := range cases {
		if got := ActiveTab(path); got != want {
			t.Fatalf("ActiveTab(%q) = %q, want %q", path, got, want)
		}
	}
}
