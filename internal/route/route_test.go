package route

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRoutes(t *testing.T) {
	assert.Equal(t, "user-profile/2", ProfileRoute("2"))
	assert.Equal(t, "/user-profile/2", UserProfile("2"))
}

func TestResolve(t *testing.T) {
	cases := map[string]string{
		"":                   "/",
		"user-profile/2":     "/user-profile/2",
		"/video-feed/":       "/video-feed",
		"/a/../friends-list": "/friends-list",
	}
	for in, want := range cases {
		assert.Equal(t, want, Resolve(in), in)
	}
}

func TestRouterMatchesProfileWithParam(t *testing.T) {
	r := NewRouter()
	loc, ok := r.Match(ProfileRoute("abc123"))
	require.True(t, ok)
	assert.Equal(t, "/user-profile/abc123", loc.Path)
	assert.Equal(t, "/user-profile/{id}", loc.Pattern)
	assert.Equal(t, "abc123", loc.Param("id"))

	_, ok = r.Match("/nowhere")
	assert.False(t, ok)
}

func TestRouterNavigateRecordsHistoryAndNotifies(t *testing.T) {
	r := NewRouter()
	var seen []string
	r.OnChange(func(loc Location) { seen = append(seen, loc.Path) })

	require.NoError(t, r.NavigateTo(context.Background(), VideoFeed))
	require.NoError(t, r.NavigateTo(context.Background(), ProfileRoute("7")))

	assert.Equal(t, "/user-profile/7", r.Current().Path)
	history := r.History()
	require.Len(t, history, 2)
	assert.Equal(t, Home, history[0].Path)
	assert.Equal(t, VideoFeed, history[1].Path)
	assert.Equal(t, []string{VideoFeed, "/user-profile/7"}, seen)
}

func TestRouterRejectsUnknownRouteAndCancelledContext(t *testing.T) {
	r := NewRouter()

	err := r.NavigateTo(context.Background(), "/settings")
	var navErr *NavigationError
	require.True(t, errors.As(err, &navErr))
	assert.Equal(t, "/settings", navErr.Route)
	assert.True(t, errors.Is(err, ErrUnknownRoute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = r.NavigateTo(ctx, Home)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, r.History())
}
