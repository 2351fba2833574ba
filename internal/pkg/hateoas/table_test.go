package hateoas

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableCoversEveryRelation(t *testing.T) {
	table := Default("")
	for _, rel := range Relations() {
		found := false
		for _, res := range []Resource{ResourceRoot, ResourceAuth, ResourceRoom, ResourceEmployee, ResourceOffer, ResourceReservation} {
			if table.Has(res, rel) {
				found = true
				break
			}
		}
		assert.Truef(t, found, "relation %s has no route", rel)
	}
}

func TestBuilderUsesRequestHost(t *testing.T) {
	req := httptest.NewRequest("GET", "http://rooms.example.com/api/offers", nil)
	links := Default("").Builder(req).
		Add(ResourceOffer, GetOffer, "abc").
		Self(ResourceOffer, GetAllOffers, "").
		Build()

	assert.Equal(t, "http://rooms.example.com/api/offers/abc", links["GET_OFFER"].Href)
	assert.Equal(t, "Get offer", links["GET_OFFER"].Title)
	assert.Equal(t, "http://rooms.example.com/api/offers", links["self"].Href)
	assert.Empty(t, links["self"].Title)
}

func TestBuilderPrefersConfiguredBaseURL(t *testing.T) {
	req := httptest.NewRequest("GET", "http://internal:8080/api/rooms", nil)
	links := Default("https://bookify.example/").Builder(req).
		Add(ResourceReservation, CreateReservation, "room-1").
		Build()

	assert.Equal(t, "https://bookify.example/api/reservations/room-1", links["CREATE_RESERVATION"].Href)
}

func TestBuilderMarksTemplatedLinks(t *testing.T) {
	links := Default("https://bookify.example").Builder(nil).
		AddTemplate(ResourceReservation, CreateReservation, "{roomId}").
		Add(ResourceReservation, RoomsOccupation, "").
		Build()

	assert.Equal(t, "https://bookify.example/api/reservations/{roomId}", links["CREATE_RESERVATION"].Href)
	assert.True(t, links["CREATE_RESERVATION"].Templated)
	assert.False(t, links["ROOMS_OCCUPATION"].Templated)

	raw, err := json.Marshal(links)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"templated":true`)
	assert.Equal(t, 1, strings.Count(string(raw), "templated"))
}

func TestBuilderHonoursForwardedHeaders(t *testing.T) {
	req := httptest.NewRequest("GET", "http://internal:8080/api", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Header.Set("X-Forwarded-Host", "public.example")

	links := Default("").Builder(req).Self(ResourceRoot, GetMainLinks, "").Build()
	assert.Equal(t, "https://public.example/api", links["self"].Href)
}

func TestBuilderPanicsOnUnknownRoute(t *testing.T) {
	table := NewTable("")
	assert.Panics(t, func() {
		table.Builder(nil).Add(ResourceOffer, GetOffer, "x")
	})
}

func TestCollectionRendersEmptyList(t *testing.T) {
	c := NewCollection[int]("numbers", nil, Links{"self": {Href: "/n"}})
	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_embedded":{"numbers":[]},"_links":{"self":{"href":"/n"}}}`, string(raw))
}
