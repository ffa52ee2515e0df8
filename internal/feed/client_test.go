package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	errorvalues "github.com/limbo/stravadictos/internal/error_values"
	"github.com/limbo/stravadictos/internal/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryJSON(first, last, name string, distance float64, elapsed int64) string {
	return `{"athlete":{"firstname":"` + first + `","lastname":"` + last + `"},` +
		`"name":"` + name + `","distance":` + strconv.FormatFloat(distance, 'f', -1, 64) + `,` +
		`"elapsed_time":` + strconv.FormatInt(elapsed, 10) + `,"sport_type":"Run","type":"Run"}`
}

func TestClubActivitiesPaging(t *testing.T) {
	var gotPages []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		page := r.URL.Query().Get("page")
		gotPages = append(gotPages, page)
		w.Header().Set("Content-Type", "application/json")
		switch page {
		case "1":
			w.Write([]byte("[" + entryJSON("Ana", "Torres", "Morning Run", 5000, 1800) + "," +
				entryJSON("Luis", "Mata", "Evening Ride", 12000, 2400) + "]"))
		case "2":
			w.Write([]byte("[" + entryJSON("Ana", "Torres", "Recovery Walk", 2000, 1700) + "]"))
		default:
			w.Write([]byte("[]"))
		}
	}))
	defer server.Close()

	client := feed.NewClientWithBaseURL(server.URL, 42, "test-token", 2)
	acts, err := client.ClubActivities(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, acts, 3)
	assert.Equal(t, []string{"1", "2"}, gotPages)
	assert.Equal(t, "Ana Torres", acts[0].Athlete)
	assert.Equal(t, "Morning Run", acts[0].Name)
	assert.Equal(t, "Run", acts[0].SportType)
	assert.Equal(t, float64(5000), acts[0].Distance)
	assert.Equal(t, int64(1800), acts[0].ElapsedSecs)
	assert.Equal(t, "Recovery Walk", acts[2].Name)
}

func TestClubActivitiesStopsAtTotal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[" + entryJSON("Ana", "Torres", "One", 1000, 600) + "," +
			entryJSON("Ana", "Torres", "Two", 1000, 600) + "]"))
	}))
	defer server.Close()

	client := feed.NewClientWithBaseURL(server.URL, 42, "test-token", 2)
	acts, err := client.ClubActivities(context.Background(), 3)

	require.NoError(t, err)
	assert.Len(t, acts, 3)
}

func TestClubActivitiesUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := feed.NewClientWithBaseURL(server.URL, 42, "expired", 30)
	_, err := client.ClubActivities(context.Background(), 10)

	assert.ErrorIs(t, err, errorvalues.ErrUnauthorized)
}

func TestClubActivitiesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := feed.NewClientWithBaseURL(server.URL, 42, "test-token", 30)
	_, err := client.ClubActivities(context.Background(), 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClubActivitiesSportTypeFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"athlete":{"firstname":"Ana","lastname":"Torres"},` +
			`"name":"Old Entry","distance":5000,"elapsed_time":1800,"type":"Ride"}]`))
	}))
	defer server.Close()

	client := feed.NewClientWithBaseURL(server.URL, 42, "test-token", 30)
	acts, err := client.ClubActivities(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, "Ride", acts[0].SportType)
}
