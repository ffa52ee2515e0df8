package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/stravadictos/internal/error_values"
	"github.com/limbo/stravadictos/pkg/entity"
)

const DefaultBaseURL = "https://www.strava.com/api/v3"

// clubActivity mirrors one entry of Strava's club activities payload.
// Club entries expose no activity id, which is why deduplication runs on
// content fingerprints downstream.
type clubActivity struct {
	Athlete struct {
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
	} `json:"athlete"`
	Name        string  `json:"name"`
	Distance    float64 `json:"distance"`
	ElapsedTime int64   `json:"elapsed_time"`
	SportType   string  `json:"sport_type"`
	Type        string  `json:"type"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	clubID     int64
	token      string
	perPage    int
}

func NewClient(clubID int64, token string, perPage int) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Second * 30},
		baseURL:    DefaultBaseURL,
		clubID:     clubID,
		token:      token,
		perPage:    perPage,
	}
}

// NewClientWithBaseURL points the client at a non-default API host.
func NewClientWithBaseURL(baseURL string, clubID int64, token string, perPage int) *Client {
	c := NewClient(clubID, token, perPage)
	c.baseURL = baseURL
	return c
}

// ClubActivities fetches up to total feed entries, newest first. The API
// caps each page, so the client keeps paging until total entries are
// collected or a short page marks the end of the feed.
func (c *Client) ClubActivities(ctx context.Context, total int) ([]entity.RawActivity, error) {
	result := make([]entity.RawActivity, 0, total)
	for page := 1; len(result) < total; page++ {
		entries, err := c.activitiesPage(ctx, page)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			result = append(result, toRawActivity(e))
			if len(result) == total {
				break
			}
		}
		if len(entries) < c.perPage {
			break
		}
	}
	return result, nil
}

func (c *Client) activitiesPage(ctx context.Context, page int) ([]clubActivity, error) {
	endpoint := fmt.Sprintf("%s/clubs/%d/activities", c.baseURL, c.clubID)
	query := url.Values{
		"page":     []string{strconv.Itoa(page)},
		"per_page": []string{strconv.Itoa(c.perPage)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.New("building feed request error: " + err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.New("fetching club activities error: " + err.Error())
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, errorvalues.ErrUnauthorized
	default:
		return nil, fmt.Errorf("club activities request failed with status %d", resp.StatusCode)
	}

	var entries []clubActivity
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, errors.New("decoding club activities error: " + err.Error())
	}
	return entries, nil
}

func toRawActivity(e clubActivity) entity.RawActivity {
	sport := e.SportType
	if sport == "" {
		sport = e.Type
	}
	return entity.RawActivity{
		Athlete:     e.Athlete.FirstName + " " + e.Athlete.LastName,
		Name:        e.Name,
		SportType:   sport,
		Distance:    e.Distance,
		ElapsedSecs: e.ElapsedTime,
	}
}
