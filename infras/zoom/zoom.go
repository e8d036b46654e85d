package zoom

//go:generate go run go.uber.org/mock/mockgen -source=./zoom.go -destination=./mocks/zoom_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"booking-api/config"
	"booking-api/infras/otel"
	"booking-api/shared/constant"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	// Zoom meeting type 2 is a scheduled meeting.
	meetingTypeScheduled = 2

	// tokenSafetyMargin is subtracted from the token expiry so a token that is
	// about to lapse is never handed to a meeting-creation call.
	tokenSafetyMargin = time.Minute

	tokenFlightKey = "zoom-access-token"

	requestTimeout = 30 * time.Second
)

// Meeting is the provisioned meeting the rest of the service cares about.
type Meeting struct {
	ID      string
	JoinURL string
}

// Client provisions meetings against the Zoom API with a server-to-server
// OAuth credential.
type Client interface {
	CreateMeeting(ctx context.Context, topic string, start time.Time, durationMinutes int) (Meeting, error)
}

type meetingSettings struct {
	JoinBeforeHost bool `json:"join_before_host"`
	WaitingRoom    bool `json:"waiting_room"`
}

type createMeetingRequest struct {
	Topic     string          `json:"topic"`
	Type      int             `json:"type"`
	StartTime string          `json:"start_time"`
	Duration  int             `json:"duration"`
	Settings  meetingSettings `json:"settings"`
}

type createMeetingResponse struct {
	ID      int64  `json:"id"`
	JoinURL string `json:"join_url"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type clientImpl struct {
	cfg        *config.Config
	otel       otel.Otel
	httpClient *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
	flight      singleflight.Group
}

func New(cfg *config.Config, otl otel.Otel) Client {
	return &clientImpl{
		cfg:        cfg,
		otel:       otl,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *clientImpl) CreateMeeting(ctx context.Context, topic string, start time.Time, durationMinutes int) (res Meeting, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".zoom.CreateMeeting")
	defer scope.End()
	defer scope.TraceIfError(err)

	token, err := c.accessToken(ctx)
	if err != nil {
		return Meeting{}, err
	}

	payload := createMeetingRequest{
		Topic:     topic,
		Type:      meetingTypeScheduled,
		StartTime: start.UTC().Format(time.RFC3339),
		Duration:  durationMinutes,
		Settings: meetingSettings{
			JoinBeforeHost: false,
			WaitingRoom:    true,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Meeting{}, fmt.Errorf("failed to marshal meeting request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Zoom.APIURL+"/users/me/meetings", bytes.NewReader(body))
	if err != nil {
		return Meeting{}, fmt.Errorf("failed to build meeting request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Meeting{}, fmt.Errorf("failed to create zoom meeting: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text, _ := io.ReadAll(resp.Body)

		return Meeting{}, fmt.Errorf("zoom create meeting error: %d %s", resp.StatusCode, string(text))
	}

	var meeting createMeetingResponse
	if err = json.NewDecoder(resp.Body).Decode(&meeting); err != nil {
		return Meeting{}, fmt.Errorf("failed to decode zoom meeting response: %w", err)
	}

	log.Info().
		Int64("meetingId", meeting.ID).
		Str("topic", topic).
		Msg("Zoom meeting created")

	return Meeting{
		ID:      fmt.Sprintf("%d", meeting.ID),
		JoinURL: meeting.JoinURL,
	}, nil
}

// accessToken returns the cached server-to-server OAuth token, refreshing it
// when missing or within the safety margin of its expiry. Concurrent callers
// share one refresh through the singleflight group.
func (c *clientImpl) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenSafetyMargin)) {
		token := c.token
		c.mu.Unlock()

		return token, nil
	}
	c.mu.Unlock()

	token, err, _ := c.flight.Do(tokenFlightKey, func() (any, error) {
		return c.fetchToken(ctx)
	})
	if err != nil {
		return "", err
	}

	return token.(string), nil
}

func (c *clientImpl) fetchToken(ctx context.Context) (string, error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".zoom.fetchToken")
	defer scope.End()

	endpoint := fmt.Sprintf(
		"%s?grant_type=account_credentials&account_id=%s",
		c.cfg.Zoom.AuthURL,
		url.QueryEscape(c.cfg.Zoom.AccountID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		scope.TraceError(err)

		return "", fmt.Errorf("failed to build token request: %w", err)
	}

	req.SetBasicAuth(c.cfg.Zoom.ClientID, c.cfg.Zoom.ClientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		scope.TraceError(err)

		return "", fmt.Errorf("failed to fetch zoom token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(resp.Body)
		err = fmt.Errorf("zoom token error: %d %s", resp.StatusCode, string(text))
		scope.TraceError(err)

		return "", err
	}

	var token tokenResponse
	if err = json.NewDecoder(resp.Body).Decode(&token); err != nil {
		scope.TraceError(err)

		return "", fmt.Errorf("failed to decode zoom token response: %w", err)
	}

	c.mu.Lock()
	c.token = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	c.mu.Unlock()

	return token.AccessToken, nil
}
