package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const fcmScope = "https://www.googleapis.com/auth/firebase.messaging"

// PushService delivers data-only messages over the FCM HTTP v1 API. The
// service-account credential is exchanged for a bearer token on demand;
// the oauth2 token source caches it until expiry.
type PushService struct {
	projectID string
	tokens    oauth2.TokenSource
	endpoint  string
	client    *http.Client
}

func NewPushService(credentialsFile string) (*PushService, error) {
	raw, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, err
	}

	conf, err := google.JWTConfigFromJSON(raw, fcmScope)
	if err != nil {
		return nil, err
	}

	// JWTConfigFromJSON does not surface project_id, which the v1 send
	// URL needs, so read it out of the same file.
	var account struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, err
	}
	if account.ProjectID == "" {
		return nil, errors.New("service account is missing project_id")
	}

	return &PushService{
		projectID: account.ProjectID,
		tokens:    conf.TokenSource(context.Background()),
		endpoint:  "https://fcm.googleapis.com/v1",
		client:    http.DefaultClient,
	}, nil
}

// Send posts a data-only message for deviceToken and returns the raw
// gateway response body. It does not interpret gateway status; callers
// that care must inspect the body themselves.
func (p *PushService) Send(ctx context.Context, deviceToken string, data map[string]string) ([]byte, error) {
	tok, err := p.tokens.Token()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"token": deviceToken,
			"data":  data,
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/projects/%s/messages:send", p.endpoint, p.projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}
