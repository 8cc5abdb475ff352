package teams

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Rehan72/sol-sub000/internal/usecase/interfaces"
)

var ErrTeamAssignmentFailed = errors.New("team assignment failed")

// HTTPTeamService talks to the external crew-rostering service. That service
// owns team data; this client only asks it to pick a team for a customer.
type HTTPTeamService struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.ITeamAssignmentService = (*HTTPTeamService)(nil)

func NewHTTPTeamService(baseURL string) *HTTPTeamService {
	return &HTTPTeamService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewTeamServiceFromEnv returns the HTTP client when TEAM_SERVICE_URL is set
// and a deterministic local assigner otherwise, so scheduling works in
// development without the rostering service running.
func NewTeamServiceFromEnv() interfaces.ITeamAssignmentService {
	url := strings.TrimSpace(os.Getenv("TEAM_SERVICE_URL"))
	if url == "" {
		log.Printf("[teams][infra] TEAM_SERVICE_URL not set; using local assigner")
		return LocalTeamService{}
	}
	log.Printf("[teams][infra] team service client initialized url=%s", url)
	return NewHTTPTeamService(url)
}

type assignTeamRequest struct {
	CustomerID string `json:"customer_id"`
	Region     string `json:"region"`
}

type assignTeamResponse struct {
	TeamID string `json:"team_id"`
}

func (s *HTTPTeamService) AssignTeam(ctx context.Context, customerID, region string) (string, error) {
	body, err := json.Marshal(assignTeamRequest{CustomerID: customerID, Region: region})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/teams/assign", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[teams][infra] assign failed customer_id=%s status=%d", customerID, resp.StatusCode)
		return "", fmt.Errorf("%w: status %d", ErrTeamAssignmentFailed, resp.StatusCode)
	}

	var out assignTeamResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.TeamID == "" {
		return "", ErrTeamAssignmentFailed
	}
	return out.TeamID, nil
}

// LocalTeamService assigns a deterministic per-region team id. Development
// fallback only.
type LocalTeamService struct{}

var _ interfaces.ITeamAssignmentService = LocalTeamService{}

func (LocalTeamService) AssignTeam(ctx context.Context, customerID, region string) (string, error) {
	if region == "" {
		region = "default"
	}
	return "team-" + strings.ToLower(region), nil
}
