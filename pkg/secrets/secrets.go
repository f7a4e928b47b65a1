// Package secrets resolves deployment secrets at startup.
//
// Secrets live in a 1Password Connect vault; the gateway reads the Connect
// endpoint and service token from the environment, fetches the TEE backend
// credential once during boot, and treats it as a pre-resolved configuration
// value from then on. The core pipeline never talks to the vault at
// runtime.
package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/loyal-labs/loyal-backend/pkg/observability/logging"
)

const (
	defaultVault    = "loyal-web-backend"
	backendItemName = "PHALA_SERVERLESS_TEE"

	fieldCredential = "credential"
	fieldHostname   = "hostname"

	envConnectToken = "ONEPASS_CONNECT_TOKEN"
	envConnectHost  = "ONEPASS_CONNECT_HOST"
	envDeployment   = "GLOBAL_APP_ENV"
)

// BackendCredentials is the resolved TEE endpoint configuration.
type BackendCredentials struct {
	Endpoint string
	APIKey   string
}

// Manager fetches secret items from a 1Password Connect server.
type Manager struct {
	httpClient *http.Client
	host       string
	token      string
	vault      string
	deployment string
}

// NewManagerFromEnv loads .env (if present) and builds a manager from the
// environment. Local deployments (GLOBAL_APP_ENV=local or unset) are
// allowed to run without a Connect server; see BackendCredentials.
func NewManagerFromEnv() (*Manager, error) {
	_ = godotenv.Load()

	deployment := os.Getenv(envDeployment)
	if deployment == "" {
		deployment = "local"
	}

	m := &Manager{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		host:       os.Getenv(envConnectHost),
		token:      os.Getenv(envConnectToken),
		vault:      defaultVault,
		deployment: deployment,
	}

	if deployment != "local" && (m.host == "" || m.token == "") {
		return nil, fmt.Errorf("%s and %s are required outside local deployments", envConnectHost, envConnectToken)
	}
	logging.Infof("Secrets manager created (deployment=%s)", deployment)
	return m, nil
}

// Deployment returns the deployment environment name.
func (m *Manager) Deployment() string { return m.deployment }

// BackendCredentials resolves the TEE endpoint and API key. Local
// deployments may bypass the vault with PHALA_HOST / PHALA_API_KEY
// environment variables; everywhere else the vault item is authoritative.
func (m *Manager) BackendCredentials(ctx context.Context) (BackendCredentials, error) {
	if m.deployment == "local" {
		if host, key := os.Getenv("PHALA_HOST"), os.Getenv("PHALA_API_KEY"); host != "" && key != "" {
			logging.Debugf("Using TEE credentials from environment (local deployment)")
			return BackendCredentials{Endpoint: host, APIKey: key}, nil
		}
		if m.host == "" || m.token == "" {
			return BackendCredentials{}, fmt.Errorf("no TEE credentials: set PHALA_HOST/PHALA_API_KEY or configure 1Password Connect")
		}
	}

	fields, err := m.GetSecretItem(ctx, backendItemName)
	if err != nil {
		return BackendCredentials{}, fmt.Errorf("fetching %s: %w", backendItemName, err)
	}

	creds := BackendCredentials{
		Endpoint: fields[fieldHostname],
		APIKey:   fields[fieldCredential],
	}
	if creds.Endpoint == "" || creds.APIKey == "" {
		return BackendCredentials{}, fmt.Errorf("item %s is missing %s or %s", backendItemName, fieldHostname, fieldCredential)
	}
	return creds, nil
}

// GetSecretItem fetches an item by title from the default vault and returns
// its fields as a label→value map.
func (m *Manager) GetSecretItem(ctx context.Context, title string) (map[string]string, error) {
	vaultID, err := m.vaultID(ctx)
	if err != nil {
		return nil, err
	}

	var stubs []struct {
		ID string `json:"id"`
	}
	filter := url.QueryEscape(fmt.Sprintf("title eq %q", title))
	if err := m.get(ctx, fmt.Sprintf("/v1/vaults/%s/items?filter=%s", vaultID, filter), &stubs); err != nil {
		return nil, err
	}
	if len(stubs) == 0 {
		return nil, fmt.Errorf("item %q not found in vault %q", title, m.vault)
	}

	var item struct {
		Fields []struct {
			Label string `json:"label"`
			Value string `json:"value"`
		} `json:"fields"`
	}
	if err := m.get(ctx, fmt.Sprintf("/v1/vaults/%s/items/%s", vaultID, stubs[0].ID), &item); err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(item.Fields))
	for _, f := range item.Fields {
		fields[f.Label] = f.Value
	}
	return fields, nil
}

func (m *Manager) vaultID(ctx context.Context) (string, error) {
	var vaults []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	filter := url.QueryEscape(fmt.Sprintf("name eq %q", m.vault))
	if err := m.get(ctx, "/v1/vaults?filter="+filter, &vaults); err != nil {
		return "", err
	}
	for _, v := range vaults {
		if v.Name == m.vault {
			return v.ID, nil
		}
	}
	return "", fmt.Errorf("vault %q not found", m.vault)
}

func (m *Manager) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.host+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.token)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("connect request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("connect returned %d: %s", resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
