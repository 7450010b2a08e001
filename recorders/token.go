package recorders

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	sheetsScope     = "https://www.googleapis.com/auth/spreadsheets"
	defaultTokenURI = "https://oauth2.googleapis.com/token"
	jwtBearerGrant  = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	// Tokens are refreshed this long before Google says they expire.
	tokenExpiryMargin = time.Minute
)

// ServiceAccount holds the fields of a Google service account key file that
// are needed to mint access tokens.
type ServiceAccount struct {
	ClientEmail  string `json:"client_email"`
	PrivateKey   string `json:"private_key"`
	PrivateKeyID string `json:"private_key_id"`
	TokenURI     string `json:"token_uri"`
}

func ParseServiceAccount(data []byte) (*ServiceAccount, error) {
	var account ServiceAccount
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, fmt.Errorf("failed to parse service account: %w", err)
	}
	if account.ClientEmail == "" || account.PrivateKey == "" {
		return nil, fmt.Errorf("service account is missing client_email or private_key")
	}
	if account.TokenURI == "" {
		account.TokenURI = defaultTokenURI
	}
	return &account, nil
}

func LoadServiceAccountFile(path string) (*ServiceAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account file: %w", err)
	}
	return ParseServiceAccount(data)
}

// tokenSource exchanges a signed JWT assertion for a bearer token and reuses
// it until shortly before expiry.
type tokenSource struct {
	account *ServiceAccount
	client  *resty.Client
	now     func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func newTokenSource(account *ServiceAccount, client *resty.Client) *tokenSource {
	return &tokenSource{account: account, client: client, now: time.Now}
}

func (ts *tokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && ts.now().Before(ts.expiry) {
		return ts.token, nil
	}

	assertion, err := ts.assertion()
	if err != nil {
		return "", err
	}

	resp, err := ts.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(map[string]string{
			"grant_type": jwtBearerGrant,
			"assertion":  assertion,
		}).
		Post(ts.account.TokenURI)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return "", &RejectedError{Service: "token endpoint", StatusCode: resp.StatusCode(), Body: truncate(resp.Body())}
	}

	var response struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if response.AccessToken == "" {
		return "", fmt.Errorf("token not found in response")
	}

	ts.token = response.AccessToken
	ts.expiry = ts.now().Add(time.Duration(response.ExpiresIn)*time.Second - tokenExpiryMargin)
	return ts.token, nil
}

func (ts *tokenSource) assertion() (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(ts.account.PrivateKey))
	if err != nil {
		return "", fmt.Errorf("invalid service account key: %w", err)
	}

	now := ts.now()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss":   ts.account.ClientEmail,
		"scope": sheetsScope,
		"aud":   ts.account.TokenURI,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	})
	if ts.account.PrivateKeyID != "" {
		token.Header["kid"] = ts.account.PrivateKeyID
	}
	return token.SignedString(key)
}
