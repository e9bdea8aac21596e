package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"reservabot/config"
	"reservabot/utils"
)

// GatewayNotificationService posts messages to a WhatsApp HTTP gateway
// (WPPConnect, WaSender and similar all accept a token/to/body payload).
// With no gateway URL configured it only logs, which is the dev-mode default.
type GatewayNotificationService struct {
	APIURL string
	Token  string
	Client *http.Client
	Logger *zap.Logger
}

// NewGatewayNotificationService builds the service from AppConfig.
func NewGatewayNotificationService() *GatewayNotificationService {
	return &GatewayNotificationService{
		APIURL: config.AppConfig.WhatsAppAPIURL,
		Token:  config.AppConfig.WhatsAppAPIToken,
		Client: &http.Client{Timeout: 10 * time.Second},
		Logger: utils.GetLogger(),
	}
}

type gatewayPayload struct {
	Token string `json:"token"`
	To    string `json:"to"`
	Body  string `json:"body"`
}

// SendWhatsApp delivers a message through the gateway.
func (s *GatewayNotificationService) SendWhatsApp(ctx context.Context, phone, body string) error {
	if s.APIURL == "" {
		s.Logger.Sugar().Infof("[whatsapp] %s: %s", phone, body)
		return nil
	}

	payload, err := json.Marshal(gatewayPayload{Token: s.Token, To: phone, Body: body})
	if err != nil {
		return fmt.Errorf("failed to marshal whatsapp payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.APIURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send whatsapp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}
	return nil
}
