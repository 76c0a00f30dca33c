package atende

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

// Host de produção usado quando UPSTREAM_API_URL não está setado.
const defaultBaseURL = "https://api.zapatende.com.br"

// Client fala com a API de produção da ZapAtende: cadastro de onboarding
// e relay de mensagens de WhatsApp.
type Client struct {
	baseURL string
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Signup repassa o cadastro e devolve status e corpo crus do upstream.
func (c *Client) Signup(input SignupInput) (*ProxyResponse, error) {
	return c.post("/v1/onboarding/signup", input)
}

// RelayMessage repassa um envio de mensagem e devolve a resposta crua.
func (c *Client) RelayMessage(input SendMessageInput) (*ProxyResponse, error) {
	return c.post("/v1/messages/send", input)
}

// SendMessage implementa usecase.OwnerNotifier: envio best-effort,
// qualquer não-2xx vira erro para o chamador logar.
func (c *Client) SendMessage(to, message string) error {
	resp, err := c.RelayMessage(SendMessageInput{To: to, Message: message})
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay retornou status %d: %s", resp.StatusCode, string(resp.Body))
	}
	return nil
}

func (c *Client) post(path string, payload interface{}) (*ProxyResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("❌ Upstream: falha em %s: %v", path, err)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	return &ProxyResponse{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
