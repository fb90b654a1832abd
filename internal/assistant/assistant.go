// Package assistant is the boundary to the external chat model. Its single
// contract: given an ordered conversation history and a new user message,
// produce a response string — and on any failure return a fixed fallback
// string instead of an error, so the assistant can never take the rest of
// the application down with it.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/injazapp/injaz/internal/keyring"
	"github.com/injazapp/injaz/internal/logger"
	"github.com/injazapp/injaz/internal/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"

	// FallbackNoKey is shown when no API key is configured.
	FallbackNoKey = "عذراً، لم يتم إعداد مفتاح المساعد بعد. استخدم: injaz chat login"
	// FallbackError is shown on network or model failure.
	FallbackError = "حدث خطأ في الاتصال بالشبكة أو أن النموذج غير متوفر. حاول مرة أخرى."
)

const systemInstruction = `أنت "رفيق"، مساعد ذكي ومحفز داخل تطبيق يسمى "إنجاز" لتنظيم الوقت والمذاكرة.
- دورك: مساعدة الطالب في شرح الدروس، حل المسائل، تقديم نصائح للمذاكرة، والتذكير بالله.
- أسلوبك: ودود، مشجع، مختصر.
- اللغة: العربية.
- حاول دائمًا ربط الإجابة بالإنتاجية وعدم إضاعة الوقت.`

// Client talks to a Gemini-compatible generateContent endpoint.
type Client struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
}

// New builds a client, resolving the API key from the OS keyring first and
// the GEMINI_API_KEY environment variable second. A missing key is not an
// error here; Send answers with the fallback instead.
func New() *Client {
	key, err := keyring.GetAPIKey()
	if err != nil {
		key = os.Getenv("GEMINI_API_KEY")
	}

	baseURL := os.Getenv("GEMINI_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		model:   defaultModel,
		apiKey:  key,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithKey builds a client against a fixed endpoint and key; tests use it.
func NewWithKey(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		model:   defaultModel,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether an API key is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Send forwards the conversation plus the new user message and returns the
// model's reply. Every failure path returns a user-facing fallback string
// with a nil error; the conversation history stays intact so the user can
// retry.
func (c *Client) Send(ctx context.Context, history []models.ChatMessage, message string) string {
	if !c.Configured() {
		return FallbackNoKey
	}

	contents := make([]content, 0, len(history)+1)
	for _, msg := range history {
		role := "user"
		if msg.Role == models.ChatRoleAssistant {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: msg.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	reqBody := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          contents,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		logger.Error("failed to encode assistant request", "error", err)
		return FallbackError
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logger.Error("failed to build assistant request", "error", err)
		return FallbackError
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("assistant request failed", "error", err)
		return FallbackError
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Error("assistant request rejected", "status", resp.StatusCode, "body", string(respBody))
		return FallbackError
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logger.Error("failed to decode assistant response", "error", err)
		return FallbackError
	}

	text := extractText(parsed)
	if text == "" {
		logger.Warn("assistant returned an empty response")
		return FallbackError
	}
	return text
}

func extractText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}
