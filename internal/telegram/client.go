package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/logger"
)

type (
	Client struct {
		serverAddr string
		token      string

		cl *http.Client
	}

	// Ответ Bot API: при ok=false заполнены error_code и description.
	apiResponse struct {
		OK          bool            `json:"ok"`
		Result      json.RawMessage `json:"result,omitempty"`
		ErrorCode   int             `json:"error_code,omitempty"`
		Description string          `json:"description,omitempty"`
	}

	APIError struct {
		Method      string
		Code        int
		Description string
	}
)

func New(serverAddr, token string) *Client {
	return &Client{
		serverAddr: strings.TrimRight(serverAddr, "/"),
		token:      token,

		cl: &http.Client{
			// long poll держит соединение открытым дольше обычного запроса
			Timeout: 65 * time.Second,
			Transport: &http.Transport{
				IdleConnTimeout:     30 * time.Second,
				DisableKeepAlives:   false,
				MaxIdleConnsPerHost: 5,
				DisableCompression:  true,
			},
		},
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Telegram request %s failed with code %d and message:\n%s", e.Method, e.Code, e.Description)
}

func (c *Client) Invoke(ctx context.Context, apiMethod string, body any) (result json.RawMessage, err error) {
	reqUrl := c.serverAddr + "/bot" + c.token + "/" + apiMethod

	var jsonData []byte
	if body != nil {
		jsonData, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqUrl, bytes.NewBuffer(jsonData))
	if err != nil {
		logger.Warning("Error while create request for", apiMethod, ":", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("---> request", apiMethod)

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	logger.Debug("<--- request", apiMethod, "with body", string(bodyBytes))
	if err != nil {
		logger.Warning("Error while read response body", err)
		return nil, err
	}

	data := apiResponse{}
	if err = json.Unmarshal(bodyBytes, &data); err != nil {
		return nil, &APIError{
			Method:      apiMethod,
			Code:        resp.StatusCode,
			Description: string(bodyBytes),
		}
	}

	if !data.OK {
		return nil, &APIError{
			Method:      apiMethod,
			Code:        data.ErrorCode,
			Description: data.Description,
		}
	}

	return data.Result, nil
}
