/*
Copyright © 2026 masteryyh <yyh991013@163.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	stdjson "encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/masteryyh/tablekit/pkg/models"
	"github.com/masteryyh/tablekit/pkg/utils/pagination"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type APIResponse struct {
	Code    int                `json:"code"`
	Message string             `json:"message"`
	Data    stdjson.RawMessage `json:"data"`
}

func (c *Client) doRequest(method, path string) ([]byte, error) {
	req, err := http.NewRequest(method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if apiResp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: %s", apiResp.Message)
	}
	return apiResp.Data, nil
}

func (c *Client) ListTables(page, pageSize int) (*pagination.PagedResponse[models.TableSummaryDto], error) {
	data, err := c.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/tables?page=%d&pageSize=%d", page, pageSize))
	if err != nil {
		return nil, err
	}

	var result pagination.PagedResponse[models.TableSummaryDto]
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tables: %w", err)
	}
	return &result, nil
}

// GetTablePage fetches one page of a table, rawQuery is passed through untouched
// so links returned by the server can be followed as they are.
func (c *Client) GetTablePage(name, rawQuery string) (*models.TablePageDto, error) {
	path := "/api/v1/tables/" + url.PathEscape(name)
	if rawQuery = strings.TrimPrefix(rawQuery, "?"); rawQuery != "" {
		path += "?" + rawQuery
	}

	data, err := c.doRequest(http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var page models.TablePageDto
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal table page: %w", err)
	}
	return &page, nil
}
