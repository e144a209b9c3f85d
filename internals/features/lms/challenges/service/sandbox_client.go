package service

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// Status hasil eksekusi dari sandbox.
const (
	RunStatusOK           = "OK"
	RunStatusTimeLimit    = "TIME_LIMIT"
	RunStatusMemoryLimit  = "MEMORY_LIMIT"
	RunStatusRuntimeError = "RUNTIME_ERROR"
	RunStatusCompileError = "COMPILE_ERROR"
)

// Runner menjalankan kode user terhadap satu input stdin.
type Runner interface {
	Run(req RunRequest) (*RunResult, error)
}

type RunRequest struct {
	Code          string `json:"code"`
	Language      string `json:"language"`
	Stdin         string `json:"stdin"`
	TimeLimitMs   int    `json:"time_limit_ms"`
	MemoryLimitMB int    `json:"memory_limit_mb"`
}

type RunResult struct {
	Status   string `json:"status"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	TimeMs   int64  `json:"time_ms"`
	MemoryKB int64  `json:"memory_kb"`
}

// SandboxClient berbicara dengan layanan code-runner lewat HTTP.
// Kode user tidak pernah dieksekusi di proses ini.
type SandboxClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewSandboxClient(baseURL string, timeoutSec int) *SandboxClient {
	if timeoutSec <= 0 {
		timeoutSec = 30
	}
	return &SandboxClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
	}
}

func (c *SandboxClient) Run(req RunRequest) (*RunResult, error) {
	body, err := sonic.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.BaseURL+"/run", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sandbox request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sandbox api error: %d - %s", resp.StatusCode, string(raw))
	}

	var result RunResult
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
