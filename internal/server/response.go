package server

import "time"

// HealthResponse はヘルスチェックエンドポイントの応答
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusResponse はシステム状態エンドポイントの応答
type StatusResponse struct {
	Status      string     `json:"status"`
	Server      ServerInfo `json:"server"`
	ContentRoot string     `json:"content_root"`
	Uptime      string     `json:"uptime"`
	Timestamp   time.Time  `json:"timestamp"`
}

// ServerInfo はサーバーのリッスン情報
type ServerInfo struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// ErrorResponse はJSONエンドポイントのエラー応答
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
