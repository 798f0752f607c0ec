package server

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/Kellytom/html-hack/internal/config"
	"github.com/Kellytom/html-hack/internal/static"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
)

// Handler は各HTTPエンドポイントの実装を保持する
type Handler struct {
	config    *config.Config
	resolver  *static.Resolver
	markdown  goldmark.Markdown
	startedAt time.Time
}

// NewHandler は新しいHandlerを作成する
func NewHandler(cfg *config.Config) (*Handler, error) {
	resolver, err := static.NewResolver(cfg.Static.Root, cfg.Static.IndexFile)
	if err != nil {
		return nil, fmt.Errorf("Resolverの作成に失敗: %w", err)
	}

	return &Handler{
		config:    cfg,
		resolver:  resolver,
		markdown:  goldmark.New(),
		startedAt: time.Now(),
	}, nil
}

// HealthCheck はヘルスチェックエンドポイントの実装
func (h *Handler) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	}

	c.JSON(http.StatusOK, response)
}

// GetStatus はシステム状態取得エンドポイントの実装
func (h *Handler) GetStatus(c *gin.Context) {
	response := StatusResponse{
		Status: "running",
		Server: ServerInfo{
			Host: h.config.Server.Host,
			Port: h.config.Server.Port,
		},
		ContentRoot: h.resolver.Root(),
		Uptime:      time.Since(h.startedAt).Round(time.Second).String(),
		Timestamp:   time.Now(),
	}

	c.JSON(http.StatusOK, response)
}

// ServeStatic は静的ファイル配信エンドポイントの実装
//
// リクエストパスをルートディレクトリ配下のファイルへ解決し、
// 解決結果に応じて 200/403/404/500 を返す。配信の失敗がサーバー
// プロセスを止めることはない。
func (h *Handler) ServeStatic(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.String(http.StatusMethodNotAllowed, "405 method not allowed")
		return
	}

	filePath, err := h.resolver.Resolve(c.Request.URL.Path)
	switch {
	case errors.Is(err, static.ErrForbidden):
		c.String(http.StatusForbidden, "403 forbidden")
		return
	case errors.Is(err, static.ErrNotFound):
		c.String(http.StatusNotFound, "404 page not found")
		return
	case err != nil:
		c.String(http.StatusInternalServerError, "500 internal server error")
		return
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		// 解決後に読めないのは権限エラー等のI/O失敗
		c.String(http.StatusInternalServerError, "500 internal server error")
		return
	}

	c.Data(http.StatusOK, static.ContentType(filePath), data)
}

// GetArticle はMarkdown記事プレビューエンドポイントの実装
//
// ルートディレクトリ配下のMarkdownファイルをHTMLへレンダリングして返す
func (h *Handler) GetArticle(c *gin.Context) {
	name := c.Param("filepath")

	// Markdownファイル以外はプレビュー対象外
	if strings.ToLower(path.Ext(name)) != ".md" {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:     "article_not_found",
			Message:   "Markdown記事ではありません",
			Timestamp: time.Now(),
		})
		return
	}

	filePath, err := h.resolver.Resolve(name)
	switch {
	case errors.Is(err, static.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:     "forbidden_path",
			Message:   "パスがルートディレクトリの外を指しています",
			Timestamp: time.Now(),
		})
		return
	case errors.Is(err, static.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:     "article_not_found",
			Message:   "指定された記事が見つかりません",
			Timestamp: time.Now(),
		})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "internal_error",
			Message:   "記事の読み込みに失敗しました",
			Timestamp: time.Now(),
		})
		return
	}

	source, err := os.ReadFile(filePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "internal_error",
			Message:   "記事の読み込みに失敗しました",
			Timestamp: time.Now(),
		})
		return
	}

	var buf bytes.Buffer
	if err := h.markdown.Convert(source, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "internal_error",
			Message:   "記事のレンダリングに失敗しました",
			Timestamp: time.Now(),
		})
		return
	}

	title := strings.TrimSuffix(path.Base(name), path.Ext(name))
	page := renderArticlePage(title, buf.Bytes())
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// renderArticlePage はレンダリング済みのHTML本文をページに包む
func renderArticlePage(title string, body []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<!DOCTYPE html>
<html lang="ja">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
</head>
<body>
<main>
`, html.EscapeString(title))
	buf.Write(body)
	buf.WriteString(`</main>
</body>
</html>`)
	return buf.Bytes()
}
