package static

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// 拡張子とContent-Typeの対応表
var contentTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".htm":   "text/html; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".js":    "application/javascript; charset=utf-8",
	".json":  "application/json; charset=utf-8",
	".md":    "text/markdown; charset=utf-8",
	".txt":   "text/plain; charset=utf-8",
	".xml":   "application/xml; charset=utf-8",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".ico":   "image/x-icon",
	".pdf":   "application/pdf",
	".woff":  "font/woff",
	".woff2": "font/woff2",
}

// ContentType はファイルのContent-Typeを決定する
//
// まず拡張子の対応表を引き、対応表にない場合はファイル内容から推定する。
// 推定もできない場合は application/octet-stream を返す。
func ContentType(filePath string) string {
	ext := strings.ToLower(filepath.Ext(filePath))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}

	if mtype, err := mimetype.DetectFile(filePath); err == nil {
		return mtype.String()
	}

	return "application/octet-stream"
}
