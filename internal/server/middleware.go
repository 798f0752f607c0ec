package server

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// リクエストIDを格納するコンテキストキー
const requestIDKey = "request_id"

// RequestID は各リクエストにIDを割り当てるミドルウェア
//
// クライアントがX-Request-Idヘッダを送ってきた場合はそれを引き継ぐ
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// AccessLog はリクエストラインをログに出力するミドルウェア
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Printf("request id=%s method=%s path=%s status=%d bytes=%d duration=%s remote=%s",
			c.GetString(requestIDKey),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).Round(time.Microsecond),
			c.ClientIP(),
		)
	}
}
