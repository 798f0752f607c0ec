// Package server は、HTTPサーバーと静的ファイル配信を管理します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// 静的ファイルの配信、Markdown記事のプレビュー配信を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - 静的ファイル（HTML/CSS/JS）の配信
//   - Markdown記事のHTMLレンダリング
//   - リクエストごとのアクセスログ出力
//
// 仕様:
//   - ルーティングにはgin-gonic/ginを使用
//   - Markdownのレンダリングにはgoldmarkを使用
//   - グレースフルシャットダウンに対応
//   - リクエスト間で共有する可変状態を持たない
package server
