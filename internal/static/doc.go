// Package static は、リクエストパスからファイルパスへの解決を担当します。
//
// このパッケージは、URLパスの正規化、ルートディレクトリ外への
// パストラバーサルの拒否、Content-Typeの決定を行います。
//
// 責務:
//   - リクエストパスの正規化と検証
//   - ディレクトリ要求へのデフォルトドキュメントの補完
//   - 拡張子からのContent-Typeの決定
//
// 仕様:
//   - 解決されたパスは必ずルートディレクトリ配下に収まる
//   - 対応表にない拡張子はファイル内容から推定する
//   - ファイルシステムへの書き込みは行わない
package static
