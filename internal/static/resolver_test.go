package static

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupRoot はテスト用のコンテンツディレクトリを作成する
//
// 作成される構成:
//
//	tmp/
//	  secret.txt        (ルートの外)
//	  root/
//	    index.html
//	    css/style.css
//	    docs/           (index.htmlなし)
//	    pages/index.html
func setupRoot(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()
	root := filepath.Join(tmp, "root")

	dirs := []string{
		root,
		filepath.Join(root, "css"),
		filepath.Join(root, "docs"),
		filepath.Join(root, "pages"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("ディレクトリの作成に失敗しました: %v", err)
		}
	}

	files := map[string]string{
		filepath.Join(tmp, "secret.txt"):           "secret",
		filepath.Join(root, "index.html"):          "<h1>index</h1>",
		filepath.Join(root, "css", "style.css"):    "body { margin: 0; }",
		filepath.Join(root, "pages", "index.html"): "<h1>pages</h1>",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("ファイルの作成に失敗しました: %v", err)
		}
	}

	return root
}

// TestNewResolver はResolverの作成をテストする
func TestNewResolver(t *testing.T) {
	root := setupRoot(t)

	// 正常なルート
	if _, err := NewResolver(root, "index.html"); err != nil {
		t.Errorf("予期しないエラーが発生しました: %v", err)
	}

	// 存在しないルート
	if _, err := NewResolver(filepath.Join(root, "missing"), "index.html"); err == nil {
		t.Error("存在しないルートでエラーが期待されましたが、エラーが発生しませんでした")
	}

	// ルートがディレクトリではない
	if _, err := NewResolver(filepath.Join(root, "index.html"), "index.html"); err == nil {
		t.Error("ファイルのルートでエラーが期待されましたが、エラーが発生しませんでした")
	}
}

// TestResolve はパス解決をテストする
func TestResolve(t *testing.T) {
	root := setupRoot(t)

	resolver, err := NewResolver(root, "index.html")
	if err != nil {
		t.Fatalf("Resolverの作成に失敗しました: %v", err)
	}

	testCases := []struct {
		name     string
		urlPath  string
		wantFile string // ルートからの相対パス（エラー時は空）
		wantErr  error
	}{
		{"ルート直下のファイル", "/index.html", "index.html", nil},
		{"サブディレクトリのファイル", "/css/style.css", "css/style.css", nil},
		{"ルートディレクトリ", "/", "index.html", nil},
		{"デフォルトドキュメント補完", "/pages/", "pages/index.html", nil},
		{"末尾スラッシュなしのディレクトリ", "/pages", "pages/index.html", nil},
		{"存在しないファイル", "/does-not-exist.html", "", ErrNotFound},
		{"デフォルトドキュメントのないディレクトリ", "/docs/", "", ErrNotFound},
		{"親ディレクトリ参照", "/../secret.txt", "", ErrForbidden},
		{"多段の親ディレクトリ参照", "/../../etc/passwd", "", ErrForbidden},
		{"途中の親ディレクトリ参照", "/css/../../secret.txt", "", ErrForbidden},
		{"バックスラッシュ区切りの親ディレクトリ参照", "/..\\secret.txt", "", ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolver.Resolve(tc.urlPath)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("期待したエラーと異なります: got %v, want %v", err, tc.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("予期しないエラーが発生しました: %v", err)
			}

			want := filepath.Join(root, filepath.FromSlash(tc.wantFile))
			if got != want {
				t.Errorf("解決されたパスが一致しません: got %s, want %s", got, want)
			}

			// 解決されたパスは必ずルート配下に収まる
			if !strings.HasPrefix(got, root+string(filepath.Separator)) {
				t.Errorf("解決されたパスがルートの外を指しています: %s", got)
			}
		})
	}
}

// TestResolveWithoutIndex はデフォルトドキュメント無効時の挙動をテストする
func TestResolveWithoutIndex(t *testing.T) {
	root := setupRoot(t)

	resolver, err := NewResolver(root, "")
	if err != nil {
		t.Fatalf("Resolverの作成に失敗しました: %v", err)
	}

	// デフォルトドキュメントが無効の場合、ディレクトリ要求はNotFound
	if _, err := resolver.Resolve("/pages/"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ErrNotFoundが期待されましたが、%v が返されました", err)
	}

	// 通常のファイルは解決できる
	if _, err := resolver.Resolve("/index.html"); err != nil {
		t.Errorf("予期しないエラーが発生しました: %v", err)
	}
}

// TestContentType はContent-Typeの決定をテストする
func TestContentType(t *testing.T) {
	root := setupRoot(t)

	// 拡張子が対応表にないバイナリファイル
	binPath := filepath.Join(root, "data.bin")
	if err := os.WriteFile(binPath, []byte{0x00, 0x01, 0x02, 0x03}, 0o644); err != nil {
		t.Fatalf("ファイルの作成に失敗しました: %v", err)
	}

	testCases := []struct {
		name     string
		filePath string
		want     string
	}{
		{"HTMLファイル", filepath.Join(root, "index.html"), "text/html; charset=utf-8"},
		{"CSSファイル", filepath.Join(root, "css", "style.css"), "text/css; charset=utf-8"},
		{"JSファイル", filepath.Join(root, "app.js"), "application/javascript; charset=utf-8"},
		{"大文字の拡張子", filepath.Join(root, "INDEX.HTML"), "text/html; charset=utf-8"},
		{"不明な拡張子のバイナリ", binPath, "application/octet-stream"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ContentType(tc.filePath)
			if got != tc.want {
				t.Errorf("Content-Typeが一致しません: got %s, want %s", got, tc.want)
			}
		})
	}
}
