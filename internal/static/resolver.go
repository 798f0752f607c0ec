package static

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// 解決に失敗したときのエラー種別
var (
	// ErrNotFound は該当するファイルが存在しないことを示す
	ErrNotFound = errors.New("ファイルが見つかりません")
	// ErrForbidden はパスがルートディレクトリの外を指すことを示す
	ErrForbidden = errors.New("パスがルートディレクトリの外を指しています")
)

// Resolver はリクエストパスをルートディレクトリ配下のファイルへ解決する
type Resolver struct {
	root  string // 絶対パスに変換済みのルートディレクトリ
	index string // ディレクトリ要求時に補うデフォルトドキュメント（空なら補完しない）
}

// NewResolver は新しいResolverを作成する
// ルートディレクトリが存在しない場合はエラーを返す
func NewResolver(root, index string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("ルートディレクトリの絶対パス変換に失敗: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("ルートディレクトリが存在しません: %s", abs)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("ルートがディレクトリではありません: %s", abs)
	}

	return &Resolver{root: abs, index: index}, nil
}

// Root はルートディレクトリの絶対パスを返す
func (r *Resolver) Root() string {
	return r.root
}

// Resolve はリクエストパスをファイルパスへ解決する
//
// パスは信頼できない入力として扱う。親ディレクトリ参照を含むパスは
// ErrForbidden、該当ファイルがない場合は ErrNotFound を返す。
// それ以外のエラーはファイルシステム起因の失敗を表す。
func (r *Resolver) Resolve(urlPath string) (string, error) {
	// 正規化でルート配下に畳み込まれる場合でも、親ディレクトリ参照を
	// 含むリクエスト自体を拒否する
	if containsDotDot(urlPath) {
		return "", ErrForbidden
	}

	// パスを正規化してルートに結合する
	clean := path.Clean("/" + urlPath)
	full := filepath.Join(r.root, filepath.FromSlash(clean))

	// 結合後もルート配下に収まることを確認する
	rel, err := filepath.Rel(r.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrForbidden
	}

	info, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("ファイル情報の取得に失敗: %w", err)
	}

	// ディレクトリにはデフォルトドキュメントを補う
	if info.IsDir() {
		if r.index == "" {
			return "", ErrNotFound
		}
		full = filepath.Join(full, r.index)
		info, err = os.Stat(full)
		if err != nil {
			if os.IsNotExist(err) {
				return "", ErrNotFound
			}
			return "", fmt.Errorf("ファイル情報の取得に失敗: %w", err)
		}
	}

	// 通常ファイル以外（デバイスファイル等）は配信しない
	if !info.Mode().IsRegular() {
		return "", ErrNotFound
	}

	return full, nil
}

// containsDotDot はパスに親ディレクトリ参照が含まれるか判定する
func containsDotDot(p string) bool {
	if !strings.Contains(p, "..") {
		return false
	}
	for _, seg := range strings.FieldsFunc(p, isPathSeparator) {
		if seg == ".." {
			return true
		}
	}
	return false
}

func isPathSeparator(r rune) bool {
	return r == '/' || r == '\\'
}
