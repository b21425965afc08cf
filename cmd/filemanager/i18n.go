// Package main provides localization for the filemanager CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Configuration": "設定",
		"Logging":       "ログ",

		// Root command
		"Interactive console file manager": "対話型コンソール ファイルマネージャー",
		"filemanager lists, copies, moves, deletes and searches files through a numbered menu.": "filemanagerは番号付きメニューからファイルの一覧、コピー、移動、削除、検索を行います。",

		// Flags
		"Configuration file (.yaml, .yml or .toml)":             "設定ファイル（.yaml、.yml、.toml）",
		"Resolve every path inside this directory":              "すべてのパスをこのディレクトリ内で解決",
		"Write a Markdown session report to this file on exit":  "終了時にMarkdown形式のセッションレポートをこのファイルに書き出す",
		"Log level (debug, info, warn, error)":                  "ログレベル（debug, info, warn, error）",
		"Suppress all log output on stderr":                     "標準エラー出力へのログをすべて抑制",
		"Also write JSON logs to this file":                     "JSON形式のログをこのファイルにも書き出す",

		// Errors
		"Error: %s": "エラー: %s",
	})
}
