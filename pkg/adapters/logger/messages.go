package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Session
		"Session %s started":               "セッション %s を開始しました",
		"Session %s ended":                 "セッション %s を終了しました",
		"Interrupted, shutting down...":    "中断されました。終了しています...",
		"Input closed, leaving file manager": "入力が閉じられたため終了します",

		// Dispatcher
		"Dispatching %s":             "%s を実行します",
		"%s rejected: %s":            "%s は実行されませんでした: %s",
		"%s failed: %s":              "%s が失敗しました: %s",

		// Filesystem
		"Listed %d entries in %s":         "%[2]s 内の %[1]d 件を一覧表示しました",
		"Copied %s to %s":             "%s を %s にコピーしました",
		"Moved %s to %s":              "%s を %s に移動しました",
		"Deleted file %s":             "ファイル %s を削除しました",
		"Created directory %s":        "ディレクトリ %s を作成しました",
		"Deleted directory %s":        "ディレクトリ %s を削除しました",
		"Search in %s matched %d entries": "%s の検索で %d 件一致しました",
		"Skipping %s: %s":             "%s をスキップします: %s",

		// Summary
		"Summary saved to %s":         "サマリーを %s に保存しました",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",
	})
}
