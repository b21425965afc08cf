package summarizer

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"File Manager Session":    "ファイルマネージャー セッション",
		"Item":                    "項目",
		"Value":                   "値",
		"Session":                 "セッション",
		"Started":                 "開始",
		"Ended":                   "終了",
		"Duration":                "所要時間",
		"Completed":               "完了",
		"Rejected":                "却下",
		"Failed":                  "失敗",
		"Operations":              "操作",
		"No operations were run.": "操作は実行されませんでした。",
		"Time":                    "時刻",
		"Operation":               "操作",
		"Outcome":                 "結果",
		"Message":                 "メッセージ",
		"Generated at":            "生成日時",
		"completed":               "完了",
		"rejected":                "却下",
		"failed":                  "失敗",
	})
}
