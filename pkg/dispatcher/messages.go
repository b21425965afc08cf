package dispatcher

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"Welcome to the File Manager!":                         "ファイルマネージャーへようこそ！",
		"Thank you for using File Manager. Goodbye!":           "ファイルマネージャーをご利用いただきありがとうございました。さようなら！",
		"--- File Manager Menu ---":                            "--- ファイルマネージャー メニュー ---",
		"Exit":                                                 "終了",
		"Enter your choice: ":                                  "番号を選択してください: ",
		"Invalid input. Please enter a number between 1 and %d.": "無効な入力です。1から%dまでの数字を入力してください。",
		"Invalid option. Please try again.":                    "無効な選択肢です。もう一度お試しください。",
		"An error occurred: %s":                                "エラーが発生しました: %s",
		"Please try again or choose a different operation.":    "もう一度試すか、別の操作を選択してください。",
	})
}
