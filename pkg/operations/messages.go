package operations

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Menu labels
		"List Directory":   "ディレクトリ一覧",
		"Copy File":        "ファイルをコピー",
		"Move File":        "ファイルを移動",
		"Delete File":      "ファイルを削除",
		"Search Files":     "ファイルを検索",
		"Create Directory": "ディレクトリを作成",
		"Delete Directory": "ディレクトリを削除",

		// Prompts
		"Enter directory path to list: ":                                      "一覧表示するディレクトリのパス: ",
		"Enter source file path: ":                                            "コピー元ファイルのパス: ",
		"Enter destination file path (including filename): ":                  "コピー先ファイルのパス（ファイル名を含む）: ",
		"Enter path of file to delete: ":                                      "削除するファイルのパス: ",
		"Enter directory path to search: ":                                    "検索するディレクトリのパス: ",
		"Enter file name or extension to search for: ":                        "検索するファイル名または拡張子: ",
		"Enter path of directory to create (Include the name of directory): ": "作成するディレクトリのパス（ディレクトリ名を含む）: ",
		"Enter path of directory to delete: ":                                 "削除するディレクトリのパス: ",

		// Progress
		"Listing contents of directory: %s":         "ディレクトリの内容: %s",
		"Copying file from %s to %s":                "%s を %s にコピーしています",
		"Moving file from %s to %s":                 "%s を %s に移動しています",
		"Attempting to delete file: %s":             "ファイルを削除しています: %s",
		"Searching for files in %s with term: %s":   "%s 内で「%s」を検索しています",
		"Attempting to create directory: %s":        "ディレクトリを作成しています: %s",
		"Attempting to delete directory: %s":        "ディレクトリを削除しています: %s",

		// Completion
		"Directory listing complete.":     "ディレクトリの一覧表示が完了しました。",
		"File copied successfully.":       "ファイルをコピーしました。",
		"File moved successfully.":        "ファイルを移動しました。",
		"File deleted successfully.":      "ファイルを削除しました。",
		"Search complete.":                "検索が完了しました。",
		"Directory created successfully.": "ディレクトリを作成しました。",
		"Directory deleted successfully.": "ディレクトリを削除しました。",

		// Rejections
		"Directory does not exist or is not a directory.": "ディレクトリが存在しないか、ディレクトリではありません。",
		"Source file does not exist or is not a file.":    "コピー元ファイルが存在しないか、ファイルではありません。",
		"File does not exist or is not a file.":           "ファイルが存在しないか、ファイルではありません。",
		"Destination path must include a filename.":       "移動先のパスにはファイル名を含めてください。",
		"Directory already exists.":                       "ディレクトリは既に存在します。",
		"Directory is not empty. Cannot delete.":          "ディレクトリが空ではないため削除できません。",
	})
}
