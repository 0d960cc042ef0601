package respond

import (
	"regexp"
)

var (
	// URL に埋め込まれた認証情報（feed の link など）
	urlCredentialPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)

	// クエリ文字列のトークン類
	tokenParamPattern = regexp.MustCompile(`(?i)([?&](?:token|key|api_key|access_token|secret)=)[^&\s"]+`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = urlCredentialPattern.ReplaceAllString(msg, "://$1:****@")
	msg = tokenParamPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
