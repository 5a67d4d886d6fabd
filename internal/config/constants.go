// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "smart-exam-api"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort           = ":8080"
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "json"
	DefaultTestCount            = 10
	DefaultCandidateListLimit   = 200
	DefaultPresignExpiryMinutes = 15
)
