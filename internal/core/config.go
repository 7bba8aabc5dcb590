package core

type AppConfig interface {
	GetRuntimePath() string
	GetDatabasePath() string
	GetHistoryFilePath() string
}
