package core

const (
	AppName       = "gcp"
	AppVersion    = "0.1.0"
	RepositoryURL = "https://github.com/sandevgo/gcp"
)
