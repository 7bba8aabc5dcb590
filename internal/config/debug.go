package config

import "os"

func IsDebug() bool {
	return os.Getenv("GCP_DEBUG") == "1"
}
