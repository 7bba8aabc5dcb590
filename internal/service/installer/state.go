package installer

type InstallState struct {
	EnvVars map[string]string
}

// NewInstallState starts from the current settings so untouched values
// survive a rewrite of the .env file.
func NewInstallState(current map[string]string) *InstallState {
	vars := make(map[string]string, len(current))
	for k, v := range current {
		vars[k] = v
	}
	return &InstallState{
		EnvVars: vars,
	}
}
