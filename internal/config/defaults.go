package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"token":    "",
		"user":     "",
		"device":   "",
		"sound":    "",
		"priority": "",
		"timeout":  30,
	}
}
