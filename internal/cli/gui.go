package cli

import (
	"neonfocus/internal/gui"
	"neonfocus/internal/ui/preferences"
)

func runDesktop(settings preferences.Settings, configPath string) error {
	return gui.Run(gui.Options{
		AppName:    AppName,
		AppID:      "com.neonfocus.app",
		ConfigPath: configPath,
		Settings:   settings,
	})
}
