// Package config provides user preferences for menuconfig.
//
// Preferences are kept in a YAML file and cover the parts of the editor that
// are not part of an option schema: the banner title, where saved values are
// written, the header comment of that file, where disks are looked up and
// the log level.
//
// # Configuration File Location
//
// The preferences file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/menuconfig/config.yaml or $HOME/.config/menuconfig/config.yaml
//   - macOS: $HOME/.config/menuconfig/config.yaml
//   - Windows: %LOCALAPPDATA%\menuconfig\config.yaml
//
// A missing file is not an error; defaults are used.
//
// # Environment Overrides
//
// A few settings can be overridden per invocation:
//
//	MENUCONFIG_CONFIG_DIR    directory holding config.yaml
//	MENUCONFIG_CONFIG_FILE   where saved values are read and written
//	MENUCONFIG_DEVICE_DIR    directory scanned for disks
//	MENUCONFIG_LOG_LEVEL     debug, info, warn or error
//
// # Usage Example
//
//	path, err := config.GetConfigPath()
//	if err != nil {
//	    return err
//	}
//	prefs, err := config.LoadFrom(path)
//	if err != nil {
//	    return err
//	}
//	store, _ := dotconfig.LoadStore(schemaPath, prefs.ConfigFile)
package config
