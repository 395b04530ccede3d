package config

const (
	defaultRGBPattern      = "CAMERA_RGB"
	defaultNIRPattern      = "CAMERA_NIR"
	defaultExtension       = "iiq"
	defaultThresholdMillis = 500
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Channels: Channels{
			RGBPattern: defaultRGBPattern,
			NIRPattern: defaultNIRPattern,
			Extension:  defaultExtension,
		},
		Matching: Matching{
			ThresholdMillis: defaultThresholdMillis,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
