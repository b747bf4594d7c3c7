package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# NanoLab control panel configuration
version: "1.0"

ui:
  # Colour theme: light or dark
  theme: light
  # Page shown at launch (welcome, settings_menu, data, water, led, fan,
  # camera, sensor, about, storage, schedule, settings_comparison)
  start_page: welcome
  # Use the alternate screen buffer
  alt_screen: true
  # Re-apply the theme when this file changes
  watch_config: false

output:
  # Format used when settings are saved: text, json, yaml, csv, markdown
  format: text
  # auto, always or never
  color_mode: auto
  verbose: false
  no_emoji: false

data:
  # Placeholder experiment on the data page
  samples: 50
  max_value: 20
  # 0 picks a new seed on every run
  seed: 0
`
}

// MinimalSampleConfig returns a compact configuration file
func MinimalSampleConfig() string {
	return `version: "1.0"
ui:
  theme: light
output:
  format: text
`
}
