package settings

import (
	"fmt"
	"strings"
)

// Form identifiers, matching the page they are edited on
const (
	FormLED    = "led"
	FormWater  = "water"
	FormFan    = "fan"
	FormCamera = "camera"
	FormSensor = "sensor"
)

// FormatHMS renders seconds as its non-zero hour, minute and second
// components, e.g. "1h 2m 5s" or "6m". Zero renders as "0s".
func FormatHMS(totalSeconds int) string {
	if totalSeconds <= 0 {
		return "0s"
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	parts := make([]string, 0, 3)
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, " ")
}

// LEDForm configures the grow light: on-time per pulse, pulses per cycle,
// minutes between cycles and the light colour.
type LEDForm struct {
	*Form
	Color *Color
}

// NewLEDForm returns the LED form with default values
func NewLEDForm() *LEDForm {
	f := &LEDForm{
		Form: NewForm(FormLED, "LED Settings", ledSummary,
			Field{Name: "duration", Label: "Duration", Unit: "s", Min: 1, Max: 60, Value: 10},
			Field{Name: "frequency", Label: "Frequency", Unit: "x", Min: 1, Max: 100, Value: 1},
			Field{Name: "interval", Label: "Interval", Unit: "min", Min: 1, Max: 120, Value: 30},
		),
		Color: NewColor(),
	}
	f.extra = func() []Entry {
		return []Entry{{Key: "color", Value: f.Color.Hex()}}
	}
	return f
}

func ledSummary(v Values) string {
	total := v["duration"] * v["frequency"]
	return fmt.Sprintf("Total on-time: %ds | Interval: %d min", total, v["interval"])
}

// NewWaterPumpForm returns the water pump form with default values
func NewWaterPumpForm() *Form {
	return NewForm(FormWater, "Water Pump Settings", waterSummary,
		Field{Name: "duration", Label: "Duration", Unit: "s", Min: 1, Max: 600, Value: 30},
		Field{Name: "frequency", Label: "Frequency", Unit: "x", Min: 1, Max: 48, Value: 2},
		Field{Name: "interval", Label: "Interval", Unit: "h", Min: 1, Max: 24, Value: 6},
	)
}

func waterSummary(v Values) string {
	total := v["duration"] * v["frequency"]
	return fmt.Sprintf("Total pumping: %s | Interval: %d h", FormatHMS(total), v["interval"])
}

// NewFanForm returns the fan form with default values
func NewFanForm() *Form {
	return NewForm(FormFan, "Fan Settings", fanSummary,
		Field{Name: "speed", Label: "Speed", Unit: "%", Min: 0, Max: 100, Value: 50},
		Field{Name: "duration", Label: "Duration", Unit: "min", Min: 1, Max: 240, Value: 15},
		Field{Name: "interval", Label: "Interval", Unit: "h", Min: 1, Max: 24, Value: 2},
	)
}

func fanSummary(v Values) string {
	if v["speed"] == 0 {
		return "Fan off"
	}
	return fmt.Sprintf("Fan at %d%% for %s | Interval: %d h",
		v["speed"], FormatHMS(v["duration"]*60), v["interval"])
}

// NewCameraForm returns the camera form with default values
func NewCameraForm() *Form {
	return NewForm(FormCamera, "Camera Settings", cameraSummary,
		Field{Name: "captures", Label: "Captures", Unit: "x", Min: 1, Max: 100, Value: 12},
		Field{Name: "interval", Label: "Interval", Unit: "min", Min: 1, Max: 120, Value: 60},
		Field{Name: "exposure", Label: "Exposure", Unit: "ms", Min: 1, Max: 1000, Value: 100},
	)
}

func cameraSummary(v Values) string {
	window := v["captures"] * v["interval"] * 60
	return fmt.Sprintf("%d captures over %s | Exposure: %d ms", v["captures"], FormatHMS(window), v["exposure"])
}

// NewSensorForm returns the atmospheric sensor form with default values
func NewSensorForm() *Form {
	return NewForm(FormSensor, "Atmospheric Sensor", sensorSummary,
		Field{Name: "rate", Label: "Samples per hour", Unit: "/h", Min: 1, Max: 60, Value: 4},
		Field{Name: "window", Label: "Averaging window", Unit: "samples", Min: 1, Max: 60, Value: 4},
	)
}

func sensorSummary(v Values) string {
	rate := v["rate"]
	if rate <= 0 {
		rate = 1
	}
	every := 3600 / rate
	window := v["window"] * every
	return fmt.Sprintf("Sample every %s | Average over %s", FormatHMS(every), FormatHMS(window))
}
