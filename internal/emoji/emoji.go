package emoji

// emojiMap holds [emoji, fallback] pairs
var emojiMap = map[string][2]string{
	"welcome":             {"🧪", "[LAB]"},
	"settings_menu":       {"⚙️", "[SET]"},
	"data":                {"📊", "[DAT]"},
	"water":               {"💧", "[H2O]"},
	"led":                 {"💡", "[LED]"},
	"fan":                 {"🌀", "[FAN]"},
	"camera":              {"📷", "[CAM]"},
	"sensor":              {"🌡️", "[ATM]"},
	"about":               {"ℹ️", "[INF]"},
	"storage":             {"💾", "[STO]"},
	"schedule":            {"📅", "[CAL]"},
	"settings_comparison": {"⚖️", "[CMP]"},

	"back":    {"←", "<"},
	"forward": {"→", ">"},
	"theme":   {"🌗", "[THM]"},
	"saved":   {"✅", "[OK]"},
	"sent":    {"🚀", "[TX]"},
	"error":   {"❌", "[ERR]"},
	"warning": {"⚠️", "[WRN]"},
	"help":    {"❓", "[?]"},
	"door":    {"🚪", "[EXIT]"},
}

// Set resolves glyph keys, either to emoji or to ASCII fallbacks
type Set struct {
	disabled bool
}

// New returns a Set; disabled selects the ASCII fallbacks
func New(disabled bool) Set {
	return Set{disabled: disabled}
}

// Disabled reports whether fallbacks are in use
func (s Set) Disabled() bool { return s.disabled }

// Get returns the emoji or fallback for key
func (s Set) Get(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if s.disabled {
			return mapping[1]
		}
		return mapping[0]
	}
	return "[?]"
}
