package constants

// Contact channels a client may opt into.
var ContactModes = []string{
	"Direct Call",
	"Viber",
	"WhatsApp",
	"Facebook Messenger",
}

func IsValidContactMode(mode string) bool {
	for _, m := range ContactModes {
		if m == mode {
			return true
		}
	}
	return false
}
