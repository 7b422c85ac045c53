package models

// IconWebsite is the default icon tag for new links.
const IconWebsite = "website"

// FallbackIconGlyph is rendered for unknown icon tags.
const FallbackIconGlyph = "link-45deg"

// Icon is one entry of the fixed icon catalog offered in the setup form.
type Icon struct {
	Value string // Tag stored in ProfileLink.Icon
	Label string
	Glyph string // Bootstrap Icons name, without the "bi-" prefix
	Group string
}

// IconCatalog lists every selectable icon in display order.
var IconCatalog = []Icon{
	{"instagram", "Instagram", "instagram", "Social"},
	{"linkedin", "LinkedIn", "linkedin", "Social"},
	{"twitter", "Twitter", "twitter", "Social"},
	{"youtube", "YouTube", "youtube", "Social"},
	{"tiktok", "TikTok", "tiktok", "Social"},
	{"facebook", "Facebook", "facebook", "Social"},
	{"snapchat", "Snapchat", "snapchat", "Social"},
	{"pinterest", "Pinterest", "pinterest", "Social"},
	{"discord", "Discord", "discord", "Social"},
	{"telegram", "Telegram", "telegram", "Social"},

	{"whatsapp", "WhatsApp", "whatsapp", "Communication"},
	{"email", "Email", "envelope", "Communication"},
	{"phone", "Phone", "telephone", "Communication"},
	{"message", "Message", "chat-dots", "Communication"},
	{"chat", "Chat", "chat", "Communication"},

	{"website", "Website", "globe", "Business"},
	{"portfolio", "Portfolio", "briefcase", "Business"},
	{"resume", "Resume", "file-earmark-person", "Business"},
	{"business", "Business", "building", "Business"},
	{"briefcase", "Briefcase", "briefcase", "Business"},
	{"building", "Company", "building", "Business"},
	{"shop", "Shop", "shop", "Business"},
	{"store", "Store", "shop-window", "Business"},

	{"github", "GitHub", "github", "Technology"},
	{"google", "Google", "google", "Technology"},
	{"code", "Code", "code-slash", "Technology"},
	{"laptop", "Laptop", "laptop", "Technology"},
	{"mobile", "Mobile", "phone", "Technology"},

	{"spotify", "Spotify", "spotify", "Media"},
	{"netflix", "Netflix", "play-circle", "Media"},
	{"twitch", "Twitch", "twitch", "Media"},
	{"podcast", "Podcast", "mic", "Media"},
	{"music", "Music", "music-note-beamed", "Media"},
	{"video", "Video", "camera-video", "Media"},
	{"camera", "Camera", "camera", "Media"},
	{"mic", "Microphone", "mic", "Media"},

	{"calendar", "Calendar", "calendar-event", "Services"},
	{"clock", "Clock", "clock", "Services"},
	{"location", "Location", "geo-alt", "Services"},
	{"map", "Map", "map", "Services"},
	{"navigation", "Navigation", "compass", "Services"},
	{"car", "Car", "car-front", "Services"},
	{"plane", "Plane", "airplane", "Services"},
	{"train", "Train", "train-front", "Services"},

	{"menu", "Menu", "list-ul", "Food"},
	{"restaurant", "Restaurant", "cup-hot", "Food"},
	{"food", "Food", "egg-fried", "Food"},
	{"coffee", "Coffee", "cup-hot", "Food"},
	{"pizza", "Pizza", "circle", "Food"},
	{"burger", "Burger", "circle", "Food"},
	{"utensils", "Utensils", "utensils", "Food"},

	{"heart", "Heart", "heart", "Health"},
	{"star", "Star", "star", "Health"},
	{"fitness", "Fitness", "heart-pulse", "Health"},
	{"gym", "Gym", "dumbbell", "Health"},
	{"yoga", "Yoga", "person-standing", "Health"},
	{"meditation", "Meditation", "sun", "Health"},

	{"book", "Book", "book", "Education"},
	{"graduation", "Graduation", "mortarboard", "Education"},
	{"school", "School", "building", "Education"},
	{"university", "University", "building", "Education"},
	{"course", "Course", "journal-text", "Education"},
	{"certificate", "Certificate", "award", "Education"},

	{"gift", "Gift", "gift", "Other"},
	{"ticket", "Ticket", "ticket-perforated", "Other"},
	{"event", "Event", "calendar-event", "Other"},
	{"party", "Party", "balloon", "Other"},
	{"game", "Game", "controller", "Other"},
	{"sport", "Sport", "trophy", "Other"},
	{"art", "Art", "palette", "Other"},
	{"design", "Design", "brush", "Other"},
}

var iconGlyphs = func() map[string]string {
	m := make(map[string]string, len(IconCatalog))
	for _, icon := range IconCatalog {
		m[icon.Value] = icon.Glyph
	}
	return m
}()

// IconGlyph returns the glyph for tag, or FallbackIconGlyph if tag is unknown.
func IconGlyph(tag string) string {
	if glyph, ok := iconGlyphs[tag]; ok {
		return glyph
	}
	return FallbackIconGlyph
}

// IsKnownIcon reports whether tag is part of IconCatalog.
func IsKnownIcon(tag string) bool {
	_, ok := iconGlyphs[tag]
	return ok
}
