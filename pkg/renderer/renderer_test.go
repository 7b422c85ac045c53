package renderer

import (
	"testing"

	"echotap.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

func TestSetFlashMessagesKeepsExisting(t *testing.T) {
	data := fiber.Map{FlashErrorKeyView: "inline"}
	SetFlashMessages(data, flashmessages.FlashMessages{Success: "saved", Error: "from session"})
	if data[FlashSuccessKeyView] != "saved" {
		t.Errorf("%s = %v, want saved", FlashSuccessKeyView, data[FlashSuccessKeyView])
	}
	if data[FlashErrorKeyView] != "inline" {
		t.Errorf("%s = %v, want inline", FlashErrorKeyView, data[FlashErrorKeyView])
	}
	if _, ok := data[FlashWarningKeyView]; ok {
		t.Errorf("%s set without a message", FlashWarningKeyView)
	}
}

func TestPhotoSrc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"data:image/jpeg;base64,AAAA", "data:image/jpeg;base64,AAAA"},
		{"javascript:alert(1)", ""},
		{"data:text/html;base64,AAAA", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := string(PhotoSrc(tt.in)); got != tt.want {
			t.Errorf("PhotoSrc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
