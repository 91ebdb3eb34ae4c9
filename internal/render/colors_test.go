package render

import "testing"

func TestARGBLayout(t *testing.T) {
	if got := argb(0x11, 0x22, 0x33, 0x44); got != 0x11223344 {
		t.Fatalf("ARGB = %#x; want 0x11223344", got)
	}
	if got := RGB(1, 2, 3); got != 0xFF010203 {
		t.Fatalf("RGB = %#x; want 0xFF010203", got)
	}
}

func TestChannels(t *testing.T) {
	a, r, g, b := Channels(0x80FF4010)
	if a != 0x80 || r != 0xFF || g != 0x40 || b != 0x10 {
		t.Fatalf("Channels = %x %x %x %x", a, r, g, b)
	}
}

func TestBackgroundIsOpaqueBlack(t *testing.T) {
	if Background != 0xFF000000 {
		t.Fatalf("Background = %#x", Background)
	}
}
