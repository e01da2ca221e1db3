package screenshot

import (
	"net/url"
	"testing"
)

func TestScreenshotURL(t *testing.T) {
	c := NewClient("https://image.thum.io/get")

	got, err := c.ScreenshotURL("https://eksempel.no")
	if err != nil {
		t.Fatalf("ScreenshotURL returned error %v", err)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("ScreenshotURL returned unparseable url %q: %v", got, err)
	}
	if u.Host != "image.thum.io" || u.Path != "/get" {
		t.Errorf("base = %s%s; want image.thum.io/get", u.Host, u.Path)
	}

	q := u.Query()
	if q.Get("url") != "https://eksempel.no" {
		t.Errorf("url param = %q; want target url", q.Get("url"))
	}
	if q.Get("width") != "600" || q.Get("height") != "400" {
		t.Errorf("dimensions = %sx%s; want 600x400", q.Get("width"), q.Get("height"))
	}
}

func TestScreenshotURLNotConfigured(t *testing.T) {
	c := NewClient("")

	if _, err := c.ScreenshotURL("https://eksempel.no"); err != ErrNotConfigured {
		t.Errorf("ScreenshotURL on empty base returned %v; want ErrNotConfigured", err)
	}
}
