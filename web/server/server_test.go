package server

import (
	"image/png"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func testServer() *Server {
	return NewServer(0, log.New(io.Discard, "", 0))
}

func TestHandleHealth(t *testing.T) {
	recorder := httptest.NewRecorder()
	testServer().handleHealth(recorder, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON response, got %q", ct)
	}
}

func TestHandleRender_ReturnsPNG(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/render?scene=cornell&width=16&height=12&spp=1", nil)
	testServer().handleRender(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	img, err := png.Decode(recorder.Body)
	if err != nil {
		t.Fatalf("Response is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 12 {
		t.Errorf("Expected a 16x12 frame, got %v", img.Bounds())
	}
}

func TestHandleRender_UnknownScene(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/render?scene=nope", nil)
	testServer().handleRender(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for an unknown scene, got %d", recorder.Code)
	}
}

func TestParseRenderRequest(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    RenderRequest
		wantErr bool
	}{
		{
			"defaults",
			"",
			RenderRequest{Scene: "default", Width: 400, Height: 300, SamplesPerPixel: 20},
			false,
		},
		{
			"all parameters",
			"scene=cornell&width=200&height=150&spp=8",
			RenderRequest{Scene: "cornell", Width: 200, Height: 150, SamplesPerPixel: 8},
			false,
		},
		{"non-numeric width", "width=wide", RenderRequest{}, true},
		{"zero height", "height=0", RenderRequest{}, true},
		{"oversized spp", "spp=999999", RenderRequest{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			got, err := parseRenderRequest(values)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Got %+v, expected %+v", got, tt.want)
			}
		})
	}
}
