package api

import "testing"

func TestExtractURL(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantURL string
		wantOK  bool
		wantErr bool
	}{
		{"single url", `{"files":["https://h.example/abc"]}`, "https://h.example/abc", true, false},
		{"empty list", `{"files":[]}`, "", false, false},
		{"missing field", `{}`, "", false, false},
		{"multiple urls", `{"files":["https://h.example/a","https://h.example/b"]}`, "", false, false},
		{"malformed json", `{"files":`, "", false, true},
		{"wrong type", `{"files":"https://h.example/abc"}`, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, ok, err := ExtractURL([]byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if url != tt.wantURL {
				t.Errorf("url = %q, want %q", url, tt.wantURL)
			}
		})
	}
}
