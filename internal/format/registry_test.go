package format

import "testing"

func TestNormalize_Identity(t *testing.T) {
	r := New()
	for _, id := range r.Canonical() {
		got, ok := r.Normalize(string(id))
		if !ok {
			t.Errorf("Normalize(%q) not recognized", id)
			continue
		}
		if got != id {
			t.Errorf("Normalize(%q) = %q, want identity", id, got)
		}
	}
}

func TestNormalize_Aliases(t *testing.T) {
	r := New()

	tests := []struct {
		token string
		want  ID
	}{
		{"jpeg", JPG},
		{"JPEG", JPG},
		{"tif", TIFF},
		{"heic", HEIF},
		{"arw", RAW},
		{"CR2", RAW},
		{"nef", RAW},
		{"orf", RAW},
		{"rw2", RAW},
		{"dng", RAW},
		{"raw", RAW},
	}

	for _, tt := range tests {
		got, ok := r.Normalize(tt.token)
		if !ok {
			t.Errorf("Normalize(%q) not recognized", tt.token)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestNormalize_Unknown(t *testing.T) {
	r := New()

	for _, token := range []string{"", "docx", "jpg2", "image/png", ".png"} {
		if got, ok := r.Normalize(token); ok {
			t.Errorf("Normalize(%q) = %q, want not recognized", token, got)
		}
	}
}

func TestIsValidTarget(t *testing.T) {
	r := New()

	tests := []struct {
		token string
		want  bool
	}{
		{"png", true},
		{"jpeg", true},
		{"tif", true},
		{"dxf", true},
		{"webm", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := r.IsValidTarget(tt.token); got != tt.want {
			t.Errorf("IsValidTarget(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestCanConvert(t *testing.T) {
	r := New()

	tests := []struct {
		from, to string
		want     bool
	}{
		{"png", "jpg", true},
		{"png", "jpeg", true}, // alias target
		{"jpeg", "png", true}, // alias source
		{"cr2", "tiff", true}, // raw variant
		{"svg", "pdf", true},
		{"pdf", "svg", true},
		{"pdf", "xcf", false}, // both known, pair unsupported
		{"png", "xcf", false},
		{"gif", "bmp", false},
		{"nope", "png", false}, // unknown source
		{"png", "nope", false}, // unknown target
		{"", "", false},
	}

	for _, tt := range tests {
		if got := r.CanConvert(tt.from, tt.to); got != tt.want {
			t.Errorf("CanConvert(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

// CanConvert must agree with OutputsFor for every matrix entry.
func TestCanConvert_MatchesOutputs(t *testing.T) {
	r := New()
	for _, from := range r.Canonical() {
		targets := make(map[ID]bool)
		for _, to := range r.OutputsFor(from) {
			targets[to] = true
		}
		for _, to := range r.Canonical() {
			if got := r.CanConvert(string(from), string(to)); got != targets[to] {
				t.Errorf("CanConvert(%s, %s) = %v, outputs say %v", from, to, got, targets[to])
			}
		}
	}
}

func TestOutputsFor_Unknown(t *testing.T) {
	r := New()
	if out := r.OutputsFor("bogus"); len(out) != 0 {
		t.Errorf("OutputsFor(bogus) = %v, want empty", out)
	}
}

// Every input key must declare at least one target, and every declared
// target must itself be a canonical matrix key.
func TestMatrix_Closed(t *testing.T) {
	r := New()
	for _, from := range r.Canonical() {
		outputs := r.OutputsFor(from)
		if len(outputs) == 0 {
			t.Errorf("format %q has no valid targets", from)
		}
		for _, to := range outputs {
			if !r.IsValidTarget(string(to)) {
				t.Errorf("target %q of %q is not a matrix key", to, from)
			}
		}
	}
}

func TestFamilyOf(t *testing.T) {
	r := New()
	for _, id := range r.Canonical() {
		if _, ok := FamilyOf(id); !ok {
			t.Errorf("format %q has no strategy family", id)
		}
	}
	if _, ok := FamilyOf("bogus"); ok {
		t.Error("FamilyOf(bogus) should not resolve")
	}
}
