package scan

import (
	"testing"
)

func TestMatchAPI(t *testing.T) {
	var tests = []struct {
		name    string
		api     string
		line    string
		wantCol int
		wantOK  bool
	}{
		{"bare call", "eval", "result = eval(user_input)", 9, true},
		{"start of line", "eval", "eval(code)", 0, true},
		{"dotted path", "os.system", "    os.system(cmd)", 4, true},
		{"prefixed identifier", "eval", "myeval(x)", 0, false},
		{"suffixed identifier", "eval", "evaluate(x)", 0, false},
		{"underscore prefix", "eval", "_eval(x)", 0, false},
		{"underscore suffix", "eval", "eval_(x)", 0, false},
		{"digit suffix", "eval", "eval2(x)", 0, false},
		{"no occurrence", "eval", "return value", 0, false},
		{"empty line", "eval", "", 0, false},
		{"rust path", "std::process::Command", "let c = std::process::Command::new(prog);", 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, ok := MatchAPI(tt.api, tt.line)
			if ok != tt.wantOK {
				t.Fatalf("MatchAPI(%q, %q) ok = %v, want %v", tt.api, tt.line, ok, tt.wantOK)
			}
			if ok && col != tt.wantCol {
				t.Errorf("MatchAPI(%q, %q) col = %d, want %d", tt.api, tt.line, col, tt.wantCol)
			}
		})
	}
}

func TestMatchAPIFirstOccurrenceWins(t *testing.T) {
	col, ok := MatchAPI("eval", "eval(eval(x))")
	if !ok || col != 0 {
		t.Errorf("got col=%d ok=%v, want the first occurrence at column 0", col, ok)
	}
}
