package levels

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]int
	}{
		{
			name:  "plain",
			input: "2,2,2\n2,1,2\n2,2,2\n",
			want:  [][]int{{2, 2, 2}, {2, 1, 2}, {2, 2, 2}},
		},
		{
			name:  "no trailing newline",
			input: "0,3\n1,0",
			want:  [][]int{{0, 3}, {1, 0}},
		},
		{
			name:  "spaces around values",
			input: " 0, 3 ,1\n2 ,2,  2\n",
			want:  [][]int{{0, 3, 1}, {2, 2, 2}},
		},
		{
			name:  "crlf and trailing blank lines",
			input: "1,0\r\n0,0\r\n\r\n\r\n",
			want:  [][]int{{1, 0}, {0, 0}},
		},
		{
			name:  "whitespace only line",
			input: "1,0\n   \n0,0\n",
			want:  [][]int{{1, 0}, {0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input), "test.txt")
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantCol  int
	}{
		{name: "letter", input: "0,0\n0,x\n", wantLine: 2, wantCol: 3},
		{name: "float", input: "1.5,0\n", wantLine: 1, wantCol: 1},
		{name: "empty field", input: "0,,0\n", wantLine: 1, wantCol: 3},
		{name: "ragged", input: "0,0,0\n0,0\n", wantLine: 2},
		{name: "empty file", input: "", wantLine: 1},
		{name: "only blank lines", input: "\n\n\n", wantLine: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), "bad.txt")
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !errors.Is(err, ErrMalformedLevel) {
				t.Errorf("error %v does not match ErrMalformedLevel", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not a *ParseError", err)
			}
			if pe.File != "bad.txt" {
				t.Errorf("File = %q, want bad.txt", pe.File)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", pe.Line, tt.wantLine)
			}
			if tt.wantCol != 0 && pe.Column != tt.wantCol {
				t.Errorf("Column = %d, want %d", pe.Column, tt.wantCol)
			}
			if !strings.HasPrefix(err.Error(), "bad.txt:") {
				t.Errorf("Error() = %q, want file prefix", err.Error())
			}
		})
	}
}

func TestFormatParses(t *testing.T) {
	rows := [][]int{{2, 2, 2, 2}, {2, 1, 3, 2}, {2, 0, 0, 2}}

	text := Format(rows)
	if text != "2,2,2,2\n2,1,3,2\n2,0,0,2\n" {
		t.Errorf("Format() = %q", text)
	}

	got, err := Parse(strings.NewReader(text), "fmt")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("Parse(Format()) = %v, want %v", got, rows)
	}
}
