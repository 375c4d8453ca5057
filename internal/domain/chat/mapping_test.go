package chat

import (
	"reflect"
	"testing"
)

func TestParseUserMapping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		raw     string
		want    UserMapping
		wantErr bool
	}{
		{
			name: "valid mapping",
			raw:  `{"Fabio": "U12345678", "Michael": "U23456789"}`,
			want: UserMapping{"Fabio": "U12345678", "Michael": "U23456789"},
		},
		{name: "empty input", raw: "", want: UserMapping{}},
		{name: "malformed json", raw: `{"Fabio": `, wantErr: true},
		{name: "wrong shape", raw: `["Fabio"]`, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseUserMapping(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseUserMapping error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("mapping = %v, want %v", got, tt.want)
			}
		})
	}
}
