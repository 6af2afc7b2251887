// pkg/quickcdc/params_test.go
package quickcdc

import (
	"errors"
	"testing"
)

func TestDeriveParams(t *testing.T) {
	tests := []struct {
		name       string
		targetSize int
		maxSize    int
		want       Params
	}{
		{"minimum target", 64, 128, Params{WindowSize: 20, MinSize: 27, MaxSize: 128}},
		{"small target", 128, 1024, Params{WindowSize: 41, MinSize: 54, MaxSize: 1024}},
		{"odd target", 1000, 2000, Params{WindowSize: 325, MinSize: 419, MaxSize: 2000}},
		{"64KiB target", 65536, 262144, Params{WindowSize: 21358, MinSize: 27396, MaxSize: 262144}},
		{"chunkdir defaults", 128000, 524288, Params{WindowSize: 41716, MinSize: 53507, MaxSize: 524288}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveParams(tt.targetSize, tt.maxSize)
			if err != nil {
				t.Fatalf("DeriveParams(%d, %d) failed: %v", tt.targetSize, tt.maxSize, err)
			}
			if got != tt.want {
				t.Errorf("DeriveParams(%d, %d) = %+v, want %+v", tt.targetSize, tt.maxSize, got, tt.want)
			}
		})
	}
}

func TestDeriveParamsErrors(t *testing.T) {
	tests := []struct {
		name       string
		targetSize int
		maxSize    int
		wantErr    error
	}{
		{"target below minimum", 63, 1024, ErrInsufficientTargetSize},
		{"zero target", 0, 1024, ErrInsufficientTargetSize},
		{"negative target", -64, 1024, ErrInsufficientTargetSize},
		{"max one short of twice target", 64, 127, ErrInsufficientMaxSize},
		{"max equals target", 4096, 4096, ErrInsufficientMaxSize},
		{"negative max", 64, -1, ErrInsufficientMaxSize},
		{"both invalid reports max first", 32, 10, ErrInsufficientMaxSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveParams(tt.targetSize, tt.maxSize)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DeriveParams(%d, %d) error = %v, want %v", tt.targetSize, tt.maxSize, err, tt.wantErr)
			}
		})
	}
}

func TestDeriveParamsBoundaryAccepted(t *testing.T) {
	// Exactly 2*target and exactly 64 are both valid
	if _, err := DeriveParams(64, 128); err != nil {
		t.Errorf("DeriveParams(64, 128) should succeed, got %v", err)
	}
	if _, err := DeriveParams(100, 201); err != nil {
		t.Errorf("DeriveParams(100, 201) should succeed, got %v", err)
	}
}
