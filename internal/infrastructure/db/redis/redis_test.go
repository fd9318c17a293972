package redis

import (
	"context"
	"testing"
	"time"
)

func TestConnect_EmptyAddrDisablesRedis(t *testing.T) {
	client, err := Connect(context.Background(), Config{})
	if err != nil || client != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", client, err)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	client, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	if err == nil || client != nil {
		t.Fatalf("expected a ping error, got (%v, %v)", client, err)
	}
}

func TestConfigOptions(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantAddr string
		wantDB   int
		wantErr  bool
	}{
		{"host and port", Config{Addr: "cache:6379", DB: 2}, "cache:6379", 2, false},
		{"url", Config{Addr: "redis://cache:6380/4", DB: 2}, "cache:6380", 4, false},
		{"bad url", Config{Addr: "redis://cache:6379/notadb"}, "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.cfg.options()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts.Addr != tt.wantAddr || opts.DB != tt.wantDB {
				t.Fatalf("got %s db %d", opts.Addr, opts.DB)
			}
		})
	}
}
