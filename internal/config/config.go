package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Addr is the listen address for the fiber app.
	Addr string
	// WordFile points at a newline-separated word bank. Empty means
	// the built-in default list.
	WordFile string
	// SendBuffer is the per-session outbound queue length. A session
	// whose queue overflows is treated as disconnected.
	SendBuffer int
	// MsgRate / MsgBurst bound inbound messages per session per second.
	MsgRate  int
	MsgBurst int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		Addr:       getenv("ADDR", ":3000"),
		WordFile:   getenv("WORD_FILE", ""),
		SendBuffer: getenvInt("SEND_BUFFER", 256),
		MsgRate:    getenvInt("MSG_RATE", 100),
		MsgBurst:   getenvInt("MSG_BURST", 200),
	}
}
