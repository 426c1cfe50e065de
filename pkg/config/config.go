package config

import "time"

// Snake starting size
const (
	InitialLength = 1
	InitialGirth  = 1
)

// Per-apple growth defaults
const (
	DefaultApples     = 1
	DefaultLengthGain = 2
	DefaultGirthGain  = 3
)

// Pacing settings
const (
	ReplayStepDelay = 100 * time.Millisecond // Fixed 10fps playback
)

// Webserver settings
const (
	ServerAddr   = ":8080"
	ServerTick   = 250 * time.Millisecond // Interval between apples in a server-driven run
	MaxRunApples = 10000                  // Cap on a single "run" action from a client
)

// Storage locations
const (
	RecordDir = "records"
	DBPath    = "data/snakegrow.db"
)

// Glyphs for snake art rendering
const (
	CharHead = "🐍"
	CharBody = "="
	CharTail = "<"
)
