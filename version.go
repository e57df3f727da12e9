package main

// Overridden at build time with -ldflags "-X main.VERSION=..."
var (
	VERSION   = "dev"
	COMP_TIME = "unknown"
)
