package main

// Version is the version of the CLI, set at build time with
// -ldflags "-X main.Version=...".
var Version = "0.3.0"
