// Package app contains the core application logic. It defines the App
// struct, its configuration, and the run lifecycle (built-in tour or user
// scenario), decoupled from any specific entrypoint like a CLI.
package app
