// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the generation pipeline from a loaded case
// to written source units, decoupled from any specific entrypoint.
package app
