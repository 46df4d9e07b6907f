// Package util collects small helpers shared across the core packages:
// indent-aware trace printing in the teacher's style, plus thin glog
// forwarders for operationally relevant events.
package util

import (
	"fmt"

	log "github.com/golang/glog"
)

var (
	// debugLibrary controls DbgPrint output. Since this flips a package
	// global it MUST NOT be toggled concurrently with pipeline runs.
	debugLibrary = false
	// debugSchema controls DbgSchema output, which is noisy and meant to
	// be enabled selectively while debugging a single model.
	debugSchema = false
	// maxCharsPerLine truncates DbgPrint output.
	maxCharsPerLine = 1000

	globalIndent = ""
)

// SetDebugLibrary toggles DbgPrint output.
func SetDebugLibrary(b bool) { debugLibrary = b }

// SetDebugSchema toggles DbgSchema output.
func SetDebugSchema(b bool) { debugSchema = b }

// DbgPrint prints v if debugLibrary is set. v has Printf format.
func DbgPrint(v ...interface{}) {
	if !debugLibrary {
		return
	}
	out := fmt.Sprintf(v[0].(string), v[1:]...)
	if len(out) > maxCharsPerLine {
		out = out[:maxCharsPerLine]
	}
	fmt.Println(globalIndent + out)
}

// DbgSchema prints v if debugSchema is set. v has Printf format.
func DbgSchema(v ...interface{}) {
	if debugSchema {
		fmt.Printf(v[0].(string), v[1:]...)
	}
}

// DbgErr DbgPrints err and returns it unchanged.
func DbgErr(err error) error {
	DbgPrint("ERR: " + err.Error())
	return err
}

// Indent increases the DbgPrint indent level.
func Indent() {
	if !debugLibrary {
		return
	}
	globalIndent += ". "
}

// Dedent decreases the DbgPrint indent level.
func Dedent() {
	if !debugLibrary {
		return
	}
	if len(globalIndent) >= 2 {
		globalIndent = globalIndent[:len(globalIndent)-2]
	}
}

// Tracef logs an internal trace event through glog at V(1).
func Tracef(format string, args ...interface{}) {
	log.V(1).Infof(format, args...)
}

// Warnf logs a recoverable condition through glog.
func Warnf(format string, args ...interface{}) {
	log.Warningf(format, args...)
}

// Errorf logs an unrecoverable condition through glog.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}
