// Package conf discovers and parses sysctl-style configuration sources.
//
// Sources are key = value files in the sysctl.d format: section-less INI
// with # and ; comments. Multiple sources overlay each other, last value
// wins, and setting names come out in canonical slash form ready for the
// applier.
package conf
