// Package spotlaunch holds shared metadata for the spotlaunch launcher.
package spotlaunch

// Version is the spotlaunch release version.
const Version = "0.3.0"
