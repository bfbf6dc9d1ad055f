package version

// Version is the current release of smellscan.
var Version = "0.1.0"
