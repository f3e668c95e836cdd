package version

// Version is the current release of the bin2s tool.
const Version = "1.0.0"
