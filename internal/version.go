package internal

// Version is the current shoptrans release version.
const Version = "0.3.1"
