package dockweave

// Version is the current release of dockweave.
const Version = "0.4.1"
