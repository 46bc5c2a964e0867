package model

// Version is the current treeviz release.
const Version = "0.3.1"
