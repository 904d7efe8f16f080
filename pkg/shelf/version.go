package shelf

// Version is the shelf library and CLI version.
const Version = "0.1.0"
