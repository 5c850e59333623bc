package lotledger

// Version is the engine release version reported by the API.
const Version = "0.3.0"
