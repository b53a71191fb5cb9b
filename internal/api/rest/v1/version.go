package v1

// BasePath is the prefix of every API route.
const BasePath = "/api"

// ServiceName is reported by the root endpoint.
const ServiceName = "voice-training-service"

// Version is the API version.
const Version = "v1"
