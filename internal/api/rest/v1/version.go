package v1

// BasePath is the URL prefix of the v1 chat service API.
const BasePath = "/api/v1/cs"
