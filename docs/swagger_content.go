package docs

// @title           Content Service API
// @version         1.0
// @description     Content service serves the pass catalogue, upcoming events and the podcast feed.

// @host      localhost:3002
// @BasePath  /
